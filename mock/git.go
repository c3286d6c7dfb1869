package mock

import (
	"context"

	"github.com/fwojciec/linediff"
)

// Compile-time interface verification.
var _ linediff.GitRunner = (*GitRunner)(nil)

// GitRunner is a mock implementation of linediff.GitRunner.
type GitRunner struct {
	ShowFn func(ctx context.Context, repoPath, rev, path string) (string, error)
}

func (g *GitRunner) Show(ctx context.Context, repoPath, rev, path string) (string, error) {
	return g.ShowFn(ctx, repoPath, rev, path)
}
