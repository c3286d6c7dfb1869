// Package git provides access to git operations via shell commands.
package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fwojciec/linediff"
)

// Compile-time interface verification.
var _ linediff.GitRunner = (*Runner)(nil)

// Runner executes git commands via shell.
type Runner struct{}

// NewRunner creates a new git runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Show returns the content of path at revision rev. The path is relative to
// repoPath, which may be any directory inside the work tree.
func (r *Runner) Show(ctx context.Context, repoPath, rev, path string) (string, error) {
	if rev == "" {
		return "", errors.New("git show failed: empty revision")
	}

	spec := rev + ":./" + strings.TrimPrefix(filepath.ToSlash(path), "./")
	output, err := r.run(ctx, repoPath, "show", spec)
	if err != nil {
		return "", fmt.Errorf("git show failed: %w", err)
	}
	return output, nil
}

// run executes git in repoPath and returns its standard output. Failures
// carry git's standard error.
func (r *Runner) run(ctx context.Context, repoPath string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", repoPath}, args...)...)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return "", ctxErr
			}
			return "", errors.New(strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", err
	}
	return string(output), nil
}
