package mock

import (
	"context"

	"github.com/fwojciec/linediff"
)

// Compile-time interface verification.
var _ linediff.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of linediff.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, c *linediff.Comparison) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, c *linediff.Comparison) (string, error) {
	return s.SummarizeFn(ctx, c)
}
