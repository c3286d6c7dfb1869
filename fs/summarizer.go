package fs

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/linediff"
	"github.com/rs/zerolog"
)

// Compile-time interface verification.
var _ linediff.Summarizer = (*Summarizer)(nil)

// Summarizer wraps a linediff.Summarizer with a file cache keyed by the
// compared texts, labels and options.
type Summarizer struct {
	inner    linediff.Summarizer
	cacheDir string
	logger   zerolog.Logger
}

// SummarizerOption configures a Summarizer.
type SummarizerOption func(*Summarizer)

// WithLogger sets the logger that reports cache failures.
func WithLogger(logger zerolog.Logger) SummarizerOption {
	return func(s *Summarizer) {
		s.logger = logger
	}
}

// NewSummarizer creates a caching Summarizer storing entries in cacheDir.
func NewSummarizer(inner linediff.Summarizer, cacheDir string, opts ...SummarizerOption) *Summarizer {
	s := &Summarizer{inner: inner, cacheDir: cacheDir, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summarize returns the cached summary or asks the inner summarizer and
// caches its answer. Cache write failures are logged and otherwise ignored.
func (s *Summarizer) Summarize(ctx context.Context, c *linediff.Comparison) (string, error) {
	path := s.cachePath(c)
	if data, err := os.ReadFile(path); err == nil {
		return string(data), nil
	}

	summary, err := s.inner.Summarize(ctx, c)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.cacheDir, 0o755); err != nil {
		s.logger.Warn().Err(err).Str("dir", s.cacheDir).Msg("create summary cache")
		return summary, nil
	}
	if err := os.WriteFile(path, []byte(summary), 0o644); err != nil {
		s.logger.Warn().Err(err).Str("path", path).Msg("write summary cache")
	}
	return summary, nil
}

type cacheKey struct {
	LeftLabel  string           `json:"leftLabel"`
	RightLabel string           `json:"rightLabel"`
	Left       string           `json:"left"`
	Right      string           `json:"right"`
	Options    linediff.Options `json:"options"`
}

func (s *Summarizer) cachePath(c *linediff.Comparison) string {
	data, _ := json.Marshal(cacheKey{
		LeftLabel:  c.LeftLabel,
		RightLabel: c.RightLabel,
		Left:       c.Left,
		Right:      c.Right,
		Options:    c.Options,
	})
	sum := sha256.Sum256(data)
	return filepath.Join(s.cacheDir, hex.EncodeToString(sum[:])+".txt")
}
