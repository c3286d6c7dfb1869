package mock

import (
	"io"

	"github.com/fwojciec/linediff"
)

// Compile-time interface verification.
var _ linediff.PatchParser = (*PatchParser)(nil)

// PatchParser is a mock implementation of linediff.PatchParser.
type PatchParser struct {
	ParseFn func(r io.Reader) ([]linediff.TextPair, error)
}

func (p *PatchParser) Parse(r io.Reader) ([]linediff.TextPair, error) {
	return p.ParseFn(r)
}
