package mock

import "github.com/fwojciec/linediff"

// Compile-time interface verification.
var _ linediff.Differ = (*Differ)(nil)

// Differ is a mock implementation of linediff.Differ.
type Differ struct {
	DiffFn func(left, right string, opts linediff.Options) *linediff.Result
}

func (d *Differ) Diff(left, right string, opts linediff.Options) *linediff.Result {
	return d.DiffFn(left, right, opts)
}
