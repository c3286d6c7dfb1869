package mock

import "github.com/fwojciec/linediff"

// Compile-time interface verification.
var _ linediff.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of linediff.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}
