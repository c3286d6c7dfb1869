package linediff

import "errors"

// Input errors.
var (
	ErrNoInput      = errors.New("no input to compare")
	ErrTooManyStdin = errors.New("standard input can be read only once")
	ErrNoChanges    = errors.New("no text changes found in patch")
)
