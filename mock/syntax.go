package mock

import "github.com/fwojciec/linediff"

// Compile-time interface verification.
var (
	_ linediff.Tokenizer        = (*Tokenizer)(nil)
	_ linediff.LanguageDetector = (*LanguageDetector)(nil)
)

// Tokenizer is a mock implementation of linediff.Tokenizer.
type Tokenizer struct {
	TokenizeLinesFn func(language, source string) [][]linediff.Token
}

func (t *Tokenizer) TokenizeLines(language, source string) [][]linediff.Token {
	return t.TokenizeLinesFn(language, source)
}

// LanguageDetector is a mock implementation of linediff.LanguageDetector.
type LanguageDetector struct {
	DetectFromLabelFn func(label string) string
}

func (d *LanguageDetector) DetectFromLabel(label string) string {
	return d.DetectFromLabelFn(label)
}
