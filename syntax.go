package linediff

// Token is a syntax-highlighted run of text within one line.
type Token struct {
	Text  string
	Style Style
}

// Style is the visual style of a token.
type Style struct {
	Foreground string // Hex color, empty for the terminal default
	Bold       bool
}

// Tokenizer splits source text into syntax tokens.
type Tokenizer interface {
	// TokenizeLines returns the tokens of every line of source, indexed like
	// the lines of the text. It returns nil if the language is unknown.
	TokenizeLines(language, source string) [][]Token
}

// LanguageDetector guesses a language from the label of a text, which is
// usually a file path.
type LanguageDetector interface {
	// DetectFromLabel returns the language name or "" if unknown.
	DetectFromLabel(label string) string
}
