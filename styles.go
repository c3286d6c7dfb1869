package linediff

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for all visual elements of a comparison.
type Styles struct {
	Added             ColorPair // Added lines (+)
	Removed           ColorPair // Removed lines (-)
	Modified          ColorPair // Both sides of a modified line
	Unchanged         ColorPair // Unchanged lines
	Filler            ColorPair // Empty side of an added or removed row in side-by-side view
	HunkHeader        ColorPair // The @@ header
	FileHeader        ColorPair // The --- / +++ labels
	LineNumber        ColorPair // Line numbers in the gutter
	AddedHighlight    ColorPair // Changed characters on the new side of a modified line
	RemovedHighlight  ColorPair // Changed characters on the old side of a modified line
	StatusBar         ColorPair // Bottom status bar
	StatusBarDimmed   ColorPair // Key hints in the status bar
	ColumnSeparator   ColorPair // Divider between side-by-side columns
	SimilarityHigh    ColorPair // Similarity >= 75
	SimilarityLow     ColorPair // Similarity < 25
	SimilarityDefault ColorPair // Anything in between
}

// Palette holds the syntax highlighting colors of a theme as hex strings.
type Palette struct {
	Keyword     string
	Type        string
	String      string
	Number      string
	Comment     string
	Operator    string
	Function    string
	Constant    string
	Punctuation string
}

// Theme provides styles for rendering comparisons.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
	Palette() Palette
}
