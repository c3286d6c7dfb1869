package linediff

import (
	"fmt"
	"io"
)

// Format selects how a comparison is presented.
type Format string

// Output formats.
const (
	OutputTUI        Format = "tui"
	OutputUnified    Format = "unified"
	OutputSideBySide Format = "side-by-side"
	OutputInline     Format = "inline"
	OutputJSON       Format = "json"
	OutputStats      Format = "stats"
	OutputSimilarity Format = "similarity"
)

// Formats lists every supported format.
var Formats = []Format{
	OutputTUI,
	OutputUnified,
	OutputSideBySide,
	OutputInline,
	OutputJSON,
	OutputStats,
	OutputSimilarity,
}

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// TextPair is a pair of texts to compare, typically rebuilt from one
// fragment of a patch.
type TextPair struct {
	LeftLabel  string
	RightLabel string
	Section    string // Fragment header, e.g. "@@ -3,4 +3,5 @@ func main()"
	Left       string
	Right      string
}

// PatchParser extracts comparable text pairs from a unified diff.
type PatchParser interface {
	Parse(r io.Reader) ([]TextPair, error)
}
