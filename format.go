package linediff

import (
	"fmt"
	"strings"
)

// Default labels used by FormatUnified when none are given.
const (
	DefaultLeftLabel  = "Original"
	DefaultRightLabel = "Modified"
)

// Inline prefixes.
const (
	PrefixUnchanged = " "
	PrefixAdded     = "+"
	PrefixRemoved   = "-"
)

// SideBySideLine is one row of one column of a side-by-side view.
type SideBySideLine struct {
	Type       LineType `json:"type"`
	LineNumber int      `json:"lineNumber"` // 0 for the empty side of an added or removed line
	Content    string   `json:"content"`
}

// SideBySide holds the two parallel columns of a side-by-side view.
// Left and Right always have the same length.
type SideBySide struct {
	Left  []SideBySideLine `json:"left"`
	Right []SideBySideLine `json:"right"`
}

// InlineLine is one row of an inline (unified) view.
type InlineLine struct {
	Type       LineType   `json:"type"`
	LineNumber LineNumber `json:"lineNumber"`
	Content    string     `json:"content"`
	Prefix     string     `json:"prefix"`
}

// FormatSideBySide projects a result into two parallel columns.
func FormatSideBySide(r *Result) SideBySide {
	out := SideBySide{
		Left:  make([]SideBySideLine, 0, len(r.Lines)),
		Right: make([]SideBySideLine, 0, len(r.Lines)),
	}

	for _, line := range r.Lines {
		var left, right SideBySideLine
		switch line.Type {
		case LineUnchanged:
			left = SideBySideLine{Type: LineUnchanged, LineNumber: line.LineNumber.Left, Content: line.Content}
			right = SideBySideLine{Type: LineUnchanged, LineNumber: line.LineNumber.Right, Content: line.Content}
		case LineAdded:
			left = SideBySideLine{Type: LineAdded}
			right = SideBySideLine{Type: LineAdded, LineNumber: line.LineNumber.Right, Content: line.Content}
		case LineRemoved:
			left = SideBySideLine{Type: LineRemoved, LineNumber: line.LineNumber.Left, Content: line.Content}
			right = SideBySideLine{Type: LineRemoved}
		case LineModified:
			left = SideBySideLine{Type: LineModified, LineNumber: line.LineNumber.Left, Content: line.OldContent}
			right = SideBySideLine{Type: LineModified, LineNumber: line.LineNumber.Right, Content: line.Content}
		}
		out.Left = append(out.Left, left)
		out.Right = append(out.Right, right)
	}

	return out
}

// FormatInline projects a result into a single prefixed sequence.
// A modified line expands into a removed entry followed by an added entry.
func FormatInline(r *Result) []InlineLine {
	out := make([]InlineLine, 0, len(r.Lines)+r.Stats.Modifications)

	for _, line := range r.Lines {
		switch line.Type {
		case LineUnchanged:
			out = append(out, InlineLine{Type: LineUnchanged, LineNumber: line.LineNumber, Content: line.Content, Prefix: PrefixUnchanged})
		case LineAdded:
			out = append(out, InlineLine{Type: LineAdded, LineNumber: line.LineNumber, Content: line.Content, Prefix: PrefixAdded})
		case LineRemoved:
			out = append(out, InlineLine{Type: LineRemoved, LineNumber: line.LineNumber, Content: line.Content, Prefix: PrefixRemoved})
		case LineModified:
			out = append(out,
				InlineLine{
					Type:       LineRemoved,
					LineNumber: LineNumber{Left: line.LineNumber.Left},
					Content:    line.OldContent,
					Prefix:     PrefixRemoved,
				},
				InlineLine{
					Type:       LineAdded,
					LineNumber: LineNumber{Right: line.LineNumber.Right},
					Content:    line.Content,
					Prefix:     PrefixAdded,
				},
			)
		}
	}

	return out
}

// FormatUnified renders a result as unified diff text with a single hunk
// covering both texts. Empty labels fall back to DefaultLeftLabel and
// DefaultRightLabel. The output has no trailing newline.
func FormatUnified(r *Result, leftLabel, rightLabel string) string {
	if leftLabel == "" {
		leftLabel = DefaultLeftLabel
	}
	if rightLabel == "" {
		rightLabel = DefaultRightLabel
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n", leftLabel)
	fmt.Fprintf(&sb, "+++ %s\n", rightLabel)
	sb.WriteString(HunkHeader(r.Stats))

	for _, line := range FormatInline(r) {
		sb.WriteByte('\n')
		sb.WriteString(line.Prefix)
		sb.WriteString(line.Content)
	}

	return sb.String()
}

// HunkHeader returns the synthetic header of the single hunk of a result.
func HunkHeader(s Stats) string {
	return fmt.Sprintf("@@ -1,%d +1,%d @@", s.TotalLeft, s.TotalRight)
}
