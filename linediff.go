// Package linediff provides domain types for comparing two texts line by line.
//
// The root package holds the change model, the presentation projections and
// the interfaces implemented by the subpackages. The alignment engine itself
// lives in package lcs.
package linediff

import (
	"context"
	"encoding/json"
	"fmt"
)

// LineType represents the kind of change a Line describes.
type LineType int

// Line types.
const (
	LineUnchanged LineType = iota
	LineAdded
	LineRemoved
	LineModified
)

// String returns the lower-case name of the line type.
func (t LineType) String() string {
	switch t {
	case LineAdded:
		return "added"
	case LineRemoved:
		return "removed"
	case LineModified:
		return "modified"
	default:
		return "unchanged"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t LineType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *LineType) UnmarshalText(text []byte) error {
	switch string(text) {
	case "unchanged":
		*t = LineUnchanged
	case "added":
		*t = LineAdded
	case "removed":
		*t = LineRemoved
	case "modified":
		*t = LineModified
	default:
		return fmt.Errorf("unknown line type %q", text)
	}
	return nil
}

// LineNumber holds the 1-based position of a line in the left and right text.
// Zero means the line does not exist on that side.
type LineNumber struct {
	Left  int // 0 if the line was added
	Right int // 0 if the line was removed
}

type jsonLineNumber struct {
	Left  *int `json:"left"`
	Right *int `json:"right"`
}

// MarshalJSON encodes missing line numbers as null.
func (n LineNumber) MarshalJSON() ([]byte, error) {
	var v jsonLineNumber
	if n.Left != 0 {
		left := n.Left
		v.Left = &left
	}
	if n.Right != 0 {
		right := n.Right
		v.Right = &right
	}
	return json.Marshal(v)
}

// UnmarshalJSON decodes null line numbers as zero.
func (n *LineNumber) UnmarshalJSON(data []byte) error {
	var v jsonLineNumber
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = LineNumber{}
	if v.Left != nil {
		n.Left = *v.Left
	}
	if v.Right != nil {
		n.Right = *v.Right
	}
	return nil
}

// Line is one entry of a resolved diff.
type Line struct {
	Type       LineType   `json:"type"`
	LineNumber LineNumber `json:"lineNumber"`
	Content    string     `json:"content"`              // Raw text, never normalized
	OldContent string     `json:"oldContent,omitempty"` // Only meaningful for LineModified
}

type jsonLine struct {
	Type       LineType   `json:"type"`
	LineNumber LineNumber `json:"lineNumber"`
	Content    string     `json:"content"`
	OldContent *string    `json:"oldContent,omitempty"`
}

// MarshalJSON encodes oldContent for modified lines only, even when it is
// empty.
func (l Line) MarshalJSON() ([]byte, error) {
	v := jsonLine{Type: l.Type, LineNumber: l.LineNumber, Content: l.Content}
	if l.Type == LineModified {
		old := l.OldContent
		v.OldContent = &old
	}
	return json.Marshal(v)
}

// Stats summarizes a Result.
type Stats struct {
	Additions     int `json:"additions"`
	Deletions     int `json:"deletions"`
	Modifications int `json:"modifications"`
	Unchanged     int `json:"unchanged"`
	TotalLeft     int `json:"totalLeft"`
	TotalRight    int `json:"totalRight"`
}

// Changes returns the number of lines that are not unchanged.
func (s Stats) Changes() int {
	return s.Additions + s.Deletions + s.Modifications
}

// Result is the outcome of comparing two texts.
type Result struct {
	Lines []Line `json:"lines"`
	Stats Stats  `json:"stats"`
}

// Identical reports whether the result contains no changes.
func (r *Result) Identical() bool {
	return r.Stats.Changes() == 0
}

// Options control how lines are compared. They never affect the content
// reported in a Result.
type Options struct {
	IgnoreWhitespace bool `json:"ignoreWhitespace,omitempty" yaml:"ignore_whitespace"`
	IgnoreCase       bool `json:"ignoreCase,omitempty" yaml:"ignore_case"`
	TrimLines        bool `json:"trimLines,omitempty" yaml:"trim_lines"`
}

// Segment is a run of characters within a line sharing one highlight state.
type Segment struct {
	Text        string `json:"text"`
	Highlighted bool   `json:"highlighted"` // True if the run is not part of the common subsequence
}

// Comparison bundles a Result with the inputs and labels that produced it.
type Comparison struct {
	LeftLabel  string
	RightLabel string
	Left       string
	Right      string
	Options    Options
	Result     *Result
}

// Differ compares two texts line by line.
type Differ interface {
	Diff(left, right string, opts Options) *Result
}

// Highlighter computes character-level differences between two strings.
type Highlighter interface {
	// Highlight returns segments for both strings; concatenating the text of
	// each side's segments reproduces that side's input.
	Highlight(old, new string) (oldSegs, newSegs []Segment)
}

// Viewer presents a comparison to the user.
type Viewer interface {
	View(ctx context.Context, c *Comparison) error
}

// Summarizer produces a short natural-language description of a comparison.
type Summarizer interface {
	Summarize(ctx context.Context, c *Comparison) (string, error)
}

// Clipboard copies text to the system clipboard.
type Clipboard interface {
	Copy(content string) error
}

// GitRunner provides access to file contents stored in git.
type GitRunner interface {
	// Show returns the content of path at revision rev in the repository at repoPath.
	Show(ctx context.Context, repoPath, rev, path string) (string, error)
}
