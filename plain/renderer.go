// Package plain renders comparisons as plain text and JSON for pipes, files
// and terminals that do not run the interactive viewer.
package plain

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/linediff"
)

// DefaultWidth is the line width used for side-by-side output when none is set.
const DefaultWidth = 120

// minColumnWidth keeps side-by-side columns usable on very narrow widths.
const minColumnWidth = 8

// ErrInteractiveFormat is returned when asked to render the interactive format.
var ErrInteractiveFormat = errors.New("format needs an interactive terminal")

// Renderer writes comparisons to an io.Writer.
type Renderer struct {
	w           io.Writer
	width       int
	highlighter linediff.Highlighter
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithWidth sets the total line width of side-by-side output. Non-positive
// values select DefaultWidth.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
	}
}

// WithHighlighter adds character-level segments for modified lines to JSON
// output.
func WithHighlighter(h linediff.Highlighter) Option {
	return func(r *Renderer) {
		r.highlighter = h
	}
}

// NewRenderer creates a Renderer writing to w.
func NewRenderer(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{w: w, width: DefaultWidth}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes c in format f.
func (r *Renderer) Render(c *linediff.Comparison, f linediff.Format) error {
	switch f {
	case linediff.OutputUnified:
		_, err := fmt.Fprintln(r.w, linediff.FormatUnified(c.Result, c.LeftLabel, c.RightLabel))
		return err
	case linediff.OutputInline:
		return r.renderInline(c)
	case linediff.OutputSideBySide:
		return r.renderSideBySide(c)
	case linediff.OutputJSON:
		return r.renderJSON(c)
	case linediff.OutputStats:
		return r.renderStats(c)
	case linediff.OutputSimilarity:
		_, err := fmt.Fprintf(r.w, "%d%%\n", c.Result.Stats.Similarity())
		return err
	case linediff.OutputTUI:
		return ErrInteractiveFormat
	}
	return fmt.Errorf("unknown format %q", f)
}

func labels(c *linediff.Comparison) (left, right string) {
	left, right = c.LeftLabel, c.RightLabel
	if left == "" {
		left = linediff.DefaultLeftLabel
	}
	if right == "" {
		right = linediff.DefaultRightLabel
	}
	return left, right
}

func lineNum(n, width int) string {
	if n == 0 {
		return strings.Repeat(" ", width)
	}
	return fmt.Sprintf("%*d", width, n)
}

func (r *Renderer) renderInline(c *linediff.Comparison) error {
	left, right := labels(c)
	gutter := DigitWidth(max(c.Result.Stats.TotalLeft, c.Result.Stats.TotalRight))

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s\n", left, right)
	for _, line := range linediff.FormatInline(c.Result) {
		sb.WriteString(lineNum(line.LineNumber.Left, gutter))
		sb.WriteByte(' ')
		sb.WriteString(lineNum(line.LineNumber.Right, gutter))
		sb.WriteByte(' ')
		sb.WriteString(line.Prefix)
		sb.WriteString(ExpandTabs(line.Content, 0))
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(r.w, sb.String())
	return err
}

// sideBySideMarkers follow sdiff: "<" only on the left, ">" only on the
// right, "|" changed.
var sideBySideMarkers = map[linediff.LineType]string{
	linediff.LineUnchanged: " ",
	linediff.LineRemoved:   "<",
	linediff.LineAdded:     ">",
	linediff.LineModified:  "|",
}

func (r *Renderer) renderSideBySide(c *linediff.Comparison) error {
	sbs := linediff.FormatSideBySide(c.Result)
	gutter := DigitWidth(max(c.Result.Stats.TotalLeft, c.Result.Stats.TotalRight))
	column := max((r.width-3)/2, gutter+1+minColumnWidth)
	content := column - gutter - 1

	cell := func(line linediff.SideBySideLine) string {
		if line.LineNumber == 0 {
			return ""
		}
		return lineNum(line.LineNumber, gutter) + " " + Truncate(ExpandTabs(line.Content, 0), content)
	}

	left, right := labels(c)
	var sb strings.Builder
	sb.WriteString(Fit(left, column))
	sb.WriteString("   ")
	sb.WriteString(Truncate(right, column))
	sb.WriteByte('\n')

	for i := range sbs.Left {
		l, rt := sbs.Left[i], sbs.Right[i]
		sb.WriteString(Fit(cell(l), column))
		sb.WriteByte(' ')
		sb.WriteString(sideBySideMarkers[l.Type])
		rightCell := cell(rt)
		if rightCell != "" {
			sb.WriteByte(' ')
			sb.WriteString(rightCell)
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(r.w, sb.String())
	return err
}

type jsonLine struct {
	Type        linediff.LineType   `json:"type"`
	LineNumber  linediff.LineNumber `json:"lineNumber"`
	Content     string              `json:"content"`
	OldContent  *string             `json:"oldContent,omitempty"`
	OldSegments []linediff.Segment  `json:"oldSegments,omitempty"`
	NewSegments []linediff.Segment  `json:"newSegments,omitempty"`
}

type jsonComparison struct {
	LeftLabel  string           `json:"leftLabel"`
	RightLabel string           `json:"rightLabel"`
	Options    linediff.Options `json:"options"`
	Lines      []jsonLine       `json:"lines"`
	Stats      linediff.Stats   `json:"stats"`
	Similarity int              `json:"similarity"`
}

func (r *Renderer) renderJSON(c *linediff.Comparison) error {
	left, right := labels(c)
	out := jsonComparison{
		LeftLabel:  left,
		RightLabel: right,
		Options:    c.Options,
		Lines:      make([]jsonLine, 0, len(c.Result.Lines)),
		Stats:      c.Result.Stats,
		Similarity: c.Result.Stats.Similarity(),
	}
	for _, line := range c.Result.Lines {
		jl := jsonLine{Type: line.Type, LineNumber: line.LineNumber, Content: line.Content}
		if line.Type == linediff.LineModified {
			old := line.OldContent
			jl.OldContent = &old
			if r.highlighter != nil {
				jl.OldSegments, jl.NewSegments = r.highlighter.Highlight(line.OldContent, line.Content)
			}
		}
		out.Lines = append(out.Lines, jl)
	}

	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func (r *Renderer) renderStats(c *linediff.Comparison) error {
	s := c.Result.Stats
	rows := [][2]string{
		{"additions", strconv.Itoa(s.Additions)},
		{"deletions", strconv.Itoa(s.Deletions)},
		{"modifications", strconv.Itoa(s.Modifications)},
		{"unchanged", strconv.Itoa(s.Unchanged)},
		{"left lines", strconv.Itoa(s.TotalLeft)},
		{"right lines", strconv.Itoa(s.TotalRight)},
		{"similarity", strconv.Itoa(s.Similarity()) + "%"},
	}

	var sb strings.Builder
	for _, row := range rows {
		fmt.Fprintf(&sb, "%-14s %s\n", row[0]+":", row[1])
	}
	_, err := io.WriteString(r.w, sb.String())
	return err
}
