package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/linediff"
	theme "github.com/fwojciec/linediff/lipgloss"
	"github.com/fwojciec/linediff/plain"
	"github.com/mattn/go-runewidth"
)

// minGutterWidth is the minimum width of each line number column in the gutter.
const minGutterWidth = 4

// columnSeparator divides the two columns of the side-by-side view.
const columnSeparator = " │ "

// renderConfig holds all rendering parameters for renderComparison.
type renderConfig struct {
	comparison  *linediff.Comparison
	styles      linediff.Styles
	renderer    *lipgloss.Renderer
	width       int
	sideBySide  bool
	highlighter linediff.Highlighter
	leftTokens  [][]linediff.Token
	rightTokens [][]linediff.Token
}

// rendered is the viewport content with the row at which each block of
// consecutive changes starts.
type rendered struct {
	content string
	changes []int
}

// span is a run of text drawn in a single style.
type span struct {
	text  string
	style lipgloss.Style
}

type lineStyles struct {
	added            lipgloss.Style
	removed          lipgloss.Style
	modified         lipgloss.Style
	unchanged        lipgloss.Style
	filler           lipgloss.Style
	addedHighlight   lipgloss.Style
	removedHighlight lipgloss.Style
	lineNumber       lipgloss.Style
	fileHeader       lipgloss.Style
	hunkHeader       lipgloss.Style
	separator        lipgloss.Style
}

func newLineStyles(s linediff.Styles, r *lipgloss.Renderer) lineStyles {
	return lineStyles{
		added:            theme.Style(r, s.Added),
		removed:          theme.Style(r, s.Removed),
		modified:         theme.Style(r, s.Modified),
		unchanged:        theme.Style(r, s.Unchanged),
		filler:           theme.Style(r, s.Filler),
		addedHighlight:   theme.Style(r, s.AddedHighlight),
		removedHighlight: theme.Style(r, s.RemovedHighlight),
		lineNumber:       theme.Style(r, s.LineNumber),
		fileHeader:       theme.Style(r, s.FileHeader),
		hunkHeader:       theme.Style(r, s.HunkHeader),
		separator:        theme.Style(r, s.ColumnSeparator),
	}
}

// canvas accumulates rendered rows.
type canvas struct {
	renderConfig
	st       lineStyles
	gutter   int
	rows     []string
	changes  []int
	inChange bool
}

// renderComparison converts a comparison to styled viewport content.
// If renderer is nil, the default lipgloss renderer is used.
func renderComparison(cfg renderConfig) rendered {
	if cfg.comparison == nil || cfg.comparison.Result == nil {
		return rendered{}
	}

	stats := cfg.comparison.Result.Stats
	c := &canvas{
		renderConfig: cfg,
		st:           newLineStyles(cfg.styles, cfg.renderer),
		gutter:       max(plain.DigitWidth(max(stats.TotalLeft, stats.TotalRight)), minGutterWidth),
	}
	if cfg.sideBySide {
		c.renderSideBySide()
	} else {
		c.renderInline()
	}

	return rendered{content: strings.Join(c.rows, "\n"), changes: c.changes}
}

// mark records the start of a block of changes.
func (c *canvas) mark(changed bool) {
	if changed && !c.inChange {
		c.changes = append(c.changes, len(c.rows))
	}
	c.inChange = changed
}

func (c *canvas) renderInline() {
	res := c.comparison.Result
	left, right := labels(c.comparison)

	c.rows = append(c.rows,
		renderSpans([]span{{text: "--- " + left, style: c.st.fileHeader}}, c.width, c.st.fileHeader),
		renderSpans([]span{{text: "+++ " + right, style: c.st.fileHeader}}, c.width, c.st.fileHeader),
		renderSpans([]span{{text: linediff.HunkHeader(res.Stats), style: c.st.hunkHeader}}, c.width, c.st.hunkHeader),
	)
	if len(res.Lines) == 0 {
		c.rows = append(c.rows, c.st.unchanged.Render("(both texts are empty)"))
		return
	}

	for _, line := range res.Lines {
		c.mark(line.Type != linediff.LineUnchanged)
		n := line.LineNumber

		switch line.Type {
		case linediff.LineUnchanged:
			c.rows = append(c.rows, c.inlineRow(n, linediff.PrefixUnchanged,
				c.tokenSpans(c.rightTokens, n.Right, line.Content, c.st.unchanged), c.st.unchanged))
		case linediff.LineAdded:
			c.rows = append(c.rows, c.inlineRow(n, linediff.PrefixAdded,
				c.tokenSpans(c.rightTokens, n.Right, line.Content, c.st.added), c.st.added))
		case linediff.LineRemoved:
			c.rows = append(c.rows, c.inlineRow(n, linediff.PrefixRemoved,
				c.tokenSpans(c.leftTokens, n.Left, line.Content, c.st.removed), c.st.removed))
		case linediff.LineModified:
			oldSegs, newSegs := c.segments(line.OldContent, line.Content)
			c.rows = append(c.rows,
				c.inlineRow(linediff.LineNumber{Left: n.Left}, linediff.PrefixRemoved,
					segmentSpans(oldSegs, c.st.removed, c.st.removedHighlight), c.st.removed),
				c.inlineRow(linediff.LineNumber{Right: n.Right}, linediff.PrefixAdded,
					segmentSpans(newSegs, c.st.added, c.st.addedHighlight), c.st.added),
			)
		}
	}
}

// inlineRow renders the gutter with both line numbers followed by the
// prefixed content, padded to the full width.
func (c *canvas) inlineRow(n linediff.LineNumber, prefix string, content []span, base lipgloss.Style) string {
	gutter := c.st.lineNumber.Render(formatLineNum(n.Left, c.gutter) + " " + formatLineNum(n.Right, c.gutter))
	spans := append([]span{{text: prefix, style: base}}, content...)
	return gutter + base.Render(" ") + renderSpans(spans, c.width-2*c.gutter-2, base)
}

func (c *canvas) renderSideBySide() {
	res := c.comparison.Result
	left, right := labels(c.comparison)
	leftWidth := max((c.width-runewidth.StringWidth(columnSeparator))/2, 1)
	rightWidth := max(c.width-runewidth.StringWidth(columnSeparator)-leftWidth, 1)
	sep := c.st.separator.Render(columnSeparator)

	c.rows = append(c.rows,
		renderSpans([]span{{text: left, style: c.st.fileHeader}}, leftWidth, c.st.fileHeader)+sep+
			renderSpans([]span{{text: right, style: c.st.fileHeader}}, rightWidth, c.st.fileHeader),
	)
	if len(res.Lines) == 0 {
		c.rows = append(c.rows, c.st.unchanged.Render("(both texts are empty)"))
		return
	}

	sbs := linediff.FormatSideBySide(res)
	for i, line := range res.Lines {
		c.mark(line.Type != linediff.LineUnchanged)
		l, r := sbs.Left[i], sbs.Right[i]

		var leftCell, rightCell string
		switch line.Type {
		case linediff.LineUnchanged:
			leftCell = c.cell(l.LineNumber, c.tokenSpans(c.leftTokens, l.LineNumber, l.Content, c.st.unchanged), c.st.unchanged, leftWidth)
			rightCell = c.cell(r.LineNumber, c.tokenSpans(c.rightTokens, r.LineNumber, r.Content, c.st.unchanged), c.st.unchanged, rightWidth)
		case linediff.LineAdded:
			leftCell = c.cell(0, nil, c.st.filler, leftWidth)
			rightCell = c.cell(r.LineNumber, c.tokenSpans(c.rightTokens, r.LineNumber, r.Content, c.st.added), c.st.added, rightWidth)
		case linediff.LineRemoved:
			leftCell = c.cell(l.LineNumber, c.tokenSpans(c.leftTokens, l.LineNumber, l.Content, c.st.removed), c.st.removed, leftWidth)
			rightCell = c.cell(0, nil, c.st.filler, rightWidth)
		case linediff.LineModified:
			oldSegs, newSegs := c.segments(l.Content, r.Content)
			leftCell = c.cell(l.LineNumber, segmentSpans(oldSegs, c.st.modified, c.st.removedHighlight), c.st.modified, leftWidth)
			rightCell = c.cell(r.LineNumber, segmentSpans(newSegs, c.st.modified, c.st.addedHighlight), c.st.modified, rightWidth)
		}
		c.rows = append(c.rows, leftCell+sep+rightCell)
	}
}

// cell renders one side of a side-by-side row. A zero line number renders
// an empty filler cell.
func (c *canvas) cell(lineNum int, content []span, base lipgloss.Style, width int) string {
	if lineNum == 0 {
		return base.Render(strings.Repeat(" ", width))
	}
	num := c.st.lineNumber.Render(formatLineNum(lineNum, c.gutter))
	return num + base.Render(" ") + renderSpans(content, width-c.gutter-1, base)
}

// segments returns character-level segments for a modified line, or a
// single unhighlighted segment per side without a highlighter.
func (c *canvas) segments(old, new string) (oldSegs, newSegs []linediff.Segment) {
	if c.highlighter == nil {
		return []linediff.Segment{{Text: old}}, []linediff.Segment{{Text: new}}
	}
	return c.highlighter.Highlight(old, new)
}

// tokenSpans returns syntax-colored spans for line lineNum of a tokenized
// text. It falls back to a single span when no tokens match content.
func (c *canvas) tokenSpans(tokens [][]linediff.Token, lineNum int, content string, base lipgloss.Style) []span {
	fallback := []span{{text: content, style: base}}
	if lineNum < 1 || lineNum > len(tokens) {
		return fallback
	}

	line := tokens[lineNum-1]
	var sb strings.Builder
	for _, tok := range line {
		sb.WriteString(tok.Text)
	}
	if sb.String() != content {
		return fallback
	}

	spans := make([]span, 0, len(line))
	for _, tok := range line {
		style := base
		if tok.Style.Foreground != "" {
			style = style.Foreground(lipgloss.Color(tok.Style.Foreground))
		}
		if tok.Style.Bold {
			style = style.Bold(true)
		}
		spans = append(spans, span{text: tok.Text, style: style})
	}
	return spans
}

// segmentSpans styles highlighted segments with highlight on top of base.
func segmentSpans(segs []linediff.Segment, base, highlight lipgloss.Style) []span {
	hl := highlight.Inherit(base)
	spans := make([]span, 0, len(segs))
	for _, seg := range segs {
		style := base
		if seg.Highlighted {
			style = hl
		}
		spans = append(spans, span{text: seg.Text, style: style})
	}
	return spans
}

// renderSpans renders spans clipped to width display columns and pads the
// remainder with fill. Tabs are expanded relative to the first span.
func renderSpans(spans []span, width int, fill lipgloss.Style) string {
	if width <= 0 {
		return ""
	}

	var sb strings.Builder
	used := 0
	for _, s := range spans {
		if used >= width {
			break
		}
		text := plain.ExpandTabs(s.text, used)
		if w := runewidth.StringWidth(text); used+w > width {
			text = runewidth.Truncate(text, width-used, "")
		}
		if text == "" {
			continue
		}
		sb.WriteString(s.style.Render(text))
		used += runewidth.StringWidth(text)
	}
	if used < width {
		sb.WriteString(fill.Render(strings.Repeat(" ", width-used)))
	}
	return sb.String()
}

// formatLineNum formats a line number for the gutter.
// Returns right-aligned number or empty space for zero (missing) line numbers.
func formatLineNum(num, width int) string {
	if num == 0 {
		return strings.Repeat(" ", width)
	}
	return fmt.Sprintf("%*d", width, num)
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
