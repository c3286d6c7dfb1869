package plain

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TabWidth is the distance between tab stops.
const TabWidth = 8

// ExpandTabs replaces tabs with spaces up to the next tab stop. startCol is
// the display column at which s begins.
func ExpandTabs(s string, startCol int) string {
	if !strings.Contains(s, "\t") {
		return s
	}

	var sb strings.Builder
	col := startCol
	for _, r := range s {
		if r == '\t' {
			next := (col/TabWidth + 1) * TabWidth
			sb.WriteString(strings.Repeat(" ", next-col))
			col = next
			continue
		}
		sb.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return sb.String()
}

// Truncate shortens s to at most width display columns, ending it with an
// ellipsis when something was cut. Wide characters are never split.
func Truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}

// Fit truncates s to width display columns and pads it with spaces to
// exactly width.
func Fit(s string, width int) string {
	return runewidth.FillRight(Truncate(s, width), width)
}

// Width returns the number of display columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// DigitWidth returns the number of decimal digits in n, at least 1.
func DigitWidth(n int) int {
	width := 1
	for n >= 10 {
		width++
		n /= 10
	}
	return width
}
