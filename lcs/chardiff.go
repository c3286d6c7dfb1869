package lcs

import (
	"strings"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/fwojciec/linediff"
)

// Compile-time interface verification.
var _ linediff.Highlighter = (*Highlighter)(nil)

// Highlighter computes character-level differences between two strings.
// By default a character is a Unicode code point.
type Highlighter struct {
	split func(string) []string
}

// HighlighterOption configures a Highlighter.
type HighlighterOption func(*Highlighter)

// WithGraphemes makes the Highlighter compare user-perceived characters
// (extended grapheme clusters) instead of code points.
func WithGraphemes() HighlighterOption {
	return func(h *Highlighter) {
		h.split = splitGraphemes
	}
}

// NewHighlighter creates a new Highlighter.
func NewHighlighter(opts ...HighlighterOption) *Highlighter {
	h := &Highlighter{split: splitRunes}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Highlight returns segments for both strings. Characters that belong to the
// longest common subsequence are not highlighted; all others are.
func (h *Highlighter) Highlight(old, new string) (oldSegs, newSegs []linediff.Segment) {
	return highlight(h.split(old), h.split(new))
}

// HighlightChars is Highlight with code point granularity.
func HighlightChars(old, new string) (oldSegs, newSegs []linediff.Segment) {
	return highlight(splitRunes(old), splitRunes(new))
}

func highlight(oldChars, newChars []string) (oldSegs, newSegs []linediff.Segment) {
	m, n := len(oldChars), len(newChars)
	t := newTable(m, n, func(i, j int) bool {
		return oldChars[i] == newChars[j]
	})

	oldMarks := make([]bool, m)
	newMarks := make([]bool, n)
	for k := range oldMarks {
		oldMarks[k] = true
	}
	for k := range newMarks {
		newMarks[k] = true
	}

	i, j := m, n
	for i > 0 && j > 0 {
		switch {
		case oldChars[i-1] == newChars[j-1]:
			oldMarks[i-1] = false
			newMarks[j-1] = false
			i--
			j--
		case t.at(i-1, j) > t.at(i, j-1):
			i--
		default:
			j--
		}
	}

	return coalesce(oldChars, oldMarks), coalesce(newChars, newMarks)
}

// coalesce merges consecutive characters with the same mark into segments.
func coalesce(chars []string, marks []bool) []linediff.Segment {
	var segs []linediff.Segment
	var sb strings.Builder

	for k, c := range chars {
		if k > 0 && marks[k] != marks[k-1] {
			segs = append(segs, linediff.Segment{Text: sb.String(), Highlighted: marks[k-1]})
			sb.Reset()
		}
		sb.WriteString(c)
	}
	if sb.Len() > 0 {
		segs = append(segs, linediff.Segment{Text: sb.String(), Highlighted: marks[len(marks)-1]})
	}

	return segs
}

// splitRunes keeps invalid UTF-8 bytes as one-byte characters so that the
// segments still reproduce the input.
func splitRunes(s string) []string {
	chars := make([]string, 0, utf8.RuneCountInString(s))
	for len(s) > 0 {
		_, size := utf8.DecodeRuneInString(s)
		chars = append(chars, s[:size])
		s = s[size:]
	}
	return chars
}

func splitGraphemes(s string) []string {
	var chars []string
	iter := graphemes.FromString(s)
	for iter.Next() {
		chars = append(chars, iter.Value())
	}
	return chars
}
