// Package lcs implements line and character comparison using the longest
// common subsequence.
package lcs

import (
	"strings"
	"unicode"

	"github.com/fwojciec/linediff"
)

// SplitLines splits text on "\r\n", "\r" and "\n".
// An empty string yields a single empty line.
func SplitLines(text string) []string {
	lines := make([]string, 0, strings.Count(text, "\n")+1)
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	return append(lines, text[start:])
}

// TrimFinalLineBreak drops one trailing "\r\n", "\n" or "\r" so that text
// ending in a line break does not gain an empty last line.
func TrimFinalLineBreak(text string) string {
	for _, eol := range []string{"\r\n", "\n", "\r"} {
		if t, ok := strings.CutSuffix(text, eol); ok {
			return t
		}
	}
	return text
}

// Normalize returns the form of line used for equality tests: trimmed if
// TrimLines, whitespace runs collapsed to one space if IgnoreWhitespace,
// lower-cased if IgnoreCase, in that order.
func Normalize(line string, opts linediff.Options) string {
	if opts.TrimLines {
		line = strings.TrimFunc(line, isSpace)
	}
	if opts.IgnoreWhitespace {
		line = collapseWhitespace(line)
	}
	if opts.IgnoreCase {
		line = strings.ToLower(line)
	}
	return line
}

// normalizeAll returns lines itself when opts is the zero value.
func normalizeAll(lines []string, opts linediff.Options) []string {
	if opts == (linediff.Options{}) {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Normalize(line, opts)
	}
	return out
}

func collapseWhitespace(s string) string {
	if strings.IndexFunc(s, isSpace) < 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	inSpace := false
	for _, r := range s {
		if isSpace(r) {
			if !inSpace {
				sb.WriteByte(' ')
				inSpace = true
			}
			continue
		}
		inSpace = false
		sb.WriteRune(r)
	}
	return sb.String()
}

// isSpace treats a byte order mark as whitespace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
