package lcs_test

import (
	"testing"

	"github.com/fwojciec/linediff"
	"github.com/fwojciec/linediff/lcs"
	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: []string{""}},
		{name: "single line", text: "hello", want: []string{"hello"}},
		{name: "lf", text: "a\nb\nc", want: []string{"a", "b", "c"}},
		{name: "crlf", text: "a\r\nb\r\nc", want: []string{"a", "b", "c"}},
		{name: "cr", text: "a\rb\rc", want: []string{"a", "b", "c"}},
		{name: "mixed", text: "a\r\nb\nc\rd", want: []string{"a", "b", "c", "d"}},
		{name: "trailing newline", text: "a\n", want: []string{"a", ""}},
		{name: "only crlf", text: "\r\n", want: []string{"", ""}},
		{name: "blank lines", text: "\n\n", want: []string{"", "", ""}},
		{name: "cr then lf separately", text: "a\r\rb", want: []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, lcs.SplitLines(tt.text))
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		opts linediff.Options
		want string
	}{
		{name: "no options", line: "  Hello   World ", want: "  Hello   World "},
		{name: "trim", line: "  Hello  ", opts: linediff.Options{TrimLines: true}, want: "Hello"},
		{name: "collapse whitespace", line: "a \t b", opts: linediff.Options{IgnoreWhitespace: true}, want: "a b"},
		{name: "whitespace keeps edges", line: "  a  ", opts: linediff.Options{IgnoreWhitespace: true}, want: " a "},
		{name: "ignore case", line: "HeLLo", opts: linediff.Options{IgnoreCase: true}, want: "hello"},
		{name: "trim byte order mark", line: "\ufeffa ", opts: linediff.Options{TrimLines: true}, want: "a"},
		{name: "byte order mark as whitespace", line: "a\ufeff\ufeffb", opts: linediff.Options{IgnoreWhitespace: true}, want: "a b"},
		{
			name: "all options",
			line: "\t Foo \t  BAR  ",
			opts: linediff.Options{TrimLines: true, IgnoreWhitespace: true, IgnoreCase: true},
			want: "foo bar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, lcs.Normalize(tt.line, tt.opts))
		})
	}
}

func TestTrimFinalLineBreak(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want string
	}{
		{text: "", want: ""},
		{text: "a", want: "a"},
		{text: "a\n", want: "a"},
		{text: "a\r\n", want: "a"},
		{text: "a\r", want: "a"},
		{text: "a\n\n", want: "a\n"},
		{text: "a\r\nb\r\n", want: "a\r\nb"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, lcs.TrimFinalLineBreak(tt.text), "%q", tt.text)
	}
}

func TestDiff_ByteOrderMarkIgnoredWhenTrimming(t *testing.T) {
	t.Parallel()

	result := lcs.Diff("\ufeffpackage main\nfunc main() {}", "package main\nfunc main() {}", linediff.Options{TrimLines: true})

	assert.True(t, result.Identical())
	assert.Equal(t, "\ufeffpackage main", result.Lines[0].Content)
}
