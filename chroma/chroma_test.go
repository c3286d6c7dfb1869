package chroma_test

import (
	"strings"
	"testing"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/linediff"
	"github.com/fwojciec/linediff/chroma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPalette = linediff.Palette{
	Keyword:     "#ff00ff",
	Type:        "#ffff00",
	String:      "#00ff00",
	Number:      "#ff8800",
	Comment:     "#888888",
	Operator:    "#00ffff",
	Function:    "#0000ff",
	Constant:    "#ff0088",
	Punctuation: "#aaaaaa",
}

func joinTokens(tokens []linediff.Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

func TestDetector_DetectFromLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label string
		want  string
	}{
		{label: "main.go", want: "Go"},
		{label: "src/app.py", want: "Python"},
		{label: "b/lib.rs", want: "Rust"},
		{label: "a/src/foo.go", want: "Go"},
		{label: "HEAD~1:cmd/main.go", want: "Go"},
		{label: "file.unknownext", want: ""},
		{label: "Original", want: ""},
		{label: "", want: ""},
	}

	d := chroma.NewDetector()
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, d.DetectFromLabel(tt.label))
		})
	}
}

func TestStyleFromPalette(t *testing.T) {
	t.Parallel()

	style := chroma.StyleFromPalette(testPalette)

	tests := []struct {
		name string
		tt   chromalib.TokenType
		want linediff.Style
	}{
		{name: "keyword", tt: chromalib.Keyword, want: linediff.Style{Foreground: "#ff00ff", Bold: true}},
		{name: "keyword declaration", tt: chromalib.KeywordDeclaration, want: linediff.Style{Foreground: "#ff00ff", Bold: true}},
		{name: "type keyword", tt: chromalib.KeywordType, want: linediff.Style{Foreground: "#ffff00", Bold: true}},
		{name: "double string", tt: chromalib.LiteralStringDouble, want: linediff.Style{Foreground: "#00ff00"}},
		{name: "integer", tt: chromalib.LiteralNumberInteger, want: linediff.Style{Foreground: "#ff8800"}},
		{name: "single comment", tt: chromalib.CommentSingle, want: linediff.Style{Foreground: "#888888"}},
		{name: "operator", tt: chromalib.Operator, want: linediff.Style{Foreground: "#00ffff"}},
		{name: "function", tt: chromalib.NameFunction, want: linediff.Style{Foreground: "#0000ff"}},
		{name: "constant", tt: chromalib.NameConstant, want: linediff.Style{Foreground: "#ff0088"}},
		{name: "punctuation", tt: chromalib.Punctuation, want: linediff.Style{Foreground: "#aaaaaa"}},
		{name: "plain name", tt: chromalib.Name, want: linediff.Style{}},
		{name: "text", tt: chromalib.Text, want: linediff.Style{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, style(tt.tt))
		})
	}
}

func TestTokenizer_TokenizeLines(t *testing.T) {
	t.Parallel()

	t.Run("returns one entry per line", func(t *testing.T) {
		t.Parallel()

		source := "package main\n\nfunc main() {}"
		lines := chroma.NewTokenizer(testPalette).TokenizeLines("go", source)

		require.Len(t, lines, 3)
		assert.Equal(t, "package main", joinTokens(lines[0]))
		assert.Empty(t, lines[1])
		assert.Equal(t, "func main() {}", joinTokens(lines[2]))
	})

	t.Run("colors keywords", func(t *testing.T) {
		t.Parallel()

		lines := chroma.NewTokenizer(testPalette).TokenizeLines("go", "package main")

		require.Len(t, lines, 1)
		require.NotEmpty(t, lines[0])
		assert.Equal(t, "package", lines[0][0].Text)
		assert.Equal(t, "#ff00ff", lines[0][0].Style.Foreground)
	})

	t.Run("splits multi-line comments", func(t *testing.T) {
		t.Parallel()

		source := "/* first\nsecond */\nx := 1"
		lines := chroma.NewTokenizer(testPalette).TokenizeLines("go", source)

		require.Len(t, lines, 3)
		assert.Equal(t, "/* first", joinTokens(lines[0]))
		assert.Equal(t, "second */", joinTokens(lines[1]))
		for _, tok := range lines[1] {
			assert.Equal(t, "#888888", tok.Style.Foreground)
		}
	})

	t.Run("treats crlf like the engine", func(t *testing.T) {
		t.Parallel()

		lines := chroma.NewTokenizer(testPalette).TokenizeLines("go", "a := 1\r\nb := 2")

		require.Len(t, lines, 2)
		assert.Equal(t, "a := 1", joinTokens(lines[0]))
		assert.Equal(t, "b := 2", joinTokens(lines[1]))
	})

	t.Run("returns nil for unknown languages", func(t *testing.T) {
		t.Parallel()

		lines := chroma.NewTokenizer(testPalette).TokenizeLines("nonexistent-language-xyz", "code")

		assert.Nil(t, lines)
	})
}
