// Package chroma provides syntax highlighting using the chroma library.
package chroma

import (
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/linediff"
	"github.com/fwojciec/linediff/lcs"
)

// Compile-time interface verification.
var _ linediff.Tokenizer = (*Tokenizer)(nil)

// Tokenizer extracts syntax tokens using chroma lexers.
type Tokenizer struct {
	style StyleFunc
}

// NewTokenizer creates a Tokenizer that colors tokens with p.
func NewTokenizer(p linediff.Palette) *Tokenizer {
	return &Tokenizer{style: StyleFromPalette(p)}
}

// TokenizeLines lexes source as a whole, so that constructs spanning several
// lines are recognized, and then splits the tokens at line breaks. Line
// breaks are recognized the same way the comparison engine splits text, so
// the result has one entry per compared line.
func (t *Tokenizer) TokenizeLines(language, source string) [][]linediff.Token {
	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}
	lexer = chromalib.Coalesce(lexer)

	lines := lcs.SplitLines(source)
	it, err := lexer.Tokenise(nil, strings.Join(lines, "\n"))
	if err != nil {
		return nil
	}

	out := make([][]linediff.Token, len(lines))
	row := 0
	for tok := it(); tok != chromalib.EOF; tok = it() {
		style := t.style(tok.Type)
		for k, part := range strings.Split(tok.Value, "\n") {
			if k > 0 {
				row++
			}
			if part == "" || row >= len(out) {
				continue
			}
			out[row] = append(out[row], linediff.Token{Text: part, Style: style})
		}
	}
	return out
}
