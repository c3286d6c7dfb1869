package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/linediff"
)

// StyleFunc maps a chroma token type to a token style.
type StyleFunc func(chromalib.TokenType) linediff.Style

// StyleFromPalette colors token types by category using p.
func StyleFromPalette(p linediff.Palette) StyleFunc {
	return func(tt chromalib.TokenType) linediff.Style {
		switch {
		case tt == chromalib.KeywordType:
			return linediff.Style{Foreground: p.Type, Bold: true}
		case tt.InCategory(chromalib.Keyword):
			return linediff.Style{Foreground: p.Keyword, Bold: true}
		case tt.InCategory(chromalib.Comment):
			return linediff.Style{Foreground: p.Comment}
		case tt.InSubCategory(chromalib.LiteralString):
			return linediff.Style{Foreground: p.String}
		case tt.InSubCategory(chromalib.LiteralNumber):
			return linediff.Style{Foreground: p.Number}
		case tt.InCategory(chromalib.Operator):
			return linediff.Style{Foreground: p.Operator}
		case tt == chromalib.NameFunction || tt == chromalib.NameFunctionMagic:
			return linediff.Style{Foreground: p.Function}
		case tt == chromalib.NameConstant || tt == chromalib.NameBuiltin:
			return linediff.Style{Foreground: p.Constant}
		case tt == chromalib.Punctuation:
			return linediff.Style{Foreground: p.Punctuation}
		}
		return linediff.Style{}
	}
}
