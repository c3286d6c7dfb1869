// Package gitdiff reads unified and git patches using bluekeyes/go-gitdiff.
package gitdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/fwojciec/linediff"
	"github.com/fwojciec/linediff/lcs"
)

// Compile-time interface verification.
var _ linediff.PatchParser = (*Parser)(nil)

// devNull is the name git uses for the missing side of a created or deleted file.
const devNull = "/dev/null"

// Parser rebuilds the old and new text of every fragment of a patch so that
// each fragment can be compared again line by line.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse returns one TextPair per text fragment, in patch order. Binary files
// and mode-only changes are skipped. It returns linediff.ErrNoChanges when the
// patch contains no text fragments.
func (p *Parser) Parse(r io.Reader) ([]linediff.TextPair, error) {
	files, _, err := gitdiff.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse patch: %w", err)
	}

	var pairs []linediff.TextPair
	for _, f := range files {
		if f.IsBinary {
			continue
		}
		leftLabel, rightLabel := labels(f)
		for _, frag := range f.TextFragments {
			left, right := sides(frag)
			pairs = append(pairs, linediff.TextPair{
				LeftLabel:  leftLabel,
				RightLabel: rightLabel,
				Section:    frag.Header(),
				Left:       left,
				Right:      right,
			})
		}
	}

	if len(pairs) == 0 {
		return nil, linediff.ErrNoChanges
	}
	return pairs, nil
}

func labels(f *gitdiff.File) (left, right string) {
	left, right = f.OldName, f.NewName
	if f.IsNew || left == "" {
		left = devNull
	}
	if f.IsDelete || right == "" {
		right = devNull
	}
	return left, right
}

// sides joins the old and new lines of a fragment. The final line break of
// each side is dropped so that the texts split back into the same lines.
func sides(frag *gitdiff.TextFragment) (left, right string) {
	var oldText, newText strings.Builder
	for _, line := range frag.Lines {
		if line.Old() {
			oldText.WriteString(line.Line)
		}
		if line.New() {
			newText.WriteString(line.Line)
		}
	}
	return lcs.TrimFinalLineBreak(oldText.String()), lcs.TrimFinalLineBreak(newText.String())
}
