package lcs

import "github.com/fwojciec/linediff"

// Compile-time interface verification.
var _ linediff.Differ = (*Differ)(nil)

// Differ implements linediff.Differ.
type Differ struct{}

// NewDiffer creates a new Differ.
func NewDiffer() *Differ {
	return &Differ{}
}

// Diff compares left and right line by line.
func (d *Differ) Diff(left, right string, opts linediff.Options) *linediff.Result {
	return Diff(left, right, opts)
}

// Diff compares left and right line by line.
//
// Lines are matched on their normalized form (see Normalize) while the result
// always reports raw text. Adjacent removed/added pairs are reported as
// modified lines. Time and memory are proportional to the product of the two
// line counts.
func Diff(left, right string, opts linediff.Options) *linediff.Result {
	if left == "" && right == "" {
		return &linediff.Result{Lines: []linediff.Line{}}
	}

	leftLines := SplitLines(left)
	rightLines := SplitLines(right)
	leftNorm := normalizeAll(leftLines, opts)
	rightNorm := normalizeAll(rightLines, opts)

	t := newTable(len(leftLines), len(rightLines), func(i, j int) bool {
		return leftNorm[i] == rightNorm[j]
	})
	lines := resolveModifications(backtrack(t, leftLines, rightLines, leftNorm, rightNorm))

	return &linediff.Result{
		Lines: lines,
		Stats: countLines(lines, len(leftLines), len(rightLines)),
	}
}

// Similarity returns how alike left and right are, from 0 to 100, comparing
// with default options. Identical texts score 100 and a non-empty text
// compared with an empty one scores 0.
func Similarity(left, right string) int {
	switch {
	case left == right:
		return 100
	case left == "" || right == "":
		return 0
	}
	return Diff(left, right, linediff.Options{}).Stats.Similarity()
}

// Unified compares left and right and renders the result as unified diff
// text with a single hunk.
func Unified(left, right, leftLabel, rightLabel string, opts linediff.Options) string {
	return linediff.FormatUnified(Diff(left, right, opts), leftLabel, rightLabel)
}
