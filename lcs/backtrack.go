package lcs

import (
	"slices"

	"github.com/fwojciec/linediff"
)

// backtrack walks the table from the bottom-right corner and returns the
// added, removed and unchanged lines in document order.
//
// When adding and removing are equally good the line is reported as added.
// Unchanged lines carry the right-hand text.
func backtrack(t table, left, right, leftNorm, rightNorm []string) []linediff.Line {
	lines := make([]linediff.Line, 0, max(len(left), len(right)))

	i, j := len(left), len(right)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && leftNorm[i-1] == rightNorm[j-1]:
			lines = append(lines, linediff.Line{
				Type:       linediff.LineUnchanged,
				LineNumber: linediff.LineNumber{Left: i, Right: j},
				Content:    right[j-1],
			})
			i--
			j--
		case j > 0 && (i == 0 || t.at(i, j-1) >= t.at(i-1, j)):
			lines = append(lines, linediff.Line{
				Type:       linediff.LineAdded,
				LineNumber: linediff.LineNumber{Right: j},
				Content:    right[j-1],
			})
			j--
		default:
			lines = append(lines, linediff.Line{
				Type:       linediff.LineRemoved,
				LineNumber: linediff.LineNumber{Left: i},
				Content:    left[i-1],
			})
			i--
		}
	}

	slices.Reverse(lines)
	return lines
}
