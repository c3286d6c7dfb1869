package lcs

import "github.com/fwojciec/linediff"

// resolveModifications merges every removed line that is immediately followed
// by an added line into a single modified line. Longer runs are paired
// positionally, two entries at a time.
func resolveModifications(lines []linediff.Line) []linediff.Line {
	out := make([]linediff.Line, 0, len(lines))

	for k := 0; k < len(lines); k++ {
		cur := lines[k]
		if cur.Type == linediff.LineRemoved && k+1 < len(lines) && lines[k+1].Type == linediff.LineAdded {
			next := lines[k+1]
			out = append(out, linediff.Line{
				Type:       linediff.LineModified,
				LineNumber: linediff.LineNumber{Left: cur.LineNumber.Left, Right: next.LineNumber.Right},
				Content:    next.Content,
				OldContent: cur.Content,
			})
			k++
			continue
		}
		out = append(out, cur)
	}

	return out
}

// countLines tallies each line type.
func countLines(lines []linediff.Line, totalLeft, totalRight int) linediff.Stats {
	stats := linediff.Stats{TotalLeft: totalLeft, TotalRight: totalRight}
	for _, line := range lines {
		switch line.Type {
		case linediff.LineAdded:
			stats.Additions++
		case linediff.LineRemoved:
			stats.Deletions++
		case linediff.LineModified:
			stats.Modifications++
		case linediff.LineUnchanged:
			stats.Unchanged++
		}
	}
	return stats
}
