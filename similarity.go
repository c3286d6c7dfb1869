package linediff

import "math"

// Similarity returns how alike the two compared texts are, from 0 to 100,
// based on the share of unchanged lines across both sides.
func (s Stats) Similarity() int {
	total := s.TotalLeft + s.TotalRight
	if total == 0 {
		return 100
	}
	return int(math.Round(float64(s.Unchanged*2) / float64(total) * 100))
}
