package lcs

// table holds the lengths of the longest common subsequences of every pair of
// prefixes of two sequences. It is stored as one flat slice:
// cells[i*stride+j] is the LCS length of a[:i] and b[:j].
type table struct {
	cells  []int
	stride int
}

// newTable fills the table for sequences of length m and n, where eq reports
// whether a[i] equals b[j].
func newTable(m, n int, eq func(i, j int) bool) table {
	t := table{
		cells:  make([]int, (m+1)*(n+1)),
		stride: n + 1,
	}

	for i := 1; i <= m; i++ {
		row := i * t.stride
		prev := (i - 1) * t.stride
		for j := 1; j <= n; j++ {
			switch {
			case eq(i-1, j-1):
				t.cells[row+j] = t.cells[prev+j-1] + 1
			case t.cells[prev+j] > t.cells[row+j-1]:
				t.cells[row+j] = t.cells[prev+j]
			default:
				t.cells[row+j] = t.cells[row+j-1]
			}
		}
	}

	return t
}

func (t table) at(i, j int) int {
	return t.cells[i*t.stride+j]
}
