package lcs_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/linediff"
	"github.com/fwojciec/linediff/lcs"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unchanged(left, right int, content string) linediff.Line {
	return linediff.Line{Type: linediff.LineUnchanged, LineNumber: linediff.LineNumber{Left: left, Right: right}, Content: content}
}

func added(right int, content string) linediff.Line {
	return linediff.Line{Type: linediff.LineAdded, LineNumber: linediff.LineNumber{Right: right}, Content: content}
}

func removed(left int, content string) linediff.Line {
	return linediff.Line{Type: linediff.LineRemoved, LineNumber: linediff.LineNumber{Left: left}, Content: content}
}

func modified(left, right int, oldContent, content string) linediff.Line {
	return linediff.Line{
		Type:       linediff.LineModified,
		LineNumber: linediff.LineNumber{Left: left, Right: right},
		Content:    content,
		OldContent: oldContent,
	}
}

func TestDiff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		left  string
		right string
		want  []linediff.Line
	}{
		{
			name:  "identical",
			left:  "hello\nworld",
			right: "hello\nworld",
			want:  []linediff.Line{unchanged(1, 1, "hello"), unchanged(2, 2, "world")},
		},
		{
			name:  "modified middle line",
			left:  "a\nb\nc",
			right: "a\nx\nc",
			want:  []linediff.Line{unchanged(1, 1, "a"), modified(2, 2, "b", "x"), unchanged(3, 3, "c")},
		},
		{
			name:  "pure addition",
			left:  "hello",
			right: "hello\nworld",
			want:  []linediff.Line{unchanged(1, 1, "hello"), added(2, "world")},
		},
		{
			name:  "pure deletion",
			left:  "hello\nworld",
			right: "hello",
			want:  []linediff.Line{unchanged(1, 1, "hello"), removed(2, "world")},
		},
		{
			name:  "empty left",
			left:  "",
			right: "a\nb\nc",
			want:  []linediff.Line{modified(1, 1, "", "a"), added(2, "b"), added(3, "c")},
		},
		{
			name:  "empty right",
			left:  "a\nb\nc",
			right: "",
			want:  []linediff.Line{removed(1, "a"), removed(2, "b"), modified(3, 1, "c", "")},
		},
		{
			name:  "swapped lines prefer addition on ties",
			left:  "a\nb",
			right: "b\na",
			want:  []linediff.Line{removed(1, "a"), unchanged(2, 1, "b"), added(2, "a")},
		},
		{
			name:  "mixed changes",
			left:  "line1\nline2\nline3\nline4",
			right: "line1\nmodified\nline3\nnewline\nline4",
			want: []linediff.Line{
				unchanged(1, 1, "line1"),
				modified(2, 2, "line2", "modified"),
				unchanged(3, 3, "line3"),
				added(4, "newline"),
				unchanged(4, 5, "line4"),
			},
		},
		{
			name:  "longer runs pair positionally",
			left:  "a\nb\nc\nd",
			right: "x\ny\nc\nd",
			want: []linediff.Line{
				removed(1, "a"),
				modified(2, 1, "b", "x"),
				added(2, "y"),
				unchanged(3, 3, "c"),
				unchanged(4, 4, "d"),
			},
		},
		{
			name:  "crlf matches lf",
			left:  "a\r\nb",
			right: "a\nb",
			want:  []linediff.Line{unchanged(1, 1, "a"), unchanged(2, 2, "b")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := lcs.Diff(tt.left, tt.right, linediff.Options{})
			if diff := cmp.Diff(tt.want, got.Lines); diff != "" {
				t.Errorf("Diff() lines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiff_BothEmpty(t *testing.T) {
	t.Parallel()

	got := lcs.Diff("", "", linediff.Options{})

	require.NotNil(t, got.Lines)
	assert.Empty(t, got.Lines)
	assert.Equal(t, linediff.Stats{}, got.Stats)
	assert.True(t, got.Identical())
}

func TestDiff_IdenticalStats(t *testing.T) {
	t.Parallel()

	got := lcs.Diff("hello\nworld\n!", "hello\nworld\n!", linediff.Options{})

	assert.Equal(t, linediff.Stats{Unchanged: 3, TotalLeft: 3, TotalRight: 3}, got.Stats)
	assert.Equal(t, 0, got.Stats.Changes())
	assert.Equal(t, 100, got.Stats.Similarity())
	assert.True(t, got.Identical())
}

func TestDiff_Stats(t *testing.T) {
	t.Parallel()

	got := lcs.Diff("line1\nline2\nline3\nline4", "line1\nmodified\nline3\nnewline\nline4", linediff.Options{})

	assert.Equal(t, linediff.Stats{
		Additions:     1,
		Modifications: 1,
		Unchanged:     3,
		TotalLeft:     4,
		TotalRight:    5,
	}, got.Stats)
	assert.Equal(t, 2, got.Stats.Changes())
	assert.False(t, got.Identical())
}

func TestDiff_Options(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		left  string
		right string
		opts  linediff.Options
		want  string
	}{
		{name: "ignore case reports right text", left: "Hello", right: "hello", opts: linediff.Options{IgnoreCase: true}, want: "hello"},
		{name: "trim lines", left: "  hello  ", right: "hello", opts: linediff.Options{TrimLines: true}, want: "hello"},
		{name: "ignore whitespace", left: "hello\tworld", right: "hello  world", opts: linediff.Options{IgnoreWhitespace: true}, want: "hello  world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := lcs.Diff(tt.left, tt.right, tt.opts)
			require.Len(t, got.Lines, 1)
			assert.Equal(t, unchanged(1, 1, tt.want), got.Lines[0])
		})
	}
}

func TestDiff_WithoutOptionsDetectsDifferences(t *testing.T) {
	t.Parallel()

	got := lcs.Diff("Hello", "hello", linediff.Options{})

	require.Len(t, got.Lines, 1)
	assert.Equal(t, modified(1, 1, "Hello", "hello"), got.Lines[0])
}

// Every input line appears exactly once, in order, on its own side.
func TestDiff_PreservesBothSides(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"a\nb\nc", "a\nx\nc"},
		{"x\na\nb", "a\nb\ny"},
		{"one\ntwo\nthree\nfour\nfive", "zero\none\nthree\nfive\nsix"},
		{"a\nb\nc\nd", "d\nc\nb\na"},
		{"same", "same"},
		{"", "only right"},
	}

	for _, p := range pairs {
		left, right := p[0], p[1]
		got := lcs.Diff(left, right, linediff.Options{})

		var leftSide, rightSide []string
		var leftNums, rightNums []int
		for _, line := range got.Lines {
			switch line.Type {
			case linediff.LineUnchanged:
				leftSide = append(leftSide, line.Content)
				rightSide = append(rightSide, line.Content)
			case linediff.LineModified:
				leftSide = append(leftSide, line.OldContent)
				rightSide = append(rightSide, line.Content)
			case linediff.LineRemoved:
				leftSide = append(leftSide, line.Content)
				assert.Zero(t, line.LineNumber.Right)
			case linediff.LineAdded:
				rightSide = append(rightSide, line.Content)
				assert.Zero(t, line.LineNumber.Left)
			}
			if line.LineNumber.Left != 0 {
				leftNums = append(leftNums, line.LineNumber.Left)
			}
			if line.LineNumber.Right != 0 {
				rightNums = append(rightNums, line.LineNumber.Right)
			}
		}

		assert.Equal(t, lcs.SplitLines(left), leftSide, "left side of %q", left)
		assert.Equal(t, lcs.SplitLines(right), rightSide, "right side of %q", right)
		for k := range leftNums {
			assert.Equal(t, k+1, leftNums[k])
		}
		for k := range rightNums {
			assert.Equal(t, k+1, rightNums[k])
		}
	}
}

func TestDiffer_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var d linediff.Differ = lcs.NewDiffer()

	got := d.Diff("a", "b", linediff.Options{})

	require.Len(t, got.Lines, 1)
	assert.Equal(t, modified(1, 1, "a", "b"), got.Lines[0])
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		left  string
		right string
		want  int
	}{
		{name: "identical", left: "a\nb", right: "a\nb", want: 100},
		{name: "both empty", left: "", right: "", want: 100},
		{name: "left empty", left: "", right: "a", want: 0},
		{name: "right empty", left: "a", right: "", want: 0},
		{name: "half", left: "a\nb", right: "a\nc", want: 50},
		{name: "completely different", left: "abc", right: "xyz", want: 0},
		{name: "rounded", left: "a\nb\nc", right: "a\nb\nc\nd", want: 86},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, lcs.Similarity(tt.left, tt.right))
		})
	}
}

func TestUnified(t *testing.T) {
	t.Parallel()

	got := lcs.Unified("a", "b", "file1.txt", "file2.txt", linediff.Options{})

	assert.Equal(t, "--- file1.txt\n+++ file2.txt\n@@ -1,1 +1,1 @@\n-a\n+b", got)
}

func TestUnified_Empty(t *testing.T) {
	t.Parallel()

	got := lcs.Unified("", "", "", "", linediff.Options{})

	assert.Equal(t, "--- Original\n+++ Modified\n@@ -1,0 +1,0 @@", got)
}

func TestUnified_SingleHeader(t *testing.T) {
	t.Parallel()

	got := lcs.Unified("-x\n+y", "--z\n++w", "old", "new", linediff.Options{})

	var oldHeaders, newHeaders, hunks int
	for _, line := range strings.Split(got, "\n") {
		switch {
		case strings.HasPrefix(line, "--- "):
			oldHeaders++
		case strings.HasPrefix(line, "+++ "):
			newHeaders++
		case strings.HasPrefix(line, "@@"):
			hunks++
		}
	}
	assert.Equal(t, 1, oldHeaders)
	assert.Equal(t, 1, newHeaders)
	assert.Equal(t, 1, hunks)
	assert.True(t, strings.HasPrefix(got, "--- old\n+++ new\n@@ -1,2 +1,2 @@\n"))
}
