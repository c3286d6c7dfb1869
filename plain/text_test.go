package plain_test

import (
	"testing"

	"github.com/fwojciec/linediff/plain"
	"github.com/stretchr/testify/assert"
)

func TestExpandTabs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		startCol int
		want     string
	}{
		{name: "no tabs", input: "hello", want: "hello"},
		{name: "leading tab", input: "\tx", want: "        x"},
		{name: "tab after text", input: "a\tb", want: "a       b"},
		{name: "start column", input: "\tx", startCol: 2, want: "      x"},
		{name: "tab on stop", input: "12345678\tx", want: "12345678        x"},
		{name: "wide rune", input: "日\tx", want: "日      x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, plain.ExpandTabs(tt.input, tt.startCol))
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", plain.Truncate("short", 10))
	assert.Equal(t, "abcdefghi…", plain.Truncate("abcdefghijklmnop", 10))
}

func TestFit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ab   ", plain.Fit("ab", 5))
	assert.Equal(t, "abcd…", plain.Fit("abcdefgh", 5))
	assert.Equal(t, 5, plain.Width(plain.Fit("日本語です", 5)))
}

func TestDigitWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, plain.DigitWidth(0))
	assert.Equal(t, 1, plain.DigitWidth(9))
	assert.Equal(t, 2, plain.DigitWidth(10))
	assert.Equal(t, 5, plain.DigitWidth(12345))
}
