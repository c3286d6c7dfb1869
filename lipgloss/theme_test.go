package lipgloss_test

import (
	"io"
	"reflect"
	"testing"

	lipglosslib "github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/linediff"
	"github.com/fwojciec/linediff/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemes_DefineEveryColor(t *testing.T) {
	t.Parallel()

	for _, theme := range []*lipgloss.Theme{lipgloss.DarkTheme(), lipgloss.LightTheme()} {
		styles := reflect.ValueOf(theme.Styles())
		for i := range styles.NumField() {
			cp := styles.Field(i).Interface().(linediff.ColorPair)
			name := styles.Type().Field(i).Name
			assert.True(t, cp.Foreground != "" || cp.Background != "", "%s has no color", name)
		}

		palette := reflect.ValueOf(theme.Palette())
		for i := range palette.NumField() {
			assert.NotEmpty(t, palette.Field(i).String(), palette.Type().Field(i).Name)
		}
	}
}

func TestThemeByName(t *testing.T) {
	t.Parallel()

	dark, err := lipgloss.ThemeByName("dark")
	require.NoError(t, err)
	assert.Equal(t, lipgloss.DarkTheme(), dark)

	light, err := lipgloss.ThemeByName("light")
	require.NoError(t, err)
	assert.Equal(t, lipgloss.LightTheme(), light)

	_, err = lipgloss.ThemeByName("neon")
	assert.Error(t, err)
}

func TestStyle(t *testing.T) {
	t.Parallel()

	s := lipgloss.Style(nil, linediff.ColorPair{Foreground: "#ffffff", Background: "#000000"})

	assert.Equal(t, lipglosslib.Color("#ffffff"), s.GetForeground())
	assert.Equal(t, lipglosslib.Color("#000000"), s.GetBackground())

	empty := lipgloss.Style(lipglosslib.NewRenderer(io.Discard), linediff.ColorPair{})
	assert.Equal(t, lipglosslib.NoColor{}, empty.GetForeground())
}

func TestSimilarityColor(t *testing.T) {
	t.Parallel()

	styles := lipgloss.DarkTheme().Styles()

	assert.Equal(t, styles.SimilarityHigh, lipgloss.SimilarityColor(styles, 100))
	assert.Equal(t, styles.SimilarityHigh, lipgloss.SimilarityColor(styles, 75))
	assert.Equal(t, styles.SimilarityDefault, lipgloss.SimilarityColor(styles, 74))
	assert.Equal(t, styles.SimilarityDefault, lipgloss.SimilarityColor(styles, 25))
	assert.Equal(t, styles.SimilarityLow, lipgloss.SimilarityColor(styles, 24))
}
