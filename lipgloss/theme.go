// Package lipgloss provides themes and terminal styles using the Lipgloss
// styling library.
package lipgloss

import (
	"fmt"

	lipglosslib "github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/linediff"
)

// Compile-time interface verification.
var _ linediff.Theme = (*Theme)(nil)

// Theme implements linediff.Theme.
type Theme struct {
	styles  linediff.Styles
	palette linediff.Palette
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() linediff.Styles {
	return t.styles
}

// Palette returns the syntax highlighting colors for this theme.
func (t *Theme) Palette() linediff.Palette {
	return t.palette
}

// ThemeByName returns the theme called name ("dark" or "light").
func ThemeByName(name string) (*Theme, error) {
	switch name {
	case "", "dark":
		return DarkTheme(), nil
	case "light":
		return LightTheme(), nil
	}
	return nil, fmt.Errorf("unknown theme %q", name)
}

// DarkTheme returns a theme for dark terminal backgrounds (Catppuccin Mocha).
// Line backgrounds stay very dark so syntax colors remain readable.
func DarkTheme() *Theme {
	return &Theme{
		styles: linediff.Styles{
			Added:             linediff.ColorPair{Foreground: "#a6e3a1", Background: "#004000"},
			Removed:           linediff.ColorPair{Foreground: "#f38ba8", Background: "#3f0001"},
			Modified:          linediff.ColorPair{Foreground: "#f9e2af", Background: "#2e2a00"},
			Unchanged:         linediff.ColorPair{Foreground: "#cdd6f4"},
			Filler:            linediff.ColorPair{Background: "#181825"},
			HunkHeader:        linediff.ColorPair{Foreground: "#89b4fa"},
			FileHeader:        linediff.ColorPair{Foreground: "#f9e2af", Background: "#313244"},
			LineNumber:        linediff.ColorPair{Foreground: "#6c7086"},
			AddedHighlight:    linediff.ColorPair{Foreground: "#1e1e2e", Background: "#a6e3a1"},
			RemovedHighlight:  linediff.ColorPair{Foreground: "#1e1e2e", Background: "#f38ba8"},
			StatusBar:         linediff.ColorPair{Foreground: "#a6adc8", Background: "#313244"},
			StatusBarDimmed:   linediff.ColorPair{Foreground: "#6c7086", Background: "#313244"},
			ColumnSeparator:   linediff.ColorPair{Foreground: "#45475a"},
			SimilarityHigh:    linediff.ColorPair{Foreground: "#a6e3a1"},
			SimilarityLow:     linediff.ColorPair{Foreground: "#f38ba8"},
			SimilarityDefault: linediff.ColorPair{Foreground: "#f9e2af"},
		},
		palette: linediff.Palette{
			Keyword:     "#cba6f7",
			Type:        "#f9e2af",
			String:      "#a6e3a1",
			Number:      "#fab387",
			Comment:     "#6c7086",
			Operator:    "#89dceb",
			Function:    "#89b4fa",
			Constant:    "#fab387",
			Punctuation: "#9399b2",
		},
	}
}

// LightTheme returns a theme for light terminal backgrounds (Catppuccin Latte).
func LightTheme() *Theme {
	return &Theme{
		styles: linediff.Styles{
			Added:             linediff.ColorPair{Foreground: "#40a02b", Background: "#d4f4d4"},
			Removed:           linediff.ColorPair{Foreground: "#d20f39", Background: "#f4d4d4"},
			Modified:          linediff.ColorPair{Foreground: "#df8e1d", Background: "#f7edd0"},
			Unchanged:         linediff.ColorPair{Foreground: "#4c4f69"},
			Filler:            linediff.ColorPair{Background: "#e6e9ef"},
			HunkHeader:        linediff.ColorPair{Foreground: "#1e66f5"},
			FileHeader:        linediff.ColorPair{Foreground: "#df8e1d", Background: "#e6e9ef"},
			LineNumber:        linediff.ColorPair{Foreground: "#9ca0b0"},
			AddedHighlight:    linediff.ColorPair{Foreground: "#ffffff", Background: "#40a02b"},
			RemovedHighlight:  linediff.ColorPair{Foreground: "#ffffff", Background: "#d20f39"},
			StatusBar:         linediff.ColorPair{Foreground: "#6c6f85", Background: "#e6e9ef"},
			StatusBarDimmed:   linediff.ColorPair{Foreground: "#9ca0b0", Background: "#e6e9ef"},
			ColumnSeparator:   linediff.ColorPair{Foreground: "#bcc0cc"},
			SimilarityHigh:    linediff.ColorPair{Foreground: "#40a02b"},
			SimilarityLow:     linediff.ColorPair{Foreground: "#d20f39"},
			SimilarityDefault: linediff.ColorPair{Foreground: "#df8e1d"},
		},
		palette: linediff.Palette{
			Keyword:     "#8839ef",
			Type:        "#df8e1d",
			String:      "#40a02b",
			Number:      "#fe640b",
			Comment:     "#9ca0b0",
			Operator:    "#04a5e5",
			Function:    "#1e66f5",
			Constant:    "#fe640b",
			Punctuation: "#6c6f85",
		},
	}
}

// Style converts a color pair into a lipgloss style bound to r, or to the
// default renderer when r is nil. Empty colors are left to the terminal.
func Style(r *lipglosslib.Renderer, cp linediff.ColorPair) lipglosslib.Style {
	s := lipglosslib.NewStyle()
	if r != nil {
		s = r.NewStyle()
	}
	if cp.Foreground != "" {
		s = s.Foreground(lipglosslib.Color(cp.Foreground))
	}
	if cp.Background != "" {
		s = s.Background(lipglosslib.Color(cp.Background))
	}
	return s
}

// SimilarityColor picks the color pair used to display a similarity score.
func SimilarityColor(s linediff.Styles, score int) linediff.ColorPair {
	switch {
	case score >= 75:
		return s.SimilarityHigh
	case score < 25:
		return s.SimilarityLow
	default:
		return s.SimilarityDefault
	}
}
