package bubbletea_test

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/linediff/bubbletea"
	"github.com/stretchr/testify/assert"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDefaultKeyMap_HasExpectedBindings(t *testing.T) {
	t.Parallel()

	km := bubbletea.DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		msgs    []tea.KeyMsg
	}{
		{name: "Up", binding: km.Up, msgs: []tea.KeyMsg{runeKey('k'), {Type: tea.KeyUp}}},
		{name: "Down", binding: km.Down, msgs: []tea.KeyMsg{runeKey('j'), {Type: tea.KeyDown}}},
		{name: "HalfPageUp", binding: km.HalfPageUp, msgs: []tea.KeyMsg{{Type: tea.KeyCtrlU}}},
		{name: "HalfPageDown", binding: km.HalfPageDown, msgs: []tea.KeyMsg{{Type: tea.KeyCtrlD}}},
		{name: "GotoTop", binding: km.GotoTop, msgs: []tea.KeyMsg{runeKey('g')}},
		{name: "GotoBottom", binding: km.GotoBottom, msgs: []tea.KeyMsg{runeKey('G')}},
		{name: "NextChange", binding: km.NextChange, msgs: []tea.KeyMsg{runeKey('n')}},
		{name: "PrevChange", binding: km.PrevChange, msgs: []tea.KeyMsg{runeKey('N'), runeKey('p')}},
		{name: "ToggleView", binding: km.ToggleView, msgs: []tea.KeyMsg{{Type: tea.KeyTab}, runeKey('v')}},
		{name: "Copy", binding: km.Copy, msgs: []tea.KeyMsg{runeKey('y')}},
		{name: "Quit", binding: km.Quit, msgs: []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for _, msg := range tt.msgs {
				assert.True(t, key.Matches(msg, tt.binding), "%s should match %s", msg.String(), tt.name)
			}
			assert.NotEmpty(t, tt.binding.Help().Key, "%s should have help key", tt.name)
			assert.NotEmpty(t, tt.binding.Help().Desc, "%s should have help description", tt.name)
		})
	}
}

func TestDefaultKeyMap_NoOverlap(t *testing.T) {
	t.Parallel()

	km := bubbletea.DefaultKeyMap()

	assert.False(t, key.Matches(runeKey('n'), km.PrevChange), "n should not move backwards")
	assert.False(t, key.Matches(runeKey('g'), km.GotoBottom), "g should not jump to the bottom")
	assert.False(t, key.Matches(runeKey('y'), km.Quit), "y should not quit")
}
