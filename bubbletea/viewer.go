// Package bubbletea provides a terminal UI viewer for comparisons using the Bubble Tea framework.
package bubbletea

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/linediff"
	theme "github.com/fwojciec/linediff/lipgloss"
	"github.com/fwojciec/linediff/plain"
)

// Compile-time interface verification.
var _ linediff.Viewer = (*Viewer)(nil)

var errClipboardUnavailable = errors.New("clipboard unavailable")

// copiedMsg reports the outcome of a clipboard copy.
type copiedMsg struct {
	err error
}

// Model is the Bubble Tea model for viewing a comparison.
type Model struct {
	comparison *linediff.Comparison

	// Highlighting
	highlighter linediff.Highlighter
	leftTokens  [][]linediff.Token
	rightTokens [][]linediff.Token

	clipboard linediff.Clipboard

	// UI state
	viewport   viewport.Model
	keymap     KeyMap
	styles     linediff.Styles
	renderer   *lipgloss.Renderer
	width      int
	ready      bool
	sideBySide bool
	pendingKey string
	changes    []int
	status     string
}

// ModelOption configures a Model.
type ModelOption func(*modelConfig)

type modelConfig struct {
	renderer         *lipgloss.Renderer
	theme            linediff.Theme
	highlighter      linediff.Highlighter
	tokenizer        linediff.Tokenizer
	languageDetector linediff.LanguageDetector
	clipboard        linediff.Clipboard
	sideBySide       bool
}

// WithRenderer sets a custom lipgloss renderer for the model.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.renderer = r
	}
}

// WithTheme sets the color theme. The dark theme is used by default.
func WithTheme(t linediff.Theme) ModelOption {
	return func(cfg *modelConfig) {
		cfg.theme = t
	}
}

// WithHighlighter enables character-level highlighting of modified lines.
func WithHighlighter(h linediff.Highlighter) ModelOption {
	return func(cfg *modelConfig) {
		cfg.highlighter = h
	}
}

// WithTokenizer enables syntax highlighting. It needs a language detector too.
func WithTokenizer(t linediff.Tokenizer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.tokenizer = t
	}
}

// WithLanguageDetector sets how the language is guessed from the labels.
func WithLanguageDetector(d linediff.LanguageDetector) ModelOption {
	return func(cfg *modelConfig) {
		cfg.languageDetector = d
	}
}

// WithClipboard enables copying the unified diff.
func WithClipboard(c linediff.Clipboard) ModelOption {
	return func(cfg *modelConfig) {
		cfg.clipboard = c
	}
}

// WithSideBySide starts the model in the side-by-side view.
func WithSideBySide() ModelOption {
	return func(cfg *modelConfig) {
		cfg.sideBySide = true
	}
}

// NewModel creates a new Model for the given comparison.
func NewModel(c *linediff.Comparison, opts ...ModelOption) Model {
	cfg := &modelConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	t := cfg.theme
	if t == nil {
		t = theme.DarkTheme()
	}

	m := Model{
		comparison:  c,
		highlighter: cfg.highlighter,
		clipboard:   cfg.clipboard,
		keymap:      DefaultKeyMap(),
		styles:      t.Styles(),
		renderer:    cfg.renderer,
		sideBySide:  cfg.sideBySide,
	}

	if c != nil && cfg.tokenizer != nil && cfg.languageDetector != nil {
		language := cfg.languageDetector.DetectFromLabel(c.RightLabel)
		if language == "" {
			language = cfg.languageDetector.DetectFromLabel(c.LeftLabel)
		}
		if language != "" {
			m.leftTokens = cfg.tokenizer.TokenizeLines(language, c.Left)
			m.rightTokens = cfg.tokenizer.TokenizeLines(language, c.Right)
		}
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Handle multi-key sequences (gg for go to top)
		if m.pendingKey == "g" && key.Matches(msg, m.keymap.GotoTop) {
			m.viewport.GotoTop()
			m.pendingKey = ""
			return m, nil
		}

		if key.Matches(msg, m.keymap.GotoTop) {
			m.pendingKey = "g"
			return m, nil
		}

		m.pendingKey = ""

		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.GotoBottom):
			m.viewport.GotoBottom()
			return m, nil
		case key.Matches(msg, m.keymap.HalfPageUp):
			m.viewport.HalfPageUp()
			return m, nil
		case key.Matches(msg, m.keymap.HalfPageDown):
			m.viewport.HalfPageDown()
			return m, nil
		case key.Matches(msg, m.keymap.Up):
			m.viewport.ScrollUp(1)
			return m, nil
		case key.Matches(msg, m.keymap.Down):
			m.viewport.ScrollDown(1)
			return m, nil
		case key.Matches(msg, m.keymap.NextChange):
			m.gotoNextChange()
			return m, nil
		case key.Matches(msg, m.keymap.PrevChange):
			m.gotoPrevChange()
			return m, nil
		case key.Matches(msg, m.keymap.ToggleView):
			m.sideBySide = !m.sideBySide
			if m.ready {
				m.refresh()
				m.viewport.GotoTop()
			}
			return m, nil
		case key.Matches(msg, m.keymap.Copy):
			return m, m.copyUnified()
		}
	case copiedMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
		} else {
			m.status = "copied unified diff"
		}
		return m, nil
	case tea.WindowSizeMsg:
		statusBarHeight := 1
		widthChanged := m.width != msg.Width
		m.width = msg.Width

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-statusBarHeight)
			m.refresh()
			m.ready = true
		} else if widthChanged {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - statusBarHeight
			m.refresh()
		} else {
			m.viewport.Height = msg.Height - statusBarHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), m.statusBarView())
}

// refresh re-renders the viewport content for the current width and view.
func (m *Model) refresh() {
	r := renderComparison(renderConfig{
		comparison:  m.comparison,
		styles:      m.styles,
		renderer:    m.renderer,
		width:       m.width,
		sideBySide:  m.sideBySide,
		highlighter: m.highlighter,
		leftTokens:  m.leftTokens,
		rightTokens: m.rightTokens,
	})
	m.changes = r.changes
	m.viewport.SetContent(r.content)
}

// gotoNextChange scrolls to the first block of changes below the top row.
func (m *Model) gotoNextChange() {
	for _, pos := range m.changes {
		if pos > m.viewport.YOffset {
			m.viewport.SetYOffset(pos)
			return
		}
	}
}

// gotoPrevChange scrolls to the last block of changes above the top row.
func (m *Model) gotoPrevChange() {
	for i := len(m.changes) - 1; i >= 0; i-- {
		if m.changes[i] < m.viewport.YOffset {
			m.viewport.SetYOffset(m.changes[i])
			return
		}
	}
}

// copyUnified returns a command copying the unified diff to the clipboard.
func (m Model) copyUnified() tea.Cmd {
	if m.clipboard == nil || m.comparison == nil || m.comparison.Result == nil {
		return func() tea.Msg {
			return copiedMsg{err: errClipboardUnavailable}
		}
	}
	clipboard := m.clipboard
	text := linediff.FormatUnified(m.comparison.Result, m.comparison.LeftLabel, m.comparison.RightLabel)
	return func() tea.Msg {
		return copiedMsg{err: clipboard.Copy(text + "\n")}
	}
}

// newStyle creates a new lipgloss style using the model's renderer.
func (m Model) newStyle() lipgloss.Style {
	if m.renderer != nil {
		return m.renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// statusBarView renders the status bar with statistics and position info.
func (m Model) statusBarView() string {
	barStyle := theme.Style(m.renderer, m.styles.StatusBar)
	dimStyle := theme.Style(m.renderer, m.styles.StatusBarDimmed).
		Background(barStyle.GetBackground())

	var stats linediff.Stats
	if m.comparison != nil && m.comparison.Result != nil {
		stats = m.comparison.Result.Stats
	}
	similarity := stats.Similarity()
	simStyle := theme.Style(m.renderer, theme.SimilarityColor(m.styles, similarity)).
		Background(barStyle.GetBackground())

	sep := dimStyle.Render(" │ ")
	content := barStyle.Render(fmt.Sprintf(" +%d -%d ~%d", stats.Additions, stats.Deletions, stats.Modifications)) + sep +
		simStyle.Render(fmt.Sprintf("%d%%", similarity)) + sep

	if stats.Changes() == 0 {
		content += barStyle.Render("identical") + sep
	} else {
		idx, total := m.currentPosition(m.changes)
		width := plain.DigitWidth(total)
		content += barStyle.Render(fmt.Sprintf("change %*d/%-*d", width, idx, width, total)) + sep
	}

	content += barStyle.Render(m.scrollPosition()) + sep

	if m.status != "" {
		content += barStyle.Render(m.status) + sep
	}

	content += dimStyle.Render("j/k:scroll n/N:change y:copy q:quit") +
		barStyle.Render(" ")

	// Right-align by padding left side with background
	contentWidth := lipgloss.Width(content)
	if m.width > contentWidth {
		padding := barStyle.Render(strings.Repeat(" ", m.width-contentWidth))
		content = padding + content
	}

	return m.newStyle().MaxWidth(max(m.width, 1)).Render(content)
}

// currentPosition returns the current position (1-based) and total count.
func (m Model) currentPosition(positions []int) (current, total int) {
	total = len(positions)
	if total == 0 {
		return 0, 0
	}

	currentLine := m.viewport.YOffset
	current = 1

	for i, pos := range positions {
		if pos <= currentLine {
			current = i + 1
		} else {
			break
		}
	}

	return current, total
}

// scrollPosition returns a string indicating the scroll position.
func (m Model) scrollPosition() string {
	if m.viewport.AtTop() {
		return "Top"
	}
	if m.viewport.AtBottom() {
		return "Bot"
	}
	percent := int(m.viewport.ScrollPercent() * 100)
	return fmt.Sprintf("%2d%%", percent)
}

// Viewer implements linediff.Viewer using a Bubble Tea TUI.
type Viewer struct {
	programOpts []tea.ProgramOption
	modelOpts   []ModelOption
}

// ViewerOption configures a Viewer.
type ViewerOption func(*Viewer)

// WithProgramOptions adds options passed to the Bubble Tea program.
func WithProgramOptions(opts ...tea.ProgramOption) ViewerOption {
	return func(v *Viewer) {
		v.programOpts = append(v.programOpts, opts...)
	}
}

// WithModelOptions adds options passed to every Model the viewer creates.
func WithModelOptions(opts ...ModelOption) ViewerOption {
	return func(v *Viewer) {
		v.modelOpts = append(v.modelOpts, opts...)
	}
}

// NewViewer creates a new Viewer.
func NewViewer(opts ...ViewerOption) *Viewer {
	v := &Viewer{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// View displays the comparison and blocks until the user exits or ctx is
// cancelled.
func (v *Viewer) View(ctx context.Context, c *linediff.Comparison) error {
	m := NewModel(c, v.modelOpts...)
	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	}
	opts = append(opts, v.programOpts...)

	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
