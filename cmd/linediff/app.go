package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/linediff"
	"github.com/fwojciec/linediff/config"
	"github.com/fwojciec/linediff/lcs"
	"github.com/fwojciec/linediff/plain"
	"github.com/google/uuid"
	zerologlib "github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// stdinName is the argument that reads a text from standard input.
const stdinName = "-"

// Request describes one invocation.
type Request struct {
	Args       []string // Input paths; "-" reads standard input
	Rev        string   // Compare Args[0] at this git revision with the working copy
	Patch      string   // Re-diff every fragment of this patch file
	Options    linediff.Options
	LeftLabel  string // Overrides the label derived from the input
	RightLabel string
	Format     linediff.Format
	Width      int // 0 picks plain.DefaultWidth
	Copy       bool
	Summarize  bool

	History       bool   // List recent comparisons
	HistoryClear  bool   // Remove all recent comparisons
	HistoryRemove string // Remove the recent comparison with this ID
}

// App encapsulates the application logic for testing.
type App struct {
	Differ      linediff.Differ
	Highlighter linediff.Highlighter
	Viewer      linediff.Viewer
	PatchParser linediff.PatchParser
	GitRunner   linediff.GitRunner
	Summarizer  linediff.Summarizer // Nil unless a summary was requested
	Clipboard   linediff.Clipboard  // Nil when no clipboard command is available

	History     linediff.HistoryStore
	HistoryPath string // Empty disables history
	MaxHistory  int

	Labels     config.LabelsConfig // Labels for texts read from standard input
	Logger     zerologlib.Logger
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	IsTerminal bool // Whether Stdout is a terminal

	Now   func() time.Time
	NewID func() string
}

// Run executes req.
func (a *App) Run(ctx context.Context, req Request) error {
	switch {
	case req.HistoryClear:
		return a.clearHistory()
	case req.HistoryRemove != "":
		return a.removeHistory(req.HistoryRemove)
	case req.History:
		return a.listHistory()
	case req.Patch != "":
		return a.runPatch(ctx, req)
	case req.Rev != "":
		return a.runRev(ctx, req)
	default:
		return a.runFiles(ctx, req)
	}
}

func (a *App) runFiles(ctx context.Context, req Request) error {
	if len(req.Args) == 0 {
		return linediff.ErrNoInput
	}
	if len(req.Args) != 2 {
		return fmt.Errorf("expected two inputs, got %d", len(req.Args))
	}
	if req.Args[0] == stdinName && req.Args[1] == stdinName {
		return linediff.ErrTooManyStdin
	}

	var left, right string
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		left, err = a.readInput(req.Args[0])
		return err
	})
	g.Go(func() error {
		var err error
		right, err = a.readInput(req.Args[1])
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	c := &linediff.Comparison{
		LeftLabel:  pick(req.LeftLabel, a.inputLabel(req.Args[0], a.Labels.Left)),
		RightLabel: pick(req.RightLabel, a.inputLabel(req.Args[1], a.Labels.Right)),
		Left:       left,
		Right:      right,
		Options:    req.Options,
	}
	return a.present(ctx, req, c, true)
}

func (a *App) runRev(ctx context.Context, req Request) error {
	if len(req.Args) != 1 {
		return fmt.Errorf("-rev expects one file, got %d", len(req.Args))
	}
	path := req.Args[0]
	if path == stdinName {
		return errors.New("-rev needs a file path, not standard input")
	}

	var left, right string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := a.GitRunner.Show(gctx, filepath.Dir(path), req.Rev, filepath.Base(path))
		if err != nil {
			return err
		}
		left = lcs.TrimFinalLineBreak(out)
		return nil
	})
	g.Go(func() error {
		var err error
		right, err = a.readInput(path)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	c := &linediff.Comparison{
		LeftLabel:  pick(req.LeftLabel, path+"@"+req.Rev),
		RightLabel: pick(req.RightLabel, path),
		Left:       left,
		Right:      right,
		Options:    req.Options,
	}
	return a.present(ctx, req, c, true)
}

// runPatch compares the two sides of every fragment in a patch. Fragments
// are not recorded in history.
func (a *App) runPatch(ctx context.Context, req Request) error {
	var r io.Reader
	if req.Patch == stdinName {
		r = a.Stdin
	} else {
		f, err := os.Open(req.Patch)
		if err != nil {
			return fmt.Errorf("open patch: %w", err)
		}
		defer f.Close()
		r = f
	}

	pairs, err := a.PatchParser.Parse(r)
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		return linediff.ErrNoChanges
	}

	textual := hasSectionHeader(a.format(req))
	for i, p := range pairs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 && textual {
			fmt.Fprintln(a.Stdout)
		}
		if p.Section != "" && textual {
			fmt.Fprintln(a.Stdout, p.Section)
		}
		c := &linediff.Comparison{
			LeftLabel:  pick(req.LeftLabel, p.LeftLabel),
			RightLabel: pick(req.RightLabel, p.RightLabel),
			Left:       p.Left,
			Right:      p.Right,
			Options:    req.Options,
		}
		if err := a.present(ctx, req, c, false); err != nil {
			return err
		}
	}
	return nil
}

// present diffs c and hands it to the requested outputs.
func (a *App) present(ctx context.Context, req Request, c *linediff.Comparison, record bool) error {
	start := time.Now()
	c.Result = a.Differ.Diff(c.Left, c.Right, c.Options)
	a.Logger.Debug().
		Str("left", c.LeftLabel).
		Str("right", c.RightLabel).
		Int("left_bytes", len(c.Left)).
		Int("right_bytes", len(c.Right)).
		Int("additions", c.Result.Stats.Additions).
		Int("deletions", c.Result.Stats.Deletions).
		Int("modifications", c.Result.Stats.Modifications).
		Int("similarity", c.Result.Stats.Similarity()).
		Dur("took", time.Since(start)).
		Msg("compared")

	if record {
		a.record(c)
	}

	if req.Copy {
		if err := a.copy(c); err != nil {
			return err
		}
	}

	if err := a.output(ctx, req, c); err != nil {
		return err
	}

	if req.Summarize {
		return a.summarize(ctx, c)
	}
	return nil
}

func (a *App) output(ctx context.Context, req Request, c *linediff.Comparison) error {
	f := a.format(req)
	if f == linediff.OutputTUI {
		return a.Viewer.View(ctx, c)
	}

	opts := []plain.Option{plain.WithWidth(req.Width)}
	if a.Highlighter != nil {
		opts = append(opts, plain.WithHighlighter(a.Highlighter))
	}
	return plain.NewRenderer(a.Stdout, opts...).Render(c, f)
}

// format returns the effective format. The viewer needs a terminal, so
// redirected output falls back to unified text.
func (a *App) format(req Request) linediff.Format {
	f := req.Format
	if f == "" {
		f = linediff.OutputTUI
	}
	if f == linediff.OutputTUI && !a.IsTerminal {
		return linediff.OutputUnified
	}
	return f
}

func (a *App) copy(c *linediff.Comparison) error {
	if a.Clipboard == nil {
		return errors.New("copy: no clipboard available")
	}
	text := linediff.FormatUnified(c.Result, c.LeftLabel, c.RightLabel) + "\n"
	if err := a.Clipboard.Copy(text); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	a.Logger.Info().Int("bytes", len(text)).Msg("copied unified diff to clipboard")
	return nil
}

func (a *App) summarize(ctx context.Context, c *linediff.Comparison) error {
	if a.Summarizer == nil {
		return errors.New("summarize: no summarizer configured")
	}
	summary, err := a.Summarizer.Summarize(ctx, c)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}
	fmt.Fprintf(a.Stderr, "\n%s\n", summary)
	return nil
}

// record adds c to the recent comparisons. Failures are logged and ignored.
func (a *App) record(c *linediff.Comparison) {
	if a.History == nil || a.HistoryPath == "" {
		return
	}

	entries, err := a.History.Load(a.HistoryPath)
	if err != nil {
		a.Logger.Warn().Err(err).Str("path", a.HistoryPath).Msg("load history")
		return
	}
	entries = linediff.AddRecent(entries, linediff.HistoryEntry{
		ID:         a.newID(),
		LeftLabel:  c.LeftLabel,
		RightLabel: c.RightLabel,
		Left:       c.Left,
		Right:      c.Right,
		Options:    c.Options,
		Similarity: c.Result.Stats.Similarity(),
		Timestamp:  a.now(),
	}, a.MaxHistory)
	if err := a.History.Save(a.HistoryPath, entries); err != nil {
		a.Logger.Warn().Err(err).Str("path", a.HistoryPath).Msg("save history")
	}
}

func (a *App) listHistory() error {
	if err := a.requireHistory(); err != nil {
		return err
	}
	entries, err := a.History.Load(a.HistoryPath)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.Stdout, "no recent comparisons")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(a.Stdout, "%s  %s  %s -> %s  %d%%\n",
			e.ID,
			e.Timestamp.Local().Format(time.DateTime),
			pick(e.LeftLabel, linediff.DefaultLeftLabel),
			pick(e.RightLabel, linediff.DefaultRightLabel),
			e.Similarity,
		)
	}
	return nil
}

func (a *App) removeHistory(id string) error {
	if err := a.requireHistory(); err != nil {
		return err
	}
	entries, err := a.History.Load(a.HistoryPath)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}
	kept := linediff.RemoveRecent(entries, id)
	if len(kept) == len(entries) {
		return fmt.Errorf("no recent comparison with id %q", id)
	}
	if err := a.History.Save(a.HistoryPath, kept); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

func (a *App) clearHistory() error {
	if err := a.requireHistory(); err != nil {
		return err
	}
	if err := a.History.Save(a.HistoryPath, nil); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	fmt.Fprintln(a.Stdout, "history cleared")
	return nil
}

func (a *App) requireHistory() error {
	if a.History == nil || a.HistoryPath == "" {
		return errors.New("history is disabled")
	}
	return nil
}

// readInput reads a file, or standard input for "-", without its final
// line break.
func (a *App) readInput(name string) (string, error) {
	var data []byte
	var err error
	if name == stdinName {
		data, err = io.ReadAll(a.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return lcs.TrimFinalLineBreak(string(data)), nil
}

func (a *App) inputLabel(name, stdinLabel string) string {
	if name == stdinName {
		return stdinLabel
	}
	return name
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) newID() string {
	if a.NewID != nil {
		return a.NewID()
	}
	return uuid.NewString()
}

func hasSectionHeader(f linediff.Format) bool {
	switch f {
	case linediff.OutputUnified, linediff.OutputInline, linediff.OutputSideBySide:
		return true
	}
	return false
}

func pick(preferred, fallback string) string {
	if preferred != "" {
		return preferred
	}
	return fallback
}
