// Command linediff compares two texts line by line.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fwojciec/linediff/bubbletea"
	"github.com/fwojciec/linediff/chroma"
	"github.com/fwojciec/linediff/clipboard"
	"github.com/fwojciec/linediff/config"
	"github.com/fwojciec/linediff/fs"
	"github.com/fwojciec/linediff/gemini"
	"github.com/fwojciec/linediff/git"
	"github.com/fwojciec/linediff/gitdiff"
	"github.com/fwojciec/linediff/jsonl"
	"github.com/fwojciec/linediff/lcs"
	"github.com/fwojciec/linediff/lipgloss"
	"github.com/fwojciec/linediff/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	req, cfg, err := parseArgs(os.Args[1:], os.Stderr, config.Load)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	logger, closer, err := zerolog.NewLogger(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	theme, err := lipgloss.ThemeByName(cfg.Theme)
	if err != nil {
		return err
	}

	var highlighterOpts []lcs.HighlighterOption
	if cfg.Granularity == config.GranularityGraphemes {
		highlighterOpts = append(highlighterOpts, lcs.WithGraphemes())
	}
	highlighter := lcs.NewHighlighter(highlighterOpts...)

	modelOpts := []bubbletea.ModelOption{
		bubbletea.WithTheme(theme),
		bubbletea.WithHighlighter(highlighter),
		bubbletea.WithTokenizer(chroma.NewTokenizer(theme.Palette())),
		bubbletea.WithLanguageDetector(chroma.NewDetector()),
	}

	app := &App{
		Differ:      lcs.NewDiffer(),
		Highlighter: highlighter,
		PatchParser: gitdiff.NewParser(),
		GitRunner:   git.NewRunner(),
		Labels:      cfg.Labels,
		Logger:      logger,
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		IsTerminal:  isTerminal(os.Stdout),
	}

	if cfg.History.Enabled {
		app.History = jsonl.NewHistoryStore()
		app.HistoryPath = cfg.History.Path
		if app.HistoryPath == "" {
			app.HistoryPath = fs.DefaultHistoryPath()
		}
		app.MaxHistory = cfg.History.MaxEntries
	}

	if cb, err := clipboard.Detect(); err == nil {
		app.Clipboard = cb
		modelOpts = append(modelOpts, bubbletea.WithClipboard(cb))
	} else {
		logger.Debug().Err(err).Msg("clipboard disabled")
	}

	if req.Summarize {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return errors.New("GEMINI_API_KEY environment variable required")
		}
		client, err := gemini.NewClient(ctx, apiKey)
		if err != nil {
			return err
		}
		defer client.Close()

		summarizer := gemini.NewSummarizer(client, cfg.Gemini.Model, gemini.WithTimeout(cfg.Gemini.Timeout))
		app.Summarizer = fs.NewSummarizer(summarizer, fs.DefaultCacheDir(), fs.WithLogger(logger))
	}

	app.Viewer = bubbletea.NewViewer(bubbletea.WithModelOptions(modelOpts...))

	return app.Run(ctx, req)
}

// isTerminal reports whether f is a character device.
func isTerminal(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return stat.Mode()&os.ModeCharDevice != 0
}
