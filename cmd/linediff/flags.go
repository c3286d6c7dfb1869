package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/fwojciec/linediff"
	"github.com/fwojciec/linediff/config"
	"github.com/fwojciec/linediff/fs"
)

const usage = `Usage:
  linediff [flags] LEFT RIGHT       compare two files ("-" reads standard input)
  linediff -rev REV [flags] FILE    compare FILE at git revision REV with the working copy
  linediff -patch FILE [flags]      re-diff every fragment of a unified diff ("-" reads standard input)
  linediff -history                 list recent comparisons
  linediff -history-remove ID       forget one recent comparison
  linediff -history-clear           forget all recent comparisons

Flags:
`

// parseArgs parses the command line, loads the configuration file with load
// and applies the flags on top of it. Flags that were not given keep the
// configured values.
func parseArgs(args []string, output io.Writer, load func(path string) (config.Config, error)) (Request, config.Config, error) {
	fset := flag.NewFlagSet("linediff", flag.ContinueOnError)
	fset.SetOutput(output)
	fset.Usage = func() {
		fmt.Fprint(output, usage)
		fset.PrintDefaults()
	}

	var (
		ignoreWhitespace = fset.Bool("w", false, "ignore differences in whitespace runs")
		ignoreCase       = fset.Bool("i", false, "ignore differences in letter case")
		trimLines        = fset.Bool("t", false, "ignore leading and trailing whitespace")
		format           = fset.String("format", "", "output format: tui, unified, side-by-side, inline, json, stats, similarity")
		leftLabel        = fset.String("left-label", "", "name shown for the left text")
		rightLabel       = fset.String("right-label", "", "name shown for the right text")
		width            = fset.Int("width", 0, "output width for side-by-side text")
		graphemes        = fset.Bool("graphemes", false, "highlight changes by user-perceived character")
		themeName        = fset.String("theme", "", "viewer theme: dark or light")
		copyDiff         = fset.Bool("copy", false, "copy the unified diff to the clipboard")
		summarize        = fset.Bool("summarize", false, "describe the changes using Gemini (needs GEMINI_API_KEY)")
		configPath       = fset.String("config", fs.DefaultConfigPath(), "configuration file")
		verbose          = fset.Bool("v", false, "log debug details to standard error")
		rev              = fset.String("rev", "", "git revision to compare FILE against")
		patch            = fset.String("patch", "", "unified diff to re-diff")
		history          = fset.Bool("history", false, "list recent comparisons")
		historyClear     = fset.Bool("history-clear", false, "forget all recent comparisons")
		historyRemove    = fset.String("history-remove", "", "forget the recent comparison with this ID")
	)

	if err := fset.Parse(args); err != nil {
		return Request{}, config.Config{}, err
	}

	cfg, err := load(*configPath)
	if err != nil {
		return Request{}, config.Config{}, err
	}

	set := make(map[string]bool)
	fset.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["w"] {
		cfg.Options.IgnoreWhitespace = *ignoreWhitespace
	}
	if set["i"] {
		cfg.Options.IgnoreCase = *ignoreCase
	}
	if set["t"] {
		cfg.Options.TrimLines = *trimLines
	}
	if set["format"] {
		cfg.Format = *format
	}
	if set["width"] {
		cfg.Width = *width
	}
	if set["graphemes"] {
		cfg.Granularity = config.GranularityRunes
		if *graphemes {
			cfg.Granularity = config.GranularityGraphemes
		}
	}
	if set["theme"] {
		cfg.Theme = *themeName
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if err := config.Validate(cfg); err != nil {
		return Request{}, config.Config{}, err
	}

	f, err := linediff.ParseFormat(cfg.Format)
	if err != nil {
		return Request{}, config.Config{}, err
	}

	req := Request{
		Args:          fset.Args(),
		Rev:           *rev,
		Patch:         *patch,
		Options:       cfg.Options,
		LeftLabel:     *leftLabel,
		RightLabel:    *rightLabel,
		Format:        f,
		Width:         cfg.Width,
		Copy:          *copyDiff,
		Summarize:     *summarize,
		History:       *history,
		HistoryClear:  *historyClear,
		HistoryRemove: *historyRemove,
	}
	return req, cfg, nil
}
