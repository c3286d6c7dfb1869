// Package config loads linediff's YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/fwojciec/linediff"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration file cannot be decoded
// or fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Granularity values for the character highlighter.
const (
	GranularityRunes     = "runes"
	GranularityGraphemes = "graphemes"
)

// Config holds every setting that can be read from the configuration file.
// Command-line flags override these values.
type Config struct {
	Options     linediff.Options `yaml:"options"`
	Labels      LabelsConfig     `yaml:"labels"`
	Format      string           `yaml:"format" validate:"oneof=tui unified side-by-side inline json stats similarity"`
	Theme       string           `yaml:"theme" validate:"oneof=dark light"`
	Width       int              `yaml:"width" validate:"omitempty,min=20,max=1000"` // 0 picks a default
	Granularity string           `yaml:"granularity" validate:"oneof=runes graphemes"`
	History     HistoryConfig    `yaml:"history"`
	Log         LogConfig        `yaml:"log"`
	Gemini      GeminiConfig     `yaml:"gemini"`
}

// LabelsConfig holds the default names of the two compared texts.
type LabelsConfig struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// HistoryConfig controls the recent comparisons list.
type HistoryConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Path       string `yaml:"path"` // Empty uses fs.DefaultHistoryPath
	MaxEntries int    `yaml:"max_entries" validate:"min=1,max=1000"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level      string `yaml:"level" validate:"oneof=debug info warn error"`
	File       string `yaml:"file"` // Empty disables the log file
	MaxSizeMB  int    `yaml:"max_size_mb" validate:"min=1"`
	MaxBackups int    `yaml:"max_backups" validate:"min=0"`
}

// GeminiConfig configures the summarizer.
type GeminiConfig struct {
	Model   string        `yaml:"model" validate:"required"`
	Timeout time.Duration `yaml:"timeout" validate:"gt=0"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Labels: LabelsConfig{
			Left:  linediff.DefaultLeftLabel,
			Right: linediff.DefaultRightLabel,
		},
		Format:      string(linediff.OutputTUI),
		Theme:       "dark",
		Granularity: GranularityRunes,
		History: HistoryConfig{
			Enabled:    true,
			MaxEntries: linediff.DefaultMaxHistory,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		Gemini: GeminiConfig{
			Model:   "gemini-3-flash-preview",
			Timeout: 60 * time.Second,
		},
	}
}

// Load reads the configuration at path on top of Default. An empty path or a
// missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their YAML key.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks cfg and returns an error wrapping ErrInvalidConfig that
// lists every offending field.
func Validate(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		field := e.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		msg := fmt.Sprintf("%s: failed %q", field, e.Tag())
		if e.Param() != "" {
			msg += fmt.Sprintf(" (%s)", e.Param())
		}
		msgs = append(msgs, msg)
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
