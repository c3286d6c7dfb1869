// Package zerolog builds the application logger using rs/zerolog.
package zerolog

import (
	"fmt"
	"io"
	"time"

	"github.com/fwojciec/linediff/config"
	"github.com/muesli/termenv"
	zerologlib "github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger returns a logger writing human-readable lines to w and, when
// cfg.File is set, JSON records to a size-rotated file. The returned Closer
// releases the file.
func NewLogger(cfg config.LogConfig, w io.Writer) (zerologlib.Logger, io.Closer, error) {
	level, err := zerologlib.ParseLevel(cfg.Level)
	if err != nil {
		return zerologlib.Nop(), nil, fmt.Errorf("log level: %w", err)
	}

	console := zerologlib.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    termenv.NewOutput(w).Profile == termenv.Ascii,
	}
	writers := []io.Writer{console}

	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}
		writers = append(writers, file)
		closer = file
	}

	logger := zerologlib.New(zerologlib.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()
	return logger, closer, nil
}
