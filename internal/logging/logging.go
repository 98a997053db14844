// Package logging configures the process-wide zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var globalLogger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.WarnLevel)

// Config selects the log level and destination.
type Config struct {
	Level string `yaml:"level"`
	// File, when set, receives the log instead of stderr. The interactive
	// shell owns the terminal, so it logs to File or nowhere.
	File string `yaml:"file"`
}

// Init replaces the global logger. quiet discards output unless File is set.
// The returned closer releases the log file, if any.
func Init(cfg Config, quiet bool) (io.Closer, error) {
	level := zerolog.WarnLevel
	if cfg.Level != "" {
		var err error
		level, err = zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}
	zerolog.TimeFieldFormat = time.RFC3339

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	var closer io.Closer = nopCloser{}
	switch {
	case cfg.File != "":
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = f
	case quiet:
		out = io.Discard
	}

	globalLogger = zerolog.New(out).Level(level).With().Timestamp().Logger()
	log.Logger = globalLogger
	return closer, nil
}

// Logger returns the global logger.
func Logger() *zerolog.Logger {
	return &globalLogger
}

// WithComponent returns a child logger tagged with component.
func WithComponent(component string) zerolog.Logger {
	return globalLogger.With().Str("component", component).Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
