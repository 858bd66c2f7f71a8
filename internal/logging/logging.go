// Package logging builds the zerolog loggers used across the program.
//
// The terminal page owns stdout, so logs are written to a file when one is
// requested and discarded otherwise.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Options selects where logs go and how verbose they are.
type Options struct {
	Path  string
	Level string
}

// Logger is a root logger plus the file it writes to, if any.
type Logger struct {
	root zerolog.Logger
	file *os.File
}

// Open creates the root logger. An empty path yields a no-op logger.
func Open(opts Options) (*Logger, error) {
	if opts.Path == "" {
		return &Logger{root: zerolog.Nop()}, nil
	}
	level := zerolog.InfoLevel
	if opts.Level != "" {
		l, err := zerolog.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		level = l
	}
	f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return &Logger{root: New(f, level), file: f}, nil
}

// New writes JSON lines with timestamps to w.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// For returns a child logger tagged with component.
func (l *Logger) For(component string) zerolog.Logger {
	return l.root.With().Str("component", component).Logger()
}

func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
