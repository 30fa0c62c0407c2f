// Package logging builds the zerolog loggers used across rubrica.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// New returns a logger writing JSON lines to w at the named level.
// Unknown levels fall back to info.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// NewConsole returns a human-readable logger writing to w, used by CLI
// subcommands.
func NewConsole(w io.Writer, level string) zerolog.Logger {
	return New(zerolog.ConsoleWriter{Out: w, NoColor: true}, level)
}

// OpenFile returns a logger appending to path and a closer for the file.
func OpenFile(path, level string) (zerolog.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	return New(f, level), f, nil
}
