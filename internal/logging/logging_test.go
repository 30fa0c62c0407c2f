package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn")
	log.Info().Msg("hidden")
	log.Warn().Str("id", "x").Msg("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), `"id":"x"`)
}

func TestNewUnknownLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "chatty")
	log.Debug().Msg("debug")
	log.Info().Msg("info")
	require.NotContains(t, buf.String(), `"message":"debug"`)
	require.Contains(t, buf.String(), `"message":"info"`)
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "rubrica.log")
	log, closer, err := OpenFile(path, "debug")
	require.NoError(t, err)
	log.Debug().Msg("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "hello")
}

func TestNewConsoleIsReadable(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsole(&buf, "info")
	log.Info().Str("path", "book.csv").Msg("contacts imported")
	require.Contains(t, buf.String(), "contacts imported")
	require.Contains(t, buf.String(), "path=book.csv")
	require.NotContains(t, buf.String(), "{")
}
