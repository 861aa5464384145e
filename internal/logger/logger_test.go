package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/landlord-counter/internal/config"
)

// Logger tests share package state and must not run in parallel.

func readLog(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile(Path())
	require.NoError(t, err)
	return string(data)
}

func TestInit_WritesToFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(config.LogConfig{Dir: dir, MaxSizeMB: 1, Level: "info"}))
	t.Cleanup(Close)

	assert.Equal(t, filepath.Join(dir, logName), Path())

	Info("hand accepted: %s", "KKK")
	Error("hand rejected: %s", "XYZ")
	Debug("hidden at info level")

	content := readLog(t)
	assert.Contains(t, content, "Logger initialized")
	assert.Contains(t, content, "hand accepted: KKK")
	assert.Contains(t, content, "hand rejected: XYZ")
	assert.Contains(t, content, SessionID())
	assert.NotContains(t, content, "hidden at info level")
}

func TestInit_DebugLevel(t *testing.T) {
	require.NoError(t, Init(config.LogConfig{Dir: t.TempDir(), Level: "debug"}))
	t.Cleanup(Close)

	Debug("visible at debug level")
	Warn("careful")

	content := readLog(t)
	assert.Contains(t, content, "visible at debug level")
	assert.Contains(t, content, "careful")
}

func TestInit_InvalidLevel(t *testing.T) {
	err := Init(config.LogConfig{Dir: t.TempDir(), Level: "loud"})
	assert.Error(t, err)
}

func TestInit_RotatesLargeFile(t *testing.T) {
	dir := t.TempDir()
	big := strings.Repeat("x", 1024*1024+1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, logName), []byte(big), 0o644))

	require.NoError(t, Init(config.LogConfig{Dir: dir, MaxSizeMB: 1, Level: "info"}))
	t.Cleanup(Close)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "the oversized log is kept as a backup")

	info, err := os.Stat(Path())
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(len(big)))
}

func TestPanic_LogsStack(t *testing.T) {
	require.NoError(t, Init(config.LogConfig{Dir: t.TempDir(), Level: "info"}))
	t.Cleanup(Close)

	Panic("boom")

	content := readLog(t)
	assert.Contains(t, content, "[PANIC] boom")
	assert.Contains(t, content, "goroutine")
}

func TestClose_DiscardsOutput(t *testing.T) {
	require.NoError(t, Init(config.LogConfig{Dir: t.TempDir(), Level: "info"}))
	path := Path()
	Close()

	Info("after close")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "after close")
}
