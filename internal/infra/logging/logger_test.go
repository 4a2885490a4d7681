package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestFormatLog(t *testing.T) {
	ts := time.Date(2025, 3, 10, 9, 32, 51, 0, time.UTC)
	got := formatLog(ts, slog.LevelInfo, "task", "created #1")
	assert.Equal(t, "[2025-03-10 09:32:51] [INFO] [task] created #1\n", got)
}

func TestLogger_WritesToFile(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("task", "created #1")
	logger.Debug("task", "below the floor") // filtered out
	logger.Error("store", "write failed")

	content, err := os.ReadFile(filepath.Join(dir, "logs", "focus.log"))
	require.NoError(t, err)

	assert.Contains(t, string(content), "[INFO] [task] created #1")
	assert.Contains(t, string(content), "[ERROR] [store] write failed")
	assert.NotContains(t, string(content), "below the floor")
}

func TestLogger_DisabledWhenNoDataDir(t *testing.T) {
	logger := New("", slog.LevelDebug)
	logger.Info("task", "dropped")
	require.NoError(t, logger.Close())
}
