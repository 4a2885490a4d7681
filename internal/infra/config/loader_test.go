package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mtamigo/focus/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) *Loader {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))
	return NewLoaderWithDir(dir)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	loader := NewLoaderWithDir(t.TempDir())
	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCapacity(domain.Weekday), cfg.Weekday)
	assert.Equal(t, domain.DefaultCapacity(domain.Weekend), cfg.Weekend)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.AI.Enabled)
}

func TestLoad_OverridesCapacityAndAI(t *testing.T) {
	loader := writeConfig(t, `
[capacity.weekday]
start = "19:00"
end = "23:00"
total_minutes = 240

[ai]
enabled = true
endpoint = "http://localhost:3000/api/ai"
timeout_seconds = 3

[log]
level = "debug"
`)

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, 19*60, cfg.Weekday.Start)
	assert.Equal(t, 23*60, cfg.Weekday.End)
	assert.Equal(t, 240, cfg.Weekday.TotalMinutes)
	// Weekend untouched.
	assert.Equal(t, domain.DefaultCapacity(domain.Weekend), cfg.Weekend)
	assert.True(t, cfg.AI.Enabled)
	assert.Equal(t, "http://localhost:3000/api/ai", cfg.AI.Endpoint)
	assert.Equal(t, 3*time.Second, cfg.AI.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_TotalDerivedWhenOmitted(t *testing.T) {
	loader := writeConfig(t, `
[capacity.weekend]
start = "10:00"
end = "16:00"
`)
	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, 360, cfg.Weekend.TotalMinutes)
	require.NoError(t, cfg.Weekend.Validate())
}

func TestLoad_InconsistentTotalIsKept(t *testing.T) {
	// The advertised total wins even when it disagrees with the
	// window bounds; Validate surfaces it but Load doesn't reject.
	loader := writeConfig(t, `
[capacity.weekday]
start = "18:00"
end = "22:00"
total_minutes = 300
`)
	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Weekday.TotalMinutes)
	assert.Error(t, cfg.Weekday.Validate())
}

func TestLoad_BadClockRejected(t *testing.T) {
	loader := writeConfig(t, `
[capacity.weekday]
start = "25:99"
`)
	_, err := loader.Load()
	assert.ErrorIs(t, err, domain.ErrInvalidClock)
}
