// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mtamigo/focus/internal/domain"
	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the TOML file the loader reads.
const ConfigFileName = "config.toml"

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from a TOML file.
type Loader struct {
	confDir string // Directory holding config.toml (e.g. ~/.config/focus)
}

// NewLoader creates a new Loader for the default config directory.
func NewLoader() *Loader {
	return &Loader{confDir: defaultConfigDir()}
}

// NewLoaderWithDir creates a new Loader with a custom config
// directory. This is useful for testing.
func NewLoaderWithDir(dir string) *Loader {
	return &Loader{confDir: dir}
}

// defaultConfigDir returns XDG_CONFIG_HOME/focus, falling back to
// ~/.config/focus.
func defaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "focus")
}

// rawConfig mirrors the TOML file layout. Clock times are "HH:MM"
// strings in the file and parsed into minutes on load.
type rawConfig struct {
	Capacity struct {
		Weekday rawCapacity `toml:"weekday"`
		Weekend rawCapacity `toml:"weekend"`
	} `toml:"capacity"`
	AI struct {
		Enabled        bool   `toml:"enabled"`
		Endpoint       string `toml:"endpoint"`
		APIKey         string `toml:"api_key"`
		TimeoutSeconds int    `toml:"timeout_seconds"`
	} `toml:"ai"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

type rawCapacity struct {
	Start        string `toml:"start"`
	End          string `toml:"end"`
	TotalMinutes int    `toml:"total_minutes"`
}

// Load returns the configuration merged over defaults. A missing file
// is not an error; the defaults are returned.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()
	if l.confDir == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(filepath.Join(l.confDir, ConfigFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := applyCapacity(&cfg.Weekday, raw.Capacity.Weekday); err != nil {
		return nil, err
	}
	if err := applyCapacity(&cfg.Weekend, raw.Capacity.Weekend); err != nil {
		return nil, err
	}

	cfg.AI.Enabled = raw.AI.Enabled
	if raw.AI.Endpoint != "" {
		cfg.AI.Endpoint = raw.AI.Endpoint
	}
	if raw.AI.APIKey != "" {
		cfg.AI.APIKey = raw.AI.APIKey
	}
	if raw.AI.TimeoutSeconds > 0 {
		cfg.AI.Timeout = time.Duration(raw.AI.TimeoutSeconds) * time.Second
	}
	if raw.Log.Level != "" {
		cfg.Log.Level = raw.Log.Level
	}

	return cfg, nil
}

// applyCapacity overlays a raw capacity section onto the default.
// Empty fields keep the default value; the advertised total is taken
// as given, not re-derived, so a mismatch in the file survives into
// the config for Validate to report.
func applyCapacity(dst *domain.TimeCapacity, raw rawCapacity) error {
	if raw.Start != "" {
		start, err := domain.ParseClock(raw.Start)
		if err != nil {
			return fmt.Errorf("capacity start: %w", err)
		}
		dst.Start = start
	}
	if raw.End != "" {
		end, err := domain.ParseClock(raw.End)
		if err != nil {
			return fmt.Errorf("capacity end: %w", err)
		}
		dst.End = end
	}
	if raw.TotalMinutes != 0 {
		dst.TotalMinutes = raw.TotalMinutes
	} else if raw.Start != "" || raw.End != "" {
		dst.TotalMinutes = dst.End - dst.Start
	}
	return nil
}
