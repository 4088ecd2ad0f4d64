// Package config loads arcgrid settings from a TOML file.
//
// A missing file at the default location is not an error: [Default] values
// apply. An explicitly named file must exist. Command-line flags override
// file values after loading.
//
// Example file:
//
//	tasks_dir = "ARC-AGI/data/training"
//	workers = 4
//	cell_size = 24
//
//	[cache]
//	enabled = true
//	ttl = "24h"
//	redis_url = ""
//
//	[server]
//	addr = ":8080"
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	arcerrors "github.com/matzehuels/arcgrid/pkg/errors"
)

const appName = "arcgrid"

// Config holds all settings.
type Config struct {
	TasksDir string `toml:"tasks_dir"`
	Workers  int    `toml:"workers"`
	CellSize int    `toml:"cell_size"` // pixels per cell for PNG output

	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// CacheConfig selects and tunes the result cache.
type CacheConfig struct {
	Enabled  bool     `toml:"enabled"`
	Dir      string   `toml:"dir"` // empty: XDG cache directory
	TTL      Duration `toml:"ttl"`
	RedisURL string   `toml:"redis_url"` // non-empty: use Redis instead of files
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Duration is a time.Duration written as a string ("24h") in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration as a Go duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		TasksDir: filepath.Join("ARC-AGI", "data", "training"),
		Workers:  4,
		CellSize: 24,
		Cache: CacheConfig{
			Enabled: true,
			TTL:     Duration{24 * time.Hour},
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// Load reads path on top of [Default]. When path is empty the default
// location is tried and silently skipped if absent.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	_, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return cfg, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, arcerrors.Wrap(arcerrors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return cfg, arcerrors.Wrap(arcerrors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.TasksDir == "" {
		return arcerrors.New(arcerrors.ErrCodeInvalidInput, "tasks_dir must not be empty")
	}
	if c.Workers < 1 {
		return arcerrors.New(arcerrors.ErrCodeInvalidInput, "workers must be at least 1, got %d", c.Workers)
	}
	if c.CellSize < 1 || c.CellSize > 128 {
		return arcerrors.New(arcerrors.ErrCodeInvalidInput, "cell_size must be in 1..128, got %d", c.CellSize)
	}
	if c.Cache.TTL.Duration < 0 {
		return arcerrors.New(arcerrors.ErrCodeInvalidInput, "cache ttl must not be negative")
	}
	return nil
}

// DefaultPath returns $XDG_CONFIG_HOME/arcgrid/config.toml, falling back to
// ~/.config/arcgrid/config.toml.
func DefaultPath() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// CacheDir returns the configured cache directory, or the XDG default
// ($XDG_CACHE_HOME/arcgrid, else ~/.cache/arcgrid).
func (c Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
