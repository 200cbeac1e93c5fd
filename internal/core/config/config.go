// Package config handles configuration loading and validation for waggle.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/waggle/internal/core/styles"
)

// View modes for task listings.
const (
	ViewList  = "list"
	ViewBoard = "board"
)

// Config holds the application configuration.
type Config struct {
	// Theme is the color theme applied to CLI and TUI output. A stored
	// theme preference overrides this at runtime.
	Theme string `yaml:"theme"`
	// View is the default listing layout: list or board.
	View string `yaml:"view"`
	// DateFormat is the layout used to render timestamps in tables.
	DateFormat string         `yaml:"date_format"`
	Database   DatabaseConfig `yaml:"database"`

	DataDir string `yaml:"-"` // set by caller, not from config file
}

// DatabaseConfig tunes the SQLite connection.
type DatabaseConfig struct {
	MaxOpenConns int `yaml:"max_open_conns"`
	MaxIdleConns int `yaml:"max_idle_conns"`
	BusyTimeout  int `yaml:"busy_timeout"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Theme:      styles.DefaultTheme,
		View:       ViewList,
		DateFormat: "2006-01-02 15:04",
		Database: DatabaseConfig{
			MaxOpenConns: 1,
			MaxIdleConns: 1,
			BusyTimeout:  5000,
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills zero values left by a partial config file.
func (c *Config) applyDefaults() {
	def := DefaultConfig()

	if c.Theme == "" {
		c.Theme = def.Theme
	}
	if c.View == "" {
		c.View = def.View
	}
	if c.DateFormat == "" {
		c.DateFormat = def.DateFormat
	}
	if c.Database.MaxOpenConns <= 0 {
		c.Database.MaxOpenConns = def.Database.MaxOpenConns
	}
	if c.Database.MaxIdleConns <= 0 {
		c.Database.MaxIdleConns = def.Database.MaxIdleConns
	}
	if c.Database.BusyTimeout <= 0 {
		c.Database.BusyTimeout = def.Database.BusyTimeout
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if _, ok := styles.GetPalette(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", c.Theme, styles.ThemeNames())
	}

	if c.View != ViewList && c.View != ViewBoard {
		return fmt.Errorf("unknown view %q (expected %q or %q)", c.View, ViewList, ViewBoard)
	}

	return nil
}
