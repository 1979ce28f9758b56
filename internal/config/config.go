// Package config provides YAML-based configuration loading for the sprites
// tool.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Config contains all configuration for the sprites tool.
type Config struct {
	Vocabulary string        `yaml:"vocabulary"` // Names file; empty = built-in
	Catalog    CatalogConfig `yaml:"catalog"`
	Preview    PreviewConfig `yaml:"preview"`
	Log        LogConfig     `yaml:"log"`
	Serve      ServeConfig   `yaml:"serve"`
}

// CatalogConfig controls how catalogs are built.
type CatalogConfig struct {
	RequireComplete bool `yaml:"require_complete"`
}

// PreviewConfig defines terminal playback parameters.
type PreviewConfig struct {
	TickRate int     `yaml:"tick_rate"` // Redraws per second
	Speed    float64 `yaml:"speed"`     // Playback speed multiplier
}

// LogConfig defines logging parameters.
type LogConfig struct {
	Level string `yaml:"level"`
}

// ServeConfig defines the SSH preview server.
type ServeConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if c.Preview.TickRate <= 0 || c.Preview.TickRate > 240 {
		return fmt.Errorf("preview.tick_rate must be between 1 and 240, got %d", c.Preview.TickRate)
	}
	if c.Preview.Speed <= 0 {
		return fmt.Errorf("preview.speed must be positive, got %g", c.Preview.Speed)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Serve.Address == "" {
		return fmt.Errorf("serve.address must not be empty")
	}
	if c.Serve.IdleTimeout < 0 {
		return fmt.Errorf("serve.idle_timeout must not be negative, got %s", c.Serve.IdleTimeout)
	}
	return nil
}

// LogLevel parses Log.Level.
func (c Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}
