// Package config provides configuration types and defaults for the pdg
// command line tool.
package config

import "time"

// TableConfig selects the particle table the CLI works on.
type TableConfig struct {
	// Path points to a user CSV table. Empty means the bundled tables.
	Path string `mapstructure:"path"`

	// Append merges the user table on top of the bundled ones instead
	// of replacing them.
	Append bool `mapstructure:"append"`
}

// LogConfig holds logging configuration options.
type LogConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Level   string `mapstructure:"level"` // "debug", "info", "warn" or "error"
	File    string `mapstructure:"file"`
}

// WatchConfig controls table auto-reload in watch mode.
type WatchConfig struct {
	Enabled  bool `mapstructure:"enabled"`
	Debounce int  `mapstructure:"debounce_ms"`
}

// Config holds all configuration options for the pdg tool.
type Config struct {
	Table TableConfig `mapstructure:"table"`
	Log   LogConfig   `mapstructure:"log"`
	Watch WatchConfig `mapstructure:"watch"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Table: TableConfig{Append: true},
		Log:   LogConfig{Enabled: false, Level: "info", File: "pdg-debug.log"},
		Watch: WatchConfig{Enabled: false, Debounce: 500},
	}
}

// DebounceDuration returns the watch debounce as a duration.
func (w WatchConfig) DebounceDuration() time.Duration {
	return time.Duration(w.Debounce) * time.Millisecond
}
