// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Load layers a YAML file and MERGINGTON_* environment variables on top.
// - Errors are wrapped with this package's sentinel kinds.
package config

import (
	"github.com/okian/mergington/internal/domain/activity"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8000".
	Addr string `koanf:"addr"`

	// Activities replaces the built-in baseline when non-empty. Only settable
	// from the config file.
	Activities map[string]activity.Activity `koanf:"activities"`
}

// New creates a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		Addr:      ":8000",
	}
}
