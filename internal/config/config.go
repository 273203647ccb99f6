// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...Option) initializer to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// RosterPath points at the employee roster CSV file.
	RosterPath string `koanf:"roster_path"`

	// IDPrefix marks real data rows; rows whose employee_id does not
	// start with it are treated as footers and dropped.
	IDPrefix string `koanf:"id_prefix"`

	// DefaultHeadcount is used when a scenario request omits headcount.
	DefaultHeadcount int `koanf:"default_headcount"`

	// MaxExportRows caps the size of CSV exports.
	MaxExportRows int `koanf:"max_export_rows"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use and currently
// unused.
func New(_ context.Context) *Config {
	c := &Config{
		LogLevel:         "info",
		Addr:             ":9080",
		RosterPath:       "data/people_headcount.csv",
		IDPrefix:         "E",
		DefaultHeadcount: 10,
		MaxExportRows:    10_000,
	}
	return c
}
