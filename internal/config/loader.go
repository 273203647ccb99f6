package config

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if HEADCOUNT_CONFIG is set
//  3. env (prefix HEADCOUNT_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New(ctx)

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("HEADCOUNT_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: HEADCOUNT_ADDR, HEADCOUNT_ROSTER_PATH, ...
	// Map env keys like HEADCOUNT_ROSTER_PATH -> roster_path (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("HEADCOUNT_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "headcount_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	// Basic validation
	if cfg.Addr == "" {
		return nil, errors.New("addr must not be empty")
	}
	if cfg.RosterPath == "" {
		return nil, errors.New("roster_path must not be empty")
	}
	if cfg.DefaultHeadcount < 0 {
		return nil, errors.New("default_headcount must not be negative")
	}
	return &cfg, nil
}
