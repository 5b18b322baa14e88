package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment variable names.
const (
	EnvPrefix     = "RACELENS_"
	EnvConfigFile = "RACELENS_CONFIG"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if RACELENS_CONFIG is set
//  3. env (prefix RACELENS_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// RACELENS_DATA_PATH -> data_path. Underscores are kept to match the
	// flat koanf tags; RACELENS_CONFIG itself is not a field.
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, strings.ToLower(EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required fields.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.DataPath) == "" {
		return fmt.Errorf("%w: data_path must not be empty", ErrInvalidConfig)
	}
	format := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(c.DataFormat), "."))
	if _, ok := knownDataFormats[format]; !ok {
		return fmt.Errorf("%w: data_format %q is not one of json, yaml, sqlite", ErrInvalidConfig, c.DataFormat)
	}
	return nil
}

// knownDataFormats lists the data_format spellings the dataset loader accepts.
var knownDataFormats = map[string]struct{}{ //nolint:gochecknoglobals // lookup table
	"": {}, "json": {}, "yaml": {}, "yml": {}, "sqlite": {}, "sqlite3": {}, "db": {},
}
