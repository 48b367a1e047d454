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

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if SWIMREPORTS_CONFIG is set
//  3. env (prefix SWIMREPORTS_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("SWIMREPORTS_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: SWIMREPORTS_SHEET_ROWS, SWIMREPORTS_COURSE, ...
	// Map env keys like SWIMREPORTS_SHEET_ROWS -> sheet_rows (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("SWIMREPORTS_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "swimreports_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Basic validation
	if cfg.SheetRows <= 0 || cfg.SheetColumns <= 0 {
		return nil, fmt.Errorf("%w: sheet geometry must be positive", ErrInvalidConfig)
	}
	if cfg.Course != "S" && cfg.Course != "L" {
		return nil, fmt.Errorf("%w: course must be S or L", ErrInvalidConfig)
	}
	return &cfg, nil
}
