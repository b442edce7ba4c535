package config

import (
	"fmt"

	"github.com/yndnr/bigsum-go/internal/infra/confloader"
)

// Load builds the configuration from defaults, an optional YAML file,
// BIGSUM_* environment variables and flag overrides keyed by dotted path
// (e.g. "limits.max_digits"), then verifies it.
func Load(path string, flags map[string]any) (*CLIConfig, error) {
	cfg, _, err := LoadWithOrigins(path, flags)
	return cfg, err
}

// LoadWithOrigins is Load that also reports which source set each key.
func LoadWithOrigins(path string, flags map[string]any) (*CLIConfig, []confloader.Origin, error) {
	cfg := Default()

	l := confloader.NewLoader(
		confloader.WithConfigFile(path),
		confloader.WithFlags(flags),
	)
	if err := l.Load(cfg); err != nil {
		return nil, nil, err
	}

	if err := Verify(cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, l.Origins(), nil
}
