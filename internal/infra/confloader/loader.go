package confloader

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/maps"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

// DefaultEnvPrefix is the default environment variable prefix.
const DefaultEnvPrefix = "BIGSUM_"

// Loader merges configuration layers into one koanf tree.
type Loader struct {
	k         *koanf.Koanf
	origins   map[string]Source
	envPrefix string
	filePath  string
	flags     map[string]any
	loaded    bool
}

// Option configures a Loader.
type Option func(*Loader)

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(l *Loader) { l.envPrefix = prefix }
}

// WithConfigFile sets the YAML file to read. Empty means no file.
func WithConfigFile(path string) Option {
	return func(l *Loader) { l.filePath = path }
}

// WithFlags sets overrides keyed by dotted path ("limits.max_digits").
func WithFlags(flags map[string]any) Option {
	return func(l *Loader) { l.flags = flags }
}

// NewLoader creates a Loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		origins:   make(map[string]Source),
		envPrefix: DefaultEnvPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load merges, in order, the values already in target, the file, the
// environment and the flags, then decodes the result back into target.
// target must be a pointer to a struct with matching koanf and yaml tags.
func (l *Loader) Load(target any) error {
	layers := []struct {
		name string
		load func() error
	}{
		{"defaults", func() error { return l.LoadDefaults(target) }},
		{"config file", func() error { return l.LoadFile(l.filePath) }},
		{"env", l.LoadEnv},
		{"flags", func() error { return l.LoadMap(l.flags) }},
	}
	for _, layer := range layers {
		if err := layer.load(); err != nil {
			return fmt.Errorf("load %s: %w", layer.name, err)
		}
	}

	if err := l.k.Unmarshal("", target); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	l.loaded = true
	return nil
}

// LoadDefaults records the current field values of target as the
// lowest layer.
func (l *Loader) LoadDefaults(target any) error {
	raw, err := yaml.Marshal(target)
	if err != nil {
		return err
	}
	m, err := kyaml.Parser().Unmarshal(raw)
	if err != nil {
		return err
	}
	return l.merge(SourceDefault, mapSource(m), nil)
}

// LoadFile merges a YAML file. An empty path is a no-op.
func (l *Loader) LoadFile(path string) error {
	if path == "" {
		return nil
	}
	if err := l.merge(SourceFile, file.Provider(path), kyaml.Parser()); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadEnv merges prefixed environment variables.
//
// Only the first underscore after the prefix separates the section, so key
// names keep theirs: BIGSUM_LIMITS_MAX_DIGITS is limits.max_digits.
// Variables without a section (BIGSUM_CONFIG) are skipped.
func (l *Loader) LoadEnv() error {
	return l.merge(SourceEnv, env.Provider(l.envPrefix, ".", func(name string) string {
		section, key, ok := strings.Cut(strings.ToLower(strings.TrimPrefix(name, l.envPrefix)), "_")
		if !ok || section == "" || key == "" {
			return ""
		}
		return section + "." + key
	}), nil)
}

// LoadMap merges flattened dotted keys as the flag layer.
func (l *Loader) LoadMap(data map[string]any) error {
	if len(data) == 0 {
		return nil
	}
	return l.merge(SourceFlag, mapSource(maps.Unflatten(data, ".")), nil)
}

// merge loads one layer on its own so its keys can be attributed, then
// folds it into the main tree.
func (l *Loader) merge(src Source, p koanf.Provider, pa koanf.Parser) error {
	layer := koanf.New(".")
	if err := layer.Load(p, pa); err != nil {
		return err
	}
	for _, key := range layer.Keys() {
		l.origins[key] = src
	}
	return l.k.Merge(layer)
}

// Origin returns the source that last set key.
func (l *Loader) Origin(key string) (Source, bool) {
	s, ok := l.origins[key]
	return s, ok
}

// Origins returns every loaded key with its source, sorted by key.
func (l *Loader) Origins() []Origin {
	return sortedOrigins(l.origins)
}

// Get returns the raw value at key.
func (l *Loader) Get(key string) any { return l.k.Get(key) }

// GetString returns the value at key as a string.
func (l *Loader) GetString(key string) string { return l.k.String(key) }

// GetInt returns the value at key as an int.
func (l *Loader) GetInt(key string) int { return l.k.Int(key) }

// GetBool returns the value at key as a bool.
func (l *Loader) GetBool(key string) bool { return l.k.Bool(key) }

// IsLoaded reports whether Load has completed.
func (l *Loader) IsLoaded() bool { return l.loaded }

// Keys returns every loaded key.
func (l *Loader) Keys() []string { return l.k.Keys() }
