package confloader

import (
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	Limits struct {
		MaxDigits int `koanf:"max_digits" yaml:"max_digits"`
	} `koanf:"limits" yaml:"limits"`
	Session struct {
		OnInvalid string `koanf:"on_invalid" yaml:"on_invalid"`
		Prompt    bool   `koanf:"prompt" yaml:"prompt"`
	} `koanf:"session" yaml:"session"`
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bigsum.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestNewLoader(t *testing.T) {
	l := NewLoader()
	if l == nil {
		t.Fatal("NewLoader() returned nil")
	}
	if l.envPrefix != DefaultEnvPrefix {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, DefaultEnvPrefix)
	}
}

func TestNewLoader_WithOptions(t *testing.T) {
	l := NewLoader(
		WithEnvPrefix("TEST_"),
		WithConfigFile("/path/to/config.yaml"),
		WithFlags(map[string]any{"limits.max_digits": 5}),
	)

	if l.envPrefix != "TEST_" {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, "TEST_")
	}
	if l.filePath != "/path/to/config.yaml" {
		t.Errorf("filePath = %q, want %q", l.filePath, "/path/to/config.yaml")
	}
	if len(l.flags) != 1 {
		t.Errorf("flags = %v, want one entry", l.flags)
	}
}

func TestLoader_LoadFile(t *testing.T) {
	path := writeConfig(t, `
limits:
  max_digits: 50
session:
  on_invalid: restart
`)

	l := NewLoader()
	if err := l.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if got := l.GetInt("limits.max_digits"); got != 50 {
		t.Errorf("limits.max_digits = %d, want 50", got)
	}
	if got := l.GetString("session.on_invalid"); got != "restart" {
		t.Errorf("session.on_invalid = %q, want %q", got, "restart")
	}
}

func TestLoader_LoadFile_NotFound(t *testing.T) {
	if err := NewLoader().LoadFile("/nonexistent/bigsum.yaml"); err == nil {
		t.Error("LoadFile() should return error for nonexistent file")
	}
}

func TestLoader_LoadFile_Empty(t *testing.T) {
	if err := NewLoader().LoadFile(""); err != nil {
		t.Errorf("LoadFile(\"\") should not error, got: %v", err)
	}
}

func TestLoader_LoadEnv(t *testing.T) {
	t.Setenv("BIGSUM_LIMITS_MAX_DIGITS", "2000")
	t.Setenv("BIGSUM_SESSION_ON_INVALID", "restart")

	l := NewLoader()
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	if got := l.GetInt("limits.max_digits"); got != 2000 {
		t.Errorf("limits.max_digits = %d, want 2000", got)
	}
	if got := l.GetString("session.on_invalid"); got != "restart" {
		t.Errorf("session.on_invalid = %q, want %q", got, "restart")
	}
}

func TestLoader_LoadMap(t *testing.T) {
	l := NewLoader()

	data := map[string]any{
		"limits.max_digits": 7,
		"session.prompt":    true,
	}
	if err := l.LoadMap(data); err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}

	if got := l.GetInt("limits.max_digits"); got != 7 {
		t.Errorf("limits.max_digits = %d, want 7", got)
	}
	if !l.GetBool("session.prompt") {
		t.Error("session.prompt should be true")
	}
}

func TestLoader_Load_Priority(t *testing.T) {
	path := writeConfig(t, `
limits:
  max_digits: 10
session:
  on_invalid: restart
  prompt: true
`)
	t.Setenv("BIGSUM_LIMITS_MAX_DIGITS", "20")

	var cfg testConfig
	cfg.Session.OnInvalid = "keep"

	l := NewLoader(
		WithConfigFile(path),
		WithFlags(map[string]any{"session.on_invalid": "keep"}),
	)
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Limits.MaxDigits != 20 {
		t.Errorf("MaxDigits = %d, want 20 (env beats file)", cfg.Limits.MaxDigits)
	}
	if cfg.Session.OnInvalid != "keep" {
		t.Errorf("OnInvalid = %q, want %q (flag beats file)", cfg.Session.OnInvalid, "keep")
	}
	if !cfg.Session.Prompt {
		t.Error("Prompt should come from the file")
	}
	if !l.IsLoaded() {
		t.Error("IsLoaded() should be true after Load")
	}
}

func TestLoader_Load_KeepsDefaults(t *testing.T) {
	var cfg testConfig
	cfg.Limits.MaxDigits = 1000
	cfg.Session.OnInvalid = "keep"

	if err := NewLoader(WithEnvPrefix("BIGSUM_TEST_UNSET_")).Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Limits.MaxDigits != 1000 || cfg.Session.OnInvalid != "keep" {
		t.Errorf("defaults were overwritten: %+v", cfg)
	}
}

func TestLoader_Load_BadFile(t *testing.T) {
	path := writeConfig(t, "limits: [unterminated")

	var cfg testConfig
	if err := NewLoader(WithConfigFile(path)).Load(&cfg); err == nil {
		t.Error("Load() should fail on invalid YAML")
	}
}

func TestLoader_Keys(t *testing.T) {
	l := NewLoader()
	if err := l.LoadMap(map[string]any{"a.one": 1, "b.two": 2}); err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}

	if keys := l.Keys(); len(keys) < 2 {
		t.Errorf("Keys() returned %d keys, want at least 2", len(keys))
	}
	if l.Get("a.one") == nil {
		t.Error("Get(a.one) should not be nil")
	}
}

func TestLoader_Origins(t *testing.T) {
	path := writeConfig(t, `
session:
  prompt: true
`)
	t.Setenv("BIGSUM_LIMITS_MAX_DIGITS", "20")
	t.Setenv("BIGSUM_CONFIG", "/ignored.yaml")

	var cfg testConfig
	l := NewLoader(
		WithConfigFile(path),
		WithFlags(map[string]any{"session.on_invalid": "restart"}),
	)
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []Origin{
		{Key: "limits.max_digits", Source: SourceEnv},
		{Key: "session.on_invalid", Source: SourceFlag},
		{Key: "session.prompt", Source: SourceFile},
	}
	got := l.Origins()
	if len(got) != len(want) {
		t.Fatalf("Origins() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Origins()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if _, ok := l.Origin("config"); ok {
		t.Error("BIGSUM_CONFIG has no section and should be skipped")
	}
}

func TestLoader_Origins_Defaults(t *testing.T) {
	var cfg testConfig
	cfg.Limits.MaxDigits = 1000

	l := NewLoader(WithEnvPrefix("BIGSUM_TEST_UNSET_"))
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	for _, key := range []string{"limits.max_digits", "session.on_invalid", "session.prompt"} {
		if src, ok := l.Origin(key); !ok || src != SourceDefault {
			t.Errorf("Origin(%q) = %q, %v; want default", key, src, ok)
		}
	}
}

func TestLoader_LoadMap_Empty(t *testing.T) {
	l := NewLoader()
	if err := l.LoadMap(nil); err != nil {
		t.Fatalf("LoadMap(nil) error = %v", err)
	}
	if len(l.Origins()) != 0 {
		t.Errorf("Origins() = %v, want none", l.Origins())
	}
}

func TestMapSource(t *testing.T) {
	p := mapSource{"k": "v"}

	if _, err := p.ReadBytes(); err != errNoBytes {
		t.Errorf("ReadBytes() error = %v, want %v", err, errNoBytes)
	}
	m, err := p.Read()
	if err != nil || m["k"] != "v" {
		t.Errorf("Read() = %v, %v", m, err)
	}
}
