package config

// CLIConfig is the configuration for a bigsum session.
type CLIConfig struct {
	Limits  LimitsSection  `koanf:"limits" yaml:"limits"`
	Session SessionSection `koanf:"session" yaml:"session"`
	Output  OutputSection  `koanf:"output" yaml:"output"`
	Log     LogSection     `koanf:"log" yaml:"log"`
	Metrics MetricsSection `koanf:"metrics" yaml:"metrics"`
}

// LimitsSection bounds operand size.
type LimitsSection struct {
	// MaxDigits is the maximum number of significant digits per operand.
	MaxDigits int `koanf:"max_digits" yaml:"max_digits"`
}

// SessionSection configures the interactive session.
type SessionSection struct {
	// OnInvalid is the policy for an invalid line after the first operand:
	// "keep" holds the first operand, "restart" discards it.
	OnInvalid string `koanf:"on_invalid" yaml:"on_invalid"`

	// Prompt enables prompts on stderr before each read.
	Prompt bool `koanf:"prompt" yaml:"prompt"`

	// TranscriptSize bounds the in-memory transcript (0 disables it).
	TranscriptSize int `koanf:"transcript_size" yaml:"transcript_size"`
}

// OutputSection configures result rendering.
type OutputSection struct {
	Format string `koanf:"format" yaml:"format"` // plain, json, yaml
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level" yaml:"level"`   // debug, info, warn, error
	Format string `koanf:"format" yaml:"format"` // console, json
}

// MetricsSection configures metrics export.
type MetricsSection struct {
	// Textfile is written in Prometheus text format at exit when set.
	Textfile string `koanf:"textfile" yaml:"textfile"`
}
