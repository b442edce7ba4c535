package config

// Default values.
const (
	DefaultMaxDigits      = 1000
	DefaultOnInvalid      = PolicyKeep
	DefaultTranscriptSize = 1000
	DefaultOutputFormat   = "plain"
	DefaultLogLevel       = "warn"
	DefaultLogFormat      = "console"
)

// Invalid-after-first policies.
const (
	PolicyKeep    = "keep"
	PolicyRestart = "restart"
)

// Default returns the default configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		Limits: LimitsSection{
			MaxDigits: DefaultMaxDigits,
		},
		Session: SessionSection{
			OnInvalid:      DefaultOnInvalid,
			Prompt:         false,
			TranscriptSize: DefaultTranscriptSize,
		},
		Output: OutputSection{
			Format: DefaultOutputFormat,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
