package config

import (
	"errors"
	"fmt"

	"github.com/yndnr/bigsum-go/internal/cli/output"
	"github.com/yndnr/bigsum-go/internal/telemetry/logger"
)

// Verify validates the configuration.
func Verify(cfg *CLIConfig) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if err := verifyLimits(&cfg.Limits); err != nil {
		return err
	}
	if err := verifySession(&cfg.Session); err != nil {
		return err
	}
	if err := verifyOutput(&cfg.Output); err != nil {
		return err
	}
	return verifyLog(&cfg.Log)
}

func verifyLimits(cfg *LimitsSection) error {
	if cfg.MaxDigits < 1 {
		return errors.New("limits.max_digits must be at least 1")
	}
	return nil
}

func verifySession(cfg *SessionSection) error {
	switch cfg.OnInvalid {
	case PolicyKeep, PolicyRestart:
	default:
		return fmt.Errorf("session.on_invalid must be %q or %q, got %q", PolicyKeep, PolicyRestart, cfg.OnInvalid)
	}

	if cfg.TranscriptSize < 0 {
		return errors.New("session.transcript_size must not be negative")
	}
	return nil
}

func verifyOutput(cfg *OutputSection) error {
	if !output.Format(cfg.Format).Valid() {
		return fmt.Errorf("output.format %q is not one of %v", cfg.Format, output.Formats)
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	if !logger.ValidLevel(cfg.Level) {
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", cfg.Level)
	}
	if !logger.ValidFormat(cfg.Format) {
		return fmt.Errorf("log.format %q is not one of console, json", cfg.Format)
	}
	return nil
}
