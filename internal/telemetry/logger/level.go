package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// globalLevel is shared by every logger built with New, so SetLevel
// adjusts them all at runtime.
var globalLevel = zap.NewAtomicLevelAt(zapcore.WarnLevel)

// SetLevel dynamically sets the global log level.
func SetLevel(level string) {
	globalLevel.SetLevel(parseLevel(level))
}

// GetLevel returns the current global log level.
func GetLevel() string {
	return globalLevel.Level().String()
}

// ValidLevel reports whether level names one of debug, info, warn (or
// warning) and error.
func ValidLevel(level string) bool {
	if level == "" {
		return false
	}
	l, err := zapcore.ParseLevel(normalizeLevel(level))
	return err == nil && l <= zapcore.ErrorLevel
}

// ValidFormat reports whether format names a known output format.
func ValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case "json", "console", "text":
		return true
	}
	return false
}

// parseLevel converts a level name to a zap level. Unknown names and the
// panic/fatal levels fall back to info.
func parseLevel(level string) zapcore.Level {
	l, err := zapcore.ParseLevel(normalizeLevel(level))
	if err != nil || l > zapcore.ErrorLevel {
		return zapcore.InfoLevel
	}
	return l
}

func normalizeLevel(level string) string {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		return "warn"
	}
	return level
}
