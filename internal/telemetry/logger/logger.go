package logger

import (
	"context"
	"io"
	"os"

	"go.uber.org/zap"
)

// Logger is the application logger interface. Arguments after msg are
// alternating key/value pairs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
	WithContext(ctx context.Context) Logger
	Sync() error
}

// Config holds logger configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string
	// Format is the output format (json, console).
	Format string
	// Output is the output writer (defaults to os.Stderr).
	Output io.Writer
}

// DefaultConfig returns a default logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: "console",
		Output: os.Stderr,
	}
}

// SetDefault installs l as zap's global logger, used by Default, the
// package-level functions and FromContext when the context has none.
// The returned func restores the previous global.
func SetDefault(l Logger) (restore func()) {
	if zl, ok := l.(*zapLogger); ok {
		return zap.ReplaceGlobals(zl.sugar.Desugar())
	}
	return func() {}
}

// Default returns the global logger. It discards everything until
// SetDefault is called.
func Default() Logger {
	return &zapLogger{sugar: zap.S()}
}

// Debug logs at debug level using the default logger.
func Debug(msg string, args ...any) {
	zap.S().Debugw(msg, args...)
}

// Info logs at info level using the default logger.
func Info(msg string, args ...any) {
	zap.S().Infow(msg, args...)
}

// Warn logs at warn level using the default logger.
func Warn(msg string, args ...any) {
	zap.S().Warnw(msg, args...)
}

// Error logs at error level using the default logger.
func Error(msg string, args ...any) {
	zap.S().Errorw(msg, args...)
}
