package logger

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapLogger adapts a zap.SugaredLogger to Logger. Arguments are alternating
// key/value pairs, as with zap's *w methods.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

// New creates a new logger with the given configuration.
func New(cfg Config) (Logger, error) {
	globalLevel.SetLevel(parseLevel(cfg.Level))

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch strings.ToLower(cfg.Format) {
	case "console", "text":
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	default: // json
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(output), globalLevel)
	return &zapLogger{sugar: zap.New(core).Sugar()}, nil
}

func (l *zapLogger) Debug(msg string, args ...any) {
	l.sugar.Debugw(msg, args...)
}

func (l *zapLogger) Info(msg string, args ...any) {
	l.sugar.Infow(msg, args...)
}

func (l *zapLogger) Warn(msg string, args ...any) {
	l.sugar.Warnw(msg, args...)
}

func (l *zapLogger) Error(msg string, args ...any) {
	l.sugar.Errorw(msg, args...)
}

func (l *zapLogger) With(args ...any) Logger {
	return &zapLogger{sugar: l.sugar.With(args...)}
}

// WithContext returns a logger carrying the fields attached to ctx with
// WithFields and WithSessionID.
func (l *zapLogger) WithContext(ctx context.Context) Logger {
	if f := fieldsFromContext(ctx); len(f) > 0 {
		return l.With(f...)
	}
	return l
}

// Sync flushes buffered entries.
func (l *zapLogger) Sync() error {
	return l.sugar.Sync()
}
