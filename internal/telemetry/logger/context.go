package logger

import "context"

// contextKey is a type for context keys to avoid collisions.
type contextKey string

const (
	loggerKey    contextKey = "bigsum.logger"
	sessionIDKey contextKey = "bigsum.session_id"
	fieldsKey    contextKey = "bigsum.fields"
)

// SessionIDField is the log field carrying the session ID.
const SessionIDField = "session_id"

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext extracts the logger from context.
// Returns the default logger if none is set.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey).(Logger); ok {
		return l
	}
	return Default()
}

// WithFields returns a context whose L logger carries the given key/value
// pairs after any attached by parent contexts.
func WithFields(ctx context.Context, args ...any) context.Context {
	if len(args) == 0 {
		return ctx
	}
	prev := fieldsFromContext(ctx)
	merged := make([]any, 0, len(prev)+len(args))
	merged = append(merged, prev...)
	merged = append(merged, args...)
	return context.WithValue(ctx, fieldsKey, merged)
}

func fieldsFromContext(ctx context.Context) []any {
	f, _ := ctx.Value(fieldsKey).([]any)
	return f
}

// WithSessionID adds a session ID to the context and to its log fields.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	ctx = context.WithValue(ctx, sessionIDKey, sessionID)
	return WithFields(ctx, SessionIDField, sessionID)
}

// SessionIDFromContext extracts the session ID from context.
func SessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}

// L returns the context logger enriched with the context's fields.
func L(ctx context.Context) Logger {
	return FromContext(ctx).WithContext(ctx)
}
