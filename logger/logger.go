// Package logger provides the structured logging facade used across the engine.
// Call sites depend on the Logger interface; the zap-backed implementation is built
// from a Config that is normally read from the YAML configuration file.
package logger

import "context"

// Logger defines the structured logging operations used by engine packages.
type Logger interface {
	// Debug logs a message at debug level.
	//
	// Parameters:
	//   - msg: the log message
	//   - fields: structured key/value fields attached to the entry
	Debug(msg string, fields ...Field)

	// Info logs a message at info level.
	//
	// Parameters:
	//   - msg: the log message
	//   - fields: structured key/value fields attached to the entry
	Info(msg string, fields ...Field)

	// Warn logs a message at warn level.
	//
	// Parameters:
	//   - msg: the log message
	//   - fields: structured key/value fields attached to the entry
	Warn(msg string, fields ...Field)

	// Error logs a message at error level.
	//
	// Parameters:
	//   - msg: the log message
	//   - fields: structured key/value fields attached to the entry
	Error(msg string, fields ...Field)

	// With returns a child Logger that always includes the given fields.
	//
	// Parameters:
	//   - fields: fields to attach to every entry of the child
	//
	// Returns:
	//   - Logger: the child logger
	With(fields ...Field) Logger

	// Sync flushes any buffered entries.
	//
	// Returns:
	//   - error: error from the underlying sink, if any
	Sync() error
}

// Field is a structured log field.
type Field struct {
	Key   string
	Value any
}

// F is shorthand for constructing a Field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

type loggerKeyType struct{}

var loggerKey = loggerKeyType{}

// WithLogger returns a copy of ctx carrying l.
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the Logger stored in ctx, or a no-op Logger if there is none.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey).(Logger); ok {
		return l
	}
	return NewNop()
}
