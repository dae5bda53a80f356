// Package logger provides structured, context-aware logging for the keypath
// and lockpath packages. Implementations accept a message and a variadic
// list of key-value pairs; keys must be strings and must alternate with
// values in the form: key1, val1, key2, val2, ...
package logger

// Logger defines the structured logging interface.
type Logger interface {
	// Debugw logs a debug-level message with optional structured context.
	Debugw(msg string, keysAndValues ...any)

	// Infow logs an info-level message with optional structured context.
	Infow(msg string, keysAndValues ...any)

	// Warnw logs a warning-level message with optional structured context.
	Warnw(msg string, keysAndValues ...any)

	// Errorw logs an error-level message with optional structured context.
	Errorw(msg string, keysAndValues ...any)

	// Fatalw logs a fatal-level message with optional structured context and
	// then terminates the application.
	Fatalw(msg string, keysAndValues ...any)

	// Context enrichment methods return a new logger instance with
	// additional persistent context.

	// With adds arbitrary key-value pairs to the logger's context.
	With(keysAndValues ...any) Logger

	// WithComponent adds a component label (e.g., "lockpath") to categorize
	// log output.
	WithComponent(name string) Logger
}
