// Package logging provides the logging abstraction used by every component of the
// expense tracker. Components receive a Logger through their constructor and never
// touch logrus directly.
package logging

// Logger is the structured logger handed to stores, services and commands.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a logger carrying err as a field.
	WithError(err error) Logger

	// WithField returns a logger carrying one extra field.
	WithField(key string, value interface{}) Logger

	// WithFields returns a logger carrying the given fields.
	WithFields(fields ...Field) Logger
}

// Field is a key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for building a Field inline.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
