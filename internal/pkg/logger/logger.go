// Package logger provides the process-wide structured logger used by every layer.
package logger

// Logger is the leveled logger handed to handlers, services and repositories.
// Arguments are concatenated like fmt.Sprint.
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})

	// With returns a logger that adds the key/value pairs to every record.
	With(keyvals ...interface{}) Logger
}
