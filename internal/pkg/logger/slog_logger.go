package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

type slogLogger struct {
	logger *slog.Logger
	exit   func(code int)
}

func newSlogLogger(h slog.Handler) *slogLogger {
	return &slogLogger{logger: slog.New(h), exit: os.Exit}
}

// NewConsoleLogger creates a logger writing key=value lines to stdout.
func NewConsoleLogger(level string) Logger {
	return newTextLogger(os.Stdout, level)
}

// NewFileLogger creates a JSON logger writing to a size rotated file.
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) Logger {
	w := rotatingWriter(filePath, maxSize, maxBackups, maxAge)
	return newSlogLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

func newTextLogger(w io.Writer, level string) *slogLogger {
	return newSlogLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

func (l *slogLogger) Debug(args ...interface{}) { l.logger.Debug(fmt.Sprint(args...)) }
func (l *slogLogger) Info(args ...interface{})  { l.logger.Info(fmt.Sprint(args...)) }
func (l *slogLogger) Warn(args ...interface{})  { l.logger.Warn(fmt.Sprint(args...)) }
func (l *slogLogger) Error(args ...interface{}) { l.logger.Error(fmt.Sprint(args...)) }

// Fatal logs at error level and exits with status 1.
func (l *slogLogger) Fatal(args ...interface{}) {
	l.logger.Error(fmt.Sprint(args...))
	l.exit(1)
}

// Panic logs at error level and panics with the message.
func (l *slogLogger) Panic(args ...interface{}) {
	msg := fmt.Sprint(args...)
	l.logger.Error(msg)
	panic(msg)
}

func (l *slogLogger) With(keyvals ...interface{}) Logger {
	return &slogLogger{logger: l.logger.With(keyvals...), exit: l.exit}
}
