package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/config"

	"github.com/natefinch/lumberjack"
)

// ServiceName is attached to every record written by a logger built with New.
const ServiceName = "maria-faz"

var (
	mu      sync.RWMutex
	current Logger
)

// ErrNotInitialized is returned by GetLogger before InitLogger succeeded.
var ErrNotInitialized = errors.New("logger not initialized: call InitLogger first")

// InitLogger builds a logger from settings and installs it as the process logger.
// A failed call leaves the previous logger in place.
func InitLogger(settings *config.LoggerSettings) error {
	l, err := New(settings)
	if err != nil {
		return err
	}
	mu.Lock()
	current = l
	mu.Unlock()
	return nil
}

// GetLogger returns the process logger.
func GetLogger() (Logger, error) {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return nil, ErrNotInitialized
	}
	return current, nil
}

// New builds a logger without installing it.
func New(settings *config.LoggerSettings) (Logger, error) {
	if settings == nil {
		return nil, fmt.Errorf("invalid logger settings: nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger settings: %w", err)
	}

	level := ParseLevel(settings.LogLevel)
	var l Logger
	switch settings.LogType {
	case config.LogTypeConsole:
		l = NewConsoleLogger(settings.LogLevel)
	case config.LogTypeJSON:
		l = newSlogLogger(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	case config.LogTypeFile:
		l = NewFileLogger(settings.LogLevel, settings.FilePath, settings.MaxSize, settings.MaxBackups, settings.MaxAge)
	default:
		return nil, fmt.Errorf("unsupported log type: %s", settings.LogType)
	}
	return l.With("service", ServiceName), nil
}

// ParseLevel maps a configured level name to a slog level. Unknown names map to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelWarning, "warn":
		return slog.LevelWarn
	case config.LogLevelError, config.LogLevelCritical:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func rotatingWriter(filePath string, maxSize, maxBackups, maxAge int) io.Writer {
	return &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}
}
