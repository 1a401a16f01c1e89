//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerSettings_Validate(t *testing.T) {
	rotated := func(mutate func(*LoggerSettings)) *LoggerSettings {
		s := &LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeFile, FilePath: "/var/log/maria-faz/api.log", MaxSize: 10, MaxBackups: 3, MaxAge: 28}
		if mutate != nil {
			mutate(s)
		}
		return s
	}

	tests := []struct {
		name     string
		settings *LoggerSettings
		wantErr  string
	}{
		{"console", &LoggerSettings{LogLevel: LogLevelDebug, LogType: LogTypeConsole}, ""},
		{"json to stdout", &LoggerSettings{LogLevel: LogLevelWarning, LogType: LogTypeJSON}, ""},
		{"rotated file", rotated(nil), ""},
		{"console ignores rotation fields", &LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeConsole, MaxSize: 10}, ""},
		{"missing level", &LoggerSettings{LogType: LogTypeConsole}, "LogLevel"},
		{"unknown level", &LoggerSettings{LogLevel: "verbose", LogType: LogTypeConsole}, "LogLevel"},
		{"unknown type", &LoggerSettings{LogLevel: LogLevelInfo, LogType: "syslog"}, "LogType"},
		{"file without path", rotated(func(s *LoggerSettings) { s.FilePath = "" }), "FilePath"},
		{"file without rotation", rotated(func(s *LoggerSettings) { s.MaxSize, s.MaxBackups, s.MaxAge = 0, 0, 0 }), "max_size"},
		{"max size too large", rotated(func(s *LoggerSettings) { s.MaxSize = 101 }), "MaxSize"},
		{"max age too large", rotated(func(s *LoggerSettings) { s.MaxAge = 400 }), "MaxAge"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
