//go:build unit
// +build unit

package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetProcessLogger(t *testing.T) {
	t.Helper()
	mu.Lock()
	previous := current
	current = nil
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		current = previous
		mu.Unlock()
	})
}

func TestNew(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "api.log")

	tests := []struct {
		name     string
		settings *config.LoggerSettings
		wantErr  bool
	}{
		{"console", &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole}, false},
		{"json", &config.LoggerSettings{LogLevel: config.LogLevelDebug, LogType: config.LogTypeJSON}, false},
		{"file", &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeFile, FilePath: logPath, MaxSize: 5, MaxBackups: 2, MaxAge: 7}, false},
		{"nil settings", nil, true},
		{"invalid level", &config.LoggerSettings{LogLevel: "loud", LogType: config.LogTypeConsole}, true},
		{"file without rotation", &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeFile, FilePath: logPath}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.settings)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, l)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, l)
		})
	}
}

func TestNew_FileSinkTagsService(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "api.log")

	l, err := New(&config.LoggerSettings{
		LogLevel: config.LogLevelInfo, LogType: config.LogTypeFile,
		FilePath: logPath, MaxSize: 5, MaxBackups: 2, MaxAge: 7,
	})
	require.NoError(t, err)

	l.Info("reservation ", "r-1", " confirmed")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"reservation r-1 confirmed"`)
	assert.Contains(t, string(content), `"service":"maria-faz"`)
}

func TestInitLogger_ReplacesProcessLogger(t *testing.T) {
	resetProcessLogger(t)

	_, err := GetLogger()
	assert.ErrorIs(t, err, ErrNotInitialized)

	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole}))
	first, err := GetLogger()
	require.NoError(t, err)

	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelDebug, LogType: config.LogTypeJSON}))
	second, err := GetLogger()
	require.NoError(t, err)
	assert.NotSame(t, first, second)

	assert.Error(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: "syslog"}))
	kept, err := GetLogger()
	require.NoError(t, err)
	assert.Same(t, second, kept)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		config.LogLevelDebug:    slog.LevelDebug,
		config.LogLevelInfo:     slog.LevelInfo,
		config.LogLevelWarning:  slog.LevelWarn,
		"WARN":                  slog.LevelWarn,
		config.LogLevelError:    slog.LevelError,
		config.LogLevelCritical: slog.LevelError,
		"":                      slog.LevelInfo,
	}
	for level, want := range cases {
		assert.Equal(t, want, ParseLevel(level), level)
	}
}
