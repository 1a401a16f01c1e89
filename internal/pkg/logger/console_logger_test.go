//go:build unit
// +build unit

package logger

import (
	"bytes"
	"testing"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestTextLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newTextLogger(&buf, config.LogLevelWarning)

	l.Debug("sync started")
	l.Info("owner created")
	l.Warn("cache miss")
	l.Error("smtp refused")

	out := buf.String()
	assert.NotContains(t, out, "sync started")
	assert.NotContains(t, out, "owner created")
	assert.Contains(t, out, "cache miss")
	assert.Contains(t, out, "smtp refused")
}

func TestTextLogger_With(t *testing.T) {
	var buf bytes.Buffer
	base := newTextLogger(&buf, config.LogLevelInfo)

	base.With("request_id", "abc", "status", 201).Info("POST /api/owners")
	base.Info("plain")

	out := buf.String()
	assert.Contains(t, out, `msg="POST /api/owners" request_id=abc status=201`)
	assert.Contains(t, out, "msg=plain\n")
}

func TestTextLogger_FatalAndPanic(t *testing.T) {
	var buf bytes.Buffer
	l := newTextLogger(&buf, config.LogLevelInfo)
	exitCode := -1
	l.exit = func(code int) { exitCode = code }

	l.Fatal("cannot open database")
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, buf.String(), "cannot open database")

	assert.PanicsWithValue(t, "report 42 failed", func() {
		l.Panic("report ", 42, " failed")
	})
}
