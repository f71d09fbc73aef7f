package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level   string
		enabled slog.Level
		muted   slog.Level
	}{
		{level: "debug", enabled: slog.LevelDebug, muted: slog.LevelDebug - 4},
		{level: "info", enabled: slog.LevelInfo, muted: slog.LevelDebug},
		{level: "WARN", enabled: slog.LevelWarn, muted: slog.LevelInfo},
		{level: "error", enabled: slog.LevelError, muted: slog.LevelWarn},
		{level: "verbose", enabled: slog.LevelInfo, muted: slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log := New(tt.level, &bytes.Buffer{})

			assert.True(t, log.Enabled(context.Background(), tt.enabled))
			assert.False(t, log.Enabled(context.Background(), tt.muted))
		})
	}
}

func TestNew_WritesJSON(t *testing.T) {
	var buf bytes.Buffer

	New("info", &buf).Info("session started", "sessionID", "s1")

	assert.Contains(t, buf.String(), `"msg":"session started"`)
	assert.Contains(t, buf.String(), `"sessionID":"s1"`)
}
