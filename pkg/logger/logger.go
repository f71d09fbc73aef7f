package logger

import (
	"io"
	"log/slog"
	"strings"
)

// New - JSON logger writing to w. Unknown levels fall back to info.
func New(level string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
}
