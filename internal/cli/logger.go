package cli

import (
	"io"
	"log/slog"
)

// NewLogger creates a slog.Logger writing to outW. Level names are those of
// slog.Level ("debug", "warn+2", ...); an unknown level logs at info.
// It does not touch the global logger.
func NewLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelStr)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}

	return slog.New(slog.NewTextHandler(outW, opts))
}
