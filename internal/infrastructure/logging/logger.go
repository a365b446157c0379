package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config selects the log level and handler format.
type Config struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// NewLogger creates a *slog.Logger writing to os.Stderr and sets it as the
// default logger via slog.SetDefault.
//
// Format "json" produces structured JSON output, anything else the text handler.
// Level is one of: debug, info, warn, error (case-insensitive); defaults to info.
func NewLogger(cfg Config) *slog.Logger {
	logger := New(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

// New builds a logger writing to w without touching the default logger.
func New(w io.Writer, cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
