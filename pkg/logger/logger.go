package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// InitLogger returns a JSON logger writing to stdout, which Lambda forwards to CloudWatch.
func InitLogger(level string) *slog.Logger {
	return New(os.Stdout, level)
}

func New(w io.Writer, level string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	return slog.New(handler).With("service", "health-logging")
}

// ParseLevel falls back to info for anything it does not recognise
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
