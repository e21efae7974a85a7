package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/alkime/postgen/internal/config"
)

// SetupLogger configures structured logging based on environment.
func SetupLogger(cfg *config.Config) *slog.Logger {
	logger := New(os.Stdout, cfg)

	// Set as default logger
	slog.SetDefault(logger)

	return logger
}

// New builds a JSON logger writing to w at the level implied by cfg.
func New(w io.Writer, cfg *config.Config) *slog.Logger {
	//nolint:exhaustruct // Using default values for other HandlerOptions fields
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: Level(cfg),
	})

	return slog.New(handler)
}

// Level determines the log level: debug in development or when LOG_LEVEL=debug.
func Level(cfg *config.Config) slog.Level {
	if cfg.Env == "development" || cfg.LogLevel == "debug" {
		return slog.LevelDebug
	}

	switch cfg.LogLevel {
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
