package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/jwebster45206/modern-world/internal/config"
)

// Setup configures the global slog logger based on environment
func Setup(cfg *config.Config) *slog.Logger {
	return SetupWriter(cfg, os.Stdout)
}

// SetupWriter is Setup with an explicit destination. The console UI logs to
// a file so output does not corrupt the terminal.
func SetupWriter(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// WithRequestID adds request ID to logger context
func WithRequestID(logger *slog.Logger, requestID string) *slog.Logger {
	return logger.With("request_id", requestID)
}

// WithGameID adds the game id to logger context
func WithGameID(logger *slog.Logger, gameID string) *slog.Logger {
	return logger.With("game_id", gameID)
}

// WithError adds error to logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}
