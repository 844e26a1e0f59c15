package cli

import (
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
)

// initLogger builds the JSON logger. It writes to w, never to the game output.
func initLogger(conf *config.Config, w io.Writer) *slog.Logger {
	level := slog.LevelWarn

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
