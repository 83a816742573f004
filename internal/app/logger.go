package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// newLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, allowing for isolated logger instances.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}

// openLogWriter picks the log destination: the configured file when set,
// otherwise errW. During the interactive phase the screen owns stdout, so
// logs never go there. The returned file is non-nil only when a file was
// opened; the caller closes it when the run ends.
func openLogWriter(cfg *Config, errW io.Writer) (io.Writer, *os.File) {
	if cfg.LogFile == "" {
		return errW, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		panic(fmt.Errorf("failed to open log file: %w", err))
	}
	return f, f
}
