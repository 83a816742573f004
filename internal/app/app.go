package app

import (
	"io"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/endzeit/endzeit/internal/countdown"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	logFile *os.File // non-nil when logging to a file
	config  *Config
	clock   countdown.Clock
	screen  tcell.Screen // test override; nil means acquire the real terminal
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. Logs go to errW
// unless the config names a log file. A screen may be injected for tests;
// without one, Run acquires the real terminal for the interactive phase.
// NewApp panics on critical startup errors; the cmd entrypoint recovers.
func NewApp(outW, errW io.Writer, cfg *Config, screen ...tcell.Screen) *App {
	logW, logFile := openLogWriter(cfg, errW)
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	a := &App{
		outW:    outW,
		logger:  logger,
		logFile: logFile,
		config:  cfg,
		clock:   countdown.SystemClock,
	}
	if len(screen) > 0 {
		a.screen = screen[0]
	}
	return a
}
