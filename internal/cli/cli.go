package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/endzeit/endzeit/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("endzeit", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
endzeit - A terminal countdown timer.

Usage:
  endzeit [options]

Counts down to the given date and time, then optionally runs a command.
Press q (or Escape, or Ctrl+C) to quit early.

Options:
`)
		flagSet.PrintDefaults()
	}

	dateFlag := flagSet.String("date", "", "Target date in the format YYYY-MM-DD. Defaults to today.")
	dFlag := flagSet.String("d", "", "Target date in the format YYYY-MM-DD (shorthand).")
	timeFlag := flagSet.String("time", "", "Target time in the format HH[:MM[:SS]]. Defaults to the current time.")
	tFlag := flagSet.String("t", "", "Target time in the format HH[:MM[:SS]] (shorthand).")
	executeFlag := flagSet.String("execute", "", "Command to execute when the countdown finishes.")
	tickFlag := flagSet.Duration("tick", app.DefaultTick, "Display refresh and input poll interval.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFileFlag := flagSet.String("log-file", "", "Write logs to this file instead of stderr.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument: %q", flagSet.Arg(0))}
	}

	date := *dateFlag
	if date == "" {
		date = *dFlag
	}
	timeOfDay := *timeFlag
	if timeOfDay == "" {
		timeOfDay = *tFlag
	}
	slog.Debug("Target flags resolved.", "date", date, "time", timeOfDay)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Date:      date,
		Time:      timeOfDay,
		Execute:   *executeFlag,
		Tick:      *tickFlag,
		LogFormat: logFormat,
		LogLevel:  logLevel,
		LogFile:   *logFileFlag,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
