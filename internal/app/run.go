package app

import (
	"context"
	"fmt"

	"github.com/endzeit/endzeit/internal/countdown"
	"github.com/endzeit/endzeit/internal/ctxlog"
	"github.com/endzeit/endzeit/internal/shell"
	"github.com/endzeit/endzeit/internal/term"
)

// Run executes one countdown from target resolution to the final report. It
// returns nil on a clean quit or completion; a failing post-completion
// command is reported as a warning without changing the process outcome.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")
	if a.logFile != nil {
		defer a.logFile.Close()
	}

	// Resolution happens exactly once, before the terminal is touched, so
	// argument mistakes never leave the terminal in raw mode.
	now := a.clock.Now()
	target, err := countdown.Resolve(countdown.TargetSpec{Date: a.config.Date, Time: a.config.Time}, now)
	if err != nil {
		return err
	}
	if !target.After(now) {
		return countdown.ErrPastTarget
	}
	a.logger.Info("⏳ Countdown starting.", "target", target, "total", target.Sub(now))

	session, err := a.acquireSession()
	if err != nil {
		return err
	}
	defer session.Close()
	stop := notifySignals(session)
	defer stop()

	st := countdown.NewState(target, now)
	loop := countdown.NewLoop(a.clock, term.NewRenderer(session), term.NewPoller(session), a.config.Tick)
	outcome, err := loop.Run(ctx, st)

	// Restore the terminal before reporting or spawning anything.
	session.Close()
	if err != nil {
		return err
	}
	a.logger.Info("🏁 Countdown finished.", "outcome", outcome)

	switch outcome {
	case countdown.OutcomeCompleted:
		fmt.Fprintln(a.outW, "endzeit reached")
		a.runCommand(ctx)
	case countdown.OutcomeQuit:
		fmt.Fprintln(a.outW, "countdown aborted")
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// acquireSession opens the terminal session, preferring an injected screen.
func (a *App) acquireSession() (*term.Session, error) {
	if a.screen != nil {
		return term.NewSessionWith(a.screen)
	}
	return term.NewSession()
}

// runCommand runs the post-completion command, if any. The countdown itself
// already succeeded, so a failing command is a warning, never an error.
func (a *App) runCommand(ctx context.Context) {
	if a.config.Execute == "" {
		return
	}

	a.logger.Info("▶️ Running completion command.", "command", a.config.Execute)
	res := shell.Run(ctx, a.config.Execute)
	if !res.Ok() {
		a.logger.Warn("Completion command failed.", "code", res.Code, "error", res.Err)
		fmt.Fprintf(a.outW, "warning: command failed: %v\n", res.Err)
		return
	}
	a.logger.Info("✅ Completion command finished.", "code", res.Code)
}
