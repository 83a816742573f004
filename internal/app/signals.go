package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/endzeit/endzeit/internal/term"
)

// notifySignals forwards SIGTERM and SIGHUP into the session as interrupt
// events, so a pending poll wakes up, the loop quits, and the terminal is
// restored before the process exits. SIGINT is not registered: raw mode
// delivers Ctrl+C as a key event instead. The returned function releases the
// handler.
func notifySignals(session *term.Session) func() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGHUP)
	done := make(chan struct{})

	go func() {
		select {
		case <-sigCh:
			session.Interrupt()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}
