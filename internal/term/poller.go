package term

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/endzeit/endzeit/internal/countdown"
)

// ErrEventStreamClosed reports that the terminal event stream ended
// underneath the poller, e.g. because the screen was finalized mid-run.
var ErrEventStreamClosed = errors.New("terminal event stream closed")

// Poller translates raw tcell events into countdown signals with a bounded
// wait. It implements countdown.Poller.
type Poller struct {
	session *Session
}

// NewPoller builds a poller reading from the session's event stream.
func NewPoller(session *Session) *Poller {
	return &Poller{session: session}
}

// Poll waits for terminal input for at most timeout. Irrelevant keys are
// consumed without resetting the deadline, so a mashed keyboard cannot starve
// the display refresh.
func (p *Poller) Poll(timeout time.Duration) (countdown.Signal, error) {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	for {
		select {
		case ev, ok := <-p.session.Events():
			if !ok {
				return countdown.SignalNone, ErrEventStreamClosed
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuitKey(ev) {
					return countdown.SignalQuit, nil
				}
			case *tcell.EventResize:
				p.session.Screen().Sync()
				return countdown.SignalRedraw, nil
			case *tcell.EventInterrupt:
				return countdown.SignalQuit, nil
			case *tcell.EventError:
				return countdown.SignalNone, fmt.Errorf("terminal I/O failed: %w", ev)
			}
		case <-deadline.C:
			return countdown.SignalNone, nil
		}
	}
}

// isQuitKey matches q, Q, Escape, and Ctrl+C. Raw mode delivers Ctrl+C as a
// key event rather than a SIGINT, so it is handled here like any other key.
func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
