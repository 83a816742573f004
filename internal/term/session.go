package term

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Session owns the terminal for the interactive phase of a countdown run.
// It puts the screen into raw mode on construction and restores it on Close.
// Close is idempotent so it can sit on a defer and still be called again on
// explicit shutdown paths, including panic unwinds.
type Session struct {
	screen    tcell.Screen
	events    chan tcell.Event
	stop      chan struct{}
	closeOnce sync.Once
}

// NewSession acquires the real terminal.
func NewSession() (*Session, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create terminal screen: %w", err)
	}
	return startSession(screen)
}

// NewSessionWith adopts a caller-provided screen, typically a tcell
// SimulationScreen in tests.
func NewSessionWith(screen tcell.Screen) (*Session, error) {
	return startSession(screen)
}

func startSession(screen tcell.Screen) (*Session, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	screen.Clear()

	s := &Session{
		screen: screen,
		events: make(chan tcell.Event, 16),
		stop:   make(chan struct{}),
	}
	go screen.ChannelEvents(s.events, s.stop)
	return s, nil
}

// Screen exposes the underlying tcell screen to the renderer.
func (s *Session) Screen() tcell.Screen {
	return s.screen
}

// Events is the stream the poller consumes. tcell closes it once the session
// shuts down.
func (s *Session) Events() <-chan tcell.Event {
	return s.events
}

// Interrupt posts a wakeup event into the stream from another goroutine.
// The signal safety net uses it to unblock a pending poll so the loop can
// quit and restore the terminal. Best effort: a full event queue only means
// the loop is about to wake anyway.
func (s *Session) Interrupt() {
	_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Close restores the terminal to its previous mode. Safe to call from any
// exit path, any number of times.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.stop)
		s.screen.Fini()
	})
}
