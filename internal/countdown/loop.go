package countdown

import (
	"context"
	"fmt"
	"time"

	"github.com/endzeit/endzeit/internal/ctxlog"
)

// Signal is what a poll of the input source reported.
type Signal int

const (
	// SignalNone means the poll timeout elapsed without relevant input.
	SignalNone Signal = iota
	// SignalQuit means the user asked to stop the countdown.
	SignalQuit
	// SignalRedraw means the display changed underneath us (e.g. a resize)
	// and the next frame should be drawn without waiting for the clock.
	SignalRedraw
)

// Outcome is the terminal state of a countdown run.
type Outcome int

const (
	// OutcomeQuit means the user (or a cancellation) stopped the countdown
	// before the target was reached.
	OutcomeQuit Outcome = iota
	// OutcomeCompleted means the countdown reached its target.
	OutcomeCompleted
)

// String implements fmt.Stringer for log output.
func (o Outcome) String() string {
	if o == OutcomeCompleted {
		return "completed"
	}
	return "quit"
}

// Renderer draws one frame of the countdown. Implementations must not block.
type Renderer interface {
	Draw(st *State) error
}

// Poller waits for user input for at most the given timeout. It is the only
// suspension point of the loop; everything else on a tick is non-blocking.
type Poller interface {
	Poll(timeout time.Duration) (Signal, error)
}

// Loop is the single-threaded heart of the program. Each tick samples the
// clock, draws a frame, then waits on input for one tick interval. Quit wins
// over due when both hold on the same tick, so a last-moment keypress never
// triggers the completion side effects.
type Loop struct {
	clock    Clock
	renderer Renderer
	poller   Poller
	tick     time.Duration
}

// NewLoop wires the loop to its collaborators. The tick interval is both the
// display refresh period and the input poll timeout.
func NewLoop(clk Clock, r Renderer, p Poller, tick time.Duration) *Loop {
	return &Loop{clock: clk, renderer: r, poller: p, tick: tick}
}

// Run drives st from Running to a terminal state and returns how it ended.
// A cancelled context counts as a quit. Draw or poll failures abort the run
// with a non-nil error; the returned outcome is meaningless in that case.
func (l *Loop) Run(ctx context.Context, st *State) (Outcome, error) {
	logger := ctxlog.FromContext(ctx).With("target", st.Target())
	logger.Debug("Countdown loop started.", "tick", l.tick)

	for {
		if ctx.Err() != nil {
			logger.Debug("Context cancelled, treating as quit.")
			return OutcomeQuit, nil
		}

		st.Refresh(l.clock.Now())

		if err := l.renderer.Draw(st); err != nil {
			return OutcomeQuit, fmt.Errorf("failed to render frame: %w", err)
		}

		sig, err := l.poller.Poll(l.tick)
		if err != nil {
			return OutcomeQuit, fmt.Errorf("failed to poll input: %w", err)
		}

		if sig == SignalQuit {
			logger.Debug("Quit requested.", "remaining", st.Remaining())
			return OutcomeQuit, nil
		}

		if st.Due() {
			logger.Debug("Countdown due.", "overshoot", -st.Remaining())
			return OutcomeCompleted, nil
		}
		// SignalRedraw needs no special handling: the next iteration
		// refreshes and draws immediately.
	}
}
