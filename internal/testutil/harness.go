package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/endzeit/endzeit/internal/countdown"
	"github.com/endzeit/endzeit/internal/ctxlog"
	"github.com/endzeit/endzeit/internal/term"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// harnessTick keeps the real wait per simulated tick short while still giving
// the poller a genuine deadline to honor.
const harnessTick = 5 * time.Millisecond

// HarnessResult holds the outcomes of a full countdown run.
type HarnessResult struct {
	Outcome   countdown.Outcome
	Err       error
	Screen    tcell.SimulationScreen
	LogOutput string
}

// RunCountdown provides a standardized harness for running the real loop,
// renderer, and poller over a tcell simulation screen until the countdown
// ends. The clock is simulated: each tick advances it by step, beginning with
// total remaining. Keys are injected before the first tick, so a quit key
// wins on tick one. The screen in the result still holds the final frame.
func RunCountdown(t *testing.T, total, step time.Duration, keys ...rune) *HarnessResult {
	t.Helper()

	screen := tcell.NewSimulationScreen("")
	session, err := term.NewSessionWith(screen)
	require.NoError(t, err, "failed to start a simulation session")
	t.Cleanup(session.Close)

	for _, key := range keys {
		screen.InjectKey(tcell.KeyRune, key, tcell.ModNone)
	}

	logBuffer := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(logBuffer, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local)
	st := countdown.NewState(start.Add(total), start)
	loop := countdown.NewLoop(
		NewSteppingClock(start, step),
		term.NewRenderer(session),
		term.NewPoller(session),
		harnessTick,
	)

	outcome, runErr := loop.Run(ctx, st)

	if os.Getenv("ENDZEIT_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		Outcome:   outcome,
		Err:       runErr,
		Screen:    screen,
		LogOutput: logBuffer.String(),
	}
}
