package app

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/endzeit/endzeit/internal/countdown"
	"github.com/endzeit/endzeit/internal/testutil"
)

// newRunConfig builds a validated config counting down to target. The target
// flags are rendered the way a user would pass them on the command line.
func newRunConfig(t *testing.T, target time.Time, execute string) *Config {
	t.Helper()

	config, err := NewConfig(Config{
		Date:     target.Format("2006-01-02"),
		Time:     target.Format("15:04:05"),
		Execute:  execute,
		Tick:     50 * time.Millisecond,
		LogLevel: "debug",
	})
	require.NoError(t, err)
	return config
}

// runWithQuitKey runs application.Run in the background and keeps pressing q
// until it returns. Keys injected before the screen is initialized can be
// dropped, so a single press is not enough.
func runWithQuitKey(t *testing.T, application *App, screen tcell.SimulationScreen) error {
	t.Helper()

	done := make(chan error, 1)
	go func() { done <- application.Run(context.Background()) }()

	timeout := time.After(5 * time.Second)
	for {
		select {
		case err := <-done:
			return err
		case <-timeout:
			t.Fatal("countdown did not stop after the quit key")
		case <-time.After(10 * time.Millisecond):
			screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
		}
	}
}

func TestRun_QuitKeyAborts(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	screen := tcell.NewSimulationScreen("")
	outW, errW := &testutil.SafeBuffer{}, &testutil.SafeBuffer{}
	config := newRunConfig(t, time.Now().Add(time.Hour), "")
	application := NewApp(outW, errW, config, screen)

	// --- Act ---
	err := runWithQuitKey(t, application, screen)

	// --- Assert ---
	require.NoError(t, err)
	assert.Contains(t, outW.String(), "countdown aborted")
	assert.Contains(t, errW.String(), "Countdown starting")
	assert.Contains(t, errW.String(), "Countdown finished")
}

func TestRun_CompletionRunsCommand(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	marker := filepath.Join(t.TempDir(), "ran.txt")
	screen := tcell.NewSimulationScreen("")
	outW, errW := &testutil.SafeBuffer{}, &testutil.SafeBuffer{}
	config := newRunConfig(t, time.Now().Add(2*time.Second), fmt.Sprintf("touch %q", marker))
	application := NewApp(outW, errW, config, screen)

	// --- Act ---
	err := application.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Contains(t, outW.String(), "endzeit reached")
	assert.FileExists(t, marker)
	assert.Contains(t, errW.String(), "Completion command finished")
}

func TestRun_CompletionWithoutCommand(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	screen := tcell.NewSimulationScreen("")
	outW, errW := &testutil.SafeBuffer{}, &testutil.SafeBuffer{}
	config := newRunConfig(t, time.Now().Add(2*time.Second), "")
	application := NewApp(outW, errW, config, screen)

	// --- Act ---
	err := application.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Contains(t, outW.String(), "endzeit reached")
	assert.NotContains(t, outW.String(), "warning")
	assert.NotContains(t, errW.String(), "Running completion command")
}

func TestRun_CommandFailureIsWarning(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	screen := tcell.NewSimulationScreen("")
	outW, errW := &testutil.SafeBuffer{}, &testutil.SafeBuffer{}
	config := newRunConfig(t, time.Now().Add(2*time.Second), "exit 7")
	application := NewApp(outW, errW, config, screen)

	// --- Act ---
	err := application.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err, "a failing command must not fail the countdown")
	assert.Contains(t, outW.String(), "endzeit reached")
	assert.Contains(t, outW.String(), "warning: command failed")
	assert.Contains(t, outW.String(), "exit status 7")
	assert.Contains(t, errW.String(), "Completion command failed")
}

func TestRun_QuitSkipsCommand(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	marker := filepath.Join(t.TempDir(), "ran.txt")
	screen := tcell.NewSimulationScreen("")
	outW, errW := &testutil.SafeBuffer{}, &testutil.SafeBuffer{}
	config := newRunConfig(t, time.Now().Add(time.Hour), fmt.Sprintf("touch %q", marker))
	application := NewApp(outW, errW, config, screen)

	// --- Act ---
	err := runWithQuitKey(t, application, screen)

	// --- Assert ---
	require.NoError(t, err)
	assert.Contains(t, outW.String(), "countdown aborted")
	assert.NotContains(t, outW.String(), "endzeit reached")
	assert.NoFileExists(t, marker)
}

func TestRun_PastTargetFails(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	screen := tcell.NewSimulationScreen("")
	outW, errW := &testutil.SafeBuffer{}, &testutil.SafeBuffer{}
	config, err := NewConfig(Config{Date: "2000-01-01", Time: "00:00:00"})
	require.NoError(t, err)
	application := NewApp(outW, errW, config, screen)

	// --- Act ---
	err = application.Run(context.Background())

	// --- Assert ---
	require.ErrorIs(t, err, countdown.ErrPastTarget)
	assert.Empty(t, outW.String(), "a refused run must not print an outcome")
}

func TestRun_InvalidDateFails(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	screen := tcell.NewSimulationScreen("")
	outW, errW := &testutil.SafeBuffer{}, &testutil.SafeBuffer{}
	config, err := NewConfig(Config{Date: "31.12.2025"})
	require.NoError(t, err)
	application := NewApp(outW, errW, config, screen)

	// --- Act ---
	err = application.Run(context.Background())

	// --- Assert ---
	require.ErrorIs(t, err, countdown.ErrInvalidDate)
}
