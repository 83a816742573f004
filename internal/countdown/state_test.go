package countdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_RemainingDecreasesMonotonically(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	target := start.Add(10 * time.Second)
	st := NewState(target, start)

	// --- Act / Assert ---
	prev := st.Remaining()
	require.Equal(t, 10*time.Second, prev)
	for i := 1; i <= 12; i++ {
		st.Refresh(start.Add(time.Duration(i) * time.Second))
		remaining := st.Remaining()
		require.Less(t, remaining, prev, "remaining must strictly decrease as the clock advances")
		prev = remaining
	}
}

func TestState_DueFlipsOnceAndStays(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	target := start.Add(2 * time.Second)
	st := NewState(target, start)

	// --- Act / Assert ---
	require.False(t, st.Due(), "a fresh countdown must not be due")

	st.Refresh(target.Add(-time.Nanosecond))
	require.False(t, st.Due(), "one nanosecond before the target is still running")

	st.Refresh(target)
	require.True(t, st.Due(), "reaching the target exactly makes the countdown due")

	st.Refresh(target.Add(time.Second))
	require.True(t, st.Due(), "due must never flip back once the target has passed")
	assert.Equal(t, -time.Second, st.Remaining(), "remaining keeps its sign past the target")
}

func TestState_TargetFixedAfterConstruction(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	target := start.Add(time.Hour)
	st := NewState(target, start)

	// --- Act ---
	st.Refresh(start.Add(30 * time.Minute))

	// --- Assert ---
	assert.True(t, st.Target().Equal(target), "refreshing must never move the target")
	assert.Equal(t, 30*time.Minute, st.Elapsed())
}

func TestState_Percent(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		total    time.Duration
		at       time.Duration
		expected float64
	}{
		{"at start", 10 * time.Second, 0, 0},
		{"halfway", 10 * time.Second, 5 * time.Second, 50},
		{"at target", 10 * time.Second, 10 * time.Second, 100},
		{"past target clamps", 10 * time.Second, 15 * time.Second, 100},
		{"zero span counts as done", 0, 0, 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			st := NewState(start.Add(tc.total), start)
			st.Refresh(start.Add(tc.at))

			assert.InDelta(t, tc.expected, st.Percent(), 0.001)
		})
	}
}
