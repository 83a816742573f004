package testutil

import (
	"sync"
	"time"
)

// SteppingClock is a countdown.Clock whose reading advances by a fixed step
// on every Now call, starting at start. The countdown loop reads the clock
// exactly once per tick, so one step equals one simulated tick.
type SteppingClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewSteppingClock builds a clock whose first reading is start.
func NewSteppingClock(start time.Time, step time.Duration) *SteppingClock {
	return &SteppingClock{now: start, step: step}
}

// Now returns the current simulated reading and advances it by one step.
func (c *SteppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now
	c.now = c.now.Add(c.step)
	return now
}
