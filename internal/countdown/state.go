package countdown

import "time"

// State is the single mutable value of a countdown run. The target and the
// start moment are fixed at construction; only the observed "now" advances,
// via Refresh. State does no I/O and never caches derived values, so every
// read reflects the latest refresh.
type State struct {
	target time.Time
	start  time.Time
	now    time.Time
}

// NewState fixes the target and the start moment for the lifetime of the run.
func NewState(target, now time.Time) *State {
	return &State{target: target, start: now, now: now}
}

// Refresh advances the observed clock reading. It is the only mutation.
func (s *State) Refresh(now time.Time) {
	s.now = now
}

// Target returns the absolute target moment.
func (s *State) Target() time.Time {
	return s.target
}

// Remaining is the signed distance from the last refresh to the target.
// It goes negative once the target has passed; display clamping is the
// formatter's job, not State's.
func (s *State) Remaining() time.Duration {
	return s.target.Sub(s.now)
}

// Elapsed is the time spent counting down since the run started.
func (s *State) Elapsed() time.Duration {
	return s.now.Sub(s.start)
}

// Due reports whether the target has been reached or passed.
func (s *State) Due() bool {
	return s.Remaining() <= 0
}

// Percent is the countdown progress in [0, 100], measured as elapsed time
// over the total span. A zero-length span counts as fully elapsed.
func (s *State) Percent() float64 {
	total := s.target.Sub(s.start)
	if total <= 0 {
		return 100
	}
	pct := float64(s.Elapsed()) / float64(total) * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
