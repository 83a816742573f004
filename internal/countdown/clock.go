package countdown

import "time"

// Clock provides time-related operations.
// This interface enables dependency injection for testing countdown behavior.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock implementation using the standard library.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
