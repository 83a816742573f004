// Package countdown contains the timer domain: the wall-clock abstraction,
// target resolution, countdown state, duration formatting, and the
// single-threaded render/poll loop that drives an interactive countdown to
// its outcome.
package countdown
