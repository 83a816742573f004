// Package term is the tcell-backed terminal layer: a scoped screen session
// with guaranteed restore, a bounded-wait input poller, and the countdown
// frame renderer.
package term
