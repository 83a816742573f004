package app

import (
	"fmt"
	"time"
)

// Tick bounds. The tick interval is both the display refresh period and the
// input poll timeout, so values outside this window make the timer either
// unreadable or a busy-loop.
const (
	DefaultTick = 250 * time.Millisecond
	minTick     = 50 * time.Millisecond
	maxTick     = 5 * time.Second
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Date    string // target date, YYYY-MM-DD; empty means today
	Time    string // target time of day, HH[:MM[:SS]]; empty means now
	Execute string // shell command to run after completion; empty means none

	Tick      time.Duration
	LogFormat string
	LogLevel  string
	LogFile   string
}

// NewConfig validates cfg and applies defaults. Date and Time stay raw here;
// they are resolved against the clock when the run starts.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Tick == 0 {
		cfg.Tick = DefaultTick
	}
	if cfg.Tick < minTick || cfg.Tick > maxTick {
		return nil, fmt.Errorf("tick must be between %v and %v, got %v", minTick, maxTick, cfg.Tick)
	}

	return &cfg, nil
}
