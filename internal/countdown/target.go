package countdown

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Sentinel errors for target resolution. Callers match them with errors.Is.
var (
	ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTime = errors.New("invalid time format, use HH[:MM[:SS]]")
	ErrPastTarget  = errors.New("target date/time must be in the future")
)

// TargetSpec is the raw, unvalidated target as the user supplied it.
// Both fields are optional; empty means "default from the current moment".
type TargetSpec struct {
	Date string // YYYY-MM-DD
	Time string // HH, HH:MM, or HH:MM:SS
}

const dateLayout = "2006-01-02"

// Resolve combines the raw target with the reference moment into an absolute
// target in now's location. A missing date defaults to now's calendar date, a
// missing time to now's time of day (whole seconds). Resolve is a pure
// function of its inputs and is called exactly once per run, before the
// terminal is touched.
func Resolve(spec TargetSpec, now time.Time) (time.Time, error) {
	year, month, day := now.Date()
	if spec.Date != "" {
		parsed, err := time.ParseInLocation(dateLayout, spec.Date, now.Location())
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, spec.Date)
		}
		year, month, day = parsed.Date()
	}

	hour, minute, second := now.Clock()
	if spec.Time != "" {
		var err error
		hour, minute, second, err = parseTimeOfDay(spec.Time)
		if err != nil {
			return time.Time{}, err
		}
	}

	return time.Date(year, month, day, hour, minute, second, 0, now.Location()), nil
}

// parseTimeOfDay accepts HH, HH:MM, or HH:MM:SS with omitted fields as zero.
func parseTimeOfDay(s string) (hour, minute, second int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	fields := []struct {
		name string
		dst  *int
		max  int
	}{
		{"hour", &hour, 23},
		{"minute", &minute, 59},
		{"second", &second, 59},
	}
	for i, part := range parts {
		v, convErr := strconv.Atoi(part)
		if convErr != nil || v < 0 || v > fields[i].max {
			return 0, 0, 0, fmt.Errorf("%w: bad %s %q", ErrInvalidTime, fields[i].name, part)
		}
		*fields[i].dst = v
	}
	return hour, minute, second, nil
}
