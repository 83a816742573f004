package countdown

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatClock renders a duration at one-second display resolution as HH:MM:SS,
// or Nd HH:MM:SS once it exceeds a day. Negative durations clamp to 00:00:00.
// Sub-second remainders round up, so the display counts 3, 2, 1 and reads zero
// exactly when the countdown is due rather than a second early.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64((d + time.Second - 1) / time.Second)

	days := secs / 86400
	hours := secs % 86400 / 3600
	minutes := secs % 3600 / 60
	seconds := secs % 60

	if days > 0 {
		return fmt.Sprintf("%dd %02d:%02d:%02d", days, hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// ParseClock is the inverse of FormatClock, accepting the same two shapes.
func ParseClock(s string) (time.Duration, error) {
	clockPart := s
	var days int64
	if dayField, rest, found := strings.Cut(s, " "); found {
		numText, ok := strings.CutSuffix(dayField, "d")
		if !ok {
			return 0, fmt.Errorf("invalid clock string %q", s)
		}
		n, err := strconv.ParseInt(numText, 10, 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid clock string %q", s)
		}
		days = n
		clockPart = rest
	}

	parts := strings.Split(clockPart, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid clock string %q", s)
	}
	limits := [3]int64{23, 59, 59}
	var fields [3]int64
	for i, part := range parts {
		if len(part) != 2 {
			return 0, fmt.Errorf("invalid clock string %q", s)
		}
		v, err := strconv.ParseInt(part, 10, 64)
		if err != nil || v < 0 || v > limits[i] {
			return 0, fmt.Errorf("invalid clock string %q", s)
		}
		fields[i] = v
	}

	secs := days*86400 + fields[0]*3600 + fields[1]*60 + fields[2]
	return time.Duration(secs) * time.Second, nil
}
