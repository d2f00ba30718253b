package due

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimeLayout is the canonical due-time form (24-hour HH:MM).
const TimeLayout = "15:04"

// timeTokenPattern captures the leading time token and drops any trailing
// non-digit garbage ("12d", "in 3 hoursz").
var timeTokenPattern = regexp.MustCompile(`^(?P<time>\d{1,4}(?::\d{2})?|in \d+ (?:hours?|minutes?|min)|in \d+)\D*$`)

// ParseTime normalizes a due-time expression relative to now.
//
// Recognized forms:
//   - "H" (0-23) becomes "HH:00"
//   - "HMM"/"HHMM" (24-2399) splits into hours and minutes
//   - "HH:MM" is kept as is
//   - "in N hours", "in N" add N hours to now
//   - "in N min", "in N minutes" add N minutes to now
//
// Relative forms keep only the wall-clock hour and minute; crossing midnight
// does not change the due date.
func ParseTime(input string, now time.Time) string {
	token, ok := sanitizeTime(input)
	if !ok {
		return input
	}

	if value, err := strconv.Atoi(token); err == nil {
		switch {
		case value < 24:
			return fmt.Sprintf("%02d:00", value)
		case value < 2400:
			return fmt.Sprintf("%02d:%02d", value/100, value%100)
		default:
			return input
		}
	}

	if strings.HasPrefix(token, "in ") {
		if shifted, ok := relativeTime(strings.Fields(token), now); ok {
			return shifted.Format(TimeLayout)
		}
		return input
	}

	if strings.Contains(token, ":") {
		return token
	}

	return input
}

func sanitizeTime(input string) (string, bool) {
	match := timeTokenPattern.FindStringSubmatch(input)
	if match == nil {
		return "", false
	}
	return match[timeTokenPattern.SubexpIndex("time")], true
}

func relativeTime(parts []string, now time.Time) (time.Time, bool) {
	if len(parts) < 2 {
		return time.Time{}, false
	}
	value, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return time.Time{}, false
	}

	switch {
	case len(parts) == 2:
		return now.Add(time.Duration(value) * time.Hour), true
	case len(parts) == 3 && strings.HasPrefix(parts[2], "hour"):
		return now.Add(time.Duration(value) * time.Hour), true
	case len(parts) == 3 && strings.HasPrefix(parts[2], "min"):
		return now.Add(time.Duration(value) * time.Minute), true
	default:
		return time.Time{}, false
	}
}
