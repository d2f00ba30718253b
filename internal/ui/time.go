package ui

import (
	"fmt"
	"time"
)

// FormatTimeAgo returns a compact age string like "2m ago".
func FormatTimeAgo(then time.Time, now time.Time) string {
	if then.IsZero() {
		return "-"
	}
	return FormatDurationShort(now.Sub(then)) + " ago"
}

// FormatDue describes a due instant relative to now: "in 2d", "3h ago", or
// "now" within a minute either way. A zero instant renders as "-".
func FormatDue(dueAt time.Time, now time.Time) string {
	if dueAt.IsZero() {
		return "-"
	}

	delta := dueAt.Sub(now)
	switch {
	case delta >= time.Minute:
		return "in " + FormatDurationShort(delta)
	case delta <= -time.Minute:
		return FormatDurationShort(-delta) + " ago"
	default:
		return "now"
	}
}

// FormatDurationShort formats a duration using short units (s/m/h/d).
func FormatDurationShort(duration time.Duration) string {
	if duration < 0 {
		duration = 0
	}

	duration = duration.Truncate(time.Second)
	seconds := int64(duration.Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}

	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh", hours)
	}

	days := hours / 24
	return fmt.Sprintf("%dd", days)
}
