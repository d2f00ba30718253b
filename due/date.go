// Package due turns free-form due-date and due-time expressions into the
// canonical forms stored in todo records.
//
// Neither parser fails. Input that matches no rule is returned unchanged so
// the record keeps the literal text the user typed.
package due

import (
	"strconv"
	"strings"
	"time"

	internalstrings "github.com/amonks/dottodo/internal/strings"
)

// DateLayout is the canonical due-date form (DD.MM.YYYY).
const DateLayout = "02.01.2006"

// twoDigitYearPivot splits two-digit years between centuries:
// values below the pivot land in 20xx, the rest in 19xx.
const twoDigitYearPivot = 69

// maxYearsAhead bounds the search for the next valid occurrence of a
// partial date such as 29.02.
const maxYearsAhead = 8

// ParseDate normalizes a due-date expression relative to today.
//
// Recognized forms, first match wins:
//   - "today", "tomorrow", "next week" (case-insensitive)
//   - "in N days", "in N weeks" (N may be negative)
//   - "week N"
//   - "DD.MM.YYYY" and "DD.MM.YY"
//   - "DD.MM", resolved to the next occurrence on or after today
func ParseDate(input string, today time.Time) string {
	today = startOfDay(today)

	switch internalstrings.NormalizeLowerTrimSpace(input) {
	case "today":
		return today.Format(DateLayout)
	case "tomorrow":
		return today.AddDate(0, 0, 1).Format(DateLayout)
	case "next week":
		return today.AddDate(0, 0, 7).Format(DateLayout)
	}

	parts := strings.Fields(strings.ToLower(input))

	if len(parts) == 3 && parts[0] == "in" {
		if value, err := strconv.Atoi(parts[1]); err == nil {
			switch parts[2] {
			case "days", "day":
				return today.AddDate(0, 0, value).Format(DateLayout)
			case "weeks", "week":
				return today.AddDate(0, 0, value*7).Format(DateLayout)
			}
		}
	}

	if len(parts) == 2 && parts[0] == "week" {
		if week, err := strconv.ParseUint(parts[1], 10, 16); err == nil {
			return WeekStart(today.Year(), int(week), today.Location()).Format(DateLayout)
		}
	}

	if date, ok := parseFullDate(input, today.Location()); ok {
		return date.Format(DateLayout)
	}

	if day, month, ok := parseDayMonth(input); ok {
		if date, ok := NextOccurrence(day, month, today); ok {
			return date.Format(DateLayout)
		}
	}

	return input
}

// WeekStart returns the first day of the given week of year.
//
// Week one starts on the Monday on or before January 1 when January 1 falls
// on Monday through Thursday. Otherwise it starts 7-weekday days after
// January 1, with weekdays numbered Monday=1 through Sunday=7.
func WeekStart(year, week int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	weekday := isoWeekday(jan1)

	var firstWeekStart time.Time
	if weekday <= 4 {
		firstWeekStart = jan1.AddDate(0, 0, -(weekday - 1))
	} else {
		firstWeekStart = jan1.AddDate(0, 0, 7-weekday)
	}

	return firstWeekStart.AddDate(0, 0, (week-1)*7)
}

// NextOccurrence returns the earliest date with the given day and month that
// is not before today. Today itself counts as a match.
func NextOccurrence(day, month int, today time.Time) (time.Time, bool) {
	today = startOfDay(today)
	for year := today.Year(); year <= today.Year()+maxYearsAhead; year++ {
		date, ok := makeDate(year, month, day, today.Location())
		if !ok {
			continue
		}
		if date.Before(today) {
			continue
		}
		return date, true
	}
	return time.Time{}, false
}

// ParseCanonical parses a stored due date (and optional HH:MM due time) back
// into an instant. It reports false for values that were stored verbatim
// because they could not be normalized.
func ParseCanonical(date, clock string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	day, err := time.ParseInLocation(DateLayout, strings.TrimSpace(date), loc)
	if err != nil {
		return time.Time{}, false
	}

	clockValue, err := time.ParseInLocation(TimeLayout, strings.TrimSpace(clock), loc)
	if err != nil {
		return day, true
	}
	return time.Date(day.Year(), day.Month(), day.Day(), clockValue.Hour(), clockValue.Minute(), 0, 0, loc), true
}

func parseFullDate(input string, loc *time.Location) (time.Time, bool) {
	fields, ok := splitDateFields(input, 3)
	if !ok {
		return time.Time{}, false
	}

	year := fields[2]
	switch len(year.text) {
	case 4:
	case 2:
		if year.value < twoDigitYearPivot {
			year.value += 2000
		} else {
			year.value += 1900
		}
	default:
		return time.Time{}, false
	}

	return makeDate(year.value, fields[1].value, fields[0].value, loc)
}

func parseDayMonth(input string) (int, int, bool) {
	fields, ok := splitDateFields(input, 2)
	if !ok {
		return 0, 0, false
	}
	day, month := fields[0].value, fields[1].value
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, 0, false
	}
	return day, month, true
}

type dateField struct {
	text  string
	value int
}

// splitDateFields splits a dotted date into exactly count numeric fields.
// Day and month take one or two digits.
func splitDateFields(input string, count int) ([]dateField, bool) {
	parts := strings.Split(strings.TrimSpace(input), ".")
	if len(parts) != count {
		return nil, false
	}

	fields := make([]dateField, 0, count)
	for i, part := range parts {
		if part == "" || !isDigits(part) {
			return nil, false
		}
		if i < 2 && len(part) > 2 {
			return nil, false
		}
		value, err := strconv.Atoi(part)
		if err != nil {
			return nil, false
		}
		fields = append(fields, dateField{text: part, value: value})
	}
	return fields, true
}

// makeDate builds a calendar date, rejecting values time.Date would
// normalize (31.04 becoming 01.05).
func makeDate(year, month, day int, loc *time.Location) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return time.Time{}, false
	}
	return date, true
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// isoWeekday numbers weekdays Monday=1 through Sunday=7.
func isoWeekday(t time.Time) int {
	weekday := int(t.Weekday())
	if weekday == 0 {
		return 7
	}
	return weekday
}

func isDigits(value string) bool {
	for _, char := range value {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}
