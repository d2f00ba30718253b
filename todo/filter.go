package todo

import (
	"strings"
	"time"
)

// Filter reports whether a todo should be included in a listing.
type Filter func(Todo) bool

// MatchAll combines filters; the result matches when every non-nil filter does.
func MatchAll(filters ...Filter) Filter {
	return func(item Todo) bool {
		for _, filter := range filters {
			if filter != nil && !filter(item) {
				return false
			}
		}
		return true
	}
}

// OwnerIs matches todos created under the given owner name.
func OwnerIs(name string) Filter {
	return func(item Todo) bool {
		return item.Owner == name
	}
}

// DescriptionContains matches todos whose description contains text,
// ignoring case.
func DescriptionContains(text string) Filter {
	needle := strings.ToLower(text)
	return func(item Todo) bool {
		return strings.Contains(strings.ToLower(item.Description), needle)
	}
}

// DueBefore matches todos with a canonical due date strictly before the
// given day. Todos whose due date was stored verbatim never match.
func DueBefore(day time.Time) Filter {
	cutoff := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return func(item Todo) bool {
		dueAt, ok := item.Due(cutoff.Location())
		if !ok {
			return false
		}
		return dueAt.Before(cutoff)
	}
}

// FilterEntries returns the entries whose todo matches filter, keeping their
// indexes. A nil filter returns entries unchanged.
func FilterEntries(entries []Entry, filter Filter) []Entry {
	if filter == nil {
		return entries
	}
	matched := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if filter(entry.Todo) {
			matched = append(matched, entry)
		}
	}
	return matched
}
