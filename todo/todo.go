package todo

import (
	"strings"
	"time"

	"github.com/amonks/dottodo/due"
)

const (
	// CreatedTimeLayout is the wall-clock creation time form.
	CreatedTimeLayout = "15:04"

	// CreatedDateLayout is the wall-clock creation date form.
	CreatedDateLayout = "06-01-02"

	fieldSeparator = "\t"
	fieldCount     = 6
)

// Todo is a single task. It is persisted as one line of six tab-separated
// fields in a fixed order; the line's position in its file is its index.
type Todo struct {
	// Owner labels who created the todo (line 1 of the list config).
	Owner string `json:"owner"`

	// Description is free text without tabs or newlines.
	Description string `json:"description"`

	// DueDate is DD.MM.YYYY, or the literal input when it could not be parsed.
	DueDate string `json:"due_date"`

	// DueTime is HH:MM, or the literal input when it could not be parsed.
	DueTime string `json:"due_time"`

	// CreatedTime is the HH:MM wall-clock time of creation.
	CreatedTime string `json:"created_time"`

	// CreatedDate is the YY-MM-DD wall-clock date of creation.
	CreatedDate string `json:"created_date"`
}

// Line renders the todo as a tab-separated record line.
func (t Todo) Line() string {
	return strings.Join([]string{
		t.Owner,
		t.Description,
		t.DueDate,
		t.DueTime,
		t.CreatedTime,
		t.CreatedDate,
	}, fieldSeparator)
}

// ParseLine splits a record line into its fields. Missing trailing fields
// are left empty; extra fields are folded into the last one.
func ParseLine(line string) Todo {
	fields := strings.SplitN(line, fieldSeparator, fieldCount)
	get := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}

	return Todo{
		Owner:       get(0),
		Description: get(1),
		DueDate:     get(2),
		DueTime:     get(3),
		CreatedTime: get(4),
		CreatedDate: get(5),
	}
}

// Due returns the due instant when the due date is in canonical form.
func (t Todo) Due(loc *time.Location) (time.Time, bool) {
	return due.ParseCanonical(t.DueDate, t.DueTime, loc)
}

// Entry is a todo together with its current position in its file.
// Indexes shift whenever an earlier line is removed.
type Entry struct {
	Index int  `json:"index"`
	Todo  Todo `json:"todo"`
}
