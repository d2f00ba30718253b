package todo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/amonks/dottodo/internal/linefile"
)

var (
	// ErrIndexOutOfBounds is returned when an index does not name a record.
	ErrIndexOutOfBounds = linefile.ErrIndexOutOfBounds

	// ErrConfigCorrupt is returned when the config file does not have exactly two lines.
	ErrConfigCorrupt = errors.New("config file is corrupt")

	// ErrNoTodoStore is returned when a directory has no open-todos file.
	ErrNoTodoStore = errors.New("no todo list found")

	// ErrInvalidField is returned when a field value would break the record format.
	ErrInvalidField = errors.New("field cannot contain tabs or newlines")

	// ErrEmptyDescription is returned when a todo description is empty.
	ErrEmptyDescription = errors.New("description cannot be empty")

	// ErrInvalidSection is returned when an unknown section is requested.
	ErrInvalidSection = errors.New("invalid section")

	// ErrInvalidIndex is returned when an index argument is not a non-negative integer.
	ErrInvalidIndex = errors.New("invalid index")
)

// ValidateField checks that value can be stored in a record or config line.
func ValidateField(name, value string) error {
	if strings.ContainsAny(value, "\t\r\n") {
		return fmt.Errorf("%w: %s %q", ErrInvalidField, name, value)
	}
	return nil
}

// ValidateDescription checks that a description is storable and non-empty.
func ValidateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}
	return ValidateField("description", description)
}

// ValidateSection checks if the section is valid.
func ValidateSection(section Section) error {
	if !section.IsValid() {
		return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSection, section, joinValues(ValidSections()))
	}
	return nil
}

func validateIndex(index, count int) error {
	if index < 0 || index >= count {
		return fmt.Errorf("%w: %d (have %d todos)", ErrIndexOutOfBounds, index, count)
	}
	return nil
}

// ParseIndex parses a zero-based record index.
func ParseIndex(value string) (int, error) {
	index, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || index < 0 {
		return 0, fmt.Errorf("%w: %q (must be a non-negative integer)", ErrInvalidIndex, value)
	}
	return index, nil
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = string(value)
	}
	return strings.Join(parts, ", ")
}
