package main

import (
	"fmt"

	"github.com/amonks/dottodo/todo"
)

func todoEmptyListMessage(total int, section todo.Section, filtered bool) string {
	label := "todos"
	if section != todo.SectionOpen {
		label = string(section) + " todos"
	}

	if total > 0 && filtered {
		return fmt.Sprintf("No %s match the given filters.", label)
	}
	if section == todo.SectionOpen {
		return "No todos found. Use `todo add` to create one."
	}
	return fmt.Sprintf("No %s found.", label)
}
