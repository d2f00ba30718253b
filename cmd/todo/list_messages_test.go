package main

import (
	"testing"

	"github.com/amonks/dottodo/todo"
)

func TestTodoEmptyListMessage(t *testing.T) {
	cases := []struct {
		name     string
		total    int
		section  todo.Section
		filtered bool
		want     string
	}{
		{name: "empty open", section: todo.SectionOpen, want: "No todos found. Use `todo add` to create one."},
		{name: "empty finished", section: todo.SectionFinished, want: "No finished todos found."},
		{name: "filtered open", total: 3, section: todo.SectionOpen, filtered: true, want: "No todos match the given filters."},
		{name: "filtered deleted", total: 1, section: todo.SectionDeleted, filtered: true, want: "No deleted todos match the given filters."},
		{name: "filter on empty list", section: todo.SectionDeleted, filtered: true, want: "No deleted todos found."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := todoEmptyListMessage(tc.total, tc.section, tc.filtered); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
