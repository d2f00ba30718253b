package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/amonks/dottodo/internal/markdown"
	"github.com/amonks/dottodo/internal/ui"
	"github.com/amonks/dottodo/todo"
)

// formatTodoList renders the compact listing: description and due date,
// tab-separated, optionally prefixed with [index].
func formatTodoList(entries []todo.Entry, withIndex bool) string {
	var builder strings.Builder
	for _, entry := range entries {
		if withIndex {
			fmt.Fprintf(&builder, "[%d]\t", entry.Index)
		}
		fmt.Fprintf(&builder, "%s\t%s\t\n", entry.Todo.Description, entry.Todo.DueDate)
	}
	return builder.String()
}

// formatTodoTable renders every field of the open todos, with the due date
// relative to now and overdue dates highlighted.
func formatTodoTable(entries []todo.Entry, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"IDX", "OWNER", "DUE DATE", "TIME", "DUE", "CREATED", "DESCRIPTION"}, len(entries))

	for _, entry := range entries {
		item := entry.Todo
		dueDate := item.DueDate
		relative := "-"
		if dueAt, ok := item.Due(now.Location()); ok {
			relative = ui.FormatDue(dueAt, now)
			if dueAt.Before(now) {
				dueDate = ui.Render(ui.OverdueStyle, dueDate)
			}
		}

		builder.AddRow([]string{
			ui.Render(ui.IndexStyle, strconv.Itoa(entry.Index)),
			item.Owner,
			dueDate,
			item.DueTime,
			relative,
			ui.Render(ui.MutedStyle, formatCreated(item)),
			ui.TruncateTableCell(item.Description),
		})
	}

	return builder.String()
}

func formatCreated(item todo.Todo) string {
	return strings.TrimSpace(item.CreatedDate + " " + item.CreatedTime)
}

const todoDetailLineWidth = 80

// formatTodoDetail renders one todo with its description as markdown.
func formatTodoDetail(entry todo.Entry, now time.Time) string {
	item := entry.Todo
	label := func(name string) string {
		return ui.Render(ui.HeaderStyle, fmt.Sprintf("%-9s", name+":"))
	}

	dueText := strings.TrimSpace(item.DueDate + " " + item.DueTime)
	if dueAt, ok := item.Due(now.Location()); ok {
		dueText = fmt.Sprintf("%s (%s)", dueText, ui.FormatDue(dueAt, now))
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, "%s %d\n", label("Index"), entry.Index)
	fmt.Fprintf(&builder, "%s %s\n", label("Owner"), item.Owner)
	fmt.Fprintf(&builder, "%s %s\n", label("Due"), dueText)
	fmt.Fprintf(&builder, "%s %s\n", label("Created"), formatCreated(item))
	fmt.Fprintf(&builder, "\n%s\n%s\n", ui.Render(ui.HeaderStyle, "Description:"), formatTodoDescription(item.Description))
	return builder.String()
}

func formatTodoDescription(value string) string {
	rendered := markdown.SafeRender(todoDetailLineWidth, 2, []byte(value))
	if len(rendered) == 0 {
		return ui.IndentBlock(ui.ReflowParagraphs(value, todoDetailLineWidth-2), 2)
	}
	return string(rendered)
}
