package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/amonks/dottodo/due"
	"github.com/amonks/dottodo/internal/editor"
	"github.com/amonks/dottodo/todo"
	"github.com/spf13/cobra"
)

// todo add
var addCmd = &cobra.Command{
	Use:   "add [description]",
	Short: "Add a todo",
	Long: `Add a todo to the open list.

Due dates accept today, tomorrow, next week, "in N days", "in N weeks",
"week N", DD.MM.YYYY, DD.MM.YY, and DD.MM (next occurrence). Due times accept
HH, HHMM, HH:MM, "in N hours", and "in N min". Anything else is stored as typed.

Pass - as the description to read it from stdin. When running interactively
without arguments, $EDITOR opens a template; use --no-edit to skip it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

var (
	addDueDate string
	addDueTime string
	addEdit    bool
	addNoEdit  bool
)

// todo list
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List todos with their due dates",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var (
	listIndex     bool
	listFinished  bool
	listDeleted   bool
	listJSON      bool
	listOwner     string
	listDueBefore string
	listSearch    string
)

// todo finish
var finishCmd = &cobra.Command{
	Use:     "finish [index]",
	Aliases: []string{"done"},
	Short:   "Move a todo to the finished list",
	Long: `Move the todo at index to the finished list.

Without an index, lists open todos with their indexes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFinish,
}

// todo delete
var deleteCmd = &cobra.Command{
	Use:     "delete [index]",
	Aliases: []string{"rm"},
	Short:   "Delete a todo",
	Long: `Delete the todo at index. With the keep policy (see "todo config deleted"),
the todo is saved to the deleted list first.

Without an index, lists open todos with their indexes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDelete,
}

// todo open
var openCmd = &cobra.Command{
	Use:     "open",
	Aliases: []string{"o"},
	Short:   "Show open todos as a table",
	Args:    cobra.NoArgs,
	RunE:    runOpen,
}

// todo show
var showCmd = &cobra.Command{
	Use:   "show <index>",
	Short: "Show one open todo in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var showJSON bool

// todo clear
var clearCmd = &cobra.Command{
	Use:     "clear",
	Aliases: []string{"c"},
	Short:   "Empty the finished and deleted lists",
	Long: `Empty the finished and deleted lists.

Pass --finished or --deleted to clear only one of them. Open todos are never cleared.`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

var (
	clearFinished bool
	clearDeleted  bool
)

func init() {
	rootCmd.AddCommand(addCmd, listCmd, finishCmd, deleteCmd, openCmd, showCmd, clearCmd)

	addDueFlagAliases(addCmd)
	addCmd.Flags().StringVarP(&addDueDate, "due-date", "d", "-", "Due date (today, tomorrow, in 3 days, week 21, 24.12, ...)")
	addCmd.Flags().StringVarP(&addDueTime, "due-time", "t", "-", "Due time (18, 1240, 14:39, in 2 hours, in 30 min, ...)")
	addCmd.Flags().BoolVarP(&addEdit, "edit", "e", false, "Open $EDITOR (default if interactive and no arguments)")
	addCmd.Flags().BoolVar(&addNoEdit, "no-edit", false, "Do not open $EDITOR")
	addCmd.MarkFlagsMutuallyExclusive("edit", "no-edit")

	listCmd.Flags().BoolVarP(&listIndex, "index", "i", false, "Prefix each todo with its index")
	listCmd.Flags().BoolVar(&listFinished, "finished", false, "List finished todos")
	listCmd.Flags().BoolVar(&listDeleted, "deleted", false, "List deleted todos")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	listCmd.Flags().StringVar(&listOwner, "owner", "", "Only todos created under this name")
	listCmd.Flags().StringVar(&listDueBefore, "due-before", "", "Only todos due before this date (same syntax as add --due-date)")
	listCmd.Flags().StringVar(&listSearch, "search", "", "Only todos whose description contains this text")
	listCmd.MarkFlagsMutuallyExclusive("finished", "deleted")

	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")

	clearCmd.Flags().BoolVar(&clearFinished, "finished", false, "Clear only the finished list")
	clearCmd.Flags().BoolVar(&clearDeleted, "deleted", false, "Clear only the deleted list")
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	hasFlags := len(args) > 0 || hasChangedFlags(cmd, "due-date", "due-time")
	var opts todo.AddOptions
	if shouldUseEditor(hasFlags, addEdit, addNoEdit, editor.IsInteractive()) {
		data := editor.DefaultCreateData()
		if len(args) > 0 {
			data.Description = args[0]
		}
		if cmd.Flags().Changed("due-date") {
			data.DueDate = addDueDate
		}
		if cmd.Flags().Changed("due-time") {
			data.DueTime = addDueTime
		}

		parsed, err := editor.EditTodo(data)
		if err != nil {
			return err
		}
		opts = parsed.ToAddOptions()
	} else {
		if len(args) == 0 {
			return errors.New("description is required (pass - to read it from stdin)")
		}
		description, err := resolveDescriptionFromStdin(args[0], cmd.InOrStdin())
		if err != nil {
			return err
		}
		opts = todo.AddOptions{Description: description, DueDate: addDueDate, DueTime: addDueTime}
	}

	item, err := store.Add(opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added: %s (due %s %s)\n", item.Description, item.DueDate, item.DueTime)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	section := todo.SectionOpen
	switch {
	case listFinished:
		section = todo.SectionFinished
	case listDeleted:
		section = todo.SectionDeleted
	}

	filter, filtered, err := listFilter(time.Now())
	if err != nil {
		return err
	}

	all, err := store.List(section, nil)
	if err != nil {
		return err
	}
	entries := todo.FilterEntries(all, filter)

	if listJSON {
		return encodeJSON(cmd.OutOrStdout(), entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), todoEmptyListMessage(len(all), section, filtered))
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), formatTodoList(entries, listIndex))
	return nil
}

func listFilter(now time.Time) (todo.Filter, bool, error) {
	var filters []todo.Filter

	if listOwner != "" {
		filters = append(filters, todo.OwnerIs(listOwner))
	}
	if listSearch != "" {
		filters = append(filters, todo.DescriptionContains(listSearch))
	}
	if listDueBefore != "" {
		date := due.ParseDate(listDueBefore, now)
		day, ok := due.ParseCanonical(date, "", now.Location())
		if !ok {
			return nil, false, fmt.Errorf("invalid --due-before date %q", listDueBefore)
		}
		filters = append(filters, todo.DueBefore(day))
	}

	if len(filters) == 0 {
		return nil, false, nil
	}
	return todo.MatchAll(filters...), true, nil
}

func runFinish(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return printIndexedOpenTodos(cmd, store)
	}

	index, err := todo.ParseIndex(args[0])
	if err != nil {
		return err
	}

	item, err := store.Finish(index)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Finished [%d]: %s\n", index, item.Description)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return printIndexedOpenTodos(cmd, store)
	}

	index, err := todo.ParseIndex(args[0])
	if err != nil {
		return err
	}

	result, err := store.Delete(index)
	if err != nil {
		return err
	}

	where := "discarded"
	if result.Kept {
		where = "kept in " + todo.DeletedFile
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted [%d]: %s (%s)\n", index, result.Todo.Description, where)
	return nil
}

func printIndexedOpenTodos(cmd *cobra.Command, store *todo.Store) error {
	entries, err := store.List(todo.SectionOpen, nil)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), todoEmptyListMessage(0, todo.SectionOpen, false))
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), formatTodoList(entries, true))
	return nil
}

func runOpen(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	entries, err := store.List(todo.SectionOpen, nil)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), todoEmptyListMessage(0, todo.SectionOpen, false))
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), formatTodoTable(entries, time.Now()))
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	index, err := todo.ParseIndex(args[0])
	if err != nil {
		return err
	}

	item, err := store.Get(index)
	if err != nil {
		return err
	}

	if showJSON {
		return encodeJSON(cmd.OutOrStdout(), todo.Entry{Index: index, Todo: item})
	}

	fmt.Fprint(cmd.OutOrStdout(), formatTodoDetail(todo.Entry{Index: index, Todo: item}, time.Now()))
	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	sections := clearSections(clearFinished, clearDeleted)
	if err := store.Clear(sections...); err != nil {
		return err
	}

	names := make([]string, 0, len(sections))
	for _, section := range sections {
		path, err := store.SectionPath(section)
		if err != nil {
			return err
		}
		names = append(names, filepath.Base(path))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s\n", strings.Join(names, ", "))
	return nil
}

func clearSections(finished, deleted bool) []todo.Section {
	if finished == deleted {
		return []todo.Section{todo.SectionFinished, todo.SectionDeleted}
	}
	if finished {
		return []todo.Section{todo.SectionFinished}
	}
	return []todo.Section{todo.SectionDeleted}
}
