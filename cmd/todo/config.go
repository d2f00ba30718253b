package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/amonks/dottodo/internal/config"
	"github.com/amonks/dottodo/internal/editor"
	"github.com/amonks/dottodo/internal/paths"
	"github.com/amonks/dottodo/todo"
	"github.com/spf13/cobra"
)

// todo config
var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"conf"},
	Short:   "Show or change the todo list config",
	Args:    cobra.NoArgs,
	RunE:    runConfig,
}

// todo config name
var configNameCmd = &cobra.Command{
	Use:   "name [new-name]",
	Short: "Show or set the name written beside each new todo",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigName,
}

// todo config deleted
var configDeletedCmd = &cobra.Command{
	Use:     "deleted [keep|discard]",
	Aliases: []string{"delete"},
	Short:   "Show or set what happens to deleted todos",
	Long: `Show or set the deletion policy.

keep saves deleted todos in .todo.deleted; discard drops them. The value is
matched to the closest policy, so typos and the older in_file/delete names work.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigDeleted,
}

// todo config home
var configHomeCmd = &cobra.Command{
	Use:   "home [path]",
	Short: "Show or set the directory used by --global",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigHome,
}

// todo config edit
var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the todo list config in $EDITOR",
	Args:  cobra.NoArgs,
	RunE:  runConfigEdit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configNameCmd, configDeletedCmd, configHomeCmd, configEditCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	cfg, err := store.Config()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "current config:")
	for _, line := range cfg.Lines() {
		fmt.Fprintf(out, "\t%s\n", line)
	}
	return nil
}

func runConfigName(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		cfg, err := store.Config()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), cfg.Name)
		return nil
	}

	name := strings.TrimSpace(args[0])
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if err := store.SetName(name); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "name set to %s\n", name)
	return nil
}

func runConfigDeleted(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		cfg, err := store.Config()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), describePolicy(cfg.Policy))
		return nil
	}

	policy, err := store.SetPolicy(args[0])
	if err != nil {
		return err
	}
	if string(policy) != strings.ToLower(strings.TrimSpace(args[0])) {
		logger.Debug("deletion policy matched", "input", args[0], "policy", policy)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "deleted todos: %s\n", describePolicy(policy))
	return nil
}

func describePolicy(policy todo.DeletionPolicy) string {
	if policy == todo.PolicyDiscard {
		return "discard (deleted todos are dropped)"
	}
	return fmt.Sprintf("keep (deleted todos are saved in %s)", todo.DeletedFile)
}

func runConfigHome(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		dir, err := newResolver().Start(paths.ModeGlobal)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), dir)
		return nil
	}

	value := strings.TrimSpace(args[0])
	if value == "" {
		return fmt.Errorf("path cannot be empty")
	}
	if !strings.HasPrefix(value, "~") {
		abs, err := filepath.Abs(value)
		if err != nil {
			return fmt.Errorf("resolve %q: %w", value, err)
		}
		value = abs
	}

	path, err := config.Path()
	if err != nil {
		return err
	}
	if err := config.SetGlobalDir(path, value); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "global todo dir set to %s\n", value)
	return nil
}

func runConfigEdit(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	if err := editor.Edit(filepath.Join(store.Dir(), todo.ConfigFile)); err != nil {
		return err
	}

	if _, err := store.Config(); err != nil {
		return fmt.Errorf("config is invalid after editing: %w", err)
	}
	return nil
}
