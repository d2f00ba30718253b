package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/amonks/dottodo/todo"
	"github.com/spf13/cobra"
)

// todo create
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a todo list in the current directory",
	Long: `Create the todo list files in the current directory (or in the global
directory with -g): .todo.todo, .todo.finished, .todo.deleted, and .todo.config.

The config is copied from --config when given. Otherwise it uses [create].name
and [create].deleted from the settings file, falling back to default-name and
keep. Files that already exist are left alone.`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

var createConfigFile string

func init() {
	rootCmd.AddCommand(createCmd)

	setFlagAliases(createCmd.Flags(), createFlagAliases)
	createCmd.Flags().StringVarP(&createConfigFile, "config", "c", "", "Copy the list config from this file")
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := createConfig(createConfigFile)
	if err != nil {
		return err
	}

	dir, err := resolveCreateDir()
	if err != nil {
		return err
	}

	result, err := todo.Create(dir, todo.CreateOptions{Config: cfg})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, name := range result.Existing {
		fmt.Fprintf(out, "%s already exists\n", name)
	}
	for _, name := range result.Created {
		fmt.Fprintf(out, "created %s\n", filepath.Join(dir, name))
	}
	return nil
}

// createConfig returns the list config for a new todo list.
func createConfig(path string) (todo.Config, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return todo.Config{}, fmt.Errorf("read config file: %w", err)
		}
		cfg, err := todo.ParseConfig(string(data))
		if err != nil {
			return todo.Config{}, fmt.Errorf("%s: %w", path, err)
		}
		return cfg, nil
	}

	cfg := todo.DefaultConfig()
	if settings.Create.Name != "" {
		cfg.Name = settings.Create.Name
	}
	if settings.Create.Deleted != "" {
		cfg.Policy = todo.MatchPolicy(settings.Create.Deleted)
	}
	return cfg, nil
}
