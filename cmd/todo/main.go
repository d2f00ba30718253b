// Package main implements the todo CLI tool.
package main

import (
	"errors"
	"os"

	"github.com/amonks/dottodo/internal/config"
	"github.com/amonks/dottodo/internal/paths"
	"github.com/amonks/dottodo/internal/ui"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "Manage todos in the current directory tree or your home directory",
	Long: `Manage todos stored as tab-separated lines in plain files.

Local mode (the default) uses the nearest directory, walking upward from the
working directory, that holds a .todo.todo file. Global mode (-g) uses your
home directory, or [global].dir from the settings file.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupRoot,
}

var (
	rootGlobal  bool
	rootDir     string
	rootVerbose bool
)

// settings holds the user-level TOML settings, loaded before every command.
var settings = &config.Config{List: config.List{Color: true}}

// logger receives diagnostics on stderr.
var logger = newLogger(os.Stderr, false)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootGlobal, "global", "g", false, "Use the global todo list in your home directory")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "C", "", "Use the todo list in this directory")
	rootCmd.PersistentFlags().BoolVar(&rootVerbose, "verbose", false, "Log debug output to stderr")
}

func setupRoot(cmd *cobra.Command, args []string) error {
	logger = newLogger(cmd.ErrOrStderr(), rootVerbose)

	cwd, err := paths.WorkingDir()
	if err != nil {
		return err
	}

	loaded, err := config.Load(cwd)
	if err != nil {
		return err
	}
	settings = loaded
	if !settings.List.Color {
		ui.DisableColor()
	}

	logger.Debug("settings loaded", "global_dir", settings.Global.Dir, "color", settings.List.Color)
	return nil
}
