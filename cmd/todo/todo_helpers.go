package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/amonks/dottodo/internal/paths"
	"github.com/amonks/dottodo/todo"
	"github.com/spf13/cobra"
)

// dirEnv forces the data directory, like --dir.
const dirEnv = "TODO_DIR"

func dataMode() paths.Mode {
	if rootGlobal {
		return paths.ModeGlobal
	}
	return paths.ModeLocal
}

func newResolver() paths.Resolver {
	resolver := paths.NewResolver(todo.TodosFile)
	resolver.GlobalDir = settings.Global.Dir
	return resolver
}

// resolveDataDir returns the directory holding an existing todo list.
func resolveDataDir() (string, error) {
	override, err := dirOverride()
	if err != nil {
		return "", err
	}
	return paths.ResolveWithDefault(override, func() (string, error) {
		return newResolver().Resolve(dataMode())
	})
}

// resolveCreateDir returns the directory a new todo list is created in.
func resolveCreateDir() (string, error) {
	override, err := dirOverride()
	if err != nil {
		return "", err
	}
	return paths.ResolveWithDefault(override, func() (string, error) {
		return newResolver().Start(dataMode())
	})
}

func dirOverride() (string, error) {
	override := strings.TrimSpace(rootDir)
	if override == "" {
		override = strings.TrimSpace(os.Getenv(dirEnv))
	}
	if override == "" {
		return "", nil
	}

	if strings.HasPrefix(override, "~") {
		home, err := paths.HomeDir()
		if err != nil {
			return "", err
		}
		override = paths.ExpandHome(override, home)
	}

	abs, err := filepath.Abs(override)
	if err != nil {
		return "", fmt.Errorf("resolve %q: %w", override, err)
	}
	return abs, nil
}

func openStore() (*todo.Store, error) {
	dir, err := resolveDataDir()
	if err != nil {
		return nil, err
	}

	logger.Debug("using todo list", "dir", dir, "mode", dataMode())
	return todo.Open(dir, todo.OpenOptions{Logger: logger})
}

func resolveDescriptionFromStdin(description string, reader io.Reader) (string, error) {
	if description != "-" {
		return description, nil
	}

	input, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read description from stdin: %w", err)
	}

	value := strings.TrimRight(string(input), "\r\n")
	return value, nil
}

// shouldUseEditor decides whether add opens $EDITOR. Explicit --edit or
// --no-edit wins; otherwise any description or due flag means the todo is
// already given on the command line.
func shouldUseEditor(hasFlags bool, editFlag bool, noEditFlag bool, interactive bool) bool {
	switch {
	case editFlag:
		return true
	case noEditFlag, hasFlags:
		return false
	default:
		return interactive
	}
}

func hasChangedFlags(cmd *cobra.Command, names ...string) bool {
	flags := cmd.Flags()
	for _, name := range names {
		if flags.Changed(name) {
			return true
		}
	}
	return false
}
