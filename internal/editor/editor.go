// Package editor opens todo templates and list configs in the user's editor.
package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"
)

const fallbackEditor = "vi"

// IsInteractive returns true if stdin is a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Command returns the editor program and its leading arguments. $VISUAL is
// preferred over $EDITOR; values like "code -w" are split on whitespace.
func Command() (string, []string) {
	for _, name := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(os.Getenv(name)); len(fields) > 0 {
			return fields[0], fields[1:]
		}
	}
	return fallbackEditor, nil
}

// Edit opens path in the editor and waits for it to exit.
func Edit(path string) error {
	program, args := Command()

	cmd := exec.Command(program, append(args, path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("editor %s exited with status %d", program, exitErr.ExitCode())
		}
		return fmt.Errorf("run editor %s: %w", program, err)
	}
	return nil
}
