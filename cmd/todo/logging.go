package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

const debugEnv = "TODO_DEBUG"

// newLogger builds the diagnostics logger. Warnings are shown by default;
// debug output needs --verbose or TODO_DEBUG=1.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose || os.Getenv(debugEnv) == "1" {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.TextFormatter,
		ReportTimestamp: false,
		ReportCaller:    false,
		Prefix:          "todo",
	})
}
