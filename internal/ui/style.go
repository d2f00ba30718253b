package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	// HeaderStyle renders table headers and detail labels.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))

	// IndexStyle renders todo indexes.
	IndexStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

	// OverdueStyle renders due dates that have passed.
	OverdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	// MutedStyle renders secondary values such as creation stamps.
	MutedStyle = lipgloss.NewStyle().Faint(true)
)

var colorDisabled bool

// DisableColor turns off styling for the rest of the process.
func DisableColor() {
	colorDisabled = true
}

// Render applies style to value when color output is enabled.
func Render(style lipgloss.Style, value string) string {
	if !ansiEnabled() {
		return value
	}
	return style.Render(value)
}

func ansiEnabled() bool {
	if colorDisabled {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
