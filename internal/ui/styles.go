package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// IsTTY and IsStderrTTY report whether stdout and stderr are interactive
// terminals. Render and RenderStderr return plain text when they are not.
var (
	IsTTY       = term.IsTerminal(os.Stdout.Fd())
	IsStderrTTY = term.IsTerminal(os.Stderr.Fd())
)

var (
	Green  = lipgloss.Color("#58D68D")
	Copper = lipgloss.Color("#DC7633")
	Pink   = lipgloss.Color("#FF6B9D")
	Gray   = lipgloss.Color("#AAB7B8")
)

var (
	// Success marks a created link.
	Success = lipgloss.NewStyle().Foreground(Green)

	// Warning marks a link that needs attention.
	Warning = lipgloss.NewStyle().Foreground(Copper)

	// Error marks fatal errors.
	Error = lipgloss.NewStyle().Foreground(Pink).Bold(true)

	// Muted is for no-op outcomes.
	Muted = lipgloss.NewStyle().Foreground(Gray)
)

// Render applies style only when writing to a terminal.
func Render(style lipgloss.Style, s string) string {
	if !IsTTY {
		return s
	}
	return style.Render(s)
}

// RenderStderr is Render for lines written to stderr.
func RenderStderr(style lipgloss.Style, s string) string {
	if !IsStderrTTY {
		return s
	}
	return style.Render(s)
}
