package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var statusStyles = map[string]lipgloss.Style{
	"todo":        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	"in-progress": lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	"done":        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
}

// StyleStatus colors a status cell for terminal output. Unknown statuses
// and non-TTY output pass through unstyled.
func StyleStatus(status string) string {
	if !ansiEnabled() {
		return status
	}

	style, ok := statusStyles[status]
	if !ok {
		return status
	}
	return style.Render(status)
}

func ansiEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
