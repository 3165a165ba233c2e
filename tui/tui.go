// Package tui is facet's rendering collaborator: it draws every open panel,
// turns user picks into coordinator selection mutations, and refreshes each
// panel when its context's selection changes.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Initialize prepares the terminal environment for the TUI. It checks for
// environment variables that force color output (`CLICOLOR_FORCE`,
// `COLORTERM`) and sets the appropriate lipgloss color profile when present.
//
// This ensures consistent color and styling when running in non-interactive
// or CI environments, while having no effect in production environments
// where these variables are not set.
func Initialize() {
	if os.Getenv("CLICOLOR_FORCE") == "1" || os.Getenv("COLORTERM") == "truecolor" {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}
