package formatter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tmorland/wayfare/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
)

// StatusIndicator returns a marker for a step status: ✔ for completed,
// ▶ for in progress, ○ for not started.
func StatusIndicator(status domain.StepStatus, plain bool) string {
	switch status {
	case domain.StepCompleted:
		if plain {
			return "✔"
		}
		return StyleGreen.Render("✔")
	case domain.StepInProgress:
		if plain {
			return "▶"
		}
		return StyleYellow.Render("▶")
	default:
		if plain {
			return "○"
		}
		return StyleDim.Render("○")
	}
}
