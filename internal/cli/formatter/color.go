package formatter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hafprodutora/editcostV3/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusLabel returns a colored label for a project status.
func StatusLabel(status domain.ProjectStatus) string {
	switch status {
	case domain.StatusInEditing:
		return StyleYellow.Render("● IN EDITING")
	case domain.StatusCompleted:
		return StyleGreen.Render("● COMPLETED")
	case domain.StatusPaused:
		return StyleDim.Render("● PAUSED")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// DeliverableLabel returns a colored label for a deliverable status.
func DeliverableLabel(status domain.DeliverableStatus) string {
	switch status {
	case domain.DeliverableDone:
		return StyleGreen.Render("done")
	case domain.DeliverableInProgress:
		return StyleYellow.Render("in progress")
	default:
		return StyleDim.Render("pending")
	}
}
