package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Frame       lipgloss.Style
	SlideID     lipgloss.Style
	SlideURL    lipgloss.Style
	Outgoing    lipgloss.Style
	Dot         lipgloss.Style
	DotActive   lipgloss.Style
	DotPending  lipgloss.Style
	Arrow       lipgloss.Style
	Counter     lipgloss.Style
	Status      lipgloss.Style
	StatusPause lipgloss.Style
	Fallback    lipgloss.Style
	QR          lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 3),
		SlideID:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
		SlideURL:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Outgoing:    lipgloss.NewStyle().Faint(true),
		Dot:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		DotActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true), // green
		DotPending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),           // yellow
		Arrow:       lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Counter:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
		StatusPause: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).MarginTop(1),
		Fallback:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Italic(true), // red
		QR:          lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("16")),
		Help:        lipgloss.NewStyle().Faint(true),
	}
}
