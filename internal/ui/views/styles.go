package views

import (
	"github.com/charmbracelet/lipgloss"

	"multiselect/internal/config"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Answer      lipgloss.Style
	Pointer     lipgloss.Style
	Highlight   lipgloss.Style
	Selected    lipgloss.Style
	Unselected  lipgloss.Style
	Dim         lipgloss.Style
	Error       lipgloss.Style
	Scroll      lipgloss.Style
	Summary     lipgloss.Style
	HelpOverlay lipgloss.Style
	HelpSection lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
}

// NewStyles creates styles from the configured colors
func NewStyles(colors config.Colors) *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Title)),
		Answer:     lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Dim)),
		Pointer:    lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Highlight)).Bold(true),
		Highlight:  lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Highlight)),
		Selected:   lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Selected)),
		Unselected: lipgloss.NewStyle(),
		Dim:        lipgloss.NewStyle().Faint(true),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Error)),
		Scroll:     lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Dim)).Italic(true),
		Summary:    lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Dim)),
		HelpOverlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colors.Dim)).
			Padding(0, 1),
		HelpSection: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Highlight)),
		HelpKey:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		HelpDesc: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}
