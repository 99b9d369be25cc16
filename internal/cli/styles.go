package cli

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/regatta/internal/config/colors"
)

// Styles are the lipgloss styles of the printed table.
type Styles struct {
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Border  lipgloss.Style
	Paid    lipgloss.Style
	Unpaid  lipgloss.Style
	Success lipgloss.Style
	Subtle  lipgloss.Style
}

// NewStyles builds the CLI styles from a color scheme
func NewStyles(scheme colors.ColorScheme) Styles {
	cell := lipgloss.NewStyle().Padding(0, 1)
	return Styles{
		Header: cell.
			Bold(true).
			Foreground(lipgloss.Color(scheme.HeaderFg)),
		Cell:    cell.Foreground(lipgloss.Color(scheme.Normal)),
		Border:  lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Border)),
		Paid:    cell.Foreground(lipgloss.Color(scheme.Paid)),
		Unpaid:  cell.Foreground(lipgloss.Color(scheme.Unpaid)),
		Success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(scheme.Paid)),
		Subtle:  lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Subtle)),
	}
}
