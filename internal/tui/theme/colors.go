// Package theme turns a configured color scheme into lipgloss styles.
package theme

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/regatta/internal/config/colors"
)

// Theme holds the styles of one running program. It is built once from
// the configuration and passed down; nothing here is global.
type Theme struct {
	Scheme colors.ColorScheme

	Title        lipgloss.Style
	Header       lipgloss.Style
	SortedHeader lipgloss.Style
	Cell         lipgloss.Style
	StripeCell   lipgloss.Style
	StickyCell   lipgloss.Style
	Focus        lipgloss.Style
	Paid         lipgloss.Style
	Unpaid       lipgloss.Style
	Subtle       lipgloss.Style
	StatusBar    lipgloss.Style
}

// New builds the styles for scheme. Missing colors should be filled with
// ApplyDefaults beforehand.
func New(scheme colors.ColorScheme) *Theme {
	cell := lipgloss.NewStyle().
		Foreground(lipgloss.Color(scheme.Normal)).
		Padding(0, 1)

	return &Theme{
		Scheme: scheme,

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Title)).
			Bold(true),
		Header: cell.
			Foreground(lipgloss.Color(scheme.HeaderFg)).
			Background(lipgloss.Color(scheme.HeaderBg)).
			Bold(true),
		SortedHeader: cell.
			Foreground(lipgloss.Color(scheme.SortedFg)).
			Background(lipgloss.Color(scheme.HeaderBg)).
			Bold(true),
		Cell:       cell,
		StripeCell: cell.Background(lipgloss.Color(scheme.StripeBg)),
		StickyCell: cell.Background(lipgloss.Color(scheme.StickyBg)),
		Focus: cell.
			Foreground(lipgloss.Color(scheme.FocusFg)).
			Background(lipgloss.Color(scheme.FocusBg)).
			Bold(true),
		Paid:   lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Paid)),
		Unpaid: lipgloss.NewStyle().Foreground(lipgloss.Color(scheme.Unpaid)),
		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Subtle)).
			Italic(true),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.StatusFg)).
			Background(lipgloss.Color(scheme.StatusBg)),
	}
}
