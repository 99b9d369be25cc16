// Package notifications renders the transient message line of the table.
package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/regatta/internal/config/colors"
	"github.com/thenoetrevino/regatta/internal/tui/state"
)

// RenderInline renders a compact single-line notification
func RenderInline(scheme colors.ColorScheme, level state.NotificationLevel, message string) string {
	s := levelStyle(scheme, level)

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.foreground)).
		Background(lipgloss.Color(s.background)).
		Padding(0, 1).
		Render(s.icon + " " + message)
}

// RenderInlineFromState renders a stored notification
func RenderInlineFromState(scheme colors.ColorScheme, n state.Notification) string {
	return RenderInline(scheme, n.Level, n.Message)
}
