package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/regatta/internal/tui/theme"
)

type StatusBarProps struct {
	Width int
	Left  string
	Right string
	Theme *theme.Theme
}

// RenderStatusBar renders a full-width bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	style := props.Theme.StatusBar

	leftWidth := lipgloss.Width(props.Left)
	rightWidth := lipgloss.Width(props.Right)
	gapWidth := max(props.Width-leftWidth-rightWidth-2, 1)

	content := " " + props.Left + strings.Repeat(" ", gapWidth) + props.Right + " "
	if props.Width > 0 {
		return style.Width(props.Width).MaxWidth(props.Width).Render(content)
	}
	return style.Render(content)
}
