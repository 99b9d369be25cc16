// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Typically called with ui.ScreenWidth() and ui.ScreenHeight() as dimensions.
//
// Parameters:
//   - content: the rendered content to center
//   - screenWidth: the width of the screen
//   - screenHeight: the height of the screen
//
// Returns:
//   - A layer positioned at the center of the screen, or nil if content is empty
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x, y := centerOffset(lipgloss.Width(content), lipgloss.Height(content), screenWidth, screenHeight)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// centerOffset returns the top-left corner that centers a block, never
// negative.
func centerOffset(contentWidth, contentHeight, screenWidth, screenHeight int) (int, int) {
	x := max((screenWidth-contentWidth)/2, 0)
	y := max((screenHeight-contentHeight)/2, 0)
	return x, y
}

// HelpDimensions returns the outer width and maximum height of the help
// overlay for a screen of the given size.
func HelpDimensions(screenWidth, screenHeight int) (int, int) {
	width := min(max(screenWidth/HelpWidthDivisor, HelpMinWidth), HelpMaxWidth)
	width = min(width, screenWidth)

	height := screenHeight * HelpMaxHeightNumerator / HelpMaxHeightDivisor
	return width, max(height, 1)
}
