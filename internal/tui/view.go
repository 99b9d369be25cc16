package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/regatta/internal/tui/components"
	"github.com/thenoetrevino/regatta/internal/tui/layers"
	"github.com/thenoetrevino/regatta/internal/tui/notifications"
	"github.com/thenoetrevino/regatta/internal/tui/state"
)

const title = "Course des Impressionnistes · registrations"

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion

	// Wait for terminal size to be initialized
	if m.uiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	base := m.renderTableScreen()
	if m.uiState.Mode() != state.HelpMode {
		view.Content = base
		return view
	}

	layerStack := []*lipgloss.Layer{lipgloss.NewLayer(base)}
	if overlay := layers.CreateCenteredLayer(m.renderHelp(), m.uiState.Width(), m.uiState.Height()); overlay != nil {
		layerStack = append(layerStack, overlay.Z(1))
	}
	view.Content = lipgloss.NewCanvas(layerStack...).Render()
	return view
}

func (m Model) renderTableScreen() string {
	focus := m.navigator.Focus()

	grid := components.RenderTable(components.TableProps{
		Layout:      m.layout,
		Rows:        m.sorted,
		Indicator:   m.sorter.Indicator,
		Focus:       focus,
		ShowFocus:   m.navigator.Attached(),
		ScrollLeft:  m.tracker.ScrollLeft(),
		RowOffset:   m.listView.ScrollOffset(),
		VisibleRows: m.listView.VisibleRows(),
		Theme:       m.theme,
	})

	var notification string
	if n, ok := m.notifications.Latest(); ok {
		notification = notifications.RenderInlineFromState(m.theme.Scheme, n)
	}

	parts := []string{
		m.theme.Title.Render(title),
		grid,
		m.renderStatusBar(),
		notification,
		m.help.ShortHelpView(m.keys.ShortHelp()),
	}
	return strings.Join(parts, "\n")
}

func (m Model) renderStatusBar() string {
	left := fmt.Sprintf("%d boats · %s", len(m.sorted), m.sortLabel())

	var right string
	switch {
	case m.tracker.IsScrolling():
		right = "scrolling…"
	case m.viewport.MaxScroll() > 0:
		right = fmt.Sprintf("%3.0f%%", m.tracker.Progress()*100)
	}
	if row := m.navigator.Focus().Row; row > 0 {
		right = strings.TrimSpace(fmt.Sprintf("row %d/%d  %s", row, len(m.sorted), right))
	}

	return components.RenderStatusBar(components.StatusBarProps{
		Width: m.uiState.Width(),
		Left:  left,
		Right: right,
		Theme: m.theme,
	})
}

func (m Model) renderHelp() string {
	width, height := layers.HelpDimensions(m.uiState.Width(), m.uiState.Height())
	inner := max(width-layers.HelpBorderPaddingWidth, 10)

	body := components.RenderMarkdown(helpMarkdown(m.keys), inner)
	if lines := strings.Split(body, "\n"); len(lines) > height-2 {
		body = strings.Join(lines[:max(height-2, 1)], "\n")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Scheme.Border)).
		Padding(0, 2).
		Width(width).
		Render(body)
}
