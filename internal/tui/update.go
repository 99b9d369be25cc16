package tui

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/regatta/internal/converters"
	"github.com/thenoetrevino/regatta/internal/table"
	"github.com/thenoetrevino/regatta/internal/tui/state"
)

// Update handles all messages and updates the model accordingly.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// settle timers are routed to the tracker first
	if _, ok := m.tracker.Update(msg); ok {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.uiState.SetSize(msg.Width, msg.Height)
		m.relayout()
		return m, nil

	case boatsLoadedMsg:
		if msg.err != nil {
			m.logger.Error("failed to load registrations", "error", msg.err)
			return m, m.notify(state.LevelError, fmt.Sprintf("Could not load registrations: %v", msg.err))
		}
		m.setRows(converters.BoatsToRows(msg.boats))
		m.logger.Debug("registrations loaded", "count", len(m.rows))
		return m, nil

	case notificationExpiredMsg:
		m.notifications.Remove(msg.id)
		return m, nil

	case table.SortMsg:
		m.logger.Info("table sorted", "field", msg.Field, "direction", msg.Direction)
		return m, nil

	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg)

	case tea.KeyPressMsg:
		if m.uiState.Mode() == state.HelpMode {
			return m.handleHelpKey(msg)
		}
		return m.handleTableKey(msg)
	}

	return m, nil
}

func (m Model) handleHelpKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c":
		return m.quit()
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit), msg.String() == "esc":
		m.uiState.SetMode(state.TableMode)
	}
	return m, nil
}

func (m Model) handleTableKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}

	// The navigator owns arrows and header activation.
	if handled, cmd := m.navigator.HandleKey(msg); handled {
		if cmd != nil {
			m.resort()
		}
		return m, tea.Batch(cmd, m.ensureFocusVisible())
	}

	switch {
	case key.Matches(msg, m.keys.SortColumn):
		return m.sortFocusedColumn()

	case key.Matches(msg, m.keys.ClearSort):
		m.sorter.Reset()
		m.resort()
		return m, nil

	case key.Matches(msg, m.keys.ScrollLeft):
		return m, m.tracker.ScrollBy(-m.cfg.Table.ScrollStep)

	case key.Matches(msg, m.keys.ScrollRight):
		return m, m.tracker.ScrollBy(m.cfg.Table.ScrollStep)

	case key.Matches(msg, m.keys.ScrollStart):
		return m, m.tracker.ScrollToStart()

	case key.Matches(msg, m.keys.ScrollEnd):
		return m, m.tracker.ScrollToEnd()

	case key.Matches(msg, m.keys.Reload):
		return m, m.loadBoats()

	case key.Matches(msg, m.keys.Help):
		m.uiState.SetMode(state.HelpMode)
		return m, nil
	}

	return m, nil
}

// sortFocusedColumn sorts by the column under the focus, from any row.
func (m Model) sortFocusedColumn() (tea.Model, tea.Cmd) {
	field, sortable := m.layout.Grid(len(m.sorted)).HeaderField(m.navigator.Focus().Col)
	if !sortable || field == "" {
		return m, m.notify(state.LevelInfo, "This column cannot be sorted")
	}

	m.sorter.SortBy(field)
	m.resort()
	sortMsg := table.SortMsg{Field: m.sorter.Field(), Direction: m.sorter.Direction()}
	return m, func() tea.Msg { return sortMsg }
}

func (m Model) handleMouseWheel(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	mouse := msg.Mouse()
	step := m.cfg.Table.ScrollStep

	switch mouse.Button {
	case tea.MouseWheelLeft:
		return m, m.tracker.ScrollBy(-step)
	case tea.MouseWheelRight:
		return m, m.tracker.ScrollBy(step)
	case tea.MouseWheelUp:
		if mouse.Mod.Contains(tea.ModShift) {
			return m, m.tracker.ScrollBy(-step)
		}
		m.moveRow(-1)
	case tea.MouseWheelDown:
		if mouse.Mod.Contains(tea.ModShift) {
			return m, m.tracker.ScrollBy(step)
		}
		m.moveRow(1)
	}
	return m, nil
}

// moveRow moves the focus vertically and keeps it on screen.
func (m *Model) moveRow(delta int) {
	focus := m.navigator.Focus()
	focus.Row += delta
	if m.navigator.SetFocus(focus) {
		m.listView.EnsureVisible(focus.Row-1, len(m.sorted))
	}
}

// quit tears the table down so pending timers and keys are ignored.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.tracker.Detach()
	m.navigator.Detach()
	return m, tea.Quit
}
