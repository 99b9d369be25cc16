// Package tui implements the interactive registration table.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/regatta/internal/config"
	"github.com/thenoetrevino/regatta/internal/converters"
	"github.com/thenoetrevino/regatta/internal/database"
	"github.com/thenoetrevino/regatta/internal/models"
	"github.com/thenoetrevino/regatta/internal/table"
	"github.com/thenoetrevino/regatta/internal/tui/components"
	"github.com/thenoetrevino/regatta/internal/tui/state"
	"github.com/thenoetrevino/regatta/internal/tui/theme"
)

const (
	notificationTimeout = 4 * time.Second
	// title, status bar, notification line and help line
	chromeHeight = 4
)

// Model represents the application state for the TUI.
// The table parts are pointers, so copies made by Update share them.
type Model struct {
	ctx    context.Context
	store  database.BoatStore
	cfg    *config.Config
	keys   KeyMap
	theme  *theme.Theme
	logger *slog.Logger

	// columns is the normalized set before responsive hiding
	columns []models.Column
	// invalidColumns counts columns whose settings were partly ignored
	invalidColumns int
	rows           []models.Row
	sorted         []models.Row
	layout         components.TableLayout

	sorter    *table.SortController
	tracker   *table.ScrollTracker
	navigator *table.Navigator
	viewport  *table.Viewport
	settled   *scrollStatus

	listView      *state.ListViewState
	notifications *state.NotificationState
	uiState       *state.UIState
	help          help.Model
}

// scrollStatus keeps the last settled scroll event for the status bar.
type scrollStatus struct {
	last    table.ScrollMsg
	settles int
}

// New creates the table model. A nil logger uses slog.Default.
func New(ctx context.Context, store database.BoatStore, cfg *config.Config, logger *slog.Logger) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}

	declared := cfg.Table.Columns
	if len(declared) == 0 {
		declared = converters.DefaultBoatColumns()
	}
	invalid := 0
	for _, col := range declared {
		if len(col.Validate()) > 0 {
			invalid++
		}
	}

	keys := NewKeyMap(cfg.KeyMappings)
	sorter := table.NewSortController()
	tracker := table.NewScrollTracker(time.Duration(cfg.Table.ScrollSettleMs) * time.Millisecond)

	settled := &scrollStatus{}
	tracker.Subscribe(func(msg table.ScrollMsg) {
		settled.last = msg
		settled.settles++
	})

	return Model{
		ctx:            ctx,
		store:          store,
		cfg:            cfg,
		keys:           keys,
		theme:          theme.New(cfg.ColorScheme),
		logger:         logger,
		columns:        table.NormalizeColumns(declared, logger),
		invalidColumns: invalid,
		sorter:         sorter,
		tracker:        tracker,
		navigator:      table.NewNavigator(sorter, keys.Table),
		viewport:       &table.Viewport{},
		settled:        settled,
		listView:       state.NewListViewState(),
		notifications:  state.NewNotificationState(),
		uiState:        state.NewUIState(),
		help:           help.New(),
	}
}

// Init loads the registrations and reports ignored column settings.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadBoats()}
	if m.invalidColumns > 0 {
		cmds = append(cmds, m.notify(state.LevelWarning,
			fmt.Sprintf("%d column setting(s) ignored, see log", m.invalidColumns)))
	}
	return tea.Batch(cmds...)
}

func (m Model) loadBoats() tea.Cmd {
	ctx, store := m.ctx, m.store
	return func() tea.Msg {
		if store == nil {
			return boatsLoadedMsg{}
		}
		boats, err := store.ListBoats(ctx)
		return boatsLoadedMsg{boats: boats, err: err}
	}
}

// notify shows a message and schedules its removal.
func (m Model) notify(level state.NotificationLevel, message string) tea.Cmd {
	id := m.notifications.Add(level, message)
	return tea.Tick(notificationTimeout, func(time.Time) tea.Msg {
		return notificationExpiredMsg{id: id}
	})
}

// setRows replaces the data and re-applies the current sort.
func (m *Model) setRows(rows []models.Row) {
	m.rows = rows
	m.resort()
	m.relayout()
}

func (m *Model) resort() {
	m.sorted = m.sorter.Sorted(m.rows)
}

// relayout measures the table for the current terminal size and rebinds
// the tracker and navigator to the new geometry.
func (m *Model) relayout() {
	width := m.uiState.Width()
	cols := table.VisibleColumns(m.columns, width)
	m.layout = components.MeasureTable(cols, m.sorted, width)

	m.viewport.ContentWidth = m.layout.ContentWidth
	m.viewport.ClientWidth = m.layout.ClientWidth
	m.tracker.Attach(m.viewport)
	m.navigator.Attach(m.layout.Grid(len(m.sorted)))

	// header row is rendered above the data window
	m.listView.SetVisibleRows(m.uiState.Height() - chromeHeight - 1)
	m.listView.EnsureVisible(m.navigator.Focus().Row-1, len(m.sorted))
}

// ensureFocusVisible scrolls vertically and horizontally until the
// focused cell is on screen.
func (m *Model) ensureFocusVisible() tea.Cmd {
	focus := m.navigator.Focus()
	m.listView.EnsureVisible(focus.Row-1, len(m.sorted))

	start, end, ok := m.layout.MiddleSpan(focus.Col)
	if !ok {
		return nil
	}
	left := m.tracker.ScrollLeft()
	switch {
	case start < left:
		return m.tracker.ScrollTo(start)
	case end > left+m.layout.ClientWidth:
		return m.tracker.ScrollTo(end - m.layout.ClientWidth)
	}
	return nil
}

// sortLabel describes the sort state for the status bar.
func (m Model) sortLabel() string {
	field := m.sorter.Field()
	if field == "" {
		return "unsorted"
	}
	label := field
	for _, col := range m.columns {
		if col.Key == field && col.Label != "" {
			label = col.Label
			break
		}
	}
	return fmt.Sprintf("sorted by %s %s", strings.ToLower(label), m.sorter.Indicator(field))
}

// Rows returns the rows in display order.
func (m Model) Rows() []models.Row {
	return m.sorted
}

// Sorter exposes the sort state, for export of the current view.
func (m Model) Sorter() *table.SortController {
	return m.sorter
}
