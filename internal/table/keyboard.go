package table

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// Grid is the shape of a rendered table as seen by the Navigator.
// Row 0 is the header row; rows may have different lengths.
type Grid interface {
	Rows() int
	Cells(row int) int
	HeaderField(col int) (field string, sortable bool)
}

// Position addresses a cell by row and sibling index.
type Position struct {
	Row int
	Col int
}

// SortMsg is emitted after a header activation changed the sort state.
type SortMsg struct {
	Field     string
	Direction Direction
}

// KeyMap holds the bindings understood by the Navigator.
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Activate key.Binding
}

// DefaultKeyMap binds the arrow keys, enter and space.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "prev cell")),
		Right:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next cell")),
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "row above")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "row below")),
		Activate: key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("enter/space", "sort column")),
	}
}

// Navigator moves a cell focus across a Grid and sorts on header activation.
type Navigator struct {
	sorter *SortController
	keys   KeyMap
	grid   Grid
	focus  Position
}

// NewNavigator creates a detached navigator that sorts through sorter.
func NewNavigator(sorter *SortController, keys KeyMap) *Navigator {
	return &Navigator{sorter: sorter, keys: keys}
}

// Attach starts handling keys for grid.
func (n *Navigator) Attach(grid Grid) {
	n.grid = grid
	n.Clamp()
}

// Detach stops handling keys. The focus is kept for a later Attach.
func (n *Navigator) Detach() {
	n.grid = nil
}

// Attached reports whether a grid is bound.
func (n *Navigator) Attached() bool {
	return n.grid != nil
}

// Focus returns the focused cell.
func (n *Navigator) Focus() Position {
	return n.focus
}

// SetFocus focuses p if it addresses an existing cell.
func (n *Navigator) SetFocus(p Position) bool {
	if !n.exists(p) {
		return false
	}
	n.focus = p
	return true
}

// Clamp pulls the focus back inside the grid after its shape changed.
func (n *Navigator) Clamp() {
	if n.grid == nil || n.grid.Rows() == 0 {
		n.focus = Position{}
		return
	}
	n.focus.Row = max(min(n.focus.Row, n.grid.Rows()-1), 0)
	n.focus.Col = max(min(n.focus.Col, n.grid.Cells(n.focus.Row)-1), 0)
}

// HandleKey processes one key press. handled is true when the key was
// consumed and must not reach any other handler.
func (n *Navigator) HandleKey(msg tea.KeyPressMsg) (handled bool, cmd tea.Cmd) {
	if n.grid == nil {
		return false, nil
	}

	switch {
	case key.Matches(msg, n.keys.Activate):
		return n.activate()
	case key.Matches(msg, n.keys.Left):
		return n.move(0, -1), nil
	case key.Matches(msg, n.keys.Right):
		return n.move(0, 1), nil
	case key.Matches(msg, n.keys.Up):
		return n.move(-1, 0), nil
	case key.Matches(msg, n.keys.Down):
		return n.move(1, 0), nil
	}
	return false, nil
}

func (n *Navigator) activate() (bool, tea.Cmd) {
	if n.focus.Row != 0 {
		return false, nil
	}
	field, sortable := n.grid.HeaderField(n.focus.Col)
	if !sortable || field == "" {
		return false, nil
	}

	n.sorter.SortBy(field)
	msg := SortMsg{Field: n.sorter.Field(), Direction: n.sorter.Direction()}
	return true, func() tea.Msg { return msg }
}

func (n *Navigator) move(dRow, dCol int) bool {
	next := Position{Row: n.focus.Row + dRow, Col: n.focus.Col + dCol}
	if !n.exists(next) {
		return false
	}
	n.focus = next
	return true
}

func (n *Navigator) exists(p Position) bool {
	if n.grid == nil || p.Row < 0 || p.Col < 0 || p.Row >= n.grid.Rows() {
		return false
	}
	return p.Col < n.grid.Cells(p.Row)
}
