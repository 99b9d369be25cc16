package table

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type headerCell struct {
	field    string
	sortable bool
}

// testGrid has a header row followed by data rows of the given lengths.
type testGrid struct {
	header []headerCell
	rows   []int
}

func (g testGrid) Rows() int { return 1 + len(g.rows) }

func (g testGrid) Cells(row int) int {
	if row == 0 {
		return len(g.header)
	}
	return g.rows[row-1]
}

func (g testGrid) HeaderField(col int) (string, bool) {
	return g.header[col].field, g.header[col].sortable
}

func newTestGrid() testGrid {
	return testGrid{
		header: []headerCell{{"boat_number", true}, {"crew_name", true}, {"notes", false}},
		rows:   []int{3, 2, 3},
	}
}

func press(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg(tea.Key{Code: code})
}

func newAttachedNavigator() (*Navigator, *SortController) {
	sorter := NewSortController()
	nav := NewNavigator(sorter, DefaultKeyMap())
	nav.Attach(newTestGrid())
	return nav, sorter
}

func TestNavigator_ArrowMoves(t *testing.T) {
	nav, _ := newAttachedNavigator()

	handled, _ := nav.HandleKey(press(tea.KeyRight))
	assert.True(t, handled)
	assert.Equal(t, Position{Row: 0, Col: 1}, nav.Focus())

	handled, _ = nav.HandleKey(press(tea.KeyDown))
	assert.True(t, handled)
	assert.Equal(t, Position{Row: 1, Col: 1}, nav.Focus())

	handled, _ = nav.HandleKey(press(tea.KeyLeft))
	assert.True(t, handled)
	assert.Equal(t, Position{Row: 1, Col: 0}, nav.Focus())

	handled, _ = nav.HandleKey(press(tea.KeyUp))
	assert.True(t, handled)
	assert.Equal(t, Position{Row: 0, Col: 0}, nav.Focus())
}

func TestNavigator_LeftOnFirstCellIsNoop(t *testing.T) {
	nav, _ := newAttachedNavigator()
	require.True(t, nav.SetFocus(Position{Row: 2, Col: 0}))

	handled, cmd := nav.HandleKey(press(tea.KeyLeft))
	assert.False(t, handled)
	assert.Nil(t, cmd)
	assert.Equal(t, Position{Row: 2, Col: 0}, nav.Focus())
}

func TestNavigator_GridEdges(t *testing.T) {
	nav, _ := newAttachedNavigator()

	handled, _ := nav.HandleKey(press(tea.KeyUp))
	assert.False(t, handled)

	require.True(t, nav.SetFocus(Position{Row: 3, Col: 2}))
	handled, _ = nav.HandleKey(press(tea.KeyDown))
	assert.False(t, handled)
	handled, _ = nav.HandleKey(press(tea.KeyRight))
	assert.False(t, handled)
	assert.Equal(t, Position{Row: 3, Col: 2}, nav.Focus())
}

func TestNavigator_UnevenRows(t *testing.T) {
	nav, _ := newAttachedNavigator()
	require.True(t, nav.SetFocus(Position{Row: 1, Col: 2}))

	// Row 2 only has two cells, so moving down from index 2 has no target.
	handled, _ := nav.HandleKey(press(tea.KeyDown))
	assert.False(t, handled)
	assert.Equal(t, Position{Row: 1, Col: 2}, nav.Focus())

	require.True(t, nav.SetFocus(Position{Row: 1, Col: 1}))
	handled, _ = nav.HandleKey(press(tea.KeyDown))
	assert.True(t, handled)
	assert.Equal(t, Position{Row: 2, Col: 1}, nav.Focus())
}

func TestNavigator_ActivateSortableHeader(t *testing.T) {
	nav, sorter := newAttachedNavigator()
	require.True(t, nav.SetFocus(Position{Row: 0, Col: 1}))

	handled, cmd := nav.HandleKey(press(tea.KeyEnter))
	require.True(t, handled)
	require.NotNil(t, cmd)
	assert.Equal(t, SortMsg{Field: "crew_name", Direction: Asc}, cmd())

	handled, cmd = nav.HandleKey(tea.KeyPressMsg(tea.Key{Code: tea.KeySpace, Text: " "}))
	require.True(t, handled)
	assert.Equal(t, SortMsg{Field: "crew_name", Direction: Desc}, cmd())
	assert.Equal(t, Desc, sorter.Direction())
}

func TestNavigator_ActivateIgnoredOutsideSortableHeader(t *testing.T) {
	nav, sorter := newAttachedNavigator()

	require.True(t, nav.SetFocus(Position{Row: 0, Col: 2}))
	handled, cmd := nav.HandleKey(press(tea.KeyEnter))
	assert.False(t, handled)
	assert.Nil(t, cmd)

	require.True(t, nav.SetFocus(Position{Row: 1, Col: 0}))
	handled, _ = nav.HandleKey(press(tea.KeyEnter))
	assert.False(t, handled)
	assert.Equal(t, "", sorter.Field())
}

func TestNavigator_DetachIgnoresKeys(t *testing.T) {
	nav, sorter := newAttachedNavigator()
	nav.Detach()

	handled, cmd := nav.HandleKey(press(tea.KeyEnter))
	assert.False(t, handled)
	assert.Nil(t, cmd)
	handled, _ = nav.HandleKey(press(tea.KeyRight))
	assert.False(t, handled)

	assert.Equal(t, Position{}, nav.Focus())
	assert.Equal(t, "", sorter.Field())
	assert.False(t, nav.Attached())
}

func TestNavigator_ClampAfterShrink(t *testing.T) {
	nav, _ := newAttachedNavigator()
	require.True(t, nav.SetFocus(Position{Row: 3, Col: 2}))

	nav.Attach(testGrid{header: newTestGrid().header, rows: []int{1}})
	assert.Equal(t, Position{Row: 1, Col: 0}, nav.Focus())
}

func TestNavigator_SetFocusRejectsMissingCell(t *testing.T) {
	nav, _ := newAttachedNavigator()
	assert.False(t, nav.SetFocus(Position{Row: 2, Col: 2}))
	assert.False(t, nav.SetFocus(Position{Row: -1, Col: 0}))
	assert.Equal(t, Position{}, nav.Focus())
}
