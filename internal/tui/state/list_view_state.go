package state

// ListViewState tracks the vertical window over the table's data rows.
// Horizontal scrolling belongs to the table's ScrollTracker.
type ListViewState struct {
	// scrollOffset is the index of the first visible data row
	scrollOffset int

	// visibleRows is how many data rows fit below the header
	visibleRows int
}

// NewListViewState creates a new ListViewState with default values.
func NewListViewState() *ListViewState {
	return &ListViewState{}
}

// ScrollOffset returns the current scroll offset.
func (s *ListViewState) ScrollOffset() int {
	return s.scrollOffset
}

// VisibleRows returns how many data rows fit on screen.
func (s *ListViewState) VisibleRows() int {
	return s.visibleRows
}

// SetVisibleRows updates the row capacity after a resize.
func (s *ListViewState) SetVisibleRows(n int) {
	s.visibleRows = max(n, 1)
}

// EnsureVisible moves the window so that data row idx is on screen.
//
// Parameters:
//   - idx: the data row index (0-based, header excluded), -1 for the header
//   - total: the number of data rows
func (s *ListViewState) EnsureVisible(idx, total int) {
	if idx >= 0 {
		if idx < s.scrollOffset {
			s.scrollOffset = idx
		}
		if s.visibleRows > 0 && idx >= s.scrollOffset+s.visibleRows {
			s.scrollOffset = idx - s.visibleRows + 1
		}
	}

	// Clamp after data or size changes
	maxOffset := max(total-s.visibleRows, 0)
	s.scrollOffset = max(min(s.scrollOffset, maxOffset), 0)
}

// ResetSelection resets the scroll offset to zero.
func (s *ListViewState) ResetSelection() {
	s.scrollOffset = 0
}
