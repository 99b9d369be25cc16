package table

import (
	"slices"

	"github.com/thenoetrevino/regatta/internal/models"
)

// SortController holds the sort state of one table.
// The zero value is unsorted and ascending.
type SortController struct {
	field     string
	direction Direction
}

// NewSortController creates an unsorted controller.
func NewSortController() *SortController {
	return &SortController{direction: Asc}
}

// Field returns the current sort field ("" when unsorted).
func (s *SortController) Field() string {
	return s.field
}

// Direction returns the current sort direction.
func (s *SortController) Direction() Direction {
	if s.direction == "" {
		return Asc
	}
	return s.direction
}

// SortBy toggles the direction when field is already the sort field,
// otherwise it switches to field ascending.
func (s *SortController) SortBy(field string) {
	if field == s.field {
		s.direction = s.Direction().Flip()
		return
	}
	s.field = field
	s.direction = Asc
}

// Reset clears the sort field.
func (s *SortController) Reset() {
	s.field = ""
	s.direction = Asc
}

// IsSortedBy reports whether field is the current sort field.
func (s *SortController) IsSortedBy(field string) bool {
	return field != "" && s.field == field
}

// Indicator returns ▲ or ▼ for the sorted field and "" for every other one.
func (s *SortController) Indicator(field string) string {
	if !s.IsSortedBy(field) {
		return ""
	}
	if s.Direction() == Asc {
		return "▲"
	}
	return "▼"
}

// Sorted returns rows ordered by the current state. The input slice is
// never modified; a nil input yields an empty slice and an empty sort
// field returns rows as given.
func (s *SortController) Sorted(rows []models.Row) []models.Row {
	if rows == nil {
		return []models.Row{}
	}
	if s.field == "" {
		return rows
	}

	field, dir := s.field, s.Direction()
	compare := CompareValues
	if field == BoatNumberField {
		compare = compareBoatCells
	}

	sorted := slices.Clone(rows)
	slices.SortStableFunc(sorted, func(a, b models.Row) int {
		return compare(a.Get(field), b.Get(field), dir)
	})
	return sorted
}
