package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/thenoetrevino/regatta/internal/converters"
	"github.com/thenoetrevino/regatta/internal/models"
	"github.com/thenoetrevino/regatta/internal/table"
)

// ErrUnknownSortField is returned for a --sort value that is not a
// sortable column.
var ErrUnknownSortField = errors.New("unknown sort field")

// Columns returns the configured columns, or the built-in layout.
func (c *CLI) Columns() []models.Column {
	if c.Config != nil && len(c.Config.Table.Columns) > 0 {
		return table.NormalizeColumns(c.Config.Table.Columns, nil)
	}
	return converters.DefaultBoatColumns()
}

// SortedRows converts boats to rows ordered by field. An empty field keeps
// registration order. desc sorts by the same field a second time, which
// flips the direction.
func SortedRows(boats []*models.Boat, cols []models.Column, field string, desc bool) ([]models.Row, *table.SortController, error) {
	sorter := table.NewSortController()
	rows := converters.BoatsToRows(boats)
	if field == "" {
		return rows, sorter, nil
	}

	if !slices.ContainsFunc(cols, func(col models.Column) bool {
		return col.Key == field && col.Sortable
	}) {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownSortField, field)
	}

	sorter.SortBy(field)
	if desc {
		sorter.SortBy(field)
	}
	return sorter.Sorted(rows), sorter, nil
}
