// Package table holds the state behind an interactive data table: cell
// comparison, the sort controller, the horizontal scroll tracker and the
// keyboard navigator. Rendering lives in internal/tui/components.
package table

import (
	"cmp"
	"strings"

	"github.com/thenoetrevino/regatta/internal/models"
)

// Direction is the sort direction of a column.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Flip returns the opposite direction.
func (d Direction) Flip() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// CompareValues orders two cells and returns -1, 0 or 1.
//
// Null is the greatest value: last when ascending, first when descending.
// Numbers compare numerically, strings case-insensitively, false < true.
// Cells of different kinds are not treated as equal: they fall back to the
// kind rank (bool < number < string) so that a column with mixed content
// still sorts deterministically.
func CompareValues(a, b models.Value, dir Direction) int {
	return applyDirection(compareAsc(a, b), dir)
}

func compareAsc(a, b models.Value) int {
	switch {
	case a.IsNull() && b.IsNull():
		return 0
	case a.IsNull():
		return 1
	case b.IsNull():
		return -1
	}

	if a.Kind() != b.Kind() {
		return cmp.Compare(a.Kind(), b.Kind())
	}

	switch a.Kind() {
	case models.KindNumber:
		return cmp.Compare(a.Num(), b.Num())
	case models.KindString:
		return strings.Compare(strings.ToLower(a.Str()), strings.ToLower(b.Str()))
	case models.KindBool:
		return cmp.Compare(boolRank(a.Flag()), boolRank(b.Flag()))
	}
	return 0
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func applyDirection(c int, dir Direction) int {
	if dir == Desc {
		return -c
	}
	return c
}
