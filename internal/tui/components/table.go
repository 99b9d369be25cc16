package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/regatta/internal/models"
	"github.com/thenoetrevino/regatta/internal/table"
	"github.com/thenoetrevino/regatta/internal/tui/theme"
)

// TableLayout is the measured geometry of a table for one terminal width.
//
// Columns are in display order: left-pinned, scrolling, right-pinned.
// Only the scrolling section moves horizontally; its full width is
// ContentWidth and the part that fits on screen is ClientWidth.
type TableLayout struct {
	Columns      []models.Column
	Widths       []int
	LeftCount    int
	RightCount   int
	LeftWidth    int
	RightWidth   int
	ContentWidth int
	ClientWidth  int
}

// MeasureTable computes column widths from labels and cell contents.
// A non-positive width means the terminal size is not known yet and the
// whole scrolling section is treated as visible.
func MeasureTable(cols []models.Column, rows []models.Row, width int) TableLayout {
	left, middle, right := table.SplitSticky(cols)

	l := TableLayout{
		LeftCount:  len(left),
		RightCount: len(right),
	}
	l.Columns = append(append(append(l.Columns, left...), middle...), right...)

	for i, col := range l.Columns {
		w := columnWidth(col, rows)
		l.Widths = append(l.Widths, w)
		switch {
		case i < l.LeftCount:
			l.LeftWidth += w
		case i >= len(l.Columns)-l.RightCount:
			l.RightWidth += w
		default:
			l.ContentWidth += w
		}
	}

	if width <= 0 {
		l.ClientWidth = l.ContentWidth
	} else {
		l.ClientWidth = max(width-l.LeftWidth-l.RightWidth, 0)
	}
	return l
}

func columnWidth(col models.Column, rows []models.Row) int {
	if w, ok := models.ParseCells(col.Width); ok {
		return w + cellPadding
	}

	natural := lipgloss.Width(col.Label) + indicatorSpace
	for _, row := range rows {
		natural = max(natural, lipgloss.Width(row.Get(col.Key).Display()))
	}
	natural = min(natural, maxNaturalWidth)

	if mw, ok := models.ParseCells(col.MinWidth); ok {
		natural = max(natural, mw)
	}
	return natural + cellPadding
}

// IsSticky reports whether display column i is pinned.
func (l TableLayout) IsSticky(i int) bool {
	return i < l.LeftCount || i >= len(l.Columns)-l.RightCount
}

// MiddleSpan returns the [start, end) offset of display column i inside
// the scrolling section. ok is false for pinned or unknown columns.
func (l TableLayout) MiddleSpan(i int) (start, end int, ok bool) {
	if i < 0 || i >= len(l.Columns) || l.IsSticky(i) {
		return 0, 0, false
	}
	for j := l.LeftCount; j < i; j++ {
		start += l.Widths[j]
	}
	return start, start + l.Widths[i], true
}

// Grid exposes the layout to the keyboard navigator. Every data row has
// one cell per displayed column.
func (l TableLayout) Grid(rowCount int) table.Grid {
	return layoutGrid{layout: l, rows: rowCount}
}

type layoutGrid struct {
	layout TableLayout
	rows   int
}

func (g layoutGrid) Rows() int { return 1 + g.rows }

func (g layoutGrid) Cells(int) int { return len(g.layout.Columns) }

func (g layoutGrid) HeaderField(col int) (string, bool) {
	if col < 0 || col >= len(g.layout.Columns) {
		return "", false
	}
	c := g.layout.Columns[col]
	return c.Key, c.Sortable
}

// TableProps is everything RenderTable needs for one frame.
type TableProps struct {
	Layout      TableLayout
	Rows        []models.Row // already sorted
	Indicator   func(field string) string
	Focus       table.Position
	ShowFocus   bool
	ScrollLeft  int
	RowOffset   int
	VisibleRows int // 0 renders every row
	Theme       *theme.Theme
}

// RenderTable renders the header and the visible window of data rows.
func RenderTable(props TableProps) string {
	lines := []string{renderLine(props, 0)}

	if len(props.Rows) == 0 {
		lines = append(lines, props.Theme.Subtle.Render(emptyTableNotice))
		return strings.Join(lines, "\n")
	}

	start := max(min(props.RowOffset, len(props.Rows)-1), 0)
	end := len(props.Rows)
	if props.VisibleRows > 0 {
		end = min(start+props.VisibleRows, end)
	}
	for i := start; i < end; i++ {
		lines = append(lines, renderLine(props, i+1))
	}
	return strings.Join(lines, "\n")
}

// renderLine renders grid row gridRow (0 is the header).
func renderLine(props TableProps, gridRow int) string {
	var left, middle, right strings.Builder
	l := props.Layout

	for i, col := range l.Columns {
		cell := renderCell(props, gridRow, i, col)
		switch {
		case i < l.LeftCount:
			left.WriteString(cell)
		case i >= len(l.Columns)-l.RightCount:
			right.WriteString(cell)
		default:
			middle.WriteString(cell)
		}
	}

	visible := middle.String()
	if l.ContentWidth > l.ClientWidth {
		visible = ansi.Cut(visible, props.ScrollLeft, props.ScrollLeft+l.ClientWidth)
	}
	if gap := l.ClientWidth - lipgloss.Width(visible); gap > 0 {
		visible += strings.Repeat(" ", gap)
	}

	return left.String() + visible + right.String()
}

func renderCell(props TableProps, gridRow, i int, col models.Column) string {
	th := props.Theme
	w := props.Layout.Widths[i]

	var (
		text  string
		style lipgloss.Style
	)
	if gridRow == 0 {
		text = col.Label
		style = th.Header
		if ind := indicator(props, col.Key); ind != "" {
			text += " " + ind
			style = th.SortedHeader
		}
	} else {
		value := props.Rows[gridRow-1].Get(col.Key)
		text = value.Display()

		switch {
		case props.Layout.IsSticky(i):
			style = th.StickyCell
		case gridRow%2 == 0:
			style = th.StripeCell
		default:
			style = th.Cell
		}
		if value.Kind() == models.KindBool {
			if value.Flag() {
				style = style.Foreground(th.Paid.GetForeground())
			} else {
				style = style.Foreground(th.Unpaid.GetForeground())
			}
		}
	}

	if props.ShowFocus && props.Focus == (table.Position{Row: gridRow, Col: i}) {
		style = th.Focus
	}

	text = ansi.Truncate(text, max(w-cellPadding, 0), "…")
	return style.Width(w).MaxWidth(w).Render(text)
}

func indicator(props TableProps, field string) string {
	if props.Indicator == nil {
		return ""
	}
	return props.Indicator(field)
}
