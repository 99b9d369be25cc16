package table

import (
	"log/slog"

	"github.com/thenoetrevino/regatta/internal/models"
)

// NormalizeColumns validates every descriptor, logs each problem and
// returns a copy with the offending optional attributes cleared.
// Columns missing a key or label are logged as errors but kept so the
// table still renders.
func NormalizeColumns(cols []models.Column, logger *slog.Logger) []models.Column {
	if logger == nil {
		logger = slog.Default()
	}

	out := make([]models.Column, 0, len(cols))
	for i, col := range cols {
		for _, err := range col.Validate() {
			if col.Key == "" || col.Label == "" {
				logger.Error("column descriptor", "index", i, "error", err)
			} else {
				logger.Warn("column descriptor", "index", i, "error", err)
			}
		}

		if !col.Sticky.Valid() {
			col.Sticky = models.StickyNone
		}
		if !col.Responsive.Valid() {
			col.Responsive = ""
		}
		if _, ok := models.ParseCells(col.Width); !ok {
			col.Width = ""
		}
		if _, ok := models.ParseCells(col.MinWidth); !ok {
			col.MinWidth = ""
		}
		out = append(out, col)
	}
	return out
}

// VisibleColumns drops responsive columns that do not fit termWidth.
// A non-positive width (size not known yet) shows everything.
func VisibleColumns(cols []models.Column, termWidth int) []models.Column {
	if termWidth <= 0 {
		return cols
	}
	out := make([]models.Column, 0, len(cols))
	for _, col := range cols {
		if termWidth >= col.Responsive.MinTerminalWidth() {
			out = append(out, col)
		}
	}
	return out
}

// SplitSticky partitions columns into left-pinned, scrolling and
// right-pinned groups, preserving declaration order inside each group.
func SplitSticky(cols []models.Column) (left, middle, right []models.Column) {
	for _, col := range cols {
		switch col.Sticky {
		case models.StickyLeft:
			left = append(left, col)
		case models.StickyRight:
			right = append(right, col)
		default:
			middle = append(middle, col)
		}
	}
	return left, middle, right
}
