// Package export writes the registration table, in its current sort
// order, to shareable file formats.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/thenoetrevino/regatta/internal/models"
	"github.com/thenoetrevino/regatta/internal/table"
)

// Format is an export file format.
type Format string

const (
	FormatHTML Format = "html"
	FormatXLSX Format = "xlsx"
)

// Formats lists the supported formats.
var Formats = []Format{FormatHTML, FormatXLSX}

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", models.ErrUnknownExportFormat, s)
}

// Sheet is one table to export. Rows must already be sorted.
type Sheet struct {
	Title     string
	Columns   []models.Column
	Rows      []models.Row
	SortField string
	Direction table.Direction
}

// Write renders sheet to w in the given format.
func Write(w io.Writer, format Format, sheet Sheet) error {
	switch format {
	case FormatHTML:
		renderer, err := NewHTMLRenderer()
		if err != nil {
			return err
		}
		return renderer.Render(w, sheet)
	case FormatXLSX:
		return WriteXLSX(w, sheet)
	default:
		return fmt.Errorf("%w: %q", models.ErrUnknownExportFormat, format)
	}
}

// sortLabel names the sorted column and its direction, or "".
func (s Sheet) sortLabel() string {
	if s.SortField == "" {
		return ""
	}
	label := s.SortField
	for _, col := range s.Columns {
		if col.Key == s.SortField && col.Label != "" {
			label = col.Label
		}
	}
	if s.Direction == table.Desc {
		return label + " (descending)"
	}
	return label + " (ascending)"
}
