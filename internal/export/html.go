package export

import (
	"embed"
	"io"
	"time"

	"github.com/google/safehtml/template"
	"github.com/thenoetrevino/regatta/internal/models"
	"github.com/thenoetrevino/regatta/internal/table"
)

//go:embed templates/*
var templateFS embed.FS

// HTMLRenderer renders a Sheet as a standalone HTML page.
type HTMLRenderer struct {
	tmpl *template.Template
	now  func() time.Time
}

type headerCell struct {
	Label     string
	Indicator string
	AriaSort  string
}

type bodyCell struct {
	Text  string
	Class string
}

type pageViewModel struct {
	Title     string
	SortLabel string
	Generated string
	Headers   []headerCell
	Rows      [][]bodyCell
}

// NewHTMLRenderer parses the embedded page template.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)

	tmpl, err := template.New("registrations.html").ParseFS(trustedFS, "templates/registrations.html")
	if err != nil {
		return nil, err
	}
	return &HTMLRenderer{tmpl: tmpl, now: time.Now}, nil
}

// Render writes sheet to w. All values are escaped by the template.
func (r *HTMLRenderer) Render(w io.Writer, sheet Sheet) error {
	return r.tmpl.Execute(w, r.viewModel(sheet))
}

func (r *HTMLRenderer) viewModel(sheet Sheet) pageViewModel {
	vm := pageViewModel{
		Title:     sheet.Title,
		SortLabel: sheet.sortLabel(),
		Generated: r.now().Format("2006-01-02 15:04"),
	}

	for _, col := range sheet.Columns {
		h := headerCell{Label: col.Label, AriaSort: "none"}
		if col.Key == sheet.SortField {
			if sheet.Direction == table.Desc {
				h.Indicator, h.AriaSort = "▼", "descending"
			} else {
				h.Indicator, h.AriaSort = "▲", "ascending"
			}
		}
		vm.Headers = append(vm.Headers, h)
	}

	for _, row := range sheet.Rows {
		cells := make([]bodyCell, 0, len(sheet.Columns))
		for _, col := range sheet.Columns {
			cells = append(cells, htmlCell(row.Get(col.Key)))
		}
		vm.Rows = append(vm.Rows, cells)
	}
	return vm
}

func htmlCell(v models.Value) bodyCell {
	switch v.Kind() {
	case models.KindNull:
		return bodyCell{Text: "–", Class: "null"}
	case models.KindNumber:
		return bodyCell{Text: v.Display(), Class: "number"}
	case models.KindBool:
		if v.Flag() {
			return bodyCell{Text: v.Display(), Class: "paid"}
		}
		return bodyCell{Text: v.Display(), Class: "unpaid"}
	default:
		return bodyCell{Text: v.Display(), Class: "text"}
	}
}
