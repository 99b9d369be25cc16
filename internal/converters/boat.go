// Package converters turns registration records into table rows.
//
// Nullable fields (boat number, fee) become models.Null cells so that the
// table comparators can place them consistently:
//
//	rows := converters.BoatsToRows(boats)
//	cols := converters.DefaultBoatColumns()
package converters

import (
	"github.com/thenoetrevino/regatta/internal/models"
)

// registeredAtLayout is sortable as a plain string
const registeredAtLayout = "2006-01-02 15:04"

// BoatToRow converts one registration into a row keyed by the
// models.Key* column keys.
func BoatToRow(b *models.Boat) models.Row {
	if b == nil {
		return models.Row{}
	}

	row := models.Row{
		models.KeyID:         models.Int(b.ID),
		models.KeyBoatNumber: models.StringPtr(b.BoatNumber),
		models.KeyCrewName:   models.String(b.CrewName),
		models.KeyClub:       models.String(b.Club),
		models.KeyEvent:      models.String(b.Event),
		models.KeySeats:      models.Int(b.Seats),
		models.KeyPaid:       models.Bool(b.Paid),
		models.KeyFee:        models.NumberPtr(b.Fee),
	}
	if !b.RegisteredAt.IsZero() {
		row[models.KeyRegisteredAt] = models.String(b.RegisteredAt.Format(registeredAtLayout))
	}
	return row
}

// BoatsToRows converts registrations in order.
func BoatsToRows(boats []*models.Boat) []models.Row {
	rows := make([]models.Row, 0, len(boats))
	for _, b := range boats {
		rows = append(rows, BoatToRow(b))
	}
	return rows
}

// DefaultBoatColumns is the layout used when the config declares none.
func DefaultBoatColumns() []models.Column {
	return []models.Column{
		{Key: models.KeyBoatNumber, Label: "Boat", Sortable: true, Sticky: models.StickyLeft, Width: "8"},
		{Key: models.KeyCrewName, Label: "Crew", Sortable: true, MinWidth: "12"},
		{Key: models.KeyClub, Label: "Club", Sortable: true, MinWidth: "12"},
		{Key: models.KeyEvent, Label: "Event", Sortable: true, Responsive: models.ResponsiveSmall},
		{Key: models.KeySeats, Label: "Seats", Sortable: true, Responsive: models.ResponsiveMedium},
		{Key: models.KeyRegisteredAt, Label: "Registered", Sortable: true, Responsive: models.ResponsiveLarge},
		{Key: models.KeyFee, Label: "Fee (€)", Sortable: true, Responsive: models.ResponsiveMedium},
		{Key: models.KeyPaid, Label: "Paid", Sortable: true, Sticky: models.StickyRight},
	}
}
