// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/thenoetrevino/regatta/internal/models"
)

// BoatStore is the registration data needed by the TUI and the CLI.
type BoatStore interface {
	ListBoats(ctx context.Context) ([]*models.Boat, error)
	GetBoat(ctx context.Context, id int) (*models.Boat, error)
	CreateBoat(ctx context.Context, boat *models.Boat) (*models.Boat, error)
	CountBoats(ctx context.Context) (int, error)
}
