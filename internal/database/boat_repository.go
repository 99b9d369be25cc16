package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/thenoetrevino/regatta/internal/models"
)

// BoatRepository stores registrations in SQLite.
type BoatRepository struct {
	db *sql.DB
}

// NewBoatRepository wraps db.
func NewBoatRepository(db *sql.DB) *BoatRepository {
	return &BoatRepository{db: db}
}

var _ BoatStore = (*BoatRepository)(nil)

const boatColumns = `id, boat_number, crew_name, club, event, seats, paid, fee, registered_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBoat(row rowScanner) (*models.Boat, error) {
	var (
		boat         models.Boat
		boatNumber   sql.NullString
		fee          sql.NullFloat64
		registeredAt sql.NullTime
	)
	if err := row.Scan(&boat.ID, &boatNumber, &boat.CrewName, &boat.Club, &boat.Event,
		&boat.Seats, &boat.Paid, &fee, &registeredAt); err != nil {
		return nil, err
	}
	if boatNumber.Valid {
		boat.BoatNumber = &boatNumber.String
	}
	if fee.Valid {
		boat.Fee = &fee.Float64
	}
	if registeredAt.Valid {
		boat.RegisteredAt = registeredAt.Time
	}
	return &boat, nil
}

// ListBoats returns every registration in insertion order.
func (r *BoatRepository) ListBoats(ctx context.Context) ([]*models.Boat, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+boatColumns+` FROM boats ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list boats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	boats := []*models.Boat{}
	for rows.Next() {
		boat, err := scanBoat(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan boat: %w", err)
		}
		boats = append(boats, boat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate boats: %w", err)
	}
	return boats, nil
}

// GetBoat returns one registration or models.ErrBoatNotFound.
func (r *BoatRepository) GetBoat(ctx context.Context, id int) (*models.Boat, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+boatColumns+` FROM boats WHERE id = ?`, id)
	boat, err := scanBoat(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", models.ErrBoatNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get boat %d: %w", id, err)
	}
	return boat, nil
}

// CreateBoat inserts boat and returns the stored registration.
func (r *BoatRepository) CreateBoat(ctx context.Context, boat *models.Boat) (*models.Boat, error) {
	registeredAt := boat.RegisteredAt
	if registeredAt.IsZero() {
		registeredAt = time.Now().UTC()
	}

	var id int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO boats (boat_number, crew_name, club, event, seats, paid, fee, registered_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			nullString(boat.BoatNumber), boat.CrewName, boat.Club, boat.Event,
			boat.Seats, boat.Paid, nullFloat(boat.Fee), registeredAt)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create boat: %w", err)
	}
	return r.GetBoat(ctx, int(id))
}

// CountBoats returns the number of registrations.
func (r *BoatRepository) CountBoats(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM boats`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count boats: %w", err)
	}
	return n, nil
}
