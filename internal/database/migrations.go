package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS boats (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			boat_number TEXT UNIQUE,
			crew_name TEXT NOT NULL,
			club TEXT NOT NULL,
			event TEXT NOT NULL,
			seats INTEGER NOT NULL DEFAULT 1,
			paid BOOLEAN NOT NULL DEFAULT 0,
			fee REAL,
			registered_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_boats_event
		ON boats(event, boat_number)
	`)
	return err
}
