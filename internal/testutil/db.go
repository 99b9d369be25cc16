package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/regatta/internal/database"
	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// SetupSeededStore returns a repository holding the demo registrations
func SetupSeededStore(t *testing.T) *database.BoatRepository {
	t.Helper()
	repo := database.NewBoatRepository(SetupTestDB(t))
	if _, err := database.SeedDemo(context.Background(), repo); err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}
	return repo
}
