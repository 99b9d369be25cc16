package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
)

// ============================================================================
// Transaction Tests
// ============================================================================

func insertCrew(tx *sql.Tx, crew string) error {
	_, err := tx.Exec(`INSERT INTO boats (crew_name, club, event, seats, paid, registered_at)
		VALUES (?, 'Chatou Aviron', 'M', 4, 0, CURRENT_TIMESTAMP)`, crew)
	return err
}

func countCrew(t *testing.T, db *sql.DB, crew string) int {
	t.Helper()
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM boats WHERE crew_name = ?", crew).Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	return count
}

func TestWithTx_Success_Commit(t *testing.T) {
	db := setupTestDB(t)

	err := withTx(context.Background(), db, func(tx *sql.Tx) error {
		return insertCrew(tx, "Les Canotiers")
	})
	if err != nil {
		t.Fatalf("Expected transaction to succeed, got error: %v", err)
	}

	if count := countCrew(t, db, "Les Canotiers"); count != 1 {
		t.Errorf("Expected 1 boat, got %d", count)
	}
}

func TestWithTx_Error_Rollback(t *testing.T) {
	db := setupTestDB(t)

	expectedErr := errors.New("intentional error")
	err := withTx(context.Background(), db, func(tx *sql.Tx) error {
		if err := insertCrew(tx, "Les Canotiers"); err != nil {
			return err
		}
		return expectedErr
	})

	if !errors.Is(err, expectedErr) {
		t.Fatalf("Expected error %v, got %v", expectedErr, err)
	}

	if count := countCrew(t, db, "Les Canotiers"); count != 0 {
		t.Errorf("Expected 0 boats (rollback), got %d", count)
	}
}

func TestWithTx_Error_BeginFails(t *testing.T) {
	db := setupTestDB(t)
	_ = db.Close()

	err := withTx(context.Background(), db, func(tx *sql.Tx) error {
		return nil
	})
	if err == nil {
		t.Fatal("Expected error when beginning transaction on closed DB, got nil")
	}
}

// ============================================================================
// Null Conversion Tests
// ============================================================================

func TestNullString(t *testing.T) {
	if got := nullString(nil); got.Valid {
		t.Errorf("nullString(nil) should be invalid, got %+v", got)
	}

	s := "SM.2.3"
	got := nullString(&s)
	if !got.Valid || got.String != s {
		t.Errorf("nullString(%q) = %+v", s, got)
	}
}

func TestNullFloat(t *testing.T) {
	if got := nullFloat(nil); got.Valid {
		t.Errorf("nullFloat(nil) should be invalid, got %+v", got)
	}

	f := 120.5
	got := nullFloat(&f)
	if !got.Valid || got.Float64 != f {
		t.Errorf("nullFloat(%v) = %+v", f, got)
	}
}
