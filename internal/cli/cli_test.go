package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/regatta/internal/config"
	"github.com/thenoetrevino/regatta/internal/models"
)

func TestContextRoundTrip(t *testing.T) {
	_, err := GetCLIFromContext(context.Background())
	assert.Error(t, err)

	c := NewCLIWithStore(nil, nil)
	got, err := GetCLIFromContext(WithCLI(context.Background(), c))
	require.NoError(t, err)
	assert.Same(t, c, got)
	assert.NotNil(t, got.Config, "default config is filled in")
	assert.NoError(t, got.Close())
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(errors.New("boom")))

	err := WithExitCode(ExitUsage, models.ErrUnknownExportFormat)
	assert.Equal(t, ExitUsage, ExitCode(err))
	assert.True(t, errors.Is(err, models.ErrUnknownExportFormat))

	wrapped := fmt.Errorf("export: %w", err)
	assert.Equal(t, ExitUsage, ExitCode(wrapped))

	assert.NoError(t, WithExitCode(ExitUsage, nil))
}

func TestOutputFormatter(t *testing.T) {
	var out, errOut bytes.Buffer

	f := &OutputFormatter{Out: &out, Err: &errOut}
	require.NoError(t, f.ErrorWithSuggestion("INVALID_SORT", "bad field", "use boat_number"))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Error: bad field")
	assert.Contains(t, errOut.String(), "Suggestion: use boat_number")

	out.Reset()
	f.JSON = true
	require.NoError(t, f.Error("LIST_ERROR", "disk gone"))
	assert.JSONEq(t, `{"success":false,"error":{"code":"LIST_ERROR","message":"disk gone"}}`, out.String())

	out.Reset()
	require.NoError(t, f.JSONEnvelope("count", 3))
	assert.JSONEq(t, `{"success":true,"count":3}`, out.String())
}

func strPtr(s string) *string { return &s }

func TestSortedRows(t *testing.T) {
	boats := []*models.Boat{
		{ID: 1, BoatNumber: strPtr("VM.1.1"), CrewName: "b"},
		{ID: 2, CrewName: "a"},
		{ID: 3, BoatNumber: strPtr("M.2.1"), CrewName: "c"},
	}
	c := NewCLIWithStore(nil, config.Default())
	cols := c.Columns()

	ids := func(rows []models.Row) []string {
		out := make([]string, len(rows))
		for i, r := range rows {
			out[i] = r.Get(models.KeyID).Display()
		}
		return out
	}

	rows, sorter, err := SortedRows(boats, cols, "", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, ids(rows))
	assert.Empty(t, sorter.Field())

	rows, _, err = SortedRows(boats, cols, models.KeyBoatNumber, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1", "2"}, ids(rows))

	rows, sorter, err = SortedRows(boats, cols, models.KeyBoatNumber, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1", "3"}, ids(rows))
	assert.Equal(t, "desc", string(sorter.Direction()))

	_, _, err = SortedRows(boats, cols, "colour", false)
	assert.True(t, errors.Is(err, ErrUnknownSortField))
}

func TestColumns_FromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Table.Columns = []models.Column{
		{Key: models.KeyCrewName, Label: "Crew", Sortable: true, Sticky: "top"},
	}

	cols := NewCLIWithStore(nil, cfg).Columns()
	require.Len(t, cols, 1)
	assert.Equal(t, models.StickyNone, cols[0].Sticky)
}

func TestAcquireWriteLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regatta.db")
	first := &CLI{dbPath: path}
	second := &CLI{dbPath: path}

	unlock, err := first.AcquireWriteLock()
	require.NoError(t, err)

	_, err = second.AcquireWriteLock()
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrDatabaseBusy)
	assert.Equal(t, ExitBusy, ExitCode(err))

	unlock()
	unlockAgain, err := second.AcquireWriteLock()
	require.NoError(t, err)
	unlockAgain()

	// In-memory stores skip the lock file
	noop, err := NewCLIWithStore(nil, nil).AcquireWriteLock()
	require.NoError(t, err)
	noop()
}
