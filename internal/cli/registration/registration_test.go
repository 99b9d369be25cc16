package registration

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/regatta/internal/cli"
	"github.com/thenoetrevino/regatta/internal/config"
	"github.com/thenoetrevino/regatta/internal/database"
	"github.com/thenoetrevino/regatta/internal/models"
	"github.com/thenoetrevino/regatta/internal/testutil"
)

func withCLI(cmd *cobra.Command, store database.BoatStore) *cobra.Command {
	c := cli.NewCLIWithStore(store, config.Default())
	cmd.SetContext(cli.WithCLI(context.Background(), c))
	return cmd
}

func TestList_JSONSortedByBoatNumber(t *testing.T) {
	store := testutil.SetupSeededStore(t)

	out, err := testutil.ExecuteCommand(t, withCLI(ListCmd(), store), "--sort", "boat_number", "--json")
	require.NoError(t, err)

	result := testutil.ParseJSON(t, out)
	assert.Equal(t, true, result["success"])

	list, ok := result["registrations"].([]any)
	require.True(t, ok)
	require.Len(t, list, 8)

	var numbers []any
	for _, entry := range list {
		numbers = append(numbers, entry.(map[string]any)[models.KeyBoatNumber])
	}
	assert.Equal(t, []any{"M.1.1", "M.1.5", "M.2.1", "SM.2.1", "SM.2.3", "VM.1.1", "VM.1.2", nil}, numbers)
}

func TestList_Descending(t *testing.T) {
	store := testutil.SetupSeededStore(t)

	out, err := testutil.ExecuteCommand(t, withCLI(ListCmd(), store), "--sort", "boat_number", "--desc", "--json")
	require.NoError(t, err)

	list := testutil.ParseJSON(t, out)["registrations"].([]any)
	assert.Nil(t, list[0].(map[string]any)[models.KeyBoatNumber], "null boat numbers first when descending")
	assert.Equal(t, "M.1.1", list[len(list)-1].(map[string]any)[models.KeyBoatNumber])
}

func TestList_Table(t *testing.T) {
	store := testutil.SetupSeededStore(t)

	out, err := testutil.ExecuteCommand(t, withCLI(ListCmd(), store), "--sort", "crew_name")
	require.NoError(t, err)

	assert.Contains(t, out, "Crew")
	assert.Contains(t, out, "Fee (€)")
	assert.Less(t, strings.Index(out, "Argenteuil Huit"), strings.Index(out, "Seine Quatre"))
}

func TestList_Quiet(t *testing.T) {
	store := testutil.SetupSeededStore(t)

	out, err := testutil.ExecuteCommand(t, withCLI(ListCmd(), store), "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n4\n5\n6\n7\n8\n", out)
}

func TestList_Empty(t *testing.T) {
	store := database.NewBoatRepository(testutil.SetupTestDB(t))

	out, err := testutil.ExecuteCommand(t, withCLI(ListCmd(), store))
	require.NoError(t, err)
	assert.Contains(t, out, "No registrations yet")
}

func TestList_UnknownSortField(t *testing.T) {
	store := testutil.SetupSeededStore(t)

	_, err := testutil.ExecuteCommand(t, withCLI(ListCmd(), store), "--sort", "color")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cli.ErrUnknownSortField))
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestList_WithoutCLI(t *testing.T) {
	cmd := ListCmd()
	cmd.SetContext(context.Background())

	_, err := testutil.ExecuteCommand(t, cmd)
	assert.Error(t, err)
}

func TestRegister_FromFlags(t *testing.T) {
	store := database.NewBoatRepository(testutil.SetupTestDB(t))

	out, err := testutil.ExecuteCommand(t, withCLI(RegisterCmd(), store),
		"--crew", "Les Canotiers", "--club", "Chatou Aviron", "--event", "SM",
		"--seats", "8", "--fee", "240", "--paid", "--boat-number", "SM.2.3", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	boat, err := store.GetBoat(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Les Canotiers", boat.CrewName)
	require.NotNil(t, boat.BoatNumber)
	assert.Equal(t, "SM.2.3", *boat.BoatNumber)
	assert.True(t, boat.Paid)
}

func TestRegister_InvalidBoatNumber(t *testing.T) {
	store := database.NewBoatRepository(testutil.SetupTestDB(t))

	_, err := testutil.ExecuteCommand(t, withCLI(RegisterCmd(), store),
		"--crew", "Nymphéas", "--club", "Giverny Aviron", "--boat-number", "VM-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrInvalidBoatNumber))
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))

	count, err := store.CountBoats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSeed(t *testing.T) {
	store := database.NewBoatRepository(testutil.SetupTestDB(t))

	out, err := testutil.ExecuteCommand(t, withCLI(SeedCmd(), store))
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded 8 registrations")

	out, err = testutil.ExecuteCommand(t, withCLI(SeedCmd(), store))
	require.NoError(t, err)
	assert.Contains(t, out, "nothing seeded")
}

func TestExport_HTML(t *testing.T) {
	store := testutil.SetupSeededStore(t)
	path := filepath.Join(t.TempDir(), "registrations.html")

	out, err := testutil.ExecuteCommand(t, withCLI(ExportCmd(), store),
		"--format", "html", "--out", path, "--sort", "boat_number")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 8 registrations")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, `aria-sort="ascending"`)
	assert.Less(t, strings.Index(html, "M.1.1"), strings.Index(html, "VM.1.2"))
}

func TestExport_XLSX(t *testing.T) {
	store := testutil.SetupSeededStore(t)
	path := filepath.Join(t.TempDir(), "registrations.xlsx")

	_, err := testutil.ExecuteCommand(t, withCLI(ExportCmd(), store), "--format", "xlsx", "--out", path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestExport_UnknownFormat(t *testing.T) {
	store := testutil.SetupSeededStore(t)
	path := filepath.Join(t.TempDir(), "registrations.pdf")

	_, err := testutil.ExecuteCommand(t, withCLI(ExportCmd(), store), "--format", "pdf", "--out", path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrUnknownExportFormat))
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
