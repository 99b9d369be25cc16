// Package registration implements the list, register, seed and export
// commands.
package registration

import (
	"errors"
	"fmt"
	"log/slog"

	"charm.land/lipgloss/v2"
	ltable "charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/regatta/internal/cli"
	"github.com/thenoetrevino/regatta/internal/models"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the registrations",
		Long: `Print every registration as a table.

Examples:
  # Registration order
  regatta list

  # Sorted by boat number, race order
  regatta list --sort boat_number

  # Latest registrations first, as JSON
  regatta list --sort registered_at --desc --json
`,
		RunE: runList,
	}

	cmd.Flags().String("sort", "", "Column key to sort by")
	cmd.Flags().Bool("desc", false, "Sort descending")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	sortField, _ := cmd.Flags().GetString("sort")
	desc, _ := cmd.Flags().GetBool("desc")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	boats, err := cliInstance.Store.ListBoats(ctx)
	if err != nil {
		if fmtErr := formatter.Error("LIST_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	cols := cliInstance.Columns()
	rows, _, err := cli.SortedRows(boats, cols, sortField, desc)
	if err != nil {
		if errors.Is(err, cli.ErrUnknownSortField) {
			if fmtErr := formatter.ErrorWithSuggestion("INVALID_SORT", err.Error(),
				"Use one of the column keys, e.g. boat_number or crew_name"); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			return cli.WithExitCode(cli.ExitUsage, err)
		}
		return err
	}

	out := cmd.OutOrStdout()

	if quietMode {
		for _, row := range rows {
			fmt.Fprintln(out, row.Get(models.KeyID).Display())
		}
		return nil
	}

	if jsonOutput {
		list := make([]map[string]any, len(rows))
		for i, row := range rows {
			entry := make(map[string]any, len(cols))
			for _, col := range cols {
				entry[col.Key] = row.Get(col.Key).Interface()
			}
			entry[models.KeyID] = row.Get(models.KeyID).Interface()
			list[i] = entry
		}
		return formatter.JSONEnvelope("registrations", list)
	}

	if len(rows) == 0 {
		fmt.Fprintln(out, "No registrations yet. Add one with: regatta register")
		return nil
	}

	fmt.Fprintln(out, renderTable(cols, rows, cli.NewStyles(cliInstance.Config.ColorScheme)))
	return nil
}

// renderTable lays rows out with lipgloss' table renderer
func renderTable(cols []models.Column, rows []models.Row, styles cli.Styles) string {
	headers := make([]string, len(cols))
	for i, col := range cols {
		headers[i] = col.Label
	}

	cells := make([][]string, len(rows))
	for r, row := range rows {
		cells[r] = make([]string, len(cols))
		for c, col := range cols {
			cells[r][c] = row.Get(col.Key).Display()
		}
	}

	return ltable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Border).
		Headers(headers...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return styles.Header
			}
			v := rows[row].Get(cols[col].Key)
			if v.Kind() == models.KindBool {
				if v.Flag() {
					return styles.Paid
				}
				return styles.Unpaid
			}
			return styles.Cell
		}).
		String()
}
