package registration

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/regatta/internal/cli"
	"github.com/thenoetrevino/regatta/internal/export"
)

const exportTitle = "Course des Impressionnistes registrations"

// ExportCmd returns the export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the registrations to HTML or XLSX",
		Long: `Write the registrations, sorted like the table, to a file.

Examples:
  regatta export --format html --out registrations.html
  regatta export --format xlsx --out registrations.xlsx --sort boat_number
`,
		RunE: runExport,
	}

	cmd.Flags().String("format", string(export.FormatHTML), "Output format (html, xlsx)")
	cmd.Flags().String("out", "", "Output file (required)")
	cmd.Flags().String("sort", "", "Column key to sort by")
	cmd.Flags().Bool("desc", false, "Sort descending")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	formatName, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")
	sortField, _ := cmd.Flags().GetString("sort")
	desc, _ := cmd.Flags().GetBool("desc")

	format, err := export.ParseFormat(formatName)
	if err != nil {
		return cli.WithExitCode(cli.ExitUsage, err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return err
	}

	boats, err := cliInstance.Store.ListBoats(ctx)
	if err != nil {
		return err
	}

	cols := cliInstance.Columns()
	rows, sorter, err := cli.SortedRows(boats, cols, sortField, desc)
	if err != nil {
		if errors.Is(err, cli.ErrUnknownSortField) {
			return cli.WithExitCode(cli.ExitUsage, err)
		}
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}

	sheet := export.Sheet{
		Title:     exportTitle,
		Columns:   cols,
		Rows:      rows,
		SortField: sorter.Field(),
		Direction: sorter.Direction(),
	}
	if err := export.Write(f, format, sheet); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to export %s: %w", format, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", outPath, err)
	}

	slog.Info("registrations exported", "format", format, "path", outPath, "rows", len(rows))
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d registrations to %s\n", len(rows), outPath)
	return nil
}
