package registration

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/regatta/internal/cli"
	"github.com/thenoetrevino/regatta/internal/database"
)

// SeedCmd returns the seed subcommand
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo registrations into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cliInstance, err := cli.GetCLIFromContext(ctx)
			if err != nil {
				return err
			}

			unlock, err := cliInstance.AcquireWriteLock()
			if err != nil {
				return err
			}
			defer unlock()

			n, err := database.SeedDemo(ctx, cliInstance.Store)
			if err != nil {
				return fmt.Errorf("failed to seed registrations: %w", err)
			}

			styles := cli.NewStyles(cliInstance.Config.ColorScheme)
			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), styles.Subtle.Render("Database already holds registrations, nothing seeded"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render(fmt.Sprintf("Seeded %d registrations", n)))
			return nil
		},
	}
}
