package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/regatta/internal/cli"
	"github.com/thenoetrevino/regatta/internal/cli/registration"
	"github.com/thenoetrevino/regatta/internal/cli/setup"
	"github.com/thenoetrevino/regatta/internal/launcher"
	"github.com/thenoetrevino/regatta/internal/logging"
)

// NewRootCmd builds the regatta command tree. Without a subcommand it
// opens the interactive table.
func NewRootCmd() *cobra.Command {
	var (
		dbPath string
		logger *slog.Logger
	)

	rootCmd := &cobra.Command{
		Use:   "regatta",
		Short: "Regatta - crew registrations in your terminal",
		Long: `Regatta browses the boat registrations of the Course des Impressionnistes.

Run without arguments for the interactive table: sort any column with
enter or space on its header, scroll sideways with [ and ] or the mouse
wheel, and press ? for every key.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = logging.Init()
			if err != nil {
				return fmt.Errorf("failed to initialize logging: %w", err)
			}

			c, err := cli.NewCLI(cmd.Context(), dbPath)
			if err != nil {
				return err
			}
			cmd.SetContext(cli.WithCLI(cmd.Context(), c))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			c, err := cli.GetCLIFromContext(cmd.Context())
			if err != nil {
				return nil
			}
			if err := c.Close(); err != nil {
				slog.Error("error closing database", "error", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := cli.GetCLIFromContext(cmd.Context())
			if err != nil {
				return err
			}
			return launcher.Launch(cmd.Context(), c, logger)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Registration database (default $REGATTA_DB or ~/.regatta/registrations.db)")

	rootCmd.AddCommand(
		registration.ListCmd(),
		registration.RegisterCmd(),
		registration.SeedCmd(),
		registration.ExportCmd(),
		setup.SetupCmd(),
	)

	return rootCmd
}

// Execute runs the command tree until completion or an interrupt.
func Execute() error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	return NewRootCmd().ExecuteContext(ctx)
}
