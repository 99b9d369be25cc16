package setup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/regatta/internal/cli"
	"github.com/thenoetrevino/regatta/internal/config"
)

// ConfigCmd returns the setup config subcommand
func ConfigCmd() *cobra.Command {
	var checkFlag bool
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write the effective configuration to the config file",
		Long: `Write the configuration regatta is currently using (defaults, theme file
and environment overrides included) to the config file, so it can be edited.

Examples:
  # Create ~/.config/regatta/config.yaml
  regatta setup config

  # Show where the file lives and whether it exists
  regatta setup config --check

  # Overwrite an existing file
  regatta setup config --force
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliInstance, err := cli.GetCLIFromContext(cmd.Context())
			if err != nil {
				return err
			}

			path, err := config.Path()
			if err != nil {
				return fmt.Errorf("failed to locate config file: %w", err)
			}

			styles := cli.NewStyles(cliInstance.Config.ColorScheme)
			out := cmd.OutOrStdout()
			_, statErr := os.Stat(path)
			exists := statErr == nil
			if statErr != nil && !errors.Is(statErr, fs.ErrNotExist) {
				return fmt.Errorf("failed to inspect %s: %w", path, statErr)
			}

			if checkFlag {
				if exists {
					fmt.Fprintln(out, styles.Success.Render("Config file: "+path))
				} else {
					fmt.Fprintln(out, styles.Subtle.Render("No config file at "+path+" (using defaults)"))
				}
				return nil
			}

			if exists && !forceFlag {
				return cli.WithExitCode(cli.ExitUsage,
					fmt.Errorf("%s already exists, use --force to overwrite", path))
			}

			if err := cliInstance.Config.Save(); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Fprintln(out, styles.Success.Render("Wrote "+path))
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkFlag, "check", false, "Report the config file location and status")
	cmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing config file")

	return cmd
}
