// Package setup holds one-off commands that prepare a machine for regatta.
package setup

import "github.com/spf13/cobra"

// SetupCmd returns the setup command group
func SetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Prepare regatta configuration",
	}
	cmd.AddCommand(ConfigCmd())
	return cmd
}
