package registration

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/regatta/internal/cli"
	"github.com/thenoetrevino/regatta/internal/tui/huhforms"
)

// RegisterCmd returns the register subcommand
func RegisterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a boat",
		Long: `Register one boat. Without --crew an interactive form is shown.

Examples:
  # Interactive form
  regatta register

  # Scripted
  regatta register --crew "Les Canotiers" --club "Rouen Aviron Club" --event SM --seats 8 --fee 240 --paid
`,
		RunE: runRegister,
	}

	cmd.Flags().String("crew", "", "Crew name")
	cmd.Flags().String("club", "", "Club name")
	cmd.Flags().String("event", "M", "Event category (M, SM, VM)")
	cmd.Flags().Int("seats", 4, "Number of rowers")
	cmd.Flags().String("fee", "", "Registration fee in euros")
	cmd.Flags().Bool("paid", false, "The fee has been paid")
	cmd.Flags().String("boat-number", "", "Boat number, e.g. SM.2.3")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runRegister(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

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
		return err
	}

	var input huhforms.RegistrationInput
	if cmd.Flags().Changed("crew") {
		input = inputFromFlags(cmd)
	} else {
		input.Confirm = true
		form := huhforms.CreateRegistrationForm(&input).
			WithTheme(huhforms.CreateRegattaTheme(cliInstance.Config.ColorScheme))
		if err := form.RunWithContext(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Fprintln(cmd.OutOrStdout(), "Registration cancelled")
				return nil
			}
			return fmt.Errorf("registration form: %w", err)
		}
		if !input.Confirm {
			fmt.Fprintln(cmd.OutOrStdout(), "Registration cancelled")
			return nil
		}
	}

	boat, err := input.ToBoat(time.Now())
	if err != nil {
		if fmtErr := formatter.Error("VALIDATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return cli.WithExitCode(cli.ExitValidation, err)
	}

	unlock, err := cliInstance.AcquireWriteLock()
	if err != nil {
		return err
	}
	defer unlock()

	created, err := cliInstance.Store.CreateBoat(ctx, boat)
	if err != nil {
		if fmtErr := formatter.Error("CREATE_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}
	slog.Info("boat registered", "id", created.ID, "crew", created.CrewName)

	out := cmd.OutOrStdout()
	switch {
	case quietMode:
		fmt.Fprintf(out, "%d\n", created.ID)
		return nil
	case jsonOutput:
		return formatter.JSONEnvelope("registration", map[string]any{
			"id":          created.ID,
			"crew_name":   created.CrewName,
			"club":        created.Club,
			"event":       created.Event,
			"seats":       created.Seats,
			"paid":        created.Paid,
			"fee":         created.Fee,
			"boat_number": created.BoatNumber,
		})
	}

	styles := cli.NewStyles(cliInstance.Config.ColorScheme)
	fmt.Fprintln(out, styles.Success.Render(fmt.Sprintf("Registered %s (%s) with ID %d", created.CrewName, created.Club, created.ID)))
	return nil
}

func inputFromFlags(cmd *cobra.Command) huhforms.RegistrationInput {
	crew, _ := cmd.Flags().GetString("crew")
	club, _ := cmd.Flags().GetString("club")
	event, _ := cmd.Flags().GetString("event")
	seats, _ := cmd.Flags().GetInt("seats")
	fee, _ := cmd.Flags().GetString("fee")
	paid, _ := cmd.Flags().GetBool("paid")
	boatNumber, _ := cmd.Flags().GetString("boat-number")

	return huhforms.RegistrationInput{
		BoatNumber: boatNumber,
		CrewName:   crew,
		Club:       club,
		Event:      event,
		Seats:      fmt.Sprint(seats),
		Fee:        fee,
		Paid:       paid,
		Confirm:    true,
	}
}
