// Package huhforms builds the interactive forms of the CLI.
package huhforms

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/regatta/internal/models"
	"github.com/thenoetrevino/regatta/internal/table"
)

// RegistrationInput holds the raw form values of one registration.
type RegistrationInput struct {
	BoatNumber string
	CrewName   string
	Club       string
	Event      string
	Seats      string
	Fee        string
	Paid       bool
	Confirm    bool
}

// seatOptions are the boat classes accepted at the regatta.
var seatOptions = []int{1, 2, 4, 8}

// CreateRegistrationForm creates a huh form for registering one boat
func CreateRegistrationForm(in *RegistrationInput) *huh.Form {
	if in.Event == "" {
		in.Event = models.EventMen
	}
	if in.Seats == "" {
		in.Seats = "4"
	}

	events := make([]huh.Option[string], 0, len(models.Events))
	for _, e := range models.Events {
		events = append(events, huh.NewOption(e, e))
	}
	seats := make([]huh.Option[string], 0, len(seatOptions))
	for _, n := range seatOptions {
		s := strconv.Itoa(n)
		seats = append(seats, huh.NewOption(s, s))
	}

	crew := huh.NewGroup(
		huh.NewInput().
			Key("crew_name").
			Title("Crew Name").
			Placeholder("Enter crew name...").
			Validate(required("crew name")).
			Value(&in.CrewName),

		huh.NewInput().
			Key("club").
			Title("Club").
			Placeholder("Enter club name...").
			Validate(required("club")).
			Value(&in.Club),

		huh.NewSelect[string]().
			Key("event").
			Title("Event").
			Options(events...).
			Value(&in.Event),

		huh.NewSelect[string]().
			Key("seats").
			Title("Seats").
			Options(seats...).
			Value(&in.Seats),
	)

	payment := huh.NewGroup(
		huh.NewInput().
			Key("boat_number").
			Title("Boat Number (optional)").
			Description("Assigned by the organisers, e.g. SM.2.3").
			Placeholder("M.1.1").
			Validate(ValidateOptionalBoatNumber).
			Value(&in.BoatNumber),

		huh.NewInput().
			Key("fee").
			Title("Fee in € (optional)").
			Placeholder("120").
			Validate(ValidateFee).
			Value(&in.Fee),

		huh.NewConfirm().
			Key("paid").
			Title("Paid?").
			Affirmative("Yes").
			Negative("No").
			Value(&in.Paid),

		huh.NewConfirm().
			Key("confirm").
			Title("Register this boat?").
			Affirmative("Yes").
			Negative("No").
			Value(&in.Confirm),
	)

	form := huh.NewForm(crew, payment)
	return form.WithKeyMap(CreateKeyMapWithEscape())
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// ValidateOptionalBoatNumber accepts an empty value or a well-formed
// boat number.
func ValidateOptionalBoatNumber(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return table.ValidateBoatNumber(s)
}

// ValidateFee accepts an empty value or a non-negative amount. A comma
// decimal separator is allowed.
func ValidateFee(s string) error {
	_, err := parseFee(s)
	return err
}

func parseFee(s string) (*float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return nil, nil
	}
	fee, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errors.New("fee must be a number")
	}
	if fee < 0 {
		return nil, errors.New("fee cannot be negative")
	}
	return &fee, nil
}

// ToBoat converts the form values into a boat registered at now.
func (in RegistrationInput) ToBoat(now time.Time) (*models.Boat, error) {
	if err := required("crew name")(in.CrewName); err != nil {
		return nil, err
	}
	if err := required("club")(in.Club); err != nil {
		return nil, err
	}
	if err := ValidateOptionalBoatNumber(in.BoatNumber); err != nil {
		return nil, err
	}

	seats, err := strconv.Atoi(strings.TrimSpace(in.Seats))
	if err != nil || seats <= 0 {
		return nil, fmt.Errorf("invalid seat count %q", in.Seats)
	}
	fee, err := parseFee(in.Fee)
	if err != nil {
		return nil, err
	}

	boat := &models.Boat{
		CrewName:     strings.TrimSpace(in.CrewName),
		Club:         strings.TrimSpace(in.Club),
		Event:        in.Event,
		Seats:        seats,
		Paid:         in.Paid,
		Fee:          fee,
		RegisteredAt: now,
	}
	if n := strings.TrimSpace(in.BoatNumber); n != "" {
		boat.BoatNumber = &n
	}
	return boat, nil
}
