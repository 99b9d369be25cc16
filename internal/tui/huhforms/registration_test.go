package huhforms

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/regatta/internal/config"
	"github.com/thenoetrevino/regatta/internal/models"
)

func TestValidateOptionalBoatNumber(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false},
		{"   ", false},
		{"M.1.1", false},
		{"SM.12.3", false},
		{"VM.1", true},
		{"M.x.1", true},
		{"garbage", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateOptionalBoatNumber(tt.input)
			if tt.wantErr {
				assert.True(t, errors.Is(err, models.ErrInvalidBoatNumber), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFee(t *testing.T) {
	assert.NoError(t, ValidateFee(""))
	assert.NoError(t, ValidateFee("120"))
	assert.NoError(t, ValidateFee("99,50"))
	assert.Error(t, ValidateFee("-1"))
	assert.Error(t, ValidateFee("free"))
}

func TestRegistrationInput_ToBoat(t *testing.T) {
	now := time.Date(2026, 4, 2, 10, 30, 0, 0, time.UTC)
	in := RegistrationInput{
		BoatNumber: " SM.2.3 ",
		CrewName:   "Les Canotiers",
		Club:       "Rouen Aviron Club",
		Event:      models.EventSeniorMixed,
		Seats:      "8",
		Fee:        "240,5",
		Paid:       true,
	}

	boat, err := in.ToBoat(now)
	require.NoError(t, err)
	require.NotNil(t, boat.BoatNumber)
	assert.Equal(t, "SM.2.3", *boat.BoatNumber)
	assert.Equal(t, 8, boat.Seats)
	require.NotNil(t, boat.Fee)
	assert.InDelta(t, 240.5, *boat.Fee, 0.001)
	assert.True(t, boat.Paid)
	assert.Equal(t, now, boat.RegisteredAt)
}

func TestRegistrationInput_ToBoatOptionalFields(t *testing.T) {
	in := RegistrationInput{CrewName: "Giverny", Club: "Les Andelys", Event: models.EventMen, Seats: "2"}

	boat, err := in.ToBoat(time.Now())
	require.NoError(t, err)
	assert.Nil(t, boat.BoatNumber)
	assert.Nil(t, boat.Fee)
}

func TestRegistrationInput_ToBoatErrors(t *testing.T) {
	base := RegistrationInput{CrewName: "Giverny", Club: "Les Andelys", Event: models.EventMen, Seats: "2"}

	tests := []struct {
		name   string
		mutate func(*RegistrationInput)
	}{
		{"missing crew", func(in *RegistrationInput) { in.CrewName = " " }},
		{"missing club", func(in *RegistrationInput) { in.Club = "" }},
		{"bad boat number", func(in *RegistrationInput) { in.BoatNumber = "X" }},
		{"bad seats", func(in *RegistrationInput) { in.Seats = "zero" }},
		{"negative fee", func(in *RegistrationInput) { in.Fee = "-3" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mutate(&in)
			_, err := in.ToBoat(time.Now())
			assert.Error(t, err)
		})
	}
}

func TestCreateRegistrationForm_Defaults(t *testing.T) {
	in := &RegistrationInput{}
	form := CreateRegistrationForm(in)
	require.NotNil(t, form)
	assert.Equal(t, models.EventMen, in.Event)
	assert.Equal(t, "4", in.Seats)
}

func TestCreateRegattaTheme(t *testing.T) {
	theme := CreateRegattaTheme(config.DefaultColorScheme())
	require.NotNil(t, theme)
	assert.NotNil(t, theme.Theme(true))
}
