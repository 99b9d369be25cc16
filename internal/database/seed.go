package database

import (
	"context"
	"fmt"
	"time"

	"github.com/thenoetrevino/regatta/internal/models"
)

func ptr[T any](v T) *T { return &v }

// demoBoats is a small registration list with unassigned numbers and
// unpaid crews, so every column has something to sort.
func demoBoats() []*models.Boat {
	day := time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC)
	return []*models.Boat{
		{BoatNumber: ptr("SM.2.3"), CrewName: "Les Canotiers", Club: "Chatou Aviron", Event: models.EventSeniorMixed, Seats: 8, Paid: true, Fee: ptr(240.0), RegisteredAt: day},
		{BoatNumber: ptr("M.1.1"), CrewName: "Argenteuil Huit", Club: "CN Argenteuil", Event: models.EventMen, Seats: 8, Paid: true, Fee: ptr(240.0), RegisteredAt: day.Add(2 * time.Hour)},
		{BoatNumber: ptr("VM.1.2"), CrewName: "Vétérans de Bougival", Club: "SN Bougival", Event: models.EventVeteranMixed, Seats: 4, Paid: false, RegisteredAt: day.Add(26 * time.Hour)},
		{BoatNumber: ptr("SM.2.1"), CrewName: "Impressions", Club: "Rowing Club de Paris", Event: models.EventSeniorMixed, Seats: 4, Paid: true, Fee: ptr(120.0), RegisteredAt: day.Add(30 * time.Hour)},
		{BoatNumber: ptr("M.1.5"), CrewName: "Seine Quatre", Club: "AS Mantes", Event: models.EventMen, Seats: 4, Paid: false, RegisteredAt: day.Add(50 * time.Hour)},
		{CrewName: "Nymphéas", Club: "Giverny Aviron", Event: models.EventVeteranMixed, Seats: 8, Paid: false, RegisteredAt: day.Add(74 * time.Hour)},
		{BoatNumber: ptr("VM.1.1"), CrewName: "La Grenouillère", Club: "Croissy Aviron", Event: models.EventVeteranMixed, Seats: 4, Paid: true, Fee: ptr(120.0), RegisteredAt: day.Add(80 * time.Hour)},
		{BoatNumber: ptr("M.2.1"), CrewName: "Bateau-Atelier", Club: "Chatou Aviron", Event: models.EventMen, Seats: 2, Paid: true, Fee: ptr(60.0), RegisteredAt: day.Add(96 * time.Hour)},
	}
}

// SeedDemo inserts demoBoats unless the table already has registrations.
// It returns the number of boats inserted.
func SeedDemo(ctx context.Context, store BoatStore) (int, error) {
	count, err := store.CountBoats(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	boats := demoBoats()
	for _, b := range boats {
		if _, err := store.CreateBoat(ctx, b); err != nil {
			return 0, fmt.Errorf("failed to seed %q: %w", b.CrewName, err)
		}
	}
	return len(boats), nil
}
