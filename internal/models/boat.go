package models

import "time"

// Boat is one crew registration for the regatta.
type Boat struct {
	ID int
	// BoatNumber is assigned by the organisers (e.g. "SM.2.3") and is nil
	// until the registration is validated.
	BoatNumber   *string
	CrewName     string
	Club         string
	Event        string
	Seats        int
	Paid         bool
	Fee          *float64
	RegisteredAt time.Time
}
