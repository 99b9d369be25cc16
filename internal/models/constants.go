package models

// ============================================================================
// COLUMN KEYS
// ============================================================================

// Column keys used for registration rows
const (
	KeyID           = "id"
	KeyBoatNumber   = "boat_number"
	KeyCrewName     = "crew_name"
	KeyClub         = "club"
	KeyEvent        = "event"
	KeySeats        = "seats"
	KeyPaid         = "paid"
	KeyFee          = "fee"
	KeyRegisteredAt = "registered_at"
)

// ============================================================================
// EVENT CONSTANTS
// ============================================================================

// Events offered at the regatta. The boat number prefix follows the event
// category: M (men/open), SM (senior mixed), VM (veteran mixed).
const (
	EventMen          = "M"
	EventSeniorMixed  = "SM"
	EventVeteranMixed = "VM"
)

// Events lists the known event categories in race order.
var Events = []string{EventMen, EventSeniorMixed, EventVeteranMixed}
