package models

// HourSlot is one bookable time of day
// swagger:model HourSlot
type HourSlot struct {
	// Time of day
	// example: 10:00
	Hour string `json:"hora"`

	// Whether the slot can be booked
	// example: true
	Available bool `json:"disponible"`
}
