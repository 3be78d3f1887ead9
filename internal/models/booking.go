package models

import "time"

// Booking statuses. Only StatusPending is assigned by this service.
const (
	StatusPending = "pending"
)

// BookingInput is a booking submission after form parsing and normalization.
type BookingInput struct {
	Name          string
	Phone         string
	Email         *string
	Age           *int
	Service       string
	Date          string // YYYY-MM-DD
	Time          string // HH:MM
	HandsAndFeet  bool
	SpecialDesign bool
	FirstVisit    bool
	Comments      string
}

// Booking represents a booking row in the database
type Booking struct {
	ID            int64     `json:"id" db:"id"`                         // Primary key
	Name          string    `json:"name" db:"name"`                     // Customer name
	Phone         string    `json:"phone" db:"phone"`                   // Customer phone, free format
	Email         *string   `json:"email,omitempty" db:"email"`         // Optional email
	Age           *int      `json:"age,omitempty" db:"age"`             // Optional age
	Service       string    `json:"service" db:"service"`               // Service code
	Date          string    `json:"date" db:"booking_date"`             // Appointment date, YYYY-MM-DD
	Time          string    `json:"time" db:"booking_time"`             // Appointment time, HH:MM
	HandsAndFeet  bool      `json:"hands_and_feet" db:"hands_and_feet"` // Hands+feet combo add-on
	SpecialDesign bool      `json:"special_design" db:"special_design"` // Special design add-on
	FirstVisit    bool      `json:"first_visit" db:"first_visit"`       // First visit flag
	Comments      string    `json:"comments" db:"comments"`             // Free text
	Price         int64     `json:"price" db:"price"`                   // Computed price
	Status        string    `json:"status" db:"status"`                 // Workflow status
	CreatedAt     time.Time `json:"created_at" db:"created_at"`         // Creation timestamp
}
