package models

// Event types published to Kafka.
const (
	EventBookingCreated = "booking.created"
	EventUserRegistered = "user.registered"
)

// Event represents a domain event published after a successful insert.
type Event struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Type      string `json:"type"`      // Type is one of the Event* constants.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) when the event was emitted.
	EntityID  int64  `json:"entity_id"` // EntityID is the id of the inserted row.
	Data      any    `json:"data"`      // Data is the event payload.
}
