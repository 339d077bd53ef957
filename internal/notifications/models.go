package notifications

import (
	"encoding/json"
	"time"
)

// EventType identifies a booking lifecycle event on the Kafka topic.
type EventType string

const (
	BookingCreated   EventType = "booking.created"
	BookingPaid      EventType = "booking.paid"
	BookingFailed    EventType = "booking.failed"
	BookingCancelled EventType = "booking.cancelled"
	BookingExpired   EventType = "booking.expired"
)

// BookingEvent is the message published for every booking state change.
// Downstream consumers (email, analytics) subscribe to the topic; this
// service stops at publishing.
type BookingEvent struct {
	Type       EventType `json:"type"`
	BookingID  string    `json:"booking_id"`
	BookingRef string    `json:"booking_ref"`
	UserID     string    `json:"user_id"`
	ShowtimeID string    `json:"showtime_id"`
	Seats      []string  `json:"seats,omitempty"`
	TotalPrice float64   `json:"total_price,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (e *BookingEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// PartitionKey routes all events of one showtime to the same partition so
// consumers see them in order.
func (e *BookingEvent) PartitionKey() string {
	return e.ShowtimeID
}
