package events

import "time"

// Event types published on the lifecycle topic.
const (
	OrderPlaced              = "order.placed"
	OrderStatusChanged       = "order.status_changed"
	ReservationRequested     = "reservation.requested"
	ReservationStatusChanged = "reservation.status_changed"
)

// Event is the wire message for every lifecycle change. Key is the order or
// reservation id, so all events of one entity land on the same partition.
type Event struct {
	Type       string    `json:"type"`
	Key        string    `json:"key"`
	FromStatus string    `json:"from_status,omitempty"`
	Status     string    `json:"status"`
	Actor      string    `json:"actor,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload,omitempty"`
}
