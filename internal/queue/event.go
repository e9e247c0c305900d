// Package queue defines the reservation events the desk emits and the
// sinks that carry them: the application log, and optionally a RabbitMQ
// queue drained by the audit consumer.
package queue

import "time"

// EventType names what happened to a reservation.
type EventType string

const (
	ReservationCreated   EventType = "reservation.created"
	ReservationUpdated   EventType = "reservation.updated"
	ReservationCancelled EventType = "reservation.cancelled"
	ReservationDeleted   EventType = "reservation.deleted"
	PaymentPosted        EventType = "payment.posted"
	ChargePosted         EventType = "charge.posted"
	RefundIssued         EventType = "refund.issued"
)

// Event is published after a mutation has been applied.  It carries enough
// of the reservation's state for an auditor to follow the money without
// access to the desk's memory.
type Event struct {
	ID            string    `json:"id"`
	Type          EventType `json:"type"`
	ReservationID string    `json:"reservation_id"`
	PaymentID     string    `json:"payment_id,omitempty"`
	GuestName     string    `json:"guest_name"`
	RoomNumber    int       `json:"room_number"`
	Amount        float64   `json:"amount,omitempty"`
	TotalCost     float64   `json:"total_cost"`
	TotalPaid     float64   `json:"total_paid"`
	Balance       float64   `json:"balance"`
	PaymentStatus string    `json:"payment_status"`
	Status        string    `json:"status"`
	Note          string    `json:"note,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
