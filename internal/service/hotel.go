// Package service is the booking and billing engine.  A Hotel owns the
// catalog, the reservation store, the payment ledger and the id counters;
// every operation validates its input, computes the complete new state and
// only then writes it, so a refused operation leaves nothing behind.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/hotel-reservation/internal/clock"
	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/queue"
	"github.com/iliyamo/hotel-reservation/internal/repository"
)

// Hotel is the aggregate the console drives.  It is not safe for
// concurrent use; the desk has a single operator.
type Hotel struct {
	catalog      *repository.Catalog
	reservations *repository.ReservationRepo
	payments     *repository.PaymentRepo

	nextReservation int
	nextPayment     int

	clock     clock.Clock
	publisher queue.Publisher
	log       logrus.FieldLogger
}

// Option customises a Hotel at construction time.
type Option func(*Hotel)

// WithClock sets the clock used to stamp events.
func WithClock(c clock.Clock) Option {
	return func(h *Hotel) {
		if c != nil {
			h.clock = c
		}
	}
}

// WithPublisher sets the sink for reservation events.
func WithPublisher(p queue.Publisher) Option {
	return func(h *Hotel) {
		if p != nil {
			h.publisher = p
		}
	}
}

// WithLogger sets the operational logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(h *Hotel) {
		if l != nil {
			h.log = l
		}
	}
}

// WithIDStart sets the first reservation and payment numbers.
func WithIDStart(reservation, payment int) Option {
	return func(h *Hotel) {
		if reservation > 0 {
			h.nextReservation = reservation
		}
		if payment > 0 {
			h.nextPayment = payment
		}
	}
}

// WithRoomTypes replaces the default room catalog.
func WithRoomTypes(types []model.RoomType) Option {
	return func(h *Hotel) {
		h.catalog = repository.NewCatalog(types)
	}
}

// NewHotel returns an empty hotel using the default catalog, RES1000 and
// PAY5000 as first ids, the system clock and log-only events.
func NewHotel(opts ...Option) *Hotel {
	logger := logrus.StandardLogger()
	h := &Hotel{
		catalog:         repository.NewCatalog(repository.DefaultRoomTypes()),
		reservations:    repository.NewReservationRepo(),
		payments:        repository.NewPaymentRepo(),
		nextReservation: 1000,
		nextPayment:     5000,
		clock:           clock.NewSystem(),
		log:             logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.publisher == nil {
		h.publisher = queue.NewLogPublisher(h.log)
	}
	return h
}

// Catalog exposes the read-only room catalog.
func (h *Hotel) Catalog() *repository.Catalog { return h.catalog }

// PaymentMethods lists the accepted payment and refund methods.
func (h *Hotel) PaymentMethods() []string {
	return append([]string(nil), repository.PaymentMethods...)
}

// ChargeCategories lists the categories extras can be posted under.
func (h *Hotel) ChargeCategories() []string {
	return append([]string(nil), repository.ChargeCategories...)
}

// Reservation returns the reservation with the given id, ignoring case.
func (h *Hotel) Reservation(id string) (model.Reservation, error) {
	res, err := h.reservations.Get(id)
	if err != nil {
		return model.Reservation{}, fmt.Errorf("%w: %s", ErrReservationNotFound, id)
	}
	return res, nil
}

// Reservations returns every reservation in booking order.
func (h *Hotel) Reservations() []model.Reservation { return h.reservations.All() }

// Payment returns the ledger entry with the given id.
func (h *Hotel) Payment(id string) (model.Payment, error) {
	p, err := h.payments.Get(id)
	if err != nil {
		return model.Payment{}, fmt.Errorf("%w: %s", ErrPaymentNotFound, id)
	}
	return p, nil
}

// Payments returns the whole ledger in posting order.
func (h *Hotel) Payments() []model.Payment { return h.payments.All() }

// PaymentsFor returns the ledger entries of a reservation, which stay
// available after the reservation is deleted.
func (h *Hotel) PaymentsFor(reservationID string) []model.Payment {
	return h.payments.ForReservation(reservationID)
}

// CheckConsistency verifies both secondary indexes against their stores.
func (h *Hotel) CheckConsistency() error {
	if err := h.reservations.CheckIndex(); err != nil {
		return fmt.Errorf("room index: %w", err)
	}
	if err := h.payments.CheckIndex(); err != nil {
		return fmt.Errorf("payment index: %w", err)
	}
	return nil
}

func (h *Hotel) newReservationID() string {
	id := fmt.Sprintf("RES%d", h.nextReservation)
	h.nextReservation++
	return id
}

func (h *Hotel) newPaymentID() string {
	id := fmt.Sprintf("PAY%d", h.nextPayment)
	h.nextPayment++
	return id
}

// emit publishes an event for a committed change.  Failures are logged
// and swallowed.
func (h *Hotel) emit(ctx context.Context, typ queue.EventType, res model.Reservation, p *model.Payment, amount float64, note string) {
	ev := queue.Event{
		ID:            uuid.NewString(),
		Type:          typ,
		ReservationID: res.ID,
		GuestName:     res.Guest.Name,
		RoomNumber:    res.RoomNumber,
		Amount:        amount,
		TotalCost:     res.TotalCost,
		TotalPaid:     res.TotalPaid,
		Balance:       res.Balance(),
		PaymentStatus: string(res.PaymentStatus),
		Status:        string(res.Status),
		Note:          note,
		OccurredAt:    h.clock.Now(),
	}
	if p != nil {
		ev.PaymentID = p.ID
	}
	if err := h.publisher.Publish(ctx, ev); err != nil {
		h.log.WithError(err).WithField("event", typ).Warn("event publish failed")
	}
}
