package repository

import (
	"fmt"     // fmt reports index drift
	"strings" // strings folds reservation ids

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// PaymentRepo is the append-only payment ledger.  Entries are never edited
// or removed; refunds are appended as negative entries.  A secondary index
// maps each reservation id to its payment ids in posting order and
// survives deletion of the reservation itself.
type PaymentRepo struct {
	items         []model.Payment
	byReservation map[string][]string
}

// NewPaymentRepo returns an empty ledger.
func NewPaymentRepo() *PaymentRepo {
	return &PaymentRepo{byReservation: make(map[string][]string)}
}

// Append records a new ledger entry.
func (r *PaymentRepo) Append(p model.Payment) error {
	if _, ok := r.find(p.ID); ok {
		return fmt.Errorf("%w: payment %s already exists", ErrConflict, p.ID)
	}
	r.items = append(r.items, p)
	key := strings.ToUpper(p.ReservationID)
	r.byReservation[key] = append(r.byReservation[key], p.ID)
	return nil
}

// Get returns the entry with the given id, ignoring case.
func (r *PaymentRepo) Get(id string) (model.Payment, error) {
	p, ok := r.find(id)
	if !ok {
		return model.Payment{}, ErrNotFound
	}
	return p, nil
}

// All returns every entry in posting order.
func (r *PaymentRepo) All() []model.Payment {
	return append([]model.Payment(nil), r.items...)
}

// Len is the number of ledger entries.
func (r *PaymentRepo) Len() int { return len(r.items) }

// ForReservation returns the entries posted against reservationID in
// posting order, including those of deleted reservations.
func (r *PaymentRepo) ForReservation(reservationID string) []model.Payment {
	ids := r.byReservation[strings.ToUpper(reservationID)]
	out := make([]model.Payment, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.find(id); ok {
			out = append(out, p)
		}
	}
	return out
}

// CountForReservation is len(ForReservation(reservationID)) without the copy.
func (r *PaymentRepo) CountForReservation(reservationID string) int {
	return len(r.byReservation[strings.ToUpper(reservationID)])
}

// CheckIndex verifies that the reservation index lists exactly the ledger
// entries, in posting order.
func (r *PaymentRepo) CheckIndex() error {
	want := make(map[string][]string)
	for _, p := range r.items {
		key := strings.ToUpper(p.ReservationID)
		want[key] = append(want[key], p.ID)
	}
	if len(want) != len(r.byReservation) {
		return fmt.Errorf("index has %d reservations, ledger has %d", len(r.byReservation), len(want))
	}
	for key, ids := range want {
		got := r.byReservation[key]
		if len(got) != len(ids) {
			return fmt.Errorf("reservation %s index %v, ledger %v", key, got, ids)
		}
		for i := range ids {
			if got[i] != ids[i] {
				return fmt.Errorf("reservation %s index %v, ledger %v", key, got, ids)
			}
		}
	}
	return nil
}

func (r *PaymentRepo) find(id string) (model.Payment, bool) {
	for _, p := range r.items {
		if strings.EqualFold(p.ID, id) {
			return p, true
		}
	}
	return model.Payment{}, false
}
