package repository

import (
	"strings"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// SearchBy selects the single predicate a ReservationQuery applies.
type SearchBy int

const (
	SearchByID SearchBy = iota + 1
	SearchByName
	SearchByRoom
	SearchByStatus
	SearchByCheckIn
)

// ReservationQuery describes one search.  Only the fields used by By are
// read:
//
//	SearchByID      – ID, case-insensitive substring of the reservation id
//	SearchByName    – Name, case-insensitive substring of the guest name
//	SearchByRoom    – Room, every reservation indexed under the room
//	SearchByStatus  – Status, exact match
//	SearchByCheckIn – From/To, check-in date within the inclusive range
type ReservationQuery struct {
	By     SearchBy
	ID     string
	Name   string
	Room   int
	Status model.ReservationStatus
	From   model.Date
	To     model.Date
}

// Search runs q against the store.  Results keep store order, except room
// lookups which keep room index order.
func (r *ReservationRepo) Search(q ReservationQuery) []model.Reservation {
	if q.By == SearchByRoom {
		return r.ByRoom(q.Room)
	}
	var out []model.Reservation
	for _, res := range r.items {
		if q.matches(res) {
			out = append(out, res.Clone())
		}
	}
	return out
}

func (q ReservationQuery) matches(res model.Reservation) bool {
	switch q.By {
	case SearchByID:
		return containsFold(res.ID, q.ID)
	case SearchByName:
		return containsFold(res.Guest.Name, q.Name)
	case SearchByStatus:
		return res.Status == q.Status
	case SearchByCheckIn:
		return res.Stay.CheckIn.Between(q.From, q.To)
	}
	return false
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
