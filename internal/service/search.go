package service

import (
	"strings"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/repository"
)

// Search runs a single-predicate query over the reservation store.
func (h *Hotel) Search(q repository.ReservationQuery) []model.Reservation {
	return h.reservations.Search(q)
}

// SortKey names a reservation ordering offered by the desk.
type SortKey int

const (
	SortNameAsc SortKey = iota + 1
	SortNameDesc
	SortRoomAsc
	SortRoomDesc
	SortCostAsc
	SortCostDesc
	SortCheckInAsc
	SortCheckInDesc
)

var sortLabels = map[SortKey]string{
	SortNameAsc:     "Guest name (A-Z)",
	SortNameDesc:    "Guest name (Z-A)",
	SortRoomAsc:     "Room number (ascending)",
	SortRoomDesc:    "Room number (descending)",
	SortCostAsc:     "Total cost (low to high)",
	SortCostDesc:    "Total cost (high to low)",
	SortCheckInAsc:  "Check-in date (earliest first)",
	SortCheckInDesc: "Check-in date (latest first)",
}

func (k SortKey) String() string {
	if s, ok := sortLabels[k]; ok {
		return s
	}
	return "unknown"
}

// SortKeys lists every ordering in menu order.
func SortKeys() []SortKey {
	return []SortKey{SortNameAsc, SortNameDesc, SortRoomAsc, SortRoomDesc, SortCostAsc, SortCostDesc, SortCheckInAsc, SortCheckInDesc}
}

// outOfOrder reports whether a must move behind b under k.  Equal keys are
// never out of order, which keeps the sort stable.
func (k SortKey) outOfOrder(a, b model.Reservation) bool {
	switch k {
	case SortNameAsc:
		return strings.ToLower(a.Guest.Name) > strings.ToLower(b.Guest.Name)
	case SortNameDesc:
		return strings.ToLower(a.Guest.Name) < strings.ToLower(b.Guest.Name)
	case SortRoomAsc:
		return a.RoomNumber > b.RoomNumber
	case SortRoomDesc:
		return a.RoomNumber < b.RoomNumber
	case SortCostAsc:
		return a.TotalCost > b.TotalCost
	case SortCostDesc:
		return a.TotalCost < b.TotalCost
	case SortCheckInAsc:
		return a.Stay.CheckIn.Compare(b.Stay.CheckIn) > 0
	case SortCheckInDesc:
		return a.Stay.CheckIn.Compare(b.Stay.CheckIn) < 0
	}
	return false
}

// SortReservations returns a sorted copy of list; the input is untouched.
func SortReservations(list []model.Reservation, key SortKey) []model.Reservation {
	out := make([]model.Reservation, len(list))
	copy(out, list)
	bubbleSort(out, key.outOfOrder)
	return out
}

// Sorted returns every reservation ordered by key.
func (h *Hotel) Sorted(key SortKey) []model.Reservation {
	return SortReservations(h.reservations.All(), key)
}

// bubbleSort orders s in place with adjacent swaps, stopping after the
// first pass that moves nothing.  Elements swap only when after(a, b) is
// strictly true, so equal elements keep their relative order.
func bubbleSort[T any](s []T, after func(a, b T) bool) {
	for n := len(s); n > 1; n-- {
		swapped := false
		for i := 0; i < n-1; i++ {
			if after(s[i], s[i+1]) {
				s[i], s[i+1] = s[i+1], s[i]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// UnpaidReservations lists active reservations that still owe money.
func (h *Hotel) UnpaidReservations() []model.Reservation {
	return h.filter(func(r model.Reservation) bool {
		return r.IsActive() && r.Balance() >= model.SettleTolerance
	})
}

// ActiveReservations lists reservations that can take charges or changes.
func (h *Hotel) ActiveReservations() []model.Reservation {
	return h.filter(model.Reservation.IsActive)
}

// RefundableReservations lists cancelled reservations with money left to
// return.
func (h *Hotel) RefundableReservations() []model.Reservation {
	return h.filter(func(r model.Reservation) bool {
		return !r.IsActive() && r.TotalPaid > 0
	})
}

func (h *Hotel) filter(keep func(model.Reservation) bool) []model.Reservation {
	var out []model.Reservation
	for _, r := range h.reservations.All() {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
