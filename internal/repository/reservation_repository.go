package repository

import (
	"fmt"     // fmt reports index drift
	"strings" // strings folds reservation ids

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// ReservationRepo is the insertion-ordered reservation store plus a
// secondary index from room number to the ids of every reservation made
// for that room.  The store owns the records; the index holds ids only and
// is updated in the same call as the store, so callers never observe one
// without the other.
type ReservationRepo struct {
	items  []model.Reservation
	byRoom map[int][]string
}

// NewReservationRepo returns an empty store.
func NewReservationRepo() *ReservationRepo {
	return &ReservationRepo{byRoom: make(map[int][]string)}
}

// Insert appends a new reservation and indexes it under its room.
func (r *ReservationRepo) Insert(res model.Reservation) error {
	if r.indexOf(res.ID) >= 0 {
		return fmt.Errorf("%w: reservation %s already exists", ErrConflict, res.ID)
	}
	r.items = append(r.items, res.Clone())
	r.byRoom[res.RoomNumber] = append(r.byRoom[res.RoomNumber], res.ID)
	return nil
}

// Get returns the reservation whose id equals id, ignoring case.
func (r *ReservationRepo) Get(id string) (model.Reservation, error) {
	i := r.indexOf(id)
	if i < 0 {
		return model.Reservation{}, ErrNotFound
	}
	return r.items[i].Clone(), nil
}

// All returns every reservation in insertion order.
func (r *ReservationRepo) All() []model.Reservation {
	out := make([]model.Reservation, len(r.items))
	for i, res := range r.items {
		out[i] = res.Clone()
	}
	return out
}

// Len is the number of stored reservations.
func (r *ReservationRepo) Len() int { return len(r.items) }

// Replace overwrites the stored reservation with the same id.  When the
// room number changes the id is moved from the old room bucket to the new
// one as part of the same write.
func (r *ReservationRepo) Replace(res model.Reservation) error {
	i := r.indexOf(res.ID)
	if i < 0 {
		return ErrNotFound
	}
	old := r.items[i]
	if old.RoomNumber != res.RoomNumber {
		r.unindex(old.RoomNumber, old.ID)
		r.byRoom[res.RoomNumber] = append(r.byRoom[res.RoomNumber], old.ID)
	}
	res.ID = old.ID
	r.items[i] = res.Clone()
	return nil
}

// Delete removes the reservation from the store and from its room bucket
// and returns the removed record.
func (r *ReservationRepo) Delete(id string) (model.Reservation, error) {
	i := r.indexOf(id)
	if i < 0 {
		return model.Reservation{}, ErrNotFound
	}
	res := r.items[i]
	r.items = append(r.items[:i:i], r.items[i+1:]...)
	r.unindex(res.RoomNumber, res.ID)
	return res, nil
}

// ByRoom returns every reservation indexed under room, oldest first.
func (r *ReservationRepo) ByRoom(room int) []model.Reservation {
	ids := r.byRoom[room]
	out := make([]model.Reservation, 0, len(ids))
	for _, id := range ids {
		if i := r.indexOf(id); i >= 0 {
			out = append(out, r.items[i].Clone())
		}
	}
	return out
}

// ActiveInRoom returns the active reservation holding room, skipping
// excludeID.  Occupancy is recomputed from the records on every call.
func (r *ReservationRepo) ActiveInRoom(room int, excludeID string) (model.Reservation, bool) {
	for _, res := range r.ByRoom(room) {
		if res.IsActive() && !strings.EqualFold(res.ID, excludeID) {
			return res, true
		}
	}
	return model.Reservation{}, false
}

// IsAvailable reports whether no active reservation other than excludeID
// references room.  Pass an empty excludeID to consider every reservation.
func (r *ReservationRepo) IsAvailable(room int, excludeID string) bool {
	_, taken := r.ActiveInRoom(room, excludeID)
	return !taken
}

// CheckIndex verifies that the room index lists exactly the stored
// reservations under their current room numbers.
func (r *ReservationRepo) CheckIndex() error {
	want := make(map[int][]string)
	for _, res := range r.items {
		want[res.RoomNumber] = append(want[res.RoomNumber], res.ID)
	}
	for room, ids := range r.byRoom {
		if len(ids) == 0 {
			continue
		}
		if !sameMembers(ids, want[room]) {
			return fmt.Errorf("room %d index %v, store %v", room, ids, want[room])
		}
	}
	for room, ids := range want {
		if !sameMembers(ids, r.byRoom[room]) {
			return fmt.Errorf("room %d index %v, store %v", room, r.byRoom[room], ids)
		}
	}
	return nil
}

func (r *ReservationRepo) indexOf(id string) int {
	for i, res := range r.items {
		if strings.EqualFold(res.ID, id) {
			return i
		}
	}
	return -1
}

func (r *ReservationRepo) unindex(room int, id string) {
	ids := r.byRoom[room]
	for i, v := range ids {
		if v == id {
			ids = append(ids[:i:i], ids[i+1:]...)
			break
		}
	}
	if len(ids) == 0 {
		delete(r.byRoom, room)
		return
	}
	r.byRoom[room] = ids
}

func sameMembers(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, v := range a {
		seen[v]++
	}
	for _, v := range b {
		if seen[v] == 0 {
			return false
		}
		seen[v]--
	}
	return true
}
