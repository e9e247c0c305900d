package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/queue"
	"github.com/iliyamo/hotel-reservation/internal/repository"
)

// CreateReservationInput is a new booking as captured by the desk.
// RoomNumber 0 picks the first free room of the type.  AllowOverCapacity
// is the operator's explicit go-ahead for a party larger than any room
// type; it is ignored while some type could take the party.
type CreateReservationInput struct {
	GuestName         string `validate:"required,guestname"`
	Phone             string `validate:"required,phone"`
	Email             string `validate:"required,deskemail"`
	PartySize         int    `validate:"min=1,max=10"`
	RoomTypeKey       string `validate:"required"`
	RoomNumber        int    `validate:"gte=0"`
	Stay              model.Stay
	AllowOverCapacity bool
}

// ContactInput replaces a guest's phone and email.  Empty fields are left
// unchanged.
type ContactInput struct {
	Phone string `validate:"omitempty,phone"`
	Email string `validate:"omitempty,deskemail"`
}

// DeleteResult reports a removed reservation and how many ledger entries
// it left behind.
type DeleteResult struct {
	Reservation      model.Reservation
	OrphanedPayments int
}

// IsAvailable reports whether room is free, ignoring excludeID's own
// booking.  Occupancy is derived from active reservations on every call.
func (h *Hotel) IsAvailable(room int, excludeID string) bool {
	return h.reservations.IsAvailable(room, excludeID)
}

// AvailableRooms lists the free rooms of a type in display order.
func (h *Hotel) AvailableRooms(typeKey string) ([]int, error) {
	return h.availableRooms(typeKey, "")
}

// AvailableRoomsFor is AvailableRooms as seen by a reservation that is
// moving: the room it holds counts as free.
func (h *Hotel) AvailableRoomsFor(typeKey, reservationID string) ([]int, error) {
	return h.availableRooms(typeKey, reservationID)
}

func (h *Hotel) availableRooms(typeKey, excludeID string) ([]int, error) {
	rooms, err := h.catalog.RoomsOfType(typeKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRoomType, typeKey)
	}
	var free []int
	for _, r := range rooms {
		if h.reservations.IsAvailable(r, excludeID) {
			free = append(free, r)
		}
	}
	return free, nil
}

// SuitableTypes returns the room types that can take partySize guests.
func (h *Hotel) SuitableTypes(partySize int) []model.RoomType {
	return h.catalog.SuitableFor(partySize)
}

// ActiveInRoom returns the active reservation currently holding room.
func (h *Hotel) ActiveInRoom(room int) (model.Reservation, error) {
	res, ok := h.reservations.ActiveInRoom(room, "")
	if !ok {
		return model.Reservation{}, fmt.Errorf("%w: no active booking for room %d", ErrReservationNotFound, room)
	}
	return res, nil
}

// CreateReservation books a room.  Nights are computed from the stay dates
// (at least one), the nightly price is snapshotted from the catalog and
// the booking starts Active and Pending with nothing paid.
func (h *Hotel) CreateReservation(ctx context.Context, in CreateReservationInput) (model.Reservation, error) {
	if err := checkStruct(in); err != nil {
		return model.Reservation{}, err
	}
	if err := checkStay(in.Stay); err != nil {
		return model.Reservation{}, err
	}
	rt, err := h.catalog.Type(in.RoomTypeKey)
	if err != nil {
		return model.Reservation{}, fmt.Errorf("%w: %q", ErrUnknownRoomType, in.RoomTypeKey)
	}
	if err := h.checkCapacity(rt, in.PartySize, in.AllowOverCapacity); err != nil {
		return model.Reservation{}, err
	}
	room, err := h.pickRoom(rt, in.RoomNumber, "")
	if err != nil {
		return model.Reservation{}, err
	}

	nights := model.Nights(in.Stay.CheckIn, in.Stay.CheckOut)
	res := model.Reservation{
		ID:            h.newReservationID(),
		Guest:         model.Guest{Name: in.GuestName, Phone: in.Phone, Email: in.Email},
		PartySize:     in.PartySize,
		RoomType:      rt.Name,
		RoomNumber:    room,
		Stay:          in.Stay,
		Nights:        nights,
		PricePerNight: rt.Price,
		TotalCost:     rt.Price * float64(nights),
		PaymentStatus: model.PaymentPending,
		Status:        model.StatusActive,
	}
	if err := h.reservations.Insert(res); err != nil {
		return model.Reservation{}, err
	}

	h.log.WithFields(logrus.Fields{
		"reservation_id": res.ID,
		"room":           res.RoomNumber,
		"nights":         res.Nights,
		"total_cost":     res.TotalCost,
	}).Info("reservation created")
	h.emit(ctx, queue.ReservationCreated, res, nil, res.TotalCost, "")
	return res, nil
}

// UpdateContact replaces the guest's phone and/or email.
func (h *Hotel) UpdateContact(ctx context.Context, id string, in ContactInput) (model.Reservation, error) {
	if err := checkStruct(in); err != nil {
		return model.Reservation{}, err
	}
	res, err := h.Reservation(id)
	if err != nil {
		return model.Reservation{}, err
	}
	if in.Phone != "" {
		res.Guest.Phone = in.Phone
	}
	if in.Email != "" {
		res.Guest.Email = in.Email
	}
	return h.commitUpdate(ctx, res, "contact")
}

// UpdatePartySize changes the number of guests, which must still fit the
// booked room type.
func (h *Hotel) UpdatePartySize(ctx context.Context, id string, partySize int) (model.Reservation, error) {
	if err := checkStruct(struct {
		PartySize int `validate:"min=1,max=10"`
	}{partySize}); err != nil {
		return model.Reservation{}, err
	}
	res, err := h.activeReservation(id)
	if err != nil {
		return model.Reservation{}, err
	}
	if rt, err := h.catalog.TypeByName(res.RoomType); err == nil && !rt.Fits(partySize) {
		return model.Reservation{}, fmt.Errorf("%w: %s holds at most %d guest(s)", ErrCapacityExceeded, rt.Name, rt.Capacity)
	}
	res.PartySize = partySize
	return h.commitUpdate(ctx, res, "party size")
}

// UpdateStay moves the booking to new dates.  Nights and room cost are
// recomputed at the snapshotted nightly price and the payment status is
// derived again from the new balance.
func (h *Hotel) UpdateStay(ctx context.Context, id string, stay model.Stay) (model.Reservation, error) {
	if err := checkStay(stay); err != nil {
		return model.Reservation{}, err
	}
	res, err := h.activeReservation(id)
	if err != nil {
		return model.Reservation{}, err
	}
	res.Stay = stay
	res.Nights = model.Nights(stay.CheckIn, stay.CheckOut)
	res.TotalCost = res.PricePerNight * float64(res.Nights)
	res.Settle()
	res.PaymentStatus = res.DerivePaymentStatus()
	return h.commitUpdate(ctx, res, "stay")
}

// ChangeRoom moves the booking to another room, possibly of another type.
// Capacity and availability are checked again, the price is snapshotted
// from the new type and the room index moves with the record.  Room 0
// picks the first free room of the type.
func (h *Hotel) ChangeRoom(ctx context.Context, id, typeKey string, room int) (model.Reservation, error) {
	res, err := h.activeReservation(id)
	if err != nil {
		return model.Reservation{}, err
	}
	rt, err := h.catalog.Type(typeKey)
	if err != nil {
		return model.Reservation{}, fmt.Errorf("%w: %q", ErrUnknownRoomType, typeKey)
	}
	if !rt.Fits(res.PartySize) {
		return model.Reservation{}, fmt.Errorf("%w: %s holds at most %d guest(s)", ErrCapacityExceeded, rt.Name, rt.Capacity)
	}
	picked, err := h.pickRoom(rt, room, res.ID)
	if err != nil {
		return model.Reservation{}, err
	}

	res.RoomType = rt.Name
	res.RoomNumber = picked
	res.PricePerNight = rt.Price
	res.TotalCost = rt.Price * float64(res.Nights)
	res.Settle()
	res.PaymentStatus = res.DerivePaymentStatus()
	return h.commitUpdate(ctx, res, "room")
}

// Cancel marks an active reservation Cancelled.  Payments and balance are
// left untouched and the room is free for the next booking immediately.
func (h *Hotel) Cancel(ctx context.Context, id string) (model.Reservation, error) {
	res, err := h.Reservation(id)
	if err != nil {
		return model.Reservation{}, err
	}
	if !res.IsActive() {
		return model.Reservation{}, fmt.Errorf("%w: %s", ErrAlreadyCancelled, res.ID)
	}
	res.Status = model.StatusCancelled
	if err := h.reservations.Replace(res); err != nil {
		return model.Reservation{}, err
	}
	h.log.WithField("reservation_id", res.ID).Info("reservation cancelled")
	h.emit(ctx, queue.ReservationCancelled, res, nil, 0, "")
	return res, nil
}

// Delete removes a reservation from the store and the room index.  Its
// ledger entries are kept and stay reachable by reservation id; the count
// is returned so the desk can warn about them.
func (h *Hotel) Delete(ctx context.Context, id string) (DeleteResult, error) {
	res, err := h.reservations.Delete(id)
	if errors.Is(err, repository.ErrNotFound) {
		return DeleteResult{}, fmt.Errorf("%w: %s", ErrReservationNotFound, id)
	}
	if err != nil {
		return DeleteResult{}, err
	}
	out := DeleteResult{Reservation: res, OrphanedPayments: h.payments.CountForReservation(res.ID)}

	entry := h.log.WithField("reservation_id", res.ID)
	if out.OrphanedPayments > 0 {
		entry.WithField("payments", out.OrphanedPayments).Warn("reservation deleted with payment history")
	} else {
		entry.Info("reservation deleted")
	}
	h.emit(ctx, queue.ReservationDeleted, res, nil, 0, fmt.Sprintf("%d payment(s) kept", out.OrphanedPayments))
	return out, nil
}

func (h *Hotel) activeReservation(id string) (model.Reservation, error) {
	res, err := h.Reservation(id)
	if err != nil {
		return model.Reservation{}, err
	}
	if !res.IsActive() {
		return model.Reservation{}, fmt.Errorf("%w: %s", ErrReservationCancelled, res.ID)
	}
	return res, nil
}

func (h *Hotel) commitUpdate(ctx context.Context, res model.Reservation, what string) (model.Reservation, error) {
	if err := h.reservations.Replace(res); err != nil {
		return model.Reservation{}, err
	}
	h.log.WithFields(logrus.Fields{
		"reservation_id": res.ID,
		"change":         what,
	}).Info("reservation updated")
	h.emit(ctx, queue.ReservationUpdated, res, nil, 0, what)
	return res, nil
}

func (h *Hotel) checkCapacity(rt model.RoomType, partySize int, override bool) error {
	if rt.Fits(partySize) {
		return nil
	}
	if override && len(h.catalog.SuitableFor(partySize)) == 0 {
		h.log.WithFields(logrus.Fields{
			"room_type":  rt.Name,
			"party_size": partySize,
		}).Warn("booking above room capacity by operator override")
		return nil
	}
	return fmt.Errorf("%w: %s holds at most %d guest(s), party has %d", ErrCapacityExceeded, rt.Name, rt.Capacity, partySize)
}

// pickRoom resolves the requested room of rt, or the first free one when
// room is 0, treating excludeID's own booking as free.
func (h *Hotel) pickRoom(rt model.RoomType, room int, excludeID string) (int, error) {
	free, err := h.availableRooms(rt.Key, excludeID)
	if err != nil {
		return 0, err
	}
	if len(free) == 0 {
		return 0, fmt.Errorf("%w: %s", ErrNoRoomsAvailable, rt.Name)
	}
	if room == 0 {
		return free[0], nil
	}
	if !rt.HasRoom(room) {
		return 0, fmt.Errorf("%w: room %d is not a %s", ErrRoomNotInType, room, rt.Name)
	}
	if !h.reservations.IsAvailable(room, excludeID) {
		return 0, fmt.Errorf("%w: room %d", ErrRoomUnavailable, room)
	}
	return room, nil
}
