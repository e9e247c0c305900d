package model

import "math" // math checks the settlement remainder

// ReservationStatus is the lifecycle state of a booking.  Active is the only
// state a booking is created in; Cancelled is terminal.
type ReservationStatus string

const (
	StatusActive    ReservationStatus = "Active"
	StatusCancelled ReservationStatus = "Cancelled"
)

// PaymentStatus summarises how much of a reservation has been settled.
type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "Pending"
	PaymentPartial       PaymentStatus = "Partial"
	PaymentPaid          PaymentStatus = "Paid"
	PaymentRefunded      PaymentStatus = "Refunded"
	PaymentPartialRefund PaymentStatus = "Partial Refund"
)

// Guest holds the contact details captured at booking time.
type Guest struct {
	Name  string
	Phone string
	Email string
}

// Stay is the booked date range including the agreed arrival and departure
// times.
type Stay struct {
	CheckIn      Date
	CheckInTime  TimeOfDay
	CheckOut     Date
	CheckOutTime TimeOfDay
}

// Charge is an extra posted against a reservation (minibar, laundry, ...).
type Charge struct {
	Category    string
	Description string
	Amount      float64
}

// Reservation records a guest's booking of one room.  The billing fields
// are kept consistent by the engine; Balance is derived and never stored.
//
// Fields:
//  ID                – RES<n>, unique and monotonically assigned.
//  Guest             – contact details.
//  PartySize         – number of guests.
//  RoomType          – display name of the booked room type.
//  RoomNumber        – booked room; always part of RoomType's pool.
//  Stay              – check-in/check-out dates and times.
//  Nights            – billed nights, at least 1.
//  PricePerNight     – catalog price snapshotted at booking or room change.
//  TotalCost         – PricePerNight × Nights.
//  AdditionalCharges – sum of Charges.
//  TotalPaid         – payments received minus refunds issued.
//  PaymentStatus     – Pending, Partial, Paid, Refunded or Partial Refund.
//  Status            – Active or Cancelled.
//  Charges           – history of additional charges.
type Reservation struct {
	ID                string
	Guest             Guest
	PartySize         int
	RoomType          string
	RoomNumber        int
	Stay              Stay
	Nights            int
	PricePerNight     float64
	TotalCost         float64
	AdditionalCharges float64
	TotalPaid         float64
	PaymentStatus     PaymentStatus
	Status            ReservationStatus
	Charges           []Charge
}

// Balance is the amount still owed, never negative.
func (r Reservation) Balance() float64 {
	b := r.TotalCost + r.AdditionalCharges - r.TotalPaid
	if b < 0 {
		return 0
	}
	return b
}

// SettleTolerance is the largest remainder still treated as settled.  Money
// is kept in cents, so anything below half a cent is float residue.
const SettleTolerance = 0.005

// Settle snaps TotalPaid onto TotalDue when the two differ by less than
// SettleTolerance, so a bill paid to the cent reads as exactly zero.
func (r *Reservation) Settle() {
	if r.TotalPaid > 0 && math.Abs(r.TotalDue()-r.TotalPaid) < SettleTolerance {
		r.TotalPaid = r.TotalDue()
	}
}

// TotalDue is room cost plus additional charges.
func (r Reservation) TotalDue() float64 {
	return r.TotalCost + r.AdditionalCharges
}

// IsActive reports whether the reservation still holds its room.
func (r Reservation) IsActive() bool {
	return r.Status == StatusActive
}

// DerivePaymentStatus recomputes the settlement status of an active
// booking from its amounts.
func (r Reservation) DerivePaymentStatus() PaymentStatus {
	switch {
	case r.Balance() <= 0:
		return PaymentPaid
	case r.TotalPaid > 0:
		return PaymentPartial
	}
	return PaymentPending
}

// Clone returns a copy that shares no mutable state with r.
func (r Reservation) Clone() Reservation {
	if r.Charges != nil {
		r.Charges = append([]Charge(nil), r.Charges...)
	}
	return r
}
