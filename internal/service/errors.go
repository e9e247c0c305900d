package service

import "errors"

// Lookups that found nothing.  The operation is aborted and nothing changes.
var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrUnknownRoomType     = errors.New("unknown room type")
)

// Business rule violations.  The operation is aborted and nothing changes.
var (
	ErrCapacityExceeded      = errors.New("party size exceeds room capacity")
	ErrNoRoomsAvailable      = errors.New("no rooms available for this type")
	ErrRoomUnavailable       = errors.New("room is not available")
	ErrRoomNotInType         = errors.New("room does not belong to the selected type")
	ErrInvalidStay           = errors.New("check-out date must be after check-in date")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrReservationCancelled  = errors.New("reservation is cancelled")
	ErrAlreadyCancelled      = errors.New("reservation is already cancelled")
	ErrNotCancelled          = errors.New("refunds can only be issued for cancelled reservations")
	ErrNothingToRefund       = errors.New("no payments left to refund")
	ErrUnknownPaymentMethod  = errors.New("unknown payment method")
	ErrUnknownChargeCategory = errors.New("unknown charge category")
)

var notFound = []error{ErrReservationNotFound, ErrPaymentNotFound, ErrUnknownRoomType}

var ruleViolations = []error{
	ErrCapacityExceeded, ErrNoRoomsAvailable, ErrRoomUnavailable, ErrRoomNotInType,
	ErrInvalidStay, ErrInvalidAmount, ErrReservationCancelled, ErrAlreadyCancelled,
	ErrNotCancelled, ErrNothingToRefund, ErrUnknownPaymentMethod, ErrUnknownChargeCategory,
}

// IsNotFound reports whether err is a failed lookup.
func IsNotFound(err error) bool { return isAny(err, notFound) }

// IsRuleViolation reports whether err is a refused business operation.
func IsRuleViolation(err error) bool { return isAny(err, ruleViolations) }

func isAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}
