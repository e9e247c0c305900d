package service

import (
	"context"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/queue"
	"github.com/iliyamo/hotel-reservation/internal/repository"
	"github.com/iliyamo/hotel-reservation/internal/utils"
)

// PaymentInput is money received against a reservation.  Reference and
// Notes are optional and stored as "N/A" when empty.
type PaymentInput struct {
	ReservationID string  `validate:"required"`
	Amount        float64 `validate:"finite,gt=0"`
	Method        string  `validate:"required"`
	Reference     string  `validate:"max=100"`
	Notes         string  `validate:"max=200"`
	Date          model.Date
	Time          model.TimeOfDay
}

// ChargeInput is an extra posted to a reservation's bill.
type ChargeInput struct {
	ReservationID string  `validate:"required"`
	Category      string  `validate:"required"`
	Description   string  `validate:"required,max=100"`
	Amount        float64 `validate:"finite,gt=0"`
}

// RefundPreset chooses how a refund amount is derived from what was paid.
type RefundPreset int

const (
	RefundFull RefundPreset = iota + 1
	RefundHalf
	RefundCustom
)

func (p RefundPreset) String() string {
	switch p {
	case RefundFull:
		return "Full refund"
	case RefundHalf:
		return "Partial refund (50%)"
	case RefundCustom:
		return "Custom amount"
	}
	return "unknown"
}

// RefundInput returns money for a cancelled reservation.  Amount is read
// only with RefundCustom.
type RefundInput struct {
	ReservationID string       `validate:"required"`
	Preset        RefundPreset `validate:"min=1,max=3"`
	Amount        float64      `validate:"finite"`
	Method        string       `validate:"required"`
	Reference     string       `validate:"max=100"`
	Reason        string       `validate:"max=200"`
	Date          model.Date
	Time          model.TimeOfDay
}

// RefundAmount resolves preset against what the guest has paid.
func RefundAmount(preset RefundPreset, totalPaid, custom float64) float64 {
	switch preset {
	case RefundFull:
		return totalPaid
	case RefundHalf:
		return totalPaid * 0.5
	}
	return custom
}

// PostPayment records a payment.  The amount must be positive and may not
// exceed the outstanding balance; overpayment is refused.  A payment that
// leaves less than half a cent either way settles the bill exactly.
func (h *Hotel) PostPayment(ctx context.Context, in PaymentInput) (model.Reservation, model.Payment, error) {
	if err := checkStruct(in); err != nil {
		return model.Reservation{}, model.Payment{}, err
	}
	if err := checkMoment(in.Date, in.Time); err != nil {
		return model.Reservation{}, model.Payment{}, err
	}
	if !slices.Contains(repository.PaymentMethods, in.Method) {
		return model.Reservation{}, model.Payment{}, fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, in.Method)
	}
	res, err := h.activeReservation(in.ReservationID)
	if err != nil {
		return model.Reservation{}, model.Payment{}, err
	}
	if bal := res.Balance(); in.Amount-bal >= model.SettleTolerance {
		return model.Reservation{}, model.Payment{}, fmt.Errorf("%w: %.2f exceeds balance %.2f", ErrInvalidAmount, in.Amount, bal)
	}

	res.TotalPaid += in.Amount
	res.Settle()
	res.PaymentStatus = res.DerivePaymentStatus()
	p := model.Payment{
		ID:            h.newPaymentID(),
		ReservationID: res.ID,
		GuestName:     res.Guest.Name,
		Amount:        in.Amount,
		Method:        in.Method,
		Reference:     utils.OrNA(in.Reference),
		Notes:         utils.OrNA(in.Notes),
		Date:          in.Date,
		Time:          in.Time,
		Status:        model.PaymentCompleted,
	}
	if err := h.commitLedger(res, p); err != nil {
		return model.Reservation{}, model.Payment{}, err
	}

	h.log.WithFields(logrus.Fields{
		"reservation_id": res.ID,
		"payment_id":     p.ID,
		"amount":         p.Amount,
		"balance":        res.Balance(),
	}).Info("payment posted")
	h.emit(ctx, queue.PaymentPosted, res, &p, p.Amount, p.Method)
	return res, p, nil
}

// PostCharge adds an extra to the bill.  A fully paid reservation drops
// back to Partial since money is owed again.
func (h *Hotel) PostCharge(ctx context.Context, in ChargeInput) (model.Reservation, error) {
	if err := checkStruct(in); err != nil {
		return model.Reservation{}, err
	}
	if !slices.Contains(repository.ChargeCategories, in.Category) {
		return model.Reservation{}, fmt.Errorf("%w: %q", ErrUnknownChargeCategory, in.Category)
	}
	res, err := h.activeReservation(in.ReservationID)
	if err != nil {
		return model.Reservation{}, err
	}

	res.Charges = append(res.Charges, model.Charge{Category: in.Category, Description: in.Description, Amount: in.Amount})
	res.AdditionalCharges += in.Amount
	if res.PaymentStatus == model.PaymentPaid && res.Balance() > 0 {
		res.PaymentStatus = model.PaymentPartial
	}
	if err := h.reservations.Replace(res); err != nil {
		return model.Reservation{}, err
	}

	h.log.WithFields(logrus.Fields{
		"reservation_id": res.ID,
		"category":       in.Category,
		"amount":         in.Amount,
	}).Info("charge posted")
	h.emit(ctx, queue.ChargePosted, res, nil, in.Amount, in.Category+": "+in.Description)
	return res, nil
}

// PostRefund returns money for a cancelled reservation that still has
// payments on it.  The refund is a new negative ledger entry; earlier
// entries are never touched.
func (h *Hotel) PostRefund(ctx context.Context, in RefundInput) (model.Reservation, model.Payment, error) {
	if err := checkStruct(in); err != nil {
		return model.Reservation{}, model.Payment{}, err
	}
	if err := checkMoment(in.Date, in.Time); err != nil {
		return model.Reservation{}, model.Payment{}, err
	}
	if !slices.Contains(repository.PaymentMethods, in.Method) {
		return model.Reservation{}, model.Payment{}, fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, in.Method)
	}
	res, err := h.Reservation(in.ReservationID)
	if err != nil {
		return model.Reservation{}, model.Payment{}, err
	}
	if res.IsActive() {
		return model.Reservation{}, model.Payment{}, fmt.Errorf("%w: %s is active", ErrNotCancelled, res.ID)
	}
	if res.TotalPaid <= 0 {
		return model.Reservation{}, model.Payment{}, fmt.Errorf("%w: %s", ErrNothingToRefund, res.ID)
	}
	amount := RefundAmount(in.Preset, res.TotalPaid, in.Amount)
	if amount <= 0 || amount > res.TotalPaid {
		return model.Reservation{}, model.Payment{}, fmt.Errorf("%w: refund %.2f must be within (0, %.2f]", ErrInvalidAmount, amount, res.TotalPaid)
	}

	res.TotalPaid -= amount
	if res.TotalPaid < model.SettleTolerance {
		res.TotalPaid = 0
		res.PaymentStatus = model.PaymentRefunded
	} else {
		res.PaymentStatus = model.PaymentPartialRefund
	}
	notes := "REFUND - " + in.Preset.String()
	if in.Reason != "" {
		notes += " - " + in.Reason
	}
	p := model.Payment{
		ID:            h.newPaymentID(),
		ReservationID: res.ID,
		GuestName:     res.Guest.Name,
		Amount:        -amount,
		Method:        in.Method,
		Reference:     utils.OrNA(in.Reference),
		Notes:         notes,
		Date:          in.Date,
		Time:          in.Time,
		Status:        model.PaymentRecordRefunded,
	}
	if err := h.commitLedger(res, p); err != nil {
		return model.Reservation{}, model.Payment{}, err
	}

	h.log.WithFields(logrus.Fields{
		"reservation_id": res.ID,
		"payment_id":     p.ID,
		"amount":         p.Amount,
		"total_paid":     res.TotalPaid,
	}).Info("refund issued")
	h.emit(ctx, queue.RefundIssued, res, &p, p.Amount, notes)
	return res, p, nil
}

// commitLedger writes the updated reservation and its new ledger entry as
// one step, restoring the reservation when the append fails.
func (h *Hotel) commitLedger(res model.Reservation, p model.Payment) error {
	old, err := h.reservations.Get(res.ID)
	if err != nil {
		return err
	}
	if err := h.reservations.Replace(res); err != nil {
		return err
	}
	if err := h.payments.Append(p); err != nil {
		_ = h.reservations.Replace(old)
		return err
	}
	return nil
}
