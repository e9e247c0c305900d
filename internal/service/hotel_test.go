package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-reservation/internal/clock"
	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/queue"
	"github.com/iliyamo/hotel-reservation/internal/utils"
)

type recordingPublisher struct {
	events []queue.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev queue.Event) error {
	p.events = append(p.events, ev)
	return p.err
}

func (p *recordingPublisher) types() []queue.EventType {
	out := make([]queue.EventType, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Type)
	}
	return out
}

var testNow = time.Date(2026, 5, 20, 9, 0, 0, 0, time.UTC)

func newTestHotel(t *testing.T) (*Hotel, *recordingPublisher, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	pub := &recordingPublisher{}
	h := NewHotel(
		WithClock(clock.NewFixed(testNow)),
		WithPublisher(pub),
		WithLogger(logger),
	)
	return h, pub, hook
}

func day(d, m, y int) model.Date { return model.Date{Day: d, Month: m, Year: y} }

func june(in, out int) model.Stay {
	return model.Stay{
		CheckIn:      day(in, 6, 2026),
		CheckInTime:  model.TimeOfDay{Hour: 14},
		CheckOut:     day(out, 6, 2026),
		CheckOutTime: model.TimeOfDay{Hour: 12},
	}
}

func booking(typeKey string, party int) CreateReservationInput {
	return CreateReservationInput{
		GuestName:   "Maria Santos",
		Phone:       "09171234567",
		Email:       "maria@example.com",
		PartySize:   party,
		RoomTypeKey: typeKey,
		Stay:        june(1, 3),
	}
}

func payment(id string, amount float64) PaymentInput {
	return PaymentInput{
		ReservationID: id,
		Amount:        amount,
		Method:        "Cash",
		Date:          day(1, 6, 2026),
		Time:          model.TimeOfDay{Hour: 15, Minute: 30},
	}
}

func refund(id string, preset RefundPreset, amount float64) RefundInput {
	return RefundInput{
		ReservationID: id,
		Preset:        preset,
		Amount:        amount,
		Method:        "Bank Transfer",
		Date:          day(2, 6, 2026),
		Time:          model.TimeOfDay{Hour: 10},
	}
}

func TestHotel_CreateReservation(t *testing.T) {
	t.Parallel()

	h, pub, hook := newTestHotel(t)
	ctx := context.Background()

	res, err := h.CreateReservation(ctx, booking("1", 1))
	require.NoError(t, err)
	assert.Equal(t, "RES1000", res.ID)
	assert.Equal(t, 101, res.RoomNumber)
	assert.Equal(t, "Standard Single", res.RoomType)
	assert.Equal(t, 2, res.Nights)
	assert.Equal(t, 1500.0, res.PricePerNight)
	assert.Equal(t, 3000.0, res.TotalCost)
	assert.Equal(t, 3000.0, res.Balance())
	assert.Equal(t, model.PaymentPending, res.PaymentStatus)
	assert.Equal(t, model.StatusActive, res.Status)

	second, err := h.CreateReservation(ctx, booking("1", 1))
	require.NoError(t, err)
	assert.Equal(t, "RES1001", second.ID)
	assert.Equal(t, 102, second.RoomNumber)

	require.Len(t, pub.events, 2)
	ev := pub.events[0]
	assert.Equal(t, queue.ReservationCreated, ev.Type)
	assert.Equal(t, "RES1000", ev.ReservationID)
	assert.Equal(t, testNow, ev.OccurredAt)
	assert.NotEmpty(t, ev.ID)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "reservation created", entry.Message)
	assert.Equal(t, "RES1001", entry.Data["reservation_id"])

	got, err := h.Reservation("res1000")
	require.NoError(t, err)
	assert.Equal(t, res, got)
	require.NoError(t, h.CheckConsistency())
}

func TestHotel_CreateReservationRefused(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*CreateReservationInput)
		target error
	}{
		{"unknown type", func(in *CreateReservationInput) { in.RoomTypeKey = "9" }, ErrUnknownRoomType},
		{"room outside type", func(in *CreateReservationInput) { in.RoomNumber = 301 }, ErrRoomNotInType},
		{"check-out on check-in day", func(in *CreateReservationInput) { in.Stay = june(3, 3) }, ErrInvalidStay},
		{"check-out before check-in", func(in *CreateReservationInput) { in.Stay = june(5, 3) }, ErrInvalidStay},
		{"party too large for type", func(in *CreateReservationInput) { in.PartySize = 2 }, ErrCapacityExceeded},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, pub, _ := newTestHotel(t)
			in := booking("1", 1)
			tc.mutate(&in)

			_, err := h.CreateReservation(context.Background(), in)
			require.ErrorIs(t, err, tc.target)
			assert.True(t, IsRuleViolation(err) || IsNotFound(err))
			assert.Empty(t, h.Reservations())
			assert.Empty(t, pub.events)
		})
	}
}

func TestHotel_CreateReservationValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*CreateReservationInput)
		field  string
	}{
		{"name with digits", func(in *CreateReservationInput) { in.GuestName = "R2D2" }, "guestname"},
		{"short phone", func(in *CreateReservationInput) { in.Phone = "12345" }, "phone"},
		{"bad email", func(in *CreateReservationInput) { in.Email = "maria@example" }, "email"},
		{"zero party", func(in *CreateReservationInput) { in.PartySize = 0 }, "partysize"},
		{"impossible date", func(in *CreateReservationInput) { in.Stay.CheckIn = day(31, 6, 2026) }, "check_in"},
		{"impossible time", func(in *CreateReservationInput) { in.Stay.CheckOutTime = model.TimeOfDay{Hour: 25} }, "check_out_time"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, _, _ := newTestHotel(t)
			in := booking("1", 1)
			tc.mutate(&in)

			_, err := h.CreateReservation(context.Background(), in)
			var verr *utils.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestHotel_RoomAvailability(t *testing.T) {
	t.Parallel()

	h, _, _ := newTestHotel(t)
	ctx := context.Background()

	in := booking("5", 2)
	in.RoomNumber = 502
	first, err := h.CreateReservation(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 502, first.RoomNumber)

	_, err = h.CreateReservation(ctx, in)
	require.ErrorIs(t, err, ErrRoomUnavailable)

	in.RoomNumber = 0
	_, err = h.CreateReservation(ctx, in)
	require.NoError(t, err)

	_, err = h.CreateReservation(ctx, in)
	require.ErrorIs(t, err, ErrNoRoomsAvailable)

	free, err := h.AvailableRooms("5")
	require.NoError(t, err)
	assert.Empty(t, free)

	_, err = h.Cancel(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, h.IsAvailable(502, ""))

	holder, err := h.ActiveInRoom(501)
	require.NoError(t, err)
	assert.Equal(t, "RES1001", holder.ID)

	_, err = h.ActiveInRoom(502)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestHotel_AvailableRoomsForMovingReservation(t *testing.T) {
	t.Parallel()

	h, _, _ := newTestHotel(t)
	ctx := context.Background()

	in := booking("5", 2)
	first, err := h.CreateReservation(ctx, in)
	require.NoError(t, err)
	second, err := h.CreateReservation(ctx, in)
	require.NoError(t, err)

	free, err := h.AvailableRooms("5")
	require.NoError(t, err)
	assert.Empty(t, free)

	free, err = h.AvailableRoomsFor("5", first.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{first.RoomNumber}, free)

	moved, err := h.ChangeRoom(ctx, first.ID, "5", free[0])
	require.NoError(t, err)
	assert.Equal(t, 501, moved.RoomNumber)
	assert.Equal(t, 502, second.RoomNumber)

	_, err = h.AvailableRoomsFor("9", first.ID)
	require.ErrorIs(t, err, ErrUnknownRoomType)
}

func TestHotel_CapacityOverride(t *testing.T) {
	t.Parallel()

	h, _, hook := newTestHotel(t)
	ctx := context.Background()

	_, err := h.CreateReservation(ctx, booking("5", 7))
	require.ErrorIs(t, err, ErrCapacityExceeded)

	in := booking("5", 7)
	in.AllowOverCapacity = true
	res, err := h.CreateReservation(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 7, res.PartySize)
	assert.Equal(t, 501, res.RoomNumber)

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Message == "booking above room capacity by operator override" {
			warned = true
		}
	}
	assert.True(t, warned)

	t.Run("override ignored while another type fits", func(t *testing.T) {
		in := booking("1", 3)
		in.AllowOverCapacity = true
		_, err := h.CreateReservation(ctx, in)
		require.ErrorIs(t, err, ErrCapacityExceeded)
	})
}

func TestHotel_PaymentFlow(t *testing.T) {
	t.Parallel()

	h, pub, _ := newTestHotel(t)
	ctx := context.Background()
	res, err := h.CreateReservation(ctx, booking("1", 1))
	require.NoError(t, err)

	res, p, err := h.PostPayment(ctx, payment(res.ID, 1000))
	require.NoError(t, err)
	assert.Equal(t, "PAY5000", p.ID)
	assert.Equal(t, "N/A", p.Reference)
	assert.Equal(t, "N/A", p.Notes)
	assert.Equal(t, model.PaymentCompleted, p.Status)
	assert.Equal(t, "Maria Santos", p.GuestName)
	assert.Equal(t, model.PaymentPartial, res.PaymentStatus)
	assert.Equal(t, 2000.0, res.Balance())

	in := payment(res.ID, 2000)
	in.Reference = "TX-42"
	res, p, err = h.PostPayment(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "PAY5001", p.ID)
	assert.Equal(t, "TX-42", p.Reference)
	assert.Equal(t, model.PaymentPaid, res.PaymentStatus)
	assert.Zero(t, res.Balance())

	_, _, err = h.PostPayment(ctx, payment(res.ID, 1))
	require.ErrorIs(t, err, ErrInvalidAmount)

	stored, err := h.Reservation(res.ID)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, stored.TotalPaid)
	assert.Len(t, h.PaymentsFor(res.ID), 2)
	assert.Equal(t, []queue.EventType{queue.ReservationCreated, queue.PaymentPosted, queue.PaymentPosted}, pub.types())
}

func TestHotel_PaymentRefused(t *testing.T) {
	t.Parallel()

	h, _, _ := newTestHotel(t)
	ctx := context.Background()
	res, err := h.CreateReservation(ctx, booking("1", 1))
	require.NoError(t, err)

	t.Run("unknown method", func(t *testing.T) {
		in := payment(res.ID, 100)
		in.Method = "Cheque"
		_, _, err := h.PostPayment(ctx, in)
		require.ErrorIs(t, err, ErrUnknownPaymentMethod)
	})
	t.Run("overpayment", func(t *testing.T) {
		_, _, err := h.PostPayment(ctx, payment(res.ID, 3000.01))
		require.ErrorIs(t, err, ErrInvalidAmount)
	})
	t.Run("non-positive amount", func(t *testing.T) {
		_, _, err := h.PostPayment(ctx, payment(res.ID, 0))
		var verr *utils.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "amount", verr.Field)
	})
	t.Run("unknown reservation", func(t *testing.T) {
		_, _, err := h.PostPayment(ctx, payment("RES9999", 100))
		require.ErrorIs(t, err, ErrReservationNotFound)
	})
	t.Run("cancelled reservation", func(t *testing.T) {
		other, err := h.CreateReservation(ctx, booking("1", 1))
		require.NoError(t, err)
		_, err = h.Cancel(ctx, other.ID)
		require.NoError(t, err)
		_, _, err = h.PostPayment(ctx, payment(other.ID, 100))
		require.ErrorIs(t, err, ErrReservationCancelled)
	})

	assert.Empty(t, h.PaymentsFor(res.ID))
}

func TestHotel_LedgerRollback(t *testing.T) {
	t.Parallel()

	h, _, _ := newTestHotel(t)
	ctx := context.Background()
	res, err := h.CreateReservation(ctx, booking("1", 1))
	require.NoError(t, err)
	_, _, err = h.PostPayment(ctx, payment(res.ID, 1000))
	require.NoError(t, err)

	h.nextPayment = 5000
	_, _, err = h.PostPayment(ctx, payment(res.ID, 500))
	require.Error(t, err)

	stored, err := h.Reservation(res.ID)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, stored.TotalPaid)
	assert.Equal(t, model.PaymentPartial, stored.PaymentStatus)
	assert.Len(t, h.Payments(), 1)
}

func TestHotel_ChargeReopensPaidReservation(t *testing.T) {
	t.Parallel()

	h, pub, _ := newTestHotel(t)
	ctx := context.Background()
	res, err := h.CreateReservation(ctx, booking("1", 1))
	require.NoError(t, err)
	_, _, err = h.PostPayment(ctx, payment(res.ID, 3000))
	require.NoError(t, err)

	res, err = h.PostCharge(ctx, ChargeInput{
		ReservationID: res.ID,
		Category:      "Minibar",
		Description:   "Snacks",
		Amount:        500,
	})
	require.NoError(t, err)
	assert.Equal(t, 500.0, res.AdditionalCharges)
	assert.Equal(t, 500.0, res.Balance())
	assert.Equal(t, 3500.0, res.TotalDue())
	assert.Equal(t, model.PaymentPartial, res.PaymentStatus)
	require.Len(t, res.Charges, 1)
	assert.Equal(t, "Snacks", res.Charges[0].Description)
	assert.Equal(t, queue.ChargePosted, pub.events[len(pub.events)-1].Type)

	_, err = h.PostCharge(ctx, ChargeInput{ReservationID: res.ID, Category: "Casino", Description: "Chips", Amount: 1})
	require.ErrorIs(t, err, ErrUnknownChargeCategory)
}

func TestHotel_PaymentSettlesCentResidue(t *testing.T) {
	t.Parallel()

	h, _, _ := newTestHotel(t)
	ctx := context.Background()
	res, err := h.CreateReservation(ctx, booking("1", 1))
	require.NoError(t, err)
	_, _, err = h.PostPayment(ctx, payment(res.ID, 1000.55))
	require.NoError(t, err)
	for _, amt := range []float64{0.30, 0.60} {
		_, err = h.PostCharge(ctx, ChargeInput{ReservationID: res.ID, Category: "Minibar", Description: "Water", Amount: amt})
		require.NoError(t, err)
	}

	res, err = h.Reservation(res.ID)
	require.NoError(t, err)
	displayed := math.Round(res.Balance()*100) / 100
	assert.Equal(t, 2000.35, displayed)

	res, _, err = h.PostPayment(ctx, payment(res.ID, displayed))
	require.NoError(t, err)
	assert.Equal(t, model.PaymentPaid, res.PaymentStatus)
	assert.Zero(t, res.Balance())
	assert.Equal(t, res.TotalDue(), res.TotalPaid)
	assert.Empty(t, h.UnpaidReservations())
	assert.Empty(t, h.OutstandingBalances().Reservations)

	_, _, err = h.PostPayment(ctx, payment(res.ID, 0.01))
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestHotel_NonFiniteAmountsRefused(t *testing.T) {
	t.Parallel()

	h, pub, _ := newTestHotel(t)
	ctx := context.Background()
	res, err := h.CreateReservation(ctx, booking("1", 1))
	require.NoError(t, err)
	_, _, err = h.PostPayment(ctx, payment(res.ID, 1000))
	require.NoError(t, err)

	requireAmountInvalid := func(t *testing.T, err error) {
		t.Helper()
		var verr *utils.ValidationError
		require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
		assert.Equal(t, "amount", verr.Field)
	}

	for _, amt := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		_, err := h.PostCharge(ctx, ChargeInput{ReservationID: res.ID, Category: "Laundry", Description: "Shirts", Amount: amt})
		requireAmountInvalid(t, err)
		_, _, err = h.PostPayment(ctx, payment(res.ID, amt))
		requireAmountInvalid(t, err)
	}

	_, err = h.Cancel(ctx, res.ID)
	require.NoError(t, err)
	for _, amt := range []float64{math.Inf(1), math.NaN()} {
		_, _, err := h.PostRefund(ctx, refund(res.ID, RefundCustom, amt))
		requireAmountInvalid(t, err)
	}

	stored, err := h.Reservation(res.ID)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, stored.TotalPaid)
	assert.Zero(t, stored.AdditionalCharges)
	assert.Equal(t, 2000.0, stored.Balance())
	assert.Len(t, h.PaymentsFor(res.ID), 1)
	assert.Equal(t, []queue.EventType{queue.ReservationCreated, queue.PaymentPosted, queue.ReservationCancelled}, pub.types())
}

func TestHotel_Refunds(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("full refund", func(t *testing.T) {
		h, pub, _ := newTestHotel(t)
		res, err := h.CreateReservation(ctx, booking("1", 1))
		require.NoError(t, err)
		_, _, err = h.PostPayment(ctx, payment(res.ID, 3000))
		require.NoError(t, err)

		_, _, err = h.PostRefund(ctx, refund(res.ID, RefundFull, 0))
		require.ErrorIs(t, err, ErrNotCancelled)

		_, err = h.Cancel(ctx, res.ID)
		require.NoError(t, err)

		in := refund(res.ID, RefundFull, 0)
		in.Reason = "Flight cancelled"
		res, p, err := h.PostRefund(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, -3000.0, p.Amount)
		assert.Equal(t, model.PaymentRecordRefunded, p.Status)
		assert.Equal(t, "REFUND - Full refund - Flight cancelled", p.Notes)
		assert.Zero(t, res.TotalPaid)
		assert.Equal(t, model.PaymentRefunded, res.PaymentStatus)
		assert.Equal(t, queue.RefundIssued, pub.events[len(pub.events)-1].Type)

		_, _, err = h.PostRefund(ctx, refund(res.ID, RefundFull, 0))
		require.ErrorIs(t, err, ErrNothingToRefund)
	})

	t.Run("half then custom", func(t *testing.T) {
		h, _, _ := newTestHotel(t)
		res, err := h.CreateReservation(ctx, booking("1", 1))
		require.NoError(t, err)
		_, _, err = h.PostPayment(ctx, payment(res.ID, 2000))
		require.NoError(t, err)
		_, err = h.Cancel(ctx, res.ID)
		require.NoError(t, err)

		res, p, err := h.PostRefund(ctx, refund(res.ID, RefundHalf, 0))
		require.NoError(t, err)
		assert.Equal(t, -1000.0, p.Amount)
		assert.Equal(t, 1000.0, res.TotalPaid)
		assert.Equal(t, model.PaymentPartialRefund, res.PaymentStatus)

		_, _, err = h.PostRefund(ctx, refund(res.ID, RefundCustom, 1000.5))
		require.ErrorIs(t, err, ErrInvalidAmount)

		res, _, err = h.PostRefund(ctx, refund(res.ID, RefundCustom, 1000))
		require.NoError(t, err)
		assert.Equal(t, model.PaymentRefunded, res.PaymentStatus)

		rep := h.Refunds()
		assert.Len(t, rep.Refunds, 2)
		assert.Equal(t, 2000.0, rep.Total)
	})
}

func TestRefundAmount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3000.0, RefundAmount(RefundFull, 3000, 10))
	assert.Equal(t, 1500.0, RefundAmount(RefundHalf, 3000, 10))
	assert.Equal(t, 10.0, RefundAmount(RefundCustom, 3000, 10))
	assert.Equal(t, "Partial refund (50%)", RefundHalf.String())
}

func TestHotel_Updates(t *testing.T) {
	t.Parallel()

	h, pub, _ := newTestHotel(t)
	ctx := context.Background()
	res, err := h.CreateReservation(ctx, booking("2", 2))
	require.NoError(t, err)
	require.Equal(t, 201, res.RoomNumber)
	_, _, err = h.PostPayment(ctx, payment(res.ID, 5000))
	require.NoError(t, err)

	t.Run("stay", func(t *testing.T) {
		got, err := h.UpdateStay(ctx, res.ID, june(1, 5))
		require.NoError(t, err)
		assert.Equal(t, 4, got.Nights)
		assert.Equal(t, 10000.0, got.TotalCost)
		assert.Equal(t, model.PaymentPartial, got.PaymentStatus)

		_, err = h.UpdateStay(ctx, res.ID, june(5, 1))
		require.ErrorIs(t, err, ErrInvalidStay)
	})

	t.Run("party size", func(t *testing.T) {
		_, err := h.UpdatePartySize(ctx, res.ID, 3)
		require.ErrorIs(t, err, ErrCapacityExceeded)

		got, err := h.UpdatePartySize(ctx, res.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, got.PartySize)
	})

	t.Run("room", func(t *testing.T) {
		got, err := h.ChangeRoom(ctx, res.ID, "1", 103)
		require.NoError(t, err)
		assert.Equal(t, 103, got.RoomNumber)
		assert.Equal(t, "Standard Single", got.RoomType)
		assert.Equal(t, 1500.0, got.PricePerNight)
		assert.Equal(t, 6000.0, got.TotalCost)
		assert.Equal(t, model.PaymentPartial, got.PaymentStatus)
		assert.True(t, h.IsAvailable(201, ""))
		assert.False(t, h.IsAvailable(103, ""))
		require.NoError(t, h.CheckConsistency())

		same, err := h.ChangeRoom(ctx, res.ID, "1", 103)
		require.NoError(t, err)
		assert.Equal(t, 103, same.RoomNumber)

		_, err = h.ChangeRoom(ctx, res.ID, "1", 201)
		require.ErrorIs(t, err, ErrRoomNotInType)
	})

	t.Run("contact", func(t *testing.T) {
		got, err := h.UpdateContact(ctx, res.ID, ContactInput{Email: "m.santos@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "m.santos@example.com", got.Guest.Email)
		assert.Equal(t, "09171234567", got.Guest.Phone)

		_, err = h.UpdateContact(ctx, res.ID, ContactInput{Phone: "12"})
		var verr *utils.ValidationError
		require.True(t, errors.As(err, &verr))
	})

	t.Run("cancelled reservations keep contact edits only", func(t *testing.T) {
		_, err := h.Cancel(ctx, res.ID)
		require.NoError(t, err)
		_, err = h.Cancel(ctx, res.ID)
		require.ErrorIs(t, err, ErrAlreadyCancelled)

		_, err = h.UpdateStay(ctx, res.ID, june(2, 4))
		require.ErrorIs(t, err, ErrReservationCancelled)
		_, err = h.ChangeRoom(ctx, res.ID, "2", 0)
		require.ErrorIs(t, err, ErrReservationCancelled)

		got, err := h.UpdateContact(ctx, res.ID, ContactInput{Phone: "09999999999"})
		require.NoError(t, err)
		assert.Equal(t, "09999999999", got.Guest.Phone)
	})

	assert.Contains(t, pub.types(), queue.ReservationUpdated)
	assert.Contains(t, pub.types(), queue.ReservationCancelled)
}

func TestHotel_DeleteKeepsLedger(t *testing.T) {
	t.Parallel()

	h, pub, hook := newTestHotel(t)
	ctx := context.Background()
	res, err := h.CreateReservation(ctx, booking("1", 1))
	require.NoError(t, err)
	_, _, err = h.PostPayment(ctx, payment(res.ID, 500))
	require.NoError(t, err)

	out, err := h.Delete(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, out.OrphanedPayments)
	assert.Equal(t, res.ID, out.Reservation.ID)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "reservation deleted with payment history", entry.Message)
	assert.Equal(t, queue.ReservationDeleted, pub.events[len(pub.events)-1].Type)

	_, err = h.Reservation(res.ID)
	require.ErrorIs(t, err, ErrReservationNotFound)
	assert.Len(t, h.PaymentsFor(res.ID), 1)
	assert.True(t, h.IsAvailable(101, ""))
	require.NoError(t, h.CheckConsistency())

	_, err = h.Delete(ctx, res.ID)
	require.ErrorIs(t, err, ErrReservationNotFound)
}

func TestHotel_PublishFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	h, pub, hook := newTestHotel(t)
	pub.err = errors.New("broker down")

	res, err := h.CreateReservation(context.Background(), booking("1", 1))
	require.NoError(t, err)
	assert.Equal(t, "RES1000", res.ID)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "event publish failed", entry.Message)
}

func TestHotel_Options(t *testing.T) {
	t.Parallel()

	logger, _ := test.NewNullLogger()
	h := NewHotel(
		WithLogger(logger),
		WithIDStart(1, 10),
		WithRoomTypes([]model.RoomType{{Key: "A", Name: "Cabin", Price: 100, Capacity: 2, Rooms: []int{1}}}),
	)
	in := booking("A", 2)
	res, err := h.CreateReservation(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "RES1", res.ID)
	assert.Equal(t, 200.0, res.TotalCost)

	_, p, err := h.PostPayment(context.Background(), payment(res.ID, 50))
	require.NoError(t, err)
	assert.Equal(t, "PAY10", p.ID)

	got, err := h.Payment("pay10")
	require.NoError(t, err)
	assert.Equal(t, p, got)
	_, err = h.Payment("PAY11")
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}
