package service

import (
	"context"
	"math"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"pgregory.net/rapid"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// TestHotel_StateInvariants drives random operation sequences and checks
// after every step that billing fields agree with the ledger, the room
// index agrees with the store and no room is held twice.
func TestHotel_StateInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		logger, _ := test.NewNullLogger()
		h := NewHotel(WithLogger(logger), WithPublisher(&recordingPublisher{}))
		ctx := context.Background()
		typeKeys := []string{"1", "2", "3", "4", "5"}

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			op := rapid.IntRange(0, 6).Draw(t, "op")
			var id string
			if all := h.Reservations(); len(all) > 0 {
				id = rapid.SampledFrom(ids(all)).Draw(t, "id")
			}
			amount := float64(rapid.IntRange(1, 800000).Draw(t, "cents")) / 100
			if id != "" && rapid.Bool().Draw(t, "settle") {
				if res, err := h.Reservation(id); err == nil && res.Balance() > 0 {
					amount = math.Round(res.Balance()*100) / 100
				}
			}

			switch {
			case op == 0 || id == "":
				in := booking(rapid.SampledFrom(typeKeys).Draw(t, "type"), 1)
				in.Stay = june(1, rapid.IntRange(2, 9).Draw(t, "checkout"))
				_, _ = h.CreateReservation(ctx, in)
			case op == 1:
				_, _, _ = h.PostPayment(ctx, payment(id, amount))
			case op == 2:
				_, _ = h.PostCharge(ctx, ChargeInput{ReservationID: id, Category: "Laundry", Description: "Shirts", Amount: amount})
			case op == 3:
				_, _ = h.Cancel(ctx, id)
			case op == 4:
				preset := RefundPreset(rapid.IntRange(1, 3).Draw(t, "preset"))
				_, _, _ = h.PostRefund(ctx, refund(id, preset, amount))
			case op == 5:
				_, _ = h.ChangeRoom(ctx, id, rapid.SampledFrom(typeKeys).Draw(t, "newType"), 0)
			default:
				_, _ = h.UpdateStay(ctx, id, june(1, rapid.IntRange(2, 9).Draw(t, "newCheckout")))
			}
			checkInvariants(t, h)
		}
	})
}

func checkInvariants(t *rapid.T, h *Hotel) {
	if err := h.CheckConsistency(); err != nil {
		t.Fatalf("index drift: %v", err)
	}
	held := map[int]string{}
	for _, r := range h.Reservations() {
		if r.Balance() < 0 {
			t.Fatalf("%s: negative balance %.2f", r.ID, r.Balance())
		}
		if want := math.Max(0, r.TotalCost+r.AdditionalCharges-r.TotalPaid); r.Balance() != want {
			t.Fatalf("%s: balance %.2f, want %.2f", r.ID, r.Balance(), want)
		}
		if r.Nights < 1 || r.TotalCost != r.PricePerNight*float64(r.Nights) {
			t.Fatalf("%s: cost %.2f for %d nights at %.2f", r.ID, r.TotalCost, r.Nights, r.PricePerNight)
		}
		charges := 0.0
		for _, c := range r.Charges {
			charges += c.Amount
		}
		if math.Abs(charges-r.AdditionalCharges) > 1e-9 {
			t.Fatalf("%s: charges %.2f, recorded %.2f", r.ID, charges, r.AdditionalCharges)
		}
		ledger := 0.0
		for _, p := range h.PaymentsFor(r.ID) {
			ledger += p.Amount
		}
		if math.Abs(ledger-r.TotalPaid) > 0.005 {
			t.Fatalf("%s: ledger %.2f, total paid %.2f", r.ID, ledger, r.TotalPaid)
		}
		if r.TotalPaid < 0 {
			t.Fatalf("%s: negative total paid", r.ID)
		}
		if !r.IsActive() {
			continue
		}
		if r.Balance() < model.SettleTolerance && r.PaymentStatus != model.PaymentPaid {
			t.Fatalf("%s: balance %g left with status %s", r.ID, r.Balance(), r.PaymentStatus)
		}
		if r.PaymentStatus != r.DerivePaymentStatus() {
			t.Fatalf("%s: status %s, derived %s", r.ID, r.PaymentStatus, r.DerivePaymentStatus())
		}
		if other, ok := held[r.RoomNumber]; ok {
			t.Fatalf("room %d held by %s and %s", r.RoomNumber, other, r.ID)
		}
		held[r.RoomNumber] = r.ID
	}
}
