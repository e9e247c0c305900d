package handler

import (
	"context"

	"github.com/iliyamo/hotel-reservation/internal/console"
	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/service"
)

// ProcessPayment takes a payment against an active reservation that still
// owes money.
func (d *Desk) ProcessPayment(ctx context.Context) error {
	d.Out.Clear()
	d.Out.Header("PROCESS PAYMENT")

	unpaid := d.Hotel.UnpaidReservations()
	if len(unpaid) == 0 {
		d.Out.Success("All active reservations are fully paid!")
		return nil
	}
	res, err := d.pickReservation(ctx, "Reservations with Outstanding Balance", unpaid)
	if err != nil {
		return err
	}
	d.Out.Section("RESERVATION DETAILS")
	d.Out.Printf("%s", d.renderDetails(res))

	d.Out.Section("PAYMENT PROCESSING")
	d.Out.Printf("\nOutstanding Balance: %s\n", d.money(res.Balance()))
	in := service.PaymentInput{ReservationID: res.ID}
	if in.Amount, err = d.In.Amount("Enter payment amount: ", 0.01, res.Balance()); err != nil {
		return err
	}
	if in.Method, err = d.chooseMethod("Payment Methods:"); err != nil {
		return err
	}
	d.Out.Println("\nPayment Reference (optional, press Enter to skip):")
	if in.Reference, err = d.In.Optional("Reference Number/Transaction ID: "); err != nil {
		return err
	}
	d.Out.Println("\nPayment Date and Time:")
	if in.Date, in.Time, err = d.askMoment("Payment"); err != nil {
		return err
	}
	d.Out.Println("\nPayment Notes (optional, press Enter to skip):")
	if in.Notes, err = d.In.Optional("Notes: "); err != nil {
		return err
	}

	res, p, err := d.Hotel.PostPayment(ctx, in)
	if err != nil {
		return err
	}
	d.Out.Section("PAYMENT SUCCESSFUL!")
	d.Out.Printf("%s", d.renderReceipt("PAYMENT RECEIPT", p, res))
	return nil
}

// ListPayments prints the whole ledger.
func (d *Desk) ListPayments(context.Context) error {
	d.Out.Clear()
	d.Out.Header("VIEW ALL PAYMENTS")

	all := d.Hotel.Payments()
	collected := 0.0
	for _, p := range all {
		if p.Status == model.PaymentCompleted {
			collected += p.Amount
		}
	}
	d.Out.Printf("\nTotal Payments: %d\n", len(all))
	d.Out.Printf("Total Revenue Collected: %s\n", d.money(collected))
	d.Out.Separator()
	for _, p := range all {
		d.Out.Printf("%s", d.renderPaymentLine(p))
		d.Out.Separator()
	}
	return nil
}

// ReservationPayments prints one reservation with its payment history.
func (d *Desk) ReservationPayments(ctx context.Context) error {
	d.Out.Clear()
	d.Out.Header("VIEW RESERVATION PAYMENTS")

	res, err := d.pickReservation(ctx, "Recent Reservations", d.Hotel.Reservations())
	if err != nil {
		return err
	}
	d.Out.Separator()
	d.Out.Printf("%s", d.renderDetails(res))

	d.Out.Section("PAYMENT HISTORY")
	history := d.Hotel.PaymentsFor(res.ID)
	if len(history) == 0 {
		d.Out.Println("No payments recorded for this reservation.")
		return nil
	}
	for i, p := range history {
		d.Out.Printf("\nPayment #%d\n", i+1)
		d.Out.Printf("%s", d.renderPaymentLine(p))
		if p.Notes != "N/A" {
			d.Out.Printf("Notes: %s\n", p.Notes)
		}
		d.Out.Separator()
	}
	if len(res.Charges) > 0 {
		d.Out.Section("ADDITIONAL CHARGES")
		for _, c := range res.Charges {
			d.Out.Printf("%-15s %-40s %14s\n", c.Category, c.Description, d.money(c.Amount))
		}
	}
	return nil
}

// AddCharge posts an extra to an active reservation's bill.
func (d *Desk) AddCharge(ctx context.Context) error {
	d.Out.Clear()
	d.Out.Header("ADD ADDITIONAL CHARGES")

	active := d.Hotel.ActiveReservations()
	if len(active) == 0 {
		d.Out.Println("\nNo active reservations found.")
		return nil
	}
	res, err := d.pickReservation(ctx, "Active Reservations", active)
	if err != nil {
		return err
	}
	d.Out.Separator()
	d.Out.Printf("%s", d.renderDetails(res))

	d.Out.Section("ADD CHARGES")
	categories := d.Hotel.ChargeCategories()
	i, err := d.In.Choose("Charge Categories:", categories)
	if err != nil {
		return err
	}
	in := service.ChargeInput{ReservationID: res.ID, Category: categories[i]}
	if in.Description, err = d.In.Text("Description: ", 2, 100); err != nil {
		return err
	}
	if in.Amount, err = d.In.Amount("Amount: ", 0.01, 0); err != nil {
		return err
	}

	res, err = d.Hotel.PostCharge(ctx, in)
	if err != nil {
		return err
	}
	d.Out.Section("CHARGE ADDED SUCCESSFULLY!")
	d.Out.Printf("Category: %s\nDescription: %s\nAmount: %s\n", in.Category, in.Description, d.money(in.Amount))
	d.Out.Printf("\nNew Additional Charges: %s\n", d.money(res.AdditionalCharges))
	d.Out.Printf("New Balance: %s\n", d.money(res.Balance()))
	d.Out.Printf("Payment Status: %s\n", d.Out.Badge(string(res.PaymentStatus)))
	return nil
}

// IssueRefund returns money for a cancelled reservation.
func (d *Desk) IssueRefund(ctx context.Context) error {
	d.Out.Clear()
	d.Out.Header("ISSUE REFUND")

	refundable := d.Hotel.RefundableReservations()
	if len(refundable) == 0 {
		d.Out.Println("\nNo cancelled reservations with payments found.")
		return nil
	}
	res, err := d.pickReservation(ctx, "Cancelled Reservations with Payments", refundable)
	if err != nil {
		return err
	}
	d.Out.Separator()
	d.Out.Printf("%s", d.renderDetails(res))

	d.Out.Section("REFUND PROCESSING")
	d.Out.Printf("\nTotal Paid: %s\n", d.money(res.TotalPaid))
	d.Out.Println("\nRefund Policy:")
	d.Out.Println("  - Full Refund (100%): Cancellation 7+ days before check-in")
	d.Out.Println("  - Partial Refund (50%): Cancellation 3-6 days before check-in")
	d.Out.Println("  - No Refund: Cancellation less than 3 days before check-in")

	presets := []service.RefundPreset{service.RefundFull, service.RefundHalf, service.RefundCustom}
	options := make([]string, 0, len(presets)+1)
	for _, p := range presets {
		options = append(options, p.String())
	}
	choice, err := d.In.Choose("Refund Options:", append(options, "No Refund"))
	if err != nil {
		return err
	}
	if choice == len(presets) {
		return console.ErrAborted
	}

	in := service.RefundInput{ReservationID: res.ID, Preset: presets[choice]}
	if in.Preset == service.RefundCustom {
		if in.Amount, err = d.In.Amount("Enter refund amount: ", 0.01, res.TotalPaid); err != nil {
			return err
		}
	}
	if in.Method, err = d.chooseMethod("Refund Method:"); err != nil {
		return err
	}
	if in.Reference, err = d.In.Optional("Reference Number/Transaction ID: "); err != nil {
		return err
	}
	d.Out.Println("\nRefund Date and Time:")
	if in.Date, in.Time, err = d.askMoment("Refund"); err != nil {
		return err
	}
	if in.Reason, err = d.In.Optional("Reason (optional): "); err != nil {
		return err
	}

	res, p, err := d.Hotel.PostRefund(ctx, in)
	if err != nil {
		return err
	}
	d.Out.Section("REFUND PROCESSED SUCCESSFULLY!")
	d.Out.Printf("%s", d.renderReceipt("REFUND RECEIPT", p, res))
	return nil
}
