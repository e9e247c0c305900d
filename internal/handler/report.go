package handler

import (
	"context"

	"github.com/iliyamo/hotel-reservation/internal/utils"
)

// PaymentReports offers the ledger reports.
func (d *Desk) PaymentReports(context.Context) error {
	d.Out.Clear()
	d.Out.Header("PAYMENT REPORTS")

	i, err := d.In.Choose("Report Options:", []string{
		"Overall Payment Summary",
		"Payment Method Analysis",
		"Outstanding Balances",
		"Refund Report",
	})
	if err != nil {
		return err
	}
	switch i {
	case 0:
		d.paymentSummary()
	case 1:
		d.methodAnalysis()
	case 2:
		d.outstandingBalances()
	default:
		d.refundReport()
	}
	return nil
}

func (d *Desk) paymentSummary() {
	s := d.Hotel.PaymentSummary()
	d.Out.Section("OVERALL PAYMENT SUMMARY")
	d.Out.Printf("\nTotal Payments Received: %s\n", d.money(s.PaymentsReceived))
	d.Out.Printf("Total Refunds Issued: %s\n", d.money(s.RefundsIssued))
	d.Out.Printf("Net Revenue: %s\n", d.money(s.NetRevenue))
	d.Out.Printf("\nTotal Transactions: %d\n", s.Transactions)
	if s.PaymentCount > 0 {
		d.Out.Printf("Average Payment: %s\n", d.money(s.AveragePayment))
	} else {
		d.Out.Println("Average Payment: N/A")
	}
	d.Out.Println("\nPayment Status Distribution:")
	d.Out.Printf("  Fully Paid: %d reservations\n", s.Paid)
	d.Out.Printf("  Partially Paid: %d reservations\n", s.Partial)
	d.Out.Printf("  Pending Payment: %d reservations\n", s.Pending)
	d.Out.Printf("  Refunded: %d reservations\n", s.Refunded)
}

func (d *Desk) methodAnalysis() {
	d.Out.Section("PAYMENT METHOD ANALYSIS")
	rows := d.Hotel.MethodBreakdown()
	if len(rows) == 0 {
		d.Out.Println("\nNo payment data available.")
		return
	}
	d.Out.Println("\nPayment Method Breakdown:")
	d.Out.Separator()
	d.Out.Printf("%-20s %-10s %-20s %-15s\n", "Method", "Count", "Amount", "Percentage")
	d.Out.Separator()
	count, total := 0, 0.0
	for _, r := range rows {
		d.Out.Printf("%-20s %-10d %17s   %9s\n", r.Method, r.Count, d.money(r.Amount), utils.Percent(r.Share))
		count += r.Count
		total += r.Amount
	}
	d.Out.Separator()
	d.Out.Printf("%-20s %-10d %17s   %9s\n", "TOTAL", count, d.money(total), utils.Percent(100))
}

func (d *Desk) outstandingBalances() {
	d.Out.Section("OUTSTANDING BALANCES")
	rep := d.Hotel.OutstandingBalances()
	if len(rep.Reservations) == 0 {
		d.Out.Success("No outstanding balances! All active reservations are paid.")
		return
	}
	d.Out.Printf("\nTotal Outstanding: %s\n", d.money(rep.Total))
	d.Out.Printf("Number of Reservations: %d\n", len(rep.Reservations))
	d.Out.Separator()
	d.Out.Printf("\n%-15s %-25s %-15s %-15s %-15s\n", "Reservation", "Guest", "Total", "Paid", "Balance")
	d.Out.Separator()
	for _, r := range rep.Reservations {
		d.Out.Printf("%-15s %-25s %14s %14s %14s\n", r.ID, r.Guest.Name, d.money(r.TotalDue()), d.money(r.TotalPaid), d.money(r.Balance()))
	}
}

func (d *Desk) refundReport() {
	d.Out.Section("REFUND REPORT")
	rep := d.Hotel.Refunds()
	if len(rep.Refunds) == 0 {
		d.Out.Println("\nNo refunds have been issued.")
		return
	}
	d.Out.Printf("\nTotal Refunds Issued: %s\n", d.money(rep.Total))
	d.Out.Printf("Number of Refunds: %d\n", len(rep.Refunds))
	d.Out.Separator()
	d.Out.Printf("\n%-15s %-15s %-25s %-15s\n", "Refund ID", "Reservation", "Guest", "Amount")
	d.Out.Separator()
	for _, p := range rep.Refunds {
		d.Out.Printf("%-15s %-15s %-25s %14s\n", p.ID, p.ReservationID, p.GuestName, d.money(-p.Amount))
	}
}

// SystemReports offers occupancy, revenue and guest statistics.
func (d *Desk) SystemReports(context.Context) error {
	d.Out.Clear()
	d.Out.Header("GENERATE REPORTS")

	i, err := d.In.Choose("Report Options:", []string{
		"Occupancy Report",
		"Revenue Report",
		"Guest Statistics",
	})
	if err != nil {
		return err
	}
	switch i {
	case 0:
		d.occupancyReport()
	case 1:
		d.revenueReport()
	default:
		d.guestStatistics()
	}
	return nil
}

func (d *Desk) occupancyReport() {
	rep := d.Hotel.Occupancy()
	d.Out.Section("OCCUPANCY REPORT")
	d.Out.Printf("Total Rooms: %d\n", rep.TotalRooms)
	d.Out.Printf("Occupied Rooms: %d\n", rep.Occupied)
	d.Out.Printf("Available Rooms: %d\n", rep.Available)
	d.Out.Printf("Occupancy Rate: %s\n", utils.Percent(rep.Rate))
	d.Out.Println("\nOccupancy by Room Type:")
	for _, t := range rep.ByType {
		d.Out.Printf("  %s: %d/%d occupied\n", t.Type, t.Occupied, t.Total)
	}
}

func (d *Desk) revenueReport() {
	rep := d.Hotel.Revenue()
	d.Out.Section("REVENUE REPORT")
	d.Out.Printf("Total Reservations: %d\n", rep.Reservations)
	d.Out.Printf("Active Reservations: %d\n", rep.Active)
	d.Out.Printf("Cancelled Reservations: %d\n", rep.Cancelled)
	d.Out.Printf("\nTotal Revenue (All): %s\n", d.money(rep.Total))
	d.Out.Printf("Active Revenue: %s\n", d.money(rep.ActiveTotal))
	d.Out.Printf("Average per Reservation: %s\n", d.money(rep.Average))
	d.Out.Println("\nRevenue by Room Type:")
	for _, t := range rep.ByType {
		d.Out.Printf("  %s: %s\n", t.Type, d.money(t.Revenue))
	}
}

func (d *Desk) guestStatistics() {
	rep := d.Hotel.GuestStats()
	d.Out.Section("GUEST STATISTICS")
	d.Out.Printf("Total Guests (Active Reservations): %d\n", rep.TotalGuests)
	d.Out.Printf("Average Guests per Reservation: %.2f\n", rep.Average)
	d.Out.Println("\nGuest Count Distribution:")
	for _, c := range rep.Distribution {
		d.Out.Printf("  %d guest(s): %d reservation(s)\n", c.PartySize, c.Reservations)
	}
}

// RoomTypes prints the catalog with current availability.
func (d *Desk) RoomTypes(context.Context) error {
	d.Out.Clear()
	d.Out.Header("ROOM TYPES & PRICES")
	d.printRoomTypes()
	d.Out.Println()
	for _, t := range d.Hotel.Catalog().Types() {
		free, err := d.Hotel.AvailableRooms(t.Key)
		if err != nil {
			return err
		}
		d.Out.Printf("%-25s %d of %d room(s) free\n", t.Name, len(free), len(t.Rooms))
	}
	return nil
}

// About describes the desk.
func (d *Desk) About(context.Context) error {
	d.Out.Clear()
	d.Out.Header("ABOUT THE SYSTEM")
	d.Out.Println("\nHotel Reservation Desk")
	d.Out.Separator()
	d.Out.Println("\nFEATURES:")
	d.Out.Println("  • Room types with capacities, nightly prices and room pools")
	d.Out.Println("  • Reservations: create, view, update, cancel, delete, search and sort")
	d.Out.Println("  • Payments with multiple methods, references and notes")
	d.Out.Println("  • Additional charges (room service, minibar, laundry and more)")
	d.Out.Println("  • Refunds for cancelled reservations (full, 50% or custom)")
	d.Out.Println("  • Payment, occupancy, revenue and guest reports")
	d.Out.Println("\nAll data is kept in memory and is lost when the desk exits.")
	return nil
}
