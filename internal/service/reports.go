package service

import (
	"sort"
	"strings"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// PaymentSummary totals the ledger and counts reservations per payment
// status.
type PaymentSummary struct {
	PaymentsReceived float64
	RefundsIssued    float64
	NetRevenue       float64
	Transactions     int
	PaymentCount     int
	AveragePayment   float64 // zero when nothing was paid

	Paid     int
	Partial  int
	Pending  int
	Refunded int // Refunded and Partial Refund
}

// PaymentSummary builds the overall payment report.
func (h *Hotel) PaymentSummary() PaymentSummary {
	var s PaymentSummary
	for _, p := range h.payments.All() {
		s.Transactions++
		if p.IsRefund() {
			s.RefundsIssued -= p.Amount
		} else {
			s.PaymentsReceived += p.Amount
			s.PaymentCount++
		}
		s.NetRevenue += p.Amount
	}
	if s.PaymentCount > 0 {
		s.AveragePayment = s.PaymentsReceived / float64(s.PaymentCount)
	}
	for _, r := range h.reservations.All() {
		switch r.PaymentStatus {
		case model.PaymentPaid:
			s.Paid++
		case model.PaymentPartial:
			s.Partial++
		case model.PaymentPending:
			s.Pending++
		default:
			if strings.Contains(string(r.PaymentStatus), "Refund") {
				s.Refunded++
			}
		}
	}
	return s
}

// MethodTotal is one row of the payment method breakdown.
type MethodTotal struct {
	Method string
	Count  int
	Amount float64
	Share  float64 // percent of all payments received
}

// MethodBreakdown groups payments (refunds excluded) by method, largest
// amount first.  Methods with equal totals keep first-use order.
func (h *Hotel) MethodBreakdown() []MethodTotal {
	var rows []MethodTotal
	idx := map[string]int{}
	total := 0.0
	for _, p := range h.payments.All() {
		if p.IsRefund() {
			continue
		}
		i, ok := idx[p.Method]
		if !ok {
			i = len(rows)
			idx[p.Method] = i
			rows = append(rows, MethodTotal{Method: p.Method})
		}
		rows[i].Count++
		rows[i].Amount += p.Amount
		total += p.Amount
	}
	for i := range rows {
		if total > 0 {
			rows[i].Share = rows[i].Amount / total * 100
		}
	}
	bubbleSort(rows, func(a, b MethodTotal) bool { return a.Amount < b.Amount })
	return rows
}

// OutstandingReport lists active reservations that still owe money,
// highest balance first.
type OutstandingReport struct {
	Reservations []model.Reservation
	Total        float64
}

// OutstandingBalances builds the outstanding balances report.
func (h *Hotel) OutstandingBalances() OutstandingReport {
	var rep OutstandingReport
	rep.Reservations = h.UnpaidReservations()
	for _, r := range rep.Reservations {
		rep.Total += r.Balance()
	}
	bubbleSort(rep.Reservations, func(a, b model.Reservation) bool { return a.Balance() < b.Balance() })
	return rep
}

// RefundReport lists every refund entry in posting order.
type RefundReport struct {
	Refunds []model.Payment
	Total   float64 // positive sum of refunded amounts
}

// Refunds builds the refund report.
func (h *Hotel) Refunds() RefundReport {
	var rep RefundReport
	for _, p := range h.payments.All() {
		if p.IsRefund() {
			rep.Refunds = append(rep.Refunds, p)
			rep.Total -= p.Amount
		}
	}
	return rep
}

// TypeOccupancy is the occupied count for one room type.
type TypeOccupancy struct {
	Type     string
	Occupied int
	Total    int
}

// OccupancyReport summarises which rooms are held by active reservations.
type OccupancyReport struct {
	TotalRooms int
	Occupied   int
	Available  int
	Rate       float64 // percent
	ByType     []TypeOccupancy
}

// Occupancy builds the occupancy report from current active bookings.
func (h *Hotel) Occupancy() OccupancyReport {
	rep := OccupancyReport{TotalRooms: h.catalog.TotalRooms()}
	for _, t := range h.catalog.Types() {
		row := TypeOccupancy{Type: t.Name, Total: len(t.Rooms)}
		for _, room := range t.Rooms {
			if !h.reservations.IsAvailable(room, "") {
				row.Occupied++
			}
		}
		rep.Occupied += row.Occupied
		rep.ByType = append(rep.ByType, row)
	}
	rep.Available = rep.TotalRooms - rep.Occupied
	if rep.TotalRooms > 0 {
		rep.Rate = float64(rep.Occupied) / float64(rep.TotalRooms) * 100
	}
	return rep
}

// TypeRevenue is booked room revenue for one room type.
type TypeRevenue struct {
	Type    string
	Revenue float64
}

// RevenueReport summarises booked room cost across reservations.
type RevenueReport struct {
	Reservations int
	Active       int
	Cancelled    int
	Total        float64
	ActiveTotal  float64
	Average      float64
	ByType       []TypeRevenue // types with no revenue are omitted
}

// Revenue builds the revenue report.  Amounts are room cost only; extras
// and payments are covered by the payment reports.
func (h *Hotel) Revenue() RevenueReport {
	var rep RevenueReport
	byType := map[string]float64{}
	for _, r := range h.reservations.All() {
		rep.Reservations++
		rep.Total += r.TotalCost
		byType[r.RoomType] += r.TotalCost
		if r.IsActive() {
			rep.Active++
			rep.ActiveTotal += r.TotalCost
		} else {
			rep.Cancelled++
		}
	}
	if rep.Reservations > 0 {
		rep.Average = rep.Total / float64(rep.Reservations)
	}
	for _, t := range h.catalog.Types() {
		if v := byType[t.Name]; v > 0 {
			rep.ByType = append(rep.ByType, TypeRevenue{Type: t.Name, Revenue: v})
		}
	}
	return rep
}

// PartySizeCount is how many active reservations have a given party size.
type PartySizeCount struct {
	PartySize    int
	Reservations int
}

// GuestReport summarises guests across active reservations.
type GuestReport struct {
	TotalGuests  int
	Average      float64
	Distribution []PartySizeCount // ascending by party size
}

// GuestStats builds the guest statistics report.
func (h *Hotel) GuestStats() GuestReport {
	var rep GuestReport
	counts := map[int]int{}
	active := 0
	for _, r := range h.reservations.All() {
		if !r.IsActive() {
			continue
		}
		active++
		rep.TotalGuests += r.PartySize
		counts[r.PartySize]++
	}
	if active > 0 {
		rep.Average = float64(rep.TotalGuests) / float64(active)
	}
	for size, n := range counts {
		rep.Distribution = append(rep.Distribution, PartySizeCount{PartySize: size, Reservations: n})
	}
	sort.Slice(rep.Distribution, func(i, j int) bool {
		return rep.Distribution[i].PartySize < rep.Distribution[j].PartySize
	})
	return rep
}
