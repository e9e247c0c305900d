package handler

import (
	"strconv"

	"github.com/valyala/fasttemplate"

	"github.com/iliyamo/hotel-reservation/internal/model"
)

// Screens are fasttemplate templates with {{tag}} placeholders.  Every value
// is rendered to a string before substitution.
var (
	reservationDetails = fasttemplate.New(`Reservation ID: {{id}}
Status: {{status}}

Guest Information:
  Name: {{guest}}
  Phone: {{phone}}
  Email: {{email}}
  Number of Guests: {{party}}

Room Information:
  Room Number: {{room}}
  Room Type: {{room_type}}
  Price per Night: {{price}}

Stay Information:
  Check-in: {{check_in}} at {{check_in_time}}
  Check-out: {{check_out}} at {{check_out_time}}
  Number of Nights: {{nights}}

Billing Information:
  Room Charges: {{room_charges}}
{{extras}}  Total Amount: {{total}}
  Amount Paid: {{paid}}
  Balance: {{balance}}
  Payment Status: {{payment_status}}
`, "{{", "}}")

	reservationSummary = fasttemplate.New(`ID: {{id}} | Guest: {{guest}}
Room: {{room}} | Type: {{room_type}}
Check-in: {{check_in}} | Nights: {{nights}} | Total: {{total}}
Status: {{status}} | Payment: {{payment_status}}
`, "{{", "}}")

	paymentReceipt = fasttemplate.New(`{{title}}
Payment ID: {{id}}
Reservation ID: {{reservation_id}}

Guest Name: {{guest}}
Room Number: {{room}}

Amount: {{amount}}
Payment Method: {{method}}
Reference: {{reference}}
Date: {{date}} at {{time}}
Notes: {{notes}}

Updated Billing:
  Total Bill: {{total}}
  Total Paid: {{paid}}
  Balance: {{balance}}
  Status: {{payment_status}}
`, "{{", "}}")

	paymentLine = fasttemplate.New(`ID: {{id}} | Res: {{reservation_id}} | Amount: {{amount}}
Guest: {{guest}} | Method: {{method}} | Status: {{status}}
Date: {{date}} {{time}}
`, "{{", "}}")
)

func (d *Desk) renderDetails(r model.Reservation) string {
	extras := ""
	if r.AdditionalCharges > 0 {
		extras = "  Additional Charges: " + d.money(r.AdditionalCharges) + "\n"
	}
	return reservationDetails.ExecuteString(map[string]any{
		"id":             r.ID,
		"status":         d.Out.Badge(string(r.Status)),
		"guest":          r.Guest.Name,
		"phone":          r.Guest.Phone,
		"email":          r.Guest.Email,
		"party":          strconv.Itoa(r.PartySize),
		"room":           strconv.Itoa(r.RoomNumber),
		"room_type":      r.RoomType,
		"price":          d.money(r.PricePerNight),
		"check_in":       r.Stay.CheckIn.String(),
		"check_in_time":  r.Stay.CheckInTime.String(),
		"check_out":      r.Stay.CheckOut.String(),
		"check_out_time": r.Stay.CheckOutTime.String(),
		"nights":         strconv.Itoa(r.Nights),
		"room_charges":   d.money(r.TotalCost),
		"extras":         extras,
		"total":          d.money(r.TotalDue()),
		"paid":           d.money(r.TotalPaid),
		"balance":        d.money(r.Balance()),
		"payment_status": d.Out.Badge(string(r.PaymentStatus)),
	})
}

func (d *Desk) renderSummary(r model.Reservation) string {
	return reservationSummary.ExecuteString(map[string]any{
		"id":             pad(r.ID, 15),
		"guest":          r.Guest.Name,
		"room":           pad(strconv.Itoa(r.RoomNumber), 12),
		"room_type":      r.RoomType,
		"check_in":       pad(r.Stay.CheckIn.String(), 12),
		"nights":         pad(strconv.Itoa(r.Nights), 5),
		"total":          d.money(r.TotalCost),
		"status":         pad(string(r.Status), 12),
		"payment_status": string(r.PaymentStatus),
	})
}

func (d *Desk) renderReceipt(title string, p model.Payment, r model.Reservation) string {
	return paymentReceipt.ExecuteString(map[string]any{
		"title":          title,
		"id":             p.ID,
		"reservation_id": p.ReservationID,
		"guest":          p.GuestName,
		"room":           strconv.Itoa(r.RoomNumber),
		"amount":         d.money(p.Amount),
		"method":         p.Method,
		"reference":      p.Reference,
		"date":           p.Date.String(),
		"time":           p.Time.String(),
		"notes":          p.Notes,
		"total":          d.money(r.TotalDue()),
		"paid":           d.money(r.TotalPaid),
		"balance":        d.money(r.Balance()),
		"payment_status": string(r.PaymentStatus),
	})
}

func (d *Desk) renderPaymentLine(p model.Payment) string {
	status := string(p.Status)
	if p.IsRefund() {
		status = "REFUND"
	}
	return paymentLine.ExecuteString(map[string]any{
		"id":             pad(p.ID, 15),
		"reservation_id": pad(p.ReservationID, 15),
		"amount":         d.money(p.Amount),
		"guest":          pad(p.GuestName, 25),
		"method":         pad(p.Method, 15),
		"status":         status,
		"date":           p.Date.String(),
		"time":           p.Time.String(),
	})
}

// pad left-aligns s in a column of width runes.
func pad(s string, width int) string {
	for n := len([]rune(s)); n < width; n++ {
		s += " "
	}
	return s
}
