package model

// PaymentRecordStatus marks a ledger entry as a payment or a refund.
type PaymentRecordStatus string

const (
	PaymentCompleted      PaymentRecordStatus = "Completed"
	PaymentRecordRefunded PaymentRecordStatus = "Refunded"
)

// Payment is an append-only ledger entry against a reservation.  Refunds
// are stored as entries with a negative Amount; existing entries are never
// edited.
//
// Fields:
//  ID            – PAY<n>, unique and monotonically assigned.
//  ReservationID – owning reservation (may outlive it after a delete).
//  GuestName     – guest name at posting time.
//  Amount        – positive for payments, negative for refunds.
//  Method        – payment method name.
//  Reference     – transaction reference, "N/A" when not given.
//  Notes         – free text, "N/A" when not given.
//  Date, Time    – when the money moved, as entered by the operator.
//  Status        – Completed for payments, Refunded for refunds.
type Payment struct {
	ID            string
	ReservationID string
	GuestName     string
	Amount        float64
	Method        string
	Reference     string
	Notes         string
	Date          Date
	Time          TimeOfDay
	Status        PaymentRecordStatus
}

// IsRefund reports whether the entry returns money to the guest.
func (p Payment) IsRefund() bool {
	return p.Amount < 0
}
