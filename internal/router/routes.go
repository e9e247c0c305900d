package router

import (
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/hotel-reservation/internal/handler"
	"github.com/iliyamo/hotel-reservation/internal/middleware"
)

const (
	sectionReservations = "RESERVATION OPERATIONS"
	sectionPayments     = "PAYMENT MANAGEMENT"
	sectionReports      = "REPORTS & INFORMATION"
	sectionSystem       = "SYSTEM"
)

// RegisterDesk registers the front desk actions on m.  Actions that need
// existing data are guarded so an empty hotel gets a short notice instead
// of an empty screen, and every mutating action is followed by an index
// consistency check.
func RegisterDesk(m *Menu, d *handler.Desk, log logrus.FieldLogger) {
	needReservations := middleware.Require(d.HasReservations, "No reservations found in the system.")
	needPayments := middleware.Require(d.HasPayments, "No payments found in the system.")
	verify := middleware.Verify(log, d.Health)

	m.Handle(1, sectionReservations, "CREATE - New Reservation", "reservation.create", d.CreateReservation, verify)
	m.Handle(2, sectionReservations, "READ - View All Reservations", "reservation.list", d.ListReservations, needReservations)
	m.Handle(3, sectionReservations, "UPDATE - Modify Reservation", "reservation.update", d.UpdateReservation, needReservations, verify)
	m.Handle(4, sectionReservations, "DELETE - Remove Reservation", "reservation.delete", d.DeleteReservation, needReservations, verify)
	m.Handle(5, sectionReservations, "SEARCH - Find Reservations", "reservation.search", d.SearchReservations, needReservations)
	m.Handle(6, sectionReservations, "SORT - Sort & Display Reservations", "reservation.sort", d.SortReservations, needReservations)

	m.Handle(7, sectionPayments, "Process Payment", "payment.process", d.ProcessPayment, needReservations, verify)
	m.Handle(8, sectionPayments, "View All Payments", "payment.list", d.ListPayments, needPayments)
	m.Handle(9, sectionPayments, "View Reservation Payments", "payment.history", d.ReservationPayments, needReservations)
	m.Handle(10, sectionPayments, "Add Additional Charges", "charge.add", d.AddCharge, needReservations, verify)
	m.Handle(11, sectionPayments, "Issue Refund", "refund.issue", d.IssueRefund, needReservations, verify)
	m.Handle(12, sectionPayments, "Payment Reports", "report.payments", d.PaymentReports, needPayments)

	m.Handle(13, sectionReports, "Generate Reports", "report.system", d.SystemReports, needReservations)
	m.Handle(14, sectionReports, "View Room Types & Prices", "catalog.view", d.RoomTypes)

	m.Handle(15, sectionSystem, "About the System", "about", d.About)
}
