package handler

import (
	"context" // context flows from the menu into engine calls
	"fmt"     // fmt builds prompts and wrapped errors
	"slices"  // slices checks a typed room against the free list

	"github.com/iliyamo/hotel-reservation/internal/console"
	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/repository"
	"github.com/iliyamo/hotel-reservation/internal/service"
	"github.com/iliyamo/hotel-reservation/internal/utils"
)

// CreateReservation collects guest, room and stay details and books the
// room.
func (d *Desk) CreateReservation(ctx context.Context) error {
	d.Out.Clear()
	d.Out.Header("CREATE NEW RESERVATION")
	d.Out.Println("\nPlease provide guest information:")
	d.Out.Separator()

	var in service.CreateReservationInput
	var err error
	if in.GuestName, err = d.In.Name("Guest Full Name: "); err != nil {
		return err
	}
	if in.Phone, err = d.In.Phone("Contact Number: "); err != nil {
		return err
	}
	if in.Email, err = d.In.Email("Email Address: "); err != nil {
		return err
	}
	if in.PartySize, err = d.In.Int("Number of Guests: ", 1, 10); err != nil {
		return err
	}

	d.Out.Section("ROOM SELECTION")
	d.printRoomTypes()
	rt, override, err := d.chooseRoomType(in.PartySize)
	if err != nil {
		return err
	}
	in.RoomTypeKey, in.AllowOverCapacity = rt.Key, override

	free, err := d.Hotel.AvailableRooms(rt.Key)
	if err != nil {
		return err
	}
	if len(free) == 0 {
		return fmt.Errorf("%w: %s", service.ErrNoRoomsAvailable, rt.Name)
	}
	if in.RoomNumber, err = d.chooseRoom(rt.Name, free); err != nil {
		return err
	}

	d.Out.Section("CHECK-IN & CHECK-OUT DATES")
	d.Out.Println("Enter dates in DD/MM/YYYY format")
	if in.Stay, err = d.askStay(nil); err != nil {
		return err
	}

	res, err := d.Hotel.CreateReservation(ctx, in)
	if err != nil {
		return err
	}
	d.Out.Section("RESERVATION CONFIRMED!")
	d.Out.Printf("%s", d.renderDetails(res))
	return nil
}

// chooseRoomType asks for a room type until one fits the party.  When no
// type can take the party the operator may continue anyway, which returns
// override true.
func (d *Desk) chooseRoomType(partySize int) (model.RoomType, bool, error) {
	types := d.Hotel.Catalog().Types()
	for {
		n, err := d.In.Int(fmt.Sprintf("\nSelect Room Type (1-%d): ", len(types)), 1, len(types))
		if err != nil {
			return model.RoomType{}, false, err
		}
		rt := types[n-1]
		if rt.Fits(partySize) {
			return rt, false, nil
		}

		d.Out.Error("Selected room type can accommodate maximum %d guest(s).", rt.Capacity)
		d.Out.Printf("You have %d guest(s). Please select a room type with sufficient capacity.\n", partySize)
		if suitable := d.Hotel.SuitableTypes(partySize); len(suitable) > 0 {
			d.Out.Printf("\nSuggested room types for %d guest(s):\n", partySize)
			for _, t := range suitable {
				d.Out.Printf("  %s. %s (capacity: %d guest(s), %s/night)\n", t.Key, t.Name, t.Capacity, d.money(t.Price))
			}
			continue
		}

		d.Out.Printf("\nSorry, no single room can accommodate %d guest(s).\n", partySize)
		d.Out.Printf("Maximum capacity per room is %d guests.\n", d.Hotel.Catalog().MaxCapacity())
		i, err := d.In.Choose("Would you like to:", []string{
			"Continue anyway with this room type",
			"Cancel this reservation",
		})
		if err != nil {
			return model.RoomType{}, false, err
		}
		if i == 1 {
			return model.RoomType{}, false, console.ErrAborted
		}
		d.Out.Warn("Continuing. Note: the room may not fit all %d guests.", partySize)
		return rt, true, nil
	}
}

// chooseRoom lists the free rooms and asks until one of them is picked.
func (d *Desk) chooseRoom(typeName string, free []int) (int, error) {
	d.Out.Printf("\nAvailable %s Rooms:\n", typeName)
	for _, r := range free {
		d.Out.Printf("  - Room %d\n", r)
	}
	lo, hi := slices.Min(free), slices.Max(free)
	for {
		n, err := d.In.Int("\nSelect Room Number: ", lo, hi)
		if err != nil {
			return 0, err
		}
		if slices.Contains(free, n) {
			return n, nil
		}
		d.Out.Error("Room %d is not available. Please select from the list above.", n)
	}
}

// askStay asks for check-in and check-out.  With keep set, the check-in
// date and time are taken from it and only check-out is asked.
func (d *Desk) askStay(keep *model.Stay) (model.Stay, error) {
	var s model.Stay
	var err error
	if keep != nil {
		s.CheckIn, s.CheckInTime = keep.CheckIn, keep.CheckInTime
	} else if s.CheckIn, err = d.In.Date("\nCheck-in Date (DD/MM/YYYY): "); err != nil {
		return s, err
	}
	for {
		if s.CheckOut, err = d.In.Date("Check-out Date (DD/MM/YYYY): "); err != nil {
			return s, err
		}
		if s.CheckOut.Compare(s.CheckIn) > 0 {
			break
		}
		d.Out.Error("Check-out date must be after check-in date (%s). Please try again.", s.CheckIn)
	}
	if keep == nil {
		if s.CheckInTime, err = d.In.Time("Check-in Time (HH:MM, 24-hour format): "); err != nil {
			return s, err
		}
	}
	if s.CheckOutTime, err = d.In.Time("Check-out Time (HH:MM, 24-hour format): "); err != nil {
		return s, err
	}
	return s, nil
}

// ListReservations prints every reservation in booking order.
func (d *Desk) ListReservations(context.Context) error {
	d.Out.Clear()
	d.Out.Header("VIEW ALL RESERVATIONS")
	all := d.Hotel.Reservations()
	d.Out.Printf("\nTotal Reservations: %d\n", len(all))
	d.printSummaries(all)
	return nil
}

func (d *Desk) printSummaries(list []model.Reservation) {
	d.Out.Separator()
	for _, r := range list {
		d.Out.Printf("%s", d.renderSummary(r))
		d.Out.Separator()
	}
}

// UpdateReservation finds a reservation and applies one change to it.
func (d *Desk) UpdateReservation(ctx context.Context) error {
	d.Out.Clear()
	d.Out.Header("UPDATE RESERVATION")

	res, err := d.findForUpdate()
	if err != nil {
		return err
	}
	d.Out.Section("CURRENT RESERVATION DETAILS")
	d.Out.Printf("%s", d.renderDetails(res))

	choice, err := d.In.Choose("What would you like to update?", []string{
		"Guest Contact Information",
		"Stay Dates",
		"Number of Guests",
		"Room / Room Type",
		"Cancel Reservation",
	})
	if err != nil {
		return err
	}

	var updated model.Reservation
	switch choice {
	case 0:
		var in service.ContactInput
		if in.Phone, err = d.In.Skippable("New Contact Number (or press Enter to skip): ", func(s string) (string, error) {
			return utils.ParsePhone("phone", s)
		}); err != nil {
			return err
		}
		if in.Email, err = d.In.Skippable("New Email Address (or press Enter to skip): ", func(s string) (string, error) {
			return utils.ParseEmail("email", s)
		}); err != nil {
			return err
		}
		if updated, err = d.Hotel.UpdateContact(ctx, res.ID, in); err != nil {
			return err
		}
		d.Out.Success("Contact information updated successfully!")
	case 1:
		i, err := d.In.Choose("Which dates?", []string{"Check-out only", "Check-in and check-out"})
		if err != nil {
			return err
		}
		keep := &res.Stay
		if i == 1 {
			keep = nil
		}
		stay, err := d.askStay(keep)
		if err != nil {
			return err
		}
		if updated, err = d.Hotel.UpdateStay(ctx, res.ID, stay); err != nil {
			return err
		}
		d.Out.Success("Stay dates updated successfully!")
		d.Out.Printf("New total nights: %d\nNew total cost: %s\n", updated.Nights, d.money(updated.TotalCost))
	case 2:
		n, err := d.In.Int("New Number of Guests: ", 1, 10)
		if err != nil {
			return err
		}
		if updated, err = d.Hotel.UpdatePartySize(ctx, res.ID, n); err != nil {
			return err
		}
		d.Out.Success("Number of guests updated successfully!")
	case 3:
		d.printRoomTypes()
		types := d.Hotel.Catalog().Types()
		n, err := d.In.Int(fmt.Sprintf("\nSelect Room Type (1-%d): ", len(types)), 1, len(types))
		if err != nil {
			return err
		}
		rt := types[n-1]
		free, err := d.Hotel.AvailableRoomsFor(rt.Key, res.ID)
		if err != nil {
			return err
		}
		if len(free) == 0 {
			return fmt.Errorf("%w: %s", service.ErrNoRoomsAvailable, rt.Name)
		}
		room, err := d.chooseRoom(rt.Name, free)
		if err != nil {
			return err
		}
		if updated, err = d.Hotel.ChangeRoom(ctx, res.ID, rt.Key, room); err != nil {
			return err
		}
		d.Out.Success("Moved to room %d (%s). New total cost: %s", updated.RoomNumber, updated.RoomType, d.money(updated.TotalCost))
	default:
		ok, err := d.In.Confirm("Are you sure you want to cancel this reservation?")
		if err != nil {
			return err
		}
		if !ok {
			return console.ErrAborted
		}
		if updated, err = d.Hotel.Cancel(ctx, res.ID); err != nil {
			return err
		}
		d.Out.Success("Reservation cancelled successfully!")
		if updated.TotalPaid > 0 {
			d.Out.Warn("%s has been paid on this booking; issue a refund from the payment menu.", d.money(updated.TotalPaid))
		}
	}
	return nil
}

// findForUpdate locates a reservation by id, guest name or the room it
// currently occupies.
func (d *Desk) findForUpdate() (model.Reservation, error) {
	i, err := d.In.Choose("Search for reservation:", []string{"By Reservation ID", "By Guest Name", "By Room Number"})
	if err != nil {
		return model.Reservation{}, err
	}
	switch i {
	case 0:
		id, err := d.In.Text("Enter Reservation ID: ", 4, 20)
		if err != nil {
			return model.Reservation{}, err
		}
		return d.Hotel.Reservation(id)
	case 1:
		name, err := d.In.Text("Enter Guest Name: ", 2, 50)
		if err != nil {
			return model.Reservation{}, err
		}
		return d.chooseMatch(d.Hotel.Search(repository.ReservationQuery{By: repository.SearchByName, Name: name}), name)
	}
	room, err := d.In.Int("Enter Room Number: ", 101, 999)
	if err != nil {
		return model.Reservation{}, err
	}
	return d.Hotel.ActiveInRoom(room)
}

// DeleteReservation removes a reservation after confirmation.  Payment
// history stays in the ledger and the operator is warned about it.
func (d *Desk) DeleteReservation(ctx context.Context) error {
	d.Out.Clear()
	d.Out.Header("DELETE RESERVATION")

	res, err := d.pickReservation(ctx, "Recent Reservations", d.Hotel.Reservations())
	if err != nil {
		return err
	}
	d.Out.Section("RESERVATION TO DELETE")
	d.Out.Printf("%s", d.renderDetails(res))
	if n := len(d.Hotel.PaymentsFor(res.ID)); n > 0 {
		d.Out.Warn("This reservation has %d payment record(s). They will be kept but orphaned.", n)
	}

	ok, err := d.In.Confirm("\nAre you sure you want to delete this reservation?")
	if err != nil {
		return err
	}
	if !ok {
		return console.ErrAborted
	}
	out, err := d.Hotel.Delete(ctx, res.ID)
	if err != nil {
		return err
	}
	d.Out.Success("Reservation %s deleted successfully!", out.Reservation.ID)
	if out.OrphanedPayments > 0 {
		d.Out.Warn("%d payment record(s) remain for %s.", out.OrphanedPayments, out.Reservation.ID)
	}
	return nil
}

// SearchReservations runs one search predicate and prints the hits.
func (d *Desk) SearchReservations(context.Context) error {
	d.Out.Clear()
	d.Out.Header("SEARCH RESERVATIONS")

	i, err := d.In.Choose("Search by:", []string{
		"Reservation ID",
		"Guest Name",
		"Room Number",
		"Status",
		"Check-in Date Range",
	})
	if err != nil {
		return err
	}
	q := repository.ReservationQuery{By: repository.SearchBy(i + 1)}
	switch q.By {
	case repository.SearchByID:
		q.ID, err = d.In.Text("Enter Reservation ID (or part of it): ", 1, 20)
	case repository.SearchByName:
		q.Name, err = d.In.Text("Enter Guest Name (or part of it): ", 1, 50)
	case repository.SearchByRoom:
		q.Room, err = d.In.Int("Enter Room Number: ", 101, 999)
	case repository.SearchByStatus:
		var s int
		s, err = d.In.Choose("Status:", []string{string(model.StatusActive), string(model.StatusCancelled)})
		q.Status = []model.ReservationStatus{model.StatusActive, model.StatusCancelled}[s]
	case repository.SearchByCheckIn:
		if q.From, err = d.In.Date("From Date (DD/MM/YYYY): "); err != nil {
			return err
		}
		for {
			if q.To, err = d.In.Date("To Date (DD/MM/YYYY): "); err != nil {
				return err
			}
			if !q.To.Before(q.From) {
				break
			}
			d.Out.Error("End date must not be before start date.")
		}
	}
	if err != nil {
		return err
	}

	hits := d.Hotel.Search(q)
	if len(hits) == 0 {
		d.Out.Println("\nNo matching reservations found.")
		return nil
	}
	d.Out.Printf("\nFound %d reservation(s):\n", len(hits))
	d.printSummaries(hits)
	return nil
}

// SortReservations prints every reservation in the chosen order.
func (d *Desk) SortReservations(context.Context) error {
	d.Out.Clear()
	d.Out.Header("SORT RESERVATIONS")

	keys := service.SortKeys()
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = k.String()
	}
	i, err := d.In.Choose("Sort by:", labels)
	if err != nil {
		return err
	}
	sorted := d.Hotel.Sorted(keys[i])
	d.Out.Printf("\nReservations sorted by %s:\n", keys[i])
	d.printSummaries(sorted)
	return nil
}
