package handler

// This file defines the Desk, the set of menu actions the front desk
// operator runs against a Hotel.  Actions read input through the prompter,
// call the engine and print the outcome; they never touch the stores
// directly.  Engine errors are returned unchanged so the menu can report
// them in one place.

import (
	"context" // context flows from the menu into engine calls
	"fmt"     // fmt builds prompts and wrapped errors
	"strings" // strings matches ids and names without case

	"github.com/iliyamo/hotel-reservation/internal/console"
	"github.com/iliyamo/hotel-reservation/internal/model"
	"github.com/iliyamo/hotel-reservation/internal/service"
	"github.com/iliyamo/hotel-reservation/internal/utils"
)

// recentLimit is how many reservations the pick list shows.
const recentLimit = 10

// Desk groups what every menu action needs: the engine, the prompter for
// input and the screen for output.
type Desk struct {
	Hotel    *service.Hotel
	In       *console.Prompter
	Out      *console.Screen
	Currency string
}

// NewDesk constructs a Desk.  All dependencies must be non-nil.
func NewDesk(h *service.Hotel, in *console.Prompter, out *console.Screen, currency string) *Desk {
	if h == nil || in == nil || out == nil {
		panic("nil dependency passed to NewDesk")
	}
	return &Desk{Hotel: h, In: in, Out: out, Currency: currency}
}

func (d *Desk) money(v float64) string { return utils.Money(d.Currency, v) }

// HasReservations reports whether anything has been booked yet.
func (d *Desk) HasReservations() bool { return len(d.Hotel.Reservations()) > 0 }

// HasPayments reports whether the ledger has entries.
func (d *Desk) HasPayments() bool { return len(d.Hotel.Payments()) > 0 }

// pickReservation shows the most recent entries of list and lets the
// operator pick one by position, by id or by guest name.  Choosing 0
// returns console.ErrAborted.
func (d *Desk) pickReservation(_ context.Context, title string, list []model.Reservation) (model.Reservation, error) {
	shown := list
	if len(shown) > recentLimit {
		shown = shown[len(shown)-recentLimit:]
	}
	d.Out.Printf("\n%s (%d):\n", title, len(shown))
	d.Out.Separator()
	for i, r := range shown {
		info := "Status: " + string(r.PaymentStatus)
		if r.Balance() > 0 {
			info = "Balance: " + d.money(r.Balance())
		}
		d.Out.Printf("%d. ID: %-12s | Guest: %-25s | %s\n", i+1, r.ID, r.Guest.Name, info)
	}
	d.Out.Separator()

	d.Out.Println("\nHow would you like to find the reservation?")
	d.Out.Println("1. Select from list above (enter number)")
	d.Out.Println("2. Enter Reservation ID")
	d.Out.Println("3. Search by Guest Name")
	d.Out.Println("0. Cancel / Go Back to Main Menu")
	choice, err := d.In.Int("\nSelect option (0-3): ", 0, 3)
	if err != nil {
		return model.Reservation{}, err
	}

	switch choice {
	case 0:
		return model.Reservation{}, console.ErrAborted
	case 1:
		n, err := d.In.Int(fmt.Sprintf("Select reservation (1-%d): ", len(shown)), 1, len(shown))
		if err != nil {
			return model.Reservation{}, err
		}
		return shown[n-1], nil
	case 2:
		id, err := d.In.Text("Enter Reservation ID: ", 4, 20)
		if err != nil {
			return model.Reservation{}, err
		}
		for _, r := range list {
			if strings.EqualFold(r.ID, id) {
				return r, nil
			}
		}
		return model.Reservation{}, fmt.Errorf("%w: %s", service.ErrReservationNotFound, id)
	}

	name, err := d.In.Text("Enter Guest Name: ", 2, 50)
	if err != nil {
		return model.Reservation{}, err
	}
	var matches []model.Reservation
	for _, r := range list {
		if strings.Contains(strings.ToLower(r.Guest.Name), strings.ToLower(name)) {
			matches = append(matches, r)
		}
	}
	return d.chooseMatch(matches, name)
}

// chooseMatch resolves a list of search hits to one reservation, asking
// the operator when there is more than one.
func (d *Desk) chooseMatch(matches []model.Reservation, query string) (model.Reservation, error) {
	switch len(matches) {
	case 0:
		return model.Reservation{}, fmt.Errorf("%w: no match for %q", service.ErrReservationNotFound, query)
	case 1:
		return matches[0], nil
	}
	d.Out.Printf("\nFound %d matching reservations:\n", len(matches))
	for i, r := range matches {
		d.Out.Printf("%d. %s - %s - Room %d\n", i+1, r.ID, r.Guest.Name, r.RoomNumber)
	}
	n, err := d.In.Int(fmt.Sprintf("Select reservation (1-%d): ", len(matches)), 1, len(matches))
	if err != nil {
		return model.Reservation{}, err
	}
	return matches[n-1], nil
}

// chooseMethod asks for one of the accepted payment methods.
func (d *Desk) chooseMethod(title string) (string, error) {
	methods := d.Hotel.PaymentMethods()
	i, err := d.In.Choose(title, methods)
	if err != nil {
		return "", err
	}
	return methods[i], nil
}

// askMoment asks for the date and time money moved.
func (d *Desk) askMoment(what string) (model.Date, model.TimeOfDay, error) {
	date, err := d.In.Date(what + " Date (DD/MM/YYYY): ")
	if err != nil {
		return model.Date{}, model.TimeOfDay{}, err
	}
	t, err := d.In.Time(what + " Time (HH:MM): ")
	if err != nil {
		return model.Date{}, model.TimeOfDay{}, err
	}
	return date, t, nil
}

func (d *Desk) printRoomTypes() {
	d.Out.Println("\nAvailable Room Types:")
	d.Out.Separator()
	d.Out.Printf("%-5s %-25s %-12s %-15s\n", "Type", "Room Type", "Capacity", "Price/Night")
	d.Out.Separator()
	for _, t := range d.Hotel.Catalog().Types() {
		d.Out.Printf("%-5s %-25s %d guest(s)   %14s\n", t.Key, t.Name, t.Capacity, d.money(t.Price))
	}
}
