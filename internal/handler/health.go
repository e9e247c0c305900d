package handler

import "context" // context matches the desk action signature

// Health verifies that the room and payment indexes still agree with the
// stores they point into.  It is run after every mutating action.
func (d *Desk) Health(context.Context) error {
	return d.Hotel.CheckConsistency()
}
