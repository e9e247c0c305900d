package model

// RoomType describes a class of rooms the hotel sells.  Room types are
// static for the lifetime of the process.
//
// Fields:
//  Key      – menu key of the type ("1".."5").
//  Name     – display name, also snapshotted onto reservations.
//  Price    – nightly rate.
//  Capacity – maximum party size the type is sold for.
//  Rooms    – room numbers belonging to the type, in display order.
type RoomType struct {
	Key      string
	Name     string
	Price    float64
	Capacity int
	Rooms    []int
}

// HasRoom reports whether room belongs to this type's pool.
func (t RoomType) HasRoom(room int) bool {
	for _, r := range t.Rooms {
		if r == room {
			return true
		}
	}
	return false
}

// Fits reports whether a party of the given size fits the type.
func (t RoomType) Fits(partySize int) bool {
	return partySize <= t.Capacity
}
