package repository

import "github.com/iliyamo/hotel-reservation/internal/model"

// DefaultRoomTypes is the hotel's room catalog: five types with their
// nightly rates, capacities and room pools.
func DefaultRoomTypes() []model.RoomType {
	return []model.RoomType{
		{Key: "1", Name: "Standard Single", Price: 1500, Capacity: 1, Rooms: []int{101, 102, 103, 104, 105}},
		{Key: "2", Name: "Standard Double", Price: 2500, Capacity: 2, Rooms: []int{201, 202, 203, 204, 205, 206}},
		{Key: "3", Name: "Deluxe Suite", Price: 4500, Capacity: 3, Rooms: []int{301, 302, 303, 304}},
		{Key: "4", Name: "Executive Suite", Price: 6500, Capacity: 4, Rooms: []int{401, 402, 403}},
		{Key: "5", Name: "Presidential Suite", Price: 12000, Capacity: 6, Rooms: []int{501, 502}},
	}
}

// PaymentMethods lists the accepted payment and refund methods in menu order.
var PaymentMethods = []string{"Cash", "Credit Card", "Debit Card", "Bank Transfer", "Digital Wallet"}

// ChargeCategories lists the categories extras can be posted under.
var ChargeCategories = []string{"Room Service", "Minibar", "Laundry", "Restaurant", "Spa/Wellness", "Other"}

// Catalog is the read-only room type table.  It is built once at startup
// and never mutated; occupancy is not tracked here.
type Catalog struct {
	types []model.RoomType
}

// NewCatalog returns a catalog over the given types, kept in the order
// supplied.  Room slices are copied so callers cannot alter the pools.
func NewCatalog(types []model.RoomType) *Catalog {
	c := &Catalog{types: make([]model.RoomType, len(types))}
	for i, t := range types {
		t.Rooms = append([]int(nil), t.Rooms...)
		c.types[i] = t
	}
	return c
}

// Types returns every room type in catalog order.
func (c *Catalog) Types() []model.RoomType {
	out := make([]model.RoomType, len(c.types))
	for i, t := range c.types {
		t.Rooms = append([]int(nil), t.Rooms...)
		out[i] = t
	}
	return out
}

// Type returns the room type with the given key.
func (c *Catalog) Type(key string) (model.RoomType, error) {
	for _, t := range c.types {
		if t.Key == key {
			t.Rooms = append([]int(nil), t.Rooms...)
			return t, nil
		}
	}
	return model.RoomType{}, ErrNotFound
}

// TypeByName returns the room type with the given display name.
func (c *Catalog) TypeByName(name string) (model.RoomType, error) {
	for _, t := range c.types {
		if t.Name == name {
			return c.Type(t.Key)
		}
	}
	return model.RoomType{}, ErrNotFound
}

// RoomsOfType returns the room numbers of a type in display order.
func (c *Catalog) RoomsOfType(key string) ([]int, error) {
	t, err := c.Type(key)
	if err != nil {
		return nil, err
	}
	return t.Rooms, nil
}

// SuitableFor returns the types whose capacity is at least partySize.
func (c *Catalog) SuitableFor(partySize int) []model.RoomType {
	var out []model.RoomType
	for _, t := range c.Types() {
		if t.Fits(partySize) {
			out = append(out, t)
		}
	}
	return out
}

// MaxCapacity is the largest party any single room type accepts.
func (c *Catalog) MaxCapacity() int {
	most := 0
	for _, t := range c.types {
		if t.Capacity > most {
			most = t.Capacity
		}
	}
	return most
}

// TotalRooms counts rooms across all pools.
func (c *Catalog) TotalRooms() int {
	n := 0
	for _, t := range c.types {
		n += len(t.Rooms)
	}
	return n
}
