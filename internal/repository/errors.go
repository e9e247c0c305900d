// Package repository holds the in-memory stores behind the hotel engine:
// the static room catalog, the reservation store with its room index and
// the payment ledger with its reservation index.  Stores own their records
// and hand out copies; indexes hold identifiers only.
//
// The sentinel errors below let the service layer tell a missing record
// from a conflicting write.
package repository

import "errors" // errors provides sentinel error values

// ErrNotFound is returned when no record matches the requested identifier.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a write would duplicate an existing
// identifier or a ledger entry.  The service layer never expects it; it
// signals a broken id generator.
var ErrConflict = errors.New("conflict")
