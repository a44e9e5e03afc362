// Package repository implements the mapping layer between the typed entity
// models and their stored document representation. Sentinel errors defined
// here let handlers distinguish failure scenarios: not-found errors become
// HTTP 404, ErrEmailExists becomes a 400 conflict on registration.
package repository

import "errors"

// ErrRoomNotFound is returned when a room lookup, update or delete matches
// no record.
var ErrRoomNotFound = errors.New("room not found")

// ErrBookingNotFound is returned when a booking status update targets an
// id with no stored record.
var ErrBookingNotFound = errors.New("booking not found")

// ErrAdminNotFound is returned when an admin lookup by id or email matches
// no record. The auth middleware translates this into its own distinct
// "admin not found" rejection.
var ErrAdminNotFound = errors.New("admin not found")

// ErrEmailExists is returned when admin registration collides with an
// existing email. Email uniqueness is enforced by the store's unique index,
// never re-checked in application code.
var ErrEmailExists = errors.New("email already exists")
