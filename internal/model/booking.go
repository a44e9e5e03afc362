package model

import "time"

// Booking status values. Status moves only through explicit admin action;
// nothing transitions it automatically.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// ValidBookingStatus reports whether s is one of the accepted status values.
func ValidBookingStatus(s string) bool {
	return s == BookingPending || s == BookingConfirmed || s == BookingCancelled
}

// Booking is a student's request for a room. RoomName and RoomType are
// snapshots taken at creation time; later room edits do not update them.
// PreferredMoveInDate is free text and intentionally not parsed as a date.
type Booking struct {
	ID                  string    `json:"id"`
	RoomID              string    `json:"room_id"`
	RoomName            string    `json:"room_name"`
	RoomType            string    `json:"room_type"`
	FullName            string    `json:"full_name"`
	PhoneNumber         string    `json:"phone_number"`
	Email               string    `json:"email"`
	School              string    `json:"school"`
	PreferredMoveInDate string    `json:"preferred_move_in_date"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
}
