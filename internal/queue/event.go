// Package queue defines message payloads exchanged over the message broker.
package queue

// RoomSnapshot is the room state captured at booking time. It travels with
// the event so consumers never need to query the primary database.
type RoomSnapshot struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	RoomType           string  `json:"room_type"`
	Price              float64 `json:"price"`
	AvailabilityStatus string  `json:"availability_status"`
}

// BookingCreatedEvent is published after a booking has been persisted. It is
// a best-effort notification: publishing happens outside the request path
// and a lost event never invalidates the stored booking.
type BookingCreatedEvent struct {
	BookingID           string       `json:"booking_id"`
	FullName            string       `json:"full_name"`
	PhoneNumber         string       `json:"phone_number"`
	Email               string       `json:"email"`
	School              string       `json:"school"`
	PreferredMoveInDate string       `json:"preferred_move_in_date"`
	Room                RoomSnapshot `json:"room"`
	CreatedAt           string       `json:"created_at"`
}
