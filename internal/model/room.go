package model

import "time"

// Room availability states. The status is set explicitly by admins or seed
// data; it is never derived from the slot counters, and the two can disagree.
const (
	AvailabilityAvailable   = "available"
	AvailabilityAlmostFull  = "almost_full"
	AvailabilityFullyBooked = "fully_booked"
)

// Room types describe occupancy: one, two or four students per room.
const (
	RoomTypeSingle = "1-in-1"
	RoomTypeDouble = "2-in-1"
	RoomTypeQuad   = "4-in-1"
)

// Room is a bookable hostel room. The ID is a server-generated UUID used as
// the public key; the storage layer's row identity is never exposed.
type Room struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	RoomType           string    `json:"room_type"`
	Price              float64   `json:"price"`
	SecurityDeposit    float64   `json:"security_deposit"`
	Description        string    `json:"description"`
	Amenities          []string  `json:"amenities"`
	Images             []string  `json:"images"`
	AvailabilityStatus string    `json:"availability_status"`
	TotalSlots         int       `json:"total_slots"`
	AvailableSlots     int       `json:"available_slots"`
	CreatedAt          time.Time `json:"created_at"`
}

// RoomUpdate carries a partial update for a room. Nil fields are left
// untouched by the repository.
type RoomUpdate struct {
	Name               *string   `json:"name"`
	RoomType           *string   `json:"room_type"`
	Price              *float64  `json:"price"`
	SecurityDeposit    *float64  `json:"security_deposit"`
	Description        *string   `json:"description"`
	Amenities          *[]string `json:"amenities"`
	Images             *[]string `json:"images"`
	AvailabilityStatus *string   `json:"availability_status"`
	TotalSlots         *int      `json:"total_slots"`
	AvailableSlots     *int      `json:"available_slots"`
}
