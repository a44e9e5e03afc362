package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/elantiq/hostel-booking-api/internal/model"
	"github.com/elantiq/hostel-booking-api/internal/queue"
	"github.com/elantiq/hostel-booking-api/internal/repository"
	"github.com/elantiq/hostel-booking-api/internal/utils"
)

// BookingHandler bundles dependencies for booking endpoints.
type BookingHandler struct {
	Bookings BookingStore
	Rooms    RoomStore
	Notifier BookingNotifier
}

func NewBookingHandler(bookings BookingStore, rooms RoomStore, notifier BookingNotifier) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Rooms: rooms, Notifier: notifier}
}

// bookingCreateReq carries a public booking request. room_name and room_type
// are client-supplied snapshots of the room at booking time; they are stored
// as sent and never re-synced against later room edits.
type bookingCreateReq struct {
	RoomID              string `json:"room_id"`
	RoomName            string `json:"room_name"`
	RoomType            string `json:"room_type"`
	FullName            string `json:"full_name"`
	PhoneNumber         string `json:"phone_number"`
	Email               string `json:"email"`
	School              string `json:"school"`
	PreferredMoveInDate string `json:"preferred_move_in_date"`
}

// CreateBooking handles POST /api/bookings. Public. Admission control is a
// single check on the room's availability_status; the slot counters are not
// consulted, so status and counters can disagree and the status wins.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req bookingCreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.RoomID == "" || req.FullName == "" || req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_id, full_name and email are required"})
	}

	ctx := c.Request().Context()
	room, err := h.Rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if room.AvailabilityStatus == model.AvailabilityFullyBooked {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room is fully booked"})
	}

	booking := model.Booking{
		ID:                  utils.NewID(),
		RoomID:              req.RoomID,
		RoomName:            req.RoomName,
		RoomType:            req.RoomType,
		FullName:            req.FullName,
		PhoneNumber:         req.PhoneNumber,
		Email:               req.Email,
		School:              req.School,
		PreferredMoveInDate: req.PreferredMoveInDate,
		Status:              model.BookingPending,
		CreatedAt:           time.Now().UTC(),
	}
	if err := h.Bookings.Create(ctx, booking); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
	}

	// The booking is committed; from here the response can only succeed.
	// Dispatch returns immediately and a failed publish is logged, never
	// surfaced to the caller.
	h.Notifier.Dispatch(queue.BookingCreatedEvent{
		BookingID:           booking.ID,
		FullName:            booking.FullName,
		PhoneNumber:         booking.PhoneNumber,
		Email:               booking.Email,
		School:              booking.School,
		PreferredMoveInDate: booking.PreferredMoveInDate,
		Room: queue.RoomSnapshot{
			ID:                 room.ID,
			Name:               room.Name,
			RoomType:           room.RoomType,
			Price:              room.Price,
			AvailabilityStatus: room.AvailabilityStatus,
		},
		CreatedAt: booking.CreatedAt.Format(time.RFC3339Nano),
	})

	return c.JSON(http.StatusOK, booking)
}

// GetBookings handles GET /api/bookings with an optional exact status
// filter. Admin only. Results are newest first and capped by the store.
func (h *BookingHandler) GetBookings(c echo.Context) error {
	bookings, err := h.Bookings.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatus handles PUT /api/bookings/:id/status?status=. Admin
// only. It changes the booking's status field and nothing else: rooms are
// administered independently, so no slot counter or availability cascade
// happens here.
func (h *BookingHandler) UpdateBookingStatus(c echo.Context) error {
	status := c.QueryParam("status")
	if !model.ValidBookingStatus(status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}
	err := h.Bookings.UpdateStatus(c.Request().Context(), c.Param("id"), status)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update booking failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "booking status updated to " + status})
}
