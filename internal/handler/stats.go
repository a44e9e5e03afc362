package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/elantiq/hostel-booking-api/internal/model"
)

// StatsHandler aggregates counts across the stores for the admin dashboard.
type StatsHandler struct {
	Rooms    RoomStore
	Bookings BookingStore
	Contacts ContactStore
}

func NewStatsHandler(rooms RoomStore, bookings BookingStore, contacts ContactStore) *StatsHandler {
	return &StatsHandler{Rooms: rooms, Bookings: bookings, Contacts: contacts}
}

// GetStats handles GET /api/stats. Admin only. Six independent counts; each
// is a single query and no snapshot consistency is promised between them.
func (h *StatsHandler) GetStats(c echo.Context) error {
	ctx := c.Request().Context()

	totalRooms, err := h.Rooms.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	availableRooms, err := h.Rooms.CountByAvailability(ctx, model.AvailabilityAvailable)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	totalBookings, err := h.Bookings.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	pendingBookings, err := h.Bookings.CountByStatus(ctx, model.BookingPending)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	confirmedBookings, err := h.Bookings.CountByStatus(ctx, model.BookingConfirmed)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	totalMessages, err := h.Contacts.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"total_rooms":        totalRooms,
		"available_rooms":    availableRooms,
		"total_bookings":     totalBookings,
		"pending_bookings":   pendingBookings,
		"confirmed_bookings": confirmedBookings,
		"total_messages":     totalMessages,
	})
}
