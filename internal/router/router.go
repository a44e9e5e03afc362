// Package router maps HTTP routes to handlers and attaches middleware.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/elantiq/hostel-booking-api/internal/handler"
	"github.com/elantiq/hostel-booking-api/internal/middleware"
	"github.com/elantiq/hostel-booking-api/internal/utils"
)

// Handlers groups every endpoint handler the API exposes.
type Handlers struct {
	Rooms    *handler.RoomHandler
	Bookings *handler.BookingHandler
	Contacts *handler.ContactHandler
	Auth     *handler.AuthHandler
	Stats    *handler.StatsHandler
	Seed     *handler.SeedHandler
}

// Register wires all routes onto the Echo instance. Everything lives under
// /api; the split between the public group and the admin group is the whole
// authorization model, so adding a route to the wrong group is a security
// bug, not a style issue.
func Register(e *echo.Echo, h Handlers, tokens utils.TokenService, admins middleware.AdminLookup, rateLimit echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	api := e.Group("/api")
	api.GET("/", handler.Root)

	// Public browse and submission endpoints. The rate limiter guards the
	// two unauthenticated write paths.
	api.GET("/rooms", h.Rooms.GetRooms)
	api.GET("/rooms/:id", h.Rooms.GetRoom)
	api.POST("/bookings", h.Bookings.CreateBooking, rateLimit)
	api.POST("/contact", h.Contacts.CreateMessage, rateLimit)
	api.POST("/seed", h.Seed.Seed)
	api.POST("/admin/register", h.Auth.Register)
	api.POST("/admin/login", h.Auth.Login)

	// Admin endpoints: bearer token verified and the subject re-resolved to
	// a live admin record on every request.
	admin := e.Group("/api", middleware.RequireAdmin(tokens, admins))
	admin.POST("/rooms", h.Rooms.CreateRoom)
	admin.PUT("/rooms/:id", h.Rooms.UpdateRoom)
	admin.DELETE("/rooms/:id", h.Rooms.DeleteRoom)
	admin.GET("/bookings", h.Bookings.GetBookings)
	admin.PUT("/bookings/:id/status", h.Bookings.UpdateBookingStatus)
	admin.GET("/contact", h.Contacts.GetMessages)
	admin.GET("/admin/me", h.Auth.Me)
	admin.GET("/stats", h.Stats.GetStats)
}
