// Package handler implements the HTTP endpoints. Handlers depend on narrow
// store interfaces rather than concrete repositories so tests can substitute
// in-memory fakes; the repository types satisfy these interfaces directly.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/elantiq/hostel-booking-api/internal/middleware"
	"github.com/elantiq/hostel-booking-api/internal/model"
	"github.com/elantiq/hostel-booking-api/internal/queue"
)

// RoomStore is the persistence surface the room and booking endpoints need.
type RoomStore interface {
	List(ctx context.Context, roomType, availability string) ([]model.Room, error)
	GetByID(ctx context.Context, id string) (model.Room, error)
	Create(ctx context.Context, rm model.Room) error
	Update(ctx context.Context, id string, upd model.RoomUpdate) (model.Room, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountByAvailability(ctx context.Context, status string) (int64, error)
}

// BookingStore is the persistence surface for bookings.
type BookingStore interface {
	Create(ctx context.Context, b model.Booking) error
	List(ctx context.Context, status string) ([]model.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// ContactStore is the persistence surface for contact messages.
type ContactStore interface {
	Create(ctx context.Context, m model.ContactMessage) error
	List(ctx context.Context) ([]model.ContactMessage, error)
	Count(ctx context.Context) (int64, error)
}

// AdminStore is the persistence surface for admin identities.
type AdminStore interface {
	Create(ctx context.Context, a model.Admin) error
	GetByEmail(ctx context.Context, email string) (model.Admin, error)
	GetByID(ctx context.Context, id string) (model.Admin, error)
	Count(ctx context.Context) (int64, error)
}

// BookingNotifier dispatches a fire-and-forget booking event.
type BookingNotifier interface {
	Dispatch(event queue.BookingCreatedEvent)
}

var errNoAdmin = errors.New("no authenticated admin in context")

// currentAdmin returns the admin record stored by the auth middleware. The
// record is read-only context for the handler; nothing downstream mutates it.
func currentAdmin(c echo.Context) (model.Admin, error) {
	a, ok := c.Get(middleware.AdminKey).(model.Admin)
	if !ok {
		return model.Admin{}, errNoAdmin
	}
	return a, nil
}

// Root returns the service banner.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"message": "EL-ANTIQ Hostel API"})
}
