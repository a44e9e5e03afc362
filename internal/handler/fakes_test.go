package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/elantiq/hostel-booking-api/internal/model"
	"github.com/elantiq/hostel-booking-api/internal/queue"
	"github.com/elantiq/hostel-booking-api/internal/repository"
)

// In-memory stand-ins for the store interfaces. They implement the same
// contracts the repositories do, including the sentinel errors.

type fakeRoomStore struct {
	rooms       map[string]model.Room
	createCalls int
}

func newFakeRoomStore(rooms ...model.Room) *fakeRoomStore {
	m := make(map[string]model.Room, len(rooms))
	for _, rm := range rooms {
		m[rm.ID] = rm
	}
	return &fakeRoomStore{rooms: m}
}

func (f *fakeRoomStore) List(_ context.Context, roomType, availability string) ([]model.Room, error) {
	out := make([]model.Room, 0)
	for _, rm := range f.rooms {
		if roomType != "" && rm.RoomType != roomType {
			continue
		}
		if availability != "" && rm.AvailabilityStatus != availability {
			continue
		}
		out = append(out, rm)
	}
	return out, nil
}

func (f *fakeRoomStore) GetByID(_ context.Context, id string) (model.Room, error) {
	rm, ok := f.rooms[id]
	if !ok {
		return model.Room{}, repository.ErrRoomNotFound
	}
	return rm, nil
}

func (f *fakeRoomStore) Create(_ context.Context, rm model.Room) error {
	f.rooms[rm.ID] = rm
	f.createCalls++
	return nil
}

func (f *fakeRoomStore) Update(_ context.Context, id string, upd model.RoomUpdate) (model.Room, error) {
	rm, ok := f.rooms[id]
	if !ok {
		return model.Room{}, repository.ErrRoomNotFound
	}
	if upd.Name != nil {
		rm.Name = *upd.Name
	}
	if upd.RoomType != nil {
		rm.RoomType = *upd.RoomType
	}
	if upd.Price != nil {
		rm.Price = *upd.Price
	}
	if upd.SecurityDeposit != nil {
		rm.SecurityDeposit = *upd.SecurityDeposit
	}
	if upd.Description != nil {
		rm.Description = *upd.Description
	}
	if upd.Amenities != nil {
		rm.Amenities = *upd.Amenities
	}
	if upd.Images != nil {
		rm.Images = *upd.Images
	}
	if upd.AvailabilityStatus != nil {
		rm.AvailabilityStatus = *upd.AvailabilityStatus
	}
	if upd.TotalSlots != nil {
		rm.TotalSlots = *upd.TotalSlots
	}
	if upd.AvailableSlots != nil {
		rm.AvailableSlots = *upd.AvailableSlots
	}
	f.rooms[id] = rm
	return rm, nil
}

func (f *fakeRoomStore) Delete(_ context.Context, id string) error {
	if _, ok := f.rooms[id]; !ok {
		return repository.ErrRoomNotFound
	}
	delete(f.rooms, id)
	return nil
}

func (f *fakeRoomStore) Count(_ context.Context) (int64, error) {
	return int64(len(f.rooms)), nil
}

func (f *fakeRoomStore) CountByAvailability(_ context.Context, status string) (int64, error) {
	var n int64
	for _, rm := range f.rooms {
		if rm.AvailabilityStatus == status {
			n++
		}
	}
	return n, nil
}

type fakeBookingStore struct {
	bookings []model.Booking
}

func (f *fakeBookingStore) Create(_ context.Context, b model.Booking) error {
	f.bookings = append(f.bookings, b)
	return nil
}

func (f *fakeBookingStore) List(_ context.Context, status string) ([]model.Booking, error) {
	out := make([]model.Booking, 0)
	for _, b := range f.bookings {
		if status != "" && b.Status != status {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > 500 {
		out = out[:500]
	}
	return out, nil
}

func (f *fakeBookingStore) UpdateStatus(_ context.Context, id, status string) error {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].Status = status
			return nil
		}
	}
	return repository.ErrBookingNotFound
}

func (f *fakeBookingStore) Count(_ context.Context) (int64, error) {
	return int64(len(f.bookings)), nil
}

func (f *fakeBookingStore) CountByStatus(_ context.Context, status string) (int64, error) {
	var n int64
	for _, b := range f.bookings {
		if b.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeAdminStore struct {
	admins map[string]model.Admin
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{admins: make(map[string]model.Admin)}
}

func (f *fakeAdminStore) Create(_ context.Context, a model.Admin) error {
	for _, existing := range f.admins {
		if existing.Email == a.Email {
			return repository.ErrEmailExists
		}
	}
	f.admins[a.ID] = a
	return nil
}

func (f *fakeAdminStore) GetByEmail(_ context.Context, email string) (model.Admin, error) {
	for _, a := range f.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return model.Admin{}, repository.ErrAdminNotFound
}

func (f *fakeAdminStore) GetByID(_ context.Context, id string) (model.Admin, error) {
	a, ok := f.admins[id]
	if !ok {
		return model.Admin{}, repository.ErrAdminNotFound
	}
	return a, nil
}

func (f *fakeAdminStore) Count(_ context.Context) (int64, error) {
	return int64(len(f.admins)), nil
}

type fakeContactStore struct {
	messages []model.ContactMessage
}

func (f *fakeContactStore) Create(_ context.Context, m model.ContactMessage) error {
	f.messages = append(f.messages, m)
	return nil
}

func (f *fakeContactStore) List(_ context.Context) ([]model.ContactMessage, error) {
	out := append([]model.ContactMessage(nil), f.messages...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeContactStore) Count(_ context.Context) (int64, error) {
	return int64(len(f.messages)), nil
}

// fakeNotifier records dispatched events synchronously.
type fakeNotifier struct {
	events []queue.BookingCreatedEvent
}

func (f *fakeNotifier) Dispatch(e queue.BookingCreatedEvent) {
	f.events = append(f.events, e)
}

// newTestContext builds an echo context around a JSON request.
func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
