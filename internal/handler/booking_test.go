package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/elantiq/hostel-booking-api/internal/model"
)

func bookingBody(roomID string) string {
	return `{"room_id":"` + roomID + `","room_name":"Premium Single Room A","room_type":"1-in-1",` +
		`"full_name":"Kofi Mensah","phone_number":"+233201234567","email":"kofi@example.com",` +
		`"school":"University of Ghana","preferred_move_in_date":"early September"}`
}

func TestCreateBooking_RoomNotFound(t *testing.T) {
	rooms := newFakeRoomStore()
	bookings := &fakeBookingStore{}
	notifier := &fakeNotifier{}
	h := NewBookingHandler(bookings, rooms, notifier)

	c, rec := newTestContext(t, http.MethodPost, "/api/bookings", bookingBody("missing"))
	if err := h.CreateBooking(c); err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if len(bookings.bookings) != 0 {
		t.Error("no booking should be written for a missing room")
	}
}

func TestCreateBooking_FullyBookedRejected(t *testing.T) {
	room := model.Room{ID: "r1", Name: "Shared Room C", RoomType: model.RoomTypeDouble,
		AvailabilityStatus: model.AvailabilityFullyBooked, AvailableSlots: 2}
	rooms := newFakeRoomStore(room)
	bookings := &fakeBookingStore{}
	notifier := &fakeNotifier{}
	h := NewBookingHandler(bookings, rooms, notifier)

	c, rec := newTestContext(t, http.MethodPost, "/api/bookings", bookingBody("r1"))
	if err := h.CreateBooking(c); err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(bookings.bookings) != 0 {
		t.Error("rejected booking must not be persisted")
	}
	if len(notifier.events) != 0 {
		t.Error("rejected booking must not be notified")
	}
}

// Admission control only reads availability_status: a room whose counters say
// zero slots still accepts bookings as long as the status allows it.
func TestCreateBooking_SlotsNotConsulted(t *testing.T) {
	room := model.Room{ID: "r1", Name: "Shared Room B", RoomType: model.RoomTypeDouble,
		AvailabilityStatus: model.AvailabilityAlmostFull, AvailableSlots: 0}
	rooms := newFakeRoomStore(room)
	bookings := &fakeBookingStore{}
	notifier := &fakeNotifier{}
	h := NewBookingHandler(bookings, rooms, notifier)

	c, rec := newTestContext(t, http.MethodPost, "/api/bookings", bookingBody("r1"))
	if err := h.CreateBooking(c); err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body = %s", rec.Code, rec.Body.String())
	}
}

func TestCreateBooking_Success(t *testing.T) {
	room := model.Room{ID: "r1", Name: "Premium Single Room A",
		RoomType: model.RoomTypeSingle, Price: 4700,
		AvailabilityStatus: model.AvailabilityAvailable}
	rooms := newFakeRoomStore(room)
	bookings := &fakeBookingStore{}
	notifier := &fakeNotifier{}
	h := NewBookingHandler(bookings, rooms, notifier)

	c, rec := newTestContext(t, http.MethodPost, "/api/bookings", bookingBody("r1"))
	if err := h.CreateBooking(c); err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body = %s", rec.Code, rec.Body.String())
	}

	var got model.Booking
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got.Status != model.BookingPending {
		t.Errorf("status = %q, want pending", got.Status)
	}
	if got.ID == "" {
		t.Error("booking id should be generated")
	}
	if got.RoomName != "Premium Single Room A" {
		t.Errorf("room_name = %q, want snapshot from payload", got.RoomName)
	}

	if len(bookings.bookings) != 1 {
		t.Fatalf("persisted bookings = %d, want 1", len(bookings.bookings))
	}
	if len(notifier.events) != 1 {
		t.Fatalf("dispatched events = %d, want 1", len(notifier.events))
	}
	ev := notifier.events[0]
	if ev.BookingID != got.ID || ev.Room.ID != "r1" || ev.Room.Price != 4700 {
		t.Errorf("event = %+v, want booking %s with room snapshot", ev, got.ID)
	}
}

func TestCreateBooking_MissingFields(t *testing.T) {
	rooms := newFakeRoomStore()
	h := NewBookingHandler(&fakeBookingStore{}, rooms, &fakeNotifier{})

	c, rec := newTestContext(t, http.MethodPost, "/api/bookings", `{"room_name":"x"}`)
	if err := h.CreateBooking(c); err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetBookings_FilterAndOrder(t *testing.T) {
	now := time.Now().UTC()
	bookings := &fakeBookingStore{bookings: []model.Booking{
		{ID: "b1", Status: model.BookingPending, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "b2", Status: model.BookingConfirmed, CreatedAt: now.Add(-1 * time.Hour)},
		{ID: "b3", Status: model.BookingPending, CreatedAt: now},
	}}
	h := NewBookingHandler(bookings, newFakeRoomStore(), &fakeNotifier{})

	c, rec := newTestContext(t, http.MethodGet, "/api/bookings?status=pending", "")
	if err := h.GetBookings(c); err != nil {
		t.Fatalf("GetBookings() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got []model.Booking
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "b3" || got[1].ID != "b1" {
		t.Errorf("order = [%s %s], want newest first [b3 b1]", got[0].ID, got[1].ID)
	}
}

func TestUpdateBookingStatus_InvalidStatus(t *testing.T) {
	h := NewBookingHandler(&fakeBookingStore{}, newFakeRoomStore(), &fakeNotifier{})

	c, rec := newTestContext(t, http.MethodPut, "/api/bookings/b1/status?status=archived", "")
	c.SetParamNames("id")
	c.SetParamValues("b1")
	if err := h.UpdateBookingStatus(c); err != nil {
		t.Fatalf("UpdateBookingStatus() error = %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateBookingStatus_NotFound(t *testing.T) {
	h := NewBookingHandler(&fakeBookingStore{}, newFakeRoomStore(), &fakeNotifier{})

	c, rec := newTestContext(t, http.MethodPut, "/api/bookings/missing/status?status=confirmed", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := h.UpdateBookingStatus(c); err != nil {
		t.Fatalf("UpdateBookingStatus() error = %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

// Confirming a booking changes only the booking; the room record stays as it
// was, counters included.
func TestUpdateBookingStatus_NoRoomCascade(t *testing.T) {
	room := model.Room{ID: "r1", AvailabilityStatus: model.AvailabilityAvailable, AvailableSlots: 2}
	rooms := newFakeRoomStore(room)
	bookings := &fakeBookingStore{bookings: []model.Booking{
		{ID: "b1", RoomID: "r1", Status: model.BookingPending},
	}}
	h := NewBookingHandler(bookings, rooms, &fakeNotifier{})

	c, rec := newTestContext(t, http.MethodPut, "/api/bookings/b1/status?status=confirmed", "")
	c.SetParamNames("id")
	c.SetParamValues("b1")
	if err := h.UpdateBookingStatus(c); err != nil {
		t.Fatalf("UpdateBookingStatus() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if bookings.bookings[0].Status != model.BookingConfirmed {
		t.Errorf("booking status = %q, want confirmed", bookings.bookings[0].Status)
	}
	got, _ := rooms.GetByID(c.Request().Context(), "r1")
	if got.AvailableSlots != 2 || got.AvailabilityStatus != model.AvailabilityAvailable {
		t.Errorf("room mutated by booking status change: %+v", got)
	}
}
