package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/elantiq/hostel-booking-api/internal/model"
)

func TestGetStats(t *testing.T) {
	rooms := newFakeRoomStore(
		model.Room{ID: "r1", AvailabilityStatus: model.AvailabilityAvailable},
		model.Room{ID: "r2", AvailabilityStatus: model.AvailabilityFullyBooked},
	)
	bookings := &fakeBookingStore{bookings: []model.Booking{
		{ID: "b1", Status: model.BookingPending},
		{ID: "b2", Status: model.BookingConfirmed},
		{ID: "b3", Status: model.BookingConfirmed},
		{ID: "b4", Status: model.BookingCancelled},
	}}
	contacts := &fakeContactStore{messages: []model.ContactMessage{{ID: "m1"}}}
	h := NewStatsHandler(rooms, bookings, contacts)

	c, rec := newTestContext(t, http.MethodGet, "/api/stats", "")
	if err := h.GetStats(c); err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got map[string]int64
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	want := map[string]int64{
		"total_rooms":        2,
		"available_rooms":    1,
		"total_bookings":     4,
		"pending_bookings":   1,
		"confirmed_bookings": 2,
		"total_messages":     1,
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %d, want %d", k, got[k], v)
		}
	}
}
