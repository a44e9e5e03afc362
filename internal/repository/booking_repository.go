package repository

import (
	"context"
	"database/sql"

	"github.com/elantiq/hostel-booking-api/internal/model"
)

// maxBookingList caps every booking listing. The cap and the created_at
// descending order are part of the API contract, not an optimization.
const maxBookingList = 500

// BookingRepo provides persistence for bookings.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

const bookingColumns = "id,room_id,room_name,room_type,full_name,phone_number,email,school,preferred_move_in_date,status,created_at"

// Create inserts a booking. A single atomic insert: there is no companion
// write to the room, so no transaction is needed.
func (r *BookingRepo) Create(ctx context.Context, b model.Booking) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO bookings ("+bookingColumns+") VALUES (?,?,?,?,?,?,?,?,?,?,?)",
		b.ID, b.RoomID, b.RoomName, b.RoomType, b.FullName, b.PhoneNumber,
		b.Email, b.School, b.PreferredMoveInDate, b.Status, encodeTime(b.CreatedAt))
	return err
}

// List returns bookings newest first, optionally filtered by exact status,
// never more than maxBookingList rows.
func (r *BookingRepo) List(ctx context.Context, status string) ([]model.Booking, error) {
	q := "SELECT " + bookingColumns + " FROM bookings"
	var args []any
	if status != "" {
		q += " WHERE status=?"
		args = append(args, status)
	}
	q += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, maxBookingList)

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Booking, 0)
	for rows.Next() {
		var b model.Booking
		var createdAt string
		if err := rows.Scan(&b.ID, &b.RoomID, &b.RoomName, &b.RoomType, &b.FullName,
			&b.PhoneNumber, &b.Email, &b.School, &b.PreferredMoveInDate,
			&b.Status, &createdAt); err != nil {
			return nil, err
		}
		b.CreatedAt = decodeTime(createdAt)
		out = append(out, b)
	}
	return out, rows.Err()
}

// UpdateStatus sets the status field of one booking and nothing else; room
// slot counters are deliberately not touched. Setting the status a booking
// already has is a no-op success, only a genuinely missing id is an error.
func (r *BookingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE bookings SET status=? WHERE id=?", status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	// Zero rows affected covers both "missing" and "already that status";
	// only the former is an error.
	var exists int
	err = r.DB.QueryRowContext(ctx,
		"SELECT 1 FROM bookings WHERE id=? LIMIT 1", id).Scan(&exists)
	if err == sql.ErrNoRows {
		return ErrBookingNotFound
	}
	return err
}

// Count returns the total number of bookings.
func (r *BookingRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM bookings").Scan(&n)
	return n, err
}

// CountByStatus counts bookings with the given status.
func (r *BookingRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM bookings WHERE status=?", status).Scan(&n)
	return n, err
}
