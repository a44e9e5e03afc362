package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/elantiq/hostel-booking-api/internal/model"
)

// maxRoomList caps the public room listing.
const maxRoomList = 100

// RoomRepo provides persistence for rooms.
type RoomRepo struct{ DB *sql.DB }

func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{DB: db} }

const roomColumns = "id,name,room_type,price,security_deposit,description,amenities,images,availability_status,total_slots,available_slots,created_at"

func scanRoom(row interface{ Scan(...any) error }) (model.Room, error) {
	var rm model.Room
	var amenities, images, createdAt string
	err := row.Scan(&rm.ID, &rm.Name, &rm.RoomType, &rm.Price, &rm.SecurityDeposit,
		&rm.Description, &amenities, &images, &rm.AvailabilityStatus,
		&rm.TotalSlots, &rm.AvailableSlots, &createdAt)
	if err != nil {
		return model.Room{}, err
	}
	rm.Amenities = decodeStrings(amenities)
	rm.Images = decodeStrings(images)
	rm.CreatedAt = decodeTime(createdAt)
	return rm, nil
}

// List returns rooms optionally filtered by type and availability status.
func (r *RoomRepo) List(ctx context.Context, roomType, availability string) ([]model.Room, error) {
	q := "SELECT " + roomColumns + " FROM rooms"
	var conds []string
	var args []any
	if roomType != "" {
		conds = append(conds, "room_type=?")
		args = append(args, roomType)
	}
	if availability != "" {
		conds = append(conds, "availability_status=?")
		args = append(args, availability)
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " LIMIT ?"
	args = append(args, maxRoomList)

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Room, 0)
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

// GetByID fetches a single room by its public id.
func (r *RoomRepo) GetByID(ctx context.Context, id string) (model.Room, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+roomColumns+" FROM rooms WHERE id=? LIMIT 1", id)
	rm, err := scanRoom(row)
	if err == sql.ErrNoRows {
		return model.Room{}, ErrRoomNotFound
	}
	return rm, err
}

// Create inserts a room. The caller supplies the generated id and timestamp.
func (r *RoomRepo) Create(ctx context.Context, rm model.Room) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO rooms ("+roomColumns+") VALUES (?,?,?,?,?,?,?,?,?,?,?,?)",
		rm.ID, rm.Name, rm.RoomType, rm.Price, rm.SecurityDeposit, rm.Description,
		encodeStrings(rm.Amenities), encodeStrings(rm.Images), rm.AvailabilityStatus,
		rm.TotalSlots, rm.AvailableSlots, encodeTime(rm.CreatedAt))
	return err
}

// Update applies a partial update and returns the resulting room. Only the
// non-nil fields of upd are written; the update itself is a single atomic
// statement. Returns ErrRoomNotFound when the id matches nothing.
func (r *RoomRepo) Update(ctx context.Context, id string, upd model.RoomUpdate) (model.Room, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return model.Room{}, err
	}

	var sets []string
	var args []any
	set := func(col string, v any) {
		sets = append(sets, col+"=?")
		args = append(args, v)
	}
	if upd.Name != nil {
		set("name", *upd.Name)
	}
	if upd.RoomType != nil {
		set("room_type", *upd.RoomType)
	}
	if upd.Price != nil {
		set("price", *upd.Price)
	}
	if upd.SecurityDeposit != nil {
		set("security_deposit", *upd.SecurityDeposit)
	}
	if upd.Description != nil {
		set("description", *upd.Description)
	}
	if upd.Amenities != nil {
		set("amenities", encodeStrings(*upd.Amenities))
	}
	if upd.Images != nil {
		set("images", encodeStrings(*upd.Images))
	}
	if upd.AvailabilityStatus != nil {
		set("availability_status", *upd.AvailabilityStatus)
	}
	if upd.TotalSlots != nil {
		set("total_slots", *upd.TotalSlots)
	}
	if upd.AvailableSlots != nil {
		set("available_slots", *upd.AvailableSlots)
	}

	if len(sets) > 0 {
		args = append(args, id)
		_, err := r.DB.ExecContext(ctx,
			"UPDATE rooms SET "+strings.Join(sets, ",")+" WHERE id=?", args...)
		if err != nil {
			return model.Room{}, err
		}
	}
	return r.GetByID(ctx, id)
}

// Delete removes a room by id. Bookings referencing the room are untouched;
// they keep their snapshots.
func (r *RoomRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM rooms WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRoomNotFound
	}
	return nil
}

// Count returns the total number of rooms.
func (r *RoomRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM rooms").Scan(&n)
	return n, err
}

// CountByAvailability counts rooms with the given availability status.
func (r *RoomRepo) CountByAvailability(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM rooms WHERE availability_status=?", status).Scan(&n)
	return n, err
}
