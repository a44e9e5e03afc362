package repository

import (
	"context"
	"database/sql"

	"github.com/elantiq/hostel-booking-api/internal/model"
)

// maxContactList caps the contact message listing, mirroring the booking cap.
const maxContactList = 500

// ContactRepo provides persistence for contact messages. The collection is
// append-only: no update or delete statements exist.
type ContactRepo struct{ DB *sql.DB }

func NewContactRepo(db *sql.DB) *ContactRepo { return &ContactRepo{DB: db} }

// Create inserts a contact message.
func (r *ContactRepo) Create(ctx context.Context, m model.ContactMessage) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO contact_messages (id,name,email,message,created_at) VALUES (?,?,?,?,?)",
		m.ID, m.Name, m.Email, m.Message, encodeTime(m.CreatedAt))
	return err
}

// List returns contact messages newest first, capped at maxContactList.
func (r *ContactRepo) List(ctx context.Context) ([]model.ContactMessage, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,email,message,created_at FROM contact_messages ORDER BY created_at DESC LIMIT ?",
		maxContactList)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.ContactMessage, 0)
	for rows.Next() {
		var m model.ContactMessage
		var createdAt string
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &createdAt); err != nil {
			return nil, err
		}
		m.CreatedAt = decodeTime(createdAt)
		out = append(out, m)
	}
	return out, rows.Err()
}

// Count returns the total number of contact messages.
func (r *ContactRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM contact_messages").Scan(&n)
	return n, err
}
