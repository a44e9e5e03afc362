package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/elantiq/hostel-booking-api/internal/model"
)

// AdminRepo provides persistence for administrator identities. Records are
// insert-and-read only; there is no update or delete path in the API.
type AdminRepo struct{ DB *sql.DB }

func NewAdminRepo(db *sql.DB) *AdminRepo { return &AdminRepo{DB: db} }

const adminColumns = "id,email,password_hash,name,created_at"

// Create inserts an admin record. A duplicate email trips the unique index
// and is reported as ErrEmailExists.
func (r *AdminRepo) Create(ctx context.Context, a model.Admin) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO admins ("+adminColumns+") VALUES (?,?,?,?,?)",
		a.ID, a.Email, a.PasswordHash, a.Name, encodeTime(a.CreatedAt))
	if err != nil {
		// MySQL duplicate-key error code.
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrEmailExists
		}
		return err
	}
	return nil
}

func (r *AdminRepo) scanOne(row *sql.Row) (model.Admin, error) {
	var a model.Admin
	var createdAt string
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Name, &createdAt)
	if err == sql.ErrNoRows {
		return model.Admin{}, ErrAdminNotFound
	}
	if err != nil {
		return model.Admin{}, err
	}
	a.CreatedAt = decodeTime(createdAt)
	return a, nil
}

// GetByEmail fetches an admin by email, matched exactly as stored.
func (r *AdminRepo) GetByEmail(ctx context.Context, email string) (model.Admin, error) {
	return r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT "+adminColumns+" FROM admins WHERE email=? LIMIT 1", email))
}

// GetByID fetches an admin by id. The auth middleware calls this on every
// authenticated request; results are never cached, so deleting an admin
// locks the account out immediately even though its token stays signed.
func (r *AdminRepo) GetByID(ctx context.Context, id string) (model.Admin, error) {
	return r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT "+adminColumns+" FROM admins WHERE id=? LIMIT 1", id))
}

// Count returns the total number of admin records.
func (r *AdminRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM admins").Scan(&n)
	return n, err
}
