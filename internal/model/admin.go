package model

import "time"

// Admin is an administrator identity as stored in the admins table. Records
// are created by registration and only ever read afterwards; there is no
// update path. Email is unique (enforced by the store) and the ID is an
// immutable server-generated UUID.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}
