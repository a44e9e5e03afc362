package utils

import "github.com/google/uuid"

// NewID returns a random UUID string. Every entity's public key is generated
// here so the API surface never leaks storage row identity.
func NewID() string {
	return uuid.NewString()
}
