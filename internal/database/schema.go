package database

import (
	"context"
	"database/sql"
)

// Each entity lives in its own table shaped like a typed document: public
// UUID as the primary key, list fields JSON-encoded, created_at stored as an
// RFC3339 string. Statements are idempotent so startup can always run them.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS rooms (
		id VARCHAR(36) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		room_type VARCHAR(16) NOT NULL,
		price DOUBLE NOT NULL,
		security_deposit DOUBLE NOT NULL,
		description TEXT NOT NULL,
		amenities TEXT NOT NULL,
		images TEXT NOT NULL,
		availability_status VARCHAR(16) NOT NULL,
		total_slots INT NOT NULL,
		available_slots INT NOT NULL,
		created_at VARCHAR(40) NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id VARCHAR(36) PRIMARY KEY,
		room_id VARCHAR(36) NOT NULL,
		room_name VARCHAR(255) NOT NULL,
		room_type VARCHAR(16) NOT NULL,
		full_name VARCHAR(255) NOT NULL,
		phone_number VARCHAR(64) NOT NULL,
		email VARCHAR(255) NOT NULL,
		school VARCHAR(255) NOT NULL,
		preferred_move_in_date VARCHAR(255) NOT NULL,
		status VARCHAR(16) NOT NULL,
		created_at VARCHAR(40) NOT NULL,
		KEY idx_bookings_status (status),
		KEY idx_bookings_created_at (created_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS contact_messages (
		id VARCHAR(36) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		message TEXT NOT NULL,
		created_at VARCHAR(40) NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS admins (
		id VARCHAR(36) PRIMARY KEY,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		name VARCHAR(255) NOT NULL,
		created_at VARCHAR(40) NOT NULL,
		UNIQUE KEY uq_admins_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates any missing tables.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
