// Package migrations creates the bookings and users tables.
package migrations

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/nailstudio-booking/internal/logger"
)

// Statements are applied in order; each is idempotent.
var Statements = []string{
	`CREATE TABLE IF NOT EXISTS bookings (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		phone VARCHAR(30) NOT NULL,
		email TEXT,
		age INTEGER,
		service VARCHAR(20) NOT NULL,
		booking_date DATE NOT NULL,
		booking_time TIME NOT NULL,
		hands_and_feet BOOLEAN NOT NULL DEFAULT FALSE,
		special_design BOOLEAN NOT NULL DEFAULT FALSE,
		first_visit BOOLEAN NOT NULL DEFAULT FALSE,
		comments TEXT NOT NULL DEFAULT '',
		price BIGINT NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS bookings_date_idx ON bookings (booking_date, booking_time);`,
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		first_name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NOT NULL,
		phone CHAR(10) NOT NULL,
		username VARCHAR(50) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		registered_at TIMESTAMP NOT NULL DEFAULT NOW(),
		active BOOLEAN NOT NULL DEFAULT TRUE,
		CONSTRAINT users_username_key UNIQUE (username),
		CONSTRAINT users_phone_key UNIQUE (phone)
	);`,
}

// Apply runs Statements against db.
func Apply(ctx context.Context, db *sqlx.DB) error {
	for i, stmt := range Statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	logger.Log.Infow("migrations applied", "count", len(Statements))
	return nil
}
