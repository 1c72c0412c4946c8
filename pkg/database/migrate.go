package database

import (
	"context"
	"fmt"
)

// Startup DDL. The partial unique index is what makes the no-double-booking
// invariant hold under concurrent inserts: cancelled rows fall outside it,
// so cancelling releases the date.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS bookings (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL,
		date TEXT NOT NULL,
		guests INTEGER NOT NULL,
		event_type TEXT NOT NULL,
		hall TEXT NOT NULL,
		package TEXT NOT NULL,
		total DOUBLE PRECISION NOT NULL,
		deposit DOUBLE PRECISION NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS contact_messages (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		message TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_date ON bookings (date)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_hall ON bookings (hall)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings (status)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_bookings_active_hall_date
		ON bookings (hall, date) WHERE status <> 'cancelled'`,
}

// Migrate creates the tables and indexes if they do not exist yet.
func Migrate(ctx context.Context, db PgxIface) error {
	for _, stmt := range migrations {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("run migration: %w", err)
		}
	}
	return nil
}
