package database

import (
	"context"
	"fmt"

	"go-gin-cinema-booking/pkg/logger"

	"go.uber.org/zap"
)

const createFilmsTableSQL = `
CREATE TABLE IF NOT EXISTS films (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	category   TEXT NOT NULL DEFAULT '',
	genre      TEXT NOT NULL DEFAULT '',
	duration   INTEGER NOT NULL DEFAULT 0 CHECK (duration >= 0),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createTheatresTableSQL = `
CREATE TABLE IF NOT EXISTS theatres (
	id           TEXT PRIMARY KEY,
	name         TEXT NOT NULL DEFAULT '',
	capacity     INTEGER NOT NULL CHECK (capacity >= 0),
	seat_rows    INTEGER NOT NULL CHECK (seat_rows >= 0),
	seat_columns INTEGER NOT NULL CHECK (seat_columns >= 0),
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createScreeningsTableSQL = `
CREATE TABLE IF NOT EXISTS screenings (
	id              TEXT PRIMARY KEY,
	film_id         TEXT NOT NULL REFERENCES films (id),
	theatre_id      TEXT NOT NULL REFERENCES theatres (id),
	screening_date  TEXT NOT NULL,
	start_time      TEXT NOT NULL,
	seats_remaining INTEGER NOT NULL CHECK (seats_remaining >= 0),
	created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS screenings_film_id_idx ON screenings (film_id);
CREATE INDEX IF NOT EXISTS screenings_theatre_id_idx ON screenings (theatre_id);`

const createBookingsTableSQL = `
CREATE TABLE IF NOT EXISTS bookings (
	id            TEXT PRIMARY KEY,
	no_of_seats   INTEGER NOT NULL CHECK (no_of_seats > 0),
	cost          DOUBLE PRECISION NOT NULL CHECK (cost >= 0),
	email_address TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createTicketTypesTableSQL = `
CREATE TABLE IF NOT EXISTS ticket_types (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	cost       DOUBLE PRECISION NOT NULL CHECK (cost >= 0),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

// ticket_type is a free-form label ("Default") or a ticket_types id, so it carries no foreign key.
const createTicketsTableSQL = `
CREATE TABLE IF NOT EXISTS tickets (
	id           TEXT PRIMARY KEY,
	booking_id   TEXT NOT NULL REFERENCES bookings (id),
	screening_id TEXT NOT NULL REFERENCES screenings (id),
	ticket_type  TEXT NOT NULL,
	seat_row     INTEGER NOT NULL CHECK (seat_row >= 1),
	seat_column  INTEGER NOT NULL CHECK (seat_column >= 1),
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT tickets_screening_seat_key UNIQUE (screening_id, seat_row, seat_column)
);
CREATE INDEX IF NOT EXISTS tickets_booking_id_idx ON tickets (booking_id);`

var migrations = []struct {
	name string
	sql  string
}{
	{"films", createFilmsTableSQL},
	{"theatres", createTheatresTableSQL},
	{"screenings", createScreeningsTableSQL},
	{"bookings", createBookingsTableSQL},
	{"ticket_types", createTicketTypesTableSQL},
	{"tickets", createTicketsTableSQL},
}

// Migrate creates the schema. Every statement is idempotent, so it runs on each start.
func Migrate(ctx context.Context, db DBTX) error {
	log := logger.WithComponent("database")
	for _, m := range migrations {
		if _, err := db.Exec(ctx, m.sql); err != nil {
			return fmt.Errorf("migrate %s: %w", m.name, err)
		}
		log.Debug("migration applied", zap.String("table", m.name))
	}
	log.Info("migrations completed", zap.Int("count", len(migrations)))
	return nil
}
