package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS rooms (
	id              BIGSERIAL PRIMARY KEY,
	room_number     TEXT NOT NULL UNIQUE,
	room_type       TEXT NOT NULL,
	capacity        INTEGER NOT NULL,
	price_per_night DOUBLE PRECISION NOT NULL,
	room_status     TEXT NOT NULL,
	description     TEXT NOT NULL DEFAULT '',
	smoking_allowed TEXT NOT NULL DEFAULT '',
	floor_number    INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
	id            BIGSERIAL PRIMARY KEY,
	first_name    TEXT NOT NULL,
	last_name     TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	phone_number  TEXT NOT NULL,
	address       TEXT NOT NULL,
	user_role     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS bookings (
	id             BIGSERIAL PRIMARY KEY,
	booking_number TEXT NOT NULL,
	check_in_date  DATE NOT NULL,
	check_out_date DATE NOT NULL,
	room_id        BIGINT NOT NULL REFERENCES rooms(id),
	user_id        BIGINT NOT NULL REFERENCES users(id)
);

CREATE TABLE IF NOT EXISTS invoices (
	id              BIGSERIAL PRIMARY KEY,
	booking_id      BIGINT NOT NULL REFERENCES bookings(id),
	user_id         BIGINT NOT NULL REFERENCES users(id),
	invoice_date    TIMESTAMPTZ NOT NULL,
	total_amount    DOUBLE PRECISION NOT NULL,
	payment_status  TEXT NOT NULL,
	payment_method  TEXT NOT NULL DEFAULT '',
	notes           TEXT NOT NULL DEFAULT '',
	tax_amount      DOUBLE PRECISION NOT NULL DEFAULT 0,
	discount_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
	payment_date    TIMESTAMPTZ
);
`

// EnsureSchema creates the tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// NewPGRepositories wires every store to the same pool.
func NewPGRepositories(db *pgxpool.Pool) Repositories {
	return Repositories{
		Rooms:    NewRoomRepository(db),
		Users:    NewUserRepository(db),
		Bookings: NewBookingRepository(db),
		Invoices: NewInvoiceRepository(db),
	}
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func collect[T any](rows pgx.Rows, err error, scan func(pgx.Row) (T, error)) ([]T, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

const foreignKeyViolation = "23503"

func inUse(err error, table string, id int64) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return fmt.Errorf("%s %d: %w", table, id, domain.ErrInUse)
	}
	return err
}

func deleteByID(ctx context.Context, db *pgxpool.Pool, table string, id int64) error {
	cmd, err := db.Exec(ctx, `DELETE FROM `+table+` WHERE id=$1`, id)
	if err != nil {
		return inUse(err, table, id)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func existsByID(ctx context.Context, db *pgxpool.Pool, table string, id int64) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM `+table+` WHERE id=$1)`, id).Scan(&exists)
	return exists, err
}
