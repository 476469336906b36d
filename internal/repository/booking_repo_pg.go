package repository

import (
	"context"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `id, booking_number, check_in_date, check_out_date, room_id, user_id`

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

func scanBooking(row pgx.Row) (domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(&b.ID, &b.BookingNumber, &b.CheckInDate, &b.CheckOutDate, &b.RoomID, &b.UserID)
	return b, err
}

func (r *PGBookingRepository) query(ctx context.Context, where string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings `+where+` ORDER BY id`, args...)
	return collect(rows, err, scanBooking)
}

func (r *PGBookingRepository) queryOne(ctx context.Context, where string, args ...any) (*domain.Booking, error) {
	b, err := scanBooking(r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings `+where+` ORDER BY id LIMIT 1`, args...))
	if err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (r *PGBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	return r.query(ctx, "")
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.queryOne(ctx, `WHERE id=$1`, id)
}

func (r *PGBookingRepository) Save(ctx context.Context, b *domain.Booking) error {
	if b.ID == 0 {
		return r.db.QueryRow(ctx, `INSERT INTO bookings (booking_number, check_in_date, check_out_date, room_id, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`, b.BookingNumber, b.CheckInDate, b.CheckOutDate, b.RoomID, b.UserID).
			Scan(&b.ID)
	}

	cmd, err := r.db.Exec(ctx, `UPDATE bookings SET booking_number=$2, check_in_date=$3, check_out_date=$4, room_id=$5, user_id=$6
		WHERE id=$1`, b.ID, b.BookingNumber, b.CheckInDate, b.CheckOutDate, b.RoomID, b.UserID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGBookingRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "bookings", id)
}

func (r *PGBookingRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return existsByID(ctx, r.db, "bookings", id)
}

// FindByBookingNumber returns the oldest match; booking numbers are not unique.
func (r *PGBookingRepository) FindByBookingNumber(ctx context.Context, number string) (*domain.Booking, error) {
	return r.queryOne(ctx, `WHERE booking_number=$1`, number)
}

func (r *PGBookingRepository) FindByCheckInBetween(ctx context.Context, start, end time.Time) ([]domain.Booking, error) {
	return r.query(ctx, `WHERE check_in_date BETWEEN $1 AND $2`, start, end)
}

func (r *PGBookingRepository) FindByCheckOutBetween(ctx context.Context, start, end time.Time) ([]domain.Booking, error) {
	return r.query(ctx, `WHERE check_out_date BETWEEN $1 AND $2`, start, end)
}

func (r *PGBookingRepository) FindByRoom(ctx context.Context, roomID int64) ([]domain.Booking, error) {
	return r.query(ctx, `WHERE room_id=$1`, roomID)
}

func (r *PGBookingRepository) FindByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return r.query(ctx, `WHERE user_id=$1`, userID)
}

var _ BookingRepository = (*PGBookingRepository)(nil)
