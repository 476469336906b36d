package repository

import (
	"context"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const roomColumns = `id, room_number, room_type, capacity, price_per_night, room_status, description, smoking_allowed, floor_number`

type PGRoomRepository struct {
	db *pgxpool.Pool
}

func NewRoomRepository(db *pgxpool.Pool) RoomRepository {
	return &PGRoomRepository{db: db}
}

func scanRoom(row pgx.Row) (domain.Room, error) {
	var r domain.Room
	err := row.Scan(&r.ID, &r.RoomNumber, &r.Type, &r.Capacity, &r.PricePerNight, &r.Status, &r.Description, &r.SmokingAllowed, &r.FloorNumber)
	return r, err
}

func (r *PGRoomRepository) query(ctx context.Context, where string, args ...any) ([]domain.Room, error) {
	rows, err := r.db.Query(ctx, `SELECT `+roomColumns+` FROM rooms `+where+` ORDER BY id`, args...)
	return collect(rows, err, scanRoom)
}

func (r *PGRoomRepository) queryOne(ctx context.Context, where string, args ...any) (*domain.Room, error) {
	room, err := scanRoom(r.db.QueryRow(ctx, `SELECT `+roomColumns+` FROM rooms `+where, args...))
	if err != nil {
		return nil, notFound(err)
	}
	return &room, nil
}

func (r *PGRoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	return r.query(ctx, "")
}

func (r *PGRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	return r.queryOne(ctx, `WHERE id=$1`, id)
}

func (r *PGRoomRepository) Save(ctx context.Context, room *domain.Room) error {
	if room.ID == 0 {
		return r.db.QueryRow(ctx, `INSERT INTO rooms (room_number, room_type, capacity, price_per_night, room_status, description, smoking_allowed, floor_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`, room.RoomNumber, room.Type, room.Capacity, room.PricePerNight, room.Status, room.Description, room.SmokingAllowed, room.FloorNumber).
			Scan(&room.ID)
	}

	cmd, err := r.db.Exec(ctx, `UPDATE rooms SET room_number=$2, room_type=$3, capacity=$4, price_per_night=$5, room_status=$6, description=$7, smoking_allowed=$8, floor_number=$9
		WHERE id=$1`, room.ID, room.RoomNumber, room.Type, room.Capacity, room.PricePerNight, room.Status, room.Description, room.SmokingAllowed, room.FloorNumber)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGRoomRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "rooms", id)
}

func (r *PGRoomRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return existsByID(ctx, r.db, "rooms", id)
}

func (r *PGRoomRepository) FindByRoomNumber(ctx context.Context, number string) (*domain.Room, error) {
	return r.queryOne(ctx, `WHERE room_number=$1`, number)
}

func (r *PGRoomRepository) FindByType(ctx context.Context, roomType domain.RoomType) ([]domain.Room, error) {
	return r.query(ctx, `WHERE room_type=$1`, roomType)
}

func (r *PGRoomRepository) FindByStatus(ctx context.Context, status domain.RoomStatus) ([]domain.Room, error) {
	return r.query(ctx, `WHERE room_status=$1`, status)
}

func (r *PGRoomRepository) FindByPriceBetween(ctx context.Context, min, max float64) ([]domain.Room, error) {
	return r.query(ctx, `WHERE price_per_night BETWEEN $1 AND $2`, min, max)
}

func (r *PGRoomRepository) FindByCapacityAtLeast(ctx context.Context, capacity int) ([]domain.Room, error) {
	return r.query(ctx, `WHERE capacity >= $1`, capacity)
}

func (r *PGRoomRepository) FindByFloor(ctx context.Context, floor int) ([]domain.Room, error) {
	return r.query(ctx, `WHERE floor_number=$1`, floor)
}

var _ RoomRepository = (*PGRoomRepository)(nil)
