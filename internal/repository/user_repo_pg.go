package repository

import (
	"context"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, first_name, last_name, email, password_hash, phone_number, address, user_role`

type PGUserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) UserRepository {
	return &PGUserRepository{db: db}
}

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.PhoneNumber, &u.Address, &u.Role)
	return u, err
}

func (r *PGUserRepository) queryOne(ctx context.Context, where string, args ...any) (*domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users `+where, args...))
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *PGUserRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	return collect(rows, err, scanUser)
}

func (r *PGUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.queryOne(ctx, `WHERE id=$1`, id)
}

func (r *PGUserRepository) Save(ctx context.Context, u *domain.User) error {
	if u.ID == 0 {
		return r.db.QueryRow(ctx, `INSERT INTO users (first_name, last_name, email, password_hash, phone_number, address, user_role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.PhoneNumber, u.Address, u.Role).
			Scan(&u.ID)
	}

	cmd, err := r.db.Exec(ctx, `UPDATE users SET first_name=$2, last_name=$3, email=$4, password_hash=$5, phone_number=$6, address=$7, user_role=$8
		WHERE id=$1`, u.ID, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.PhoneNumber, u.Address, u.Role)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PGUserRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "users", id)
}

func (r *PGUserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return existsByID(ctx, r.db, "users", id)
}

func (r *PGUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.queryOne(ctx, `WHERE email=$1`, email)
}

func (r *PGUserRepository) FindByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users WHERE user_role=$1 ORDER BY id`, role)
	return collect(rows, err, scanUser)
}

var _ UserRepository = (*PGUserRepository)(nil)
