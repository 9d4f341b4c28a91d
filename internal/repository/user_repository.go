package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/shop-service/internal/domain"
)

// ErrDuplicateEmail is returned when a create collides with the email
// uniqueness constraint. Uniqueness is enforced here by the store, not by
// callers pre-checking; the service layer pre-checks only to produce a
// friendlier failure.
var ErrDuplicateEmail = errors.New("email already registered")

const uniqueViolationCode = "23505"

// UserRepository defines persistence access for customers.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// GetByID returns the password-free profile projection.
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	UpdatePasswordHash(ctx context.Context, id, passwordHash string) error
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (email, phone, password_hash)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		user.Email,
		user.Phone,
		user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
        SELECT id, email, phone, password_hash, created_at
        FROM users WHERE email=$1`

	var user domain.User
	if err := r.pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Phone,
		&user.PasswordHash,
		&user.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	const query = `
        SELECT id, email, phone, created_at
        FROM users WHERE id=$1`

	var profile domain.Profile
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&profile.ID,
		&profile.Email,
		&profile.Phone,
		&profile.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *userRepository) UpdatePasswordHash(ctx context.Context, id, passwordHash string) error {
	const query = `UPDATE users SET password_hash=$1 WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, passwordHash, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
