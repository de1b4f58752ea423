// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/V1p3er/anbargar/internal/adapter/postgres"
	"github.com/V1p3er/anbargar/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = "id, phone, name, password_hash, created_at, updated_at"

// Create inserts a new user. Phone must already be normalized.
// PasswordHash nil means a passwordless (OTP-only) account.
func (r *Repo) Create(ctx context.Context, phone, name string, passwordHash *string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("users").
		Columns("phone", "name", "password_hash").
		Values(phone, name, passwordHash).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user: %w", err)
	}

	var u domain.User
	row := querier.QueryRow(ctx, sql, args...)
	if err := row.Scan(&u.ID, &u.Phone, &u.Name, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, postgres.MapError(err, "user")
	}

	return &u, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return r.getBy(ctx, "id = ?", userID)
}

// GetByPhone returns a user by normalized phone.
func (r *Repo) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return r.getBy(ctx, "phone = ?", phone)
}

func (r *Repo) getBy(ctx context.Context, pred string, arg any) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select("id", "phone", "name", "password_hash", "created_at", "updated_at").
		From("users").
		Where(pred, arg).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user: %w", err)
	}

	var u domain.User
	row := querier.QueryRow(ctx, sql, args...)
	if err := row.Scan(&u.ID, &u.Phone, &u.Name, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, postgres.MapError(err, "user")
	}

	return &u, nil
}

// ExistsByPhone reports whether a user with the given phone exists.
func (r *Repo) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	err := querier.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM users WHERE phone = $1)", phone).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("user exists by phone: %w", err)
	}

	return exists, nil
}
