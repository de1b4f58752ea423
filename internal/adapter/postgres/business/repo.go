// Package business implements the Business repository using PostgreSQL.
package business

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/V1p3er/anbargar/internal/adapter/postgres"
	"github.com/V1p3er/anbargar/internal/domain"
)

// Repo provides business persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new business repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const businessColumns = "id, name, created_at, updated_at"

// Create inserts a new business.
func (r *Repo) Create(ctx context.Context, name string) (*domain.Business, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("businesses").
		Columns("name").
		Values(name).
		Suffix("RETURNING " + businessColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert business: %w", err)
	}

	var b domain.Business
	if err := querier.QueryRow(ctx, sql, args...).Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, postgres.MapError(err, "business")
	}

	return &b, nil
}

// AddUser links a user to a business.
func (r *Repo) AddUser(ctx context.Context, businessID, userID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("business_users").
		Columns("business_id", "user_id").
		Values(businessID, userID).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert business_user: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "business_user")
	}

	return nil
}

// FirstForUser returns the user's primary (earliest-linked) business.
// Returns domain.ErrNotFound if the user has no business.
func (r *Repo) FirstForUser(ctx context.Context, userID uuid.UUID) (*domain.Business, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select("b.id", "b.name", "b.created_at", "b.updated_at").
		From("businesses b").
		Join("business_users bu ON bu.business_id = b.id").
		Where("bu.user_id = ?", userID).
		OrderBy("bu.created_at ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select business: %w", err)
	}

	var b domain.Business
	if err := querier.QueryRow(ctx, sql, args...).Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, postgres.MapError(err, "business")
	}

	return &b, nil
}

// GetByID returns a business by primary key.
func (r *Repo) GetByID(ctx context.Context, businessID uuid.UUID) (*domain.Business, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select("id", "name", "created_at", "updated_at").
		From("businesses").
		Where("id = ?", businessID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select business: %w", err)
	}

	var b domain.Business
	if err := querier.QueryRow(ctx, sql, args...).Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, postgres.MapError(err, "business")
	}

	return &b, nil
}
