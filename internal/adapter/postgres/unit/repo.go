// Package unit implements the Unit repository using PostgreSQL.
package unit

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/V1p3er/anbargar/internal/adapter/postgres"
	"github.com/V1p3er/anbargar/internal/domain"
)

// Repo provides unit persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new unit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const unitColumnsSQL = "id, business_id, name, symbol, description, created_at, updated_at"

var unitColumns = []string{"id", "business_id", "name", "symbol", "description", "created_at", "updated_at"}

// Create inserts a new unit.
func (r *Repo) Create(ctx context.Context, u *domain.Unit) (*domain.Unit, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("units").
		Columns("business_id", "name", "symbol", "description").
		Values(u.BusinessID, u.Name, u.Symbol, u.Description).
		Suffix("RETURNING " + unitColumnsSQL).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert unit: %w", err)
	}

	created, err := scanUnit(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "unit")
	}

	return created, nil
}

// GetByID returns a unit by primary key, scoped to the business.
func (r *Repo) GetByID(ctx context.Context, businessID, unitID uuid.UUID) (*domain.Unit, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(unitColumns...).
		From("units").
		Where("id = ? AND business_id = ?", unitID, businessID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select unit: %w", err)
	}

	u, err := scanUnit(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "unit")
	}

	return u, nil
}

// List returns all units of a business.
func (r *Repo) List(ctx context.Context, businessID uuid.UUID) ([]domain.Unit, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(unitColumns...).
		From("units").
		Where("business_id = ?", businessID).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list units: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()

	var units []domain.Unit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		units = append(units, *u)
	}

	return units, rows.Err()
}

// Update persists the mutable fields of a unit, scoped to the business.
func (r *Repo) Update(ctx context.Context, u *domain.Unit) (*domain.Unit, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Update("units").
		Set("name", u.Name).
		Set("symbol", u.Symbol).
		Set("description", u.Description).
		Set("updated_at", sq.Expr("now()")).
		Where("id = ? AND business_id = ?", u.ID, u.BusinessID).
		Suffix("RETURNING " + unitColumnsSQL).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update unit: %w", err)
	}

	updated, err := scanUnit(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "unit")
	}

	return updated, nil
}

// Delete removes a unit, scoped to the business.
func (r *Repo) Delete(ctx context.Context, businessID, unitID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, "DELETE FROM units WHERE id = $1 AND business_id = $2", unitID, businessID)
	if err != nil {
		return postgres.MapError(err, "unit")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("unit %s: %w", unitID, domain.ErrNotFound)
	}

	return nil
}

func scanUnit(row pgx.Row) (*domain.Unit, error) {
	var u domain.Unit
	err := row.Scan(&u.ID, &u.BusinessID, &u.Name, &u.Symbol, &u.Description, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
