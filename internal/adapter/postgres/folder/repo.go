// Package folder implements the Folder repository using PostgreSQL.
package folder

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

// Repo provides folder persistence backed by PostgreSQL.
// Every read is scoped to a business; cross-tenant IDs surface as not found.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new folder repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var folderColumns = []string{"id", "business_id", "name", "description", "parent_id", "created_at", "updated_at"}

// Create inserts a new folder.
func (r *Repo) Create(ctx context.Context, f *domain.Folder) (*domain.Folder, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("folders").
		Columns("business_id", "name", "description", "parent_id").
		Values(f.BusinessID, f.Name, f.Description, f.ParentID).
		Suffix("RETURNING id, business_id, name, description, parent_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert folder: %w", err)
	}

	created, err := scanFolder(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "folder")
	}

	return created, nil
}

// GetByID returns a folder by primary key, scoped to the business.
func (r *Repo) GetByID(ctx context.Context, businessID, folderID uuid.UUID) (*domain.Folder, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(folderColumns...).
		From("folders").
		Where("id = ? AND business_id = ?", folderID, businessID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select folder: %w", err)
	}

	f, err := scanFolder(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "folder")
	}

	return f, nil
}

// List returns all folders of a business.
func (r *Repo) List(ctx context.Context, businessID uuid.UUID) ([]domain.Folder, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(folderColumns...).
		From("folders").
		Where("business_id = ?", businessID).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list folders: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	defer rows.Close()

	var folders []domain.Folder
	for rows.Next() {
		f, err := scanFolder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, *f)
	}

	return folders, rows.Err()
}

// Update persists the mutable fields of a folder, scoped to the business.
func (r *Repo) Update(ctx context.Context, f *domain.Folder) (*domain.Folder, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Update("folders").
		Set("name", f.Name).
		Set("description", f.Description).
		Set("parent_id", f.ParentID).
		Set("updated_at", sq.Expr("now()")).
		Where("id = ? AND business_id = ?", f.ID, f.BusinessID).
		Suffix("RETURNING id, business_id, name, description, parent_id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update folder: %w", err)
	}

	updated, err := scanFolder(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "folder")
	}

	return updated, nil
}

// Delete removes a folder, scoped to the business. Child folders keep
// existing with parent_id set to NULL; ledger entries cascade away.
func (r *Repo) Delete(ctx context.Context, businessID, folderID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, "DELETE FROM folders WHERE id = $1 AND business_id = $2", folderID, businessID)
	if err != nil {
		return postgres.MapError(err, "folder")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("folder %s: %w", folderID, domain.ErrNotFound)
	}

	return nil
}

// CountByBusiness returns the number of folders in a business.
func (r *Repo) CountByBusiness(ctx context.Context, businessID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := querier.QueryRow(ctx, "SELECT count(*) FROM folders WHERE business_id = $1", businessID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count folders: %w", err)
	}

	return count, nil
}

func scanFolder(row pgx.Row) (*domain.Folder, error) {
	var f domain.Folder
	err := row.Scan(&f.ID, &f.BusinessID, &f.Name, &f.Description, &f.ParentID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
