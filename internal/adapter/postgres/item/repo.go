// Package item implements the Item repository using PostgreSQL.
package item

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

// Repo provides item persistence backed by PostgreSQL.
// Every read is scoped to a business; cross-tenant IDs surface as not found.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new item repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const itemColumnsSQL = "id, business_id, name, sku, barcode, description, value, has_qr_code, created_at, updated_at"

var itemColumns = []string{"id", "business_id", "name", "sku", "barcode", "description", "value", "has_qr_code", "created_at", "updated_at"}

// Create inserts a new item.
func (r *Repo) Create(ctx context.Context, it *domain.Item) (*domain.Item, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("items").
		Columns("business_id", "name", "sku", "barcode", "description", "value", "has_qr_code").
		Values(it.BusinessID, it.Name, it.SKU, it.Barcode, it.Description, it.Value, it.HasQRCode).
		Suffix("RETURNING " + itemColumnsSQL).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert item: %w", err)
	}

	created, err := scanItem(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "item")
	}

	return created, nil
}

// GetByID returns an item by primary key, scoped to the business.
func (r *Repo) GetByID(ctx context.Context, businessID, itemID uuid.UUID) (*domain.Item, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(itemColumns...).
		From("items").
		Where("id = ? AND business_id = ?", itemID, businessID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select item: %w", err)
	}

	it, err := scanItem(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "item")
	}

	return it, nil
}

// List returns all items of a business.
func (r *Repo) List(ctx context.Context, businessID uuid.UUID) ([]domain.Item, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(itemColumns...).
		From("items").
		Where("business_id = ?", businessID).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list items: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, *it)
	}

	return items, rows.Err()
}

// Update persists the mutable fields of an item, scoped to the business.
func (r *Repo) Update(ctx context.Context, it *domain.Item) (*domain.Item, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Update("items").
		Set("name", it.Name).
		Set("sku", it.SKU).
		Set("barcode", it.Barcode).
		Set("description", it.Description).
		Set("value", it.Value).
		Set("has_qr_code", it.HasQRCode).
		Set("updated_at", sq.Expr("now()")).
		Where("id = ? AND business_id = ?", it.ID, it.BusinessID).
		Suffix("RETURNING " + itemColumnsSQL).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update item: %w", err)
	}

	updated, err := scanItem(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "item")
	}

	return updated, nil
}

// Delete removes an item, scoped to the business. Ledger entries cascade;
// event line items keep their snapshot with item_id set to NULL.
func (r *Repo) Delete(ctx context.Context, businessID, itemID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, "DELETE FROM items WHERE id = $1 AND business_id = $2", itemID, businessID)
	if err != nil {
		return postgres.MapError(err, "item")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %s: %w", itemID, domain.ErrNotFound)
	}

	return nil
}

// CountByBusiness returns the number of items in a business.
func (r *Repo) CountByBusiness(ctx context.Context, businessID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := querier.QueryRow(ctx, "SELECT count(*) FROM items WHERE business_id = $1", businessID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}

	return count, nil
}

// ResolveByName returns the ID of the single item whose name matches
// case-insensitively within the business. Zero or multiple matches return
// nil, nil: ambiguity is not an error, the caller just leaves the line
// item unlinked.
func (r *Repo) ResolveByName(ctx context.Context, businessID uuid.UUID, name string) (*uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx,
		"SELECT id FROM items WHERE business_id = $1 AND lower(name) = lower($2) LIMIT 2",
		businessID, name)
	if err != nil {
		return nil, fmt.Errorf("resolve item by name: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan item id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("resolve item by name: %w", err)
	}

	if len(ids) != 1 {
		return nil, nil
	}
	return &ids[0], nil
}

// BarcodeExists reports whether another item in the business already uses
// the barcode. excludeID skips the item being updated; pass uuid.Nil on create.
func (r *Repo) BarcodeExists(ctx context.Context, businessID uuid.UUID, barcode string, excludeID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	err := querier.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM items WHERE business_id = $1 AND barcode = $2 AND id <> $3)",
		businessID, barcode, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("item barcode exists: %w", err)
	}

	return exists, nil
}

func scanItem(row pgx.Row) (*domain.Item, error) {
	var it domain.Item
	err := row.Scan(&it.ID, &it.BusinessID, &it.Name, &it.SKU, &it.Barcode,
		&it.Description, &it.Value, &it.HasQRCode, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}
