// Package ledger implements the stock ledger repository using PostgreSQL.
//
// The ledger keeps one row per (folder, item) pair with the current
// quantity. Writers run inside a transaction and take a row lock via
// GetForUpdate, so concurrent deltas against the same pair serialize
// even at read committed.
package ledger

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

// Repo provides ledger persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new ledger repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var entryColumns = []string{"id", "folder_id", "item_id", "unit", "quantity", "created_at", "updated_at"}

// GetForUpdate returns the ledger entry for a (folder, item) pair with a row
// lock held until the surrounding transaction ends. Returns domain.ErrNotFound
// when no entry exists yet.
func (r *Repo) GetForUpdate(ctx context.Context, folderID, itemID uuid.UUID) (*domain.LedgerEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(entryColumns...).
		From("folder_items").
		Where("folder_id = ? AND item_id = ?", folderID, itemID).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select ledger entry: %w", err)
	}

	e, err := scanEntry(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "ledger entry")
	}

	return e, nil
}

// Create inserts a new ledger entry for a (folder, item) pair.
func (r *Repo) Create(ctx context.Context, folderID, itemID uuid.UUID, unit string, quantity float64) (*domain.LedgerEntry, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("folder_items").
		Columns("folder_id", "item_id", "unit", "quantity").
		Values(folderID, itemID, unit, quantity).
		Suffix("RETURNING id, folder_id, item_id, unit, quantity, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert ledger entry: %w", err)
	}

	e, err := scanEntry(querier.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "ledger entry")
	}

	return e, nil
}

// SetQuantity overwrites the quantity of an existing entry.
func (r *Repo) SetQuantity(ctx context.Context, entryID uuid.UUID, quantity float64) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Update("folder_items").
		Set("quantity", quantity).
		Set("updated_at", sq.Expr("now()")).
		Where("id = ?", entryID).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update ledger entry: %w", err)
	}

	tag, err := querier.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "ledger entry")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ledger entry %s: %w", entryID, domain.ErrNotFound)
	}

	return nil
}

// ListByBusiness returns every ledger row of a business joined with folder
// and item names, ordered by folder then item name.
func (r *Repo) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]domain.InventoryRow, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select("fi.id", "fi.folder_id", "f.name", "fi.item_id", "i.name", "fi.quantity", "fi.unit").
		From("folder_items fi").
		Join("folders f ON f.id = fi.folder_id").
		Join("items i ON i.id = fi.item_id").
		Where("f.business_id = ?", businessID).
		OrderBy("f.name ASC", "i.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list inventory: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var out []domain.InventoryRow
	for rows.Next() {
		var row domain.InventoryRow
		if err := rows.Scan(&row.ID, &row.FolderID, &row.FolderName, &row.ItemID, &row.ItemName, &row.Quantity, &row.Unit); err != nil {
			return nil, fmt.Errorf("scan inventory row: %w", err)
		}
		out = append(out, row)
	}

	return out, rows.Err()
}

// TotalForItem returns the summed quantity of an item across all folders of
// a business. Zero when the item has no ledger rows.
func (r *Repo) TotalForItem(ctx context.Context, businessID, itemID uuid.UUID) (float64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total float64
	err := querier.QueryRow(ctx, `
		SELECT COALESCE(SUM(fi.quantity), 0)
		FROM folder_items fi
		JOIN folders f ON f.id = fi.folder_id
		WHERE f.business_id = $1 AND fi.item_id = $2`,
		businessID, itemID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total quantity for item: %w", err)
	}

	return total, nil
}

// TotalValue returns the stock value of a business: Σ quantity × item value
// over all ledger rows, treating items without a value as zero.
func (r *Repo) TotalValue(ctx context.Context, businessID uuid.UUID) (float64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var total float64
	err := querier.QueryRow(ctx, `
		SELECT COALESCE(SUM(fi.quantity * COALESCE(i.value, 0)), 0)
		FROM folder_items fi
		JOIN folders f ON f.id = fi.folder_id
		JOIN items i ON i.id = fi.item_id
		WHERE f.business_id = $1`,
		businessID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total stock value: %w", err)
	}

	return total, nil
}

// CountLowStock returns the number of ledger rows with quantity strictly
// between zero and the threshold. Counted per (folder, item) row, not per
// item total.
func (r *Repo) CountLowStock(ctx context.Context, businessID uuid.UUID, threshold float64) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	err := querier.QueryRow(ctx, `
		SELECT count(*)
		FROM folder_items fi
		JOIN folders f ON f.id = fi.folder_id
		WHERE f.business_id = $1
		  AND fi.quantity > 0
		  AND fi.quantity < $2`,
		businessID, threshold).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count low stock items: %w", err)
	}

	return count, nil
}

func scanEntry(row pgx.Row) (*domain.LedgerEntry, error) {
	var e domain.LedgerEntry
	err := row.Scan(&e.ID, &e.FolderID, &e.ItemID, &e.Unit, &e.Quantity, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
