package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/V1p3er/anbargar/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedBusiness creates a business row and returns it.
func SeedBusiness(t *testing.T, pool *pgxpool.Pool) domain.Business {
	t.Helper()
	ctx := context.Background()

	var b domain.Business
	err := pool.QueryRow(ctx,
		`INSERT INTO businesses (name) VALUES ($1)
		 RETURNING id, name, created_at, updated_at`,
		"Test Business "+uniqueSuffix(),
	).Scan(&b.ID, &b.Name, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedBusiness: %v", err)
	}

	return b
}

// SeedFolder creates a folder in a business.
func SeedFolder(t *testing.T, pool *pgxpool.Pool, businessID uuid.UUID) domain.Folder {
	t.Helper()
	ctx := context.Background()

	var f domain.Folder
	err := pool.QueryRow(ctx,
		`INSERT INTO folders (business_id, name) VALUES ($1, $2)
		 RETURNING id, business_id, name, description, parent_id, created_at, updated_at`,
		businessID, "Folder "+uniqueSuffix(),
	).Scan(&f.ID, &f.BusinessID, &f.Name, &f.Description, &f.ParentID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedFolder: %v", err)
	}

	return f
}

// SeedItem creates an item in a business with the given value.
func SeedItem(t *testing.T, pool *pgxpool.Pool, businessID uuid.UUID, value *float64) domain.Item {
	t.Helper()
	ctx := context.Background()

	var it domain.Item
	err := pool.QueryRow(ctx,
		`INSERT INTO items (business_id, name, value) VALUES ($1, $2, $3)
		 RETURNING id, business_id, name, sku, barcode, description, value, has_qr_code, created_at, updated_at`,
		businessID, "Item "+uniqueSuffix(), value,
	).Scan(&it.ID, &it.BusinessID, &it.Name, &it.SKU, &it.Barcode, &it.Description, &it.Value, &it.HasQRCode, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedItem: %v", err)
	}

	return it
}

// SeedLedgerEntry creates a ledger row for a (folder, item) pair.
func SeedLedgerEntry(t *testing.T, pool *pgxpool.Pool, folderID, itemID uuid.UUID, quantity float64) domain.LedgerEntry {
	t.Helper()
	ctx := context.Background()

	var e domain.LedgerEntry
	err := pool.QueryRow(ctx,
		`INSERT INTO folder_items (folder_id, item_id, unit, quantity) VALUES ($1, $2, $3, $4)
		 RETURNING id, folder_id, item_id, unit, quantity, created_at, updated_at`,
		folderID, itemID, domain.DefaultUnit, quantity,
	).Scan(&e.ID, &e.FolderID, &e.ItemID, &e.Unit, &e.Quantity, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedLedgerEntry: %v", err)
	}

	return e
}
