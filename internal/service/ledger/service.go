// Package ledger implements the inventory ledger: per-(folder, item)
// quantity records mutated through ADD/SUBTRACT deltas.
package ledger

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/V1p3er/anbargar/internal/config"
	"github.com/V1p3er/anbargar/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type ledgerRepo interface {
	GetForUpdate(ctx context.Context, folderID, itemID uuid.UUID) (*domain.LedgerEntry, error)
	Create(ctx context.Context, folderID, itemID uuid.UUID, unit string, quantity float64) (*domain.LedgerEntry, error)
	SetQuantity(ctx context.Context, entryID uuid.UUID, quantity float64) error
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]domain.InventoryRow, error)
	TotalValue(ctx context.Context, businessID uuid.UUID) (float64, error)
	CountLowStock(ctx context.Context, businessID uuid.UUID, threshold float64) (int, error)
}

type folderCounter interface {
	CountByBusiness(ctx context.Context, businessID uuid.UUID) (int, error)
}

type itemCounter interface {
	CountByBusiness(ctx context.Context, businessID uuid.UUID) (int, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements ledger mutations and inventory reads.
type Service struct {
	log     *slog.Logger
	entries ledgerRepo
	folders folderCounter
	items   itemCounter
	cfg     config.InventoryConfig
}

// NewService creates a new Ledger service.
func NewService(
	logger *slog.Logger,
	entries ledgerRepo,
	folders folderCounter,
	items itemCounter,
	cfg config.InventoryConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "ledger"),
		entries: entries,
		folders: folders,
		items:   items,
		cfg:     cfg,
	}
}
