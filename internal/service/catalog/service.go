// Package catalog implements folder, item and unit management.
package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/V1p3er/anbargar/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type folderRepo interface {
	Create(ctx context.Context, f *domain.Folder) (*domain.Folder, error)
	GetByID(ctx context.Context, businessID, folderID uuid.UUID) (*domain.Folder, error)
	List(ctx context.Context, businessID uuid.UUID) ([]domain.Folder, error)
	Update(ctx context.Context, f *domain.Folder) (*domain.Folder, error)
	Delete(ctx context.Context, businessID, folderID uuid.UUID) error
}

type itemRepo interface {
	Create(ctx context.Context, it *domain.Item) (*domain.Item, error)
	GetByID(ctx context.Context, businessID, itemID uuid.UUID) (*domain.Item, error)
	List(ctx context.Context, businessID uuid.UUID) ([]domain.Item, error)
	Update(ctx context.Context, it *domain.Item) (*domain.Item, error)
	Delete(ctx context.Context, businessID, itemID uuid.UUID) error
	BarcodeExists(ctx context.Context, businessID uuid.UUID, barcode string, excludeID uuid.UUID) (bool, error)
}

type unitRepo interface {
	Create(ctx context.Context, u *domain.Unit) (*domain.Unit, error)
	GetByID(ctx context.Context, businessID, unitID uuid.UUID) (*domain.Unit, error)
	List(ctx context.Context, businessID uuid.UUID) ([]domain.Unit, error)
	Update(ctx context.Context, u *domain.Unit) (*domain.Unit, error)
	Delete(ctx context.Context, businessID, unitID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements catalog management.
type Service struct {
	log     *slog.Logger
	folders folderRepo
	items   itemRepo
	units   unitRepo
}

// NewService creates a new Catalog service.
func NewService(logger *slog.Logger, folders folderRepo, items itemRepo, units unitRepo) *Service {
	return &Service{
		log:     logger.With("service", "catalog"),
		folders: folders,
		items:   items,
		units:   units,
	}
}
