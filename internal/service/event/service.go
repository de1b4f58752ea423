// Package event implements the event engine: BUY/SELL/MOVE records whose
// creation and deletion drive the inventory ledger.
package event

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/V1p3er/anbargar/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type eventRepo interface {
	Create(ctx context.Context, e *domain.Event) (*domain.Event, error)
	CreateItem(ctx context.Context, li *domain.EventItem) (*domain.EventItem, error)
	GetByID(ctx context.Context, businessID, eventID uuid.UUID) (*domain.Event, error)
	List(ctx context.Context, businessID uuid.UUID) ([]domain.Event, error)
	UpdateDescription(ctx context.Context, businessID, eventID uuid.UUID, description *string) (*domain.Event, error)
	Delete(ctx context.Context, businessID, eventID uuid.UUID) error
	SalesSince(ctx context.Context, businessID, itemID uuid.UUID, cutoff time.Time) ([]domain.Sale, error)
}

type itemRepo interface {
	GetByID(ctx context.Context, businessID, itemID uuid.UUID) (*domain.Item, error)
	ResolveByName(ctx context.Context, businessID uuid.UUID, name string) (*uuid.UUID, error)
}

type folderRepo interface {
	GetByID(ctx context.Context, businessID, folderID uuid.UUID) (*domain.Folder, error)
}

type customerRepo interface {
	GetByPhone(ctx context.Context, businessID uuid.UUID, phone string) (*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
}

type deltaApplier interface {
	ApplyDelta(ctx context.Context, folderID, itemID *uuid.UUID, dir domain.Direction, quantity float64, unit *string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the event engine business logic.
type Service struct {
	log       *slog.Logger
	events    eventRepo
	items     itemRepo
	folders   folderRepo
	customers customerRepo
	ledger    deltaApplier
	tx        txManager
}

// NewService creates a new Event service.
func NewService(
	logger *slog.Logger,
	events eventRepo,
	items itemRepo,
	folders folderRepo,
	customers customerRepo,
	ledger deltaApplier,
	tx txManager,
) *Service {
	return &Service{
		log:       logger.With("service", "event"),
		events:    events,
		items:     items,
		folders:   folders,
		customers: customers,
		ledger:    ledger,
		tx:        tx,
	}
}
