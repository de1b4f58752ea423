// Package forecast implements the stockout predictor: per-item burn rates
// derived from SELL history, projected against current stock.
package forecast

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/V1p3er/anbargar/internal/config"
	"github.com/V1p3er/anbargar/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type itemRepo interface {
	List(ctx context.Context, businessID uuid.UUID) ([]domain.Item, error)
}

type ledgerRepo interface {
	TotalForItem(ctx context.Context, businessID, itemID uuid.UUID) (float64, error)
}

type salesRepo interface {
	SalesSince(ctx context.Context, businessID, itemID uuid.UUID, cutoff time.Time) ([]domain.Sale, error)
}

// ResultCache is an optional JSON result cache. A nil cache disables
// memoization. Exported so callers can wire it conditionally.
type ResultCache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the stockout predictor.
type Service struct {
	log    *slog.Logger
	items  itemRepo
	ledger ledgerRepo
	sales  salesRepo
	cache  ResultCache
	cfg    config.ForecastConfig
	now    func() time.Time
}

// NewService creates a new Forecast service. cache may be nil.
func NewService(
	logger *slog.Logger,
	items itemRepo,
	ledger ledgerRepo,
	sales salesRepo,
	cache ResultCache,
	cfg config.ForecastConfig,
) *Service {
	return &Service{
		log:    logger.With("service", "forecast"),
		items:  items,
		ledger: ledger,
		sales:  sales,
		cache:  cache,
		cfg:    cfg,
		now:    time.Now,
	}
}
