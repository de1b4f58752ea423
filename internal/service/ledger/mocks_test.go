package ledger

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/V1p3er/anbargar/internal/domain"
)

var _ ledgerRepo = &ledgerRepoMock{}

type ledgerRepoMock struct {
	GetForUpdateFunc   func(ctx context.Context, folderID, itemID uuid.UUID) (*domain.LedgerEntry, error)
	CreateFunc         func(ctx context.Context, folderID, itemID uuid.UUID, unit string, quantity float64) (*domain.LedgerEntry, error)
	SetQuantityFunc    func(ctx context.Context, entryID uuid.UUID, quantity float64) error
	ListByBusinessFunc func(ctx context.Context, businessID uuid.UUID) ([]domain.InventoryRow, error)
	TotalValueFunc     func(ctx context.Context, businessID uuid.UUID) (float64, error)
	CountLowStockFunc  func(ctx context.Context, businessID uuid.UUID, threshold float64) (int, error)

	mu    sync.Mutex
	calls struct {
		Create      int
		SetQuantity int
	}
}

func (m *ledgerRepoMock) GetForUpdate(ctx context.Context, folderID, itemID uuid.UUID) (*domain.LedgerEntry, error) {
	if m.GetForUpdateFunc == nil {
		panic("ledgerRepoMock.GetForUpdateFunc is nil")
	}
	return m.GetForUpdateFunc(ctx, folderID, itemID)
}

func (m *ledgerRepoMock) Create(ctx context.Context, folderID, itemID uuid.UUID, unit string, quantity float64) (*domain.LedgerEntry, error) {
	if m.CreateFunc == nil {
		panic("ledgerRepoMock.CreateFunc is nil")
	}
	m.mu.Lock()
	m.calls.Create++
	m.mu.Unlock()
	return m.CreateFunc(ctx, folderID, itemID, unit, quantity)
}

func (m *ledgerRepoMock) SetQuantity(ctx context.Context, entryID uuid.UUID, quantity float64) error {
	if m.SetQuantityFunc == nil {
		panic("ledgerRepoMock.SetQuantityFunc is nil")
	}
	m.mu.Lock()
	m.calls.SetQuantity++
	m.mu.Unlock()
	return m.SetQuantityFunc(ctx, entryID, quantity)
}

func (m *ledgerRepoMock) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]domain.InventoryRow, error) {
	if m.ListByBusinessFunc == nil {
		panic("ledgerRepoMock.ListByBusinessFunc is nil")
	}
	return m.ListByBusinessFunc(ctx, businessID)
}

func (m *ledgerRepoMock) TotalValue(ctx context.Context, businessID uuid.UUID) (float64, error) {
	if m.TotalValueFunc == nil {
		panic("ledgerRepoMock.TotalValueFunc is nil")
	}
	return m.TotalValueFunc(ctx, businessID)
}

func (m *ledgerRepoMock) CountLowStock(ctx context.Context, businessID uuid.UUID, threshold float64) (int, error) {
	if m.CountLowStockFunc == nil {
		panic("ledgerRepoMock.CountLowStockFunc is nil")
	}
	return m.CountLowStockFunc(ctx, businessID, threshold)
}

func (m *ledgerRepoMock) CreateCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.Create
}

func (m *ledgerRepoMock) SetQuantityCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls.SetQuantity
}

type counterMock struct {
	CountByBusinessFunc func(ctx context.Context, businessID uuid.UUID) (int, error)
}

func (m *counterMock) CountByBusiness(ctx context.Context, businessID uuid.UUID) (int, error) {
	if m.CountByBusinessFunc == nil {
		panic("counterMock.CountByBusinessFunc is nil")
	}
	return m.CountByBusinessFunc(ctx, businessID)
}
