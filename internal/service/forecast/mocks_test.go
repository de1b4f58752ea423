package forecast

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/V1p3er/anbargar/internal/domain"
)

var (
	_ itemRepo    = &itemRepoMock{}
	_ ledgerRepo  = &ledgerRepoMock{}
	_ salesRepo   = &salesRepoMock{}
	_ ResultCache = &cacheMock{}
)

type itemRepoMock struct {
	ListFunc func(ctx context.Context, businessID uuid.UUID) ([]domain.Item, error)
}

func (m *itemRepoMock) List(ctx context.Context, businessID uuid.UUID) ([]domain.Item, error) {
	if m.ListFunc == nil {
		panic("itemRepoMock.ListFunc is nil")
	}
	return m.ListFunc(ctx, businessID)
}

type ledgerRepoMock struct {
	TotalForItemFunc func(ctx context.Context, businessID, itemID uuid.UUID) (float64, error)
}

func (m *ledgerRepoMock) TotalForItem(ctx context.Context, businessID, itemID uuid.UUID) (float64, error) {
	if m.TotalForItemFunc == nil {
		panic("ledgerRepoMock.TotalForItemFunc is nil")
	}
	return m.TotalForItemFunc(ctx, businessID, itemID)
}

type salesRepoMock struct {
	SalesSinceFunc func(ctx context.Context, businessID, itemID uuid.UUID, cutoff time.Time) ([]domain.Sale, error)
}

func (m *salesRepoMock) SalesSince(ctx context.Context, businessID, itemID uuid.UUID, cutoff time.Time) ([]domain.Sale, error) {
	if m.SalesSinceFunc == nil {
		panic("salesRepoMock.SalesSinceFunc is nil")
	}
	return m.SalesSinceFunc(ctx, businessID, itemID, cutoff)
}

// cacheMock keeps JSON payloads in a map, mimicking the Redis adapter.
type cacheMock struct {
	store map[string][]byte
	miss  error
}

func newCacheMock() *cacheMock {
	return &cacheMock{store: map[string][]byte{}, miss: domain.ErrNotFound}
}

func (m *cacheMock) Get(ctx context.Context, key string, dest any) error {
	raw, ok := m.store[key]
	if !ok {
		return m.miss
	}
	return json.Unmarshal(raw, dest)
}

func (m *cacheMock) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = raw
	return nil
}
