package event

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/V1p3er/anbargar/internal/domain"
)

var (
	_ eventRepo    = &eventRepoMock{}
	_ itemRepo     = &itemRepoMock{}
	_ folderRepo   = &folderRepoMock{}
	_ customerRepo = &customerRepoMock{}
	_ deltaApplier = &deltaApplierMock{}
	_ txManager    = &txManagerMock{}
)

type eventRepoMock struct {
	CreateFunc            func(ctx context.Context, e *domain.Event) (*domain.Event, error)
	CreateItemFunc        func(ctx context.Context, li *domain.EventItem) (*domain.EventItem, error)
	GetByIDFunc           func(ctx context.Context, businessID, eventID uuid.UUID) (*domain.Event, error)
	ListFunc              func(ctx context.Context, businessID uuid.UUID) ([]domain.Event, error)
	UpdateDescriptionFunc func(ctx context.Context, businessID, eventID uuid.UUID, description *string) (*domain.Event, error)
	DeleteFunc            func(ctx context.Context, businessID, eventID uuid.UUID) error
	SalesSinceFunc        func(ctx context.Context, businessID, itemID uuid.UUID, cutoff time.Time) ([]domain.Sale, error)
}

func (m *eventRepoMock) Create(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	if m.CreateFunc == nil {
		panic("eventRepoMock.CreateFunc is nil")
	}
	return m.CreateFunc(ctx, e)
}

func (m *eventRepoMock) CreateItem(ctx context.Context, li *domain.EventItem) (*domain.EventItem, error) {
	if m.CreateItemFunc == nil {
		panic("eventRepoMock.CreateItemFunc is nil")
	}
	return m.CreateItemFunc(ctx, li)
}

func (m *eventRepoMock) GetByID(ctx context.Context, businessID, eventID uuid.UUID) (*domain.Event, error) {
	if m.GetByIDFunc == nil {
		panic("eventRepoMock.GetByIDFunc is nil")
	}
	return m.GetByIDFunc(ctx, businessID, eventID)
}

func (m *eventRepoMock) List(ctx context.Context, businessID uuid.UUID) ([]domain.Event, error) {
	if m.ListFunc == nil {
		panic("eventRepoMock.ListFunc is nil")
	}
	return m.ListFunc(ctx, businessID)
}

func (m *eventRepoMock) UpdateDescription(ctx context.Context, businessID, eventID uuid.UUID, description *string) (*domain.Event, error) {
	if m.UpdateDescriptionFunc == nil {
		panic("eventRepoMock.UpdateDescriptionFunc is nil")
	}
	return m.UpdateDescriptionFunc(ctx, businessID, eventID, description)
}

func (m *eventRepoMock) Delete(ctx context.Context, businessID, eventID uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("eventRepoMock.DeleteFunc is nil")
	}
	return m.DeleteFunc(ctx, businessID, eventID)
}

func (m *eventRepoMock) SalesSince(ctx context.Context, businessID, itemID uuid.UUID, cutoff time.Time) ([]domain.Sale, error) {
	if m.SalesSinceFunc == nil {
		panic("eventRepoMock.SalesSinceFunc is nil")
	}
	return m.SalesSinceFunc(ctx, businessID, itemID, cutoff)
}

type itemRepoMock struct {
	GetByIDFunc       func(ctx context.Context, businessID, itemID uuid.UUID) (*domain.Item, error)
	ResolveByNameFunc func(ctx context.Context, businessID uuid.UUID, name string) (*uuid.UUID, error)
}

func (m *itemRepoMock) GetByID(ctx context.Context, businessID, itemID uuid.UUID) (*domain.Item, error) {
	if m.GetByIDFunc == nil {
		panic("itemRepoMock.GetByIDFunc is nil")
	}
	return m.GetByIDFunc(ctx, businessID, itemID)
}

func (m *itemRepoMock) ResolveByName(ctx context.Context, businessID uuid.UUID, name string) (*uuid.UUID, error) {
	if m.ResolveByNameFunc == nil {
		panic("itemRepoMock.ResolveByNameFunc is nil")
	}
	return m.ResolveByNameFunc(ctx, businessID, name)
}

type folderRepoMock struct {
	GetByIDFunc func(ctx context.Context, businessID, folderID uuid.UUID) (*domain.Folder, error)
}

func (m *folderRepoMock) GetByID(ctx context.Context, businessID, folderID uuid.UUID) (*domain.Folder, error) {
	if m.GetByIDFunc == nil {
		panic("folderRepoMock.GetByIDFunc is nil")
	}
	return m.GetByIDFunc(ctx, businessID, folderID)
}

type customerRepoMock struct {
	GetByPhoneFunc func(ctx context.Context, businessID uuid.UUID, phone string) (*domain.Customer, error)
	CreateFunc     func(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	UpdateFunc     func(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
}

func (m *customerRepoMock) GetByPhone(ctx context.Context, businessID uuid.UUID, phone string) (*domain.Customer, error) {
	if m.GetByPhoneFunc == nil {
		panic("customerRepoMock.GetByPhoneFunc is nil")
	}
	return m.GetByPhoneFunc(ctx, businessID, phone)
}

func (m *customerRepoMock) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	if m.CreateFunc == nil {
		panic("customerRepoMock.CreateFunc is nil")
	}
	return m.CreateFunc(ctx, c)
}

func (m *customerRepoMock) Update(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	if m.UpdateFunc == nil {
		panic("customerRepoMock.UpdateFunc is nil")
	}
	return m.UpdateFunc(ctx, c)
}

// deltaCall records one ApplyDelta invocation for assertions.
type deltaCall struct {
	FolderID  uuid.UUID
	ItemID    uuid.UUID
	Direction domain.Direction
	Quantity  float64
}

type deltaApplierMock struct {
	ApplyDeltaFunc func(ctx context.Context, folderID, itemID *uuid.UUID, dir domain.Direction, quantity float64, unit *string) error

	mu    sync.Mutex
	calls []deltaCall
}

func (m *deltaApplierMock) ApplyDelta(ctx context.Context, folderID, itemID *uuid.UUID, dir domain.Direction, quantity float64, unit *string) error {
	call := deltaCall{Direction: dir, Quantity: quantity}
	if folderID != nil {
		call.FolderID = *folderID
	}
	if itemID != nil {
		call.ItemID = *itemID
	}
	m.mu.Lock()
	m.calls = append(m.calls, call)
	m.mu.Unlock()

	if m.ApplyDeltaFunc != nil {
		return m.ApplyDeltaFunc(ctx, folderID, itemID, dir, quantity, unit)
	}
	return nil
}

func (m *deltaApplierMock) Calls() []deltaCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc == nil {
		return fn(ctx)
	}
	return m.RunInTxFunc(ctx, fn)
}
