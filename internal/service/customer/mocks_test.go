package customer

import (
	"context"

	"github.com/google/uuid"

	"github.com/V1p3er/anbargar/internal/domain"
)

var _ customerRepo = &customerRepoMock{}

type customerRepoMock struct {
	CreateFunc      func(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	GetByIDFunc     func(ctx context.Context, businessID, customerID uuid.UUID) (*domain.Customer, error)
	ListFunc        func(ctx context.Context, businessID uuid.UUID) ([]domain.Customer, error)
	UpdateFunc      func(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	DeleteFunc      func(ctx context.Context, businessID, customerID uuid.UUID) error
	PhoneExistsFunc func(ctx context.Context, businessID uuid.UUID, phone string, excludeID uuid.UUID) (bool, error)
	EmailExistsFunc func(ctx context.Context, businessID uuid.UUID, email string, excludeID uuid.UUID) (bool, error)
}

func (m *customerRepoMock) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	if m.CreateFunc == nil {
		panic("customerRepoMock.CreateFunc is nil")
	}
	return m.CreateFunc(ctx, c)
}

func (m *customerRepoMock) GetByID(ctx context.Context, businessID, customerID uuid.UUID) (*domain.Customer, error) {
	if m.GetByIDFunc == nil {
		panic("customerRepoMock.GetByIDFunc is nil")
	}
	return m.GetByIDFunc(ctx, businessID, customerID)
}

func (m *customerRepoMock) List(ctx context.Context, businessID uuid.UUID) ([]domain.Customer, error) {
	if m.ListFunc == nil {
		panic("customerRepoMock.ListFunc is nil")
	}
	return m.ListFunc(ctx, businessID)
}

func (m *customerRepoMock) Update(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	if m.UpdateFunc == nil {
		panic("customerRepoMock.UpdateFunc is nil")
	}
	return m.UpdateFunc(ctx, c)
}

func (m *customerRepoMock) Delete(ctx context.Context, businessID, customerID uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("customerRepoMock.DeleteFunc is nil")
	}
	return m.DeleteFunc(ctx, businessID, customerID)
}

func (m *customerRepoMock) PhoneExists(ctx context.Context, businessID uuid.UUID, phone string, excludeID uuid.UUID) (bool, error) {
	if m.PhoneExistsFunc == nil {
		panic("customerRepoMock.PhoneExistsFunc is nil")
	}
	return m.PhoneExistsFunc(ctx, businessID, phone, excludeID)
}

func (m *customerRepoMock) EmailExists(ctx context.Context, businessID uuid.UUID, email string, excludeID uuid.UUID) (bool, error) {
	if m.EmailExistsFunc == nil {
		panic("customerRepoMock.EmailExistsFunc is nil")
	}
	return m.EmailExistsFunc(ctx, businessID, email, excludeID)
}
