package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/V1p3er/anbargar/internal/domain"
)

var (
	_ folderRepo = &folderRepoMock{}
	_ itemRepo   = &itemRepoMock{}
	_ unitRepo   = &unitRepoMock{}
)

type folderRepoMock struct {
	CreateFunc  func(ctx context.Context, f *domain.Folder) (*domain.Folder, error)
	GetByIDFunc func(ctx context.Context, businessID, folderID uuid.UUID) (*domain.Folder, error)
	ListFunc    func(ctx context.Context, businessID uuid.UUID) ([]domain.Folder, error)
	UpdateFunc  func(ctx context.Context, f *domain.Folder) (*domain.Folder, error)
	DeleteFunc  func(ctx context.Context, businessID, folderID uuid.UUID) error
}

func (m *folderRepoMock) Create(ctx context.Context, f *domain.Folder) (*domain.Folder, error) {
	if m.CreateFunc == nil {
		panic("folderRepoMock.CreateFunc is nil")
	}
	return m.CreateFunc(ctx, f)
}

func (m *folderRepoMock) GetByID(ctx context.Context, businessID, folderID uuid.UUID) (*domain.Folder, error) {
	if m.GetByIDFunc == nil {
		panic("folderRepoMock.GetByIDFunc is nil")
	}
	return m.GetByIDFunc(ctx, businessID, folderID)
}

func (m *folderRepoMock) List(ctx context.Context, businessID uuid.UUID) ([]domain.Folder, error) {
	if m.ListFunc == nil {
		panic("folderRepoMock.ListFunc is nil")
	}
	return m.ListFunc(ctx, businessID)
}

func (m *folderRepoMock) Update(ctx context.Context, f *domain.Folder) (*domain.Folder, error) {
	if m.UpdateFunc == nil {
		panic("folderRepoMock.UpdateFunc is nil")
	}
	return m.UpdateFunc(ctx, f)
}

func (m *folderRepoMock) Delete(ctx context.Context, businessID, folderID uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("folderRepoMock.DeleteFunc is nil")
	}
	return m.DeleteFunc(ctx, businessID, folderID)
}

type itemRepoMock struct {
	CreateFunc        func(ctx context.Context, it *domain.Item) (*domain.Item, error)
	GetByIDFunc       func(ctx context.Context, businessID, itemID uuid.UUID) (*domain.Item, error)
	ListFunc          func(ctx context.Context, businessID uuid.UUID) ([]domain.Item, error)
	UpdateFunc        func(ctx context.Context, it *domain.Item) (*domain.Item, error)
	DeleteFunc        func(ctx context.Context, businessID, itemID uuid.UUID) error
	BarcodeExistsFunc func(ctx context.Context, businessID uuid.UUID, barcode string, excludeID uuid.UUID) (bool, error)
}

func (m *itemRepoMock) Create(ctx context.Context, it *domain.Item) (*domain.Item, error) {
	if m.CreateFunc == nil {
		panic("itemRepoMock.CreateFunc is nil")
	}
	return m.CreateFunc(ctx, it)
}

func (m *itemRepoMock) GetByID(ctx context.Context, businessID, itemID uuid.UUID) (*domain.Item, error) {
	if m.GetByIDFunc == nil {
		panic("itemRepoMock.GetByIDFunc is nil")
	}
	return m.GetByIDFunc(ctx, businessID, itemID)
}

func (m *itemRepoMock) List(ctx context.Context, businessID uuid.UUID) ([]domain.Item, error) {
	if m.ListFunc == nil {
		panic("itemRepoMock.ListFunc is nil")
	}
	return m.ListFunc(ctx, businessID)
}

func (m *itemRepoMock) Update(ctx context.Context, it *domain.Item) (*domain.Item, error) {
	if m.UpdateFunc == nil {
		panic("itemRepoMock.UpdateFunc is nil")
	}
	return m.UpdateFunc(ctx, it)
}

func (m *itemRepoMock) Delete(ctx context.Context, businessID, itemID uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("itemRepoMock.DeleteFunc is nil")
	}
	return m.DeleteFunc(ctx, businessID, itemID)
}

func (m *itemRepoMock) BarcodeExists(ctx context.Context, businessID uuid.UUID, barcode string, excludeID uuid.UUID) (bool, error) {
	if m.BarcodeExistsFunc == nil {
		panic("itemRepoMock.BarcodeExistsFunc is nil")
	}
	return m.BarcodeExistsFunc(ctx, businessID, barcode, excludeID)
}

type unitRepoMock struct {
	CreateFunc  func(ctx context.Context, u *domain.Unit) (*domain.Unit, error)
	GetByIDFunc func(ctx context.Context, businessID, unitID uuid.UUID) (*domain.Unit, error)
	ListFunc    func(ctx context.Context, businessID uuid.UUID) ([]domain.Unit, error)
	UpdateFunc  func(ctx context.Context, u *domain.Unit) (*domain.Unit, error)
	DeleteFunc  func(ctx context.Context, businessID, unitID uuid.UUID) error
}

func (m *unitRepoMock) Create(ctx context.Context, u *domain.Unit) (*domain.Unit, error) {
	if m.CreateFunc == nil {
		panic("unitRepoMock.CreateFunc is nil")
	}
	return m.CreateFunc(ctx, u)
}

func (m *unitRepoMock) GetByID(ctx context.Context, businessID, unitID uuid.UUID) (*domain.Unit, error) {
	if m.GetByIDFunc == nil {
		panic("unitRepoMock.GetByIDFunc is nil")
	}
	return m.GetByIDFunc(ctx, businessID, unitID)
}

func (m *unitRepoMock) List(ctx context.Context, businessID uuid.UUID) ([]domain.Unit, error) {
	if m.ListFunc == nil {
		panic("unitRepoMock.ListFunc is nil")
	}
	return m.ListFunc(ctx, businessID)
}

func (m *unitRepoMock) Update(ctx context.Context, u *domain.Unit) (*domain.Unit, error) {
	if m.UpdateFunc == nil {
		panic("unitRepoMock.UpdateFunc is nil")
	}
	return m.UpdateFunc(ctx, u)
}

func (m *unitRepoMock) Delete(ctx context.Context, businessID, unitID uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("unitRepoMock.DeleteFunc is nil")
	}
	return m.DeleteFunc(ctx, businessID, unitID)
}
