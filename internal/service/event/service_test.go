package event

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/V1p3er/anbargar/internal/domain"
)

func ptrFloat(f float64) *float64 { return &f }

// passthroughEventRepo returns a mock whose Create/CreateItem echo their
// input back with a fresh ID.
func passthroughEventRepo() *eventRepoMock {
	return &eventRepoMock{
		CreateFunc: func(ctx context.Context, e *domain.Event) (*domain.Event, error) {
			created := *e
			created.ID = uuid.New()
			return &created, nil
		},
		CreateItemFunc: func(ctx context.Context, li *domain.EventItem) (*domain.EventItem, error) {
			created := *li
			created.ID = uuid.New()
			return &created, nil
		},
	}
}

func okFolders() *folderRepoMock {
	return &folderRepoMock{
		GetByIDFunc: func(ctx context.Context, businessID, folderID uuid.UUID) (*domain.Folder, error) {
			return &domain.Folder{ID: folderID, BusinessID: businessID}, nil
		},
	}
}

func newTestService(events *eventRepoMock, items *itemRepoMock, folders *folderRepoMock, customers *customerRepoMock, ledger *deltaApplierMock) *Service {
	return NewService(slog.Default(), events, items, folders, customers, ledger, &txManagerMock{})
}

// ─── Create: validation ─────────────────────────────────────────────────────

func TestService_Create_InvalidType(t *testing.T) {
	t.Parallel()

	svc := newTestService(passthroughEventRepo(), &itemRepoMock{}, okFolders(), &customerRepoMock{}, &deltaApplierMock{})

	_, err := svc.Create(context.Background(), uuid.New(), CreateInput{
		Type:  "TRANSFER",
		Items: []LineInput{{Name: "Rice", Quantity: ptrFloat(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_Create_EmptyItems(t *testing.T) {
	t.Parallel()

	svc := newTestService(passthroughEventRepo(), &itemRepoMock{}, okFolders(), &customerRepoMock{}, &deltaApplierMock{})

	_, err := svc.Create(context.Background(), uuid.New(), CreateInput{Type: domain.EventTypeBuy})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_Create_LineMissingNameOrQuantity(t *testing.T) {
	t.Parallel()

	svc := newTestService(passthroughEventRepo(), &itemRepoMock{}, okFolders(), &customerRepoMock{}, &deltaApplierMock{})

	_, err := svc.Create(context.Background(), uuid.New(), CreateInput{
		Type:  domain.EventTypeBuy,
		Items: []LineInput{{Name: "  ", Quantity: ptrFloat(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Create(context.Background(), uuid.New(), CreateInput{
		Type:  domain.EventTypeBuy,
		Items: []LineInput{{Name: "Rice"}},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ─── Create: ledger effects ─────────────────────────────────────────────────

func TestService_Create_BuyAddsToFolder(t *testing.T) {
	t.Parallel()

	businessID := uuid.New()
	folderID := uuid.New()
	itemID := uuid.New()

	items := &itemRepoMock{
		GetByIDFunc: func(ctx context.Context, b, i uuid.UUID) (*domain.Item, error) {
			return &domain.Item{ID: i, BusinessID: b}, nil
		},
	}
	ledger := &deltaApplierMock{}
	svc := newTestService(passthroughEventRepo(), items, okFolders(), &customerRepoMock{}, ledger)

	e, err := svc.Create(context.Background(), businessID, CreateInput{
		Type:     domain.EventTypeBuy,
		FolderID: &folderID,
		Items:    []LineInput{{ItemID: &itemID, Name: "Rice", Quantity: ptrFloat(5)}},
	})
	require.NoError(t, err)
	require.Len(t, e.Items, 1)

	calls := ledger.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, folderID, calls[0].FolderID)
	assert.Equal(t, itemID, calls[0].ItemID)
	assert.Equal(t, domain.DirectionAdd, calls[0].Direction)
	assert.Equal(t, 5.0, calls[0].Quantity)
}

func TestService_Create_MoveSubtractsThenAdds(t *testing.T) {
	t.Parallel()

	businessID := uuid.New()
	origin := uuid.New()
	destination := uuid.New()
	itemID := uuid.New()

	items := &itemRepoMock{
		GetByIDFunc: func(ctx context.Context, b, i uuid.UUID) (*domain.Item, error) {
			return &domain.Item{ID: i, BusinessID: b}, nil
		},
	}
	ledger := &deltaApplierMock{}
	svc := newTestService(passthroughEventRepo(), items, okFolders(), &customerRepoMock{}, ledger)

	_, err := svc.Create(context.Background(), businessID, CreateInput{
		Type:                domain.EventTypeMove,
		OriginFolderID:      &origin,
		DestinationFolderID: &destination,
		Items:               []LineInput{{ItemID: &itemID, Name: "Rice", Quantity: ptrFloat(3)}},
	})
	require.NoError(t, err)

	calls := ledger.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, origin, calls[0].FolderID)
	assert.Equal(t, domain.DirectionSubtract, calls[0].Direction)
	assert.Equal(t, destination, calls[1].FolderID)
	assert.Equal(t, domain.DirectionAdd, calls[1].Direction)
}

func TestService_Create_MissingFolderRefsQuietNoOp(t *testing.T) {
	t.Parallel()

	itemID := uuid.New()
	items := &itemRepoMock{
		GetByIDFunc: func(ctx context.Context, b, i uuid.UUID) (*domain.Item, error) {
			return &domain.Item{ID: i, BusinessID: b}, nil
		},
	}
	ledger := &deltaApplierMock{}
	svc := newTestService(passthroughEventRepo(), items, okFolders(), &customerRepoMock{}, ledger)

	// BUY without folder: event created, no ledger effect.
	e, err := svc.Create(context.Background(), uuid.New(), CreateInput{
		Type:  domain.EventTypeBuy,
		Items: []LineInput{{ItemID: &itemID, Name: "Rice", Quantity: ptrFloat(5)}},
	})
	require.NoError(t, err)
	assert.Len(t, e.Items, 1)
	assert.Empty(t, ledger.Calls())

	// MOVE with only origin: same.
	origin := uuid.New()
	_, err = svc.Create(context.Background(), uuid.New(), CreateInput{
		Type:           domain.EventTypeMove,
		OriginFolderID: &origin,
		Items:          []LineInput{{ItemID: &itemID, Name: "Rice", Quantity: ptrFloat(5)}},
	})
	require.NoError(t, err)
	assert.Empty(t, ledger.Calls())
}

func TestService_Create_FolderOutsideBusiness(t *testing.T) {
	t.Parallel()

	folderID := uuid.New()
	folders := &folderRepoMock{
		GetByIDFunc: func(ctx context.Context, b, f uuid.UUID) (*domain.Folder, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := newTestService(passthroughEventRepo(), &itemRepoMock{}, folders, &customerRepoMock{}, &deltaApplierMock{})

	_, err := svc.Create(context.Background(), uuid.New(), CreateInput{
		Type:     domain.EventTypeBuy,
		FolderID: &folderID,
		Items:    []LineInput{{Name: "Rice", Quantity: ptrFloat(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ─── Create: name resolution ────────────────────────────────────────────────

func TestService_Create_ResolvesItemByUniqueName(t *testing.T) {
	t.Parallel()

	businessID := uuid.New()
	folderID := uuid.New()
	resolvedID := uuid.New()

	items := &itemRepoMock{
		ResolveByNameFunc: func(ctx context.Context, b uuid.UUID, name string) (*uuid.UUID, error) {
			assert.Equal(t, "Rice", name)
			return &resolvedID, nil
		},
	}
	ledger := &deltaApplierMock{}
	svc := newTestService(passthroughEventRepo(), items, okFolders(), &customerRepoMock{}, ledger)

	e, err := svc.Create(context.Background(), businessID, CreateInput{
		Type:     domain.EventTypeBuy,
		FolderID: &folderID,
		Items:    []LineInput{{Name: "Rice", Quantity: ptrFloat(2)}},
	})
	require.NoError(t, err)
	require.NotNil(t, e.Items[0].ItemID)
	assert.Equal(t, resolvedID, *e.Items[0].ItemID)

	calls := ledger.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, resolvedID, calls[0].ItemID)
}

func TestService_Create_AmbiguousNameLeavesLineUnlinked(t *testing.T) {
	t.Parallel()

	folderID := uuid.New()
	items := &itemRepoMock{
		ResolveByNameFunc: func(ctx context.Context, b uuid.UUID, name string) (*uuid.UUID, error) {
			return nil, nil // zero or multiple matches
		},
	}
	ledger := &deltaApplierMock{}
	svc := newTestService(passthroughEventRepo(), items, okFolders(), &customerRepoMock{}, ledger)

	e, err := svc.Create(context.Background(), uuid.New(), CreateInput{
		Type:     domain.EventTypeBuy,
		FolderID: &folderID,
		Items:    []LineInput{{Name: "Rice", Quantity: ptrFloat(2)}},
	})
	require.NoError(t, err)
	assert.Nil(t, e.Items[0].ItemID)
	assert.Empty(t, ledger.Calls())
}

// ─── Create: customer upsert ────────────────────────────────────────────────

func TestService_Create_SellUpsertsNewCustomer(t *testing.T) {
	t.Parallel()

	businessID := uuid.New()
	folderID := uuid.New()
	customerID := uuid.New()

	customers := &customerRepoMock{
		GetByPhoneFunc: func(ctx context.Context, b uuid.UUID, phone string) (*domain.Customer, error) {
			return nil, domain.ErrNotFound
		},
		CreateFunc: func(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
			assert.Equal(t, "Ali", c.FirstName)
			require.NotNil(t, c.LastName)
			assert.Equal(t, "Rezaei", *c.LastName)
			require.NotNil(t, c.Phone)
			assert.Equal(t, "09121234567", *c.Phone)
			created := *c
			created.ID = customerID
			return &created, nil
		},
	}
	items := &itemRepoMock{
		ResolveByNameFunc: func(ctx context.Context, b uuid.UUID, name string) (*uuid.UUID, error) {
			return nil, nil
		},
	}
	svc := newTestService(passthroughEventRepo(), items, okFolders(), customers, &deltaApplierMock{})

	e, err := svc.Create(context.Background(), businessID, CreateInput{
		Type:          domain.EventTypeSell,
		FolderID:      &folderID,
		CustomerName:  "Ali Rezaei",
		CustomerPhone: "09121234567",
		Items:         []LineInput{{Name: "Rice", Quantity: ptrFloat(1)}},
	})
	require.NoError(t, err)
	require.NotNil(t, e.CustomerID)
	assert.Equal(t, customerID, *e.CustomerID)
}

func TestService_Create_SellUpdatesExistingCustomerByPhone(t *testing.T) {
	t.Parallel()

	businessID := uuid.New()
	existingID := uuid.New()

	customers := &customerRepoMock{
		GetByPhoneFunc: func(ctx context.Context, b uuid.UUID, phone string) (*domain.Customer, error) {
			old := "Old"
			return &domain.Customer{ID: existingID, BusinessID: b, FirstName: old}, nil
		},
		UpdateFunc: func(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
			assert.Equal(t, existingID, c.ID)
			assert.Equal(t, "New", c.FirstName)
			return c, nil
		},
	}
	items := &itemRepoMock{
		ResolveByNameFunc: func(ctx context.Context, b uuid.UUID, name string) (*uuid.UUID, error) {
			return nil, nil
		},
	}
	svc := newTestService(passthroughEventRepo(), items, okFolders(), customers, &deltaApplierMock{})

	e, err := svc.Create(context.Background(), businessID, CreateInput{
		Type:          domain.EventTypeSell,
		CustomerName:  "New",
		CustomerPhone: "09121234567",
		Items:         []LineInput{{Name: "Rice", Quantity: ptrFloat(1)}},
	})
	require.NoError(t, err)
	require.NotNil(t, e.CustomerID)
	assert.Equal(t, existingID, *e.CustomerID)
}

func TestService_Create_BuyIgnoresCustomerInfo(t *testing.T) {
	t.Parallel()

	items := &itemRepoMock{
		ResolveByNameFunc: func(ctx context.Context, b uuid.UUID, name string) (*uuid.UUID, error) {
			return nil, nil
		},
	}
	customers := &customerRepoMock{} // any call would panic
	svc := newTestService(passthroughEventRepo(), items, okFolders(), customers, &deltaApplierMock{})

	e, err := svc.Create(context.Background(), uuid.New(), CreateInput{
		Type:         domain.EventTypeBuy,
		CustomerName: "Ali",
		Items:        []LineInput{{Name: "Rice", Quantity: ptrFloat(1)}},
	})
	require.NoError(t, err)
	assert.Nil(t, e.CustomerID)
}

// ─── Delete: reversal ───────────────────────────────────────────────────────

func TestService_Delete_BuyReversalSubtracts(t *testing.T) {
	t.Parallel()

	businessID := uuid.New()
	eventID := uuid.New()
	folderID := uuid.New()
	itemID := uuid.New()

	events := passthroughEventRepo()
	events.GetByIDFunc = func(ctx context.Context, b, e uuid.UUID) (*domain.Event, error) {
		return &domain.Event{
			ID:         eventID,
			BusinessID: b,
			Type:       domain.EventTypeBuy,
			FolderID:   &folderID,
			Items:      []domain.EventItem{{ItemID: &itemID, Name: "Rice", Quantity: 5}},
		}, nil
	}
	events.DeleteFunc = func(ctx context.Context, b, e uuid.UUID) error { return nil }

	ledger := &deltaApplierMock{}
	svc := newTestService(events, &itemRepoMock{}, okFolders(), &customerRepoMock{}, ledger)

	require.NoError(t, svc.Delete(context.Background(), businessID, eventID))

	calls := ledger.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, domain.DirectionSubtract, calls[0].Direction)
	assert.Equal(t, 5.0, calls[0].Quantity)
}

func TestService_Delete_MoveReversalAddsOriginSubtractsDestination(t *testing.T) {
	t.Parallel()

	origin := uuid.New()
	destination := uuid.New()
	itemID := uuid.New()

	events := passthroughEventRepo()
	events.GetByIDFunc = func(ctx context.Context, b, e uuid.UUID) (*domain.Event, error) {
		return &domain.Event{
			ID:                  e,
			BusinessID:          b,
			Type:                domain.EventTypeMove,
			OriginFolderID:      &origin,
			DestinationFolderID: &destination,
			Items:               []domain.EventItem{{ItemID: &itemID, Name: "Rice", Quantity: 3}},
		}, nil
	}
	events.DeleteFunc = func(ctx context.Context, b, e uuid.UUID) error { return nil }

	ledger := &deltaApplierMock{}
	svc := newTestService(events, &itemRepoMock{}, okFolders(), &customerRepoMock{}, ledger)

	require.NoError(t, svc.Delete(context.Background(), uuid.New(), uuid.New()))

	calls := ledger.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, origin, calls[0].FolderID)
	assert.Equal(t, domain.DirectionAdd, calls[0].Direction)
	assert.Equal(t, destination, calls[1].FolderID)
	assert.Equal(t, domain.DirectionSubtract, calls[1].Direction)
}

func TestService_Delete_SkipsDetachedLines(t *testing.T) {
	t.Parallel()

	folderID := uuid.New()

	events := passthroughEventRepo()
	events.GetByIDFunc = func(ctx context.Context, b, e uuid.UUID) (*domain.Event, error) {
		return &domain.Event{
			ID:         e,
			BusinessID: b,
			Type:       domain.EventTypeSell,
			FolderID:   &folderID,
			Items:      []domain.EventItem{{ItemID: nil, Name: "Deleted item", Quantity: 2}},
		}, nil
	}
	events.DeleteFunc = func(ctx context.Context, b, e uuid.UUID) error { return nil }

	ledger := &deltaApplierMock{}
	svc := newTestService(events, &itemRepoMock{}, okFolders(), &customerRepoMock{}, ledger)

	require.NoError(t, svc.Delete(context.Background(), uuid.New(), uuid.New()))
	assert.Empty(t, ledger.Calls())
}

func TestService_Delete_NotFound(t *testing.T) {
	t.Parallel()

	events := passthroughEventRepo()
	events.GetByIDFunc = func(ctx context.Context, b, e uuid.UUID) (*domain.Event, error) {
		return nil, domain.ErrNotFound
	}

	svc := newTestService(events, &itemRepoMock{}, okFolders(), &customerRepoMock{}, &deltaApplierMock{})

	err := svc.Delete(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ─── Update ─────────────────────────────────────────────────────────────────

func TestService_Update_DescriptionOnly(t *testing.T) {
	t.Parallel()

	desc := "corrected note"
	events := passthroughEventRepo()
	events.UpdateDescriptionFunc = func(ctx context.Context, b, e uuid.UUID, d *string) (*domain.Event, error) {
		require.NotNil(t, d)
		assert.Equal(t, desc, *d)
		return &domain.Event{ID: e, BusinessID: b, Description: d}, nil
	}

	ledger := &deltaApplierMock{}
	svc := newTestService(events, &itemRepoMock{}, okFolders(), &customerRepoMock{}, ledger)

	e, err := svc.Update(context.Background(), uuid.New(), uuid.New(), UpdateInput{Description: &desc})
	require.NoError(t, err)
	require.NotNil(t, e.Description)
	assert.Empty(t, ledger.Calls()) // description edits never touch the ledger
}
