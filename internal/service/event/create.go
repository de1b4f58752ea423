package event

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/V1p3er/anbargar/internal/domain"
)

// Create records an event and applies its ledger effects atomically.
//
// For SELL events with customer info, the customer is upserted BEFORE the
// transaction opens. This ordering is deliberate: a failed event still leaves
// the upserted customer behind.
func (s *Service) Create(ctx context.Context, businessID uuid.UUID, input CreateInput) (*domain.Event, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkRefs(ctx, businessID, input); err != nil {
		return nil, err
	}

	customerID, err := s.upsertCustomer(ctx, businessID, input)
	if err != nil {
		return nil, err
	}

	var created *domain.Event
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		e := &domain.Event{
			BusinessID:          businessID,
			Type:                input.Type,
			FolderID:            input.FolderID,
			OriginFolderID:      input.OriginFolderID,
			DestinationFolderID: input.DestinationFolderID,
			CustomerID:          customerID,
			Description:         input.Description,
		}

		var createErr error
		created, createErr = s.events.Create(txCtx, e)
		if createErr != nil {
			return fmt.Errorf("create event: %w", createErr)
		}

		for _, line := range input.Items {
			li, lineErr := s.createLine(txCtx, businessID, created, line)
			if lineErr != nil {
				return lineErr
			}
			created.Items = append(created.Items, *li)
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return created, nil
}

// createLine inserts one line item, resolving the item reference by name if
// none was given, then applies the ledger deltas for the event type.
func (s *Service) createLine(ctx context.Context, businessID uuid.UUID, e *domain.Event, line LineInput) (*domain.EventItem, error) {
	itemID := line.ItemID
	if itemID == nil {
		resolved, err := s.items.ResolveByName(ctx, businessID, strings.TrimSpace(line.Name))
		if err != nil {
			return nil, fmt.Errorf("resolve item by name: %w", err)
		}
		itemID = resolved
	}

	li, err := s.events.CreateItem(ctx, &domain.EventItem{
		EventID:  e.ID,
		ItemID:   itemID,
		Name:     strings.TrimSpace(line.Name),
		SKU:      line.SKU,
		Barcode:  line.Barcode,
		Quantity: *line.Quantity,
		Unit:     line.Unit,
		Value:    line.Value,
	})
	if err != nil {
		return nil, fmt.Errorf("create event item: %w", err)
	}

	if li.ItemID == nil {
		return li, nil
	}

	switch e.Type {
	case domain.EventTypeBuy:
		if e.FolderID != nil {
			if err := s.ledger.ApplyDelta(ctx, e.FolderID, li.ItemID, domain.DirectionAdd, li.Quantity, li.Unit); err != nil {
				return nil, err
			}
		}
	case domain.EventTypeSell:
		if e.FolderID != nil {
			if err := s.ledger.ApplyDelta(ctx, e.FolderID, li.ItemID, domain.DirectionSubtract, li.Quantity, li.Unit); err != nil {
				return nil, err
			}
		}
	case domain.EventTypeMove:
		if e.OriginFolderID != nil && e.DestinationFolderID != nil {
			if err := s.ledger.ApplyDelta(ctx, e.OriginFolderID, li.ItemID, domain.DirectionSubtract, li.Quantity, li.Unit); err != nil {
				return nil, err
			}
			if err := s.ledger.ApplyDelta(ctx, e.DestinationFolderID, li.ItemID, domain.DirectionAdd, li.Quantity, li.Unit); err != nil {
				return nil, err
			}
		}
	}

	return li, nil
}

// checkRefs verifies that every referenced folder and explicitly referenced
// item belongs to the caller's business.
func (s *Service) checkRefs(ctx context.Context, businessID uuid.UUID, input CreateInput) error {
	for _, folderID := range []*uuid.UUID{input.FolderID, input.OriginFolderID, input.DestinationFolderID} {
		if folderID == nil {
			continue
		}
		if _, err := s.folders.GetByID(ctx, businessID, *folderID); err != nil {
			return fmt.Errorf("check folder ref: %w", err)
		}
	}

	for _, line := range input.Items {
		if line.ItemID == nil {
			continue
		}
		if _, err := s.items.GetByID(ctx, businessID, *line.ItemID); err != nil {
			return fmt.Errorf("check item ref: %w", err)
		}
	}

	return nil
}

// upsertCustomer attaches a customer to SELL events carrying a name or phone.
// Existing customers are matched by phone within the business; missing names
// fall back to "Customer".
func (s *Service) upsertCustomer(ctx context.Context, businessID uuid.UUID, input CreateInput) (*uuid.UUID, error) {
	name := strings.TrimSpace(input.CustomerName)
	phone := strings.TrimSpace(input.CustomerPhone)
	address := strings.TrimSpace(input.CustomerAddress)

	if input.Type != domain.EventTypeSell || (name == "" && phone == "") {
		return nil, nil
	}

	var firstName, lastName string
	if name != "" {
		parts := strings.SplitN(name, " ", 2)
		firstName = parts[0]
		if len(parts) > 1 {
			lastName = parts[1]
		}
	}

	var existing *domain.Customer
	if phone != "" {
		c, err := s.customers.GetByPhone(ctx, businessID, phone)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("find customer by phone: %w", err)
		}
		existing = c
	}

	if existing != nil {
		if firstName != "" {
			existing.FirstName = firstName
		}
		if lastName != "" {
			existing.LastName = &lastName
		}
		if address != "" {
			existing.Address = &address
		}
		updated, err := s.customers.Update(ctx, existing)
		if err != nil {
			return nil, fmt.Errorf("update customer: %w", err)
		}
		return &updated.ID, nil
	}

	c := &domain.Customer{
		BusinessID: businessID,
		FirstName:  "Customer",
	}
	if firstName != "" {
		c.FirstName = firstName
	}
	if lastName != "" {
		c.LastName = &lastName
	}
	if phone != "" {
		c.Phone = &phone
	}
	if address != "" {
		c.Address = &address
	}

	created, err := s.customers.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return &created.ID, nil
}
