package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/V1p3er/anbargar/internal/domain"
)

// CreateItemInput holds the parameters for creating an item.
type CreateItemInput struct {
	Name        string
	SKU         *string
	Barcode     *string
	Description *string
	Value       *float64
	HasQRCode   bool
}

// UpdateItemInput holds a partial item update. Nil fields are left untouched.
// SetValue/SetBarcode/SetSKU distinguish clearing from not changing.
type UpdateItemInput struct {
	Name        *string
	SKU         *string
	SetSKU      bool
	Barcode     *string
	SetBarcode  bool
	Description *string
	Value       *float64
	SetValue    bool
	HasQRCode   *bool
}

// CreateItem creates a catalog item. Barcodes are unique within the
// business; a duplicate is a conflict, checked before the insert.
func (s *Service) CreateItem(ctx context.Context, businessID uuid.UUID, input CreateItemInput) (*domain.Item, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", "required")
	}

	if input.Barcode != nil && *input.Barcode != "" {
		taken, err := s.items.BarcodeExists(ctx, businessID, *input.Barcode, uuid.Nil)
		if err != nil {
			return nil, fmt.Errorf("check barcode: %w", err)
		}
		if taken {
			return nil, fmt.Errorf("barcode %q: %w", *input.Barcode, domain.ErrAlreadyExists)
		}
	}

	it, err := s.items.Create(ctx, &domain.Item{
		BusinessID:  businessID,
		Name:        name,
		SKU:         input.SKU,
		Barcode:     input.Barcode,
		Description: input.Description,
		Value:       input.Value,
		HasQRCode:   input.HasQRCode,
	})
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return it, nil
}

// GetItem returns one item of the business.
func (s *Service) GetItem(ctx context.Context, businessID, itemID uuid.UUID) (*domain.Item, error) {
	return s.items.GetByID(ctx, businessID, itemID)
}

// ListItems returns all items of the business.
func (s *Service) ListItems(ctx context.Context, businessID uuid.UUID) ([]domain.Item, error) {
	return s.items.List(ctx, businessID)
}

// UpdateItem applies a partial update. The barcode uniqueness check is
// scoped to the business, same as on create.
func (s *Service) UpdateItem(ctx context.Context, businessID, itemID uuid.UUID, input UpdateItemInput) (*domain.Item, error) {
	it, err := s.items.GetByID(ctx, businessID, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domain.NewValidationError("name", "required")
		}
		it.Name = name
	}
	if input.SetSKU {
		it.SKU = normalizeOptional(input.SKU)
	}
	if input.SetBarcode {
		barcode := normalizeOptional(input.Barcode)
		if barcode != nil {
			taken, err := s.items.BarcodeExists(ctx, businessID, *barcode, itemID)
			if err != nil {
				return nil, fmt.Errorf("check barcode: %w", err)
			}
			if taken {
				return nil, fmt.Errorf("barcode %q: %w", *barcode, domain.ErrAlreadyExists)
			}
		}
		it.Barcode = barcode
	}
	if input.Description != nil {
		it.Description = input.Description
	}
	if input.SetValue {
		it.Value = input.Value
	}
	if input.HasQRCode != nil {
		it.HasQRCode = *input.HasQRCode
	}

	updated, err := s.items.Update(ctx, it)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return updated, nil
}

// DeleteItem removes an item. Its ledger rows cascade; event lines keep
// their snapshot with the reference nulled.
func (s *Service) DeleteItem(ctx context.Context, businessID, itemID uuid.UUID) error {
	return s.items.Delete(ctx, businessID, itemID)
}

// normalizeOptional trims an optional string, collapsing empty to nil.
func normalizeOptional(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
