package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/V1p3er/anbargar/internal/domain"
)

// CreateUnitInput holds the parameters for creating a measurement unit.
type CreateUnitInput struct {
	Name        string
	Symbol      string
	Description *string
}

// UpdateUnitInput holds a partial unit update.
type UpdateUnitInput struct {
	Name        *string
	Symbol      *string
	Description *string
}

// CreateUnit creates a measurement unit. Name and symbol are both required.
func (s *Service) CreateUnit(ctx context.Context, businessID uuid.UUID, input CreateUnitInput) (*domain.Unit, error) {
	name := strings.TrimSpace(input.Name)
	symbol := strings.TrimSpace(input.Symbol)

	var errs []domain.FieldError
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if symbol == "" {
		errs = append(errs, domain.FieldError{Field: "symbol", Message: "required"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	u, err := s.units.Create(ctx, &domain.Unit{
		BusinessID:  businessID,
		Name:        name,
		Symbol:      symbol,
		Description: input.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("create unit: %w", err)
	}
	return u, nil
}

// GetUnit returns one unit of the business.
func (s *Service) GetUnit(ctx context.Context, businessID, unitID uuid.UUID) (*domain.Unit, error) {
	return s.units.GetByID(ctx, businessID, unitID)
}

// ListUnits returns all units of the business.
func (s *Service) ListUnits(ctx context.Context, businessID uuid.UUID) ([]domain.Unit, error) {
	return s.units.List(ctx, businessID)
}

// UpdateUnit applies a partial update to a unit.
func (s *Service) UpdateUnit(ctx context.Context, businessID, unitID uuid.UUID, input UpdateUnitInput) (*domain.Unit, error) {
	u, err := s.units.GetByID(ctx, businessID, unitID)
	if err != nil {
		return nil, fmt.Errorf("get unit: %w", err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domain.NewValidationError("name", "required")
		}
		u.Name = name
	}
	if input.Symbol != nil {
		symbol := strings.TrimSpace(*input.Symbol)
		if symbol == "" {
			return nil, domain.NewValidationError("symbol", "required")
		}
		u.Symbol = symbol
	}
	if input.Description != nil {
		u.Description = input.Description
	}

	updated, err := s.units.Update(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("update unit: %w", err)
	}
	return updated, nil
}

// DeleteUnit removes a unit.
func (s *Service) DeleteUnit(ctx context.Context, businessID, unitID uuid.UUID) error {
	return s.units.Delete(ctx, businessID, unitID)
}
