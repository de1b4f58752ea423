package event

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/V1p3er/anbargar/internal/domain"
)

// Update changes an event's description. Events are otherwise immutable and
// an edit never touches the ledger.
func (s *Service) Update(ctx context.Context, businessID, eventID uuid.UUID, input UpdateInput) (*domain.Event, error) {
	e, err := s.events.UpdateDescription(ctx, businessID, eventID, input.Description)
	if err != nil {
		return nil, fmt.Errorf("update event description: %w", err)
	}
	return e, nil
}

// Get returns one event with its line items.
func (s *Service) Get(ctx context.Context, businessID, eventID uuid.UUID) (*domain.Event, error) {
	e, err := s.events.GetByID(ctx, businessID, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

// List returns all events of a business, newest first.
func (s *Service) List(ctx context.Context, businessID uuid.UUID) ([]domain.Event, error) {
	events, err := s.events.List(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}
