package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/V1p3er/anbargar/internal/domain"
)

// GetInventory lists every ledger row of a business with folder and item
// names attached.
func (s *Service) GetInventory(ctx context.Context, businessID uuid.UUID) ([]domain.InventoryRow, error) {
	rows, err := s.entries.ListByBusiness(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	return rows, nil
}
