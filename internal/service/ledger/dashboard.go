package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// DashboardStats aggregates the business overview numbers.
type DashboardStats struct {
	TotalItems    int
	TotalFolders  int
	TotalValue    int
	LowStockCount int
}

// Dashboard returns item/folder counts, the truncated total stock value and
// the low-stock row counter.
func (s *Service) Dashboard(ctx context.Context, businessID uuid.UUID) (*DashboardStats, error) {
	items, err := s.items.CountByBusiness(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("count items: %w", err)
	}

	folders, err := s.folders.CountByBusiness(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("count folders: %w", err)
	}

	value, err := s.entries.TotalValue(ctx, businessID)
	if err != nil {
		return nil, fmt.Errorf("total stock value: %w", err)
	}

	lowStock, err := s.entries.CountLowStock(ctx, businessID, s.cfg.LowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("count low stock: %w", err)
	}

	return &DashboardStats{
		TotalItems:    items,
		TotalFolders:  folders,
		TotalValue:    int(value),
		LowStockCount: lowStock,
	}, nil
}
