package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/V1p3er/anbargar/internal/domain"
)

// ApplyDelta moves stock for a (folder, item) pair. Callers run it inside a
// transaction (the event engine wraps the whole event in one); the entry row
// is locked for the remainder of that transaction.
//
// Semantics, all silent successes:
//   - nil folderID or itemID: no-op.
//   - ADD with no existing entry: lazily create one. The unit comes from the
//     line item, falling back to "unit".
//   - SUBTRACT with no existing entry: no-op, no entry created.
//   - SUBTRACT below zero: clamp at zero.
func (s *Service) ApplyDelta(ctx context.Context, folderID, itemID *uuid.UUID, dir domain.Direction, quantity float64, unit *string) error {
	if folderID == nil || itemID == nil {
		return nil
	}

	entry, err := s.entries.GetForUpdate(ctx, *folderID, *itemID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get ledger entry: %w", err)
		}

		if dir == domain.DirectionSubtract {
			return nil
		}

		u := domain.DefaultUnit
		if unit != nil && *unit != "" {
			u = *unit
		}
		if _, err := s.entries.Create(ctx, *folderID, *itemID, u, quantity); err != nil {
			return fmt.Errorf("create ledger entry: %w", err)
		}
		return nil
	}

	next := entry.Quantity
	switch dir {
	case domain.DirectionAdd:
		next += quantity
	case domain.DirectionSubtract:
		next -= quantity
		if next < 0 {
			next = 0
		}
	default:
		return domain.NewValidationError("direction", "unknown")
	}

	if err := s.entries.SetQuantity(ctx, entry.ID, next); err != nil {
		return fmt.Errorf("set ledger quantity: %w", err)
	}

	return nil
}
