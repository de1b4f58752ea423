package event

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/V1p3er/anbargar/internal/domain"
)

// Delete removes an event and replays the inverse of its ledger effects in
// one transaction.
//
// Reversal is a replay of inverse deltas, not a snapshot restore: if the
// ledger was mutated independently since the event was created, a reversal
// can still clamp at zero and quietly lose part of the amount. Lines whose
// item reference was nulled by a catalog deletion are skipped.
func (s *Service) Delete(ctx context.Context, businessID, eventID uuid.UUID) error {
	e, err := s.events.GetByID(ctx, businessID, eventID)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}

	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, li := range e.Items {
			if li.ItemID == nil {
				continue
			}

			switch e.Type {
			case domain.EventTypeBuy:
				if e.FolderID != nil {
					if err := s.ledger.ApplyDelta(txCtx, e.FolderID, li.ItemID, domain.DirectionSubtract, li.Quantity, li.Unit); err != nil {
						return err
					}
				}
			case domain.EventTypeSell:
				if e.FolderID != nil {
					if err := s.ledger.ApplyDelta(txCtx, e.FolderID, li.ItemID, domain.DirectionAdd, li.Quantity, li.Unit); err != nil {
						return err
					}
				}
			case domain.EventTypeMove:
				if e.OriginFolderID != nil && e.DestinationFolderID != nil {
					if err := s.ledger.ApplyDelta(txCtx, e.OriginFolderID, li.ItemID, domain.DirectionAdd, li.Quantity, li.Unit); err != nil {
						return err
					}
					if err := s.ledger.ApplyDelta(txCtx, e.DestinationFolderID, li.ItemID, domain.DirectionSubtract, li.Quantity, li.Unit); err != nil {
						return err
					}
				}
			}
		}

		if err := s.events.Delete(txCtx, businessID, eventID); err != nil {
			return fmt.Errorf("delete event: %w", err)
		}
		return nil
	})
}
