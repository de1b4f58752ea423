package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultUnit is the unit label used when a ledger entry is created
// without an explicit unit.
const DefaultUnit = "unit"

// Direction tells the ledger which way a delta moves stock.
type Direction string

const (
	DirectionAdd      Direction = "ADD"
	DirectionSubtract Direction = "SUBTRACT"
)

// LedgerEntry is the per-(folder, item) quantity record. Quantity is never
// negative: subtractions clamp at zero.
type LedgerEntry struct {
	ID        uuid.UUID
	FolderID  uuid.UUID
	ItemID    uuid.UUID
	Unit      string
	Quantity  float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InventoryRow is a ledger entry joined with folder and item names, as
// returned by the inventory listing.
type InventoryRow struct {
	ID         uuid.UUID
	FolderID   uuid.UUID
	FolderName string
	ItemID     uuid.UUID
	ItemName   string
	Quantity   float64
	Unit       string
}
