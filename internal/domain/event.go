package domain

import (
	"time"

	"github.com/google/uuid"
)

// EventType classifies an inventory-moving event.
type EventType string

const (
	EventTypeBuy  EventType = "BUY"
	EventTypeSell EventType = "SELL"
	EventTypeMove EventType = "MOVE"
)

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeBuy, EventTypeSell, EventTypeMove:
		return true
	}
	return false
}

// Event is an immutable record of a business transaction. Folder references
// depend on the type: BUY/SELL use FolderID, MOVE uses OriginFolderID and
// DestinationFolderID. Only the description may change after creation.
type Event struct {
	ID                  uuid.UUID
	BusinessID          uuid.UUID
	Type                EventType
	FolderID            *uuid.UUID
	OriginFolderID      *uuid.UUID
	DestinationFolderID *uuid.UUID
	CustomerID          *uuid.UUID
	Description         *string
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Items []EventItem
}

// EventItem is a line item of an event. Name/sku/barcode/value are snapshots
// taken at creation time; ItemID is nullable so the line survives deletion
// of the catalog item.
type EventItem struct {
	ID        uuid.UUID
	EventID   uuid.UUID
	ItemID    *uuid.UUID
	Name      string
	SKU       *string
	Barcode   *string
	Quantity  float64
	Unit      *string
	Value     *float64
	CreatedAt time.Time
}

// Sale is a (timestamp, quantity) pair from a SELL event line, consumed by
// the stockout predictor.
type Sale struct {
	At       time.Time
	Quantity float64
}
