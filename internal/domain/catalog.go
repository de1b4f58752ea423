package domain

import (
	"time"

	"github.com/google/uuid"
)

// Folder is a storage location, optionally nested under a parent folder.
type Folder struct {
	ID          uuid.UUID
	BusinessID  uuid.UUID
	Name        string
	Description *string
	ParentID    *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Item is a catalog entry. Barcode, when present, is unique within a business.
type Item struct {
	ID          uuid.UUID
	BusinessID  uuid.UUID
	Name        string
	SKU         *string
	Barcode     *string
	Description *string
	Value       *float64
	HasQRCode   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Unit is a measurement unit (name and display symbol).
type Unit struct {
	ID          uuid.UUID
	BusinessID  uuid.UUID
	Name        string
	Symbol      string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Customer is a business's customer record.
type Customer struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	FirstName  string
	LastName   *string
	Phone      *string
	Email      *string
	Address    *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
