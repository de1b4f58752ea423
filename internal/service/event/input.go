package event

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/V1p3er/anbargar/internal/domain"
)

// CreateInput holds the parameters for creating an event.
//
// Folder references are optional even for the types that use them: an event
// without the refs its type needs is still recorded, it just moves no stock.
type CreateInput struct {
	Type                domain.EventType
	Description         *string
	FolderID            *uuid.UUID
	OriginFolderID      *uuid.UUID
	DestinationFolderID *uuid.UUID

	CustomerName    string
	CustomerPhone   string
	CustomerAddress string

	Items []LineInput
}

// LineInput holds the parameters for a single event line.
type LineInput struct {
	ItemID   *uuid.UUID
	Name     string
	Quantity *float64
	Unit     *string
	Value    *float64
	SKU      *string
	Barcode  *string
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if !i.Type.Valid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be BUY, SELL or MOVE"})
	}
	if len(i.Items) == 0 {
		errs = append(errs, domain.FieldError{Field: "items", Message: "required"})
	}

	for idx, line := range i.Items {
		if strings.TrimSpace(line.Name) == "" {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("items[%d].name", idx),
				Message: "required",
			})
		}
		if line.Quantity == nil {
			errs = append(errs, domain.FieldError{
				Field:   fmt.Sprintf("items[%d].quantity", idx),
				Message: "required",
			})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the parameters for updating an event. Only the
// description is mutable.
type UpdateInput struct {
	Description *string
}
