package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/V1p3er/anbargar/internal/domain"
	"github.com/V1p3er/anbargar/internal/service/event"
)

// eventService defines the minimal interface needed by EventHandler.
type eventService interface {
	Create(ctx context.Context, businessID uuid.UUID, input event.CreateInput) (*domain.Event, error)
	Get(ctx context.Context, businessID, eventID uuid.UUID) (*domain.Event, error)
	List(ctx context.Context, businessID uuid.UUID) ([]domain.Event, error)
	Update(ctx context.Context, businessID, eventID uuid.UUID, input event.UpdateInput) (*domain.Event, error)
	Delete(ctx context.Context, businessID, eventID uuid.UUID) error
}

// EventHandler serves event ledger REST endpoints.
type EventHandler struct {
	svc eventService
	log *slog.Logger
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(svc eventService, logger *slog.Logger) *EventHandler {
	return &EventHandler{svc: svc, log: logger.With("handler", "event")}
}

type eventLineRequest struct {
	ItemID   *uuid.UUID `json:"item_id"`
	Name     string     `json:"name"`
	Quantity *float64   `json:"quantity"`
	Unit     *string    `json:"unit"`
	Value    *float64   `json:"value"`
	SKU      *string    `json:"sku"`
	Barcode  *string    `json:"barcode"`
}

type createEventRequest struct {
	Type                string             `json:"type"`
	Description         *string            `json:"description"`
	FolderID            *uuid.UUID         `json:"folder_id"`
	OriginFolderID      *uuid.UUID         `json:"origin_folder_id"`
	DestinationFolderID *uuid.UUID         `json:"destination_folder_id"`
	CustomerName        string             `json:"customer_name"`
	CustomerPhone       string             `json:"customer_phone"`
	CustomerAddress     string             `json:"customer_address"`
	Items               []eventLineRequest `json:"items"`
}

type updateEventRequest struct {
	Description *string `json:"description"`
}

type eventLineResponse struct {
	ID       string   `json:"id"`
	ItemID   *string  `json:"item_id"`
	Name     string   `json:"name"`
	SKU      *string  `json:"sku"`
	Barcode  *string  `json:"barcode"`
	Quantity float64  `json:"quantity"`
	Unit     *string  `json:"unit"`
	Value    *float64 `json:"value"`
}

type eventResponse struct {
	ID                  string              `json:"id"`
	Type                string              `json:"type"`
	Description         *string             `json:"description"`
	FolderID            *string             `json:"folder_id"`
	OriginFolderID      *string             `json:"origin_folder_id"`
	DestinationFolderID *string             `json:"destination_folder_id"`
	CustomerID          *string             `json:"customer_id"`
	Items               []eventLineResponse `json:"items"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

// Create handles POST /api/events.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	businessID, ok := businessFromCtx(w, r)
	if !ok {
		return
	}
	var req createEventRequest
	if !decodeBody(w, r, &req) {
		return
	}

	input := event.CreateInput{
		Type:                domain.EventType(req.Type),
		Description:         req.Description,
		FolderID:            req.FolderID,
		OriginFolderID:      req.OriginFolderID,
		DestinationFolderID: req.DestinationFolderID,
		CustomerName:        req.CustomerName,
		CustomerPhone:       req.CustomerPhone,
		CustomerAddress:     req.CustomerAddress,
	}
	for _, line := range req.Items {
		input.Items = append(input.Items, event.LineInput{
			ItemID:   line.ItemID,
			Name:     line.Name,
			Quantity: line.Quantity,
			Unit:     line.Unit,
			Value:    line.Value,
			SKU:      line.SKU,
			Barcode:  line.Barcode,
		})
	}

	e, err := h.svc.Create(r.Context(), businessID, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEventResponse(e))
}

// List handles GET /api/events. Newest first.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	businessID, ok := businessFromCtx(w, r)
	if !ok {
		return
	}

	events, err := h.svc.List(r.Context(), businessID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]eventResponse, 0, len(events))
	for i := range events {
		resp = append(resp, toEventResponse(&events[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/events/{id}.
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	businessID, ok := businessFromCtx(w, r)
	if !ok {
		return
	}
	eventID, ok := pathID(w, r)
	if !ok {
		return
	}

	e, err := h.svc.Get(r.Context(), businessID, eventID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEventResponse(e))
}

// Update handles PATCH /api/events/{id}. Events are immutable except for
// the description.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	businessID, ok := businessFromCtx(w, r)
	if !ok {
		return
	}
	eventID, ok := pathID(w, r)
	if !ok {
		return
	}
	var req updateEventRequest
	if !decodeBody(w, r, &req) {
		return
	}

	e, err := h.svc.Update(r.Context(), businessID, eventID, event.UpdateInput{
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEventResponse(e))
}

// Delete handles DELETE /api/events/{id}. The event's inventory effect is
// rolled back before the record disappears.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	businessID, ok := businessFromCtx(w, r)
	if !ok {
		return
	}
	eventID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), businessID, eventID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toEventResponse(e *domain.Event) eventResponse {
	resp := eventResponse{
		ID:                  e.ID.String(),
		Type:                string(e.Type),
		Description:         e.Description,
		FolderID:            uuidPtrString(e.FolderID),
		OriginFolderID:      uuidPtrString(e.OriginFolderID),
		DestinationFolderID: uuidPtrString(e.DestinationFolderID),
		CustomerID:          uuidPtrString(e.CustomerID),
		Items:               make([]eventLineResponse, 0, len(e.Items)),
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
	for _, line := range e.Items {
		resp.Items = append(resp.Items, eventLineResponse{
			ID:       line.ID.String(),
			ItemID:   uuidPtrString(line.ItemID),
			Name:     line.Name,
			SKU:      line.SKU,
			Barcode:  line.Barcode,
			Quantity: line.Quantity,
			Unit:     line.Unit,
			Value:    line.Value,
		})
	}
	return resp
}
