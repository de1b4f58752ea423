package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/V1p3er/anbargar/internal/domain"
	"github.com/V1p3er/anbargar/internal/service/catalog"
)

// catalogService defines the minimal interface needed by CatalogHandler.
type catalogService interface {
	CreateFolder(ctx context.Context, businessID uuid.UUID, input catalog.CreateFolderInput) (*domain.Folder, error)
	GetFolder(ctx context.Context, businessID, folderID uuid.UUID) (*domain.Folder, error)
	ListFolders(ctx context.Context, businessID uuid.UUID) ([]domain.Folder, error)
	UpdateFolder(ctx context.Context, businessID, folderID uuid.UUID, input catalog.UpdateFolderInput) (*domain.Folder, error)
	DeleteFolder(ctx context.Context, businessID, folderID uuid.UUID) error

	CreateItem(ctx context.Context, businessID uuid.UUID, input catalog.CreateItemInput) (*domain.Item, error)
	GetItem(ctx context.Context, businessID, itemID uuid.UUID) (*domain.Item, error)
	ListItems(ctx context.Context, businessID uuid.UUID) ([]domain.Item, error)
	UpdateItem(ctx context.Context, businessID, itemID uuid.UUID, input catalog.UpdateItemInput) (*domain.Item, error)
	DeleteItem(ctx context.Context, businessID, itemID uuid.UUID) error

	CreateUnit(ctx context.Context, businessID uuid.UUID, input catalog.CreateUnitInput) (*domain.Unit, error)
	GetUnit(ctx context.Context, businessID, unitID uuid.UUID) (*domain.Unit, error)
	ListUnits(ctx context.Context, businessID uuid.UUID) ([]domain.Unit, error)
	UpdateUnit(ctx context.Context, businessID, unitID uuid.UUID, input catalog.UpdateUnitInput) (*domain.Unit, error)
	DeleteUnit(ctx context.Context, businessID, unitID uuid.UUID) error
}

// CatalogHandler serves folder, item and unit REST endpoints.
type CatalogHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

type folderResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	ParentID    *string   `json:"parent_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type itemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	SKU         *string   `json:"sku"`
	Barcode     *string   `json:"barcode"`
	Description *string   `json:"description"`
	Value       *float64  `json:"value"`
	HasQRCode   bool      `json:"has_qr_code"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type unitResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Symbol      string    `json:"symbol"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ─── Folders ────────────────────────────────────────────────────────────────

type createFolderRequest struct {
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	ParentID    *uuid.UUID `json:"parent_id"`
}

// CreateFolder handles POST /api/folders.
func (h *CatalogHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	businessID, ok := businessFromCtx(w, r)
	if !ok {
		return
	}
	var req createFolderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	f, err := h.svc.CreateFolder(r.Context(), businessID, catalog.CreateFolderInput{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toFolderResponse(f))
}

// ListFolders handles GET /api/folders.
func (h *CatalogHandler) ListFolders(w http.ResponseWriter, r *http.Request) {
	businessID, ok := businessFromCtx(w, r)
	if !ok {
		return
	}

	folders, err := h.svc.ListFolders(r.Context(), businessID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]folderResponse, 0, len(folders))
	for i := range folders {
		resp = append(resp, toFolderResponse(&folders[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetFolder handles GET /api/folders/{id}.
func (h *CatalogHandler) GetFolder(w http.ResponseWriter, r *http.Request) {
	businessID, ok := businessFromCtx(w, r)
	if !ok {
		return
	}
	folderID, ok := pathID(w, r)
	if !ok {
		return
	}

	f, err := h.svc.GetFolder(r.Context(), businessID, folderID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFolderResponse(f))
}

// UpdateFolder handles PATCH /api/folders/{id}. Only fields present in the
// body change; an explicit null parent_id re-roots the folder.
func (h *CatalogHandler) UpdateFolder(w http.ResponseWriter, r *http.Request) {
	businessID, ok := businessFromCtx(w, r)
	if !ok {
		return
	}
	folderID, ok := pathID(w, r)
	if !ok {
		return
	}

	var raw map[string]json.RawMessage
	if !decodeBody(w, r, &raw) {
		return
	}

	var input catalog.UpdateFolderInput
	if !unmarshalField(w, raw, "name", &input.Name) ||
		!unmarshalField(w, raw, "description", &input.Description) {
		return
	}
	if v, present := raw["parent_id"]; present {
		input.SetParent = true
		if err := json.Unmarshal(v, &input.ParentID); err != nil {
			writeError(w, http.StatusBadRequest, "invalid parent_id")
			return
		}
	}

	f, err := h.svc.UpdateFolder(r.Context(), businessID, folderID, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toFolderResponse(f))
}

// DeleteFolder handles DELETE /api/folders/{id}.
func (h *CatalogHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	businessID, ok := businessFromCtx(w, r)
	if !ok {
		return
	}
	folderID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteFolder(r.Context(), businessID, folderID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ─── Items ──────────────────────────────────────────────────────────────────

type createItemRequest struct {
	Name        string   `json:"name"`
	SKU         *string  `json:"sku"`
	Barcode     *string  `json:"barcode"`
	Description *string  `json:"description"`
	Value       *float64 `json:"value"`
	HasQRCode   bool     `json:"has_qr_code"`
}

// CreateItem handles POST /api/items.
func (h *CatalogHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	businessID, ok := businessFromCtx(w, r)
	if !ok {
		return
	}
	var req createItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	it, err := h.svc.CreateItem(r.Context(), businessID, catalog.CreateItemInput{
		Name:        req.Name,
		SKU:         req.SKU,
		Barcode:     req.Barcode,
		Description: req.Description,
		Value:       req.Value,
		HasQRCode:   req.HasQRCode,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toItemResponse(it))
}

// ListItems handles GET /api/items.
func (h *CatalogHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	businessID, ok := businessFromCtx(w, r)
	if !ok {
		return
	}

	items, err := h.svc.ListItems(r.Context(), businessID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]itemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, toItemResponse(&items[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetItem handles GET /api/items/{id}.
func (h *CatalogHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	businessID, ok := businessFromCtx(w, r)
	if !ok {
		return
	}
	itemID, ok := pathID(w, r)
	if !ok {
		return
	}

	it, err := h.svc.GetItem(r.Context(), businessID, itemID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(it))
}

// UpdateItem handles PATCH /api/items/{id}. Explicit nulls clear sku,
// barcode and value; absent fields stay as they are.
func (h *CatalogHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	businessID, ok := businessFromCtx(w, r)
	if !ok {
		return
	}
	itemID, ok := pathID(w, r)
	if !ok {
		return
	}

	var raw map[string]json.RawMessage
	if !decodeBody(w, r, &raw) {
		return
	}

	var input catalog.UpdateItemInput
	if !unmarshalField(w, raw, "name", &input.Name) ||
		!unmarshalField(w, raw, "description", &input.Description) ||
		!unmarshalField(w, raw, "has_qr_code", &input.HasQRCode) {
		return
	}
	var ok2 bool
	if input.SetSKU, ok2 = unmarshalOptional(w, raw, "sku", &input.SKU); !ok2 {
		return
	}
	if input.SetBarcode, ok2 = unmarshalOptional(w, raw, "barcode", &input.Barcode); !ok2 {
		return
	}
	if input.SetValue, ok2 = unmarshalOptional(w, raw, "value", &input.Value); !ok2 {
		return
	}

	it, err := h.svc.UpdateItem(r.Context(), businessID, itemID, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(it))
}

// DeleteItem handles DELETE /api/items/{id}.
func (h *CatalogHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	businessID, ok := businessFromCtx(w, r)
	if !ok {
		return
	}
	itemID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteItem(r.Context(), businessID, itemID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ─── Units ──────────────────────────────────────────────────────────────────

type createUnitRequest struct {
	Name        string  `json:"name"`
	Symbol      string  `json:"symbol"`
	Description *string `json:"description"`
}

// CreateUnit handles POST /api/units.
func (h *CatalogHandler) CreateUnit(w http.ResponseWriter, r *http.Request) {
	businessID, ok := businessFromCtx(w, r)
	if !ok {
		return
	}
	var req createUnitRequest
	if !decodeBody(w, r, &req) {
		return
	}

	u, err := h.svc.CreateUnit(r.Context(), businessID, catalog.CreateUnitInput{
		Name:        req.Name,
		Symbol:      req.Symbol,
		Description: req.Description,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUnitResponse(u))
}

// ListUnits handles GET /api/units.
func (h *CatalogHandler) ListUnits(w http.ResponseWriter, r *http.Request) {
	businessID, ok := businessFromCtx(w, r)
	if !ok {
		return
	}

	units, err := h.svc.ListUnits(r.Context(), businessID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]unitResponse, 0, len(units))
	for i := range units {
		resp = append(resp, toUnitResponse(&units[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetUnit handles GET /api/units/{id}.
func (h *CatalogHandler) GetUnit(w http.ResponseWriter, r *http.Request) {
	businessID, ok := businessFromCtx(w, r)
	if !ok {
		return
	}
	unitID, ok := pathID(w, r)
	if !ok {
		return
	}

	u, err := h.svc.GetUnit(r.Context(), businessID, unitID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUnitResponse(u))
}

// UpdateUnit handles PATCH /api/units/{id}.
func (h *CatalogHandler) UpdateUnit(w http.ResponseWriter, r *http.Request) {
	businessID, ok := businessFromCtx(w, r)
	if !ok {
		return
	}
	unitID, ok := pathID(w, r)
	if !ok {
		return
	}

	var raw map[string]json.RawMessage
	if !decodeBody(w, r, &raw) {
		return
	}

	var input catalog.UpdateUnitInput
	if !unmarshalField(w, raw, "name", &input.Name) ||
		!unmarshalField(w, raw, "symbol", &input.Symbol) ||
		!unmarshalField(w, raw, "description", &input.Description) {
		return
	}

	u, err := h.svc.UpdateUnit(r.Context(), businessID, unitID, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUnitResponse(u))
}

// DeleteUnit handles DELETE /api/units/{id}.
func (h *CatalogHandler) DeleteUnit(w http.ResponseWriter, r *http.Request) {
	businessID, ok := businessFromCtx(w, r)
	if !ok {
		return
	}
	unitID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteUnit(r.Context(), businessID, unitID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ─── Mapping ────────────────────────────────────────────────────────────────

func toFolderResponse(f *domain.Folder) folderResponse {
	return folderResponse{
		ID:          f.ID.String(),
		Name:        f.Name,
		Description: f.Description,
		ParentID:    uuidPtrString(f.ParentID),
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}

func toItemResponse(it *domain.Item) itemResponse {
	return itemResponse{
		ID:          it.ID.String(),
		Name:        it.Name,
		SKU:         it.SKU,
		Barcode:     it.Barcode,
		Description: it.Description,
		Value:       it.Value,
		HasQRCode:   it.HasQRCode,
		CreatedAt:   it.CreatedAt,
		UpdatedAt:   it.UpdatedAt,
	}
}

func toUnitResponse(u *domain.Unit) unitResponse {
	return unitResponse{
		ID:          u.ID.String(),
		Name:        u.Name,
		Symbol:      u.Symbol,
		Description: u.Description,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func uuidPtrString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

// unmarshalField decodes a PATCH body key when present. Returns false only
// on a malformed value (an error response has been written).
func unmarshalField(w http.ResponseWriter, raw map[string]json.RawMessage, key string, dst any) bool {
	v, present := raw[key]
	if !present {
		return true
	}
	if err := json.Unmarshal(v, dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+key)
		return false
	}
	return true
}

// unmarshalOptional decodes a clearable PATCH body key. The first result
// reports presence; the second is false when the value was malformed (an
// error response has been written).
func unmarshalOptional(w http.ResponseWriter, raw map[string]json.RawMessage, key string, dst any) (bool, bool) {
	v, present := raw[key]
	if !present {
		return false, true
	}
	if err := json.Unmarshal(v, dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+key)
		return false, false
	}
	return true, true
}
