package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/V1p3er/anbargar/internal/domain"
	"github.com/V1p3er/anbargar/internal/service/ledger"
)

// ledgerService defines the minimal interface needed by InventoryHandler.
type ledgerService interface {
	GetInventory(ctx context.Context, businessID uuid.UUID) ([]domain.InventoryRow, error)
	Dashboard(ctx context.Context, businessID uuid.UUID) (*ledger.DashboardStats, error)
}

// InventoryHandler serves inventory and dashboard REST endpoints.
type InventoryHandler struct {
	svc ledgerService
	log *slog.Logger
}

// NewInventoryHandler creates an InventoryHandler.
func NewInventoryHandler(svc ledgerService, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{svc: svc, log: logger.With("handler", "inventory")}
}

type inventoryRowResponse struct {
	FolderID   string  `json:"folder_id"`
	FolderName string  `json:"folder_name"`
	ItemID     string  `json:"item_id"`
	ItemName   string  `json:"item_name"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
}

type dashboardResponse struct {
	TotalItems    int `json:"total_items"`
	TotalFolders  int `json:"total_folders"`
	TotalValue    int `json:"total_value"`
	LowStockCount int `json:"low_stock_count"`
}

// Inventory handles GET /api/inventory. Rows come back sorted by folder
// then item name.
func (h *InventoryHandler) Inventory(w http.ResponseWriter, r *http.Request) {
	businessID, ok := businessFromCtx(w, r)
	if !ok {
		return
	}

	rows, err := h.svc.GetInventory(r.Context(), businessID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]inventoryRowResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, inventoryRowResponse{
			FolderID:   row.FolderID.String(),
			FolderName: row.FolderName,
			ItemID:     row.ItemID.String(),
			ItemName:   row.ItemName,
			Quantity:   row.Quantity,
			Unit:       row.Unit,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Dashboard handles GET /api/dashboard/stats.
func (h *InventoryHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	businessID, ok := businessFromCtx(w, r)
	if !ok {
		return
	}

	stats, err := h.svc.Dashboard(r.Context(), businessID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		TotalItems:    stats.TotalItems,
		TotalFolders:  stats.TotalFolders,
		TotalValue:    stats.TotalValue,
		LowStockCount: stats.LowStockCount,
	})
}
