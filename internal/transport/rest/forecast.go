package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/V1p3er/anbargar/internal/service/forecast"
)

// forecastService defines the minimal interface needed by ForecastHandler.
type forecastService interface {
	Predict(ctx context.Context, businessID uuid.UUID, lookbackDays int) (*forecast.Result, error)
}

// ForecastHandler serves the stockout predictor endpoint.
type ForecastHandler struct {
	svc forecastService
	log *slog.Logger
}

// NewForecastHandler creates a ForecastHandler.
func NewForecastHandler(svc forecastService, logger *slog.Logger) *ForecastHandler {
	return &ForecastHandler{svc: svc, log: logger.With("handler", "forecast")}
}

// Predict handles GET /api/forecast/stockouts?days_history=30.
func (h *ForecastHandler) Predict(w http.ResponseWriter, r *http.Request) {
	businessID, ok := businessFromCtx(w, r)
	if !ok {
		return
	}

	lookbackDays := 0
	if v := r.URL.Query().Get("days_history"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "days_history must be an integer")
			return
		}
		lookbackDays = n
	}

	result, err := h.svc.Predict(r.Context(), businessID, lookbackDays)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
