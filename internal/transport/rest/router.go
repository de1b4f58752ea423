package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/V1p3er/anbargar/internal/config"
	"github.com/V1p3er/anbargar/internal/domain"
	"github.com/V1p3er/anbargar/internal/transport/middleware"
)

// TokenValidator is what the auth middleware needs from the auth service.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, error)
	ResolveBusiness(ctx context.Context, userID uuid.UUID) (*domain.Business, error)
}

// Handlers bundles every REST handler for the router.
type Handlers struct {
	Auth      *AuthHandler
	Catalog   *CatalogHandler
	Customer  *CustomerHandler
	Event     *EventHandler
	Inventory *InventoryHandler
	Forecast  *ForecastHandler
	Health    *HealthHandler
}

// NewRouter builds the HTTP routing table. Health and auth endpoints are
// public; everything under /api besides auth requires a bearer token.
func NewRouter(logger *slog.Logger, corsCfg config.CORSConfig, validator TokenValidator, h Handlers) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.HandleFunc("POST /api/auth/otp/send", h.Auth.SendOTP)
	mux.HandleFunc("POST /api/auth/otp/verify", h.Auth.VerifyOTP)

	protected := middleware.Auth(validator)

	route := func(pattern string, handler http.HandlerFunc) {
		mux.Handle(pattern, protected(handler))
	}

	route("GET /api/folders", h.Catalog.ListFolders)
	route("POST /api/folders", h.Catalog.CreateFolder)
	route("GET /api/folders/{id}", h.Catalog.GetFolder)
	route("PATCH /api/folders/{id}", h.Catalog.UpdateFolder)
	route("DELETE /api/folders/{id}", h.Catalog.DeleteFolder)

	route("GET /api/items", h.Catalog.ListItems)
	route("POST /api/items", h.Catalog.CreateItem)
	route("GET /api/items/{id}", h.Catalog.GetItem)
	route("PATCH /api/items/{id}", h.Catalog.UpdateItem)
	route("DELETE /api/items/{id}", h.Catalog.DeleteItem)

	route("GET /api/units", h.Catalog.ListUnits)
	route("POST /api/units", h.Catalog.CreateUnit)
	route("GET /api/units/{id}", h.Catalog.GetUnit)
	route("PATCH /api/units/{id}", h.Catalog.UpdateUnit)
	route("DELETE /api/units/{id}", h.Catalog.DeleteUnit)

	route("GET /api/customers", h.Customer.List)
	route("POST /api/customers", h.Customer.Create)
	route("GET /api/customers/{id}", h.Customer.Get)
	route("PATCH /api/customers/{id}", h.Customer.Update)
	route("DELETE /api/customers/{id}", h.Customer.Delete)

	route("GET /api/events", h.Event.List)
	route("POST /api/events", h.Event.Create)
	route("GET /api/events/{id}", h.Event.Get)
	route("PATCH /api/events/{id}", h.Event.Update)
	route("DELETE /api/events/{id}", h.Event.Delete)

	route("GET /api/inventory", h.Inventory.Inventory)
	route("GET /api/dashboard/stats", h.Inventory.Dashboard)
	route("GET /api/forecast/stockouts", h.Forecast.Predict)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(corsCfg),
	)(mux)
}
