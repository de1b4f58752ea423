package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/V1p3er/anbargar/internal/domain"
	"github.com/V1p3er/anbargar/internal/service/customer"
)

// customerService defines the minimal interface needed by CustomerHandler.
type customerService interface {
	Create(ctx context.Context, businessID uuid.UUID, input customer.CreateInput) (*domain.Customer, error)
	Get(ctx context.Context, businessID, customerID uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, businessID uuid.UUID) ([]domain.Customer, error)
	Update(ctx context.Context, businessID, customerID uuid.UUID, input customer.UpdateInput) (*domain.Customer, error)
	Delete(ctx context.Context, businessID, customerID uuid.UUID) error
}

// CustomerHandler serves customer REST endpoints.
type CustomerHandler struct {
	svc customerService
	log *slog.Logger
}

// NewCustomerHandler creates a CustomerHandler.
func NewCustomerHandler(svc customerService, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{svc: svc, log: logger.With("handler", "customer")}
}

type createCustomerRequest struct {
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Address   *string `json:"address"`
}

type customerResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  *string   `json:"last_name"`
	Phone     *string   `json:"phone"`
	Email     *string   `json:"email"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Create handles POST /api/customers.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	businessID, ok := businessFromCtx(w, r)
	if !ok {
		return
	}
	var req createCustomerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	c, err := h.svc.Create(r.Context(), businessID, customer.CreateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCustomerResponse(c))
}

// List handles GET /api/customers.
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	businessID, ok := businessFromCtx(w, r)
	if !ok {
		return
	}

	customers, err := h.svc.List(r.Context(), businessID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]customerResponse, 0, len(customers))
	for i := range customers {
		resp = append(resp, toCustomerResponse(&customers[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Get handles GET /api/customers/{id}.
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	businessID, ok := businessFromCtx(w, r)
	if !ok {
		return
	}
	customerID, ok := pathID(w, r)
	if !ok {
		return
	}

	c, err := h.svc.Get(r.Context(), businessID, customerID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCustomerResponse(c))
}

// Update handles PATCH /api/customers/{id}. Explicit nulls clear last name,
// phone, email and address.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	businessID, ok := businessFromCtx(w, r)
	if !ok {
		return
	}
	customerID, ok := pathID(w, r)
	if !ok {
		return
	}

	var raw map[string]json.RawMessage
	if !decodeBody(w, r, &raw) {
		return
	}

	var input customer.UpdateInput
	if !unmarshalField(w, raw, "first_name", &input.FirstName) {
		return
	}
	var ok2 bool
	if input.SetLast, ok2 = unmarshalOptional(w, raw, "last_name", &input.LastName); !ok2 {
		return
	}
	if input.SetPhone, ok2 = unmarshalOptional(w, raw, "phone", &input.Phone); !ok2 {
		return
	}
	if input.SetEmail, ok2 = unmarshalOptional(w, raw, "email", &input.Email); !ok2 {
		return
	}
	if input.SetAddress, ok2 = unmarshalOptional(w, raw, "address", &input.Address); !ok2 {
		return
	}

	c, err := h.svc.Update(r.Context(), businessID, customerID, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCustomerResponse(c))
}

// Delete handles DELETE /api/customers/{id}.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	businessID, ok := businessFromCtx(w, r)
	if !ok {
		return
	}
	customerID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), businessID, customerID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toCustomerResponse(c *domain.Customer) customerResponse {
	return customerResponse{
		ID:        c.ID.String(),
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
