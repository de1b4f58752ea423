// Package customer implements the customer directory of a business.
package customer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/V1p3er/anbargar/internal/domain"
)

type customerRepo interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, businessID, customerID uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, businessID uuid.UUID) ([]domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	Delete(ctx context.Context, businessID, customerID uuid.UUID) error
	PhoneExists(ctx context.Context, businessID uuid.UUID, phone string, excludeID uuid.UUID) (bool, error)
	EmailExists(ctx context.Context, businessID uuid.UUID, email string, excludeID uuid.UUID) (bool, error)
}

// Service manages the customers of a business.
type Service struct {
	logger    *slog.Logger
	customers customerRepo
}

// NewService creates a customer service.
func NewService(logger *slog.Logger, customers customerRepo) *Service {
	return &Service{
		logger:    logger.With("service", "customer"),
		customers: customers,
	}
}
