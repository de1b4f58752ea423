package customer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/V1p3er/anbargar/internal/domain"
)

// CreateInput holds the parameters for creating a customer.
type CreateInput struct {
	FirstName string
	LastName  *string
	Phone     *string
	Email     *string
	Address   *string
}

// UpdateInput holds a partial customer update. Nil fields are left untouched;
// the Set* flags distinguish clearing a field from not changing it.
type UpdateInput struct {
	FirstName  *string
	LastName   *string
	SetLast    bool
	Phone      *string
	SetPhone   bool
	Email      *string
	SetEmail   bool
	Address    *string
	SetAddress bool
}

// Create adds a customer to the business directory. Phone and email must not
// collide with another customer of the same business.
func (s *Service) Create(ctx context.Context, businessID uuid.UUID, input CreateInput) (*domain.Customer, error) {
	firstName := strings.TrimSpace(input.FirstName)
	if firstName == "" {
		return nil, domain.NewValidationError("first_name", "required")
	}

	phone := normalizePhoneField(input.Phone)
	email := normalizeOptional(input.Email)

	if err := s.checkConflicts(ctx, businessID, phone, email, uuid.Nil); err != nil {
		return nil, err
	}

	c, err := s.customers.Create(ctx, &domain.Customer{
		BusinessID: businessID,
		FirstName:  firstName,
		LastName:   normalizeOptional(input.LastName),
		Phone:      phone,
		Email:      email,
		Address:    normalizeOptional(input.Address),
	})
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	s.logger.Info("customer created", "customer_id", c.ID, "business_id", businessID)
	return c, nil
}

// Get returns one customer of the business.
func (s *Service) Get(ctx context.Context, businessID, customerID uuid.UUID) (*domain.Customer, error) {
	return s.customers.GetByID(ctx, businessID, customerID)
}

// List returns all customers of the business, oldest first.
func (s *Service) List(ctx context.Context, businessID uuid.UUID) ([]domain.Customer, error) {
	return s.customers.List(ctx, businessID)
}

// Update applies a partial update. Conflict checks exclude the customer
// being updated.
func (s *Service) Update(ctx context.Context, businessID, customerID uuid.UUID, input UpdateInput) (*domain.Customer, error) {
	c, err := s.customers.GetByID(ctx, businessID, customerID)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	if input.FirstName != nil {
		firstName := strings.TrimSpace(*input.FirstName)
		if firstName == "" {
			return nil, domain.NewValidationError("first_name", "required")
		}
		c.FirstName = firstName
	}
	if input.SetLast {
		c.LastName = normalizeOptional(input.LastName)
	}

	var phone, email *string
	if input.SetPhone {
		phone = normalizePhoneField(input.Phone)
	}
	if input.SetEmail {
		email = normalizeOptional(input.Email)
	}
	if err := s.checkConflicts(ctx, businessID, phone, email, customerID); err != nil {
		return nil, err
	}
	if input.SetPhone {
		c.Phone = phone
	}
	if input.SetEmail {
		c.Email = email
	}
	if input.SetAddress {
		c.Address = normalizeOptional(input.Address)
	}

	updated, err := s.customers.Update(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return updated, nil
}

// Delete removes a customer. Past events keep their line snapshots.
func (s *Service) Delete(ctx context.Context, businessID, customerID uuid.UUID) error {
	return s.customers.Delete(ctx, businessID, customerID)
}

// checkConflicts verifies phone and email uniqueness within the business
// before any row is written. Nil values are skipped.
func (s *Service) checkConflicts(ctx context.Context, businessID uuid.UUID, phone, email *string, excludeID uuid.UUID) error {
	if phone != nil {
		taken, err := s.customers.PhoneExists(ctx, businessID, *phone, excludeID)
		if err != nil {
			return fmt.Errorf("check phone: %w", err)
		}
		if taken {
			return fmt.Errorf("phone %s: %w", *phone, domain.ErrAlreadyExists)
		}
	}
	if email != nil {
		taken, err := s.customers.EmailExists(ctx, businessID, *email, excludeID)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if taken {
			return fmt.Errorf("email %s: %w", *email, domain.ErrAlreadyExists)
		}
	}
	return nil
}

// normalizePhoneField strips formatting from an optional phone, collapsing
// empty to nil. Localized digits are converted the same way login phones are.
func normalizePhoneField(v *string) *string {
	if v == nil {
		return nil
	}
	normalized := domain.NormalizePhone(*v)
	if normalized == "" {
		return nil
	}
	return &normalized
}

func normalizeOptional(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
