package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/V1p3er/anbargar/internal/domain"
)

// Register creates a new user with phone + password and provisions their
// business. Returns ErrAlreadyExists if the phone is already taken.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Phone = domain.NormalizePhone(input.Phone)
	input.Name = strings.TrimSpace(input.Name)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	taken, err := s.users.ExistsByPhone(ctx, input.Phone)
	if err != nil {
		return nil, fmt.Errorf("auth.Register check phone: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("phone %s: %w", input.Phone, domain.ErrAlreadyExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}
	hashStr := string(hash)

	// Phone uniqueness is also enforced by a DB constraint, so a race
	// between the pre-check and the insert still fails cleanly.
	user, business, err := s.provisionIdentity(ctx, input.Phone, input.Name, &hashStr, input.businessName())
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	result, err := s.issueToken(user, business)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", user.ID.String()),
		slog.String("business_id", business.ID.String()))

	return result, nil
}
