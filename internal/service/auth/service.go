// Package auth implements phone-based authentication: password login,
// one-time codes and access token issuance.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/V1p3er/anbargar/internal/config"
	"github.com/V1p3er/anbargar/internal/domain"
)

// userRepo defines the user repository interface needed by the auth service.
type userRepo interface {
	Create(ctx context.Context, phone, name string, passwordHash *string) (*domain.User, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByPhone(ctx context.Context, phone string) (*domain.User, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
}

// businessRepo defines the business repository interface needed by the auth service.
type businessRepo interface {
	Create(ctx context.Context, name string) (*domain.Business, error)
	AddUser(ctx context.Context, businessID, userID uuid.UUID) error
	FirstForUser(ctx context.Context, userID uuid.UUID) (*domain.Business, error)
}

// otpRepo defines the one-time-code repository interface needed by the auth service.
type otpRepo interface {
	Create(ctx context.Context, phone, code string, expiresAt time.Time) (*domain.Otp, error)
	LatestActive(ctx context.Context, phone string, now time.Time) (*domain.Otp, error)
	FindMatch(ctx context.Context, phone, code string, now time.Time) (*domain.Otp, error)
	MarkVerified(ctx context.Context, otpID uuid.UUID) error
}

// txManager defines the transaction manager interface needed by the auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the token management interface needed by the auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// Service implements auth operations.
type Service struct {
	log        *slog.Logger
	users      userRepo
	businesses businessRepo
	otps       otpRepo
	tx         txManager
	jwt        jwtManager
	cfg        config.AuthConfig

	now func() time.Time
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	businesses businessRepo,
	otps otpRepo,
	tx txManager,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "auth"),
		users:      users,
		businesses: businesses,
		otps:       otps,
		tx:         tx,
		jwt:        jwt,
		cfg:        cfg,
		now:        time.Now,
	}
}

// ValidateToken checks an access token and returns the user it belongs to.
func (s *Service) ValidateToken(token string) (uuid.UUID, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", domain.ErrUnauthorized, err)
	}
	return userID, nil
}

// ResolveBusiness returns the user's primary business. A user without a
// business gets ErrNotFound; businesses are only provisioned at registration
// and first OTP verification, never lazily on reads.
func (s *Service) ResolveBusiness(ctx context.Context, userID uuid.UUID) (*domain.Business, error) {
	return s.businesses.FirstForUser(ctx, userID)
}

// provisionIdentity creates a user together with their business and links
// them, all in one transaction.
func (s *Service) provisionIdentity(ctx context.Context, phone, name string, passwordHash *string, businessName string) (*domain.User, *domain.Business, error) {
	var (
		user     *domain.User
		business *domain.Business
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		u, err := s.users.Create(txCtx, phone, name, passwordHash)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		b, err := s.businesses.Create(txCtx, businessName)
		if err != nil {
			return fmt.Errorf("create business: %w", err)
		}

		if err := s.businesses.AddUser(txCtx, b.ID, u.ID); err != nil {
			return fmt.Errorf("link user to business: %w", err)
		}

		user = u
		business = b
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return user, business, nil
}

// issueToken generates an access token and wraps it with the identity.
func (s *Service) issueToken(user *domain.User, business *domain.Business) (*AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &AuthResult{
		AccessToken: accessToken,
		User:        user,
		Business:    business,
	}, nil
}
