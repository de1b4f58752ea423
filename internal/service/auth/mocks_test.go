package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/V1p3er/anbargar/internal/domain"
)

var (
	_ userRepo     = &userRepoMock{}
	_ businessRepo = &businessRepoMock{}
	_ otpRepo      = &otpRepoMock{}
	_ txManager    = &txManagerMock{}
	_ jwtManager   = &jwtManagerMock{}
)

type userRepoMock struct {
	CreateFunc        func(ctx context.Context, phone, name string, passwordHash *string) (*domain.User, error)
	GetByIDFunc       func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByPhoneFunc    func(ctx context.Context, phone string) (*domain.User, error)
	ExistsByPhoneFunc func(ctx context.Context, phone string) (bool, error)
}

func (m *userRepoMock) Create(ctx context.Context, phone, name string, passwordHash *string) (*domain.User, error) {
	if m.CreateFunc == nil {
		panic("userRepoMock.CreateFunc is nil")
	}
	return m.CreateFunc(ctx, phone, name, passwordHash)
}

func (m *userRepoMock) GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if m.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc is nil")
	}
	return m.GetByIDFunc(ctx, userID)
}

func (m *userRepoMock) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	if m.GetByPhoneFunc == nil {
		panic("userRepoMock.GetByPhoneFunc is nil")
	}
	return m.GetByPhoneFunc(ctx, phone)
}

func (m *userRepoMock) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	if m.ExistsByPhoneFunc == nil {
		panic("userRepoMock.ExistsByPhoneFunc is nil")
	}
	return m.ExistsByPhoneFunc(ctx, phone)
}

type businessRepoMock struct {
	CreateFunc       func(ctx context.Context, name string) (*domain.Business, error)
	AddUserFunc      func(ctx context.Context, businessID, userID uuid.UUID) error
	FirstForUserFunc func(ctx context.Context, userID uuid.UUID) (*domain.Business, error)
}

func (m *businessRepoMock) Create(ctx context.Context, name string) (*domain.Business, error) {
	if m.CreateFunc == nil {
		panic("businessRepoMock.CreateFunc is nil")
	}
	return m.CreateFunc(ctx, name)
}

func (m *businessRepoMock) AddUser(ctx context.Context, businessID, userID uuid.UUID) error {
	if m.AddUserFunc == nil {
		panic("businessRepoMock.AddUserFunc is nil")
	}
	return m.AddUserFunc(ctx, businessID, userID)
}

func (m *businessRepoMock) FirstForUser(ctx context.Context, userID uuid.UUID) (*domain.Business, error) {
	if m.FirstForUserFunc == nil {
		panic("businessRepoMock.FirstForUserFunc is nil")
	}
	return m.FirstForUserFunc(ctx, userID)
}

type otpRepoMock struct {
	CreateFunc       func(ctx context.Context, phone, code string, expiresAt time.Time) (*domain.Otp, error)
	LatestActiveFunc func(ctx context.Context, phone string, now time.Time) (*domain.Otp, error)
	FindMatchFunc    func(ctx context.Context, phone, code string, now time.Time) (*domain.Otp, error)
	MarkVerifiedFunc func(ctx context.Context, otpID uuid.UUID) error
}

func (m *otpRepoMock) Create(ctx context.Context, phone, code string, expiresAt time.Time) (*domain.Otp, error) {
	if m.CreateFunc == nil {
		panic("otpRepoMock.CreateFunc is nil")
	}
	return m.CreateFunc(ctx, phone, code, expiresAt)
}

func (m *otpRepoMock) LatestActive(ctx context.Context, phone string, now time.Time) (*domain.Otp, error) {
	if m.LatestActiveFunc == nil {
		panic("otpRepoMock.LatestActiveFunc is nil")
	}
	return m.LatestActiveFunc(ctx, phone, now)
}

func (m *otpRepoMock) FindMatch(ctx context.Context, phone, code string, now time.Time) (*domain.Otp, error) {
	if m.FindMatchFunc == nil {
		panic("otpRepoMock.FindMatchFunc is nil")
	}
	return m.FindMatchFunc(ctx, phone, code, now)
}

func (m *otpRepoMock) MarkVerified(ctx context.Context, otpID uuid.UUID) error {
	if m.MarkVerifiedFunc == nil {
		panic("otpRepoMock.MarkVerifiedFunc is nil")
	}
	return m.MarkVerifiedFunc(ctx, otpID)
}

// txManagerMock runs the callback directly unless overridden.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc != nil {
		return m.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}

type jwtManagerMock struct {
	GenerateAccessTokenFunc func(userID uuid.UUID) (string, error)
	ValidateAccessTokenFunc func(token string) (uuid.UUID, error)
}

func (m *jwtManagerMock) GenerateAccessToken(userID uuid.UUID) (string, error) {
	if m.GenerateAccessTokenFunc == nil {
		panic("jwtManagerMock.GenerateAccessTokenFunc is nil")
	}
	return m.GenerateAccessTokenFunc(userID)
}

func (m *jwtManagerMock) ValidateAccessToken(token string) (uuid.UUID, error) {
	if m.ValidateAccessTokenFunc == nil {
		panic("jwtManagerMock.ValidateAccessTokenFunc is nil")
	}
	return m.ValidateAccessTokenFunc(token)
}
