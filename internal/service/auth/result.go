package auth

import (
	"time"

	"github.com/V1p3er/anbargar/internal/domain"
)

// AuthResult is returned after successful authentication.
type AuthResult struct {
	AccessToken string
	User        *domain.User
	Business    *domain.Business
}

// OTPResult is returned after a code is sent.
type OTPResult struct {
	Phone     string
	ExpiresAt time.Time
}
