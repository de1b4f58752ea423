package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultBusinessName is used when a business is provisioned without an
// explicit name (registration and first OTP verification).
const DefaultBusinessName = "My Business"

// Business is the tenant boundary. Every folder, item, unit, customer and
// event belongs to exactly one business.
type Business struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// User is an account identified by a normalized phone number.
// PasswordHash is nil for accounts created through OTP verification.
type User struct {
	ID           uuid.UUID
	Phone        string
	Name         string
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Otp is a one-time code sent to a phone number.
type Otp struct {
	ID        uuid.UUID
	Phone     string
	Code      string
	ExpiresAt time.Time
	Verified  bool
	CreatedAt time.Time
}
