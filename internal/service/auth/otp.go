package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/V1p3er/anbargar/internal/domain"
)

const otpCodeLength = 6

var otpCodeMax = big.NewInt(1_000_000)

// SendOTP issues a one-time code for a phone number. Repeated requests
// inside the resend interval get ErrTooManyRequests.
//
// There is no SMS gateway; with the dev hint enabled the code is written to
// the log so local and staging environments can complete the flow.
func (s *Service) SendOTP(ctx context.Context, phone string) (*OTPResult, error) {
	phone = domain.NormalizePhone(phone)
	if !domain.ValidPhone(phone) {
		return nil, domain.NewValidationError("phone", "must be 10-15 digits")
	}

	now := s.now()

	active, err := s.otps.LatestActive(ctx, phone, now)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("auth.SendOTP check active: %w", err)
	}
	if active != nil && now.Sub(active.CreatedAt) < s.cfg.OTPResendInterval {
		return nil, fmt.Errorf("code already sent: %w", domain.ErrTooManyRequests)
	}

	code, err := generateCode()
	if err != nil {
		return nil, fmt.Errorf("auth.SendOTP generate code: %w", err)
	}

	otp, err := s.otps.Create(ctx, phone, code, now.Add(s.cfg.OTPTTL))
	if err != nil {
		return nil, fmt.Errorf("auth.SendOTP store code: %w", err)
	}

	if s.cfg.OTPDevHint {
		s.log.InfoContext(ctx, "otp code issued",
			slog.String("phone", phone),
			slog.String("code", code))
	} else {
		s.log.InfoContext(ctx, "otp code issued", slog.String("phone", phone))
	}

	return &OTPResult{Phone: phone, ExpiresAt: otp.ExpiresAt}, nil
}

// VerifyOTP consumes a one-time code and signs the user in. An unknown phone
// gets a passwordless account and a fresh business; a wrong or expired code
// is ErrUnauthorized.
func (s *Service) VerifyOTP(ctx context.Context, input VerifyOTPInput) (*AuthResult, error) {
	input.Phone = domain.NormalizePhone(input.Phone)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	otp, err := s.otps.FindMatch(ctx, input.Phone, input.Code, s.now())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("invalid or expired code: %w", domain.ErrUnauthorized)
		}
		return nil, fmt.Errorf("auth.VerifyOTP find code: %w", err)
	}

	if err := s.otps.MarkVerified(ctx, otp.ID); err != nil {
		return nil, fmt.Errorf("auth.VerifyOTP consume code: %w", err)
	}

	user, err := s.users.GetByPhone(ctx, input.Phone)
	var business *domain.Business
	switch {
	case err == nil:
		business, err = s.businesses.FirstForUser(ctx, user.ID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("auth.VerifyOTP resolve business: %w", err)
		}
	case errors.Is(err, domain.ErrNotFound):
		user, business, err = s.provisionIdentity(ctx, input.Phone, input.Phone, nil, domain.DefaultBusinessName)
		if err != nil {
			return nil, fmt.Errorf("auth.VerifyOTP provision user: %w", err)
		}
		s.log.InfoContext(ctx, "user created via otp", slog.String("user_id", user.ID.String()))
	default:
		return nil, fmt.Errorf("auth.VerifyOTP get user: %w", err)
	}

	result, err := s.issueToken(user, business)
	if err != nil {
		return nil, fmt.Errorf("auth.VerifyOTP issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in via otp", slog.String("user_id", user.ID.String()))

	return result, nil
}

// generateCode returns a zero-padded 6-digit code from crypto/rand.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, otpCodeMax)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
