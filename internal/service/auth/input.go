package auth

import (
	"strings"

	"github.com/V1p3er/anbargar/internal/domain"
)

// RegisterInput holds registration parameters. BusinessName is optional and
// defaults to the stock business name.
type RegisterInput struct {
	Phone        string
	Name         string
	Password     string
	BusinessName *string
}

// Validate checks registration input. Phone must already be normalized.
func (in *RegisterInput) Validate() error {
	var errs []domain.FieldError
	if !domain.ValidPhone(in.Phone) {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "must be 10-15 digits"})
	}
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(in.Password) < 6 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 6 characters"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// businessName returns the requested business name or the default.
func (in *RegisterInput) businessName() string {
	if in.BusinessName != nil {
		if name := strings.TrimSpace(*in.BusinessName); name != "" {
			return name
		}
	}
	return domain.DefaultBusinessName
}

// LoginInput holds password login parameters.
type LoginInput struct {
	Phone    string
	Password string
}

// Validate checks login input.
func (in *LoginInput) Validate() error {
	var errs []domain.FieldError
	if !domain.ValidPhone(in.Phone) {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "must be 10-15 digits"})
	}
	if in.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// VerifyOTPInput holds code verification parameters.
type VerifyOTPInput struct {
	Phone string
	Code  string
}

// Validate checks verification input.
func (in *VerifyOTPInput) Validate() error {
	var errs []domain.FieldError
	if !domain.ValidPhone(in.Phone) {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "must be 10-15 digits"})
	}
	if len(in.Code) != otpCodeLength {
		errs = append(errs, domain.FieldError{Field: "code", Message: "must be 6 digits"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
