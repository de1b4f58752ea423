package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/V1p3er/anbargar/internal/domain"
	"github.com/V1p3er/anbargar/internal/service/auth"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	SendOTP(ctx context.Context, phone string) (*auth.OTPResult, error)
	VerifyOTP(ctx context.Context, input auth.VerifyOTPInput) (*auth.AuthResult, error)
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type registerRequest struct {
	Phone        string  `json:"phone"`
	Name         string  `json:"name"`
	Password     string  `json:"password"`
	BusinessName *string `json:"business_name"`
}

type loginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type sendOTPRequest struct {
	Phone string `json:"phone"`
}

type verifyOTPRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

type otpResponse struct {
	Phone     string    `json:"phone"`
	ExpiresAt time.Time `json:"expires_at"`
}

type authResponse struct {
	AccessToken string            `json:"access_token"`
	User        userResponse      `json:"user"`
	Business    *businessResponse `json:"business,omitempty"`
}

type userResponse struct {
	ID    string `json:"id"`
	Phone string `json:"phone"`
	Name  string `json:"name"`
}

type businessResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Phone:        req.Phone,
		Name:         req.Name,
		Password:     req.Password,
		BusinessName: req.BusinessName,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAuthResponse(result))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.svc.Login(r.Context(), auth.LoginInput{
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// SendOTP handles POST /api/auth/otp/send.
func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req sendOTPRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.svc.SendOTP(r.Context(), req.Phone)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, otpResponse{Phone: result.Phone, ExpiresAt: result.ExpiresAt})
}

// VerifyOTP handles POST /api/auth/otp/verify.
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req verifyOTPRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.svc.VerifyOTP(r.Context(), auth.VerifyOTPInput{
		Phone: req.Phone,
		Code:  req.Code,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

func toAuthResponse(result *auth.AuthResult) authResponse {
	resp := authResponse{
		AccessToken: result.AccessToken,
		User: userResponse{
			ID:    result.User.ID.String(),
			Phone: result.User.Phone,
			Name:  result.User.Name,
		},
	}
	if result.Business != nil {
		resp.Business = toBusinessResponse(result.Business)
	}
	return resp
}

func toBusinessResponse(b *domain.Business) *businessResponse {
	return &businessResponse{ID: b.ID.String(), Name: b.Name}
}
