package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/business-site-service/internal/api/dto"
	"github.com/spec-kit/business-site-service/internal/domain"
	"github.com/spec-kit/business-site-service/internal/service"
	apperrors "github.com/spec-kit/business-site-service/pkg/util/errorutil"
)

// AuthHandler exposes the unified login endpoint plus registration and
// password reset.
type AuthHandler struct {
	auth   *service.AuthService
	logger *zap.Logger
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: authService, logger: logger}
}

// Login handles POST /api/auth/login. One endpoint serves both admins and
// customers: the admin table is probed first, then customers.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]string{"invalid request body"})
	}
	// trim before validation so padded addresses pass the email check
	req.Email = strings.TrimSpace(req.Email)
	if msgs := dto.Validate(req); len(msgs) > 0 {
		return apperrors.NewValidationError(msgs)
	}

	result, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return apperrors.NewInternalError("Login failed", err)
	}

	switch result.Outcome {
	case domain.LoginOutcomeAdminMatch:
		return respondOK(c, "Login successful", dto.LoginData{
			UserType:   domain.AccountKindAdmin,
			RedirectTo: domain.AdminHomePath,
			User:       dto.NewAdminUser(result.Admin),
			Token:      result.Token,
			ExpiresAt:  result.ExpiresAt,
		})
	case domain.LoginOutcomeCustomerMatch:
		return respondOK(c, "Login successful", dto.LoginData{
			UserType:   domain.AccountKindCustomer,
			RedirectTo: domain.CustomerHomePath,
			User:       dto.NewCustomerUser(result.Customer),
			Token:      result.Token,
			ExpiresAt:  result.ExpiresAt,
		})
	case domain.LoginOutcomeCustomerDisabled:
		return apperrors.NewAccountDisabled()
	default:
		return apperrors.NewInvalidCredentials()
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]string{"invalid request body"})
	}
	req.Email = strings.TrimSpace(req.Email)
	if msgs := dto.Validate(req); len(msgs) > 0 {
		return apperrors.NewValidationError(msgs)
	}

	customer, token, exp, err := h.auth.RegisterCustomer(c.Context(), req.FirstName, req.LastName, req.Phone, req.Email, req.Password)
	if err != nil {
		if err.Error() == "email already registered" {
			return apperrors.NewConflict("Email is already registered")
		}
		return apperrors.MapError(err)
	}

	return respondCreated(c, "Registration successful", dto.LoginData{
		UserType:   domain.AccountKindCustomer,
		RedirectTo: domain.CustomerHomePath,
		User:       dto.NewCustomerUser(customer),
		Token:      token,
		ExpiresAt:  exp,
	})
}

// RequestPasswordReset handles POST /api/auth/password-reset/request.
// It always answers 202 so callers cannot probe which emails exist.
func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]string{"invalid request body"})
	}
	req.Email = strings.TrimSpace(req.Email)
	if msgs := dto.Validate(req); len(msgs) > 0 {
		return apperrors.NewValidationError(msgs)
	}

	// unknown addresses stay silent to avoid account enumeration, but
	// internal failures are still logged
	if _, err := h.auth.RequestPasswordReset(c.Context(), req.Email); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		h.logger.Error("password reset request failed", zap.Error(err))
	}
	return respond(c, http.StatusAccepted, "If the email exists, a reset link has been sent", nil)
}

// ConfirmPasswordReset handles POST /api/auth/password-reset/confirm.
func (h *AuthHandler) ConfirmPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]string{"invalid request body"})
	}
	if msgs := dto.Validate(req); len(msgs) > 0 {
		return apperrors.NewValidationError(msgs)
	}

	if err := h.auth.ConfirmPasswordReset(c.Context(), req.Token, req.NewPassword); err != nil {
		return apperrors.NewDomainError("RESET_FAILED", "Invalid or expired reset token", http.StatusBadRequest)
	}
	return respondOK(c, "Password has been reset", nil)
}
