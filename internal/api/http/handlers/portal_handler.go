package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/business-site-service/internal/api/dto"
	"github.com/spec-kit/business-site-service/internal/auth"
	"github.com/spec-kit/business-site-service/internal/service"
	apperrors "github.com/spec-kit/business-site-service/pkg/util/errorutil"
)

// PortalHandler exposes the authenticated customer surface.
type PortalHandler struct {
	auth *service.AuthService
}

// NewPortalHandler constructs handler.
func NewPortalHandler(authService *service.AuthService) *PortalHandler {
	return &PortalHandler{auth: authService}
}

// Profile handles GET /api/portal/profile.
func (h *PortalHandler) Profile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Customer == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	return respondOK(c, "Profile", dto.NewCustomerUser(principal.Customer))
}

// UpdateProfile handles PUT /api/portal/profile.
func (h *PortalHandler) UpdateProfile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Customer == nil {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.ProfileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]string{"invalid request body"})
	}
	if msgs := dto.Validate(req); len(msgs) > 0 {
		return apperrors.NewValidationError(msgs)
	}

	customer, err := h.auth.UpdateCustomerProfile(c.Context(), principal.Customer.ID, req.FirstName, req.LastName, req.Phone)
	if err != nil {
		return apperrors.MapError(err)
	}
	return respondOK(c, "Profile updated", dto.NewCustomerUser(customer))
}

// ChangePassword handles POST /api/portal/password.
func (h *PortalHandler) ChangePassword(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Customer == nil {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.PasswordChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]string{"invalid request body"})
	}
	if msgs := dto.Validate(req); len(msgs) > 0 {
		return apperrors.NewValidationError(msgs)
	}

	if err := h.auth.ChangeCustomerPassword(c.Context(), principal.Customer.ID, req.CurrentPassword, req.NewPassword); err != nil {
		if err.Error() == "invalid credentials" {
			return apperrors.NewInvalidCredentials()
		}
		return apperrors.MapError(err)
	}
	return respondOK(c, "Password changed", nil)
}
