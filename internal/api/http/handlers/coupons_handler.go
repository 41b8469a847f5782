package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/business-site-service/internal/api/dto"
	"github.com/spec-kit/business-site-service/internal/service"
	apperrors "github.com/spec-kit/business-site-service/pkg/util/errorutil"
)

// CouponsHandler exposes the public coupon list and back-office management.
type CouponsHandler struct {
	coupons *service.CouponService
}

// NewCouponsHandler constructs handler.
func NewCouponsHandler(couponService *service.CouponService) *CouponsHandler {
	return &CouponsHandler{coupons: couponService}
}

// ListCurrent handles GET /api/coupons.
func (h *CouponsHandler) ListCurrent(c *fiber.Ctx) error {
	coupons, err := h.coupons.ListCurrent(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return respondOK(c, "Coupons", dto.NewCouponResponses(coupons))
}

// Create handles POST /api/admin/coupons.
func (h *CouponsHandler) Create(c *fiber.Ctx) error {
	var req dto.CouponRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]string{"invalid request body"})
	}
	if msgs := dto.Validate(req); len(msgs) > 0 {
		return apperrors.NewValidationError(msgs)
	}

	coupon, err := h.coupons.Create(c.Context(), service.CouponInput{
		Code:        req.Code,
		Description: req.Description,
		Discount:    req.Discount,
		ValidFrom:   req.ValidFrom,
		ValidUntil:  req.ValidUntil,
	})
	if err != nil {
		if err.Error() == "valid_until must be after valid_from" {
			return apperrors.NewValidationError([]string{err.Error()})
		}
		return apperrors.MapError(err)
	}
	return respondCreated(c, "Coupon created", dto.NewCouponResponse(coupon))
}

// Deactivate handles POST /api/admin/coupons/:id/deactivate.
func (h *CouponsHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.coupons.Deactivate(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return respondOK(c, "Coupon deactivated", nil)
}
