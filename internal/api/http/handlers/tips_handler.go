package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/business-site-service/internal/api/dto"
	"github.com/spec-kit/business-site-service/internal/auth"
	"github.com/spec-kit/business-site-service/internal/service"
	apperrors "github.com/spec-kit/business-site-service/pkg/util/errorutil"
)

// TipsHandler exposes the maintenance-tips CMS: a public read surface and
// a back-office write surface.
type TipsHandler struct {
	tips *service.TipService
}

// NewTipsHandler constructs handler.
func NewTipsHandler(tipService *service.TipService) *TipsHandler {
	return &TipsHandler{tips: tipService}
}

// ListPublished handles GET /api/tips.
func (h *TipsHandler) ListPublished(c *fiber.Ctx) error {
	filter := service.TipListFilter{
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "pageSize", 10),
	}
	if category := c.Query("category"); category != "" {
		filter.Category = &category
	}
	if search := c.Query("search"); search != "" {
		filter.SearchTerm = &search
	}

	tips, err := h.tips.ListPublished(c.Context(), filter)
	if err != nil {
		return apperrors.MapError(err)
	}
	return respondOK(c, "Tips", dto.NewTipResponses(tips))
}

// GetBySlug handles GET /api/tips/:slug.
func (h *TipsHandler) GetBySlug(c *fiber.Ctx) error {
	tip, err := h.tips.GetPublishedBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return apperrors.NewNotFound("tip")
	}
	return respondOK(c, "Tip", dto.NewTipResponse(tip))
}

// ListAll handles GET /api/admin/tips.
func (h *TipsHandler) ListAll(c *fiber.Ctx) error {
	pageSize := queryInt(c, "pageSize", 20)
	offset := (queryInt(c, "page", 1) - 1) * pageSize

	tips, err := h.tips.ListAll(c.Context(), pageSize, offset)
	if err != nil {
		return apperrors.MapError(err)
	}
	return respondOK(c, "Tips", dto.NewTipResponses(tips))
}

// Create handles POST /api/admin/tips.
func (h *TipsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Admin == nil {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.TipRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]string{"invalid request body"})
	}
	if msgs := dto.Validate(req); len(msgs) > 0 {
		return apperrors.NewValidationError(msgs)
	}

	tip, err := h.tips.Create(c.Context(), principal.Admin.ID, service.TipInput{
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
	})
	if err != nil {
		if err.Error() == "a tip with this title already exists" {
			return apperrors.NewConflict(err.Error())
		}
		return apperrors.MapError(err)
	}
	return respondCreated(c, "Tip created", dto.NewTipResponse(tip))
}

// Update handles PUT /api/admin/tips/:id.
func (h *TipsHandler) Update(c *fiber.Ctx) error {
	var req dto.TipRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]string{"invalid request body"})
	}
	if msgs := dto.Validate(req); len(msgs) > 0 {
		return apperrors.NewValidationError(msgs)
	}

	tip, err := h.tips.Update(c.Context(), c.Params("id"), service.TipInput{
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
	})
	if err != nil {
		if err.Error() == "a tip with this title already exists" {
			return apperrors.NewConflict(err.Error())
		}
		return apperrors.MapError(err)
	}
	return respondOK(c, "Tip updated", dto.NewTipResponse(tip))
}

// Publish handles POST /api/admin/tips/:id/publish.
func (h *TipsHandler) Publish(c *fiber.Ctx) error {
	tip, err := h.tips.SetPublished(c.Context(), c.Params("id"), true)
	if err != nil {
		return apperrors.MapError(err)
	}
	return respondOK(c, "Tip published", dto.NewTipResponse(tip))
}

// Unpublish handles POST /api/admin/tips/:id/unpublish.
func (h *TipsHandler) Unpublish(c *fiber.Ctx) error {
	tip, err := h.tips.SetPublished(c.Context(), c.Params("id"), false)
	if err != nil {
		return apperrors.MapError(err)
	}
	return respondOK(c, "Tip unpublished", dto.NewTipResponse(tip))
}

// Delete handles DELETE /api/admin/tips/:id.
func (h *TipsHandler) Delete(c *fiber.Ctx) error {
	if err := h.tips.Delete(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return respondOK(c, "Tip deleted", nil)
}
