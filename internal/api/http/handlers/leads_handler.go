package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/business-site-service/internal/api/dto"
	"github.com/spec-kit/business-site-service/internal/domain"
	"github.com/spec-kit/business-site-service/internal/repository"
	"github.com/spec-kit/business-site-service/internal/service"
	apperrors "github.com/spec-kit/business-site-service/pkg/util/errorutil"
)

// LeadsHandler exposes the public lead-capture forms and the back-office
// lead queue.
type LeadsHandler struct {
	leads *service.LeadService
}

// NewLeadsHandler constructs handler.
func NewLeadsHandler(leadService *service.LeadService) *LeadsHandler {
	return &LeadsHandler{leads: leadService}
}

// SubmitContact handles POST /api/contact.
func (h *LeadsHandler) SubmitContact(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]string{"invalid request body"})
	}
	if msgs := dto.Validate(req); len(msgs) > 0 {
		return apperrors.NewValidationError(msgs)
	}

	lead, err := h.leads.SubmitContact(c.Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return respondCreated(c, "Thank you, we will be in touch shortly", fiber.Map{
		"reference": lead.Reference,
	})
}

// SubmitQuote handles POST /api/quotes.
func (h *LeadsHandler) SubmitQuote(c *fiber.Ctx) error {
	var req dto.QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]string{"invalid request body"})
	}
	if msgs := dto.Validate(req); len(msgs) > 0 {
		return apperrors.NewValidationError(msgs)
	}

	lead, err := h.leads.SubmitQuote(c.Context(), service.QuoteInput{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Message:      req.Message,
		ServiceType:  req.ServiceType,
		PropertyType: req.PropertyType,
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return respondCreated(c, "Quote request received", fiber.Map{
		"reference": lead.Reference,
	})
}

// List handles GET /api/admin/leads.
func (h *LeadsHandler) List(c *fiber.Ctx) error {
	filter := repository.LeadFilter{
		Limit:  queryInt(c, "pageSize", 20),
		Offset: (queryInt(c, "page", 1) - 1) * queryInt(c, "pageSize", 20),
	}
	if kind := c.Query("kind"); kind != "" {
		k := domain.LeadKind(kind)
		filter.Kind = &k
	}
	if status := c.Query("status"); status != "" {
		s := domain.LeadStatus(status)
		filter.Status = &s
	}

	leads, err := h.leads.List(c.Context(), filter)
	if err != nil {
		return apperrors.MapError(err)
	}
	return respondOK(c, "Leads", dto.NewLeadResponses(leads))
}

// UpdateStatus handles PUT /api/admin/leads/:id/status.
func (h *LeadsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.LeadStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError([]string{"invalid request body"})
	}
	if msgs := dto.Validate(req); len(msgs) > 0 {
		return apperrors.NewValidationError(msgs)
	}

	lead, err := h.leads.UpdateStatus(c.Context(), c.Params("id"), domain.LeadStatus(req.Status))
	if err != nil {
		return apperrors.MapError(err)
	}
	return respondOK(c, "Lead updated", dto.NewLeadResponse(lead))
}

func queryInt(c *fiber.Ctx, key string, fallback int) int {
	val := c.Query(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
