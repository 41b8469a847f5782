package dto

import (
	"time"

	"github.com/spec-kit/business-site-service/internal/domain"
)

// ContactRequest is the public contact-form payload.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"max=30"`
	Message string `json:"message" validate:"required,max=5000"`
}

// QuoteRequest is the public quote-request payload.
type QuoteRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,max=30"`
	Message      string `json:"message" validate:"max=5000"`
	ServiceType  string `json:"serviceType" validate:"required,max=100"`
	PropertyType string `json:"propertyType" validate:"max=100"`
}

// LeadStatusRequest is the back-office status transition payload.
type LeadStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=NEW CONTACTED CLOSED"`
}

// LeadResponse is the back-office lead projection.
type LeadResponse struct {
	ID           string            `json:"id"`
	Reference    string            `json:"reference"`
	Kind         domain.LeadKind   `json:"kind"`
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone"`
	Message      string            `json:"message"`
	ServiceType  string            `json:"serviceType,omitempty"`
	PropertyType string            `json:"propertyType,omitempty"`
	Status       domain.LeadStatus `json:"status"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// NewLeadResponse projects a lead.
func NewLeadResponse(lead *domain.Lead) LeadResponse {
	return LeadResponse{
		ID:           lead.ID,
		Reference:    lead.Reference,
		Kind:         lead.Kind,
		Name:         lead.Name,
		Email:        lead.Email,
		Phone:        lead.Phone,
		Message:      lead.Message,
		ServiceType:  lead.ServiceType,
		PropertyType: lead.PropertyType,
		Status:       lead.Status,
		CreatedAt:    lead.CreatedAt,
		UpdatedAt:    lead.UpdatedAt,
	}
}

// NewLeadResponses projects a lead slice.
func NewLeadResponses(leads []domain.Lead) []LeadResponse {
	out := make([]LeadResponse, 0, len(leads))
	for i := range leads {
		out = append(out, NewLeadResponse(&leads[i]))
	}
	return out
}
