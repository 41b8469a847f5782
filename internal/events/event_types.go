package events

import (
	"time"

	"github.com/spec-kit/business-site-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventLeadSubmitted          EventType = "lead_submitted"
	EventLeadStatusChanged      EventType = "lead_status_changed"
	EventTipPublished           EventType = "tip_published"
	EventPasswordResetRequested EventType = "password_reset_requested"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  string      `json:"entity_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// LeadSubmittedPayload payload.
type LeadSubmittedPayload struct {
	Reference   string          `json:"reference"`
	Kind        domain.LeadKind `json:"kind"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone,omitempty"`
	Message     string          `json:"message,omitempty"`
	ServiceType string          `json:"service_type,omitempty"`
}

// LeadStatusChangedPayload payload.
type LeadStatusChangedPayload struct {
	OldStatus domain.LeadStatus `json:"old_status"`
	NewStatus domain.LeadStatus `json:"new_status"`
}

// TipPublishedPayload payload.
type TipPublishedPayload struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

// PasswordResetRequestedPayload payload.
type PasswordResetRequestedPayload struct {
	AccountKind domain.AccountKind `json:"account_kind"`
	Email       string             `json:"email"`
	Token       string             `json:"token"`
	ExpiresAt   time.Time          `json:"expires_at"`
}
