package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/business-site-service/internal/domain"
	"github.com/spec-kit/business-site-service/internal/events"
	"github.com/spec-kit/business-site-service/internal/repository"
)

// LeadService coordinates public lead capture and back-office follow-up.
type LeadService struct {
	leads      repository.LeadRepository
	dispatcher events.Dispatcher
}

// NewLeadService constructs the service.
func NewLeadService(leads repository.LeadRepository, dispatcher events.Dispatcher) *LeadService {
	return &LeadService{leads: leads, dispatcher: dispatcher}
}

// ContactInput describes a contact-form submission.
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// QuoteInput describes a quote-request submission.
type QuoteInput struct {
	Name         string
	Email        string
	Phone        string
	Message      string
	ServiceType  string
	PropertyType string
}

// SubmitContact persists a contact lead and publishes a lead_submitted event.
func (s *LeadService) SubmitContact(ctx context.Context, input ContactInput) (*domain.Lead, error) {
	lead := &domain.Lead{
		Reference: uuid.NewString(),
		Kind:      domain.LeadKindContact,
		Name:      strings.TrimSpace(input.Name),
		Email:     NormalizeEmail(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		Message:   strings.TrimSpace(input.Message),
		Status:    domain.LeadStatusNew,
	}
	return s.submit(ctx, lead)
}

// SubmitQuote persists a quote-request lead and publishes a lead_submitted event.
func (s *LeadService) SubmitQuote(ctx context.Context, input QuoteInput) (*domain.Lead, error) {
	lead := &domain.Lead{
		Reference:    uuid.NewString(),
		Kind:         domain.LeadKindQuote,
		Name:         strings.TrimSpace(input.Name),
		Email:        NormalizeEmail(input.Email),
		Phone:        strings.TrimSpace(input.Phone),
		Message:      strings.TrimSpace(input.Message),
		ServiceType:  strings.TrimSpace(input.ServiceType),
		PropertyType: strings.TrimSpace(input.PropertyType),
		Status:       domain.LeadStatusNew,
	}
	return s.submit(ctx, lead)
}

func (s *LeadService) submit(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	if err := s.leads.Create(ctx, lead); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventLeadSubmitted,
		EntityID:  lead.ID,
		Timestamp: time.Now(),
		Payload: events.LeadSubmittedPayload{
			Reference:   lead.Reference,
			Kind:        lead.Kind,
			Name:        lead.Name,
			Email:       lead.Email,
			Phone:       lead.Phone,
			Message:     lead.Message,
			ServiceType: lead.ServiceType,
		},
	})
	return lead, nil
}

// List returns leads for back-office review.
func (s *LeadService) List(ctx context.Context, filter repository.LeadFilter) ([]domain.Lead, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	return s.leads.List(ctx, filter)
}

// UpdateStatus transitions a lead's follow-up state.
func (s *LeadService) UpdateStatus(ctx context.Context, id string, status domain.LeadStatus) (*domain.Lead, error) {
	switch status {
	case domain.LeadStatusNew, domain.LeadStatusContacted, domain.LeadStatusClosed:
	default:
		return nil, errors.New("unknown lead status")
	}

	lead, err := s.leads.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStatus := lead.Status
	if err := s.leads.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	lead.Status = status

	s.publishEvent(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventLeadStatusChanged,
		EntityID:  lead.ID,
		Timestamp: time.Now(),
		Payload: events.LeadStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: status,
		},
	})
	return lead, nil
}

func (s *LeadService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
