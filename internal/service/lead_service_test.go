package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/business-site-service/internal/domain"
	"github.com/spec-kit/business-site-service/internal/events"
	"github.com/spec-kit/business-site-service/internal/repository"
)

type mockLeadRepo struct {
	createFunc       func(ctx context.Context, lead *domain.Lead) error
	getByIDFunc      func(ctx context.Context, id string) (*domain.Lead, error)
	listFunc         func(ctx context.Context, filter repository.LeadFilter) ([]domain.Lead, error)
	updateStatusFunc func(ctx context.Context, id string, status domain.LeadStatus) error
}

func (m *mockLeadRepo) Create(ctx context.Context, lead *domain.Lead) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, lead)
	}
	lead.ID = "lead-1"
	return nil
}

func (m *mockLeadRepo) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &domain.Lead{ID: id, Status: domain.LeadStatusNew}, nil
}

func (m *mockLeadRepo) List(ctx context.Context, filter repository.LeadFilter) ([]domain.Lead, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockLeadRepo) UpdateStatus(ctx context.Context, id string, status domain.LeadStatus) error {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return nil
}

func captureEvents(dispatcher events.Dispatcher, eventType events.EventType, sink *[]events.Event) {
	dispatcher.Subscribe(eventType, func(_ context.Context, event events.Event) error {
		*sink = append(*sink, event)
		return nil
	})
}

func TestSubmitContact_PublishesEvent(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	var published []events.Event
	captureEvents(dispatcher, events.EventLeadSubmitted, &published)

	svc := NewLeadService(&mockLeadRepo{}, dispatcher)

	lead, err := svc.SubmitContact(context.Background(), ContactInput{
		Name:    "  John Smith ",
		Email:   "John@Example.com",
		Phone:   "555-0101",
		Message: "Please call me back",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.LeadKindContact, lead.Kind)
	assert.Equal(t, domain.LeadStatusNew, lead.Status)
	assert.Equal(t, "John Smith", lead.Name)
	assert.Equal(t, "john@example.com", lead.Email)
	assert.NotEmpty(t, lead.Reference)

	require.Len(t, published, 1)
	payload, ok := published[0].Payload.(events.LeadSubmittedPayload)
	require.True(t, ok)
	assert.Equal(t, lead.Reference, payload.Reference)
	assert.Equal(t, domain.LeadKindContact, payload.Kind)
}

func TestSubmitQuote_CarriesServiceType(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	var published []events.Event
	captureEvents(dispatcher, events.EventLeadSubmitted, &published)

	svc := NewLeadService(&mockLeadRepo{}, dispatcher)

	lead, err := svc.SubmitQuote(context.Background(), QuoteInput{
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		Message:      "Quote for a full rewire",
		ServiceType:  "rewiring",
		PropertyType: "residential",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.LeadKindQuote, lead.Kind)
	assert.Equal(t, "rewiring", lead.ServiceType)
	assert.Equal(t, "residential", lead.PropertyType)

	require.Len(t, published, 1)
	payload := published[0].Payload.(events.LeadSubmittedPayload)
	assert.Equal(t, "rewiring", payload.ServiceType)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc := NewLeadService(&mockLeadRepo{}, events.NewInMemoryDispatcher())

	_, err := svc.UpdateStatus(context.Background(), "lead-1", domain.LeadStatus("ARCHIVED"))
	require.Error(t, err)
	assert.Equal(t, "unknown lead status", err.Error())
}

func TestUpdateStatus_PublishesTransition(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	var published []events.Event
	captureEvents(dispatcher, events.EventLeadStatusChanged, &published)

	repo := &mockLeadRepo{
		getByIDFunc: func(_ context.Context, id string) (*domain.Lead, error) {
			return &domain.Lead{ID: id, Status: domain.LeadStatusNew}, nil
		},
	}
	svc := NewLeadService(repo, dispatcher)

	lead, err := svc.UpdateStatus(context.Background(), "lead-1", domain.LeadStatusContacted)
	require.NoError(t, err)
	assert.Equal(t, domain.LeadStatusContacted, lead.Status)

	require.Len(t, published, 1)
	payload := published[0].Payload.(events.LeadStatusChangedPayload)
	assert.Equal(t, domain.LeadStatusNew, payload.OldStatus)
	assert.Equal(t, domain.LeadStatusContacted, payload.NewStatus)
}

func TestList_ClampsLimit(t *testing.T) {
	var seen repository.LeadFilter
	repo := &mockLeadRepo{
		listFunc: func(_ context.Context, filter repository.LeadFilter) ([]domain.Lead, error) {
			seen = filter
			return nil, nil
		},
	}
	svc := NewLeadService(repo, events.NewInMemoryDispatcher())

	_, err := svc.List(context.Background(), repository.LeadFilter{Limit: 5000})
	require.NoError(t, err)
	assert.Equal(t, 20, seen.Limit)
}
