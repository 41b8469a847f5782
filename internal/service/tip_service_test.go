package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/business-site-service/internal/domain"
	"github.com/spec-kit/business-site-service/internal/events"
	"github.com/spec-kit/business-site-service/internal/repository"
)

type mockTipRepo struct {
	createFunc    func(ctx context.Context, tip *domain.Tip) error
	updateFunc    func(ctx context.Context, tip *domain.Tip) error
	deleteFunc    func(ctx context.Context, id string) error
	getByIDFunc   func(ctx context.Context, id string) (*domain.Tip, error)
	getBySlugFunc func(ctx context.Context, slug string) (*domain.Tip, error)
	listFunc      func(ctx context.Context, filter repository.TipFilter) ([]domain.Tip, error)
}

func (m *mockTipRepo) Create(ctx context.Context, tip *domain.Tip) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, tip)
	}
	tip.ID = "tip-1"
	return nil
}

func (m *mockTipRepo) Update(ctx context.Context, tip *domain.Tip) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, tip)
	}
	return nil
}

func (m *mockTipRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTipRepo) GetByID(ctx context.Context, id string) (*domain.Tip, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockTipRepo) GetBySlug(ctx context.Context, slug string) (*domain.Tip, error) {
	if m.getBySlugFunc != nil {
		return m.getBySlugFunc(ctx, slug)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockTipRepo) List(ctx context.Context, filter repository.TipFilter) ([]domain.Tip, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return nil, nil
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"How to Reset a Tripped Breaker", "how-to-reset-a-tripped-breaker"},
		{"  Winter HVAC Checklist!  ", "winter-hvac-checklist"},
		{"A/C Maintenance 101", "a-c-maintenance-101"},
		{"---", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.title), "title %q", tc.title)
	}
}

func TestTipCreate_DuplicateSlug(t *testing.T) {
	repo := &mockTipRepo{
		getBySlugFunc: func(_ context.Context, _ string) (*domain.Tip, error) {
			return &domain.Tip{ID: "tip-1"}, nil
		},
	}
	svc := NewTipService(repo, events.NewInMemoryDispatcher())

	_, err := svc.Create(context.Background(), "admin-1", TipInput{Title: "Winter HVAC Checklist"})
	require.Error(t, err)
	assert.Equal(t, "a tip with this title already exists", err.Error())
}

func TestTipCreate_StartsUnpublished(t *testing.T) {
	svc := NewTipService(&mockTipRepo{}, events.NewInMemoryDispatcher())

	tip, err := svc.Create(context.Background(), "admin-1", TipInput{
		Title:    "Winter HVAC Checklist",
		Body:     "Change the filters.",
		Category: "hvac",
	})
	require.NoError(t, err)
	assert.Equal(t, "winter-hvac-checklist", tip.Slug)
	assert.Equal(t, "admin-1", tip.AuthorID)
	assert.False(t, tip.Published)
	assert.Nil(t, tip.PublishedAt)
}

func TestSetPublished_StampsPublishedAtOnce(t *testing.T) {
	firstPublish := time.Now().Add(-24 * time.Hour)
	stored := &domain.Tip{
		ID:          "tip-1",
		Slug:        "winter-hvac-checklist",
		Title:       "Winter HVAC Checklist",
		Published:   false,
		PublishedAt: &firstPublish,
	}
	repo := &mockTipRepo{
		getByIDFunc: func(_ context.Context, _ string) (*domain.Tip, error) {
			copied := *stored
			return &copied, nil
		},
	}
	dispatcher := events.NewInMemoryDispatcher()
	var published []events.Event
	captureEvents(dispatcher, events.EventTipPublished, &published)

	svc := NewTipService(repo, dispatcher)

	// re-publishing keeps the original timestamp
	tip, err := svc.SetPublished(context.Background(), "tip-1", true)
	require.NoError(t, err)
	assert.True(t, tip.Published)
	require.NotNil(t, tip.PublishedAt)
	assert.True(t, tip.PublishedAt.Equal(firstPublish))
	require.Len(t, published, 1)
}

func TestSetPublished_FirstPublishSetsTimestamp(t *testing.T) {
	repo := &mockTipRepo{
		getByIDFunc: func(_ context.Context, _ string) (*domain.Tip, error) {
			return &domain.Tip{ID: "tip-1", Slug: "s", Title: "T"}, nil
		},
	}
	svc := NewTipService(repo, events.NewInMemoryDispatcher())

	tip, err := svc.SetPublished(context.Background(), "tip-1", true)
	require.NoError(t, err)
	require.NotNil(t, tip.PublishedAt)
	assert.WithinDuration(t, time.Now(), *tip.PublishedAt, time.Minute)
}

func TestSetPublished_UnpublishDoesNotEmitEvent(t *testing.T) {
	repo := &mockTipRepo{
		getByIDFunc: func(_ context.Context, _ string) (*domain.Tip, error) {
			now := time.Now()
			return &domain.Tip{ID: "tip-1", Published: true, PublishedAt: &now}, nil
		},
	}
	dispatcher := events.NewInMemoryDispatcher()
	var published []events.Event
	captureEvents(dispatcher, events.EventTipPublished, &published)

	svc := NewTipService(repo, dispatcher)

	tip, err := svc.SetPublished(context.Background(), "tip-1", false)
	require.NoError(t, err)
	assert.False(t, tip.Published)
	assert.Empty(t, published)
}

func TestGetPublishedBySlug_HidesDrafts(t *testing.T) {
	repo := &mockTipRepo{
		getBySlugFunc: func(_ context.Context, _ string) (*domain.Tip, error) {
			return &domain.Tip{ID: "tip-1", Published: false}, nil
		},
	}
	svc := NewTipService(repo, events.NewInMemoryDispatcher())

	_, err := svc.GetPublishedBySlug(context.Background(), "draft-tip")
	assert.ErrorIs(t, err, pgx.ErrNoRows)
}

func TestListPublished_PaginationClamps(t *testing.T) {
	var seen repository.TipFilter
	repo := &mockTipRepo{
		listFunc: func(_ context.Context, filter repository.TipFilter) ([]domain.Tip, error) {
			seen = filter
			return nil, nil
		},
	}
	svc := NewTipService(repo, events.NewInMemoryDispatcher())

	_, err := svc.ListPublished(context.Background(), TipListFilter{Page: 3, PageSize: 500})
	require.NoError(t, err)
	assert.True(t, seen.PublishedOnly)
	assert.Equal(t, 10, seen.Limit)
	assert.Equal(t, 20, seen.Offset)
}
