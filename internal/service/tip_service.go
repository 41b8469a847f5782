package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/business-site-service/internal/domain"
	"github.com/spec-kit/business-site-service/internal/events"
	"github.com/spec-kit/business-site-service/internal/repository"
)

// TipService coordinates the maintenance-tips CMS.
type TipService struct {
	tips       repository.TipRepository
	dispatcher events.Dispatcher
}

// NewTipService constructs the service.
func NewTipService(tips repository.TipRepository, dispatcher events.Dispatcher) *TipService {
	return &TipService{tips: tips, dispatcher: dispatcher}
}

// TipInput describes create/update payloads.
type TipInput struct {
	Title    string
	Body     string
	Category string
}

// TipListFilter describes public listing parameters.
type TipListFilter struct {
	Category   *string
	SearchTerm *string
	Page       int
	PageSize   int
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a title.
func Slugify(title string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(title)), "-")
	return strings.Trim(slug, "-")
}

// Create adds an unpublished tip authored by the given admin.
func (s *TipService) Create(ctx context.Context, authorID string, input TipInput) (*domain.Tip, error) {
	slug := Slugify(input.Title)
	if slug == "" {
		return nil, errors.New("title required")
	}

	if _, err := s.tips.GetBySlug(ctx, slug); err == nil {
		return nil, errors.New("a tip with this title already exists")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	tip := &domain.Tip{
		Slug:     slug,
		Title:    strings.TrimSpace(input.Title),
		Body:     input.Body,
		Category: strings.TrimSpace(input.Category),
		AuthorID: authorID,
	}
	if err := s.tips.Create(ctx, tip); err != nil {
		return nil, err
	}
	return tip, nil
}

// Update edits a tip's content. The slug follows the title.
func (s *TipService) Update(ctx context.Context, id string, input TipInput) (*domain.Tip, error) {
	tip, err := s.tips.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	slug := Slugify(input.Title)
	if slug == "" {
		return nil, errors.New("title required")
	}
	if slug != tip.Slug {
		if existing, err := s.tips.GetBySlug(ctx, slug); err == nil && existing.ID != tip.ID {
			return nil, errors.New("a tip with this title already exists")
		} else if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
	}

	tip.Slug = slug
	tip.Title = strings.TrimSpace(input.Title)
	tip.Body = input.Body
	tip.Category = strings.TrimSpace(input.Category)
	if err := s.tips.Update(ctx, tip); err != nil {
		return nil, err
	}
	return tip, nil
}

// SetPublished flips visibility. Publishing stamps published_at once.
func (s *TipService) SetPublished(ctx context.Context, id string, published bool) (*domain.Tip, error) {
	tip, err := s.tips.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	wasPublished := tip.Published
	tip.Published = published
	if published && tip.PublishedAt == nil {
		now := time.Now()
		tip.PublishedAt = &now
	}
	if err := s.tips.Update(ctx, tip); err != nil {
		return nil, err
	}

	if published && !wasPublished {
		s.publishEvent(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventTipPublished,
			EntityID:  tip.ID,
			Timestamp: time.Now(),
			Payload:   events.TipPublishedPayload{Slug: tip.Slug, Title: tip.Title},
		})
	}
	return tip, nil
}

// Delete removes a tip.
func (s *TipService) Delete(ctx context.Context, id string) error {
	return s.tips.Delete(ctx, id)
}

// GetByID returns a tip regardless of publication state (back office).
func (s *TipService) GetByID(ctx context.Context, id string) (*domain.Tip, error) {
	return s.tips.GetByID(ctx, id)
}

// GetPublishedBySlug returns a tip only if it is published.
func (s *TipService) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Tip, error) {
	tip, err := s.tips.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !tip.Published {
		return nil, pgx.ErrNoRows
	}
	return tip, nil
}

// ListPublished returns published tips with pagination and optional search.
func (s *TipService) ListPublished(ctx context.Context, filter TipListFilter) ([]domain.Tip, error) {
	if filter.PageSize <= 0 || filter.PageSize > 50 {
		filter.PageSize = 10
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	return s.tips.List(ctx, repository.TipFilter{
		PublishedOnly: true,
		Category:      filter.Category,
		SearchTerm:    filter.SearchTerm,
		Limit:         filter.PageSize,
		Offset:        (filter.Page - 1) * filter.PageSize,
	})
}

// ListAll returns every tip for back-office listings.
func (s *TipService) ListAll(ctx context.Context, limit, offset int) ([]domain.Tip, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.tips.List(ctx, repository.TipFilter{Limit: limit, Offset: offset})
}

func (s *TipService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
