package dto

import (
	"time"

	"github.com/spec-kit/business-site-service/internal/domain"
)

// TipRequest is the back-office create/update payload.
type TipRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Body     string `json:"body" validate:"required"`
	Category string `json:"category" validate:"max=100"`
}

// TipResponse is the public tip projection.
type TipResponse struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	Category    string     `json:"category,omitempty"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewTipResponse projects a tip.
func NewTipResponse(tip *domain.Tip) TipResponse {
	return TipResponse{
		ID:          tip.ID,
		Slug:        tip.Slug,
		Title:       tip.Title,
		Body:        tip.Body,
		Category:    tip.Category,
		Published:   tip.Published,
		PublishedAt: tip.PublishedAt,
		CreatedAt:   tip.CreatedAt,
		UpdatedAt:   tip.UpdatedAt,
	}
}

// NewTipResponses projects a tip slice.
func NewTipResponses(tips []domain.Tip) []TipResponse {
	out := make([]TipResponse, 0, len(tips))
	for i := range tips {
		out = append(out, NewTipResponse(&tips[i]))
	}
	return out
}
