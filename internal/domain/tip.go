package domain

import "time"

// Tip is a maintenance-tips article managed from the back office.
type Tip struct {
	ID          string
	Slug        string
	Title       string
	Body        string
	Category    string
	Published   bool
	PublishedAt *time.Time
	AuthorID    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
