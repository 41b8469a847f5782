package domain

import "time"

// Coupon is a promotional offer listed on the public site.
type Coupon struct {
	ID          string
	Code        string
	Description string
	Discount    string
	ValidFrom   time.Time
	ValidUntil  time.Time
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CurrentlyValid reports whether the coupon is active and inside its window.
func (c Coupon) CurrentlyValid(now time.Time) bool {
	return c.Active && !now.Before(c.ValidFrom) && !now.After(c.ValidUntil)
}
