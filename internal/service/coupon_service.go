package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spec-kit/business-site-service/internal/domain"
	"github.com/spec-kit/business-site-service/internal/repository"
)

// CouponService coordinates promotional coupons.
type CouponService struct {
	coupons repository.CouponRepository
}

// NewCouponService constructs the service.
func NewCouponService(coupons repository.CouponRepository) *CouponService {
	return &CouponService{coupons: coupons}
}

// CouponInput describes a new coupon.
type CouponInput struct {
	Code        string
	Description string
	Discount    string
	ValidFrom   time.Time
	ValidUntil  time.Time
}

// Create adds a coupon.
func (s *CouponService) Create(ctx context.Context, input CouponInput) (*domain.Coupon, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" {
		return nil, errors.New("code required")
	}
	if !input.ValidUntil.After(input.ValidFrom) {
		return nil, errors.New("valid_until must be after valid_from")
	}

	coupon := &domain.Coupon{
		Code:        code,
		Description: strings.TrimSpace(input.Description),
		Discount:    strings.TrimSpace(input.Discount),
		ValidFrom:   input.ValidFrom,
		ValidUntil:  input.ValidUntil,
		Active:      true,
	}
	if err := s.coupons.Create(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// ListCurrent returns active coupons inside their validity window.
func (s *CouponService) ListCurrent(ctx context.Context) ([]domain.Coupon, error) {
	return s.coupons.ListCurrent(ctx, time.Now())
}

// Deactivate retires a coupon.
func (s *CouponService) Deactivate(ctx context.Context, id string) error {
	return s.coupons.Deactivate(ctx, id)
}
