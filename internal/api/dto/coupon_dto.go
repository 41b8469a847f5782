package dto

import (
	"time"

	"github.com/spec-kit/business-site-service/internal/domain"
)

// CouponRequest is the back-office create payload.
type CouponRequest struct {
	Code        string    `json:"code" validate:"required,max=50"`
	Description string    `json:"description" validate:"max=500"`
	Discount    string    `json:"discount" validate:"required,max=100"`
	ValidFrom   time.Time `json:"validFrom" validate:"required"`
	ValidUntil  time.Time `json:"validUntil" validate:"required"`
}

// CouponResponse is the public coupon projection.
type CouponResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Description string    `json:"description,omitempty"`
	Discount    string    `json:"discount"`
	ValidFrom   time.Time `json:"validFrom"`
	ValidUntil  time.Time `json:"validUntil"`
}

// NewCouponResponse projects a coupon.
func NewCouponResponse(coupon *domain.Coupon) CouponResponse {
	return CouponResponse{
		ID:          coupon.ID,
		Code:        coupon.Code,
		Description: coupon.Description,
		Discount:    coupon.Discount,
		ValidFrom:   coupon.ValidFrom,
		ValidUntil:  coupon.ValidUntil,
	}
}

// NewCouponResponses projects a coupon slice.
func NewCouponResponses(coupons []domain.Coupon) []CouponResponse {
	out := make([]CouponResponse, 0, len(coupons))
	for i := range coupons {
		out = append(out, NewCouponResponse(&coupons[i]))
	}
	return out
}
