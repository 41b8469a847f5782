package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/business-site-service/internal/domain"
)

// CouponRepository encapsulates coupon persistence.
type CouponRepository interface {
	Create(ctx context.Context, coupon *domain.Coupon) error
	GetByID(ctx context.Context, id string) (*domain.Coupon, error)
	ListCurrent(ctx context.Context, now time.Time) ([]domain.Coupon, error)
	Deactivate(ctx context.Context, id string) error
}

type couponRepository struct {
	db DB
}

// NewCouponRepository instantiates repository.
func NewCouponRepository(db DB) CouponRepository {
	return &couponRepository{db: db}
}

func (r *couponRepository) Create(ctx context.Context, coupon *domain.Coupon) error {
	const query = `
        INSERT INTO coupons (code, description, discount, valid_from, valid_until, active)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		coupon.Code,
		coupon.Description,
		coupon.Discount,
		coupon.ValidFrom,
		coupon.ValidUntil,
		coupon.Active,
	).Scan(&coupon.ID, &coupon.CreatedAt, &coupon.UpdatedAt)
}

func (r *couponRepository) GetByID(ctx context.Context, id string) (*domain.Coupon, error) {
	const query = `
        SELECT id, code, description, discount, valid_from, valid_until, active, created_at, updated_at
        FROM coupons WHERE id=$1`

	var coupon domain.Coupon
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&coupon.ID,
		&coupon.Code,
		&coupon.Description,
		&coupon.Discount,
		&coupon.ValidFrom,
		&coupon.ValidUntil,
		&coupon.Active,
		&coupon.CreatedAt,
		&coupon.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) ListCurrent(ctx context.Context, now time.Time) ([]domain.Coupon, error) {
	const query = `
        SELECT id, code, description, discount, valid_from, valid_until, active, created_at, updated_at
        FROM coupons
        WHERE active=TRUE AND valid_from<=$1 AND valid_until>=$1
        ORDER BY valid_until ASC`

	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var coupons []domain.Coupon
	for rows.Next() {
		var coupon domain.Coupon
		if err := rows.Scan(
			&coupon.ID,
			&coupon.Code,
			&coupon.Description,
			&coupon.Discount,
			&coupon.ValidFrom,
			&coupon.ValidUntil,
			&coupon.Active,
			&coupon.CreatedAt,
			&coupon.UpdatedAt,
		); err != nil {
			return nil, err
		}
		coupons = append(coupons, coupon)
	}
	return coupons, rows.Err()
}

func (r *couponRepository) Deactivate(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `UPDATE coupons SET active=FALSE, updated_at=NOW() WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
