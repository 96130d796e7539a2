package queries

import (
	"context"
	"errors"
	"time"

	"shop-api/internal/domain/coupon"
	"shop-api/internal/infra"
	"shop-api/internal/pkg/clock"
	"shop-api/internal/pkg/errs"
)

type CouponView struct {
	ID                int64     `json:"id"`
	Code              string    `json:"code"`
	DiscountPercent   float64   `json:"discountPercent"`
	MinAmount         float64   `json:"minAmount"`
	MaxDiscountAmount *float64  `json:"maxDiscountAmount,omitempty"`
	UsageLimit        *int32    `json:"usageLimit,omitempty"`
	UsedCount         int32     `json:"usedCount"`
	ExpiryDate        time.Time `json:"expiryDate"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// ValidationResult is the priced outcome of checking a coupon against a cart
// total. Validation never consumes the coupon.
type ValidationResult struct {
	Coupon          *CouponView `json:"coupon"`
	DiscountPercent float64     `json:"discountPercent"`
	DiscountAmount  float64     `json:"discountAmount"`
	FinalAmount     float64     `json:"finalAmount"`
}

type CouponReadStore interface {
	// FindActiveByCode matches only active, unexpired coupons.
	FindActiveByCode(ctx context.Context, code string, now time.Time) (*CouponView, error)
	ListActive(ctx context.Context) ([]*CouponView, error)
}

type CouponQueries interface {
	Validate(ctx context.Context, code string, cartTotal float64) (*ValidationResult, error)
	ListActive(ctx context.Context) ([]*CouponView, error)
}

type couponQueriesImpl struct {
	repo  CouponReadStore
	clock clock.Clock
}

func NewCouponQueries(repo CouponReadStore, clk clock.Clock) CouponQueries {
	return &couponQueriesImpl{repo: repo, clock: clk}
}

func (q *couponQueriesImpl) Validate(ctx context.Context, code string, cartTotal float64) (*ValidationResult, error) {
	now := q.clock.Now()

	view, err := q.repo.FindActiveByCode(ctx, code, now)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Unknown, inactive and expired codes are indistinguishable here
			return nil, errs.ErrCouponInvalidOrExpired
		}
		return nil, err
	}

	c := coupon.Reconstruct(
		view.ID,
		view.Code,
		view.DiscountPercent,
		view.MinAmount,
		view.MaxDiscountAmount,
		view.UsageLimit,
		view.UsedCount,
		view.ExpiryDate,
		view.IsActive,
	)

	if err := c.CanRedeem(cartTotal, now); err != nil {
		switch {
		case errors.Is(err, coupon.ErrExpired):
			return nil, errs.ErrCouponInvalidOrExpired
		case errors.Is(err, coupon.ErrUsageLimitReached):
			return nil, errs.ErrCouponUsageLimitReached
		default:
			// BelowMinimumError carries its own client-facing message
			return nil, err
		}
	}

	discountAmount, finalAmount := c.Discount(cartTotal)
	return &ValidationResult{
		Coupon:          view,
		DiscountPercent: view.DiscountPercent,
		DiscountAmount:  discountAmount,
		FinalAmount:     finalAmount,
	}, nil
}

func (q *couponQueriesImpl) ListActive(ctx context.Context) ([]*CouponView, error) {
	return q.repo.ListActive(ctx)
}
