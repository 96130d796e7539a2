package commands

import (
	"context"
	"time"

	domcoupon "shop-api/internal/domain/coupon"
	"shop-api/internal/infra"
	"shop-api/internal/pkg/errs"
	"shop-api/internal/usecase/shared"
)

const couponCounter = "coupon"

type CreateCouponRequest struct {
	Code              string
	DiscountPercent   float64
	MinAmount         float64
	MaxDiscountAmount *float64
	UsageLimit        *int32
	ExpiryDate        time.Time
}

type CouponCommands interface {
	Create(ctx context.Context, req CreateCouponRequest) (*shared.CouponSnapshot, error)
	// Use consumes one redemption of the coupon. Under a usage limit of N,
	// exactly N concurrent calls can succeed.
	Use(ctx context.Context, code string) (*shared.CouponSnapshot, error)
}

type couponUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewCouponUseCase(uow shared.UnitOfWork) CouponCommands {
	return &couponUseCaseImpl{uow: uow}
}

func (uc *couponUseCaseImpl) Create(ctx context.Context, req CreateCouponRequest) (*shared.CouponSnapshot, error) {
	var created *shared.CouponSnapshot
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Counters().Next(ctx, tx.DB(), couponCounter)
		if err != nil {
			return err
		}

		c, err := domcoupon.New(
			id,
			req.Code,
			req.DiscountPercent,
			req.MinAmount,
			req.MaxDiscountAmount,
			req.UsageLimit,
			req.ExpiryDate,
		)
		if err != nil {
			return err
		}

		created, err = tx.Coupons().Create(ctx, tx.DB(), c)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrCouponAlreadyExists
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (uc *couponUseCaseImpl) Use(ctx context.Context, code string) (*shared.CouponSnapshot, error) {
	normalized, err := domcoupon.NewCode(code)
	if err != nil {
		return nil, errs.ErrCouponNotFound
	}

	var consumed *shared.CouponSnapshot
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Coupons().Consume(ctx, tx.DB(), normalized.String())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return uc.classifyConsumeFailure(ctx, tx, normalized.String())
			}
			return err
		}

		// Expiry does not gate redemption; only deactivation and the
		// usage limit do. Expiry is enforced at validation time.
		consumed = snap
		return nil
	})
	if err != nil {
		return nil, err
	}
	return consumed, nil
}

// classifyConsumeFailure distinguishes an unknown code from an exhausted or
// deactivated coupon after the guarded update matched no row.
func (uc *couponUseCaseImpl) classifyConsumeFailure(ctx context.Context, tx shared.Tx, code string) error {
	snap, err := tx.Reads().CouponByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrCouponNotFound
		}
		return err
	}

	if snap.UsageLimit != nil && snap.UsedCount >= *snap.UsageLimit {
		return errs.ErrCouponUsageLimitReached
	}
	return errs.ErrCouponInvalidOrExpired
}
