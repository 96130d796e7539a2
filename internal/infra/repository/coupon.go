package repository

import (
	"context"

	"shop-api/internal/domain/coupon"
	"shop-api/internal/infra"
	sqlc "shop-api/internal/infra/sqlc/generated"
	"shop-api/internal/pkg/pgconv"
	"shop-api/internal/usecase/shared"
)

type CouponWriteQueries interface {
	CreateCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCouponParams) (sqlc.Coupons, error)
	ConsumeCoupon(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Coupons, error)
}

type CouponRepository struct {
	queries CouponWriteQueries
	db      sqlc.DBTX
}

func NewCouponRepository(queries CouponWriteQueries, db sqlc.DBTX) *CouponRepository {
	return &CouponRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CouponRepository) Create(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) (*shared.CouponSnapshot, error) {
	params := sqlc.CreateCouponParams{
		ID:                c.ID(),
		Code:              c.Code().String(),
		DiscountPercent:   pgconv.NumericFromFloat64(c.DiscountPercent()),
		MinAmount:         pgconv.NumericFromFloat64(c.MinAmount()),
		MaxDiscountAmount: pgconv.NumericPtrFromFloat64(c.MaxDiscountAmount()),
		UsageLimit:        pgconv.Int32PtrToPgtype(c.UsageLimit()),
		ExpiryDate:        pgconv.TimeToPgtype(c.ExpiryDate()),
		IsActive:          c.IsActive(),
	}
	row, err := r.queries.CreateCoupon(ctx, tx, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create coupon", err)
	}
	return ToCouponSnapshot(row), nil
}

func (r *CouponRepository) Consume(ctx context.Context, tx sqlc.DBTX, code string) (*shared.CouponSnapshot, error) {
	row, err := r.queries.ConsumeCoupon(ctx, tx, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not consumable", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to consume coupon", err)
	}
	return ToCouponSnapshot(row), nil
}

func ToCouponSnapshot(row sqlc.Coupons) *shared.CouponSnapshot {
	discountPercent, _ := pgconv.Float64FromNumeric(row.DiscountPercent)
	minAmount, _ := pgconv.Float64FromNumeric(row.MinAmount)
	maxDiscount, _ := pgconv.Float64PtrFromNumeric(row.MaxDiscountAmount)

	return &shared.CouponSnapshot{
		ID:                row.ID,
		Code:              row.Code,
		DiscountPercent:   discountPercent,
		MinAmount:         minAmount,
		MaxDiscountAmount: maxDiscount,
		UsageLimit:        pgconv.Int32PtrFromPgtype(row.UsageLimit),
		UsedCount:         row.UsedCount,
		ExpiryDate:        pgconv.TimeFromPgtype(row.ExpiryDate),
		IsActive:          row.IsActive,
	}
}
