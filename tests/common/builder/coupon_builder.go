//go:build unit || e2e

package builder

import (
	"time"

	domcoupon "shop-api/internal/domain/coupon"
	reqdto "shop-api/internal/handler/dto/request"
	sqlc "shop-api/internal/infra/sqlc/generated"
	"shop-api/internal/pkg/pgconv"
	"shop-api/internal/usecase/commands"
	"shop-api/internal/usecase/queries"
	"shop-api/internal/usecase/shared"
)

type CouponBuilder struct {
	ID                int64
	Code              string
	DiscountPercent   float64
	MinAmount         float64
	MaxDiscountAmount *float64
	UsageLimit        *int32
	UsedCount         int32
	ExpiryDate        time.Time
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func NewCouponBuilder() *CouponBuilder {
	now := time.Now()
	return &CouponBuilder{
		ID:              1,
		Code:            "SAVE20",
		DiscountPercent: 20,
		MinAmount:       50,
		ExpiryDate:      now.Add(30 * 24 * time.Hour),
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *CouponBuilder) BuildDomain() (*domcoupon.Coupon, error) {
	return domcoupon.New(b.ID, b.Code, b.DiscountPercent, b.MinAmount, b.MaxDiscountAmount, b.UsageLimit, b.ExpiryDate)
}

func (b *CouponBuilder) BuildReconstructed() *domcoupon.Coupon {
	return domcoupon.Reconstruct(b.ID, b.Code, b.DiscountPercent, b.MinAmount, b.MaxDiscountAmount, b.UsageLimit, b.UsedCount, b.ExpiryDate, b.IsActive)
}

func (b *CouponBuilder) BuildInfra() sqlc.Coupons {
	return sqlc.Coupons{
		ID:                b.ID,
		Code:              b.Code,
		DiscountPercent:   pgconv.NumericFromFloat64(b.DiscountPercent),
		MinAmount:         pgconv.NumericFromFloat64(b.MinAmount),
		MaxDiscountAmount: pgconv.NumericPtrFromFloat64(b.MaxDiscountAmount),
		UsageLimit:        pgconv.Int32PtrToPgtype(b.UsageLimit),
		UsedCount:         b.UsedCount,
		ExpiryDate:        pgconv.TimeToPgtype(b.ExpiryDate),
		IsActive:          b.IsActive,
		CreatedAt:         pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:         pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

func (b *CouponBuilder) BuildViewQuery() *queries.CouponView {
	return &queries.CouponView{
		ID:                b.ID,
		Code:              b.Code,
		DiscountPercent:   b.DiscountPercent,
		MinAmount:         b.MinAmount,
		MaxDiscountAmount: b.MaxDiscountAmount,
		UsageLimit:        b.UsageLimit,
		UsedCount:         b.UsedCount,
		ExpiryDate:        b.ExpiryDate,
		IsActive:          b.IsActive,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

func (b *CouponBuilder) BuildSnapshot() *shared.CouponSnapshot {
	return &shared.CouponSnapshot{
		ID:                b.ID,
		Code:              b.Code,
		DiscountPercent:   b.DiscountPercent,
		MinAmount:         b.MinAmount,
		MaxDiscountAmount: b.MaxDiscountAmount,
		UsageLimit:        b.UsageLimit,
		UsedCount:         b.UsedCount,
		ExpiryDate:        b.ExpiryDate,
		IsActive:          b.IsActive,
	}
}

func (b *CouponBuilder) BuildCreateRequestDTO() reqdto.CreateCouponRequest {
	return reqdto.CreateCouponRequest{
		Code:              b.Code,
		DiscountPercent:   b.DiscountPercent,
		MinAmount:         b.MinAmount,
		MaxDiscountAmount: b.MaxDiscountAmount,
		UsageLimit:        b.UsageLimit,
		ExpiryDate:        b.ExpiryDate,
	}
}

func (b *CouponBuilder) BuildCommandRequest() commands.CreateCouponRequest {
	return commands.CreateCouponRequest{
		Code:              b.Code,
		DiscountPercent:   b.DiscountPercent,
		MinAmount:         b.MinAmount,
		MaxDiscountAmount: b.MaxDiscountAmount,
		UsageLimit:        b.UsageLimit,
		ExpiryDate:        b.ExpiryDate,
	}
}

// Fluent builder methods
func (b *CouponBuilder) WithCode(code string) *CouponBuilder {
	b.Code = code
	return b
}

func (b *CouponBuilder) WithDiscountPercent(percent float64) *CouponBuilder {
	b.DiscountPercent = percent
	return b
}

func (b *CouponBuilder) WithMinAmount(min float64) *CouponBuilder {
	b.MinAmount = min
	return b
}

func (b *CouponBuilder) WithMaxDiscountAmount(max float64) *CouponBuilder {
	b.MaxDiscountAmount = &max
	return b
}

func (b *CouponBuilder) WithUsageLimit(limit int32) *CouponBuilder {
	b.UsageLimit = &limit
	return b
}

func (b *CouponBuilder) WithUsedCount(count int32) *CouponBuilder {
	b.UsedCount = count
	return b
}

func (b *CouponBuilder) WithExpiryDate(t time.Time) *CouponBuilder {
	b.ExpiryDate = t
	return b
}

func (b *CouponBuilder) WithInactive() *CouponBuilder {
	b.IsActive = false
	return b
}
