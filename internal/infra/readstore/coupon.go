package readstore

import (
	"context"
	"strings"
	"time"

	"shop-api/internal/infra"
	sqlc "shop-api/internal/infra/sqlc/generated"
	"shop-api/internal/pkg/pgconv"
	"shop-api/internal/usecase/queries"
)

type CouponViewQueries interface {
	GetCouponByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Coupons, error)
	GetActiveCouponByCode(ctx context.Context, db sqlc.DBTX, arg sqlc.GetActiveCouponByCodeParams) (sqlc.Coupons, error)
	ListActiveCoupons(ctx context.Context, db sqlc.DBTX) ([]sqlc.Coupons, error)
}

type CouponReadStore struct {
	queries CouponViewQueries
	db      sqlc.DBTX
}

func NewCouponReadStore(queries *sqlc.Queries, db sqlc.DBTX) *CouponReadStore {
	return &CouponReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByCode matches regardless of active or expiry state.
func (r *CouponReadStore) FindByCode(ctx context.Context, code string) (*queries.CouponView, error) {
	row, err := r.queries.GetCouponByCode(ctx, r.db, normalizeCode(code))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}
	return toCouponView(row), nil
}

func (r *CouponReadStore) FindActiveByCode(ctx context.Context, code string, now time.Time) (*queries.CouponView, error) {
	params := sqlc.GetActiveCouponByCodeParams{
		Code:       normalizeCode(code),
		ExpiryDate: pgconv.TimeToPgtype(now),
	}
	row, err := r.queries.GetActiveCouponByCode(ctx, r.db, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("active coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active coupon by code", err)
	}
	return toCouponView(row), nil
}

func (r *CouponReadStore) ListActive(ctx context.Context) ([]*queries.CouponView, error) {
	rows, err := r.queries.ListActiveCoupons(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active coupons", err)
	}

	views := make([]*queries.CouponView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toCouponView(row))
	}
	return views, nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func toCouponView(row sqlc.Coupons) *queries.CouponView {
	discountPercent, _ := pgconv.Float64FromNumeric(row.DiscountPercent)
	minAmount, _ := pgconv.Float64FromNumeric(row.MinAmount)
	maxDiscount, _ := pgconv.Float64PtrFromNumeric(row.MaxDiscountAmount)

	return &queries.CouponView{
		ID:                row.ID,
		Code:              row.Code,
		DiscountPercent:   discountPercent,
		MinAmount:         minAmount,
		MaxDiscountAmount: maxDiscount,
		UsageLimit:        pgconv.Int32PtrFromPgtype(row.UsageLimit),
		UsedCount:         row.UsedCount,
		ExpiryDate:        pgconv.TimeFromPgtype(row.ExpiryDate),
		IsActive:          row.IsActive,
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
