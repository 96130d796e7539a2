package repository

import (
	"context"

	"shop-api/internal/infra"
	sqlc "shop-api/internal/infra/sqlc/generated"
)

type RatingStatsQueries interface {
	RecalcProductRatingStats(ctx context.Context, db sqlc.DBTX, productID int64) error
}

type RatingStatsRepository struct {
	queries RatingStatsQueries
	db      sqlc.DBTX
}

func NewRatingStatsRepository(queries RatingStatsQueries, db sqlc.DBTX) *RatingStatsRepository {
	return &RatingStatsRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RatingStatsRepository) RecalcProductRatingStats(ctx context.Context, tx sqlc.DBTX, productID int64) error {
	if err := r.queries.RecalcProductRatingStats(ctx, tx, productID); err != nil {
		return infra.WrapRepoErr("failed to recalculate product rating stats", err)
	}
	return nil
}
