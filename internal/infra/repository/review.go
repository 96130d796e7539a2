package repository

import (
	"context"

	"shop-api/internal/domain/review"
	"shop-api/internal/infra"
	sqlc "shop-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ReviewWriteQueries interface {
	CreateReview(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReviewParams) (sqlc.Reviews, error)
	DeleteReview(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteReviewParams) (int64, error)
}

type ReviewRepository struct {
	queries ReviewWriteQueries
	db      sqlc.DBTX
}

func NewReviewRepository(queries ReviewWriteQueries, db sqlc.DBTX) *ReviewRepository {
	return &ReviewRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) (int64, error) {
	params := sqlc.CreateReviewParams{
		ID:        rev.ID(),
		ProductID: rev.ProductID(),
		UserID:    rev.UserID(),
		Rating:    rev.Rating().Value(),
		Comment:   rev.Comment().String(),
	}
	row, err := r.queries.CreateReview(ctx, tx, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create review", err)
	}
	return row.ID, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, tx sqlc.DBTX, reviewID int64, userID uuid.UUID) (bool, error) {
	params := sqlc.DeleteReviewParams{
		ID:     reviewID,
		UserID: userID,
	}
	affected, err := r.queries.DeleteReview(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete review", err)
	}
	return affected > 0, nil
}
