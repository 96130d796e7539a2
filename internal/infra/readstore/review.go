package readstore

import (
	"context"

	"shop-api/internal/infra"
	sqlc "shop-api/internal/infra/sqlc/generated"
	"shop-api/internal/pkg/pgconv"
	"shop-api/internal/usecase/queries"
)

type ReviewViewQueries interface {
	GetReviewByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Reviews, error)
	ListReviewsByProduct(ctx context.Context, db sqlc.DBTX, productID int64) ([]sqlc.Reviews, error)
}

type ReviewReadStore struct {
	queries ReviewViewQueries
	db      sqlc.DBTX
}

func NewReviewReadStore(queries *sqlc.Queries, db sqlc.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id int64) (*queries.ReviewView, error) {
	row, err := r.queries.GetReviewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find review by id", err)
	}
	return toReviewView(row), nil
}

func (r *ReviewReadStore) ListByProduct(ctx context.Context, productID int64) ([]*queries.ReviewView, error) {
	rows, err := r.queries.ListReviewsByProduct(ctx, r.db, productID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by product", err)
	}

	views := make([]*queries.ReviewView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toReviewView(row))
	}
	return views, nil
}

func toReviewView(row sqlc.Reviews) *queries.ReviewView {
	return &queries.ReviewView{
		ID:        row.ID,
		ProductID: row.ProductID,
		UserID:    row.UserID,
		Rating:    row.Rating,
		Comment:   row.Comment,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
