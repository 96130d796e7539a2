package queries

import (
	"context"
	"time"

	"shop-api/internal/infra"
	"shop-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReviewView struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"productId"`
	UserID    uuid.UUID `json:"userId"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ReviewReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReviewView, error)
	ListByProduct(ctx context.Context, productID int64) ([]*ReviewView, error)
}

type ReviewQueries interface {
	GetByID(ctx context.Context, id int64) (*ReviewView, error)
	ListByProduct(ctx context.Context, productID int64) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	repo ReviewReadStore
}

func NewReviewQueries(repo ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id int64) (*ReviewView, error) {
	rv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrReviewNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (q *reviewQueriesImpl) ListByProduct(ctx context.Context, productID int64) ([]*ReviewView, error) {
	return q.repo.ListByProduct(ctx, productID)
}
