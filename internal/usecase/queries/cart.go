package queries

import (
	"context"
	"log/slog"
	"time"

	"shop-api/internal/infra"
	"shop-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCartCacheMiss = errs.New("cart view not cached")

type CartItemView struct {
	ID        int64       `json:"id"`
	ProductID int64       `json:"productId"`
	Quantity  int32       `json:"quantity"`
	Price     float64     `json:"price"`
	Product   *ProductRef `json:"product"`
}

type CartView struct {
	ID          uuid.UUID      `json:"id"`
	UserID      uuid.UUID      `json:"userId"`
	Items       []CartItemView `json:"items"`
	TotalAmount float64        `json:"totalAmount"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

type CartReadStore interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*CartView, error)
}

// CartCache holds the assembled cart view between mutations. Implementations
// return ErrCartCacheMiss when no entry exists.
type CartCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*CartView, error)
	Set(ctx context.Context, userID uuid.UUID, view *CartView) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

type CartQueries interface {
	GetByUser(ctx context.Context, userID uuid.UUID) (*CartView, error)
}

type cartQueriesImpl struct {
	repo  CartReadStore
	cache CartCache
}

func NewCartQueries(repo CartReadStore, cache CartCache) CartQueries {
	return &cartQueriesImpl{repo: repo, cache: cache}
}

func (q *cartQueriesImpl) GetByUser(ctx context.Context, userID uuid.UUID) (*CartView, error) {
	if view, err := q.cache.Get(ctx, userID); err == nil {
		return view, nil
	}

	view, err := q.repo.FindByUser(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCartNotFound
		}
		return nil, err
	}

	if err := q.cache.Set(ctx, userID, view); err != nil {
		slog.Warn("failed to cache cart view", "user_id", userID, "error", err.Error())
	}
	return view, nil
}
