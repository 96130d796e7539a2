package cache

import (
	"context"

	"shop-api/internal/usecase/queries"

	"github.com/google/uuid"
)

// NoopCartCache is used when no Redis address is configured. Every read
// reports a miss and writes are discarded.
type NoopCartCache struct{}

func NewNoopCartCache() *NoopCartCache {
	return &NoopCartCache{}
}

func (NoopCartCache) Get(ctx context.Context, userID uuid.UUID) (*queries.CartView, error) {
	return nil, queries.ErrCartCacheMiss
}

func (NoopCartCache) Set(ctx context.Context, userID uuid.UUID, view *queries.CartView) error {
	return nil
}

func (NoopCartCache) Delete(ctx context.Context, userID uuid.UUID) error {
	return nil
}
