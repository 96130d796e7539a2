package repository

import (
	"context"

	"shop-api/internal/infra"
	sqlc "shop-api/internal/infra/sqlc/generated"
)

type CounterQueries interface {
	NextSequence(ctx context.Context, db sqlc.DBTX, name string) (int64, error)
}

type CounterRepository struct {
	queries CounterQueries
	db      sqlc.DBTX
}

func NewCounterRepository(queries CounterQueries, db sqlc.DBTX) *CounterRepository {
	return &CounterRepository{
		queries: queries,
		db:      db,
	}
}

// Next returns the next value of a named sequence. The underlying upsert
// increments atomically, so concurrent callers never observe the same value.
func (r *CounterRepository) Next(ctx context.Context, tx sqlc.DBTX, name string) (int64, error) {
	seq, err := r.queries.NextSequence(ctx, tx, name)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to advance counter", err)
	}
	return seq, nil
}
