package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"shop-api/internal/pkg/errs"
	"shop-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RedisCartCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func NewRedisCartCache(client *redis.Client, baseTTL time.Duration) *RedisCartCache {
	return &RedisCartCache{
		client:  client,
		baseTTL: baseTTL,
	}
}

func (r *RedisCartCache) Get(ctx context.Context, userID uuid.UUID) (*queries.CartView, error) {
	data, err := r.client.Get(ctx, cacheKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, queries.ErrCartCacheMiss
	}
	if err != nil {
		return nil, errs.Wrap(err, "redis get failed")
	}

	var view queries.CartView
	if err := json.Unmarshal(data, &view); err != nil {
		return nil, errs.Wrap(err, "unmarshal cart view failed")
	}
	return &view, nil
}

func (r *RedisCartCache) Set(ctx context.Context, userID uuid.UUID, view *queries.CartView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return errs.Wrap(err, "marshal cart view failed")
	}

	// Jitter spreads expirations so hot keys do not refill at once
	ttl := r.baseTTL + time.Duration(rand.Intn(30))*time.Second
	if err := r.client.Set(ctx, cacheKey(userID), data, ttl).Err(); err != nil {
		return errs.Wrap(err, "redis set failed")
	}
	return nil
}

func (r *RedisCartCache) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := r.client.Del(ctx, cacheKey(userID)).Err(); err != nil {
		return errs.Wrap(err, "redis delete failed")
	}
	return nil
}

func cacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("cart:%s", userID)
}
