//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	domcoupon "shop-api/internal/domain/coupon"
	"shop-api/internal/infra"
	"shop-api/internal/pkg/errs"
	"shop-api/internal/usecase/commands"
	"shop-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCouponCommands_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("creates the coupon with a counter-assigned id", func(t *testing.T) {
		uow := newFakeUoW()
		b := builder.NewCouponBuilder().WithExpiryDate(now.Add(24 * time.Hour))
		uow.tx.coupons.created = b.BuildSnapshot()

		uc := commands.NewCouponUseCase(uow)
		snap, err := uc.Create(ctx, b.BuildCommandRequest())
		require.NoError(t, err)

		assert.Equal(t, b.Code, snap.Code)
		require.Len(t, uow.tx.coupons.createdCoupons, 1)
		assert.Equal(t, int64(1), uow.tx.coupons.createdCoupons[0].ID())
	})

	t.Run("normalizes the code before persisting", func(t *testing.T) {
		uow := newFakeUoW()
		b := builder.NewCouponBuilder().
			WithCode("  save20 ").
			WithExpiryDate(now.Add(24 * time.Hour))
		uow.tx.coupons.created = b.WithCode("SAVE20").BuildSnapshot()

		uc := commands.NewCouponUseCase(uow)
		req := b.BuildCommandRequest()
		req.Code = "  save20 "

		_, err := uc.Create(ctx, req)
		require.NoError(t, err)

		require.Len(t, uow.tx.coupons.createdCoupons, 1)
		assert.Equal(t, "SAVE20", uow.tx.coupons.createdCoupons[0].Code().String())
	})

	t.Run("rejects an invalid discount percent", func(t *testing.T) {
		uow := newFakeUoW()
		uc := commands.NewCouponUseCase(uow)

		req := builder.NewCouponBuilder().
			WithDiscountPercent(95).
			WithExpiryDate(now.Add(24 * time.Hour)).
			BuildCommandRequest()

		_, err := uc.Create(ctx, req)
		assert.ErrorIs(t, err, domcoupon.ErrInvalidDiscountPercent)
	})

	t.Run("maps a duplicate code to ErrCouponAlreadyExists", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.coupons.createErr = infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey)

		uc := commands.NewCouponUseCase(uow)
		req := builder.NewCouponBuilder().
			WithExpiryDate(now.Add(24 * time.Hour)).
			BuildCommandRequest()

		_, err := uc.Create(ctx, req)
		assert.ErrorIs(t, err, errs.ErrCouponAlreadyExists)
	})
}

func TestCouponCommands_Use(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	t.Run("consumes a valid coupon", func(t *testing.T) {
		uow := newFakeUoW()
		snap := builder.NewCouponBuilder().
			WithExpiryDate(now.Add(24 * time.Hour)).
			WithUsedCount(1).
			BuildSnapshot()
		uow.tx.coupons.consumed = snap

		uc := commands.NewCouponUseCase(uow)
		got, err := uc.Use(ctx, "save20")
		require.NoError(t, err)

		assert.Equal(t, snap, got)
		assert.Equal(t, []string{"SAVE20"}, uow.tx.coupons.consumedCodes)
	})

	t.Run("fails with ErrCouponNotFound for a malformed code", func(t *testing.T) {
		uow := newFakeUoW()
		uc := commands.NewCouponUseCase(uow)

		_, err := uc.Use(ctx, "no spaces allowed")

		assert.ErrorIs(t, err, errs.ErrCouponNotFound)
		assert.Empty(t, uow.tx.coupons.consumedCodes)
	})

	t.Run("fails with ErrCouponNotFound when the code does not exist", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.coupons.consumeErr = infra.WrapRepoErr("no rows", nil, infra.KindNotFound)

		uc := commands.NewCouponUseCase(uow)
		_, err := uc.Use(ctx, "NOSUCH")

		assert.ErrorIs(t, err, errs.ErrCouponNotFound)
	})

	t.Run("classifies an exhausted coupon as ErrCouponUsageLimitReached", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.coupons.consumeErr = infra.WrapRepoErr("no rows", nil, infra.KindNotFound)
		uow.tx.reads.coupons["SAVE20"] = builder.NewCouponBuilder().
			WithExpiryDate(now.Add(24 * time.Hour)).
			WithUsageLimit(5).
			WithUsedCount(5).
			BuildSnapshot()

		uc := commands.NewCouponUseCase(uow)
		_, err := uc.Use(ctx, "SAVE20")

		assert.ErrorIs(t, err, errs.ErrCouponUsageLimitReached)
	})

	t.Run("classifies a deactivated coupon as ErrCouponInvalidOrExpired", func(t *testing.T) {
		uow := newFakeUoW()
		uow.tx.coupons.consumeErr = infra.WrapRepoErr("no rows", nil, infra.KindNotFound)
		inactive := builder.NewCouponBuilder().
			WithExpiryDate(now.Add(24 * time.Hour)).
			WithInactive().
			BuildSnapshot()
		uow.tx.reads.coupons["SAVE20"] = inactive

		uc := commands.NewCouponUseCase(uow)
		_, err := uc.Use(ctx, "SAVE20")

		assert.ErrorIs(t, err, errs.ErrCouponInvalidOrExpired)
	})

	t.Run("consumes an expired coupon that is still active", func(t *testing.T) {
		// Expiry only blocks validation. Redemption goes through as long
		// as the coupon is active and under its usage limit.
		uow := newFakeUoW()
		snap := builder.NewCouponBuilder().
			WithExpiryDate(now.Add(-time.Hour)).
			WithUsedCount(1).
			BuildSnapshot()
		uow.tx.coupons.consumed = snap

		uc := commands.NewCouponUseCase(uow)
		got, err := uc.Use(ctx, "SAVE20")
		require.NoError(t, err)

		assert.Equal(t, snap, got)
	})
}
