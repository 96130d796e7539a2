//go:build unit

package commands_test

import (
	"context"
	"testing"

	"shop-api/internal/infra"
	"shop-api/internal/pkg/errs"
	"shop-api/internal/usecase/commands"
	"shop-api/internal/usecase/shared"
	"shop-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCart(b *builder.CartBuilder) (*fakeUoW, *fakeCartCache, commands.CartCommands) {
	uow := newFakeUoW()
	uow.tx.carts.snapshot = b.BuildSnapshot()
	cache := &fakeCartCache{}
	return uow, cache, commands.NewCartUseCase(uow, cache)
}

func TestCartCommands_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("inserts a new line priced at the current catalog price", func(t *testing.T) {
		b := builder.NewCartBuilder()
		uow, cache, uc := setupCart(b)
		uow.tx.reads.products[100] = &shared.ProductSnapshot{ID: 100, Name: "Widget", Price: 19.99, Status: "active"}

		err := uc.AddItem(ctx, b.UserID, 100, 2)
		require.NoError(t, err)

		carts := uow.tx.carts
		require.Len(t, carts.inserted, 1)
		assert.Equal(t, int64(1), carts.inserted[0].ID)
		assert.Equal(t, int64(100), carts.inserted[0].ProductID)
		assert.Equal(t, int32(2), carts.inserted[0].Quantity)
		assert.Equal(t, 19.99, carts.inserted[0].Price)
		assert.Equal(t, []float64{39.98}, carts.updatedTotals)
		assert.Equal(t, []int64(nil), carts.removed)
		// Adding to a cart creates it on first touch.
		assert.Equal(t, []uuid.UUID{b.UserID}, carts.ensured)
		assert.Contains(t, cache.deleted, b.UserID)
	})

	t.Run("aggregates quantity for a product already in the cart", func(t *testing.T) {
		b := builder.NewCartBuilder().
			WithItem(builder.CartItemSpec{ID: 1, ProductID: 100, Quantity: 2, Price: 19.99})
		uow, _, uc := setupCart(b)
		// The stored snapshot price wins over the current catalog price.
		uow.tx.reads.products[100] = &shared.ProductSnapshot{ID: 100, Name: "Widget", Price: 24.99, Status: "active"}

		err := uc.AddItem(ctx, b.UserID, 100, 3)
		require.NoError(t, err)

		carts := uow.tx.carts
		assert.Empty(t, carts.inserted)
		assert.Equal(t, int32(5), carts.updated[100])
		assert.Equal(t, []float64{99.95}, carts.updatedTotals)
	})

	t.Run("assigns fresh line ids from the counter", func(t *testing.T) {
		b := builder.NewCartBuilder()
		uow, _, uc := setupCart(b)
		uow.tx.reads.products[100] = &shared.ProductSnapshot{ID: 100, Price: 10, Status: "active"}
		uow.tx.reads.products[200] = &shared.ProductSnapshot{ID: 200, Price: 20, Status: "active"}

		require.NoError(t, uc.AddItem(ctx, b.UserID, 100, 1))

		// The fake does not persist between calls, so rebuild the snapshot
		// the way the locked read would return it.
		uow.tx.carts.snapshot = builder.NewCartBuilder().
			WithUserID(b.UserID).
			WithItem(builder.CartItemSpec{ID: 1, ProductID: 100, Quantity: 1, Price: 10}).
			BuildSnapshot()

		require.NoError(t, uc.AddItem(ctx, b.UserID, 200, 1))

		require.Len(t, uow.tx.carts.inserted, 2)
		assert.Equal(t, int64(1), uow.tx.carts.inserted[0].ID)
		assert.Equal(t, int64(2), uow.tx.carts.inserted[1].ID)
	})

	t.Run("fails with ErrProductNotFound for an unknown product", func(t *testing.T) {
		b := builder.NewCartBuilder()
		uow, cache, uc := setupCart(b)

		err := uc.AddItem(ctx, b.UserID, 999, 1)

		assert.ErrorIs(t, err, errs.ErrProductNotFound)
		assert.Empty(t, uow.tx.carts.inserted)
		assert.Empty(t, cache.deleted)
	})
}

func TestCartCommands_UpdateItemQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("sets the quantity and recomputes the total", func(t *testing.T) {
		b := builder.NewCartBuilder().
			WithItem(builder.CartItemSpec{ID: 1, ProductID: 100, Quantity: 5, Price: 10})
		uow, cache, uc := setupCart(b)

		err := uc.UpdateItemQuantity(ctx, b.UserID, 100, 2)
		require.NoError(t, err)

		assert.Equal(t, int32(2), uow.tx.carts.updated[100])
		assert.Equal(t, []float64{20}, uow.tx.carts.updatedTotals)
		assert.Contains(t, cache.deleted, b.UserID)
	})

	t.Run("removes the line when quantity is zero", func(t *testing.T) {
		b := builder.NewCartBuilder().
			WithItem(builder.CartItemSpec{ID: 1, ProductID: 100, Quantity: 5, Price: 10}).
			WithItem(builder.CartItemSpec{ID: 2, ProductID: 200, Quantity: 1, Price: 7})
		uow, _, uc := setupCart(b)

		err := uc.UpdateItemQuantity(ctx, b.UserID, 100, 0)
		require.NoError(t, err)

		assert.Equal(t, []int64{100}, uow.tx.carts.removed)
		assert.Empty(t, uow.tx.carts.updated)
		assert.Equal(t, []float64{7}, uow.tx.carts.updatedTotals)
	})

	t.Run("fails with ErrCartItemNotFound for an absent product", func(t *testing.T) {
		b := builder.NewCartBuilder()
		uow, _, uc := setupCart(b)

		err := uc.UpdateItemQuantity(ctx, b.UserID, 999, 2)

		assert.ErrorIs(t, err, errs.ErrCartItemNotFound)
		assert.Empty(t, uow.tx.carts.updatedTotals)
	})

	t.Run("fails with ErrCartNotFound for a user who has no cart", func(t *testing.T) {
		b := builder.NewCartBuilder()
		uow, cache, uc := setupCart(b)
		uow.tx.carts.findErr = infra.WrapRepoErr("cart not found", nil, infra.KindNotFound)

		err := uc.UpdateItemQuantity(ctx, b.UserID, 100, 2)

		assert.ErrorIs(t, err, errs.ErrCartNotFound)
		// Mutations other than AddItem never create the cart lazily.
		assert.Empty(t, uow.tx.carts.ensured)
		assert.Empty(t, cache.deleted)
	})
}

func TestCartCommands_RemoveItem(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the line and recomputes the total", func(t *testing.T) {
		b := builder.NewCartBuilder().
			WithItem(builder.CartItemSpec{ID: 1, ProductID: 100, Quantity: 2, Price: 10}).
			WithItem(builder.CartItemSpec{ID: 2, ProductID: 200, Quantity: 1, Price: 5})
		uow, cache, uc := setupCart(b)

		err := uc.RemoveItem(ctx, b.UserID, 100)
		require.NoError(t, err)

		assert.Equal(t, []int64{100}, uow.tx.carts.removed)
		assert.Equal(t, []float64{5}, uow.tx.carts.updatedTotals)
		assert.Contains(t, cache.deleted, b.UserID)
	})

	t.Run("is a no-op for a product that is not in the cart", func(t *testing.T) {
		b := builder.NewCartBuilder().
			WithItem(builder.CartItemSpec{ID: 1, ProductID: 100, Quantity: 2, Price: 10})
		uow, cache, uc := setupCart(b)

		err := uc.RemoveItem(ctx, b.UserID, 999)
		require.NoError(t, err)

		assert.Empty(t, uow.tx.carts.removed)
		assert.Empty(t, uow.tx.carts.updatedTotals)
		// The cache is still invalidated; the view might be stale for other reasons.
		assert.Contains(t, cache.deleted, b.UserID)
	})

	t.Run("fails with ErrCartNotFound for a user who has no cart", func(t *testing.T) {
		b := builder.NewCartBuilder()
		uow, cache, uc := setupCart(b)
		uow.tx.carts.findErr = infra.WrapRepoErr("cart not found", nil, infra.KindNotFound)

		err := uc.RemoveItem(ctx, b.UserID, 100)

		assert.ErrorIs(t, err, errs.ErrCartNotFound)
		assert.Empty(t, uow.tx.carts.ensured)
		assert.Empty(t, cache.deleted)
	})
}

func TestCartCommands_ClearCart(t *testing.T) {
	ctx := context.Background()

	t.Run("clears all lines and zeroes the total", func(t *testing.T) {
		b := builder.NewCartBuilder().
			WithItem(builder.CartItemSpec{ID: 1, ProductID: 100, Quantity: 2, Price: 10}).
			WithItem(builder.CartItemSpec{ID: 2, ProductID: 200, Quantity: 3, Price: 5})
		uow, cache, uc := setupCart(b)

		err := uc.ClearCart(ctx, b.UserID)
		require.NoError(t, err)

		assert.True(t, uow.tx.carts.cleared)
		assert.Equal(t, []float64{0}, uow.tx.carts.updatedTotals)
		assert.Contains(t, cache.deleted, b.UserID)
	})

	t.Run("fails with ErrCartNotFound for a user who has no cart", func(t *testing.T) {
		b := builder.NewCartBuilder()
		uow, cache, uc := setupCart(b)
		uow.tx.carts.findErr = infra.WrapRepoErr("cart not found", nil, infra.KindNotFound)

		err := uc.ClearCart(ctx, b.UserID)

		assert.ErrorIs(t, err, errs.ErrCartNotFound)
		assert.False(t, uow.tx.carts.cleared)
		assert.Empty(t, uow.tx.carts.ensured)
		assert.Empty(t, cache.deleted)
	})
}

func TestCartCommands_EnsureCart(t *testing.T) {
	ctx := context.Background()

	b := builder.NewCartBuilder()
	uow, _, uc := setupCart(b)

	err := uc.EnsureCart(ctx, b.UserID)
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{b.UserID}, uow.tx.carts.ensured)
}
