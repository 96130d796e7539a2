//go:build unit

package cart_test

import (
	"testing"

	"shop-api/internal/domain/cart"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmptyCart() *cart.Cart {
	return cart.Reconstruct(uuid.New(), uuid.New(), nil)
}

func TestCart_Add(t *testing.T) {
	t.Run("appends a new line with the given price snapshot", func(t *testing.T) {
		c := newEmptyCart()

		item, isNew, err := c.Add(100, 2, 19.99)
		require.NoError(t, err)

		assert.True(t, isNew)
		assert.Equal(t, int64(100), item.ProductID)
		assert.Equal(t, int32(2), item.Quantity)
		assert.Equal(t, 19.99, item.Price)
		assert.Len(t, c.Items(), 1)
	})

	t.Run("aggregates quantity when the product is already in the cart", func(t *testing.T) {
		c := newEmptyCart()

		_, _, err := c.Add(100, 2, 19.99)
		require.NoError(t, err)

		item, isNew, err := c.Add(100, 3, 19.99)
		require.NoError(t, err)

		assert.False(t, isNew)
		assert.Equal(t, int32(5), item.Quantity)
		assert.Len(t, c.Items(), 1)
	})

	t.Run("keeps the original price snapshot on repeated adds", func(t *testing.T) {
		c := newEmptyCart()

		_, _, err := c.Add(100, 1, 19.99)
		require.NoError(t, err)

		// The catalog price changed between adds; the line keeps its snapshot.
		item, _, err := c.Add(100, 1, 24.99)
		require.NoError(t, err)

		assert.Equal(t, 19.99, item.Price)
		assert.Equal(t, 39.98, c.Total())
	})

	t.Run("rejects a non-positive quantity", func(t *testing.T) {
		c := newEmptyCart()

		_, _, err := c.Add(100, 0, 19.99)
		assert.ErrorIs(t, err, cart.ErrInvalidQuantity)

		_, _, err = c.Add(100, -1, 19.99)
		assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
	})

	t.Run("rejects a negative price", func(t *testing.T) {
		c := newEmptyCart()

		_, _, err := c.Add(100, 1, -0.01)
		assert.ErrorIs(t, err, cart.ErrInvalidPrice)
	})
}

func TestCart_SetQuantity(t *testing.T) {
	t.Run("sets the quantity exactly", func(t *testing.T) {
		c := newEmptyCart()
		_, _, err := c.Add(100, 5, 10)
		require.NoError(t, err)

		removed, err := c.SetQuantity(100, 2)
		require.NoError(t, err)

		assert.False(t, removed)
		assert.Equal(t, int32(2), c.Items()[0].Quantity)
		assert.Equal(t, 20.0, c.Total())
	})

	t.Run("removes the line when quantity is zero", func(t *testing.T) {
		c := newEmptyCart()
		_, _, err := c.Add(100, 5, 10)
		require.NoError(t, err)

		removed, err := c.SetQuantity(100, 0)
		require.NoError(t, err)

		assert.True(t, removed)
		assert.Empty(t, c.Items())
	})

	t.Run("removes the line when quantity is negative", func(t *testing.T) {
		c := newEmptyCart()
		_, _, err := c.Add(100, 5, 10)
		require.NoError(t, err)

		removed, err := c.SetQuantity(100, -3)
		require.NoError(t, err)

		assert.True(t, removed)
		assert.Empty(t, c.Items())
	})

	t.Run("errors for a product that is not in the cart", func(t *testing.T) {
		c := newEmptyCart()

		_, err := c.SetQuantity(999, 1)
		assert.ErrorIs(t, err, cart.ErrItemNotFound)
	})
}

func TestCart_Remove(t *testing.T) {
	t.Run("removes an existing line", func(t *testing.T) {
		c := newEmptyCart()
		_, _, err := c.Add(100, 1, 10)
		require.NoError(t, err)
		_, _, err = c.Add(200, 1, 20)
		require.NoError(t, err)

		assert.True(t, c.Remove(100))
		assert.Len(t, c.Items(), 1)
		assert.Equal(t, int64(200), c.Items()[0].ProductID)
	})

	t.Run("is a no-op for an absent product", func(t *testing.T) {
		c := newEmptyCart()
		_, _, err := c.Add(100, 1, 10)
		require.NoError(t, err)

		assert.False(t, c.Remove(999))
		assert.Len(t, c.Items(), 1)
	})
}

func TestCart_Clear(t *testing.T) {
	c := newEmptyCart()
	_, _, err := c.Add(100, 2, 10)
	require.NoError(t, err)
	_, _, err = c.Add(200, 1, 5)
	require.NoError(t, err)

	c.Clear()

	assert.Empty(t, c.Items())
	assert.Equal(t, 0.0, c.Total())
}

func TestCart_Total(t *testing.T) {
	t.Run("is zero for an empty cart", func(t *testing.T) {
		assert.Equal(t, 0.0, newEmptyCart().Total())
	})

	t.Run("folds quantity times price over every line", func(t *testing.T) {
		c := newEmptyCart()
		_, _, err := c.Add(100, 3, 19.99)
		require.NoError(t, err)
		_, _, err = c.Add(200, 1, 5.50)
		require.NoError(t, err)

		assert.Equal(t, 65.47, c.Total())
	})

	t.Run("rounds to cents", func(t *testing.T) {
		c := newEmptyCart()
		_, _, err := c.Add(100, 3, 0.115)
		require.NoError(t, err)

		assert.Equal(t, 0.35, c.Total())
	})

	t.Run("stays consistent across a sequence of mutations", func(t *testing.T) {
		c := newEmptyCart()

		_, _, err := c.Add(1, 2, 10)
		require.NoError(t, err)
		_, _, err = c.Add(2, 1, 7.25)
		require.NoError(t, err)
		_, _, err = c.Add(1, 1, 10)
		require.NoError(t, err)

		_, err = c.SetQuantity(2, 4)
		require.NoError(t, err)
		c.Remove(1)

		assert.Equal(t, 29.0, c.Total())
	})
}
