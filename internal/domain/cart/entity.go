package cart

import (
	"errors"

	"shop-api/internal/pkg/money"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidPrice    = errors.New("price must be positive")
	ErrItemNotFound    = errors.New("item not found in cart")
)

// Item is a cart line. Price is the catalog price captured when the product
// was first added; it is intentionally not refreshed when the catalog changes.
type Item struct {
	ID        int64
	ProductID int64
	Quantity  int32
	Price     float64
}

type Cart struct {
	id     uuid.UUID
	userID uuid.UUID
	items  []Item
}

func Reconstruct(id, userID uuid.UUID, items []Item) *Cart {
	return &Cart{
		id:     id,
		userID: userID,
		items:  items,
	}
}

// Add merges quantity into the existing line for productID, or appends a new
// line with the given price snapshot. The returned item reflects the
// post-mutation state; isNew reports whether a new line was created (the
// caller is responsible for assigning the line id before persisting).
func (c *Cart) Add(productID int64, quantity int32, price float64) (Item, bool, error) {
	if quantity < 1 {
		return Item{}, false, ErrInvalidQuantity
	}
	if price < 0 {
		return Item{}, false, ErrInvalidPrice
	}

	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity += quantity
			return c.items[i], false, nil
		}
	}

	item := Item{
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
	}
	c.items = append(c.items, item)
	return item, true, nil
}

// SetQuantity sets the line quantity exactly. A quantity of zero or less
// removes the line; removed reports whether that happened.
func (c *Cart) SetQuantity(productID int64, quantity int32) (bool, error) {
	idx := c.indexOf(productID)
	if idx < 0 {
		return false, ErrItemNotFound
	}

	if quantity <= 0 {
		c.items = append(c.items[:idx], c.items[idx+1:]...)
		return true, nil
	}

	c.items[idx].Quantity = quantity
	return false, nil
}

// Remove deletes the line for productID. Removing an absent product is a
// no-op, not an error.
func (c *Cart) Remove(productID int64) bool {
	idx := c.indexOf(productID)
	if idx < 0 {
		return false
	}
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	return true
}

func (c *Cart) Clear() {
	c.items = nil
}

// Total folds quantity*price over every current line. It is recomputed in
// full after each mutation rather than patched incrementally.
func (c *Cart) Total() float64 {
	var sum float64
	for _, item := range c.items {
		sum += float64(item.Quantity) * item.Price
	}
	return money.Round2(sum)
}

func (c *Cart) ID() uuid.UUID     { return c.id }
func (c *Cart) UserID() uuid.UUID { return c.userID }
func (c *Cart) Items() []Item     { return c.items }

func (c *Cart) indexOf(productID int64) int {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}
