//go:build unit || e2e

package builder

import (
	"time"

	domcart "shop-api/internal/domain/cart"
	reqdto "shop-api/internal/handler/dto/request"
	"shop-api/internal/pkg/money"
	"shop-api/internal/usecase/queries"
	"shop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartItemSpec struct {
	ID        int64
	ProductID int64
	Quantity  int32
	Price     float64
	Name      string
	Images    []string
}

type CartBuilder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Items     []CartItemSpec
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewCartBuilder() *CartBuilder {
	now := time.Now()
	return &CartBuilder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *CartBuilder) With(mutate func(*CartBuilder)) *CartBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *CartBuilder) BuildDomain() *domcart.Cart {
	items := make([]domcart.Item, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, domcart.Item{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return domcart.Reconstruct(b.ID, b.UserID, items)
}

func (b *CartBuilder) BuildSnapshot() *shared.CartSnapshot {
	items := make([]shared.CartItemSnapshot, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, shared.CartItemSnapshot{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return &shared.CartSnapshot{
		ID:          b.ID,
		UserID:      b.UserID,
		TotalAmount: b.Total(),
		Items:       items,
	}
}

func (b *CartBuilder) BuildViewQuery() *queries.CartView {
	items := make([]queries.CartItemView, 0, len(b.Items))
	for _, it := range b.Items {
		var product *queries.ProductRef
		if it.Name != "" {
			product = &queries.ProductRef{
				ID:     it.ProductID,
				Name:   it.Name,
				Price:  it.Price,
				Images: it.Images,
			}
		}
		items = append(items, queries.CartItemView{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Product:   product,
		})
	}
	return &queries.CartView{
		ID:          b.ID,
		UserID:      b.UserID,
		Items:       items,
		TotalAmount: b.Total(),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *CartBuilder) BuildAddItemRequestDTO() reqdto.AddItemRequest {
	if len(b.Items) == 0 {
		return reqdto.AddItemRequest{ProductID: 100, Quantity: 1}
	}
	it := b.Items[0]
	return reqdto.AddItemRequest{ProductID: it.ProductID, Quantity: it.Quantity}
}

func (b *CartBuilder) Total() float64 {
	var sum float64
	for _, it := range b.Items {
		sum += float64(it.Quantity) * it.Price
	}
	return money.Round2(sum)
}

// Fluent builder methods
func (b *CartBuilder) WithUserID(userID uuid.UUID) *CartBuilder {
	b.UserID = userID
	return b
}

func (b *CartBuilder) WithItem(spec CartItemSpec) *CartBuilder {
	b.Items = append(b.Items, spec)
	return b
}
