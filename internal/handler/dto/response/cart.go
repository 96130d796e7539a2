package response

import (
	"time"

	"shop-api/internal/usecase/queries"
)

type CartItemResponse struct {
	ID        int64            `json:"id"`
	ProductID int64            `json:"productId"`
	Quantity  int32            `json:"quantity"`
	Price     float64          `json:"price"`
	Product   *ProductResponse `json:"product"`
}

type ProductResponse struct {
	ID     int64    `json:"id"`
	Name   string   `json:"name"`
	Price  float64  `json:"price"`
	Images []string `json:"images"`
}

type CartResponse struct {
	ID          string             `json:"id"`
	UserID      string             `json:"userId"`
	Items       []CartItemResponse `json:"items"`
	TotalAmount float64            `json:"totalAmount"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

func FromCartView(v *queries.CartView) *CartResponse {
	items := make([]CartItemResponse, 0, len(v.Items))
	for _, it := range v.Items {
		var product *ProductResponse
		if it.Product != nil {
			product = &ProductResponse{
				ID:     it.Product.ID,
				Name:   it.Product.Name,
				Price:  it.Product.Price,
				Images: it.Product.Images,
			}
		}
		items = append(items, CartItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Product:   product,
		})
	}

	return &CartResponse{
		ID:          v.ID.String(),
		UserID:      v.UserID.String(),
		Items:       items,
		TotalAmount: v.TotalAmount,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}
