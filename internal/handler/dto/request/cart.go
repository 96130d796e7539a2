package request

type AddItemRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int32 `json:"quantity" binding:"omitempty,min=1"`
}

// NormalizedQuantity defaults an omitted quantity to one.
func (r *AddItemRequest) NormalizedQuantity() int32 {
	if r.Quantity == 0 {
		return 1
	}
	return r.Quantity
}

// Quantity is a pointer so zero survives binding: setting a line to zero
// removes it.
type UpdateItemRequest struct {
	ProductID int64  `json:"productId" binding:"required"`
	Quantity  *int32 `json:"quantity" binding:"required"`
}
