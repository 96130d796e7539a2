package request

import (
	"time"

	"shop-api/internal/usecase/commands"
)

type ValidateCouponRequest struct {
	Code      string  `json:"code" binding:"required"`
	CartTotal float64 `json:"cartTotal" binding:"required,gt=0"`
}

type UseCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

type CreateCouponRequest struct {
	Code              string    `json:"code" binding:"required"`
	DiscountPercent   float64   `json:"discountPercent" binding:"required,min=1,max=90"`
	MinAmount         float64   `json:"minAmount" binding:"omitempty,min=0"`
	MaxDiscountAmount *float64  `json:"maxDiscountAmount" binding:"omitempty,min=0"`
	UsageLimit        *int32    `json:"usageLimit" binding:"omitempty,min=1"`
	ExpiryDate        time.Time `json:"expiryDate" binding:"required"`
}

func (r *CreateCouponRequest) ToCommand() commands.CreateCouponRequest {
	return commands.CreateCouponRequest{
		Code:              r.Code,
		DiscountPercent:   r.DiscountPercent,
		MinAmount:         r.MinAmount,
		MaxDiscountAmount: r.MaxDiscountAmount,
		UsageLimit:        r.UsageLimit,
		ExpiryDate:        r.ExpiryDate,
	}
}
