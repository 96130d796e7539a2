package response

import (
	"time"

	"shop-api/internal/usecase/queries"
	"shop-api/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

type CouponResponse struct {
	ID                int64     `json:"id"`
	Code              string    `json:"code"`
	DiscountPercent   float64   `json:"discountPercent"`
	MinAmount         float64   `json:"minAmount"`
	MaxDiscountAmount *float64  `json:"maxDiscountAmount,omitempty"`
	UsageLimit        *int32    `json:"usageLimit,omitempty"`
	UsedCount         int32     `json:"usedCount"`
	ExpiryDate        time.Time `json:"expiryDate"`
	IsActive          bool      `json:"isActive"`
}

type ValidateCouponResponse struct {
	Coupon          *CouponResponse `json:"coupon"`
	DiscountPercent float64         `json:"discountPercent"`
	DiscountAmount  float64         `json:"discountAmount"`
	FinalAmount     float64         `json:"finalAmount"`
}

func FromCouponView(v *queries.CouponView) *CouponResponse {
	var resp CouponResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromCouponViews(views []*queries.CouponView) []*CouponResponse {
	res := make([]*CouponResponse, len(views))
	for i, v := range views {
		res[i] = FromCouponView(v)
	}
	return res
}

func FromCouponSnapshot(s *shared.CouponSnapshot) *CouponResponse {
	var resp CouponResponse
	_ = copier.Copy(&resp, s)
	return &resp
}

func FromValidationResult(r *queries.ValidationResult) *ValidateCouponResponse {
	return &ValidateCouponResponse{
		Coupon:          FromCouponView(r.Coupon),
		DiscountPercent: r.DiscountPercent,
		DiscountAmount:  r.DiscountAmount,
		FinalAmount:     r.FinalAmount,
	}
}
