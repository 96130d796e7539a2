package shared

import (
	"time"

	"github.com/google/uuid"
)

type ProductSnapshot struct {
	ID     int64
	Name   string
	Price  float64
	Status string
}

type CouponSnapshot struct {
	ID                int64
	Code              string
	DiscountPercent   float64
	MinAmount         float64
	MaxDiscountAmount *float64
	UsageLimit        *int32
	UsedCount         int32
	ExpiryDate        time.Time
	IsActive          bool
}

type CartSnapshot struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	TotalAmount float64
	Items       []CartItemSnapshot
}

type CartItemSnapshot struct {
	ID        int64
	ProductID int64
	Quantity  int32
	Price     float64
}

type ReviewSnapshot struct {
	ID        int64
	ProductID int64
	UserID    uuid.UUID
	Rating    int32
	Comment   string
}
