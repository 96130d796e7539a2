package coupon

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"shop-api/internal/pkg/money"
)

var (
	ErrInvalidCouponCode      = errors.New("coupon code must be 3-10 uppercase letters or digits")
	ErrInvalidDiscountPercent = errors.New("discount percent must be between 1 and 90")
	ErrInvalidMinAmount       = errors.New("minimum amount cannot be negative")
	ErrInvalidMaxDiscount     = errors.New("max discount cannot be negative")
	ErrInvalidUsageLimit      = errors.New("usage limit must be at least 1")
	ErrExpired                = errors.New("coupon is expired or inactive")
	ErrUsageLimitReached      = errors.New("coupon usage limit reached")
)

var codeRegex = regexp.MustCompile(`^[A-Z0-9]{3,10}$`)

// BelowMinimumError carries the qualifying amount so the boundary can report
// it to the client.
type BelowMinimumError struct {
	MinAmount float64
}

func (e *BelowMinimumError) Error() string {
	return fmt.Sprintf("Minimum order amount $%v required", e.MinAmount)
}

type Code string

// NewCode normalizes and validates a coupon code. Codes are case-insensitive
// and stored uppercased, both on write and on lookup.
func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !codeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Coupon struct {
	id                int64
	code              Code
	discountPercent   float64
	minAmount         float64
	maxDiscountAmount *float64
	usageLimit        *int32
	usedCount         int32
	expiryDate        time.Time
	isActive          bool
}

func New(
	id int64,
	code string,
	discountPercent float64,
	minAmount float64,
	maxDiscountAmount *float64,
	usageLimit *int32,
	expiryDate time.Time,
) (*Coupon, error) {
	couponCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}
	if discountPercent < 1 || discountPercent > 90 {
		return nil, ErrInvalidDiscountPercent
	}
	if minAmount < 0 {
		return nil, ErrInvalidMinAmount
	}
	if maxDiscountAmount != nil && *maxDiscountAmount < 0 {
		return nil, ErrInvalidMaxDiscount
	}
	if usageLimit != nil && *usageLimit < 1 {
		return nil, ErrInvalidUsageLimit
	}

	return &Coupon{
		id:                id,
		code:              couponCode,
		discountPercent:   discountPercent,
		minAmount:         minAmount,
		maxDiscountAmount: maxDiscountAmount,
		usageLimit:        usageLimit,
		expiryDate:        expiryDate,
		isActive:          true,
	}, nil
}

func Reconstruct(
	id int64,
	code string,
	discountPercent float64,
	minAmount float64,
	maxDiscountAmount *float64,
	usageLimit *int32,
	usedCount int32,
	expiryDate time.Time,
	isActive bool,
) *Coupon {
	return &Coupon{
		id:                id,
		code:              Code(code),
		discountPercent:   discountPercent,
		minAmount:         minAmount,
		maxDiscountAmount: maxDiscountAmount,
		usageLimit:        usageLimit,
		usedCount:         usedCount,
		expiryDate:        expiryDate,
		isActive:          isActive,
	}
}

func (c *Coupon) IsUsableAt(t time.Time) bool {
	return c.isActive && c.expiryDate.After(t)
}

// CanRedeem checks the redemption rules against a cart total. It mutates
// nothing; consumption is a separate operation.
func (c *Coupon) CanRedeem(cartTotal float64, now time.Time) error {
	if !c.IsUsableAt(now) {
		return ErrExpired
	}
	if cartTotal < c.minAmount {
		return &BelowMinimumError{MinAmount: c.minAmount}
	}
	if c.usageLimit != nil && c.usedCount >= *c.usageLimit {
		return ErrUsageLimitReached
	}
	return nil
}

// Discount computes the discount for a cart total: percent of total, clamped
// to the max discount cap when set, both amounts rounded to cents.
func (c *Coupon) Discount(cartTotal float64) (discountAmount, finalAmount float64) {
	discountAmount = cartTotal * c.discountPercent / 100
	if c.maxDiscountAmount != nil && discountAmount > *c.maxDiscountAmount {
		discountAmount = *c.maxDiscountAmount
	}
	return money.Round2(discountAmount), money.Round2(cartTotal - discountAmount)
}

func (c *Coupon) ID() int64                   { return c.id }
func (c *Coupon) Code() Code                  { return c.code }
func (c *Coupon) DiscountPercent() float64    { return c.discountPercent }
func (c *Coupon) MinAmount() float64          { return c.minAmount }
func (c *Coupon) MaxDiscountAmount() *float64 { return c.maxDiscountAmount }
func (c *Coupon) UsageLimit() *int32          { return c.usageLimit }
func (c *Coupon) UsedCount() int32            { return c.usedCount }
func (c *Coupon) ExpiryDate() time.Time       { return c.expiryDate }
func (c *Coupon) IsActive() bool              { return c.isActive }
