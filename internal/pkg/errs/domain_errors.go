package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Cart errors
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("item not found in cart")

	// Product errors
	ErrProductNotFound = errors.New("product not found")

	// Coupon errors
	ErrCouponNotFound          = errors.New("coupon not found")
	ErrCouponInvalidOrExpired  = errors.New("invalid or expired coupon")
	ErrCouponUsageLimitReached = errors.New("coupon usage limit reached")
	ErrCouponAlreadyExists     = errors.New("coupon code already exists")

	// Review errors
	ErrReviewNotFound  = errors.New("review not found")
	ErrDuplicateReview = errors.New("duplicate review for product")
)
