package shared

import (
	"context"

	"shop-api/internal/domain/cart"
	"shop-api/internal/domain/coupon"
	"shop-api/internal/domain/review"
	sqlc "shop-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Carts() CartRepository
	Coupons() CouponRepository
	Reviews() ReviewRepository
	RatingStats() RatingStatsRepository
	Counters() CounterRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ProductByID(ctx context.Context, id int64) (*ProductSnapshot, error)
	CouponByCode(ctx context.Context, code string) (*CouponSnapshot, error)
	ReviewByID(ctx context.Context, id int64) (*ReviewSnapshot, error)
}

type CartRepository interface {
	// Ensure creates the user's cart row if it does not exist yet.
	Ensure(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	// FindByUserForUpdate locks the cart row for the duration of the
	// enclosing transaction, serializing concurrent mutations per user.
	FindByUserForUpdate(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (*CartSnapshot, error)
	InsertItem(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID, item cart.Item) error
	UpdateItemQuantity(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID, productID int64, quantity int32) error
	RemoveItem(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID, productID int64) (bool, error)
	ClearItems(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID) error
	UpdateTotal(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID, total float64) error
}

type CouponRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) (*CouponSnapshot, error)
	// Consume atomically increments used_count while the usage limit still
	// holds; a no-op result means either an unknown code or an exhausted
	// coupon, which the caller disambiguates with a follow-up read.
	Consume(ctx context.Context, tx sqlc.DBTX, code string) (*CouponSnapshot, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) (int64, error)
	// Delete is scoped to the authoring user; it reports whether a row
	// was actually removed.
	Delete(ctx context.Context, tx sqlc.DBTX, reviewID int64, userID uuid.UUID) (bool, error)
}

type RatingStatsRepository interface {
	RecalcProductRatingStats(ctx context.Context, tx sqlc.DBTX, productID int64) error
}

type CounterRepository interface {
	Next(ctx context.Context, tx sqlc.DBTX, name string) (int64, error)
}
