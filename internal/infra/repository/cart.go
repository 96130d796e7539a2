package repository

import (
	"context"

	"shop-api/internal/domain/cart"
	"shop-api/internal/infra"
	sqlc "shop-api/internal/infra/sqlc/generated"
	"shop-api/internal/pkg/pgconv"
	"shop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartWriteQueries interface {
	EnsureCart(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) error
	GetCartByUserIDForUpdate(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.Carts, error)
	GetCartItems(ctx context.Context, db sqlc.DBTX, cartID uuid.UUID) ([]sqlc.CartItems, error)
	InsertCartItem(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCartItemParams) error
	UpdateCartItemQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCartItemQuantityParams) (int64, error)
	DeleteCartItem(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteCartItemParams) (int64, error)
	DeleteAllCartItems(ctx context.Context, db sqlc.DBTX, cartID uuid.UUID) error
	UpdateCartTotal(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCartTotalParams) error
}

type CartRepository struct {
	queries CartWriteQueries
	db      sqlc.DBTX
}

func NewCartRepository(queries CartWriteQueries, db sqlc.DBTX) *CartRepository {
	return &CartRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CartRepository) Ensure(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error {
	if err := r.queries.EnsureCart(ctx, tx, userID); err != nil {
		return infra.WrapRepoErr("failed to ensure cart", err)
	}
	return nil
}

func (r *CartRepository) FindByUserForUpdate(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) (*shared.CartSnapshot, error) {
	row, err := r.queries.GetCartByUserIDForUpdate(ctx, tx, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cart not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock cart", err)
	}

	itemRows, err := r.queries.GetCartItems(ctx, tx, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load cart items", err)
	}

	return toCartSnapshot(row, itemRows), nil
}

func (r *CartRepository) InsertItem(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID, item cart.Item) error {
	params := sqlc.InsertCartItemParams{
		ID:        item.ID,
		CartID:    cartID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		Price:     pgconv.NumericFromFloat64(item.Price),
	}
	if err := r.queries.InsertCartItem(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to insert cart item", err)
	}
	return nil
}

func (r *CartRepository) UpdateItemQuantity(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID, productID int64, quantity int32) error {
	params := sqlc.UpdateCartItemQuantityParams{
		CartID:    cartID,
		ProductID: productID,
		Quantity:  quantity,
	}
	affected, err := r.queries.UpdateCartItemQuantity(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update cart item quantity", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("cart item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CartRepository) RemoveItem(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID, productID int64) (bool, error) {
	params := sqlc.DeleteCartItemParams{
		CartID:    cartID,
		ProductID: productID,
	}
	affected, err := r.queries.DeleteCartItem(ctx, tx, params)
	if err != nil {
		return false, infra.WrapRepoErr("failed to delete cart item", err)
	}
	return affected > 0, nil
}

func (r *CartRepository) ClearItems(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID) error {
	if err := r.queries.DeleteAllCartItems(ctx, tx, cartID); err != nil {
		return infra.WrapRepoErr("failed to clear cart items", err)
	}
	return nil
}

func (r *CartRepository) UpdateTotal(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID, total float64) error {
	params := sqlc.UpdateCartTotalParams{
		ID:          cartID,
		TotalAmount: pgconv.NumericFromFloat64(total),
	}
	if err := r.queries.UpdateCartTotal(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update cart total", err)
	}
	return nil
}

func toCartSnapshot(row sqlc.Carts, itemRows []sqlc.CartItems) *shared.CartSnapshot {
	total, _ := pgconv.Float64FromNumeric(row.TotalAmount)

	items := make([]shared.CartItemSnapshot, 0, len(itemRows))
	for _, ir := range itemRows {
		price, _ := pgconv.Float64FromNumeric(ir.Price)
		items = append(items, shared.CartItemSnapshot{
			ID:        ir.ID,
			ProductID: ir.ProductID,
			Quantity:  ir.Quantity,
			Price:     price,
		})
	}

	return &shared.CartSnapshot{
		ID:          row.ID,
		UserID:      row.UserID,
		TotalAmount: total,
		Items:       items,
	}
}
