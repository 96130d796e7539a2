package readstore

import (
	"context"

	"shop-api/internal/infra"
	sqlc "shop-api/internal/infra/sqlc/generated"
	"shop-api/internal/pkg/pgconv"
	"shop-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartViewQueries interface {
	GetCartByUserID(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.Carts, error)
	GetCartItemsWithProduct(ctx context.Context, db sqlc.DBTX, cartID uuid.UUID) ([]sqlc.GetCartItemsWithProductRow, error)
}

type CartReadStore struct {
	queries CartViewQueries
	db      sqlc.DBTX
}

func NewCartReadStore(queries *sqlc.Queries, db sqlc.DBTX) *CartReadStore {
	return &CartReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CartReadStore) FindByUser(ctx context.Context, userID uuid.UUID) (*queries.CartView, error) {
	row, err := r.queries.GetCartByUserID(ctx, r.db, userID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cart not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find cart by user", err)
	}

	itemRows, err := r.queries.GetCartItemsWithProduct(ctx, r.db, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load cart items", err)
	}

	return toCartView(row, itemRows), nil
}

func toCartView(row sqlc.Carts, itemRows []sqlc.GetCartItemsWithProductRow) *queries.CartView {
	total, _ := pgconv.Float64FromNumeric(row.TotalAmount)

	items := make([]queries.CartItemView, 0, len(itemRows))
	for _, ir := range itemRows {
		price, _ := pgconv.Float64FromNumeric(ir.Price)

		// The product join is nullable: a line can outlive its product
		var product *queries.ProductRef
		if ir.ProductName.Valid {
			productPrice, _ := pgconv.Float64FromNumeric(ir.ProductPrice)
			product = &queries.ProductRef{
				ID:     ir.ProductID,
				Name:   ir.ProductName.String,
				Price:  productPrice,
				Images: ir.ProductImages,
			}
		}

		items = append(items, queries.CartItemView{
			ID:        ir.ID,
			ProductID: ir.ProductID,
			Quantity:  ir.Quantity,
			Price:     price,
			Product:   product,
		})
	}

	return &queries.CartView{
		ID:          row.ID,
		UserID:      row.UserID,
		Items:       items,
		TotalAmount: total,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
