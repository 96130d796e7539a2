package readstore

import (
	"context"

	"shop-api/internal/infra"
	sqlc "shop-api/internal/infra/sqlc/generated"
	"shop-api/internal/pkg/pgconv"
	"shop-api/internal/usecase/shared"
)

type ProductViewQueries interface {
	GetProductByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Products, error)
}

type ProductReadStore struct {
	queries ProductViewQueries
	db      sqlc.DBTX
}

func NewProductReadStore(queries *sqlc.Queries, db sqlc.DBTX) *ProductReadStore {
	return &ProductReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ProductReadStore) FindByID(ctx context.Context, id int64) (*shared.ProductSnapshot, error) {
	row, err := r.queries.GetProductByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by id", err)
	}

	price, _ := pgconv.Float64FromNumeric(row.Price)
	return &shared.ProductSnapshot{
		ID:     row.ID,
		Name:   row.Name,
		Price:  price,
		Status: row.Status,
	}, nil
}
