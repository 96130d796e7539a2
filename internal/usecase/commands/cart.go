package commands

import (
	"context"
	"log/slog"

	domcart "shop-api/internal/domain/cart"
	"shop-api/internal/infra"
	"shop-api/internal/pkg/errs"
	"shop-api/internal/usecase/queries"
	"shop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

const cartItemCounter = "cart_item"

type CartCommands interface {
	// EnsureCart creates the user's cart on first touch.
	EnsureCart(ctx context.Context, userID uuid.UUID) error
	AddItem(ctx context.Context, userID uuid.UUID, productID int64, quantity int32) error
	UpdateItemQuantity(ctx context.Context, userID uuid.UUID, productID int64, quantity int32) error
	RemoveItem(ctx context.Context, userID uuid.UUID, productID int64) error
	ClearCart(ctx context.Context, userID uuid.UUID) error
}

type cartUseCaseImpl struct {
	uow   shared.UnitOfWork
	cache queries.CartCache
}

func NewCartUseCase(uow shared.UnitOfWork, cache queries.CartCache) CartCommands {
	return &cartUseCaseImpl{uow: uow, cache: cache}
}

func (uc *cartUseCaseImpl) EnsureCart(ctx context.Context, userID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Carts().Ensure(ctx, tx.DB(), userID)
	})
}

// AddItem aggregates quantity when the product is already in the cart and
// otherwise appends a line priced at the product's current catalog price.
// The locked cart row serializes concurrent mutations for the same user.
func (uc *cartUseCaseImpl) AddItem(ctx context.Context, userID uuid.UUID, productID int64, quantity int32) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cart, err := uc.lockOrCreateCart(ctx, tx, userID)
		if err != nil {
			return err
		}

		product, err := tx.Reads().ProductByID(ctx, productID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrProductNotFound
			}
			return err
		}

		item, isNew, err := cart.Add(productID, quantity, product.Price)
		if err != nil {
			return err
		}

		if isNew {
			id, err := tx.Counters().Next(ctx, tx.DB(), cartItemCounter)
			if err != nil {
				return err
			}
			item.ID = id
			if err := tx.Carts().InsertItem(ctx, tx.DB(), cart.ID(), item); err != nil {
				return err
			}
		} else {
			if err := tx.Carts().UpdateItemQuantity(ctx, tx.DB(), cart.ID(), productID, item.Quantity); err != nil {
				return err
			}
		}

		return tx.Carts().UpdateTotal(ctx, tx.DB(), cart.ID(), cart.Total())
	})
	if err != nil {
		return err
	}

	uc.invalidateCache(ctx, userID)
	return nil
}

func (uc *cartUseCaseImpl) UpdateItemQuantity(ctx context.Context, userID uuid.UUID, productID int64, quantity int32) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cart, err := uc.lockCart(ctx, tx, userID)
		if err != nil {
			return err
		}

		removed, err := cart.SetQuantity(productID, quantity)
		if err != nil {
			return errs.ErrCartItemNotFound
		}

		if removed {
			if _, err := tx.Carts().RemoveItem(ctx, tx.DB(), cart.ID(), productID); err != nil {
				return err
			}
		} else {
			if err := tx.Carts().UpdateItemQuantity(ctx, tx.DB(), cart.ID(), productID, quantity); err != nil {
				return err
			}
		}

		return tx.Carts().UpdateTotal(ctx, tx.DB(), cart.ID(), cart.Total())
	})
	if err != nil {
		return err
	}

	uc.invalidateCache(ctx, userID)
	return nil
}

// RemoveItem is idempotent: removing a product that is not in the cart
// succeeds without changing anything.
func (uc *cartUseCaseImpl) RemoveItem(ctx context.Context, userID uuid.UUID, productID int64) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cart, err := uc.lockCart(ctx, tx, userID)
		if err != nil {
			return err
		}

		if !cart.Remove(productID) {
			return nil
		}

		if _, err := tx.Carts().RemoveItem(ctx, tx.DB(), cart.ID(), productID); err != nil {
			return err
		}
		return tx.Carts().UpdateTotal(ctx, tx.DB(), cart.ID(), cart.Total())
	})
	if err != nil {
		return err
	}

	uc.invalidateCache(ctx, userID)
	return nil
}

func (uc *cartUseCaseImpl) ClearCart(ctx context.Context, userID uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cart, err := uc.lockCart(ctx, tx, userID)
		if err != nil {
			return err
		}

		cart.Clear()
		if err := tx.Carts().ClearItems(ctx, tx.DB(), cart.ID()); err != nil {
			return err
		}
		return tx.Carts().UpdateTotal(ctx, tx.DB(), cart.ID(), cart.Total())
	})
	if err != nil {
		return err
	}

	uc.invalidateCache(ctx, userID)
	return nil
}

// lockOrCreateCart creates the cart row on first touch, then takes the row
// lock that serializes this user's mutations for the rest of the transaction.
// Only AddItem creates carts lazily; the other mutations require one to exist.
func (uc *cartUseCaseImpl) lockOrCreateCart(ctx context.Context, tx shared.Tx, userID uuid.UUID) (*domcart.Cart, error) {
	if err := tx.Carts().Ensure(ctx, tx.DB(), userID); err != nil {
		return nil, err
	}
	return uc.lockCart(ctx, tx, userID)
}

// lockCart takes the row lock on an existing cart.
func (uc *cartUseCaseImpl) lockCart(ctx context.Context, tx shared.Tx, userID uuid.UUID) (*domcart.Cart, error) {
	snap, err := tx.Carts().FindByUserForUpdate(ctx, tx.DB(), userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCartNotFound
		}
		return nil, err
	}

	items := make([]domcart.Item, 0, len(snap.Items))
	for _, it := range snap.Items {
		items = append(items, domcart.Item{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	return domcart.Reconstruct(snap.ID, snap.UserID, items), nil
}

func (uc *cartUseCaseImpl) invalidateCache(ctx context.Context, userID uuid.UUID) {
	if err := uc.cache.Delete(ctx, userID); err != nil {
		slog.Warn("failed to invalidate cart cache", "user_id", userID, "error", err.Error())
	}
}
