package commands

import (
	"context"

	"vinyl-record-house/internal/domain/cart"
	"vinyl-record-house/internal/domain/wishlist"
	"vinyl-record-house/internal/pkg/clock"
	"vinyl-record-house/internal/usecase/shared"

	"github.com/google/uuid"
)

type WishlistCommands interface {
	// Toggle adds the record when absent and removes it when present.
	Toggle(ctx context.Context, userID, recordID uuid.UUID) (added bool, err error)
	Remove(ctx context.Context, userID, recordID uuid.UUID) error
	// MoveToCart puts one copy in the user's cart and drops the record from the wishlist.
	MoveToCart(ctx context.Context, userID, recordID uuid.UUID) error
	// Clear empties the wishlist and reports how many entries it held.
	Clear(ctx context.Context, userID uuid.UUID) (removed int, err error)
}

type wishlistUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewWishlistUseCase(uow shared.UnitOfWork, clk clock.Clock) WishlistCommands {
	return &wishlistUseCaseImpl{uow: uow, clock: clk}
}

func (uc *wishlistUseCaseImpl) Toggle(ctx context.Context, userID, recordID uuid.UUID) (bool, error) {
	var added bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		if _, err := recordForCart(ctx, tx, recordID); err != nil {
			return err
		}
		wl, err := tx.Wishlists().GetOrCreate(ctx, tx.DB(), userID, now)
		if err != nil {
			return err
		}
		added = wl.Toggle(recordID, now)
		if added {
			return tx.Wishlists().AddItem(ctx, tx.DB(), wl.ID(), wishlist.Item{RecordID: recordID, AddedAt: now})
		}
		return tx.Wishlists().RemoveItem(ctx, tx.DB(), wl.ID(), recordID)
	})
	return added, err
}

func (uc *wishlistUseCaseImpl) Remove(ctx context.Context, userID, recordID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		wl, err := tx.Wishlists().GetOrCreate(ctx, tx.DB(), userID, uc.clock.Now())
		if err != nil {
			return err
		}
		if !wl.Remove(recordID) {
			return wishlist.ErrNotInWishlist
		}
		return tx.Wishlists().RemoveItem(ctx, tx.DB(), wl.ID(), recordID)
	})
}

func (uc *wishlistUseCaseImpl) MoveToCart(ctx context.Context, userID, recordID uuid.UUID) error {
	owner, err := cart.UserOwner(userID)
	if err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		wl, err := tx.Wishlists().GetOrCreate(ctx, tx.DB(), userID, now)
		if err != nil {
			return err
		}
		if !wl.Contains(recordID) {
			return wishlist.ErrNotInWishlist
		}

		rec, err := recordForCart(ctx, tx, recordID)
		if err != nil {
			return err
		}
		c, err := tx.Carts().GetOrCreate(ctx, tx.DB(), owner, now)
		if err != nil {
			return err
		}
		item, err := c.Add(rec, 1, now)
		if err != nil {
			return err
		}
		if err := tx.Carts().SaveItem(ctx, tx.DB(), c.ID(), item); err != nil {
			return err
		}

		wl.Remove(recordID)
		return tx.Wishlists().RemoveItem(ctx, tx.DB(), wl.ID(), recordID)
	})
}

func (uc *wishlistUseCaseImpl) Clear(ctx context.Context, userID uuid.UUID) (int, error) {
	var removed int
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		wl, err := tx.Wishlists().GetOrCreate(ctx, tx.DB(), userID, uc.clock.Now())
		if err != nil {
			return err
		}
		removed, err = tx.Wishlists().Clear(ctx, tx.DB(), wl.ID())
		return err
	})
	return removed, err
}
