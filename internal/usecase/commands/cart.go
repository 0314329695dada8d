package commands

import (
	"context"

	"vinyl-record-house/internal/domain/cart"
	"vinyl-record-house/internal/domain/catalog"
	"vinyl-record-house/internal/infra"
	"vinyl-record-house/internal/pkg/clock"
	"vinyl-record-house/internal/usecase/queries"
	"vinyl-record-house/internal/usecase/shared"

	"github.com/google/uuid"
)

type CartCommands interface {
	AddItem(ctx context.Context, owner cart.Owner, recordID uuid.UUID, qty int) (*queries.CartView, error)
	UpdateItem(ctx context.Context, owner cart.Owner, recordID uuid.UUID, qty int) (*queries.CartView, error)
	RemoveItem(ctx context.Context, owner cart.Owner, recordID uuid.UUID) (*queries.CartView, error)
	Clear(ctx context.Context, owner cart.Owner) error
}

type cartUseCaseImpl struct {
	uow   shared.UnitOfWork
	reads queries.CartQueries
	clock clock.Clock
}

func NewCartUseCase(uow shared.UnitOfWork, reads queries.CartQueries, clk clock.Clock) CartCommands {
	return &cartUseCaseImpl{uow: uow, reads: reads, clock: clk}
}

func (uc *cartUseCaseImpl) AddItem(ctx context.Context, owner cart.Owner, recordID uuid.UUID, qty int) (*queries.CartView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		c, err := tx.Carts().GetOrCreate(ctx, tx.DB(), owner, now)
		if err != nil {
			return err
		}
		rec, err := recordForCart(ctx, tx, recordID)
		if err != nil {
			return err
		}
		item, err := c.Add(rec, qty, now)
		if err != nil {
			return err
		}
		return tx.Carts().SaveItem(ctx, tx.DB(), c.ID(), item)
	})
	if err != nil {
		return nil, err
	}
	return uc.reads.GetCart(ctx, owner)
}

func (uc *cartUseCaseImpl) UpdateItem(ctx context.Context, owner cart.Owner, recordID uuid.UUID, qty int) (*queries.CartView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		c, err := tx.Carts().GetOrCreate(ctx, tx.DB(), owner, now)
		if err != nil {
			return err
		}
		if qty <= 0 {
			if !c.Remove(recordID, now) {
				return cart.ErrItemNotInCart
			}
			return tx.Carts().DeleteItem(ctx, tx.DB(), c.ID(), recordID)
		}

		rec, err := recordForCart(ctx, tx, recordID)
		if err != nil {
			return err
		}
		item, removed, err := c.SetQuantity(rec, qty, now)
		if err != nil {
			return err
		}
		if removed {
			return tx.Carts().DeleteItem(ctx, tx.DB(), c.ID(), recordID)
		}
		return tx.Carts().SaveItem(ctx, tx.DB(), c.ID(), item)
	})
	if err != nil {
		return nil, err
	}
	return uc.reads.GetCart(ctx, owner)
}

func (uc *cartUseCaseImpl) RemoveItem(ctx context.Context, owner cart.Owner, recordID uuid.UUID) (*queries.CartView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		c, err := tx.Carts().GetOrCreate(ctx, tx.DB(), owner, now)
		if err != nil {
			return err
		}
		if !c.Remove(recordID, now) {
			return cart.ErrItemNotInCart
		}
		return tx.Carts().DeleteItem(ctx, tx.DB(), c.ID(), recordID)
	})
	if err != nil {
		return nil, err
	}
	return uc.reads.GetCart(ctx, owner)
}

func (uc *cartUseCaseImpl) Clear(ctx context.Context, owner cart.Owner) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Carts().GetOrCreate(ctx, tx.DB(), owner, uc.clock.Now())
		if err != nil {
			return err
		}
		return tx.Carts().ClearItems(ctx, tx.DB(), c.ID())
	})
}

// recordForCart reads the record without locking it; the cart only needs a
// point-in-time stock check, checkout re-checks under lock.
func recordForCart(ctx context.Context, tx shared.Tx, recordID uuid.UUID) (*catalog.VinylRecord, error) {
	rec, err := tx.Reads().RecordByID(ctx, recordID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, catalog.ErrRecordNotFound
		}
		return nil, err
	}
	return rec, nil
}
