package repository

import (
	"context"
	"time"

	"vinyl-record-house/internal/domain/cart"
	"vinyl-record-house/internal/infra"
	"vinyl-record-house/internal/infra/repository/converter"
	sqlc "vinyl-record-house/internal/infra/sqlc/generated"
	"vinyl-record-house/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CartWriteQueries interface {
	InsertCart(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCartParams) error
	GetCartByOwnerForUpdate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCartByOwnerForUpdateParams) (sqlc.Carts, error)
	ListCartItems(ctx context.Context, db sqlc.DBTX, cartID uuid.UUID) ([]sqlc.CartItems, error)
	UpsertCartItem(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertCartItemParams) error
	DeleteCartItem(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteCartItemParams) (int64, error)
	ClearCartItems(ctx context.Context, db sqlc.DBTX, cartID uuid.UUID) error
	TouchCart(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
}

type CartRepository struct {
	queries CartWriteQueries
}

func NewCartRepository(queries CartWriteQueries) *CartRepository {
	return &CartRepository{queries: queries}
}

// GetOrCreate is an explicit upsert: lock the existing row, or insert with ON CONFLICT DO NOTHING
// and lock whichever row won.
func (r *CartRepository) GetOrCreate(ctx context.Context, tx sqlc.DBTX, owner cart.Owner, now time.Time) (*cart.Cart, error) {
	userID, sessionKey := converter.OwnerToPgtype(owner)
	lookup := sqlc.GetCartByOwnerForUpdateParams{UserID: userID, SessionKey: sessionKey}

	row, err := r.queries.GetCartByOwnerForUpdate(ctx, tx, lookup)
	if err != nil {
		if !pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("failed to get cart", err)
		}
		fresh, nerr := cart.NewCart(owner, now)
		if nerr != nil {
			return nil, nerr
		}
		if err = r.queries.InsertCart(ctx, tx, sqlc.InsertCartParams{
			ID:         fresh.ID(),
			UserID:     userID,
			SessionKey: sessionKey,
		}); err != nil {
			return nil, infra.WrapRepoErr("failed to create cart", err)
		}
		if row, err = r.queries.GetCartByOwnerForUpdate(ctx, tx, lookup); err != nil {
			return nil, infra.WrapRepoErr("failed to get cart after insert", err)
		}
	}

	items, err := r.queries.ListCartItems(ctx, tx, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart items", err)
	}
	return converter.CartFromRows(row, items)
}

func (r *CartRepository) SaveItem(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID, item cart.Item) error {
	if err := r.queries.UpsertCartItem(ctx, tx, converter.CartItemToUpsertParams(cartID, item)); err != nil {
		return infra.WrapRepoErr("failed to save cart item", err)
	}
	return r.touch(ctx, tx, cartID)
}

func (r *CartRepository) DeleteItem(ctx context.Context, tx sqlc.DBTX, cartID, recordID uuid.UUID) error {
	if _, err := r.queries.DeleteCartItem(ctx, tx, sqlc.DeleteCartItemParams{CartID: cartID, VinylRecordID: recordID}); err != nil {
		return infra.WrapRepoErr("failed to delete cart item", err)
	}
	return r.touch(ctx, tx, cartID)
}

func (r *CartRepository) ClearItems(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID) error {
	if err := r.queries.ClearCartItems(ctx, tx, cartID); err != nil {
		return infra.WrapRepoErr("failed to clear cart", err)
	}
	return r.touch(ctx, tx, cartID)
}

func (r *CartRepository) touch(ctx context.Context, tx sqlc.DBTX, cartID uuid.UUID) error {
	if err := r.queries.TouchCart(ctx, tx, cartID); err != nil {
		return infra.WrapRepoErr("failed to touch cart", err)
	}
	return nil
}
