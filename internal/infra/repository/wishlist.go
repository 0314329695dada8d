package repository

import (
	"context"
	"time"

	"vinyl-record-house/internal/domain/wishlist"
	"vinyl-record-house/internal/infra"
	sqlc "vinyl-record-house/internal/infra/sqlc/generated"
	"vinyl-record-house/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type WishlistWriteQueries interface {
	InsertWishlist(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertWishlistParams) error
	GetWishlistByUserForUpdate(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) (sqlc.Wishlists, error)
	ListWishlistItems(ctx context.Context, db sqlc.DBTX, wishlistID uuid.UUID) ([]sqlc.WishlistItems, error)
	AddWishlistItem(ctx context.Context, db sqlc.DBTX, arg sqlc.AddWishlistItemParams) error
	DeleteWishlistItem(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteWishlistItemParams) (int64, error)
	ClearWishlistItems(ctx context.Context, db sqlc.DBTX, wishlistID uuid.UUID) (int64, error)
}

type WishlistRepository struct {
	queries WishlistWriteQueries
}

func NewWishlistRepository(queries WishlistWriteQueries) *WishlistRepository {
	return &WishlistRepository{queries: queries}
}

func (r *WishlistRepository) GetOrCreate(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, now time.Time) (*wishlist.Wishlist, error) {
	fresh := wishlist.NewWishlist(userID, now)
	if err := r.queries.InsertWishlist(ctx, tx, sqlc.InsertWishlistParams{
		ID:        fresh.ID(),
		UserID:    userID,
		CreatedAt: pgconv.TimeToPgtype(now),
	}); err != nil {
		return nil, infra.WrapRepoErr("failed to create wishlist", err)
	}

	row, err := r.queries.GetWishlistByUserForUpdate(ctx, tx, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get wishlist", err)
	}
	rows, err := r.queries.ListWishlistItems(ctx, tx, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list wishlist items", err)
	}
	items := make([]wishlist.Item, 0, len(rows))
	for _, it := range rows {
		items = append(items, wishlist.Item{RecordID: it.VinylRecordID, AddedAt: pgconv.TimeFromPgtype(it.AddedAt)})
	}
	return wishlist.ReconstructWishlist(row.ID, row.UserID, items, pgconv.TimeFromPgtype(row.CreatedAt)), nil
}

func (r *WishlistRepository) AddItem(ctx context.Context, tx sqlc.DBTX, wishlistID uuid.UUID, item wishlist.Item) error {
	err := r.queries.AddWishlistItem(ctx, tx, sqlc.AddWishlistItemParams{
		WishlistID:    wishlistID,
		VinylRecordID: item.RecordID,
		AddedAt:       pgconv.TimeToPgtype(item.AddedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to add wishlist item", err)
	}
	return nil
}

func (r *WishlistRepository) RemoveItem(ctx context.Context, tx sqlc.DBTX, wishlistID, recordID uuid.UUID) error {
	if _, err := r.queries.DeleteWishlistItem(ctx, tx, sqlc.DeleteWishlistItemParams{
		WishlistID:    wishlistID,
		VinylRecordID: recordID,
	}); err != nil {
		return infra.WrapRepoErr("failed to remove wishlist item", err)
	}
	return nil
}

func (r *WishlistRepository) Clear(ctx context.Context, tx sqlc.DBTX, wishlistID uuid.UUID) (int, error) {
	n, err := r.queries.ClearWishlistItems(ctx, tx, wishlistID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to clear wishlist", err)
	}
	return int(n), nil
}
