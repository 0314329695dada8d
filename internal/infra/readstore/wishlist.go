package readstore

import (
	"context"

	"vinyl-record-house/internal/infra"
	sqlc "vinyl-record-house/internal/infra/sqlc/generated"
	"vinyl-record-house/internal/pkg/pgconv"
	"vinyl-record-house/internal/usecase/queries"

	"github.com/google/uuid"
)

type WishlistViewQueries interface {
	ListWishlistViews(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.ListWishlistViewsRow, error)
	ListWishlistedRecordIDs(ctx context.Context, db sqlc.DBTX, arg sqlc.ListWishlistedRecordIDsParams) ([]uuid.UUID, error)
}

type WishlistReadStore struct {
	queries WishlistViewQueries
	db      sqlc.DBTX
}

func NewWishlistReadStore(queries WishlistViewQueries, db sqlc.DBTX) *WishlistReadStore {
	return &WishlistReadStore{queries: queries, db: db}
}

func (r *WishlistReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*queries.WishlistItemView, error) {
	rows, err := r.queries.ListWishlistViews(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list wishlist", err)
	}
	result := make([]*queries.WishlistItemView, len(rows))
	for i, row := range rows {
		result[i] = &queries.WishlistItemView{
			RecordID: row.VinylRecordID,
			Title:    row.Title,
			Slug:     row.Slug,
			Artist:   row.ArtistName,
			Price:    row.Price,
			InStock:  row.IsAvailable && row.StockQuantity > 0,
			AddedAt:  pgconv.TimeFromPgtype(row.AddedAt),
		}
	}
	return result, nil
}

func (r *WishlistReadStore) FilterWishlisted(ctx context.Context, userID uuid.UUID, recordIDs []uuid.UUID) ([]uuid.UUID, error) {
	ids, err := r.queries.ListWishlistedRecordIDs(ctx, r.db, sqlc.ListWishlistedRecordIDsParams{
		UserID:    userID,
		RecordIds: recordIDs,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to check wishlist status", err)
	}
	return ids, nil
}
