package readstore

import (
	"context"

	"vinyl-record-house/internal/domain/cart"
	"vinyl-record-house/internal/infra"
	"vinyl-record-house/internal/infra/repository/converter"
	sqlc "vinyl-record-house/internal/infra/sqlc/generated"
	"vinyl-record-house/internal/pkg/pgconv"
	"vinyl-record-house/internal/usecase/queries"

	"github.com/google/uuid"
)

type CartViewQueries interface {
	GetCartByOwner(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCartByOwnerParams) (sqlc.Carts, error)
	ListCartLineViews(ctx context.Context, db sqlc.DBTX, cartID uuid.UUID) ([]sqlc.ListCartLineViewsRow, error)
}

type CartReadStore struct {
	queries CartViewQueries
	db      sqlc.DBTX
}

func NewCartReadStore(queries CartViewQueries, db sqlc.DBTX) *CartReadStore {
	return &CartReadStore{queries: queries, db: db}
}

func (r *CartReadStore) FindLines(ctx context.Context, owner cart.Owner) ([]queries.CartLineView, error) {
	userID, sessionKey := converter.OwnerToPgtype(owner)
	c, err := r.queries.GetCartByOwner(ctx, r.db, sqlc.GetCartByOwnerParams{UserID: userID, SessionKey: sessionKey})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get cart", err)
	}

	rows, err := r.queries.ListCartLineViews(ctx, r.db, c.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart lines", err)
	}
	lines := make([]queries.CartLineView, len(rows))
	for i, row := range rows {
		lines[i] = queries.CartLineView{
			RecordID:      row.VinylRecordID,
			Title:         row.Title,
			Slug:          row.Slug,
			Artist:        row.ArtistName,
			Quantity:      int(row.Quantity),
			UnitPrice:     row.UnitPrice,
			StockQuantity: int(row.StockQuantity),
			IsAvailable:   row.IsAvailable,
			AddedAt:       pgconv.TimeFromPgtype(row.AddedAt),
		}
	}
	return lines, nil
}
