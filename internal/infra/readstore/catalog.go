package readstore

import (
	"context"

	"vinyl-record-house/internal/infra"
	sqlc "vinyl-record-house/internal/infra/sqlc/generated"
	"vinyl-record-house/internal/pkg/pgconv"
	"vinyl-record-house/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CatalogViewQueries interface {
	GetRecordView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.VinylRecordViews, error)
	GetRecordViewBySlug(ctx context.Context, db sqlc.DBTX, slug string) (sqlc.VinylRecordViews, error)
	ListRecordViews(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRecordViewsParams) ([]sqlc.VinylRecordViews, error)
}

type CatalogReadStore struct {
	queries CatalogViewQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogViewQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{queries: queries, db: db}
}

func (r *CatalogReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RecordView, error) {
	row, err := r.queries.GetRecordView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get record view", err)
	}
	return toRecordView(row), nil
}

func (r *CatalogReadStore) FindBySlug(ctx context.Context, slug string) (*queries.RecordView, error) {
	row, err := r.queries.GetRecordViewBySlug(ctx, r.db, slug)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("record not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get record view by slug", err)
	}
	return toRecordView(row), nil
}

func (r *CatalogReadStore) List(ctx context.Context, filter queries.RecordFilter, after *queries.Keyset, limit int32) ([]*queries.RecordView, error) {
	params := sqlc.ListRecordViewsParams{
		Genre:        pgconv.OptionalStringToPgtype(filter.Genre),
		Artist:       pgconv.OptionalStringToPgtype(filter.Artist),
		Query:        pgconv.OptionalStringToPgtype(filter.Query),
		InStockOnly:  filter.InStockOnly,
		FeaturedOnly: filter.FeaturedOnly,
		Limit:        limit,
	}
	params.CursorCreatedAt, params.CursorID = keysetParams(after)

	rows, err := r.queries.ListRecordViews(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list record views", err)
	}
	result := make([]*queries.RecordView, len(rows))
	for i, row := range rows {
		result[i] = toRecordView(row)
	}
	return result, nil
}

// keysetParams maps a nil keyset to NULL cursor arguments, which the queries read as "first page".
func keysetParams(after *queries.Keyset) (pgtype.Timestamptz, pgtype.UUID) {
	if after == nil {
		return pgtype.Timestamptz{}, pgtype.UUID{}
	}
	return pgconv.TimeToPgtype(after.CreatedAt), pgconv.UUIDToPgtype(after.ID)
}

func toRecordView(row sqlc.VinylRecordViews) *queries.RecordView {
	return &queries.RecordView{
		ID:            row.ID,
		Title:         row.Title,
		Slug:          row.Slug,
		ArtistID:      row.ArtistID,
		ArtistName:    row.ArtistName,
		ArtistType:    row.ArtistType,
		Genre:         row.GenreName,
		Label:         row.LabelName,
		ReleaseYear:   int(row.ReleaseYear),
		Condition:     row.Condition,
		Speed:         row.Speed,
		Size:          row.Size,
		Price:         row.Price,
		StockQuantity: int(row.StockQuantity),
		IsAvailable:   row.IsAvailable,
		InStock:       row.IsAvailable && row.StockQuantity > 0,
		Featured:      row.Featured,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
