package repository

import (
	"context"

	"vinyl-record-house/internal/domain/catalog"
	"vinyl-record-house/internal/infra"
	"vinyl-record-house/internal/infra/repository/converter"
	sqlc "vinyl-record-house/internal/infra/sqlc/generated"
	"vinyl-record-house/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type CatalogWriteQueries interface {
	LockRecordsByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.LockRecordsByIDsRow, error)
	DecrementStock(ctx context.Context, db sqlc.DBTX, arg sqlc.DecrementStockParams) (int64, error)
	RestoreStock(ctx context.Context, db sqlc.DBTX, arg sqlc.RestoreStockParams) (int64, error)
}

type CatalogRepository struct {
	queries CatalogWriteQueries
}

func NewCatalogRepository(queries CatalogWriteQueries) *CatalogRepository {
	return &CatalogRepository{queries: queries}
}

func (r *CatalogRepository) LockByIDs(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID) (map[uuid.UUID]*catalog.VinylRecord, error) {
	records := make(map[uuid.UUID]*catalog.VinylRecord, len(ids))
	if len(ids) == 0 {
		return records, nil
	}
	rows, err := r.queries.LockRecordsByIDs(ctx, tx, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock vinyl records", err)
	}
	for _, row := range rows {
		records[row.ID] = converter.RecordFromLockedRow(row)
	}
	return records, nil
}

// DecrementStock applies a guarded decrement. Zero affected rows means the stock moved under us.
func (r *CatalogRepository) DecrementStock(ctx context.Context, tx sqlc.DBTX, recordID uuid.UUID, qty int) error {
	n, err := r.queries.DecrementStock(ctx, tx, sqlc.DecrementStockParams{
		Quantity: pgconv.IntToInt32(qty),
		ID:       recordID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to decrement stock", err)
	}
	if n == 0 {
		return &catalog.InsufficientStockError{RecordID: recordID, Requested: qty}
	}
	return nil
}

func (r *CatalogRepository) RestoreStock(ctx context.Context, tx sqlc.DBTX, recordID uuid.UUID, qty int) (bool, error) {
	n, err := r.queries.RestoreStock(ctx, tx, sqlc.RestoreStockParams{
		Quantity: pgconv.IntToInt32(qty),
		ID:       recordID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to restore stock", err)
	}
	return n > 0, nil
}
