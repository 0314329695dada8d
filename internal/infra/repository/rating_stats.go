package repository

import (
	"context"

	"vinyl-record-house/internal/infra"
	sqlc "vinyl-record-house/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type RatingStatsQueries interface {
	RecalcRecordRatingStats(ctx context.Context, db sqlc.DBTX, vinylRecordID uuid.UUID) error
}

type RatingStatsRepository struct {
	q RatingStatsQueries
}

func NewRatingStatsRepository(q RatingStatsQueries) *RatingStatsRepository {
	return &RatingStatsRepository{q: q}
}

func (r *RatingStatsRepository) Recalc(ctx context.Context, tx sqlc.DBTX, recordID uuid.UUID) error {
	if err := r.q.RecalcRecordRatingStats(ctx, tx, recordID); err != nil {
		return infra.WrapRepoErr("failed to recalculate rating stats", err)
	}
	return nil
}
