package readstore

import (
	"context"

	"vinyl-record-house/internal/infra"
	sqlc "vinyl-record-house/internal/infra/sqlc/generated"
	"vinyl-record-house/internal/pkg/pgconv"
	"vinyl-record-house/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewViewQueries interface {
	GetReviewView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetReviewViewRow, error)
	ListReviewsByRecord(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByRecordParams) ([]sqlc.ListReviewsByRecordRow, error)
	ListReviewsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListReviewsByUserParams) ([]sqlc.ListReviewsByUserRow, error)
	GetRecordRatingStats(ctx context.Context, db sqlc.DBTX, vinylRecordID uuid.UUID) (sqlc.VinylRatingStats, error)
}

type ReviewReadStore struct {
	queries ReviewViewQueries
	db      sqlc.DBTX
}

func NewReviewReadStore(queries ReviewViewQueries, db sqlc.DBTX) *ReviewReadStore {
	return &ReviewReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	row, err := r.queries.GetReviewView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review view by id", err)
	}
	return &queries.ReviewView{
		ID:               row.ID,
		RecordID:         row.VinylRecordID,
		RecordTitle:      row.RecordTitle,
		UserID:           row.UserID,
		AuthorName:       row.AuthorFirstName,
		Rating:           int(row.Rating),
		Title:            row.Title,
		Comment:          row.Comment,
		VerifiedPurchase: row.IsVerifiedPurchase,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *ReviewReadStore) ListByRecord(ctx context.Context, recordID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.ReviewView, error) {
	params := sqlc.ListReviewsByRecordParams{RecordID: recordID, Limit: limit}
	params.CursorCreatedAt, params.CursorID = keysetParams(after)

	rows, err := r.queries.ListReviewsByRecord(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by record", err)
	}
	result := make([]*queries.ReviewView, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReviewView{
			ID:               row.ID,
			RecordID:         row.VinylRecordID,
			UserID:           row.UserID,
			AuthorName:       row.AuthorFirstName,
			Rating:           int(row.Rating),
			Title:            row.Title,
			Comment:          row.Comment,
			VerifiedPurchase: row.IsVerifiedPurchase,
			CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return result, nil
}

// ListByUser carries the record title instead of the author, who is the caller.
func (r *ReviewReadStore) ListByUser(ctx context.Context, userID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.ReviewView, error) {
	params := sqlc.ListReviewsByUserParams{UserID: userID, Limit: limit}
	params.CursorCreatedAt, params.CursorID = keysetParams(after)

	rows, err := r.queries.ListReviewsByUser(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by user", err)
	}
	result := make([]*queries.ReviewView, len(rows))
	for i, row := range rows {
		result[i] = &queries.ReviewView{
			ID:               row.ID,
			RecordID:         row.VinylRecordID,
			RecordTitle:      row.RecordTitle,
			UserID:           row.UserID,
			Rating:           int(row.Rating),
			Title:            row.Title,
			Comment:          row.Comment,
			VerifiedPurchase: row.IsVerifiedPurchase,
			CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
			UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
		}
	}
	return result, nil
}

func (r *ReviewReadStore) RatingStats(ctx context.Context, recordID uuid.UUID) (*queries.RatingStats, error) {
	row, err := r.queries.GetRecordRatingStats(ctx, r.db, recordID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			// return zero stats if not initialized yet
			return &queries.RatingStats{RecordID: recordID}, nil
		}
		return nil, infra.WrapRepoErr("failed to get record rating stats", err)
	}
	avgPtr, _ := pgconv.Float64PtrFromNumeric(row.AverageRating)
	avg := 0.0
	if avgPtr != nil {
		avg = *avgPtr
	}
	return &queries.RatingStats{
		RecordID:      row.VinylRecordID,
		TotalReviews:  int(row.TotalReviews),
		AverageRating: avg,
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
