package converter

import (
	"vinyl-record-house/internal/domain/review"
	sqlc "vinyl-record-house/internal/infra/sqlc/generated"
	"vinyl-record-house/internal/pkg/pgconv"
)

func ReviewToCreateParams(r *review.Review) sqlc.CreateReviewParams {
	return sqlc.CreateReviewParams{
		ID:                 r.ID(),
		VinylRecordID:      r.RecordID(),
		UserID:             r.UserID(),
		Rating:             pgconv.IntToInt32(r.Rating().Value()),
		Title:              r.Title().String(),
		Comment:            r.Comment().String(),
		IsVerifiedPurchase: r.VerifiedPurchase(),
		CreatedAt:          pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func ReviewToUpdateParams(r *review.Review) sqlc.UpdateReviewParams {
	return sqlc.UpdateReviewParams{
		ID:        r.ID(),
		Rating:    pgconv.IntToInt32(r.Rating().Value()),
		Title:     r.Title().String(),
		Comment:   r.Comment().String(),
		UpdatedAt: pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

// ReviewFromRow trusts stored values; the table checks already enforce the domain bounds.
func ReviewFromRow(row sqlc.Reviews) (*review.Review, error) {
	rating, err := review.NewRating(int(row.Rating))
	if err != nil {
		return nil, err
	}
	title, err := review.NewTitle(row.Title)
	if err != nil {
		return nil, err
	}
	comment, err := review.NewComment(row.Comment)
	if err != nil {
		return nil, err
	}
	return review.ReconstructReview(
		row.ID,
		row.UserID,
		row.VinylRecordID,
		rating,
		title,
		comment,
		row.IsVerifiedPurchase,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
