//go:build unit || e2e

package builder

import (
	"time"

	domreview "vinyl-record-house/internal/domain/review"
	reqdto "vinyl-record-house/internal/handler/dto/request"
	sqlc "vinyl-record-house/internal/infra/sqlc/generated"
	"vinyl-record-house/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewBuilder struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	AuthorName       string
	RecordID         uuid.UUID
	RecordTitle      string
	Rating           int
	Title            string
	Comment          string
	VerifiedPurchase bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	return &ReviewBuilder{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		AuthorName:  "Test",
		RecordID:    uuid.New(),
		RecordTitle: "Kind of Blue",
		Rating:      5,
		Title:       "Flawless pressing",
		Comment:     "Quiet vinyl, great sleeve.",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(uuid.Nil, r.UserID, r.RecordID, r.Rating, r.Title, r.Comment, r.VerifiedPurchase, r.CreatedAt)
}

func (r *ReviewBuilder) BuildInfra() sqlc.Reviews {
	return sqlc.Reviews{
		ID:                 r.ID,
		VinylRecordID:      r.RecordID,
		UserID:             r.UserID,
		Rating:             int32(r.Rating),
		Title:              r.Title,
		Comment:            r.Comment,
		IsVerifiedPurchase: r.VerifiedPurchase,
		CreatedAt:          pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
		UpdatedAt:          pgtype.Timestamptz{Time: r.UpdatedAt, Valid: true},
	}
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		RecordID: r.RecordID,
		Rating:   r.Rating,
		Title:    r.Title,
		Comment:  r.Comment,
	}
}

func (r *ReviewBuilder) BuildUpdateRequestDTO() reqdto.UpdateReviewRequest {
	rating := r.Rating
	comment := r.Comment
	return reqdto.UpdateReviewRequest{
		Rating:  &rating,
		Comment: &comment,
	}
}

func (r *ReviewBuilder) BuildViewQuery() *queries.ReviewView {
	return &queries.ReviewView{
		ID:               r.ID,
		RecordID:         r.RecordID,
		RecordTitle:      r.RecordTitle,
		UserID:           r.UserID,
		AuthorName:       r.AuthorName,
		Rating:           r.Rating,
		Title:            r.Title,
		Comment:          r.Comment,
		VerifiedPurchase: r.VerifiedPurchase,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func (r *ReviewBuilder) BuildRatingStats() *queries.RatingStats {
	return &queries.RatingStats{
		RecordID:      r.RecordID,
		TotalReviews:  10,
		AverageRating: 4.2,
		UpdatedAt:     r.UpdatedAt,
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithUserID(userID uuid.UUID) *ReviewBuilder {
	r.UserID = userID
	return r
}

func (r *ReviewBuilder) WithRecordID(recordID uuid.UUID) *ReviewBuilder {
	r.RecordID = recordID
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) WithTitle(title string) *ReviewBuilder {
	r.Title = title
	return r
}

func (r *ReviewBuilder) AsVerified() *ReviewBuilder {
	r.VerifiedPurchase = true
	return r
}

func (r *ReviewBuilder) AsPoorRating() *ReviewBuilder {
	r.Rating = 1
	r.Title = "Warped"
	r.Comment = "Arrived warped and noisy."
	return r
}
