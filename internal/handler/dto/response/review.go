package response

import (
	"vinyl-record-house/internal/usecase/queries"
)

type ReviewResponse struct {
	ID               string `json:"id"`
	RecordID         string `json:"record_id"`
	RecordTitle      string `json:"record_title,omitempty"`
	UserID           string `json:"user_id"`
	AuthorName       string `json:"author_name"`
	Rating           int    `json:"rating"`
	Title            string `json:"title"`
	Comment          string `json:"comment"`
	VerifiedPurchase bool   `json:"verified_purchase"`
	CreatedAt        int64  `json:"created_at"`
	UpdatedAt        int64  `json:"updated_at"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:               v.ID.String(),
		RecordID:         v.RecordID.String(),
		RecordTitle:      v.RecordTitle,
		UserID:           v.UserID.String(),
		AuthorName:       v.AuthorName,
		Rating:           v.Rating,
		Title:            v.Title,
		Comment:          v.Comment,
		VerifiedPurchase: v.VerifiedPurchase,
		CreatedAt:        v.CreatedAt.Unix(),
		UpdatedAt:        v.UpdatedAt.Unix(),
	}
}

func FromReviewList(items []*queries.ReviewView) []*ReviewResponse {
	res := make([]*ReviewResponse, len(items))
	for i, it := range items {
		res[i] = FromReviewView(it)
	}
	return res
}

type RatingStatsResponse struct {
	RecordID      string  `json:"record_id"`
	TotalReviews  int     `json:"total_reviews"`
	AverageRating float64 `json:"average_rating"`
	UpdatedAt     int64   `json:"updated_at"`
}

func FromRatingStats(s *queries.RatingStats) *RatingStatsResponse {
	var updated int64
	if !s.UpdatedAt.IsZero() {
		updated = s.UpdatedAt.Unix()
	}
	return &RatingStatsResponse{
		RecordID:      s.RecordID.String(),
		TotalReviews:  s.TotalReviews,
		AverageRating: s.AverageRating,
		UpdatedAt:     updated,
	}
}
