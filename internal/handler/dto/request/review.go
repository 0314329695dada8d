package request

import (
	"vinyl-record-house/internal/pkg/patch"
	"vinyl-record-house/internal/usecase/commands"
	"vinyl-record-house/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	RecordID uuid.UUID `json:"record_id" binding:"required"`
	Rating   int       `json:"rating" binding:"required,min=1,max=5"`
	Title    string    `json:"title" binding:"required,max=200"`
	Comment  string    `json:"comment" binding:"required,max=1000"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Title   *string `json:"title" binding:"omitempty,max=200"`
	Comment *string `json:"comment" binding:"omitempty,max=1000"`
}

func (r *CreateReviewRequest) ToCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		RecordID: r.RecordID,
		Rating:   r.Rating,
		Title:    r.Title,
		Comment:  r.Comment,
	}
}

func (r *UpdateReviewRequest) ToCommand(existing *queries.ReviewView) commands.UpdateReviewRequest {
	return commands.UpdateReviewRequest{
		Rating:  patch.Coalesce(r.Rating, existing.Rating),
		Title:   patch.Text(r.Title, existing.Title),
		Comment: patch.Text(r.Comment, existing.Comment),
	}
}
