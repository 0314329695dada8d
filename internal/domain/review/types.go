package review

import "vinyl-record-house/internal/pkg/errs"

var (
	ErrInvalidRating  = errs.New("rating must be between 1 and 5")
	ErrEmptyComment   = errs.New("comment cannot be empty")
	ErrCommentTooLong = errs.New("comment exceeds maximum length")
	ErrEmptyTitle     = errs.New("title cannot be empty")
	ErrTitleTooLong   = errs.New("title exceeds maximum length")
	ErrReviewExists   = errs.New("user already reviewed this record")
	ErrReviewNotFound = errs.New("review not found")
	ErrReviewNotOwned = errs.New("review not owned by user")
)
