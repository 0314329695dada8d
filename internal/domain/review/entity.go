package review

import (
	"time"

	"github.com/google/uuid"
)

// Review is unique per (record, user). verifiedPurchase is decided once, at creation.
type Review struct {
	id               uuid.UUID
	recordID         uuid.UUID
	userID           uuid.UUID
	rating           Rating
	title            Title
	comment          Comment
	verifiedPurchase bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewReview(id, userID, recordID uuid.UUID, ratingValue int, titleText, commentText string, verifiedPurchase bool, now time.Time) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}
	title, err := NewTitle(titleText)
	if err != nil {
		return nil, err
	}
	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Review{
		id:               id,
		recordID:         recordID,
		userID:           userID,
		rating:           rating,
		title:            title,
		comment:          comment,
		verifiedPurchase: verifiedPurchase,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructReview(id, userID, recordID uuid.UUID, rating Rating, title Title, comment Comment, verifiedPurchase bool, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:               id,
		recordID:         recordID,
		userID:           userID,
		rating:           rating,
		title:            title,
		comment:          comment,
		verifiedPurchase: verifiedPurchase,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Revise changes the editable fields and keeps the verified flag.
func (r *Review) Revise(ratingValue int, titleText, commentText string, now time.Time) error {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return err
	}
	title, err := NewTitle(titleText)
	if err != nil {
		return err
	}
	comment, err := NewComment(commentText)
	if err != nil {
		return err
	}
	r.rating, r.title, r.comment = rating, title, comment
	r.updatedAt = now
	return nil
}

func (r *Review) ID() uuid.UUID          { return r.id }
func (r *Review) RecordID() uuid.UUID    { return r.recordID }
func (r *Review) UserID() uuid.UUID      { return r.userID }
func (r *Review) Rating() Rating         { return r.rating }
func (r *Review) Title() Title           { return r.title }
func (r *Review) Comment() Comment       { return r.comment }
func (r *Review) VerifiedPurchase() bool { return r.verifiedPurchase }
func (r *Review) CreatedAt() time.Time   { return r.createdAt }
func (r *Review) UpdatedAt() time.Time   { return r.updatedAt }
