package queries

import (
	"context"
	"time"

	"vinyl-record-house/internal/infra"
	"vinyl-record-house/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReviewNotFound = errs.New("review not found")

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListByRecord(ctx context.Context, recordID uuid.UUID, after *Keyset, limit int32) ([]*ReviewView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, after *Keyset, limit int32) ([]*ReviewView, error)
	RatingStats(ctx context.Context, recordID uuid.UUID) (*RatingStats, error)
}

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListByRecord(ctx context.Context, recordID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error)
	// ListMine pages through the caller's own reviews, newest first.
	ListMine(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error)
	RatingStats(ctx context.Context, recordID uuid.UUID) (*RatingStats, error)
}

type reviewQueriesImpl struct {
	repo ReviewReadStore
}

func NewReviewQueries(repo ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	rv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return rv, nil
}

func (q *reviewQueriesImpl) ListByRecord(ctx context.Context, recordID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := keysetFrom(cursor)
	if err != nil {
		return nil, nil, ErrInvalidCursor
	}
	rows, err := q.repo.ListByRecord(ctx, recordID, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	rows, next := paginate(rows, limit, func(r *ReviewView) (time.Time, uuid.UUID) { return r.CreatedAt, r.ID })
	return rows, next, nil
}

func (q *reviewQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := keysetFrom(cursor)
	if err != nil {
		return nil, nil, ErrInvalidCursor
	}
	rows, err := q.repo.ListByUser(ctx, userID, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	rows, next := paginate(rows, limit, func(r *ReviewView) (time.Time, uuid.UUID) { return r.CreatedAt, r.ID })
	return rows, next, nil
}

func (q *reviewQueriesImpl) RatingStats(ctx context.Context, recordID uuid.UUID) (*RatingStats, error) {
	return q.repo.RatingStats(ctx, recordID)
}
