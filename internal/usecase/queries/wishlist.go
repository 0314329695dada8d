package queries

import (
	"context"

	"vinyl-record-house/internal/pkg/errs"

	"github.com/google/uuid"
)

// MaxStatusRecords caps one bulk wishlist status lookup.
const MaxStatusRecords = 100

var ErrTooManyRecords = errs.Newf("at most %d records per status lookup", MaxStatusRecords)

type WishlistReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*WishlistItemView, error)
	// FilterWishlisted returns the subset of recordIDs on the user's wishlist.
	FilterWishlisted(ctx context.Context, userID uuid.UUID, recordIDs []uuid.UUID) ([]uuid.UUID, error)
}

type WishlistQueries interface {
	List(ctx context.Context, userID uuid.UUID) ([]*WishlistItemView, error)
	// Status answers, for every requested record, whether it is on the wishlist.
	Status(ctx context.Context, userID uuid.UUID, recordIDs []uuid.UUID) (map[uuid.UUID]bool, error)
}

type wishlistQueriesImpl struct {
	store WishlistReadStore
}

func NewWishlistQueries(store WishlistReadStore) WishlistQueries {
	return &wishlistQueriesImpl{store: store}
}

func (q *wishlistQueriesImpl) List(ctx context.Context, userID uuid.UUID) ([]*WishlistItemView, error) {
	return q.store.ListByUser(ctx, userID)
}

func (q *wishlistQueriesImpl) Status(ctx context.Context, userID uuid.UUID, recordIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	if len(recordIDs) > MaxStatusRecords {
		return nil, ErrTooManyRecords
	}
	status := make(map[uuid.UUID]bool, len(recordIDs))
	for _, id := range recordIDs {
		status[id] = false
	}
	if len(recordIDs) == 0 {
		return status, nil
	}
	found, err := q.store.FilterWishlisted(ctx, userID, recordIDs)
	if err != nil {
		return nil, err
	}
	for _, id := range found {
		status[id] = true
	}
	return status, nil
}
