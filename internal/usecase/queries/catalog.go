package queries

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"vinyl-record-house/internal/infra"
	"vinyl-record-house/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRecordNotFound = errs.New("record not found")

type CatalogReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RecordView, error)
	FindBySlug(ctx context.Context, slug string) (*RecordView, error)
	List(ctx context.Context, filter RecordFilter, after *Keyset, limit int32) ([]*RecordView, error)
}

// RecordCache is a best-effort lookaside for single-record reads. Failures never fail the read.
// A miss reports the entry's version; Set stores only while that version is still current,
// so a fill that raced a stock invalidation is dropped instead of caching old stock.
type RecordCache interface {
	Get(ctx context.Context, id uuid.UUID) (view *RecordView, version int64, err error)
	Set(ctx context.Context, view *RecordView, version int64) error
}

type CatalogQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RecordView, error)
	GetBySlug(ctx context.Context, slug string) (*RecordView, error)
	List(ctx context.Context, filter RecordFilter, cursor *Cursor, limit int) ([]*RecordView, *Cursor, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
	cache RecordCache
}

func NewCatalogQueries(store CatalogReadStore, cache RecordCache) CatalogQueries {
	return &catalogQueriesImpl{store: store, cache: cache}
}

func (q *catalogQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RecordView, error) {
	cached, version, cacheErr := q.cache.Get(ctx, id)
	if cacheErr != nil {
		slog.Warn("record cache read failed", "record_id", id, "error", cacheErr)
	} else if cached != nil {
		return cached, nil
	}

	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, mapRecordErr(err)
	}
	if cacheErr != nil {
		// without a version the fill could not be checked against invalidations
		return view, nil
	}
	if err := q.cache.Set(ctx, view, version); err != nil {
		slog.Warn("record cache write failed", "record_id", id, "error", err)
	}
	return view, nil
}

func (q *catalogQueriesImpl) GetBySlug(ctx context.Context, slug string) (*RecordView, error) {
	view, err := q.store.FindBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		return nil, mapRecordErr(err)
	}
	return view, nil
}

func (q *catalogQueriesImpl) List(ctx context.Context, filter RecordFilter, cursor *Cursor, limit int) ([]*RecordView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := keysetFrom(cursor)
	if err != nil {
		return nil, nil, ErrInvalidCursor
	}
	rows, err := q.store.List(ctx, filter, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	rows, next := paginate(rows, limit, func(v *RecordView) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID })
	return rows, next, nil
}

func mapRecordErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrRecordNotFound
	}
	return err
}
