//go:build unit || e2e

package builder

import (
	"time"

	"vinyl-record-house/internal/domain/catalog"
	sqlc "vinyl-record-house/internal/infra/sqlc/generated"
	"vinyl-record-house/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RecordBuilder struct {
	ID          uuid.UUID
	Title       string
	Slug        string
	ArtistID    uuid.UUID
	ArtistName  string
	Genre       string
	ReleaseYear int
	Price       int64
	Stock       int
	IsAvailable bool
	Featured    bool
	CreatedAt   time.Time
}

func NewRecordBuilder() *RecordBuilder {
	return &RecordBuilder{
		ID:          uuid.New(),
		Title:       "Kind of Blue",
		Slug:        "kind-of-blue",
		ArtistID:    uuid.New(),
		ArtistName:  "Miles Davis",
		Genre:       "Jazz",
		ReleaseYear: 1959,
		Price:       30000,
		Stock:       5,
		IsAvailable: true,
		CreatedAt:   time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC),
	}
}

func (b *RecordBuilder) With(mutate func(*RecordBuilder)) *RecordBuilder {
	mutate(b)
	return b
}

func (b *RecordBuilder) WithPrice(price int64) *RecordBuilder {
	b.Price = price
	return b
}

func (b *RecordBuilder) WithStock(stock int) *RecordBuilder {
	b.Stock = stock
	return b
}

func (b *RecordBuilder) WithTitle(title string) *RecordBuilder {
	b.Title = title
	return b
}

func (b *RecordBuilder) Unlisted() *RecordBuilder {
	b.IsAvailable = false
	return b
}

func (b *RecordBuilder) BuildDomain() *catalog.VinylRecord {
	return catalog.ReconstructVinylRecord(catalog.RecordFields{
		ID:    b.ID,
		Title: b.Title,
		Slug:  b.Slug,
		Artist: catalog.Artist{
			ID:   b.ArtistID,
			Name: b.ArtistName,
			Type: catalog.ArtistTypeSolo,
		},
		Genre:         b.Genre,
		ReleaseYear:   b.ReleaseYear,
		Condition:     catalog.ConditionMint,
		Speed:         "33",
		Size:          "12",
		Price:         b.Price,
		StockQuantity: b.Stock,
		IsAvailable:   b.IsAvailable,
		Featured:      b.Featured,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	})
}

func (b *RecordBuilder) BuildView() *queries.RecordView {
	return &queries.RecordView{
		ID:            b.ID,
		Title:         b.Title,
		Slug:          b.Slug,
		ArtistID:      b.ArtistID,
		ArtistName:    b.ArtistName,
		ArtistType:    string(catalog.ArtistTypeSolo),
		Genre:         b.Genre,
		ReleaseYear:   b.ReleaseYear,
		Condition:     string(catalog.ConditionMint),
		Speed:         "33",
		Size:          "12",
		Price:         b.Price,
		StockQuantity: b.Stock,
		IsAvailable:   b.IsAvailable,
		InStock:       b.IsAvailable && b.Stock > 0,
		Featured:      b.Featured,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
}

func (b *RecordBuilder) BuildLockedRow() sqlc.LockRecordsByIDsRow {
	return sqlc.LockRecordsByIDsRow{
		ID:            b.ID,
		Title:         b.Title,
		Slug:          b.Slug,
		ArtistID:      b.ArtistID,
		ArtistName:    b.ArtistName,
		ArtistType:    string(catalog.ArtistTypeSolo),
		ReleaseYear:   int32(b.ReleaseYear),
		Condition:     string(catalog.ConditionMint),
		Speed:         "33",
		Size:          "12",
		Price:         b.Price,
		StockQuantity: int32(b.Stock),
		IsAvailable:   b.IsAvailable,
		Featured:      b.Featured,
		CreatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *RecordBuilder) BuildInfraView() sqlc.VinylRecordViews {
	return sqlc.VinylRecordViews{
		ID:            b.ID,
		Title:         b.Title,
		Slug:          b.Slug,
		ArtistID:      b.ArtistID,
		ArtistName:    b.ArtistName,
		ArtistType:    string(catalog.ArtistTypeSolo),
		GenreName:     b.Genre,
		ReleaseYear:   int32(b.ReleaseYear),
		Condition:     string(catalog.ConditionMint),
		Speed:         "33",
		Size:          "12",
		Price:         b.Price,
		StockQuantity: int32(b.Stock),
		IsAvailable:   b.IsAvailable,
		Featured:      b.Featured,
		CreatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}
