package response

import (
	"time"

	"vinyl-record-house/internal/pkg/money"
	"vinyl-record-house/internal/usecase/queries"
)

type ArtistResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type RecordResponse struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Slug          string         `json:"slug"`
	Artist        ArtistResponse `json:"artist"`
	Genre         string         `json:"genre"`
	Label         string         `json:"label"`
	ReleaseYear   int            `json:"release_year"`
	Condition     string         `json:"condition"`
	Speed         string         `json:"speed"`
	Size          string         `json:"size"`
	Price         string         `json:"price"`
	StockQuantity int            `json:"stock_quantity"`
	InStock       bool           `json:"in_stock"`
	Featured      bool           `json:"featured"`
	CreatedAt     time.Time      `json:"created_at"`
}

func FromRecordView(v *queries.RecordView) *RecordResponse {
	return &RecordResponse{
		ID:    v.ID.String(),
		Title: v.Title,
		Slug:  v.Slug,
		Artist: ArtistResponse{
			ID:   v.ArtistID.String(),
			Name: v.ArtistName,
			Type: v.ArtistType,
		},
		Genre:         v.Genre,
		Label:         v.Label,
		ReleaseYear:   v.ReleaseYear,
		Condition:     v.Condition,
		Speed:         v.Speed,
		Size:          v.Size,
		Price:         money.Format(v.Price),
		StockQuantity: v.StockQuantity,
		InStock:       v.InStock,
		Featured:      v.Featured,
		CreatedAt:     v.CreatedAt,
	}
}

func FromRecordList(views []*queries.RecordView) []*RecordResponse {
	res := make([]*RecordResponse, len(views))
	for i, v := range views {
		res[i] = FromRecordView(v)
	}
	return res
}
