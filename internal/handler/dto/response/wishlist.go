package response

import (
	"time"

	"vinyl-record-house/internal/pkg/money"
	"vinyl-record-house/internal/usecase/queries"

	"github.com/google/uuid"
)

type WishlistItemResponse struct {
	RecordID string    `json:"record_id"`
	Title    string    `json:"title"`
	Slug     string    `json:"slug"`
	Artist   string    `json:"artist"`
	Price    string    `json:"price"`
	InStock  bool      `json:"in_stock"`
	AddedAt  time.Time `json:"added_at"`
}

type WishlistToggleResponse struct {
	RecordID string `json:"record_id"`
	Added    bool   `json:"added"`
}

type WishlistStatusResponse struct {
	RecordID   string `json:"record_id"`
	InWishlist bool   `json:"in_wishlist"`
}

// WishlistBulkStatusResponse is keyed by record id.
type WishlistBulkStatusResponse struct {
	Status map[string]bool `json:"status"`
}

type WishlistClearResponse struct {
	Removed int `json:"removed"`
}

func FromWishlistStatus(status map[uuid.UUID]bool) WishlistBulkStatusResponse {
	res := WishlistBulkStatusResponse{Status: make(map[string]bool, len(status))}
	for id, in := range status {
		res.Status[id.String()] = in
	}
	return res
}

func FromWishlist(items []*queries.WishlistItemView) []*WishlistItemResponse {
	res := make([]*WishlistItemResponse, len(items))
	for i, it := range items {
		res[i] = &WishlistItemResponse{
			RecordID: it.RecordID.String(),
			Title:    it.Title,
			Slug:     it.Slug,
			Artist:   it.Artist,
			Price:    money.Format(it.Price),
			InStock:  it.InStock,
			AddedAt:  it.AddedAt,
		}
	}
	return res
}
