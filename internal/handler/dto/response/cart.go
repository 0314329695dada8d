package response

import (
	"vinyl-record-house/internal/pkg/money"
	"vinyl-record-house/internal/usecase/queries"
)

type CartLineResponse struct {
	RecordID      string `json:"record_id"`
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	Artist        string `json:"artist"`
	Quantity      int    `json:"quantity"`
	UnitPrice     string `json:"unit_price"`
	LineTotal     string `json:"line_total"`
	StockQuantity int    `json:"stock_quantity"`
	Available     bool   `json:"available"`
	Short         bool   `json:"short"`
}

type CartResponse struct {
	Lines        []CartLineResponse `json:"lines"`
	Subtotal     string             `json:"subtotal"`
	ShippingCost string             `json:"shipping_cost"`
	Total        string             `json:"total"`
	TotalItems   int                `json:"total_items"`
}

func FromCartView(v *queries.CartView) *CartResponse {
	lines := make([]CartLineResponse, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = CartLineResponse{
			RecordID:      l.RecordID.String(),
			Title:         l.Title,
			Slug:          l.Slug,
			Artist:        l.Artist,
			Quantity:      l.Quantity,
			UnitPrice:     money.Format(l.UnitPrice),
			LineTotal:     money.Format(l.LineTotal),
			StockQuantity: l.StockQuantity,
			Available:     l.IsAvailable,
			Short:         l.Short,
		}
	}
	return &CartResponse{
		Lines:        lines,
		Subtotal:     money.Format(v.Subtotal),
		ShippingCost: money.Format(v.ShippingCost),
		Total:        money.Format(v.Total),
		TotalItems:   v.TotalItems,
	}
}
