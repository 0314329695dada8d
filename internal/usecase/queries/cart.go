package queries

import (
	"context"

	"vinyl-record-house/internal/domain/cart"
	"vinyl-record-house/internal/domain/order"
)

type CartReadStore interface {
	// FindLines returns no lines when the owner has no cart yet.
	FindLines(ctx context.Context, owner cart.Owner) ([]CartLineView, error)
}

type CartQueries interface {
	GetCart(ctx context.Context, owner cart.Owner) (*CartView, error)
}

type cartQueriesImpl struct {
	store    CartReadStore
	shipping order.ShippingPolicy
}

func NewCartQueries(store CartReadStore, shipping order.ShippingPolicy) CartQueries {
	return &cartQueriesImpl{store: store, shipping: shipping}
}

func (q *cartQueriesImpl) GetCart(ctx context.Context, owner cart.Owner) (*CartView, error) {
	lines, err := q.store.FindLines(ctx, owner)
	if err != nil {
		return nil, err
	}
	return BuildCartView(lines, q.shipping), nil
}

// BuildCartView totals the lines with the same policy checkout charges. An empty cart owes nothing.
func BuildCartView(lines []CartLineView, shipping order.ShippingPolicy) *CartView {
	view := &CartView{Lines: make([]CartLineView, 0, len(lines))}
	for _, l := range lines {
		l.LineTotal = l.UnitPrice * int64(l.Quantity)
		l.Short = !l.IsAvailable || l.StockQuantity < l.Quantity
		view.Subtotal += l.LineTotal
		view.TotalItems += l.Quantity
		view.Lines = append(view.Lines, l)
	}
	if len(view.Lines) == 0 {
		return view
	}
	totals := shipping.Totals(view.Subtotal)
	view.ShippingCost = totals.ShippingCost
	view.Total = totals.Total
	return view
}
