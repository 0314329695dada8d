package order

import (
	"time"

	"vinyl-record-house/internal/domain/cart"
	"vinyl-record-house/internal/domain/catalog"

	"github.com/google/uuid"
)

type PlaceParams struct {
	UserID  uuid.UUID
	Input   CheckoutInput
	Cart    *cart.Cart
	Records map[uuid.UUID]*catalog.VinylRecord // locked rows, keyed by id
	Policy  ShippingPolicy
	Paid    bool
	Payment string // gateway reference, empty for pay-later
	Now     time.Time
}

// Place turns a cart into an order. It re-checks stock against the given records and reserves it
// in memory; persisting the decrement is up to the caller within the same transaction.
func Place(p PlaceParams) (*Order, error) {
	input := p.Input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if p.Cart == nil || p.Cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	lines := p.Cart.Items()
	items := make([]Item, 0, len(lines))
	var subtotal int64
	for _, line := range lines {
		rec, ok := p.Records[line.RecordID()]
		if !ok {
			return nil, &catalog.InsufficientStockError{
				RecordID:  line.RecordID(),
				Requested: line.Quantity(),
				Available: 0,
			}
		}
		if err := rec.Reserve(line.Quantity(), p.Now); err != nil {
			return nil, err
		}
		id := rec.ID()
		items = append(items, Item{
			recordID:  &id,
			title:     rec.Title(),
			artist:    rec.Artist().Name,
			year:      rec.ReleaseYear(),
			unitPrice: line.UnitPrice(),
			quantity:  line.Quantity(),
		})
		subtotal += line.LineTotal()
	}

	totals := p.Policy.Totals(subtotal)
	status := StatusPending
	if p.Paid {
		status = StatusConfirmed
	}

	return &Order{
		id:               uuid.New(),
		userID:           p.UserID,
		contact:          input.Contact,
		shipTo:           input.ShipTo(),
		notes:            input.Notes,
		status:           status,
		subtotal:         totals.Subtotal,
		shippingCost:     totals.ShippingCost,
		totalAmount:      totals.Total,
		paymentReference: p.Payment,
		items:            items,
		createdAt:        p.Now,
		updatedAt:        p.Now,
	}, nil
}
