//go:build unit || e2e

package builder

import (
	"time"

	"vinyl-record-house/internal/domain/cart"
	"vinyl-record-house/internal/domain/catalog"
	"vinyl-record-house/internal/domain/order"
	reqdto "vinyl-record-house/internal/handler/dto/request"

	"github.com/google/uuid"
)

// CheckoutBuilder produces a valid billing/shipping form; mutate it to make it invalid.
type CheckoutBuilder struct {
	Email      string
	FirstName  string
	LastName   string
	Phone      string
	Line1      string
	City       string
	PostalCode string
	Country    string
	Notes      string
}

func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		Email:     "buyer@example.com",
		FirstName: "Ada",
		LastName:  "Wong",
		Phone:     "+852 2345 6789",
		Line1:     "12 Record Lane",
		City:      "Hong Kong",
		Country:   "Hong Kong",
	}
}

func (b *CheckoutBuilder) With(mutate func(*CheckoutBuilder)) *CheckoutBuilder {
	mutate(b)
	return b
}

func (b *CheckoutBuilder) BuildInput() order.CheckoutInput {
	return order.CheckoutInput{
		Contact: order.Contact{
			Email:     b.Email,
			FirstName: b.FirstName,
			LastName:  b.LastName,
			Phone:     b.Phone,
		},
		Billing: order.Address{
			Line1:      b.Line1,
			City:       b.City,
			PostalCode: b.PostalCode,
			Country:    b.Country,
		},
		ShippingSameAsBilling: true,
		Notes:                 b.Notes,
	}
}

func (b *CheckoutBuilder) BuildDTO() reqdto.CheckoutRequest {
	return reqdto.CheckoutRequest{
		Email:     b.Email,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Phone:     b.Phone,
		Billing: reqdto.AddressRequest{
			AddressLine1: b.Line1,
			City:         b.City,
			PostalCode:   b.PostalCode,
			Country:      b.Country,
		},
		Notes: b.Notes,
	}
}

// CartWith builds a user cart holding qty copies of each record at its current price.
func CartWith(userID uuid.UUID, now time.Time, lines map[*catalog.VinylRecord]int) *cart.Cart {
	owner, err := cart.UserOwner(userID)
	if err != nil {
		panic(err)
	}
	items := make([]cart.Item, 0, len(lines))
	for rec, qty := range lines {
		items = append(items, cart.ReconstructItem(rec.ID(), qty, rec.Price(), now))
	}
	return cart.ReconstructCart(uuid.New(), owner, items, now, now)
}

// PlacedOrder builds an order straight from Reconstruct for lifecycle tests.
func PlacedOrder(userID uuid.UUID, status order.Status, now time.Time, items ...order.Item) *order.Order {
	var subtotal int64
	for _, it := range items {
		subtotal += it.LineTotal()
	}
	return order.Reconstruct(order.Fields{
		ID:     uuid.New(),
		Seq:    1,
		UserID: userID,
		Contact: order.Contact{
			Email:     "buyer@example.com",
			FirstName: "Ada",
			LastName:  "Wong",
		},
		ShipTo: order.Address{
			Line1:   "12 Record Lane",
			City:    "Hong Kong",
			Country: "Hong Kong",
		},
		Status:       status,
		Subtotal:     subtotal,
		ShippingCost: 0,
		TotalAmount:  subtotal,
		Items:        items,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// OrderItemFor snapshots qty copies of rec as an order line.
func OrderItemFor(rec *catalog.VinylRecord, qty int) order.Item {
	id := rec.ID()
	return order.ReconstructItem(&id, rec.Title(), rec.Artist().Name, rec.ReleaseYear(), rec.Price(), qty)
}
