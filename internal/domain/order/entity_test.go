//go:build unit

package order_test

import (
	"strings"
	"testing"
	"time"

	"vinyl-record-house/internal/domain/catalog"
	"vinyl-record-house/internal/domain/order"
	"vinyl-record-house/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	now    = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	policy = order.ShippingPolicy{FlatFee: 5000, FreeThreshold: 50000}
)

// =============================================================================
// Shipping policy
// =============================================================================

func TestShippingPolicy(t *testing.T) {
	testCases := []struct {
		name     string
		subtotal int64
		expected order.Totals
	}{
		{name: "below threshold pays flat fee", subtotal: 20000, expected: order.Totals{Subtotal: 20000, ShippingCost: 5000, Total: 25000}},
		{name: "one below threshold pays flat fee", subtotal: 49999, expected: order.Totals{Subtotal: 49999, ShippingCost: 5000, Total: 54999}},
		{name: "exactly threshold ships free", subtotal: 50000, expected: order.Totals{Subtotal: 50000, ShippingCost: 0, Total: 50000}},
		{name: "above threshold ships free", subtotal: 60000, expected: order.Totals{Subtotal: 60000, ShippingCost: 0, Total: 60000}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := policy.Totals(tc.subtotal)
			if diff := cmp.Diff(tc.expected, actual); diff != "" {
				t.Errorf("totals mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("negative settings are rejected", func(t *testing.T) {
		_, err := order.NewShippingPolicy(-1, 50000)
		assert.ErrorIs(t, err, order.ErrInvalidShippingPolicy)
	})
}

// =============================================================================
// Place
// =============================================================================

func TestPlace(t *testing.T) {
	userID := uuid.New()

	t.Run("free shipping at or above threshold", func(t *testing.T) {
		recA := builder.NewRecordBuilder().WithPrice(30000).WithStock(5).BuildDomain()
		c := builder.CartWith(userID, now, map[*catalog.VinylRecord]int{recA: 2})

		o, err := order.Place(order.PlaceParams{
			UserID:  userID,
			Input:   builder.NewCheckoutBuilder().BuildInput(),
			Cart:    c,
			Records: map[uuid.UUID]*catalog.VinylRecord{recA.ID(): recA},
			Policy:  policy,
			Now:     now,
		})
		require.NoError(t, err)

		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, int64(60000), o.Subtotal())
		assert.Equal(t, int64(0), o.ShippingCost())
		assert.Equal(t, int64(60000), o.TotalAmount())
		assert.Equal(t, 3, recA.StockQuantity())
		require.Len(t, o.Items(), 1)
		assert.Equal(t, 2, o.Items()[0].Quantity())
		assert.Equal(t, "Kind of Blue", o.Items()[0].Title())
		assert.Equal(t, "Miles Davis", o.Items()[0].Artist())
		assert.Len(t, o.OrderNumber(), 8)
	})

	t.Run("flat fee below threshold", func(t *testing.T) {
		recB := builder.NewRecordBuilder().WithPrice(20000).WithStock(3).BuildDomain()
		c := builder.CartWith(userID, now, map[*catalog.VinylRecord]int{recB: 1})

		o, err := order.Place(order.PlaceParams{
			UserID:  userID,
			Input:   builder.NewCheckoutBuilder().BuildInput(),
			Cart:    c,
			Records: map[uuid.UUID]*catalog.VinylRecord{recB.ID(): recB},
			Policy:  policy,
			Now:     now,
		})
		require.NoError(t, err)

		assert.Equal(t, int64(20000), o.Subtotal())
		assert.Equal(t, int64(5000), o.ShippingCost())
		assert.Equal(t, int64(25000), o.TotalAmount())
		assert.Equal(t, 2, recB.StockQuantity())
	})

	t.Run("unit price comes from the cart line", func(t *testing.T) {
		rec := builder.NewRecordBuilder().WithPrice(30000).WithStock(5).BuildDomain()
		c := builder.CartWith(userID, now, map[*catalog.VinylRecord]int{rec: 1})
		repriced := builder.NewRecordBuilder().With(func(b *builder.RecordBuilder) {
			b.ID = rec.ID()
			b.Price = 45000
		}).BuildDomain()

		o, err := order.Place(order.PlaceParams{
			UserID:  userID,
			Input:   builder.NewCheckoutBuilder().BuildInput(),
			Cart:    c,
			Records: map[uuid.UUID]*catalog.VinylRecord{rec.ID(): repriced},
			Policy:  policy,
			Now:     now,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(30000), o.Items()[0].UnitPrice())
	})

	t.Run("paid checkout starts confirmed", func(t *testing.T) {
		rec := builder.NewRecordBuilder().BuildDomain()
		c := builder.CartWith(userID, now, map[*catalog.VinylRecord]int{rec: 1})

		o, err := order.Place(order.PlaceParams{
			UserID:  userID,
			Input:   builder.NewCheckoutBuilder().BuildInput(),
			Cart:    c,
			Records: map[uuid.UUID]*catalog.VinylRecord{rec.ID(): rec},
			Policy:  policy,
			Paid:    true,
			Payment: "pi_123",
			Now:     now,
		})
		require.NoError(t, err)
		assert.Equal(t, order.StatusConfirmed, o.Status())
		assert.Equal(t, "pi_123", o.PaymentReference())
	})

	t.Run("insufficient stock names the record", func(t *testing.T) {
		rec := builder.NewRecordBuilder().WithStock(1).BuildDomain()
		c := builder.CartWith(userID, now, map[*catalog.VinylRecord]int{rec: 2})

		_, err := order.Place(order.PlaceParams{
			UserID:  userID,
			Input:   builder.NewCheckoutBuilder().BuildInput(),
			Cart:    c,
			Records: map[uuid.UUID]*catalog.VinylRecord{rec.ID(): rec},
			Policy:  policy,
			Now:     now,
		})
		require.ErrorIs(t, err, catalog.ErrInsufficientStock)

		var stockErr *catalog.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, rec.ID(), stockErr.RecordID)
		assert.Equal(t, "Kind of Blue", stockErr.Title)
		assert.Equal(t, 2, stockErr.Requested)
		assert.Equal(t, 1, stockErr.Available)
		assert.Equal(t, 1, rec.StockQuantity())
	})

	t.Run("record gone from catalog counts as no stock", func(t *testing.T) {
		rec := builder.NewRecordBuilder().BuildDomain()
		c := builder.CartWith(userID, now, map[*catalog.VinylRecord]int{rec: 1})

		_, err := order.Place(order.PlaceParams{
			UserID:  userID,
			Input:   builder.NewCheckoutBuilder().BuildInput(),
			Cart:    c,
			Records: map[uuid.UUID]*catalog.VinylRecord{},
			Policy:  policy,
			Now:     now,
		})
		var stockErr *catalog.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 0, stockErr.Available)
	})

	t.Run("unlisted record cannot be sold", func(t *testing.T) {
		rec := builder.NewRecordBuilder().WithStock(4).Unlisted().BuildDomain()
		c := builder.CartWith(userID, now, map[*catalog.VinylRecord]int{rec: 1})

		_, err := order.Place(order.PlaceParams{
			UserID:  userID,
			Input:   builder.NewCheckoutBuilder().BuildInput(),
			Cart:    c,
			Records: map[uuid.UUID]*catalog.VinylRecord{rec.ID(): rec},
			Policy:  policy,
			Now:     now,
		})
		assert.ErrorIs(t, err, catalog.ErrInsufficientStock)
	})

	t.Run("empty cart", func(t *testing.T) {
		c := builder.CartWith(userID, now, nil)

		_, err := order.Place(order.PlaceParams{
			UserID: userID,
			Input:  builder.NewCheckoutBuilder().BuildInput(),
			Cart:   c,
			Policy: policy,
			Now:    now,
		})
		assert.ErrorIs(t, err, order.ErrEmptyCart)
	})

	t.Run("invalid form is reported before the cart", func(t *testing.T) {
		input := builder.NewCheckoutBuilder().With(func(b *builder.CheckoutBuilder) {
			b.Email = "not-an-email"
			b.Line1 = ""
		}).BuildInput()

		_, err := order.Place(order.PlaceParams{
			UserID: userID,
			Input:  input,
			Cart:   builder.CartWith(userID, now, nil),
			Policy: policy,
			Now:    now,
		})
		require.ErrorIs(t, err, order.ErrValidation)

		var validation order.ValidationErrors
		require.ErrorAs(t, err, &validation)
		fields := make([]string, len(validation))
		for i, fe := range validation {
			fields[i] = fe.Field
		}
		assert.ElementsMatch(t, []string{"email", "billing.address_line_1"}, fields)
	})
}

// =============================================================================
// Checkout input
// =============================================================================

func TestCheckoutInput(t *testing.T) {
	t.Run("normalize trims and fills default country", func(t *testing.T) {
		in := builder.NewCheckoutBuilder().With(func(b *builder.CheckoutBuilder) {
			b.Email = "  Buyer@Example.COM "
			b.Country = ""
			b.FirstName = " Ada "
		}).BuildInput().Normalize()

		assert.Equal(t, "buyer@example.com", in.Contact.Email)
		assert.Equal(t, "Ada", in.Contact.FirstName)
		assert.Equal(t, order.DefaultCountry, in.Billing.Country)
		assert.NoError(t, in.Validate())
	})

	t.Run("separate shipping address must be complete", func(t *testing.T) {
		in := builder.NewCheckoutBuilder().BuildInput()
		in.ShippingSameAsBilling = false

		err := in.Normalize().Validate()
		var validation order.ValidationErrors
		require.ErrorAs(t, err, &validation)
		fields := make([]string, len(validation))
		for i, fe := range validation {
			fields[i] = fe.Field
		}
		assert.ElementsMatch(t, []string{"shipping.address_line_1", "shipping.city", "shipping.country"}, fields)
	})

	t.Run("ship to follows the same-as-billing flag", func(t *testing.T) {
		in := builder.NewCheckoutBuilder().BuildInput()
		in.Shipping = order.Address{Line1: "1 Other St", City: "Kowloon", Country: "Hong Kong"}
		assert.Equal(t, in.Billing, in.ShipTo())

		in.ShippingSameAsBilling = false
		assert.Equal(t, "Kowloon", in.ShipTo().City)
	})

	t.Run("bad phone and long notes", func(t *testing.T) {
		in := builder.NewCheckoutBuilder().With(func(b *builder.CheckoutBuilder) {
			b.Phone = "call me"
			b.Notes = strings.Repeat("n", order.MaxNotesLength+1)
		}).BuildInput()

		err := in.Validate()
		var validation order.ValidationErrors
		require.ErrorAs(t, err, &validation)
		assert.Len(t, validation, 2)
	})
}

// =============================================================================
// Lifecycle
// =============================================================================

func TestOrderLifecycle(t *testing.T) {
	rec := builder.NewRecordBuilder().BuildDomain()
	later := now.Add(time.Hour)

	t.Run("cancel from cancellable states", func(t *testing.T) {
		for _, status := range []order.Status{order.StatusPending, order.StatusConfirmed} {
			o := builder.PlacedOrder(uuid.New(), status, now, builder.OrderItemFor(rec, 2))
			require.True(t, o.CanBeCancelled())
			require.NoError(t, o.Cancel(later))
			assert.Equal(t, order.StatusCancelled, o.Status())
			assert.Equal(t, later, o.UpdatedAt())
		}
	})

	t.Run("cancel rejected once fulfilment started", func(t *testing.T) {
		for _, status := range []order.Status{order.StatusProcessing, order.StatusShipped, order.StatusDelivered, order.StatusCancelled} {
			o := builder.PlacedOrder(uuid.New(), status, now, builder.OrderItemFor(rec, 1))
			err := o.Cancel(later)
			require.ErrorIs(t, err, order.ErrInvalidTransition, "status %s", status)

			var transition *order.InvalidTransitionError
			require.ErrorAs(t, err, &transition)
			assert.Equal(t, status, transition.From)
			assert.Equal(t, order.StatusCancelled, transition.To)
			assert.Equal(t, status, o.Status())
		}
	})

	t.Run("advance stamps shipped and delivered times", func(t *testing.T) {
		o := builder.PlacedOrder(uuid.New(), order.StatusPending, now, builder.OrderItemFor(rec, 1))

		require.NoError(t, o.Advance(order.StatusConfirmed, now))
		assert.Nil(t, o.ShippedAt())

		require.NoError(t, o.Advance(order.StatusShipped, later))
		require.NotNil(t, o.ShippedAt())
		assert.Equal(t, later, *o.ShippedAt())

		delivered := later.Add(24 * time.Hour)
		require.NoError(t, o.Advance(order.StatusDelivered, delivered))
		require.NotNil(t, o.DeliveredAt())
		assert.Equal(t, delivered, *o.DeliveredAt())
		assert.Equal(t, later, *o.ShippedAt())
		assert.True(t, o.Status().IsTerminal())
	})

	t.Run("skipping straight to delivered stamps both", func(t *testing.T) {
		o := builder.PlacedOrder(uuid.New(), order.StatusConfirmed, now, builder.OrderItemFor(rec, 1))
		require.NoError(t, o.Advance(order.StatusDelivered, later))
		require.NotNil(t, o.ShippedAt())
		require.NotNil(t, o.DeliveredAt())
	})

	t.Run("no backwards or sideways moves", func(t *testing.T) {
		testCases := []struct {
			from order.Status
			to   order.Status
		}{
			{order.StatusShipped, order.StatusProcessing},
			{order.StatusConfirmed, order.StatusConfirmed},
			{order.StatusDelivered, order.StatusShipped},
			{order.StatusCancelled, order.StatusProcessing},
			{order.StatusPending, order.StatusCancelled},
		}
		for _, tc := range testCases {
			o := builder.PlacedOrder(uuid.New(), tc.from, now, builder.OrderItemFor(rec, 1))
			err := o.Advance(tc.to, later)
			assert.ErrorIs(t, err, order.ErrInvalidTransition, "%s -> %s", tc.from, tc.to)
			assert.Equal(t, tc.from, o.Status())
		}
	})

	t.Run("parse status", func(t *testing.T) {
		s, err := order.ParseStatus("shipped")
		require.NoError(t, err)
		assert.Equal(t, order.StatusShipped, s)

		_, err = order.ParseStatus("lost")
		assert.ErrorIs(t, err, order.ErrInvalidStatus)
	})
}

func TestOrderTotals(t *testing.T) {
	rec := builder.NewRecordBuilder().WithPrice(12000).BuildDomain()
	o := builder.PlacedOrder(uuid.New(), order.StatusPending, now, builder.OrderItemFor(rec, 3))

	assert.Equal(t, 3, o.TotalItems())
	assert.Equal(t, int64(36000), o.Items()[0].LineTotal())

	// Items hands out a copy.
	items := o.Items()
	items[0] = order.Item{}
	assert.Equal(t, 3, o.Items()[0].Quantity())
}
