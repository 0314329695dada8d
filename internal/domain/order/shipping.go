package order

// ShippingPolicy charges FlatFee below FreeThreshold and nothing at or above it.
type ShippingPolicy struct {
	FlatFee       int64
	FreeThreshold int64
}

func NewShippingPolicy(flatFee, freeThreshold int64) (ShippingPolicy, error) {
	if flatFee < 0 || freeThreshold < 0 {
		return ShippingPolicy{}, ErrInvalidShippingPolicy
	}
	return ShippingPolicy{FlatFee: flatFee, FreeThreshold: freeThreshold}, nil
}

func (p ShippingPolicy) Cost(subtotal int64) int64 {
	if subtotal >= p.FreeThreshold {
		return 0
	}
	return p.FlatFee
}

type Totals struct {
	Subtotal     int64
	ShippingCost int64
	Total        int64
}

func (p ShippingPolicy) Totals(subtotal int64) Totals {
	shipping := p.Cost(subtotal)
	return Totals{Subtotal: subtotal, ShippingCost: shipping, Total: subtotal + shipping}
}
