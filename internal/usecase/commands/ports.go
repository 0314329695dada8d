package commands

import (
	"context"

	"github.com/google/uuid"
)

// PaymentConfirmation is what the gateway reports for a checkout session.
type PaymentConfirmation struct {
	Paid      bool
	Reference string
	// AmountTotal is in the smallest currency unit.
	AmountTotal int64
}

type PaymentGateway interface {
	ConfirmPayment(ctx context.Context, sessionToken string) (*PaymentConfirmation, error)
}

// RecordCacheInvalidator drops cached record views whose stock changed.
type RecordCacheInvalidator interface {
	Invalidate(ctx context.Context, ids ...uuid.UUID) error
}

type CheckoutMetrics interface {
	ObserveCheckout(variant, outcome string)
	ObserveCancellation(outcome string)
}

const (
	CheckoutVariantPayLater = "pay_later"
	CheckoutVariantPaid     = "paid"

	OutcomeSuccess           = "success"
	OutcomeEmptyCart         = "empty_cart"
	OutcomeInsufficientStock = "insufficient_stock"
	OutcomeValidation        = "validation"
	OutcomePayment           = "payment"
	OutcomeInvalidTransition = "invalid_transition"
	OutcomeRejected          = "rejected"
	OutcomeFailure           = "failure"
)
