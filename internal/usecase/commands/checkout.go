package commands

import (
	"context"
	"log/slog"
	"strings"

	"vinyl-record-house/internal/domain/cart"
	"vinyl-record-house/internal/domain/catalog"
	"vinyl-record-house/internal/domain/order"
	"vinyl-record-house/internal/infra"
	"vinyl-record-house/internal/pkg/clock"
	"vinyl-record-house/internal/pkg/errs"
	"vinyl-record-house/internal/usecase/queries"
	"vinyl-record-house/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPersistenceFailure    = errs.New("order could not be saved")
	ErrPaymentNotConfirmed   = errs.New("payment not confirmed")
	ErrPaymentAmountMismatch = errs.New("paid amount does not match order total")
	ErrPaymentTokenRequired  = errs.New("payment session token is required")
	ErrPaymentUnavailable    = errs.New("payment gateway unavailable")
	ErrPaymentAlreadyUsed    = errs.New("payment already used for another order")
)

type CheckoutRequest struct {
	UserID uuid.UUID
	Input  order.CheckoutInput
	// PaymentSessionToken is set only for the payment-confirmed variant.
	PaymentSessionToken string
}

type CheckoutCommands interface {
	// Checkout places a pay-later order; it starts pending.
	Checkout(ctx context.Context, req CheckoutRequest) (*queries.OrderView, error)
	// CheckoutPaid confirms the payment session first; the order starts confirmed.
	CheckoutPaid(ctx context.Context, req CheckoutRequest) (*queries.OrderView, error)
}

type checkoutUseCaseImpl struct {
	uow        shared.UnitOfWork
	payments   PaymentGateway
	cache      RecordCacheInvalidator
	metrics    CheckoutMetrics
	shipping   order.ShippingPolicy
	orderTopic string
	clock      clock.Clock
}

func NewCheckoutUseCase(
	uow shared.UnitOfWork,
	payments PaymentGateway,
	cache RecordCacheInvalidator,
	metrics CheckoutMetrics,
	shipping order.ShippingPolicy,
	orderTopic string,
	clk clock.Clock,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		uow:        uow,
		payments:   payments,
		cache:      cache,
		metrics:    metrics,
		shipping:   shipping,
		orderTopic: orderTopic,
		clock:      clk,
	}
}

func (uc *checkoutUseCaseImpl) Checkout(ctx context.Context, req CheckoutRequest) (*queries.OrderView, error) {
	o, err := uc.place(ctx, req, nil)
	uc.metrics.ObserveCheckout(CheckoutVariantPayLater, checkoutOutcome(err))
	if err != nil {
		return nil, err
	}
	return queries.OrderViewFrom(o), nil
}

func (uc *checkoutUseCaseImpl) CheckoutPaid(ctx context.Context, req CheckoutRequest) (*queries.OrderView, error) {
	confirmation, err := uc.confirmPayment(ctx, req.PaymentSessionToken)
	if err != nil {
		uc.metrics.ObserveCheckout(CheckoutVariantPaid, OutcomePayment)
		return nil, err
	}
	o, err := uc.place(ctx, req, confirmation)
	uc.metrics.ObserveCheckout(CheckoutVariantPaid, checkoutOutcome(err))
	if err != nil {
		if errs.Is(err, ErrPaymentAmountMismatch) {
			slog.Error("confirmed payment does not match order total",
				"user_id", req.UserID,
				"payment_reference", confirmation.Reference,
				"paid", confirmation.AmountTotal)
		}
		return nil, err
	}
	return queries.OrderViewFrom(o), nil
}

func (uc *checkoutUseCaseImpl) confirmPayment(ctx context.Context, token string) (*PaymentConfirmation, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrPaymentTokenRequired
	}
	confirmation, err := uc.payments.ConfirmPayment(ctx, token)
	if err != nil {
		if errs.Is(err, ErrPaymentNotConfirmed) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrPaymentUnavailable)
	}
	if !confirmation.Paid {
		return nil, ErrPaymentNotConfirmed
	}
	return confirmation, nil
}

// place runs the whole checkout in one transaction. Any error rolls back every write.
func (uc *checkoutUseCaseImpl) place(ctx context.Context, req CheckoutRequest, payment *PaymentConfirmation) (*order.Order, error) {
	// Form errors are reported before any lock is taken.
	input := req.Input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}
	owner, err := cart.UserOwner(req.UserID)
	if err != nil {
		return nil, err
	}

	var placed *order.Order
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		c, err := tx.Carts().GetOrCreate(ctx, tx.DB(), owner, now)
		if err != nil {
			return err
		}
		if c.IsEmpty() {
			return order.ErrEmptyCart
		}

		records, err := tx.Catalog().LockByIDs(ctx, tx.DB(), c.RecordIDs())
		if err != nil {
			return err
		}

		params := order.PlaceParams{
			UserID:  req.UserID,
			Input:   input,
			Cart:    c,
			Records: records,
			Policy:  uc.shipping,
			Now:     now,
		}
		if payment != nil {
			params.Paid = true
			params.Payment = payment.Reference
		}
		o, err := order.Place(params)
		if err != nil {
			return err
		}
		if payment != nil && payment.AmountTotal != o.TotalAmount() {
			return ErrPaymentAmountMismatch
		}

		seq, err := tx.Orders().Create(ctx, tx.DB(), o)
		if err != nil {
			if payment != nil && infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrPaymentAlreadyUsed
			}
			return err
		}
		o.AssignSeq(seq)

		// The guarded update is the authority on stock; the in-memory check above only
		// produces the friendlier error.
		for _, it := range o.Items() {
			if err := tx.Catalog().DecrementStock(ctx, tx.DB(), *it.RecordID(), it.Quantity()); err != nil {
				return err
			}
		}

		if err := tx.Carts().ClearItems(ctx, tx.DB(), c.ID()); err != nil {
			return err
		}

		job, err := newOrderJob(shared.NotificationKindOrderConfirmation, uc.orderTopic, o, now)
		if err != nil {
			return err
		}
		if err := tx.Notifications().Enqueue(ctx, tx.DB(), job); err != nil {
			return err
		}

		placed = o
		return nil
	})
	if err != nil {
		return nil, classifyWriteErr(err, "checkout failed", "user_id", req.UserID)
	}

	uc.invalidate(ctx, placed)
	slog.Info("order placed",
		"order_id", placed.ID(),
		"order_number", placed.OrderNumber(),
		"user_id", placed.UserID(),
		"status", placed.Status().String(),
		"total", placed.TotalAmount())
	return placed, nil
}

func (uc *checkoutUseCaseImpl) invalidate(ctx context.Context, o *order.Order) {
	if err := uc.cache.Invalidate(ctx, orderRecordIDs(o)...); err != nil {
		slog.Warn("record cache invalidation failed", "order_id", o.ID(), "error", err.Error())
	}
}

func orderRecordIDs(o *order.Order) []uuid.UUID {
	items := o.Items()
	ids := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		if it.RecordID() != nil {
			ids = append(ids, *it.RecordID())
		}
	}
	return ids
}

// classifyWriteErr passes recoverable business errors through and marks everything
// else as a persistence failure, logging it with its stack.
func classifyWriteErr(err error, msg string, attrs ...any) error {
	var stockErr *catalog.InsufficientStockError
	var validation order.ValidationErrors
	var transition *order.InvalidTransitionError
	switch {
	case errs.As(err, &stockErr),
		errs.As(err, &validation),
		errs.As(err, &transition),
		errs.Is(err, order.ErrEmptyCart),
		errs.Is(err, ErrPaymentAmountMismatch),
		errs.Is(err, ErrPaymentAlreadyUsed),
		errs.Is(err, ErrOrderNotFound),
		errs.Is(err, ErrStaffOnly),
		errs.Is(err, context.Canceled),
		errs.Is(err, context.DeadlineExceeded):
		return err
	}
	attrs = append(attrs, "error", err.Error(), "stack", errs.ExtractStackLines(err, 12))
	slog.Error(msg, attrs...)
	return errs.Mark(err, ErrPersistenceFailure)
}

func checkoutOutcome(err error) string {
	var stockErr *catalog.InsufficientStockError
	var validation order.ValidationErrors
	switch {
	case err == nil:
		return OutcomeSuccess
	case errs.Is(err, order.ErrEmptyCart):
		return OutcomeEmptyCart
	case errs.As(err, &stockErr):
		return OutcomeInsufficientStock
	case errs.As(err, &validation):
		return OutcomeValidation
	case errs.Is(err, ErrPaymentAmountMismatch), errs.Is(err, ErrPaymentAlreadyUsed):
		return OutcomePayment
	default:
		return OutcomeFailure
	}
}
