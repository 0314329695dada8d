package commands

import (
	"bytes"
	"context"
	"log/slog"
	"sort"

	"vinyl-record-house/internal/domain/order"
	"vinyl-record-house/internal/infra"
	"vinyl-record-house/internal/pkg/clock"
	"vinyl-record-house/internal/pkg/errs"
	"vinyl-record-house/internal/usecase/queries"
	"vinyl-record-house/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errs.New("order not found")
	ErrStaffOnly     = errs.New("staff role required")
)

type OrderCommands interface {
	CancelOrder(ctx context.Context, orderID uuid.UUID, actor shared.Actor) (*queries.OrderView, error)
	AdvanceOrderStatus(ctx context.Context, orderID uuid.UUID, to order.Status, actor shared.Actor) (*queries.OrderView, error)
}

type orderUseCaseImpl struct {
	uow        shared.UnitOfWork
	cache      RecordCacheInvalidator
	metrics    CheckoutMetrics
	orderTopic string
	clock      clock.Clock
}

func NewOrderUseCase(uow shared.UnitOfWork, cache RecordCacheInvalidator, metrics CheckoutMetrics, orderTopic string, clk clock.Clock) OrderCommands {
	return &orderUseCaseImpl{
		uow:        uow,
		cache:      cache,
		metrics:    metrics,
		orderTopic: orderTopic,
		clock:      clk,
	}
}

// CancelOrder cancels a pending or confirmed order and puts back exactly the quantities
// it took. Records deleted since the purchase are skipped.
func (uc *orderUseCaseImpl) CancelOrder(ctx context.Context, orderID uuid.UUID, actor shared.Actor) (*queries.OrderView, error) {
	var cancelled *order.Order
	var restored []uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		restored = restored[:0]
		now := uc.clock.Now()

		o, err := uc.lockOrder(ctx, tx, orderID)
		if err != nil {
			return err
		}
		// A foreign order answers exactly like a missing one.
		if !actor.CanActFor(o.UserID()) {
			return ErrOrderNotFound
		}
		if err := o.Cancel(now); err != nil {
			return err
		}

		// Same lock order as checkout.
		items := o.Items()
		sort.Slice(items, func(i, j int) bool {
			return lessRecordID(items[i].RecordID(), items[j].RecordID())
		})
		for _, it := range items {
			if it.RecordID() == nil {
				continue
			}
			ok, err := tx.Catalog().RestoreStock(ctx, tx.DB(), *it.RecordID(), it.Quantity())
			if err != nil {
				return err
			}
			if !ok {
				slog.Warn("record gone, stock not restored",
					"order_id", o.ID(),
					"record_id", *it.RecordID(),
					"quantity", it.Quantity())
				continue
			}
			restored = append(restored, *it.RecordID())
		}

		if err := tx.Orders().UpdateStatus(ctx, tx.DB(), o); err != nil {
			return err
		}

		job, err := newOrderJob(shared.NotificationKindOrderCancelled, uc.orderTopic, o, now)
		if err != nil {
			return err
		}
		if err := tx.Notifications().Enqueue(ctx, tx.DB(), job); err != nil {
			return err
		}
		cancelled = o
		return nil
	})
	if err != nil {
		err = classifyWriteErr(err, "order cancellation failed", "order_id", orderID)
		uc.metrics.ObserveCancellation(cancelOutcome(err))
		return nil, err
	}
	uc.metrics.ObserveCancellation(OutcomeSuccess)

	if err := uc.cache.Invalidate(ctx, restored...); err != nil {
		slog.Warn("record cache invalidation failed", "order_id", orderID, "error", err.Error())
	}
	slog.Info("order cancelled", "order_id", orderID, "actor_id", actor.UserID, "restored_records", len(restored))
	return queries.OrderViewFrom(cancelled), nil
}

func (uc *orderUseCaseImpl) AdvanceOrderStatus(ctx context.Context, orderID uuid.UUID, to order.Status, actor shared.Actor) (*queries.OrderView, error) {
	if !actor.Role.IsStaff() {
		return nil, ErrStaffOnly
	}
	if to == order.StatusCancelled {
		return uc.CancelOrder(ctx, orderID, actor)
	}

	var advanced *order.Order
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		o, err := uc.lockOrder(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if err := o.Advance(to, now); err != nil {
			return err
		}
		if err := tx.Orders().UpdateStatus(ctx, tx.DB(), o); err != nil {
			return err
		}
		job, err := newOrderJob(shared.NotificationKindOrderStatus, uc.orderTopic, o, now)
		if err != nil {
			return err
		}
		if err := tx.Notifications().Enqueue(ctx, tx.DB(), job); err != nil {
			return err
		}
		advanced = o
		return nil
	})
	if err != nil {
		return nil, classifyWriteErr(err, "order status update failed", "order_id", orderID, "to", to.String())
	}
	return queries.OrderViewFrom(advanced), nil
}

func (uc *orderUseCaseImpl) lockOrder(ctx context.Context, tx shared.Tx, orderID uuid.UUID) (*order.Order, error) {
	o, err := tx.Orders().FindForUpdate(ctx, tx.DB(), orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

func lessRecordID(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return b != nil
	}
	return bytes.Compare(a[:], b[:]) < 0
}

func cancelOutcome(err error) string {
	var transition *order.InvalidTransitionError
	switch {
	case errs.As(err, &transition):
		return OutcomeInvalidTransition
	case errs.Is(err, ErrOrderNotFound):
		return OutcomeRejected
	default:
		return OutcomeFailure
	}
}
