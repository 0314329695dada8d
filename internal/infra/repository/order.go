package repository

import (
	"context"

	"vinyl-record-house/internal/domain/order"
	"vinyl-record-house/internal/infra"
	"vinyl-record-house/internal/infra/repository/converter"
	sqlc "vinyl-record-house/internal/infra/sqlc/generated"
	"vinyl-record-house/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) (int64, error)
	CreateOrderItems(ctx context.Context, db sqlc.DBTX, arg []sqlc.CreateOrderItemsParams) (int64, error)
	GetOrderByOrderIDForUpdate(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) (sqlc.Orders, error)
	ListOrderItems(ctx context.Context, db sqlc.DBTX, orderID int64) ([]sqlc.OrderItems, error)
	UpdateOrderStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderStatusParams) error
	HasDeliveredPurchase(ctx context.Context, db sqlc.DBTX, arg sqlc.HasDeliveredPurchaseParams) (bool, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
}

func NewOrderRepository(queries OrderWriteQueries) *OrderRepository {
	return &OrderRepository{queries: queries}
}

// Create inserts the order and its item snapshots and returns the surrogate key.
func (r *OrderRepository) Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) (int64, error) {
	seq, err := r.queries.CreateOrder(ctx, tx, converter.OrderToCreateParams(o))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create order", err)
	}
	items := converter.OrderItemsToCopyParams(seq, o.Items())
	n, err := r.queries.CreateOrderItems(ctx, tx, items)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create order items", err)
	}
	if n != int64(len(items)) {
		return 0, infra.WrapRepoErr("order item count mismatch", nil, infra.KindDBFailure)
	}
	return seq, nil
}

func (r *OrderRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrderByOrderIDForUpdate(ctx, tx, orderID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}
	items, err := r.queries.ListOrderItems(ctx, tx, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	return converter.OrderFromRows(row, items), nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	if err := r.queries.UpdateOrderStatus(ctx, tx, converter.OrderToStatusParams(o)); err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	return nil
}

func (r *OrderRepository) HasDeliveredPurchase(ctx context.Context, tx sqlc.DBTX, userID, recordID uuid.UUID) (bool, error) {
	ok, err := r.queries.HasDeliveredPurchase(ctx, tx, sqlc.HasDeliveredPurchaseParams{
		UserID:        userID,
		VinylRecordID: pgconv.UUIDToPgtype(recordID),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check purchase history", err)
	}
	return ok, nil
}
