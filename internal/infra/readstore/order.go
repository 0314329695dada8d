package readstore

import (
	"context"

	"vinyl-record-house/internal/domain/order"
	"vinyl-record-house/internal/infra"
	"vinyl-record-house/internal/infra/repository/converter"
	sqlc "vinyl-record-house/internal/infra/sqlc/generated"
	"vinyl-record-house/internal/pkg/pgconv"
	"vinyl-record-house/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderViewQueries interface {
	GetOrderByOrderID(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) (sqlc.Orders, error)
	ListOrderItems(ctx context.Context, db sqlc.DBTX, orderID int64) ([]sqlc.OrderItems, error)
	ListUserOrders(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUserOrdersParams) ([]sqlc.ListUserOrdersRow, error)
}

type OrderReadStore struct {
	queries OrderViewQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderViewQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{queries: queries, db: db}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrderByOrderID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order", err)
	}
	items, err := r.queries.ListOrderItems(ctx, r.db, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	return converter.OrderFromRows(row, items), nil
}

func (r *OrderReadStore) ListByUser(ctx context.Context, userID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.OrderListItem, error) {
	params := sqlc.ListUserOrdersParams{UserID: userID, Limit: limit}
	params.CursorCreatedAt, params.CursorID = keysetParams(after)

	rows, err := r.queries.ListUserOrders(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user orders", err)
	}
	result := make([]*queries.OrderListItem, len(rows))
	for i, row := range rows {
		result[i] = &queries.OrderListItem{
			ID:           row.OrderID,
			OrderNumber:  order.NumberFor(row.OrderID),
			Status:       row.Status,
			Subtotal:     row.Subtotal,
			ShippingCost: row.ShippingCost,
			TotalAmount:  row.TotalAmount,
			ItemCount:    int(row.ItemCount),
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}
