//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"vinyl-record-house/internal/domain/order"
	"vinyl-record-house/internal/domain/user"
	"vinyl-record-house/internal/infra"
	"vinyl-record-house/internal/usecase/queries"
	"vinyl-record-house/internal/usecase/shared"
	"vinyl-record-house/tests/common/builder"
	queriesmock "vinyl-record-house/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOrderQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ownerID := uuid.New()
	rec := builder.NewRecordBuilder().WithPrice(20000).BuildDomain()

	setup := func(t *testing.T) (*queriesmock.MockOrderReadStore, queries.OrderQueries) {
		store := queriesmock.NewMockOrderReadStore(gomock.NewController(t))
		return store, queries.NewOrderQueries(store)
	}

	t.Run("owner sees the order", func(t *testing.T) {
		store, q := setup(t)
		o := builder.PlacedOrder(ownerID, order.StatusPending, now, builder.OrderItemFor(rec, 2))
		store.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)

		view, err := q.GetByID(ctx, shared.Actor{UserID: ownerID, Role: user.RoleCustomer}, o.ID())
		require.NoError(t, err)
		assert.Equal(t, o.OrderNumber(), view.OrderNumber)
		assert.Equal(t, 2, view.TotalItems)
		assert.True(t, view.CanBeCancelled)
		require.Len(t, view.Items, 1)
		assert.Equal(t, "Kind of Blue", view.Items[0].Title)
	})

	t.Run("foreign order looks missing", func(t *testing.T) {
		store, q := setup(t)
		o := builder.PlacedOrder(ownerID, order.StatusPending, now, builder.OrderItemFor(rec, 1))
		store.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)

		_, err := q.GetByID(ctx, shared.Actor{UserID: uuid.New(), Role: user.RoleCustomer}, o.ID())
		assert.ErrorIs(t, err, queries.ErrOrderNotFound)
	})

	t.Run("staff sees any order", func(t *testing.T) {
		store, q := setup(t)
		o := builder.PlacedOrder(ownerID, order.StatusShipped, now, builder.OrderItemFor(rec, 1))
		store.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)

		view, err := q.GetByID(ctx, shared.Actor{UserID: uuid.New(), Role: user.RoleAdmin}, o.ID())
		require.NoError(t, err)
		assert.False(t, view.CanBeCancelled)
	})

	t.Run("unknown id", func(t *testing.T) {
		store, q := setup(t)
		id := uuid.New()
		store.EXPECT().FindByID(gomock.Any(), id).Return(nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound))

		_, err := q.GetByID(ctx, shared.Actor{UserID: ownerID, Role: user.RoleCustomer}, id)
		assert.ErrorIs(t, err, queries.ErrOrderNotFound)
	})
}

func TestOrderQueries_ListMine(t *testing.T) {
	ctx := context.Background()
	store := queriesmock.NewMockOrderReadStore(gomock.NewController(t))
	q := queries.NewOrderQueries(store)
	userID := uuid.New()

	t.Run("lists only the caller's orders", func(t *testing.T) {
		rows := []*queries.OrderListItem{{ID: uuid.New(), OrderNumber: "3F2A9C1B", Status: "pending"}}
		store.EXPECT().ListByUser(gomock.Any(), userID, nil, int32(queries.DefaultListLimit+1)).Return(rows, nil)

		got, next, err := q.ListMine(ctx, shared.Actor{UserID: userID, Role: user.RoleCustomer}, nil, 0)
		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Nil(t, next)
	})

	t.Run("anonymous caller", func(t *testing.T) {
		_, _, err := q.ListMine(ctx, shared.Actor{}, nil, 10)
		assert.ErrorIs(t, err, queries.ErrOrderAccess)
	})
}

func TestOrderQueries_Invoice(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ownerID := uuid.New()
	owner := shared.Actor{UserID: ownerID, Role: user.RoleCustomer}
	rec := builder.NewRecordBuilder().WithPrice(20000).BuildDomain()

	setup := func(t *testing.T) (*queriesmock.MockOrderReadStore, queries.OrderQueries) {
		store := queriesmock.NewMockOrderReadStore(gomock.NewController(t))
		return store, queries.NewOrderQueries(store)
	}

	t.Run("numbers the invoice after the order", func(t *testing.T) {
		store, q := setup(t)
		o := builder.PlacedOrder(ownerID, order.StatusPending, now, builder.OrderItemFor(rec, 2))
		store.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)

		inv, err := q.Invoice(ctx, owner, o.ID())
		require.NoError(t, err)
		assert.Equal(t, "INV-"+o.OrderNumber(), inv.InvoiceNumber)
		assert.Equal(t, now, inv.IssuedAt)
		assert.False(t, inv.Paid)
		assert.False(t, inv.Void)
		assert.Equal(t, int64(40000), inv.Order.TotalAmount)
		require.Len(t, inv.Order.Items, 1)
	})

	t.Run("cancelled order gives a void invoice", func(t *testing.T) {
		store, q := setup(t)
		o := builder.PlacedOrder(ownerID, order.StatusCancelled, now, builder.OrderItemFor(rec, 1))
		store.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)

		inv, err := q.Invoice(ctx, owner, o.ID())
		require.NoError(t, err)
		assert.True(t, inv.Void)
	})

	t.Run("foreign order has no invoice", func(t *testing.T) {
		store, q := setup(t)
		o := builder.PlacedOrder(ownerID, order.StatusDelivered, now, builder.OrderItemFor(rec, 1))
		store.EXPECT().FindByID(gomock.Any(), o.ID()).Return(o, nil)

		_, err := q.Invoice(ctx, shared.Actor{UserID: uuid.New(), Role: user.RoleCustomer}, o.ID())
		assert.ErrorIs(t, err, queries.ErrOrderNotFound)
	})
}
