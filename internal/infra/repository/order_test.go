//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"vinyl-record-house/internal/domain/order"
	"vinyl-record-house/internal/infra"
	"vinyl-record-house/internal/infra/repository"
	sqlc "vinyl-record-house/internal/infra/sqlc/generated"
	"vinyl-record-house/tests/common/builder"
	repositorymock "vinyl-record-house/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var orderNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// =============================================================================
// Create Order Tests
// =============================================================================

func TestOrderRepository_Create(t *testing.T) {
	ctx := context.Background()
	first := builder.NewRecordBuilder().WithPrice(20000).BuildDomain()
	second := builder.NewRecordBuilder().WithTitle("Blue Train").WithPrice(15000).BuildDomain()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockOrderWriteQueries, *order.Order, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: order and item snapshots are written",
			setupMock: func(mock *repositorymock.MockOrderWriteQueries, o *order.Order, tx sqlc.DBTX) {
				mock.EXPECT().CreateOrder(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateOrderParams) (int64, error) {
						assert.Equal(t, o.ID(), arg.OrderID)
						assert.Equal(t, "pending", arg.Status)
						assert.Equal(t, int64(55000), arg.TotalAmount)
						assert.False(t, arg.PaymentReference.Valid)
						return 42, nil
					})
				mock.EXPECT().CreateOrderItems(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, rows []sqlc.CreateOrderItemsParams) (int64, error) {
						require.Len(t, rows, 2)
						for _, r := range rows {
							assert.Equal(t, int64(42), r.OrderID)
							assert.True(t, r.VinylRecordID.Valid)
						}
						assert.Equal(t, int32(2), rows[0].Quantity)
						return int64(len(rows)), nil
					})
			},
		},
		{
			name: "error: order insert fails",
			setupMock: func(mock *repositorymock.MockOrderWriteQueries, o *order.Order, tx sqlc.DBTX) {
				mock.EXPECT().CreateOrder(ctx, tx, gomock.Any()).Return(int64(0), errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: copy wrote fewer items",
			setupMock: func(mock *repositorymock.MockOrderWriteQueries, o *order.Order, tx sqlc.DBTX) {
				mock.EXPECT().CreateOrder(ctx, tx, gomock.Any()).Return(int64(42), nil)
				mock.EXPECT().CreateOrderItems(ctx, tx, gomock.Any()).Return(int64(1), nil)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewOrderRepository(mockQueries)

			o := builder.PlacedOrder(uuid.New(), order.StatusPending, orderNow,
				builder.OrderItemFor(first, 2), builder.OrderItemFor(second, 1))

			tc.setupMock(mockQueries, o, mockDB)

			seq, actualError := repo.Create(ctx, mockDB, o)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Zero(t, seq)
			} else {
				assert.NoError(t, actualError)
				assert.Equal(t, int64(42), seq)
			}
		})
	}
}

// =============================================================================
// FindForUpdate Tests
// =============================================================================

func TestOrderRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()
	orderID := uuid.New()
	recordID := uuid.New()

	row := sqlc.Orders{
		ID:           7,
		OrderID:      orderID,
		UserID:       uuid.New(),
		Email:        "buyer@example.com",
		FirstName:    "Ada",
		LastName:     "Wong",
		City:         "Hong Kong",
		Country:      "Hong Kong",
		Status:       "confirmed",
		Subtotal:     20000,
		ShippingCost: 5000,
		TotalAmount:  25000,
		PaymentReference: pgtype.Text{
			String: "pi_1", Valid: true,
		},
		CreatedAt: pgtype.Timestamptz{Time: orderNow, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: orderNow, Valid: true},
	}
	items := []sqlc.OrderItems{
		{ID: 1, OrderID: 7, VinylRecordID: pgtype.UUID{Bytes: recordID, Valid: true}, Title: "Kind of Blue", Artist: "Miles Davis", ReleaseYear: 1959, UnitPrice: 20000, Quantity: 1},
		{ID: 2, OrderID: 7, Title: "Deleted Pressing", Artist: "Unknown", ReleaseYear: 1970, UnitPrice: 0, Quantity: 1},
	}

	t.Run("success: loads the order with its snapshots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOrderRepository(mockQueries)

		gomock.InOrder(
			mockQueries.EXPECT().GetOrderByOrderIDForUpdate(ctx, mockDB, orderID).Return(row, nil),
			mockQueries.EXPECT().ListOrderItems(ctx, mockDB, int64(7)).Return(items, nil),
		)

		o, err := repo.FindForUpdate(ctx, mockDB, orderID)
		require.NoError(t, err)
		assert.Equal(t, int64(7), o.Seq())
		assert.Equal(t, order.StatusConfirmed, o.Status())
		assert.Equal(t, "pi_1", o.PaymentReference())
		require.Len(t, o.Items(), 2)
		require.NotNil(t, o.Items()[0].RecordID())
		assert.Equal(t, recordID, *o.Items()[0].RecordID())
		assert.Nil(t, o.Items()[1].RecordID())
	})

	t.Run("error: order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		repo := repository.NewOrderRepository(mockQueries)

		mockQueries.EXPECT().GetOrderByOrderIDForUpdate(ctx, gomock.Any(), orderID).Return(sqlc.Orders{}, pgx.ErrNoRows)

		_, err := repo.FindForUpdate(ctx, &mockDBTX{}, orderID)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: item listing fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		repo := repository.NewOrderRepository(mockQueries)

		mockQueries.EXPECT().GetOrderByOrderIDForUpdate(ctx, gomock.Any(), orderID).Return(row, nil)
		mockQueries.EXPECT().ListOrderItems(ctx, gomock.Any(), int64(7)).Return(nil, errors.New("connection reset"))

		_, err := repo.FindForUpdate(ctx, &mockDBTX{}, orderID)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// UpdateStatus / HasDeliveredPurchase Tests
// =============================================================================

func TestOrderRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	rec := builder.NewRecordBuilder().BuildDomain()

	t.Run("success: shipped timestamp is persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		repo := repository.NewOrderRepository(mockQueries)

		o := builder.PlacedOrder(uuid.New(), order.StatusProcessing, orderNow, builder.OrderItemFor(rec, 1))
		shippedAt := orderNow.Add(24 * time.Hour)
		require.NoError(t, o.Advance(order.StatusShipped, shippedAt))

		mockQueries.EXPECT().UpdateOrderStatus(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateOrderStatusParams) error {
				assert.Equal(t, o.Seq(), arg.ID)
				assert.Equal(t, "shipped", arg.Status)
				assert.True(t, arg.ShippedAt.Valid)
				assert.True(t, arg.ShippedAt.Time.Equal(shippedAt))
				assert.False(t, arg.DeliveredAt.Valid)
				return nil
			})

		assert.NoError(t, repo.UpdateStatus(ctx, &mockDBTX{}, o))
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		repo := repository.NewOrderRepository(mockQueries)

		o := builder.PlacedOrder(uuid.New(), order.StatusPending, orderNow, builder.OrderItemFor(rec, 1))
		mockQueries.EXPECT().UpdateOrderStatus(ctx, gomock.Any(), gomock.Any()).Return(errors.New("database connection error"))

		err := repo.UpdateStatus(ctx, &mockDBTX{}, o)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestOrderRepository_HasDeliveredPurchase(t *testing.T) {
	ctx := context.Background()
	userID, recordID := uuid.New(), uuid.New()

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
	repo := repository.NewOrderRepository(mockQueries)

	mockQueries.EXPECT().HasDeliveredPurchase(ctx, gomock.Any(), sqlc.HasDeliveredPurchaseParams{
		UserID:        userID,
		VinylRecordID: pgtype.UUID{Bytes: recordID, Valid: true},
	}).Return(true, nil)

	ok, err := repo.HasDeliveredPurchase(ctx, &mockDBTX{}, userID, recordID)
	require.NoError(t, err)
	assert.True(t, ok)
}
