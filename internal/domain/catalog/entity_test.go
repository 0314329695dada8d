//go:build unit

package catalog_test

import (
	"testing"
	"time"

	"vinyl-record-house/internal/domain/catalog"
	"vinyl-record-house/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVinylRecordStock(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("reserve and restock", func(t *testing.T) {
		rec := builder.NewRecordBuilder().WithStock(5).BuildDomain()

		require.NoError(t, rec.Reserve(2, now))
		assert.Equal(t, 3, rec.StockQuantity())
		require.NoError(t, rec.Restock(2, now))
		assert.Equal(t, 5, rec.StockQuantity())
		assert.Equal(t, now, rec.UpdatedAt())
	})

	t.Run("reserve the last copy", func(t *testing.T) {
		rec := builder.NewRecordBuilder().WithStock(1).BuildDomain()

		require.NoError(t, rec.Reserve(1, now))
		assert.Equal(t, 0, rec.StockQuantity())
		assert.False(t, rec.IsInStock())
	})

	t.Run("reserve beyond stock leaves it unchanged", func(t *testing.T) {
		rec := builder.NewRecordBuilder().WithStock(1).BuildDomain()

		assert.True(t, rec.CanFulfil(1))
		assert.False(t, rec.CanFulfil(2))

		err := rec.Reserve(2, now)
		var stockErr *catalog.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, rec.ID(), stockErr.RecordID)
		assert.Contains(t, stockErr.Error(), "requested 2, available 1")
		assert.Equal(t, 1, rec.StockQuantity())
	})

	t.Run("unlisted record sells nothing", func(t *testing.T) {
		rec := builder.NewRecordBuilder().WithStock(3).Unlisted().BuildDomain()

		assert.Equal(t, 0, rec.Sellable())
		assert.False(t, rec.IsInStock())
		assert.False(t, rec.CanFulfil(1))
		assert.ErrorIs(t, rec.EnsureFulfillable(1), catalog.ErrInsufficientStock)
	})

	t.Run("non-positive quantities", func(t *testing.T) {
		rec := builder.NewRecordBuilder().BuildDomain()
		assert.ErrorIs(t, rec.Reserve(0, now), catalog.ErrInvalidQuantity)
		assert.ErrorIs(t, rec.Restock(-1, now), catalog.ErrInvalidQuantity)
	})
}

func TestCondition(t *testing.T) {
	assert.True(t, catalog.ConditionVeryGoodPlus.IsValid())
	assert.False(t, catalog.Condition("VG++").IsValid())
}
