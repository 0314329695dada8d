//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"vinyl-record-house/internal/pkg/errs"
	"vinyl-record-house/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor(t *testing.T) {
	t.Run("round trip keeps microseconds", func(t *testing.T) {
		ts := time.Date(2025, 3, 1, 12, 30, 45, 123456789, time.UTC)
		id := uuid.New()

		ks, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(ts, id))
		require.NoError(t, err)
		assert.True(t, ks.CreatedAt.Equal(ts.Truncate(time.Microsecond)))
		assert.Equal(t, id, ks.ID)
	})

	t.Run("empty cursor means first page", func(t *testing.T) {
		ks, err := queries.DecodeAfterCursor("")
		require.NoError(t, err)
		assert.Nil(t, ks)
	})

	invalid := []struct {
		name   string
		cursor string
	}{
		{"not base64", "%%%"},
		{"unknown version", base64.URLEncoding.EncodeToString([]byte("v2:1700000000000000-" + uuid.NewString()))},
		{"missing separator", base64.URLEncoding.EncodeToString([]byte("v1:1700000000000000"))},
		{"bad timestamp", base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString()))},
		{"bad uuid", base64.URLEncoding.EncodeToString([]byte("v1:1700000000000000-nope"))},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			_, err := queries.DecodeAfterCursor(tc.cursor)
			require.Error(t, err)
			assert.True(t, errs.Is(err, queries.ErrInvalidCursor))
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(-3))
	assert.Equal(t, 7, queries.ValidateLimit(7))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(queries.MaxListLimit+1))
}
