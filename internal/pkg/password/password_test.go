//go:build unit

package password_test

import (
	"strings"
	"testing"

	"vinyl-record-house/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.HashPassword("crate-digger-42")
	require.NoError(t, err)
	assert.NotEqual(t, "crate-digger-42", hash)

	assert.NoError(t, password.ComparePassword(hash, "crate-digger-42"))
	assert.ErrorIs(t, password.ComparePassword(hash, "crate-digger-43"), password.ErrMismatch)
	assert.ErrorIs(t, password.ComparePassword(hash, ""), password.ErrEmpty)
}

func TestHashPasswordRejects(t *testing.T) {
	_, err := password.HashPassword("")
	assert.ErrorIs(t, err, password.ErrEmpty)

	_, err = password.HashPassword(strings.Repeat("a", password.MaxLength+1))
	assert.ErrorIs(t, err, password.ErrTooLong)

	_, err = password.HashPassword(strings.Repeat("a", password.MaxLength))
	assert.NoError(t, err)
}
