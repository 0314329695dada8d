//go:build unit

package patch_test

import (
	"testing"

	"vinyl-record-house/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	rating := 4
	assert.Equal(t, 4, patch.Coalesce(&rating, 2))
	assert.Equal(t, 2, patch.Coalesce[int](nil, 2))
}

func TestText(t *testing.T) {
	cases := []struct {
		name     string
		sent     *string
		fallback string
		want     string
	}{
		{name: "absent keeps stored value", sent: nil, fallback: "Kowloon", want: "Kowloon"},
		{name: "sent value is trimmed", sent: strPtr("  Wan Chai "), fallback: "Kowloon", want: "Wan Chai"},
		{name: "blank clears the field", sent: strPtr("   "), fallback: "Kowloon", want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, patch.Text(tc.sent, tc.fallback))
		})
	}
}

func strPtr(s string) *string { return &s }
