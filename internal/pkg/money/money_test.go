//go:build unit

package money_test

import (
	"testing"

	"vinyl-record-house/internal/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "60.50", money.Format(6050))
	assert.Equal(t, "0.00", money.Format(0))
	assert.Equal(t, "0.05", money.Format(5))
}

func TestParse(t *testing.T) {
	cases := []struct {
		in    string
		want  int64
		errIs error
	}{
		{in: "30.50", want: 3050},
		{in: "12", want: 1200},
		{in: "0.01", want: 1},
		{in: "1.005", errIs: money.ErrFractionalCent},
		{in: "-1", errIs: money.ErrNegativeAmount},
		{in: "abc", errIs: money.ErrInvalidAmount},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := money.Parse(c.in)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}
