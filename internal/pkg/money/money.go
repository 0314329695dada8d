// Package money converts between stored minor-unit integers and decimal display values.
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

const minorUnitExp = -2

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrNegativeAmount = errors.New("amount must not be negative")
	ErrFractionalCent = errors.New("amount has more than two decimal places")
)

func ToDecimal(minor int64) decimal.Decimal {
	return decimal.New(minor, minorUnitExp)
}

func Format(minor int64) string {
	return ToDecimal(minor).StringFixed(2)
}

// Parse reads a decimal string such as "30.50" into minor units.
func Parse(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if d.IsNegative() {
		return 0, ErrNegativeAmount
	}
	shifted := d.Shift(-minorUnitExp)
	if !shifted.Equal(shifted.Truncate(0)) {
		return 0, ErrFractionalCent
	}
	return shifted.IntPart(), nil
}
