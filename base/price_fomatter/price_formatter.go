package pricefomatter

import (
	"github.com/shopspring/decimal"

	"github.com/mintora/goapi/domain"
)

// NativeDecimals is the decimal precision of the chain's native currency.
const NativeDecimals = 18

// DisplayPrice converts a base-unit amount to its display denomination,
// "1500000000000000000" becomes "1.5".
func DisplayPrice(amount domain.Amount) (string, error) {
	if amount == "" {
		amount = domain.ZeroAmount
	}
	d, err := decimal.NewFromString(string(amount))
	if err != nil {
		return "", domain.ErrInvalidNumberFormat
	}
	return d.Shift(-NativeDecimals).String(), nil
}
