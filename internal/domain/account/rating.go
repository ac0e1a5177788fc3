package account

import (
	"github.com/shopspring/decimal"

	"github.com/plateful/restaurant-admin/internal/httperr"
)

var maxRating = decimal.RequireFromString("9.9")

// ParseRating validates a submitted rating: it must parse as a decimal
// and, after rounding to one decimal place, fall within [0.0, 9.9].
func ParseRating(raw string) (decimal.Decimal, error) {
	r, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, httperr.ErrBusiness(httperr.CodeInvalidRating)
	}

	r = r.Round(1)
	if r.IsNegative() || r.GreaterThan(maxRating) {
		return decimal.Decimal{}, httperr.ErrBusiness(httperr.CodeInvalidRating)
	}
	return r, nil
}
