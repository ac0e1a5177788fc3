package menu

import (
	"github.com/shopspring/decimal"

	"github.com/plateful/restaurant-admin/internal/models"
)

// NormalizePrice rounds to exactly two decimal places, half up. It is
// idempotent: normalizing twice yields the same value.
func NormalizePrice(p decimal.Decimal) decimal.Decimal {
	return p.Round(2)
}

// NormalizeExtra returns a copy of the extra map with every option
// price normalized to two decimals. Option prices are normalized
// independently of the dish price.
func NormalizeExtra(extra models.Extra) models.Extra {
	if extra == nil {
		return nil
	}
	out := make(models.Extra, len(extra))
	for name, opt := range extra {
		opt.Price = NormalizePrice(opt.Price)
		out[name] = opt
	}
	return out
}

// NormalizeDish normalizes the dish price and its extra options in
// place. Applied at write time and again on every read.
func NormalizeDish(d *models.Dish) {
	d.Price = NormalizePrice(d.Price)
	d.Extra = NormalizeExtra(d.Extra)
}
