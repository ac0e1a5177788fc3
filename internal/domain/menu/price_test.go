package menu

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateful/restaurant-admin/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNormalizePrice(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"10", "10"},
		{"10.1", "10.1"},
		{"10.555", "10.56"},
		{"10.554", "10.55"},
		{"10.005", "10.01"},
		{"0.004", "0"},
	}

	for _, tc := range cases {
		got := NormalizePrice(dec(tc.in))
		assert.True(t, got.Equal(dec(tc.want)), "%s -> %s, want %s", tc.in, got, tc.want)
	}
}

func TestNormalizePriceIdempotent(t *testing.T) {
	once := NormalizePrice(dec("7.777"))
	twice := NormalizePrice(once)
	assert.True(t, once.Equal(twice))
}

func TestNormalizeExtra(t *testing.T) {
	extra := models.Extra{
		"cheese": {Description: "extra cheese", Price: dec("1.999")},
		"bacon":  {Description: "bacon strips", Price: dec("2.5")},
	}

	got := NormalizeExtra(extra)
	require.Len(t, got, 2)
	assert.True(t, got["cheese"].Price.Equal(dec("2")))
	assert.True(t, got["bacon"].Price.Equal(dec("2.5")))

	// Input map left untouched.
	assert.True(t, extra["cheese"].Price.Equal(dec("1.999")))
}

func TestNormalizeExtraNil(t *testing.T) {
	assert.Nil(t, NormalizeExtra(nil))
}

func TestNormalizeDish(t *testing.T) {
	d := &models.Dish{
		Price: dec("12.345"),
		Extra: models.Extra{"sauce": {Description: "hot sauce", Price: dec("0.505")}},
	}
	NormalizeDish(d)

	assert.True(t, d.Price.Equal(dec("12.35")))
	assert.True(t, d.Extra["sauce"].Price.Equal(dec("0.51")))
}
