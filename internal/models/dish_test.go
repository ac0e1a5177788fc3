package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtraOptionWireFormat(t *testing.T) {
	opt := ExtraOption{
		Description: "sour cream",
		Price:       decimal.RequireFromString("0.5"),
	}

	// On the wire an option is a [description, price] pair.
	b, err := json.Marshal(opt)
	require.NoError(t, err)
	assert.JSONEq(t, `["sour cream", "0.5"]`, string(b))

	var got ExtraOption
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "sour cream", got.Description)
	assert.True(t, got.Price.Equal(opt.Price))
}

func TestExtraOptionAcceptsNumericPrice(t *testing.T) {
	var got ExtraOption
	require.NoError(t, json.Unmarshal([]byte(`["bacon", 2.5]`), &got))
	assert.True(t, got.Price.Equal(decimal.RequireFromString("2.5")))
}

func TestExtraOptionRejectsMalformed(t *testing.T) {
	var got ExtraOption
	assert.Error(t, json.Unmarshal([]byte(`{"description": "bacon"}`), &got))
	assert.Error(t, json.Unmarshal([]byte(`["bacon"]`), &got))
}

func TestExtraColumnRoundTrip(t *testing.T) {
	extra := Extra{
		"smetana": {Description: "sour cream", Price: decimal.RequireFromString("0.5")},
	}

	v, err := extra.Value()
	require.NoError(t, err)

	var got Extra
	require.NoError(t, got.Scan(v))
	require.Contains(t, got, "smetana")
	assert.Equal(t, "sour cream", got["smetana"].Description)
	assert.True(t, got["smetana"].Price.Equal(extra["smetana"].Price))
}

func TestExtraColumnNil(t *testing.T) {
	var extra Extra
	v, err := extra.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	var got Extra
	require.NoError(t, got.Scan(nil))
	assert.Nil(t, got)
}
