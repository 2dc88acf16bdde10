package model

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalePriceIsJSONNumber(t *testing.T) {
	product := Product{ID: uuid.New(), ProductName: "Shoes", SalePrice: decimal.RequireFromString("49.90")}
	entry := WishlistEntry{ID: uuid.New(), ProductName: "Shoes", SalePrice: product.SalePrice}

	for _, value := range []interface{}{product, entry} {
		payload, err := json.Marshal(value)
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(payload, &decoded))
		assert.Equal(t, 49.9, decoded["salePrice"])
	}
}

func TestSalePriceDecodesFromNumber(t *testing.T) {
	var product Product
	require.NoError(t, json.Unmarshal([]byte(`{"productName":"Shoes","salePrice":19.99}`), &product))
	assert.True(t, decimal.RequireFromString("19.99").Equal(product.SalePrice))
}
