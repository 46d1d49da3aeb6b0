package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteEmptyCartOwesNothing(t *testing.T) {
	summary := Quote(Cart{})

	assert.Equal(t, Summary{}, summary)
}

func TestQuoteAddsFlatFees(t *testing.T) {
	var cart Cart
	require.NoError(t, cart.Add(phone(), 3, "Carbon Black"))

	summary := Quote(cart)

	assert.Equal(t, int64(3_600_000), summary.Subtotal)
	assert.Equal(t, ShippingFee, summary.Shipping)
	assert.Equal(t, VATFee, summary.VAT)
	assert.Equal(t, int64(3_613_000), summary.Total)
}

func TestQuoteFeesAreFlatRegardlessOfSize(t *testing.T) {
	var small, large Cart
	require.NoError(t, small.Add(laptop(), 1, "Carbon Black"))
	require.NoError(t, large.Add(phone(), 10, "Carbon Black"))
	require.NoError(t, large.Add(laptop(), 10, "Robot White"))

	assert.Equal(t, Quote(small).Shipping, Quote(large).Shipping)
	assert.Equal(t, Quote(small).VAT, Quote(large).VAT)
}
