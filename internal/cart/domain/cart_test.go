package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/voltshop/storefront/internal/catalog/domain"
)

func phone() catalog.Product {
	return catalog.Product{
		ID:     "1",
		Name:   "Iphone 15 ProMax",
		Brand:  "Apple",
		Price:  1_200_000,
		Images: []string{"a.webp", "b.webp"},
	}
}

func laptop() catalog.Product {
	return catalog.Product{
		ID:    "4",
		Name:  "Asus Zenbook 14",
		Brand: "Asus",
		Price: 600_000,
	}
}

func TestCartAddMergesSameProductAndColor(t *testing.T) {
	var cart Cart

	require.NoError(t, cart.Add(phone(), 1, "Carbon Black"))
	require.NoError(t, cart.Add(phone(), 2, "Carbon Black"))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, int64(3_600_000), cart.Items[0].LineTotal())
	assert.Equal(t, 3, cart.Count())
}

func TestCartAddKeepsColorVariantsSeparate(t *testing.T) {
	var cart Cart

	require.NoError(t, cart.Add(phone(), 1, "Carbon Black"))
	require.NoError(t, cart.Add(phone(), 1, "Robot White"))

	require.Len(t, cart.Items, 2)
	assert.Equal(t, "Carbon Black", cart.Items[0].SelectedColor)
	assert.Equal(t, "Robot White", cart.Items[1].SelectedColor)
	assert.Equal(t, 2, cart.Count())
}

func TestCartAddRejectsInvalidInput(t *testing.T) {
	var cart Cart

	assert.ErrorIs(t, cart.Add(phone(), 0, "Carbon Black"), ErrInvalidQuantity)
	assert.ErrorIs(t, cart.Add(phone(), -3, "Carbon Black"), ErrInvalidQuantity)
	assert.ErrorIs(t, cart.Add(phone(), 1, ""), ErrColorRequired)
	assert.True(t, cart.IsEmpty())
}

func TestCartRemoveDropsAllColorVariants(t *testing.T) {
	var cart Cart
	require.NoError(t, cart.Add(phone(), 1, "Carbon Black"))
	require.NoError(t, cart.Add(phone(), 2, "Robot White"))
	require.NoError(t, cart.Add(laptop(), 1, "Carbon Black"))

	cart.Remove("1")

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "4", cart.Items[0].ID)
}

func TestCartRemoveUnknownIDIsNoop(t *testing.T) {
	var cart Cart
	require.NoError(t, cart.Add(laptop(), 1, "Carbon Black"))

	cart.Remove("999")
	cart.Remove("999")

	require.Len(t, cart.Items, 1)
}

func TestCartUpdateQuantityAppliesDeltaToAllVariants(t *testing.T) {
	var cart Cart
	require.NoError(t, cart.Add(phone(), 1, "Carbon Black"))
	require.NoError(t, cart.Add(phone(), 2, "Robot White"))

	cart.UpdateQuantity("1", 1)

	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 3, cart.Items[1].Quantity)
}

func TestCartUpdateQuantityClampsAtMinimum(t *testing.T) {
	var cart Cart
	require.NoError(t, cart.Add(phone(), 2, "Carbon Black"))

	cart.UpdateQuantity("1", -5)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, MinQuantity, cart.Items[0].Quantity)

	// A decrement never deletes the line
	cart.UpdateQuantity("1", -1)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, MinQuantity, cart.Items[0].Quantity)
}

func TestCartSubtotalSumsLineTotals(t *testing.T) {
	var cart Cart
	require.NoError(t, cart.Add(phone(), 3, "Carbon Black"))
	require.NoError(t, cart.Add(laptop(), 1, "Robot White"))

	assert.Equal(t, int64(3_600_000+600_000), cart.Subtotal())
	assert.Equal(t, 4, cart.Count())
}

func TestEmptyCart(t *testing.T) {
	var cart Cart

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.Count())
	assert.Equal(t, int64(0), cart.Subtotal())
}
