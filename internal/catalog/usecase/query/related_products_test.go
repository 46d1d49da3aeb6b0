package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltshop/storefront/internal/catalog/domain"
)

func TestRelatedProductsExcludeTheProductItself(t *testing.T) {
	handler := NewRelatedProductsHandler(seededRepo(t))

	related, err := handler.Handle(RelatedProductsQuery{ProductID: "1"})
	require.NoError(t, err)

	require.Len(t, related, 1)
	assert.Equal(t, "3", related[0].ID)
	assert.Equal(t, "phone", related[0].Category)
}

func TestRelatedProductsRespectLimit(t *testing.T) {
	handler := NewRelatedProductsHandler(seededRepo(t))

	related, err := handler.Handle(RelatedProductsQuery{ProductID: "2", Limit: 1})
	require.NoError(t, err)

	require.Len(t, related, 1)
	assert.NotEqual(t, "2", related[0].ID)
}

func TestRelatedProductsUnknownProduct(t *testing.T) {
	handler := NewRelatedProductsHandler(seededRepo(t))

	_, err := handler.Handle(RelatedProductsQuery{ProductID: "999"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestGetProduct(t *testing.T) {
	handler := NewGetProductHandler(seededRepo(t))

	product, err := handler.Handle(GetProductQuery{ID: "4"})
	require.NoError(t, err)
	assert.Equal(t, "Asus Zenbook 14", product.Name)

	_, err = handler.Handle(GetProductQuery{ID: "999"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
