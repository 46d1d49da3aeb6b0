package query

import (
	"fmt"

	"github.com/voltshop/storefront/internal/catalog/domain"
)

// RelatedProductsQuery fetches products from the same category as the
// given product, excluding the product itself.
type RelatedProductsQuery struct {
	ProductID string
	Limit     int
}

// RelatedProductsHandler handles the related products query
type RelatedProductsHandler struct {
	repo domain.ProductRepository
}

// NewRelatedProductsHandler creates a new related products handler
func NewRelatedProductsHandler(repo domain.ProductRepository) *RelatedProductsHandler {
	return &RelatedProductsHandler{repo: repo}
}

// Handle executes the related products query
func (h *RelatedProductsHandler) Handle(q RelatedProductsQuery) ([]domain.Product, error) {
	if q.ProductID == "" {
		return nil, fmt.Errorf("product id is required")
	}
	if q.Limit <= 0 {
		q.Limit = 4
	}

	product, err := h.repo.FindByID(q.ProductID)
	if err != nil {
		return nil, err
	}

	related, err := h.repo.FindByCategory(product.Category, q.Limit, product.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find related products: %w", err)
	}
	return related, nil
}
