package query

import (
	"fmt"

	"github.com/voltshop/storefront/internal/catalog/domain"
)

// DefaultPageSize matches the six-card grid on the listing page.
const DefaultPageSize = 6

// ListProductsQuery represents the query to list catalog products
type ListProductsQuery struct {
	Category string
	Price    domain.PriceBand
	Search   string
	Sort     domain.SortOrder
	Page     int
	PerPage  int
}

// ProductPage is one page of a filtered, sorted listing.
type ProductPage struct {
	Products   []domain.Product `json:"products"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PerPage    int              `json:"per_page"`
	TotalPages int              `json:"total_pages"`
}

// ListProductsHandler handles the list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(q ListProductsQuery) (*ProductPage, error) {
	if q.PerPage <= 0 {
		q.PerPage = DefaultPageSize
	}
	if q.Sort != domain.SortOldest {
		q.Sort = domain.SortNewest
	}

	filter := domain.ListFilter{
		Category: q.Category,
		Price:    q.Price,
		Search:   q.Search,
	}

	total, err := h.repo.CountAll(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	totalPages := int((total + int64(q.PerPage) - 1) / int64(q.PerPage))

	// Out-of-range pages clamp to the nearest valid page instead of
	// returning an empty result.
	page := q.Page
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	offset := (page - 1) * q.PerPage
	products, err := h.repo.FindAll(filter, q.Sort, q.PerPage, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return &ProductPage{
		Products:   products,
		Total:      total,
		Page:       page,
		PerPage:    q.PerPage,
		TotalPages: totalPages,
	}, nil
}
