package repository

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/voltshop/storefront/internal/catalog/domain"
)

//go:embed seed/products.json
var seedData []byte

// seedRecord mirrors domain.Product with the date kept in the catalog
// file's YYYY-MM-DD form.
type seedRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Price       int64    `json:"price"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Badge       string   `json:"badge,omitempty"`
	CreatedAt   string   `json:"createdAt"`
	Description string   `json:"description"`
}

// SeedProducts parses the embedded catalog data.
func SeedProducts() ([]domain.Product, error) {
	var records []seedRecord
	if err := json.Unmarshal(seedData, &records); err != nil {
		return nil, fmt.Errorf("failed to parse catalog seed: %w", err)
	}

	products := make([]domain.Product, 0, len(records))
	for _, rec := range records {
		createdAt, err := time.Parse("2006-01-02", rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("bad createdAt for product %s: %w", rec.ID, err)
		}
		products = append(products, domain.Product{
			ID:          rec.ID,
			Name:        rec.Name,
			Brand:       rec.Brand,
			Price:       rec.Price,
			Image:       rec.Image,
			Images:      rec.Images,
			Category:    rec.Category,
			Rating:      rec.Rating,
			Reviews:     rec.Reviews,
			Badge:       rec.Badge,
			CreatedAt:   createdAt,
			Description: rec.Description,
		})
	}
	return products, nil
}
