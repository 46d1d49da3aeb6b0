package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")

// Product represents a catalog product. The catalog is read-only: records
// are seeded at startup and never mutated by the storefront.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Brand       string    `json:"brand"`
	Price       int64     `json:"price" gorm:"not null"` // whole naira, no minor units
	Image       string    `json:"image"`
	Images      []string  `json:"images" gorm:"serializer:json"`
	Category    string    `json:"category" gorm:"index"`
	Rating      float64   `json:"rating"`
	Reviews     int       `json:"reviews"`
	Badge       string    `json:"badge,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	Description string    `json:"description"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// Colors lists the variants offered at add-to-cart time. The storefront
// derives them from the gallery: first image is Carbon Black, second
// (when present) is Robot White.
func (p *Product) Colors() []string {
	if len(p.Images) > 1 {
		return []string{"Carbon Black", "Robot White"}
	}
	return []string{"Carbon Black"}
}

// HasColor reports whether color is a selectable variant of the product.
func (p *Product) HasColor(color string) bool {
	for _, c := range p.Colors() {
		if c == color {
			return true
		}
	}
	return false
}

// ProductRepository defines the contract for catalog data access
type ProductRepository interface {
	FindByID(id string) (*Product, error)
	FindAll(filter ListFilter, sort SortOrder, limit, offset int) ([]Product, error)
	CountAll(filter ListFilter) (int64, error)
	FindByCategory(category string, limit int, excludeID string) ([]Product, error)
	Seed(products []Product) error
}
