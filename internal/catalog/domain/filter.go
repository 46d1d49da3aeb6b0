package domain

import "strings"

// PriceBand is one of the storefront's fixed price filter ranges.
type PriceBand string

const (
	BandAll        PriceBand = "all"
	BandUnder50K   PriceBand = "under-50k"
	Band50KTo100K  PriceBand = "50k-100k"
	Band100KTo250K PriceBand = "100k-250k"
	BandAbove500K  PriceBand = "above-500k"
)

// Contains reports whether price falls inside the band. The bands mirror
// the sidebar filter exactly, including the uncovered 250k-500k gap.
func (b PriceBand) Contains(price int64) bool {
	switch b {
	case BandUnder50K:
		return price < 50_000
	case Band50KTo100K:
		return price >= 50_000 && price <= 100_000
	case Band100KTo250K:
		return price >= 100_000 && price <= 250_000
	case BandAbove500K:
		return price > 500_000
	default:
		return true
	}
}

// SortOrder orders listings by creation date.
type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
)

// ListFilter narrows a catalog listing. Zero values match everything.
type ListFilter struct {
	Category string
	Price    PriceBand
	Search   string
}

// Matches applies the filter to one product.
func (f ListFilter) Matches(p *Product) bool {
	if f.Category != "" && f.Category != "all" &&
		!strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.Price != "" && !f.Price.Contains(p.Price) {
		return false
	}
	if f.Search != "" &&
		!strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
		return false
	}
	return true
}
