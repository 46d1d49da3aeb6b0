package repository

import (
	"sort"
	"sync"

	"github.com/voltshop/storefront/internal/catalog/domain"
)

// MemoryProductRepository keeps the catalog in memory. Tests use it in
// place of the Postgres repository.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products []domain.Product
}

func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{}
}

func (r *MemoryProductRepository) FindByID(id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *MemoryProductRepository) FindAll(filter domain.ListFilter, sortOrder domain.SortOrder, limit, offset int) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := r.filtered(filter)
	sortByCreatedAt(matched, sortOrder)

	if offset >= len(matched) {
		return []domain.Product{}, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (r *MemoryProductRepository) CountAll(filter domain.ListFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.filtered(filter))), nil
}

func (r *MemoryProductRepository) FindByCategory(category string, limit int, excludeID string) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := r.filtered(domain.ListFilter{Category: category})
	sortByCreatedAt(matched, domain.SortNewest)

	out := make([]domain.Product, 0, limit)
	for _, p := range matched {
		if p.ID == excludeID {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *MemoryProductRepository) Seed(products []domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range products {
		exists := false
		for i := range r.products {
			if r.products[i].ID == p.ID {
				exists = true
				break
			}
		}
		if !exists {
			r.products = append(r.products, p)
		}
	}
	return nil
}

func (r *MemoryProductRepository) filtered(filter domain.ListFilter) []domain.Product {
	matched := make([]domain.Product, 0, len(r.products))
	for i := range r.products {
		if filter.Matches(&r.products[i]) {
			matched = append(matched, r.products[i])
		}
	}
	return matched
}

func sortByCreatedAt(products []domain.Product, order domain.SortOrder) {
	sort.SliceStable(products, func(i, j int) bool {
		if order == domain.SortOldest {
			return products[i].CreatedAt.Before(products[j].CreatedAt)
		}
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
}
