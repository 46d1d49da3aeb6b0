package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/voltshop/storefront/internal/catalog/domain"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Product{})
}

func (r *GormProductRepository) FindByID(id string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindAll(filter domain.ListFilter, sort domain.SortOrder, limit, offset int) ([]domain.Product, error) {
	var products []domain.Product

	order := "created_at DESC"
	if sort == domain.SortOldest {
		order = "created_at ASC"
	}

	err := r.filtered(filter).
		Order(order).
		Limit(limit).Offset(offset).
		Find(&products).Error
	return products, err
}

func (r *GormProductRepository) CountAll(filter domain.ListFilter) (int64, error) {
	var count int64
	err := r.filtered(filter).Model(&domain.Product{}).Count(&count).Error
	return count, err
}

func (r *GormProductRepository) FindByCategory(category string, limit int, excludeID string) ([]domain.Product, error) {
	var products []domain.Product
	q := r.db.Where("LOWER(category) = LOWER(?)", category)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Order("created_at DESC").Limit(limit).Find(&products).Error
	return products, err
}

// Seed inserts the catalog records, skipping ids that already exist, so
// restarts are idempotent.
func (r *GormProductRepository) Seed(products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error
}

func (r *GormProductRepository) filtered(filter domain.ListFilter) *gorm.DB {
	q := r.db
	if filter.Category != "" && filter.Category != "all" {
		q = q.Where("LOWER(category) = LOWER(?)", filter.Category)
	}
	if filter.Search != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	switch filter.Price {
	case domain.BandUnder50K:
		q = q.Where("price < ?", 50_000)
	case domain.Band50KTo100K:
		q = q.Where("price >= ? AND price <= ?", 50_000, 100_000)
	case domain.Band100KTo250K:
		q = q.Where("price >= ? AND price <= ?", 100_000, 250_000)
	case domain.BandAbove500K:
		q = q.Where("price > ?", 500_000)
	}
	return q
}
