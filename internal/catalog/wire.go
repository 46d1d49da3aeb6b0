//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/voltshop/storefront/internal/catalog/domain"
	catalogHTTP "github.com/voltshop/storefront/internal/catalog/delivery/http"
	"github.com/voltshop/storefront/internal/catalog/repository"
	"github.com/voltshop/storefront/internal/catalog/usecase/query"
)

// ProvideProductRepository provides the catalog repository
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewGormProductRepository(db)
}

// Query Handlers Providers
func ProvideListProductsHandler(repo domain.ProductRepository) *query.ListProductsHandler {
	return query.NewListProductsHandler(repo)
}

func ProvideGetProductHandler(repo domain.ProductRepository) *query.GetProductHandler {
	return query.NewGetProductHandler(repo)
}

func ProvideRelatedProductsHandler(repo domain.ProductRepository) *query.RelatedProductsHandler {
	return query.NewRelatedProductsHandler(repo)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
)

var QueryHandlerSet = wire.NewSet(
	ProvideListProductsHandler,
	ProvideGetProductHandler,
	ProvideRelatedProductsHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	QueryHandlerSet,
)

// InitializeHandler initializes the catalog handler with all dependencies
func InitializeHandler(db *gorm.DB) (*catalogHTTP.ProductHandler, error) {
	wire.Build(
		AllHandlersSet,
		catalogHTTP.NewProductHandlerWithDI,
	)
	return nil, nil
}
