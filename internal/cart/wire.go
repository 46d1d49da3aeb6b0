//go:build wireinject
// +build wireinject

package cart

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	cartHTTP "github.com/voltshop/storefront/internal/cart/delivery/http"
	"github.com/voltshop/storefront/internal/cart/domain"
	"github.com/voltshop/storefront/internal/cart/repository"
	"github.com/voltshop/storefront/internal/cart/usecase/command"
	"github.com/voltshop/storefront/internal/cart/usecase/query"
	catalogDomain "github.com/voltshop/storefront/internal/catalog/domain"
	catalogRepository "github.com/voltshop/storefront/internal/catalog/repository"
)

// ProvideCartRepository provides the Redis-backed cart repository with
// tracing.
func ProvideCartRepository(client *redis.Client) domain.CartRepository {
	return repository.NewCartRepositoryWithTracing(
		repository.NewRedisCartRepository(client, repository.DefaultCartTTL),
	)
}

// ProvideProductRepository provides the catalog repository the cart uses
// to resolve products at add time.
func ProvideProductRepository(db *gorm.DB) catalogDomain.ProductRepository {
	return catalogRepository.NewGormProductRepository(db)
}

// Command Handlers Providers
func ProvideAddItemHandler(carts domain.CartRepository, products catalogDomain.ProductRepository) *command.AddItemHandler {
	return command.NewAddItemHandler(carts, products)
}

func ProvideRemoveItemHandler(carts domain.CartRepository) *command.RemoveItemHandler {
	return command.NewRemoveItemHandler(carts)
}

func ProvideUpdateQuantityHandler(carts domain.CartRepository) *command.UpdateQuantityHandler {
	return command.NewUpdateQuantityHandler(carts)
}

// Query Handlers Providers
func ProvideGetCartHandler(carts domain.CartRepository) *query.GetCartHandler {
	return query.NewGetCartHandler(carts)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCartRepository,
	ProvideProductRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideAddItemHandler,
	ProvideRemoveItemHandler,
	ProvideUpdateQuantityHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetCartHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHandler initializes the cart handler with all dependencies
func InitializeHandler(client *redis.Client, db *gorm.DB) (*cartHTTP.CartHandler, error) {
	wire.Build(
		AllHandlersSet,
		cartHTTP.NewCartHandlerWithDI,
	)
	return nil, nil
}
