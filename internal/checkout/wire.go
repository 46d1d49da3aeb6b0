//go:build wireinject
// +build wireinject

package checkout

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	cartDomain "github.com/voltshop/storefront/internal/cart/domain"
	cartRepository "github.com/voltshop/storefront/internal/cart/repository"
	checkoutHTTP "github.com/voltshop/storefront/internal/checkout/delivery/http"
	"github.com/voltshop/storefront/internal/checkout/domain"
	"github.com/voltshop/storefront/internal/checkout/gateway"
	"github.com/voltshop/storefront/internal/checkout/repository"
	"github.com/voltshop/storefront/internal/checkout/usecase/command"
	"github.com/voltshop/storefront/internal/checkout/usecase/query"
	"github.com/voltshop/storefront/kafka"
)

// ProvideOrderRepository provides the Postgres-backed order repository.
func ProvideOrderRepository(db *gorm.DB) domain.OrderRepository {
	return repository.NewGormOrderRepository(db)
}

// ProvideCartRepository provides the cart repository checkout drains.
func ProvideCartRepository(client *redis.Client) cartDomain.CartRepository {
	return cartRepository.NewCartRepositoryWithTracing(
		cartRepository.NewRedisCartRepository(client, cartRepository.DefaultCartTTL),
	)
}

// ProvidePaymentGateway provides the simulated payment gateway.
func ProvidePaymentGateway() domain.PaymentGateway {
	return gateway.NewSimulatedGateway(gateway.DefaultProcessingDelay)
}

// ProvideEventPublisher adapts the optional Kafka publisher. A nil
// *kafka.Publisher must become a nil interface, not a typed nil.
func ProvideEventPublisher(publisher *kafka.Publisher) command.EventPublisher {
	if publisher == nil {
		return nil
	}
	return publisher
}

// Command Handlers Providers
func ProvidePlaceOrderHandler(
	carts cartDomain.CartRepository,
	orders domain.OrderRepository,
	paymentGateway domain.PaymentGateway,
	events command.EventPublisher,
) *command.PlaceOrderHandler {
	return command.NewPlaceOrderHandler(carts, orders, paymentGateway, events)
}

// Query Handlers Providers
func ProvideGetOrderHandler(orders domain.OrderRepository) *query.GetOrderHandler {
	return query.NewGetOrderHandler(orders)
}

func ProvideListOrdersHandler(orders domain.OrderRepository) *query.ListOrdersHandler {
	return query.NewListOrdersHandler(orders)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideOrderRepository,
	ProvideCartRepository,
	ProvidePaymentGateway,
	ProvideEventPublisher,
)

var CommandHandlerSet = wire.NewSet(
	ProvidePlaceOrderHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetOrderHandler,
	ProvideListOrdersHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHandler initializes the checkout handler with all dependencies
func InitializeHandler(db *gorm.DB, client *redis.Client, publisher *kafka.Publisher) (*checkoutHTTP.CheckoutHandler, error) {
	wire.Build(
		AllHandlersSet,
		checkoutHTTP.NewCheckoutHandlerWithDI,
	)
	return nil, nil
}
