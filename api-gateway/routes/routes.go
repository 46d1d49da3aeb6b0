package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/voltshop/storefront/api-gateway/config"
	"github.com/voltshop/storefront/api-gateway/health"
	"github.com/voltshop/storefront/api-gateway/middleware"
	"github.com/voltshop/storefront/api-gateway/proxy"
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix      string
	ServiceName string
	Description string
}

// Routes holds all route definitions. Every storefront surface is
// public; sessions are guest cookies issued by the storefront itself.
var Routes = []RouteDefinition{
	{
		Prefix:      "/api/products",
		ServiceName: "storefront",
		Description: "Catalog browsing (list, detail, related)",
	},
	{
		Prefix:      "/api/cart",
		ServiceName: "storefront",
		Description: "Cart operations (view, add, update, remove)",
	},
	{
		Prefix:      "/api/checkout",
		ServiceName: "storefront",
		Description: "Checkout (place order)",
	},
	{
		Prefix:      "/api/orders",
		ServiceName: "storefront",
		Description: "Order history and lookup",
	},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig, cbManager *middleware.CircuitBreakerManager) {
	reverseProxy := proxy.NewReverseProxy(cfg)
	healthChecker := health.NewHealthChecker(cfg)

	// Gateway quick health check (no downstream checks)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(healthChecker.QuickCheck())
	})

	// Liveness probe (for Kubernetes)
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "alive",
		})
	})

	// Readiness probe (checks downstream instances)
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllInstances(ctx)

		statusCode := fiber.StatusOK
		if healthStatus.Status == "unhealthy" {
			statusCode = fiber.StatusServiceUnavailable
		}

		return c.Status(statusCode).JSON(healthStatus)
	})

	// Detailed instance health checks
	app.Get("/health/services", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		return c.JSON(healthChecker.CheckAllInstances(ctx))
	})

	// Circuit breaker stats
	app.Get("/stats/circuits", func(c *fiber.Ctx) error {
		return c.JSON(cbManager.GetAllStats())
	})

	// Load balancer stats
	app.Get("/stats/loadbalancers", func(c *fiber.Ctx) error {
		stats := make(map[string]interface{})
		for name, lb := range reverseProxy.GetLoadBalancers() {
			stats[name] = lb.GetStats()
		}
		return c.JSON(stats)
	})

	// API routes overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "VoltShop API Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	// Register all service routes
	for _, route := range Routes {
		registerServiceRoutes(app, route, reverseProxy)
	}
}

// registerServiceRoutes registers all HTTP methods for a service prefix
func registerServiceRoutes(app *fiber.App, route RouteDefinition, proxyHandler *proxy.ReverseProxy) {
	handler := func(c *fiber.Ctx) error {
		return proxyHandler.ProxyRequest(c, route.ServiceName)
	}

	group := app.Group(route.Prefix)
	group.All("/*", handler)

	// Also handle the exact prefix path (without /*)
	app.All(route.Prefix, handler)
}
