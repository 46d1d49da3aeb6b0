package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	"github.com/voltshop/storefront/internal/cart"
	cartHTTP "github.com/voltshop/storefront/internal/cart/delivery/http"
	"github.com/voltshop/storefront/internal/catalog"
	catalogHTTP "github.com/voltshop/storefront/internal/catalog/delivery/http"
	catalogDomain "github.com/voltshop/storefront/internal/catalog/domain"
	catalogRepository "github.com/voltshop/storefront/internal/catalog/repository"
	"github.com/voltshop/storefront/internal/checkout"
	checkoutHTTP "github.com/voltshop/storefront/internal/checkout/delivery/http"
	checkoutDomain "github.com/voltshop/storefront/internal/checkout/domain"
	"github.com/voltshop/storefront/internal/middleware"
	"github.com/voltshop/storefront/kafka"
	"github.com/voltshop/storefront/pkg/database"
	"github.com/voltshop/storefront/pkg/logger"
	"github.com/voltshop/storefront/pkg/session"
	"github.com/voltshop/storefront/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "storefront-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting storefront service")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "storefrontdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	if err := db.AutoMigrate(&catalogDomain.Product{}, &checkoutDomain.Order{}); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Seed the catalog with the built-in products
	products, err := catalogRepository.SeedProducts()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to load seed catalog")
	}
	if err := catalogRepository.NewGormProductRepository(db).Seed(products); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to seed catalog")
	}

	logger.Logger.Info().
		Int("seed_products", len(products)).
		Msg("Database initialized successfully")

	// Connect to Redis for cart storage
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()

	// Kafka publisher is optional; without brokers checkout still works,
	// it just emits no events.
	var publisher *kafka.Publisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		publisher, err = kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to connect to Kafka, events disabled")
			publisher = nil
		} else {
			defer publisher.Close()
			logger.Logger.Info().Str("brokers", brokers).Msg("Kafka publisher connected")
		}
	}

	// Guest session manager
	sessionSecret := getEnv("SESSION_SECRET", "storefront-dev-secret")
	sessionManager := session.NewManager(sessionSecret, 30*24*time.Hour)

	// Initialize handlers with Wire DI
	productHandler, err := catalog.InitializeHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize catalog handler")
	}

	cartHandler, err := cart.InitializeHandler(redisClient, db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize cart handler")
	}

	checkoutHandler, err := checkout.InitializeHandler(db, redisClient, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize checkout handler")
	}

	logger.Logger.Info().Msg("Handlers initialized")

	// Start HTTP server
	httpPort := getEnv("HTTP_PORT", "8080")
	srv := buildHTTPServer(productHandler, cartHandler, checkoutHandler, sessionManager, sqlDB, redisClient, httpPort)

	go func() {
		logger.Logger.Info().
			Str("port", httpPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Forced shutdown")
	}
}

func buildHTTPServer(
	productHandler *catalogHTTP.ProductHandler,
	cartHandler *cartHTTP.CartHandler,
	checkoutHandler *checkoutHTTP.CheckoutHandler,
	sessionManager *session.Manager,
	db *sql.DB,
	redisClient *redis.Client,
	port string,
) *http.Server {
	router := mux.NewRouter()

	// Register all middlewares using middleware registration system
	middleware.Register(router, middleware.DefaultConfig())

	// Every API request carries a guest session
	router.Use(sessionManager.Middleware)

	// Register routes
	productHandler.RegisterRoutes(router)
	cartHandler.RegisterRoutes(router)
	checkoutHandler.RegisterRoutes(router)

	// Health check endpoint
	registerHealthCheck(router, db, redisClient)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return &http.Server{
		Addr:    ":" + port,
		Handler: c.Handler(router),
	}
}

func registerHealthCheck(router *mux.Router, db *sql.DB, redisClient *redis.Client) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondHealth(w, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
		if err := redisClient.Ping(r.Context()).Err(); err != nil {
			respondHealth(w, http.StatusServiceUnavailable, "Redis unavailable")
			return
		}
		respondHealth(w, http.StatusOK, "Storefront service is healthy")
	}).Methods("GET")
}

func respondHealth(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	payload := map[string]interface{}{"success": status == http.StatusOK}
	if status == http.StatusOK {
		payload["message"] = message
	} else {
		payload["error"] = message
	}
	json.NewEncoder(w).Encode(payload)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
