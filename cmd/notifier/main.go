package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/voltshop/storefront/kafka"
	"github.com/voltshop/storefront/pkg/logger"
	"github.com/voltshop/storefront/pkg/tracing"
)

// The notifier consumes order-placed events and sends the order
// confirmation. Delivery is a structured log line; a mail or SMS
// provider would slot in behind the same handler.

var notificationsSent = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "notifier_notifications_total",
		Help: "Total number of order confirmations processed",
	},
	[]string{"status"},
)

func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "notifier-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	logger.Logger.Info().
		Str("service", serviceName).
		Msg("Starting notifier service")

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

	prometheus.MustRegister(notificationsSent)

	brokers := strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ",")
	groupID := getEnv("KAFKA_GROUP_ID", "notifier")

	consumer, err := kafka.NewConsumer(brokers, groupID, []string{kafka.TopicOrderPlaced})
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka consumer")
	}
	defer consumer.Close()

	consumer.RegisterHandler(kafka.EventTypeOrderPlaced, handleOrderPlaced)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start Kafka consumer")
	}

	// Metrics endpoint
	metricsPort := getEnv("METRICS_PORT", "8090")
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"success":true,"message":"Notifier service is healthy"}`))
		})
		logger.Logger.Info().Str("port", metricsPort).Msg("Metrics server started")
		if err := http.ListenAndServe(":"+metricsPort, mux); err != nil {
			logger.Logger.Error().Err(err).Msg("Metrics server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down notifier...")
	cancel()
}

func handleOrderPlaced(ctx context.Context, event kafka.OrderPlacedEvent) error {
	logger.Info(ctx).
		Str("event_id", event.EventID).
		Str("order_id", event.OrderID).
		Str("session_id", event.SessionID).
		Int("items_count", event.ItemsCount).
		Int64("total", event.Total).
		Str("currency", event.Currency).
		Str("payment_method", event.PaymentMethod).
		Msg("Order confirmation sent")

	notificationsSent.WithLabelValues("sent").Inc()
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
