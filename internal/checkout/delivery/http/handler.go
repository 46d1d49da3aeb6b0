package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/voltshop/storefront/internal/checkout/domain"
	"github.com/voltshop/storefront/internal/checkout/usecase/command"
	"github.com/voltshop/storefront/internal/checkout/usecase/query"
	"github.com/voltshop/storefront/pkg/logger"
	"github.com/voltshop/storefront/pkg/session"
)

// CheckoutHandler handles HTTP requests for checkout and order history
type CheckoutHandler struct {
	placeHandler *command.PlaceOrderHandler
	getHandler   *query.GetOrderHandler
	listHandler  *query.ListOrdersHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	ordersPlaced   prometheus.Counter
}

// NewCheckoutHandlerWithDI creates a new checkout handler using
// dependency injection. This is used by Wire.
func NewCheckoutHandlerWithDI(
	placeHandler *command.PlaceOrderHandler,
	getHandler *query.GetOrderHandler,
	listHandler *query.ListOrdersHandler,
) *CheckoutHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_requests_total",
			Help: "Total number of requests to checkout endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "checkout_request_duration_seconds",
			Help:    "Duration of checkout requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	ordersPlaced := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "checkout_orders_placed_total",
			Help: "Total number of successfully placed orders",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(ordersPlaced)

	return &CheckoutHandler{
		placeHandler:   placeHandler,
		getHandler:     getHandler,
		listHandler:    listHandler,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
		ordersPlaced:   ordersPlaced,
	}
}

// Response is the standard JSON envelope
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// RegisterRoutes registers checkout routes on the router
func (h *CheckoutHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/checkout", h.PlaceOrder).Methods("POST")
	router.HandleFunc("/api/orders", h.ListOrders).Methods("GET")
	router.HandleFunc("/api/orders/{id}", h.GetOrder).Methods("GET")
}

type placeOrderRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// PlaceOrder handles POST /api/checkout
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	// An empty body defaults the payment method; malformed JSON is
	// still rejected.
	var req placeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.observe(r.Method, "/api/checkout", http.StatusBadRequest, start)
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	order, err := h.placeHandler.Handle(r.Context(), command.PlaceOrderCommand{
		SessionID:     session.FromContext(r.Context()),
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		status := http.StatusInternalServerError
		msg := "Checkout failed"
		switch {
		case errors.Is(err, domain.ErrEmptyCart):
			status = http.StatusConflict
			msg = "Cart is empty"
		case errors.Is(err, domain.ErrPaymentDeclined):
			status = http.StatusPaymentRequired
			msg = "Payment declined"
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			// Client went away mid-authorization; nothing was charged.
			status = 499
			msg = "Checkout cancelled"
		default:
			logger.Error(r.Context()).Err(err).Msg("Checkout failed")
		}
		h.observe(r.Method, "/api/checkout", status, start)
		respondJSON(w, status, Response{Success: false, Error: msg})
		return
	}

	h.ordersPlaced.Inc()
	h.observe(r.Method, "/api/checkout", http.StatusCreated, start)
	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Payment successful, order placed",
		Data:    order,
	})
}

// ListOrders handles GET /api/orders
func (h *CheckoutHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	result, err := h.listHandler.Handle(query.ListOrdersQuery{
		SessionID: session.FromContext(r.Context()),
		Status:    r.URL.Query().Get("status"),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list orders")
		h.observe(r.Method, "/api/orders", http.StatusInternalServerError, start)
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list orders",
		})
		return
	}

	h.observe(r.Method, "/api/orders", http.StatusOK, start)
	respondJSON(w, http.StatusOK, Response{Success: true, Data: result})
}

// GetOrder handles GET /api/orders/{id}
func (h *CheckoutHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	order, err := h.getHandler.Handle(query.GetOrderQuery{
		ID:        mux.Vars(r)["id"],
		SessionID: session.FromContext(r.Context()),
	})
	if err != nil {
		status := http.StatusInternalServerError
		msg := "Failed to get order"
		if errors.Is(err, domain.ErrOrderNotFound) {
			status = http.StatusNotFound
			msg = "Order not found"
		}
		h.observe(r.Method, "/api/orders/{id}", status, start)
		respondJSON(w, status, Response{Success: false, Error: msg})
		return
	}

	h.observe(r.Method, "/api/orders/{id}", http.StatusOK, start)
	respondJSON(w, http.StatusOK, Response{Success: true, Data: order})
}

func (h *CheckoutHandler) observe(method, endpoint string, status int, start time.Time) {
	h.requestCounter.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	h.requestLatency.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode response")
	}
}
