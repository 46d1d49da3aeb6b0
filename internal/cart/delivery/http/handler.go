package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/voltshop/storefront/internal/cart/domain"
	"github.com/voltshop/storefront/internal/cart/usecase/command"
	"github.com/voltshop/storefront/internal/cart/usecase/query"
	catalog "github.com/voltshop/storefront/internal/catalog/domain"
	"github.com/voltshop/storefront/pkg/logger"
	"github.com/voltshop/storefront/pkg/session"
)

// CartHandler handles HTTP requests for the cart using CQRS pattern
type CartHandler struct {
	addHandler      *command.AddItemHandler
	removeHandler   *command.RemoveItemHandler
	quantityHandler *command.UpdateQuantityHandler
	getHandler      *query.GetCartHandler

	requestLatency  *prometheus.SummaryVec
	mutationCounter *prometheus.CounterVec
}

// NewCartHandlerWithDI creates a new cart handler using dependency
// injection. This is used by Wire.
func NewCartHandlerWithDI(
	addHandler *command.AddItemHandler,
	removeHandler *command.RemoveItemHandler,
	quantityHandler *command.UpdateQuantityHandler,
	getHandler *query.GetCartHandler,
) *CartHandler {
	requestLatency := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: "cart_request_duration_summary",
			Help: "Summary of cart request durations with percentiles",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.99: 0.001,
			},
			MaxAge: 10 * time.Minute,
		},
		[]string{"method", "endpoint"},
	)

	mutationCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_mutations_total",
			Help: "Total number of cart mutations by operation and outcome",
		},
		[]string{"operation", "status"},
	)

	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(mutationCounter)

	return &CartHandler{
		addHandler:      addHandler,
		removeHandler:   removeHandler,
		quantityHandler: quantityHandler,
		getHandler:      getHandler,
		requestLatency:  requestLatency,
		mutationCounter: mutationCounter,
	}
}

// Response is the standard JSON envelope
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// RegisterRoutes registers cart routes on the router
func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/cart", h.GetCart).Methods("GET")
	router.HandleFunc("/api/cart/items", h.AddItem).Methods("POST")
	router.HandleFunc("/api/cart/items/{productId}", h.UpdateQuantity).Methods("PATCH")
	router.HandleFunc("/api/cart/items/{productId}", h.RemoveItem).Methods("DELETE")
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	defer h.observe("GET", "/api/cart", time.Now())

	view, err := h.getHandler.Handle(r.Context(), query.GetCartQuery{
		SessionID: session.FromContext(r.Context()),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to load cart")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to load cart",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: view})
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color"`
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	defer h.observe("POST", "/api/cart/items", time.Now())

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.mutationCounter.WithLabelValues("add", "rejected").Inc()
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cart, err := h.addHandler.Handle(r.Context(), command.AddItemCommand{
		SessionID: session.FromContext(r.Context()),
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Color:     req.Color,
	})
	if err != nil {
		h.respondMutationError(w, r, "add", err)
		return
	}

	h.mutationCounter.WithLabelValues("add", "ok").Inc()
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item added to cart",
		Data:    cartPayload(cart),
	})
}

type updateQuantityRequest struct {
	Delta int `json:"delta"`
}

// UpdateQuantity handles PATCH /api/cart/items/{productId}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	defer h.observe("PATCH", "/api/cart/items/{productId}", time.Now())

	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.mutationCounter.WithLabelValues("update_quantity", "rejected").Inc()
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cart, err := h.quantityHandler.Handle(r.Context(), command.UpdateQuantityCommand{
		SessionID: session.FromContext(r.Context()),
		ProductID: mux.Vars(r)["productId"],
		Delta:     req.Delta,
	})
	if err != nil {
		h.respondMutationError(w, r, "update_quantity", err)
		return
	}

	h.mutationCounter.WithLabelValues("update_quantity", "ok").Inc()
	respondJSON(w, http.StatusOK, Response{Success: true, Data: cartPayload(cart)})
}

// RemoveItem handles DELETE /api/cart/items/{productId}. It removes all
// color variants of the product.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	defer h.observe("DELETE", "/api/cart/items/{productId}", time.Now())

	cart, err := h.removeHandler.Handle(r.Context(), command.RemoveItemCommand{
		SessionID: session.FromContext(r.Context()),
		ProductID: mux.Vars(r)["productId"],
	})
	if err != nil {
		h.respondMutationError(w, r, "remove", err)
		return
	}

	h.mutationCounter.WithLabelValues("remove", "ok").Inc()
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item removed from cart",
		Data:    cartPayload(cart),
	})
}

func (h *CartHandler) respondMutationError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	status := http.StatusInternalServerError
	msg := "Cart operation failed"
	outcome := "error"

	switch {
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrColorRequired),
		errors.Is(err, domain.ErrUnknownColor):
		status = http.StatusBadRequest
		msg = err.Error()
		outcome = "rejected"
	case errors.Is(err, catalog.ErrProductNotFound):
		status = http.StatusNotFound
		msg = "Product not found"
		outcome = "rejected"
	default:
		logger.Error(r.Context()).Err(err).Str("operation", operation).Msg("Cart mutation failed")
	}

	h.mutationCounter.WithLabelValues(operation, outcome).Inc()
	respondJSON(w, status, Response{Success: false, Error: msg})
}

func (h *CartHandler) observe(method, endpoint string, start time.Time) {
	h.requestLatency.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
}

func cartPayload(cart domain.Cart) map[string]interface{} {
	items := cart.Items
	if items == nil {
		items = []domain.LineItem{}
	}
	return map[string]interface{}{
		"items":   items,
		"count":   cart.Count(),
		"summary": domain.Quote(cart),
	}
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to encode response")
	}
}
