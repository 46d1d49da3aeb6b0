package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/voltshop/storefront/internal/catalog/domain"
	"github.com/voltshop/storefront/internal/catalog/usecase/query"
	"github.com/voltshop/storefront/pkg/logger"
)

// ProductHandler handles HTTP requests for the catalog
type ProductHandler struct {
	listHandler    *query.ListProductsHandler
	getHandler     *query.GetProductHandler
	relatedHandler *query.RelatedProductsHandler

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

// NewProductHandler creates a new catalog handler (manual DI)
func NewProductHandler(repo domain.ProductRepository) *ProductHandler {
	return NewProductHandlerWithDI(
		query.NewListProductsHandler(repo),
		query.NewGetProductHandler(repo),
		query.NewRelatedProductsHandler(repo),
	)
}

// NewProductHandlerWithDI creates a new catalog handler using dependency
// injection. This is used by Wire.
func NewProductHandlerWithDI(
	listHandler *query.ListProductsHandler,
	getHandler *query.GetProductHandler,
	relatedHandler *query.RelatedProductsHandler,
) *ProductHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_requests_total",
			Help: "Total number of requests to catalog endpoints",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_request_duration_seconds",
			Help:    "Duration of catalog requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)

	return &ProductHandler{
		listHandler:    listHandler,
		getHandler:     getHandler,
		relatedHandler: relatedHandler,
		requestCounter: requestCounter,
		requestLatency: requestLatency,
	}
}

// Response is the standard JSON envelope
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// RegisterRoutes registers catalog routes on the router
func (h *ProductHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", h.ListProducts).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.GetProduct).Methods("GET")
	router.HandleFunc("/api/products/{id}/related", h.GetRelatedProducts).Methods("GET")
}

// ListProducts handles GET /api/products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	q := query.ListProductsQuery{
		Category: r.URL.Query().Get("category"),
		Price:    domain.PriceBand(r.URL.Query().Get("price")),
		Search:   r.URL.Query().Get("search"),
		Sort:     domain.SortOrder(r.URL.Query().Get("sort")),
		Page:     page,
		PerPage:  perPage,
	}

	result, err := h.listHandler.Handle(q)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list products")
		h.observe(r.Method, "/api/products", http.StatusInternalServerError, start)
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list products",
		})
		return
	}

	h.observe(r.Method, "/api/products", http.StatusOK, start)
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    result,
	})
}

// GetProduct handles GET /api/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	vars := mux.Vars(r)

	product, err := h.getHandler.Handle(query.GetProductQuery{ID: vars["id"]})
	if err != nil {
		status := http.StatusInternalServerError
		msg := "Failed to get product"
		if errors.Is(err, domain.ErrProductNotFound) {
			status = http.StatusNotFound
			msg = "Product not found"
		}
		h.observe(r.Method, "/api/products/{id}", status, start)
		respondJSON(w, status, Response{Success: false, Error: msg})
		return
	}

	h.observe(r.Method, "/api/products/{id}", http.StatusOK, start)
	respondJSON(w, http.StatusOK, Response{Success: true, Data: product})
}

// GetRelatedProducts handles GET /api/products/{id}/related
func (h *ProductHandler) GetRelatedProducts(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	vars := mux.Vars(r)
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	related, err := h.relatedHandler.Handle(query.RelatedProductsQuery{
		ProductID: vars["id"],
		Limit:     limit,
	})
	if err != nil {
		status := http.StatusInternalServerError
		msg := "Failed to get related products"
		if errors.Is(err, domain.ErrProductNotFound) {
			status = http.StatusNotFound
			msg = "Product not found"
		}
		h.observe(r.Method, "/api/products/{id}/related", status, start)
		respondJSON(w, status, Response{Success: false, Error: msg})
		return
	}

	h.observe(r.Method, "/api/products/{id}/related", http.StatusOK, start)
	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products": related,
			"total":    len(related),
		},
	})
}

func (h *ProductHandler) observe(method, endpoint string, status int, start time.Time) {
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
