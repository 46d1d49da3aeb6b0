package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Config holds middleware configuration
type Config struct {
	EnableLogging bool
	EnableTracing bool
}

// DefaultConfig returns default middleware configuration
func DefaultConfig() Config {
	return Config{
		EnableLogging: true,
		EnableTracing: true,
	}
}

// Register registers all middlewares to the router
func Register(router *mux.Router, config Config) {
	// Logging middleware (first in chain)
	if config.EnableLogging {
		router.Use(Logging)
	}

	// Tracing middleware (second in chain)
	if config.EnableTracing {
		router.Use(func(next http.Handler) http.Handler {
			return Tracing("http-request", next)
		})
	}
}
