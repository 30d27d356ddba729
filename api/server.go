// ABOUTME: HTTP router configuration and middleware assembly
// ABOUTME: Wires CORS, request logging and rate limiting around registered handlers

package api

import (
	"net/http"
	"time"

	"linkpreview-api/api/middleware"
	"linkpreview-api/core/interfaces"

	"github.com/rs/cors"
)

// Config holds configuration for the API router
type Config struct {
	// Logger receives request logs; nil disables request logging
	Logger interfaces.Logger

	// RateLimit is the allowed requests per window per IP; 0 disables limiting
	RateLimit int

	// RateWindow is the rate limit window
	RateWindow time.Duration

	// AllowedOrigins configures CORS; empty allows all origins
	AllowedOrigins []string
}

// RouteRegistrar registers handler routes on a mux
type RouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux)
}

// NewRouter builds the HTTP handler chain: CORS first, then request
// logging, then rate limiting, then the mux with all registered routes.
func NewRouter(cfg Config, handlers ...RouteRegistrar) http.Handler {
	mux := http.NewServeMux()
	for _, h := range handlers {
		h.RegisterRoutes(mux)
	}

	var handler http.Handler = mux

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		handler = middleware.RateLimitMiddleware(limiter)(handler)
	}

	if cfg.Logger != nil {
		handler = middleware.RequestLoggingMiddleware(cfg.Logger)(handler)
	}

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	handler = cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler(handler)

	return handler
}
