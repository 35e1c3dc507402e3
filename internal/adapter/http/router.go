package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/javohir/hamyon/internal/adapter/http/handler"
	"github.com/javohir/hamyon/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	TransactionHandler *handler.TransactionHandler
	StatsHandler       *handler.StatsHandler
	CategoryHandler    *handler.CategoryHandler
	SettingsHandler    *handler.SettingsHandler
	HealthHandler      *handler.HealthHandler
	Logger             zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", cfg.TransactionHandler.List)
			r.Post("/", cfg.TransactionHandler.Create)
			r.Delete("/{id}", cfg.TransactionHandler.Delete)
		})

		r.Get("/balance", cfg.StatsHandler.Balance)

		r.Route("/stats", func(r chi.Router) {
			r.Get("/summary", cfg.StatsHandler.Summary)
			r.Get("/categories", cfg.StatsHandler.Categories)
			r.Get("/monthly", cfg.StatsHandler.Monthly)
		})

		r.Get("/categories", cfg.CategoryHandler.List)

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", cfg.SettingsHandler.Get)
			r.Put("/", cfg.SettingsHandler.Update)
		})

		r.Post("/export", cfg.TransactionHandler.Export)
	})

	return r
}
