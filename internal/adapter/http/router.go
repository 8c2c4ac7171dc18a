package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/finbook/finbook/internal/adapter/http/handler"
	"github.com/finbook/finbook/internal/adapter/http/middleware"
	"github.com/finbook/finbook/internal/infrastructure/auth"
	"github.com/finbook/finbook/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	LedgerHandler    *handler.LedgerHandler
	ExportHandler    *handler.ExportHandler
	AuthHandler      *handler.AuthHandler
	UserHandler      *handler.UserHandler
	HealthHandler    *handler.HealthHandler
	JWTManager       *auth.JWTManager
	IdempotencyStore usecase.IdempotencyStore
	RateLimiter      *middleware.RateLimiter
	Logger           zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and observability endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		r.Post("/auth/login", cfg.AuthHandler.Login)

		// Everything below requires a session
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWTManager))

			r.Get("/auth/me", cfg.AuthHandler.Me)

			r.Route("/entries", func(r chi.Router) {
				r.Get("/", cfg.LedgerHandler.List)
				r.Post("/", cfg.LedgerHandler.Create)
				r.Get("/export", cfg.ExportHandler.Download)
				r.Delete("/{id}", cfg.LedgerHandler.Delete)
			})

			r.Get("/summary", cfg.LedgerHandler.Summary)

			// Admin-only user management
			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Post("/", cfg.UserHandler.Create)
				r.Get("/", cfg.UserHandler.List)
				r.Get("/{id}", cfg.UserHandler.Get)
				r.Patch("/{id}", cfg.UserHandler.Update)
				r.Post("/{id}/credit", cfg.UserHandler.Credit)
			})
		})
	})

	return r
}
