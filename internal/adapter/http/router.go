package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/clubops/clubledger/internal/adapter/http/handler"
	"github.com/clubops/clubledger/internal/adapter/http/middleware"
	"github.com/clubops/clubledger/internal/infrastructure/auth"
	"github.com/clubops/clubledger/internal/infrastructure/metrics"
	"github.com/clubops/clubledger/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AccountHandler *handler.AccountHandler
	LedgerHandler  *handler.LedgerHandler
	EntryHandler   *handler.EntryHandler
	ReportHandler  *handler.ReportHandler
	MemberHandler  *handler.MemberHandler
	AuthHandler    *handler.AuthHandler
	HealthHandler  *handler.HealthHandler

	IdempotencyStore usecase.IdempotencyStore
	RateLimiter      *middleware.RateLimiter
	Logger           *zerolog.Logger
	Metrics          *metrics.Metrics
	MetricsGatherer  prometheus.Gatherer

	JWTManager  *auth.JWTManager
	AuthEnabled bool
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery)

	if cfg.Logger != nil {
		r.Use(middleware.NewLoggingMiddleware(*cfg.Logger).Wrap)
	}

	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	if cfg.MetricsGatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(cfg.MetricsGatherer, promhttp.HandlerOpts{}))
	}

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.RateLimiter != nil {
			r.Use(cfg.RateLimiter.Limit)
		}

		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		if cfg.AuthHandler != nil {
			r.Post("/auth/login", cfg.AuthHandler.Login)
		}

		if cfg.AuthEnabled && cfg.JWTManager != nil {
			r.Group(func(r chi.Router) {
				r.Use(middleware.AuthMiddleware(cfg.JWTManager))

				r.Get("/auth/me", cfg.AuthHandler.GetCurrentUser)
				r.With(middleware.RequireAdmin).Post("/auth/users", cfg.AuthHandler.CreateUser)

				mountAPIRoutes(r, cfg, true)
			})
		} else {
			mountAPIRoutes(r, cfg, false)
		}
	})

	return r
}

func mountAPIRoutes(r chi.Router, cfg RouterConfig, authed bool) {
	mutating := func(r chi.Router) chi.Router {
		if authed {
			return r.With(middleware.RequireMutator)
		}
		return r
	}

	// Accounts and ledger mutations
	r.Route("/accounts", func(r chi.Router) {
		mutating(r).Post("/", cfg.AccountHandler.Create)
		r.Get("/", cfg.AccountHandler.List)
		r.Get("/{id}", cfg.AccountHandler.Get)

		mutating(r).Post("/{id}/mutations", cfg.LedgerHandler.Apply)
		mutating(r).Post("/{id}/credit", cfg.LedgerHandler.Credit)
		mutating(r).Post("/{id}/debit", cfg.LedgerHandler.Debit)
		mutating(r).Post("/{id}/transfer", cfg.LedgerHandler.Transfer)

		r.Get("/{id}/entries", cfg.EntryHandler.ListByAccount)
		r.Get("/{id}/reports/categories", cfg.ReportHandler.CategorySummary)
		r.Get("/{id}/consistency", cfg.LedgerHandler.CheckConsistency)
	})

	// Ledger history by correlation ID
	r.Get("/entries/{correlationID}", cfg.EntryHandler.GetByCorrelation)

	// Members
	r.Route("/members", func(r chi.Router) {
		mutating(r).Post("/", cfg.MemberHandler.Create)
		r.Get("/", cfg.MemberHandler.List)
		r.Get("/{id}", cfg.MemberHandler.Get)
		mutating(r).Patch("/{id}", cfg.MemberHandler.Update)
		mutating(r).Delete("/{id}", cfg.MemberHandler.Deactivate)
	})
}
