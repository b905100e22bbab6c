package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/iho/voucherpost/internal/adapter/http/handler"
	"github.com/iho/voucherpost/internal/adapter/http/middleware"
	"github.com/iho/voucherpost/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	VoucherHandler   *handler.VoucherHandler
	WorkflowHandler  *handler.WorkflowHandler
	AccountHandler   *handler.AccountHandler
	ReferenceHandler *handler.ReferenceHandler
	BillHandler      *handler.BillHandler
	HealthHandler    *handler.HealthHandler

	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	RateLimiter      *middleware.RateLimiter
	HTTPMetrics      *middleware.HTTPMetrics
	// MetricsHandler serves /metrics when set.
	MetricsHandler http.Handler
	Logger         zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery(cfg.Logger))
	if cfg.HTTPMetrics != nil {
		r.Use(cfg.HTTPMetrics.Wrap)
	}
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL, cfg.Logger)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Vouchers
		r.Route("/vouchers", func(r chi.Router) {
			r.Post("/", cfg.VoucherHandler.Post)
			r.Get("/", cfg.VoucherHandler.List)
			r.Post("/forms", cfg.VoucherHandler.SubmitForm)
			r.Post("/build-lines", cfg.VoucherHandler.BuildLines)
			r.Post("/validate", cfg.VoucherHandler.Validate)
			r.Get("/{id}", cfg.VoucherHandler.Get)
			r.Get("/{id}/workflow", cfg.WorkflowHandler.Propose)
			r.Post("/{id}/forward", cfg.WorkflowHandler.Forward)
			r.Get("/{id}/approval", cfg.WorkflowHandler.ApprovalState)
			r.Post("/{id}/decisions", cfg.WorkflowHandler.Decide)
		})

		r.Get("/workflows", cfg.WorkflowHandler.List)

		// Reference data
		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{id}", cfg.AccountHandler.Get)
		})
		r.Get("/rates/resolve", cfg.ReferenceHandler.ResolveRate)
		r.Post("/tax/compute", cfg.ReferenceHandler.ComputeTax)
		r.Get("/tax-codes/{id}", cfg.ReferenceHandler.GetTaxCode)

		// Bills
		r.Get("/parties/{id}/bills", cfg.BillHandler.ListByParty)
		r.Post("/bills/allocate", cfg.BillHandler.Allocate)
	})

	return r
}
