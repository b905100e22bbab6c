package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Check reports whether a dependency is reachable.
type Check func(ctx context.Context) error

// HealthHandler handles health check requests.
type HealthHandler struct {
	names  []string
	checks map[string]Check
}

// NewHealthHandler creates a HealthHandler checking PostgreSQL and Redis.
// A nil redisClient skips the Redis check.
func NewHealthHandler(pool *pgxpool.Pool, redisClient *redis.Client) *HealthHandler {
	h := NewHealthHandlerWithChecks()
	if pool != nil {
		h.Add("postgres", pool.Ping)
	}
	if redisClient != nil {
		h.Add("redis", func(ctx context.Context) error { return redisClient.Ping(ctx).Err() })
	}
	return h
}

// NewHealthHandlerWithChecks creates a HealthHandler with no checks.
func NewHealthHandlerWithChecks() *HealthHandler {
	return &HealthHandler{checks: make(map[string]Check)}
}

// Add registers a named readiness check.
func (h *HealthHandler) Add(name string, check Check) {
	if _, ok := h.checks[name]; !ok {
		h.names = append(h.names, name)
	}
	h.checks[name] = check
}

// Liveness returns 200 if the service is alive.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness returns 200 if every dependency answers.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result := map[string]string{"status": "ready"}
	for _, name := range h.names {
		if err := h.checks[name](ctx); err != nil {
			writeError(w, http.StatusServiceUnavailable, name+" unhealthy", err.Error())
			return
		}
		result[name] = "ok"
	}

	writeJSON(w, http.StatusOK, result)
}
