package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/ignatzorin/creative-network/internal/domain/capability"
)

// Check — одна проверка зависимости для health.
type Check func(ctx context.Context) error

// HealthHandler предоставляет endpoint для проверки здоровья сервиса.
type HealthHandler struct {
	checks   map[string]Check
	features capability.Set
	timeout  time.Duration
}

// NewHealthHandler проверяет базу и, если он настроен, redis.
func NewHealthHandler(db *sqlx.DB, rdb *redis.Client, features capability.Set) *HealthHandler {
	checks := map[string]Check{
		"database": db.PingContext,
	}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}
	return NewHealthHandlerWithChecks(checks, features)
}

func NewHealthHandlerWithChecks(checks map[string]Check, features capability.Set) *HealthHandler {
	return &HealthHandler{checks: checks, features: features, timeout: 5 * time.Second}
}

// HealthResponse представляет ответ health check.
type HealthResponse struct {
	Status           string               `json:"status"`
	Timestamp        time.Time            `json:"timestamp"`
	Checks           map[string]string    `json:"checks"`
	DisabledFeatures []capability.Feature `json:"disabledFeatures"`
}

// Health обрабатывает GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	checks := make(map[string]string, len(h.checks))
	status := "healthy"
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			checks[name] = "unhealthy: " + err.Error()
			status = "unhealthy"
			continue
		}
		checks[name] = "healthy"
	}

	statusCode := http.StatusOK
	if status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	disabled := h.features.Disabled()
	if disabled == nil {
		disabled = []capability.Feature{}
	}

	c.JSON(statusCode, HealthResponse{
		Status:           status,
		Timestamp:        time.Now(),
		Checks:           checks,
		DisabledFeatures: disabled,
	})
}
