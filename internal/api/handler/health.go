package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// HealthHandler serves the health probes.
type HealthHandler struct {
	rdb *redis.Client
}

func NewHealthHandler(rdb *redis.Client) *HealthHandler {
	return &HealthHandler{rdb: rdb}
}

// Liveness reports whether the process is alive.
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness reports whether the session store is reachable. The remote
// backend is deliberately excluded: its outages surface per-request, and the
// gateway can still serve sign-out and cached session views without it.
func (h *HealthHandler) Readiness(c echo.Context) error {
	if h.rdb != nil {
		pingCtx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := h.rdb.Ping(pingCtx).Err(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"redis":  err.Error(),
			})
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}
