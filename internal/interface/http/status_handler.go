package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-users-tasks-api/pkg/response"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a ping function, e.g. for a go-redis client.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

type StatusHandler struct {
	DB     Pinger
	Redis  Pinger // nil when the cache is disabled
	Logger *logrus.Logger
}

func NewStatusHandler(db, redis Pinger, logger *logrus.Logger) *StatusHandler {
	return &StatusHandler{DB: db, Redis: redis, Logger: logger}
}

// Status GET /api/status
func (h *StatusHandler) Status(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := map[string]string{"database": "ok", "redis": "disabled"}
	healthy := true
	if err := h.DB.Ping(ctx); err != nil {
		h.Logger.WithError(err).Warn("database ping failed")
		checks["database"] = "down"
		healthy = false
	}
	if h.Redis != nil {
		checks["redis"] = "ok"
		if err := h.Redis.Ping(ctx); err != nil {
			h.Logger.WithError(err).Warn("redis ping failed")
			checks["redis"] = "down"
			healthy = false
		}
	}

	if !healthy {
		response.Error[any](c, http.StatusServiceUnavailable, "degraded", checks)
		return
	}
	response.Success(c, http.StatusOK, checks, "ok", nil)
}
