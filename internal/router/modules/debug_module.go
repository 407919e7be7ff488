package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/go-users-tasks-api/internal/interface/http"
	"github.com/oksasatya/go-users-tasks-api/internal/interface/middleware"
)

// DebugModule exposes expvar (including the user cache hit/miss counters),
// rate-limited per IP. Private network clients are not limited.
type DebugModule struct {
	RDB *redis.Client
}

func NewDebugModule(rdb *redis.Client) *DebugModule { return &DebugModule{RDB: rdb} }

func (m *DebugModule) Name() string { return "debug" }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(m.RDB, 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}

// StatusModule serves GET /api/status.
type StatusModule struct {
	Handler *handlers.StatusHandler
}

func NewStatusModule(h *handlers.StatusHandler) *StatusModule { return &StatusModule{Handler: h} }

func (m *StatusModule) Name() string { return "status" }

func (m *StatusModule) Register(rg *gin.RouterGroup) {
	rg.GET("/status", m.Handler.Status)
}
