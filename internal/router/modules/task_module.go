package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/go-users-tasks-api/internal/interface/http"
	"github.com/oksasatya/go-users-tasks-api/internal/interface/middleware"
	"github.com/oksasatya/go-users-tasks-api/pkg/helpers"
)

// TaskModule wires /api/tasks. Every route requires a token and acts on the
// caller's own tasks.
type TaskModule struct {
	Handler *handlers.TaskHandler
	JWT     *helpers.JWTManager
	RDB     *redis.Client
}

func NewTaskModule(h *handlers.TaskHandler, jwt *helpers.JWTManager, rdb *redis.Client) *TaskModule {
	return &TaskModule{Handler: h, JWT: jwt, RDB: rdb}
}

func (m *TaskModule) Name() string { return "tasks" }

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/tasks")
	auth.Use(
		middleware.Auth(m.JWT),
		middleware.RateLimit(m.RDB, 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.GET("", m.Handler.List)
		auth.POST("", m.Handler.Create)
		auth.GET("/search/:query", m.Handler.Search)
		auth.GET("/:id", m.Handler.GetOne)
		auth.PUT("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
	}
}
