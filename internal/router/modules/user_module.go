package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/go-users-tasks-api/internal/interface/http"
	"github.com/oksasatya/go-users-tasks-api/internal/interface/middleware"
	"github.com/oksasatya/go-users-tasks-api/pkg/helpers"
)

// UserModule wires the user routes.
// Public: POST /api/users
// Protected: GET /api/users, GET /api/users/search/:query, GET /api/users/lookup,
// GET|PUT|DELETE /api/users/:id, POST /api/users/:id/avatar
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
	RDB     *redis.Client
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager, rdb *redis.Client) *UserModule {
	return &UserModule{Handler: h, JWT: jwt, RDB: rdb}
}

func (m *UserModule) Name() string { return "users" }

func (m *UserModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(m.RDB, 20, time.Minute, middleware.KeyByIPAndPath(), nil)
	rg.POST("/users", signupLimiter, m.Handler.Create)

	auth := rg.Group("/users")
	auth.Use(
		middleware.Auth(m.JWT),
		middleware.RateLimit(m.RDB, 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.GET("", m.Handler.List)
		auth.GET("/search/:query", m.Handler.Search)
		auth.GET("/lookup", m.Handler.Lookup)
		auth.GET("/:id", m.Handler.GetOne)
		auth.PUT("/:id", m.Handler.Update)
		auth.DELETE("/:id", m.Handler.Delete)
		auth.POST("/:id/avatar", m.Handler.UploadAvatar)
	}
}
