package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/go-users-tasks-api/internal/interface/http"
	"github.com/oksasatya/go-users-tasks-api/internal/interface/middleware"
	"github.com/oksasatya/go-users-tasks-api/pkg/helpers"
)

// AuthModule serves POST /api/login (rate limited per IP) and POST /api/logout.
type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
	RDB     *redis.Client
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager, rdb *redis.Client) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt, RDB: rdb}
}

func (m *AuthModule) Name() string { return "auth" }

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(m.RDB, 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/logout", middleware.Auth(m.JWT), m.Handler.Logout)
}
