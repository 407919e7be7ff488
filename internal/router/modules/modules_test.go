package modules

import (
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	handlers "github.com/oksasatya/go-users-tasks-api/internal/interface/http"
	"github.com/oksasatya/go-users-tasks-api/pkg/helpers"
)

func routes(r *gin.Engine) []string {
	var out []string
	for _, ri := range r.Routes() {
		out = append(out, ri.Method+" "+ri.Path)
	}
	sort.Strings(out)
	return out
}

func TestModulesRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwt := helpers.NewJWTManager("k", 0)
	logger := helpers.NewDiscardLogger()

	r := gin.New()
	api := r.Group("/api")
	for _, m := range []interface{ Register(*gin.RouterGroup) }{
		NewAuthModule(handlers.NewAuthHandler(nil, logger, "", false), jwt, nil),
		NewUserModule(handlers.NewUserHandler(nil, logger), jwt, nil),
		NewTaskModule(handlers.NewTaskHandler(nil, logger), jwt, nil),
		NewStatusModule(handlers.NewStatusHandler(nil, nil, logger)),
		NewDebugModule(nil),
	} {
		m.Register(api)
	}

	assert.Equal(t, []string{
		"DELETE /api/tasks/:id",
		"DELETE /api/users/:id",
		"GET /api/debug/vars",
		"GET /api/status",
		"GET /api/tasks",
		"GET /api/tasks/:id",
		"GET /api/tasks/search/:query",
		"GET /api/users",
		"GET /api/users/:id",
		"GET /api/users/lookup",
		"GET /api/users/search/:query",
		"POST /api/login",
		"POST /api/logout",
		"POST /api/tasks",
		"POST /api/users",
		"POST /api/users/:id/avatar",
		"PUT /api/tasks/:id",
		"PUT /api/users/:id",
	}, routes(r))
}
