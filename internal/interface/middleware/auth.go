package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-users-tasks-api/pkg/helpers"
	"github.com/oksasatya/go-users-tasks-api/pkg/response"
)

// Context keys set by Auth.
const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
	CtxUserNameKey  = "userName"
)

// Auth accepts a login token from the Authorization header ("Bearer <token>")
// or, failing that, from the access_token cookie. On success it sets userID,
// userEmail and userName in the Gin context.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			token, _ = c.Cookie(helpers.AccessTokenCookie)
		}
		if token == "" {
			response.Error[any](c, http.StatusUnauthorized, "missing access token", nil)
			c.Abort()
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil || claims.Subject == "" {
			response.Error[any](c, http.StatusUnauthorized, "invalid access token", nil)
			c.Abort()
			return
		}

		c.Set(CtxUserIDKey, claims.Subject)
		c.Set(CtxUserEmailKey, claims.Email)
		c.Set(CtxUserNameKey, claims.Name)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}
