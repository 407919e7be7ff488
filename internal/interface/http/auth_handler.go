package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-users-tasks-api/internal/application"
	"github.com/oksasatya/go-users-tasks-api/pkg/helpers"
	"github.com/oksasatya/go-users-tasks-api/pkg/response"
)

type AuthHandler struct {
	Svc     *application.Service
	Logger  *logrus.Logger
	Cookies *helpers.Manager
}

func NewAuthHandler(svc *application.Service, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

// Login POST /api/login. The token is returned in the body and also set as
// the access_token cookie for browser clients.
func (h *AuthHandler) Login(c *gin.Context) {
	var in application.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), in)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	h.Cookies.SetToken(c, res.Token, res.ExpiresAt)
	response.Success(c, http.StatusOK, res, "login successful", nil)
}

// Logout POST /api/logout clears the cookie. Tokens are stateless, so a
// bearer token stays valid until it expires.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, map[string]any{"logged_out": true}, "logged out", nil)
}
