package handler

import (
	"VCS_Status_Monitor/internal/status-service/api/middleware"
	"VCS_Status_Monitor/internal/status-service/sso"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler interface {
	Callback() gin.HandlerFunc
	Logout() gin.HandlerFunc
}

type authHandler struct {
	client sso.Client
	logger Logger
}

// Callback exchanges the authorization code and stores the access token in the session cookie.
// Any failure sends the browser back to the login page.
func (a *authHandler) Callback() gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Query("code")
		if code == "" {
			c.Redirect(http.StatusFound, a.client.LoginURL())
			return
		}
		token, err := a.client.ExchangeCode(c, code)
		if err != nil {
			err = fmt.Errorf("AuthHandler.Callback: %w", err)
			a.logger.LoggingError(c, err, "failed to exchange authorization code", zap.WarnLevel)
			c.Redirect(http.StatusFound, a.client.LoginURL())
			return
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(middleware.TokenCookieName, token.AccessToken, token.MaxAge(), "/", "", true, true)
		c.Redirect(http.StatusFound, "/")
	}
}

func (a *authHandler) Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(middleware.TokenCookieName, "", -1, "/", "", true, true)
		c.Redirect(http.StatusFound, a.client.LogoutURL())
	}
}

func NewAuthHandler(client sso.Client, logger Logger) AuthHandler {
	return &authHandler{
		client: client,
		logger: logger,
	}
}
