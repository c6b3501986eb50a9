package middleware

import (
	"VCS_Status_Monitor/internal/status-service/api/dto/response"
	"VCS_Status_Monitor/internal/status-service/sso"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	SSOUserContextKey = "SSOUserContextKey"
	TokenCookieName   = "sso_token"
)

var publicPrefixes = []string{"/health", "/auth/"}

type SSOMiddleware interface {
	Authenticate() gin.HandlerFunc
}

type ssoMiddleware struct {
	enabled  bool
	verifier sso.Verifier
	loginURL string
	logger   *zap.Logger
}

// Authenticate lets public paths through and requires a verified token everywhere else.
// Browsers are sent to the issuer's login page, API callers get a 401.
func (s *ssoMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !s.enabled || isPublic(path) {
			c.Next()
			return
		}
		token := ExtractToken(c)
		if token == "" {
			s.reject(c)
			return
		}
		user, err := s.verifier.Verify(c, token)
		if err != nil {
			s.logger.Debug("sso token rejected", zap.Error(err), zap.String("http_path", path))
			s.reject(c)
			return
		}
		c.Set(SSOUserContextKey, user)
		c.Next()
	}
}

func (s *ssoMiddleware) reject(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.Response{Message: "Not authenticated"})
		return
	}
	c.Redirect(http.StatusFound, s.loginURL)
	c.Abort()
}

func isPublic(path string) bool {
	for _, prefix := range publicPrefixes {
		if path == strings.TrimRight(prefix, "/") || strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// ExtractToken reads the session cookie, falling back to a bearer token.
func ExtractToken(c *gin.Context) string {
	if token, err := c.Cookie(TokenCookieName); err == nil && token != "" {
		return token
	}
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func UserFromContext(c *gin.Context) (sso.User, bool) {
	v, ok := c.Get(SSOUserContextKey)
	if !ok {
		return sso.User{}, false
	}
	user, ok := v.(sso.User)
	return user, ok
}

// NewSSOMiddleware returns a pass-through middleware when enabled is false.
func NewSSOMiddleware(enabled bool, verifier sso.Verifier, loginURL string, logger *zap.Logger) SSOMiddleware {
	return &ssoMiddleware{
		enabled:  enabled,
		verifier: verifier,
		loginURL: loginURL,
		logger:   logger,
	}
}
