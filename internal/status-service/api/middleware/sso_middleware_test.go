package middleware

import (
	apperrors "VCS_Status_Monitor/internal/status-service/errors"
	mocksso "VCS_Status_Monitor/internal/status-service/mocks/sso"
	"VCS_Status_Monitor/internal/status-service/sso"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const loginURL = "https://login.example.com/authorize?client_id=status"

func TestSSOMiddleware_Authenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	user := sso.User{Subject: "u-1", Name: "Sara"}

	testCases := []struct {
		name           string
		enabled        bool
		path           string
		setupRequest   func(req *http.Request)
		setupMocks     func(verifier *mocksso.MockVerifier)
		expectedStatus int
		expectedUser   bool
		expectedTarget string
	}{
		{
			name:           "Disabled gate passes everything",
			enabled:        false,
			path:           "/api/status",
			setupRequest:   func(req *http.Request) {},
			setupMocks:     func(verifier *mocksso.MockVerifier) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Public health path",
			enabled:        true,
			path:           "/health",
			setupRequest:   func(req *http.Request) {},
			setupMocks:     func(verifier *mocksso.MockVerifier) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Public auth path",
			enabled:        true,
			path:           "/auth/callback",
			setupRequest:   func(req *http.Request) {},
			setupMocks:     func(verifier *mocksso.MockVerifier) {},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Browser without token is redirected to login",
			enabled:        true,
			path:           "/",
			setupRequest:   func(req *http.Request) {},
			setupMocks:     func(verifier *mocksso.MockVerifier) {},
			expectedStatus: http.StatusFound,
			expectedTarget: loginURL,
		},
		{
			name:           "API without token gets 401",
			enabled:        true,
			path:           "/api/status",
			setupRequest:   func(req *http.Request) {},
			setupMocks:     func(verifier *mocksso.MockVerifier) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:    "Valid cookie token",
			enabled: true,
			path:    "/",
			setupRequest: func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: "cookie-token"})
			},
			setupMocks: func(verifier *mocksso.MockVerifier) {
				verifier.EXPECT().Verify(gomock.Any(), "cookie-token").Return(user, nil)
			},
			expectedStatus: http.StatusOK,
			expectedUser:   true,
		},
		{
			name:    "Valid bearer token",
			enabled: true,
			path:    "/api/status",
			setupRequest: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer header-token")
			},
			setupMocks: func(verifier *mocksso.MockVerifier) {
				verifier.EXPECT().Verify(gomock.Any(), "header-token").Return(user, nil)
			},
			expectedStatus: http.StatusOK,
			expectedUser:   true,
		},
		{
			name:    "Rejected token on dashboard",
			enabled: true,
			path:    "/",
			setupRequest: func(req *http.Request) {
				req.Header.Set("Authorization", "Bearer expired")
			},
			setupMocks: func(verifier *mocksso.MockVerifier) {
				verifier.EXPECT().Verify(gomock.Any(), "expired").Return(sso.User{}, apperrors.ErrInvalidToken)
			},
			expectedStatus: http.StatusFound,
			expectedTarget: loginURL,
		},
		{
			name:    "Non bearer authorization header ignored",
			enabled: true,
			path:    "/api/me",
			setupRequest: func(req *http.Request) {
				req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
			},
			setupMocks:     func(verifier *mocksso.MockVerifier) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			verifier := mocksso.NewMockVerifier(ctrl)
			tc.setupMocks(verifier)

			var gotUser bool
			r := gin.New()
			r.Use(NewSSOMiddleware(tc.enabled, verifier, loginURL, zap.NewNop()).Authenticate())
			r.GET(tc.path, func(c *gin.Context) {
				u, ok := UserFromContext(c)
				gotUser = ok && u.Subject == user.Subject
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			tc.setupRequest(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
			assert.Equal(t, tc.expectedUser, gotUser)
			if tc.expectedTarget != "" {
				assert.Equal(t, tc.expectedTarget, w.Header().Get("Location"))
			}
		})
	}
}
