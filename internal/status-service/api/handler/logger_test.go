package handler

import (
	"VCS_Status_Monitor/internal/status-service/api/middleware"
	"VCS_Status_Monitor/internal/status-service/sso"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_LoggingError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name         string
		user         *sso.User
		expectFields map[string]interface{}
	}{
		{
			name: "Anonymous request",
			expectFields: map[string]interface{}{
				"http_method": http.MethodGet,
				"http_path":   "/api/status",
			},
		},
		{
			name: "Authenticated request",
			user: &sso.User{Subject: "u-1", Role: "admin"},
			expectFields: map[string]interface{}{
				"http_method": http.MethodGet,
				"http_path":   "/api/status",
				"user_sub":    "u-1",
				"user_role":   "admin",
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			core, logs := observer.New(zap.InfoLevel)
			l := NewLogger(zap.New(core))

			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/api/status", nil)
			if tc.user != nil {
				c.Set(middleware.SSOUserContextKey, *tc.user)
			}

			l.LoggingError(c, errors.New("boom"), "failed to get status", zap.ErrorLevel)

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, "failed to get status", entry.Message)
			fields := entry.ContextMap()
			for k, v := range tc.expectFields {
				assert.Equal(t, v, fields[k])
			}
			assert.Equal(t, "boom", fields["error"])
		})
	}
}
