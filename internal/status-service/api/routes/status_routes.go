package routes

import (
	"VCS_Status_Monitor/internal/status-service/api/handler"
	"VCS_Status_Monitor/internal/status-service/api/middleware"

	"github.com/gin-gonic/gin"
)

func SetUpStatusRoutes(r *gin.Engine, statusHandler handler.StatusHandler, streamHandler handler.StreamHandler, m middleware.SSOMiddleware) {
	r.GET("/health", statusHandler.Health())

	gated := r.Group("", m.Authenticate())
	gated.GET("/", statusHandler.Dashboard())

	apiRoutes := gated.Group("/api")
	apiRoutes.GET("/status", statusHandler.GetStatus())
	apiRoutes.GET("/status/export", statusHandler.ExportStatus())
	apiRoutes.GET("/stream", streamHandler.Events())
	apiRoutes.GET("/ws", streamHandler.WebSocket())
	apiRoutes.GET("/me", statusHandler.GetCurrentUser())
}

func SetUpAuthRoutes(r *gin.Engine, authHandler handler.AuthHandler) {
	authRoutes := r.Group("/auth")
	authRoutes.GET("/callback", authHandler.Callback())
	authRoutes.GET("/logout", authHandler.Logout())
}
