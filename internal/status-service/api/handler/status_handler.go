package handler

import (
	"VCS_Status_Monitor/internal/status-service/api/dto/response"
	"VCS_Status_Monitor/internal/status-service/api/middleware"
	apperrors "VCS_Status_Monitor/internal/status-service/errors"
	"VCS_Status_Monitor/internal/status-service/export"
	"VCS_Status_Monitor/internal/status-service/service"
	"VCS_Status_Monitor/internal/status-service/sso"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
	"go.uber.org/zap"
)

type StatusHandler interface {
	Health() gin.HandlerFunc
	GetStatus() gin.HandlerFunc
	Dashboard() gin.HandlerFunc
	ExportStatus() gin.HandlerFunc
	GetCurrentUser() gin.HandlerFunc
}

type statusHandler struct {
	statusService service.StatusService
	logger        Logger
	version       string
}

// Health never touches the aggregation core.
func (s *statusHandler) Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response.HealthResponse{
			Status:  "healthy",
			Version: s.version,
		})
	}
}

func (s *statusHandler) GetStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot, err := s.statusService.GetSnapshot(c)
		if err != nil {
			err = fmt.Errorf("StatusHandler.GetStatus: %w", err)
			s.logger.LoggingError(c, err, "failed to get status snapshot", zap.ErrorLevel)
			s.writeSnapshotError(c, err)
			return
		}
		c.JSON(http.StatusOK, response.NewStatusResponse(snapshot, s.version))
	}
}

func (s *statusHandler) Dashboard() gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot, err := s.statusService.GetSnapshot(c)
		if err != nil {
			err = fmt.Errorf("StatusHandler.Dashboard: %w", err)
			s.logger.LoggingError(c, err, "failed to render dashboard", zap.ErrorLevel)
			c.Render(http.StatusServiceUnavailable, render.HTML{
				Template: dashboardTemplate,
				Name:     "unavailable",
				Data:     dashboardView{RefreshSeconds: dashboardRefreshSeconds},
			})
			return
		}
		var user *sso.User
		if u, ok := middleware.UserFromContext(c); ok {
			user = &u
		}
		c.Render(http.StatusOK, render.HTML{
			Template: dashboardTemplate,
			Name:     "dashboard",
			Data:     newDashboardView(snapshot, user, s.version),
		})
	}
}

func (s *statusHandler) ExportStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot, err := s.statusService.GetSnapshot(c)
		if err != nil {
			err = fmt.Errorf("StatusHandler.ExportStatus: %w", err)
			s.logger.LoggingError(c, err, "failed to export status", zap.ErrorLevel)
			s.writeSnapshotError(c, err)
			return
		}
		file, err := export.Workbook(snapshot)
		if err != nil {
			err = fmt.Errorf("StatusHandler.ExportStatus: %w", err)
			s.logger.LoggingError(c, err, "failed to export status", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		defer file.Close()
		c.Header("Content-Type", export.ContentType)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", export.FileName(snapshot)))
		c.Status(http.StatusOK)
		if err = file.Write(c.Writer); err != nil {
			err = fmt.Errorf("StatusHandler.ExportStatus: %w", err)
			s.logger.LoggingError(c, err, "failed to write export", zap.ErrorLevel)
		}
	}
}

func (s *statusHandler) GetCurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.UserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, response.Response{
				Message: "Not authenticated",
			})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func (s *statusHandler) writeSnapshotError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrAggregationFailed) {
		c.JSON(http.StatusServiceUnavailable, response.Response{
			Message: "Status is temporarily unavailable",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, response.Response{
		Message: "Internal server error",
	})
}

func NewStatusHandler(statusService service.StatusService, logger Logger, version string) StatusHandler {
	return &statusHandler{
		statusService: statusService,
		logger:        logger,
		version:       version,
	}
}
