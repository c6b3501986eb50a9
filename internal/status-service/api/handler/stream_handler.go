package handler

import (
	"VCS_Status_Monitor/internal/status-service/api/dto/response"
	"VCS_Status_Monitor/internal/status-service/model"
	"VCS_Status_Monitor/internal/status-service/stream"
	"encoding/json"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const snapshotEvent = "status"

type StreamHandler interface {
	Events() gin.HandlerFunc
	WebSocket() gin.HandlerFunc
}

type streamHandler struct {
	broadcaster *stream.Broadcaster
	websocket   *stream.WebSocketServer
	logger      Logger
	version     string
}

// Events streams every new snapshot as a server-sent event until the client disconnects.
func (s *streamHandler) Events() gin.HandlerFunc {
	return func(c *gin.Context) {
		sub := s.broadcaster.Subscribe()
		defer s.broadcaster.Unsubscribe(sub)

		c.Header("Cache-Control", "no-cache")
		c.Header("X-Accel-Buffering", "no")
		c.Stream(func(w io.Writer) bool {
			select {
			case <-c.Request.Context().Done():
				return false
			case snapshot, ok := <-sub.C:
				if !ok {
					return false
				}
				c.SSEvent(snapshotEvent, response.NewStatusResponse(snapshot, s.version))
				return true
			}
		})
	}
}

func (s *streamHandler) WebSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.websocket.Serve(c.Writer, c.Request); err != nil {
			err = fmt.Errorf("StreamHandler.WebSocket: %w", err)
			s.logger.LoggingError(c, err, "failed to upgrade websocket", zap.WarnLevel)
		}
	}
}

// SnapshotEncoder renders websocket frames in the same shape as GET /api/status.
func SnapshotEncoder(version string) stream.Encoder {
	return func(snapshot *model.StatusSnapshot) ([]byte, error) {
		return json.Marshal(response.NewStatusResponse(snapshot, version))
	}
}

func NewStreamHandler(broadcaster *stream.Broadcaster, websocket *stream.WebSocketServer, logger Logger, version string) StreamHandler {
	return &streamHandler{
		broadcaster: broadcaster,
		websocket:   websocket,
		logger:      logger,
		version:     version,
	}
}
