package handler

import (
	mockhandler "VCS_Status_Monitor/internal/status-service/mocks/api/handler"
	"VCS_Status_Monitor/internal/status-service/stream"
	"bufio"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func setUpStreamServer(t *testing.T) (*httptest.Server, *stream.Broadcaster) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	broadcaster := stream.NewBroadcaster(nil, time.Second, zap.NewNop())
	broadcaster.Publish(testSnapshot())
	ws := stream.NewWebSocketServer(broadcaster, SnapshotEncoder(testVersion), nil, zap.NewNop())
	h := NewStreamHandler(broadcaster, ws, mockhandler.NewMockLogger(ctrl), testVersion)

	r := gin.New()
	r.GET("/api/stream", h.Events())
	r.GET("/api/ws", h.WebSocket())
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, broadcaster
}

func TestStreamHandler_Events(t *testing.T) {
	srv, broadcaster := setUpStreamServer(t)

	resp, err := http.Get(srv.URL + "/api/stream")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	reader := bufio.NewReader(resp.Body)
	readEvent := func() (string, string) {
		var event, data string
		for {
			line, e := reader.ReadString('\n')
			require.NoError(t, e)
			line = strings.TrimRight(line, "\n")
			switch {
			case strings.HasPrefix(line, "event:"):
				event = strings.TrimPrefix(line, "event:")
			case strings.HasPrefix(line, "data:"):
				data = strings.TrimPrefix(line, "data:")
			case line == "" && data != "":
				return event, data
			}
		}
	}

	event, data := readEvent()
	assert.Equal(t, snapshotEvent, event)
	assert.Contains(t, data, `"generation_id":"gen-42"`)

	next := testSnapshot()
	next.ID = "gen-43"
	broadcaster.Publish(next)
	_, data = readEvent()
	assert.Contains(t, data, `"generation_id":"gen-43"`)
}

func TestStreamHandler_WebSocket(t *testing.T) {
	srv, _ := setUpStreamServer(t)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/api/ws", nil)
	require.NoError(t, err)
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(msg, &payload))
	assert.Equal(t, "gen-42", payload["generation_id"])
	assert.Equal(t, testVersion, payload["version"])
}
