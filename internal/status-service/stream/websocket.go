package stream

import (
	"VCS_Status_Monitor/internal/status-service/model"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

type Encoder func(snapshot *model.StatusSnapshot) ([]byte, error)

type WebSocketServer struct {
	broadcaster *Broadcaster
	encode      Encoder
	upgrader    websocket.Upgrader
	logger      *zap.Logger
}

// Serve upgrades the request and writes one text frame per snapshot until either side goes away.
func (s *WebSocketServer) Serve(w http.ResponseWriter, r *http.Request) error {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	sub := s.broadcaster.Subscribe()
	done := make(chan struct{})
	go s.readPump(conn, done)
	s.writePump(conn, sub, done)
	s.broadcaster.Unsubscribe(sub)
	return nil
}

// readPump discards client frames; it only exists to notice the close.
func (s *WebSocketServer) readPump(conn *websocket.Conn, done chan struct{}) {
	defer close(done)
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *WebSocketServer) writePump(conn *websocket.Conn, sub *Subscription, done chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()
	for {
		select {
		case <-done:
			return
		case snapshot, ok := <-sub.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return
			}
			msg, err := s.encode(snapshot)
			if err != nil {
				s.logger.Error("failed to encode snapshot for websocket", zap.Error(err))
				continue
			}
			if err = conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// NewWebSocketServer accepts non-browser clients, the listed origins and localhost.
func NewWebSocketServer(broadcaster *Broadcaster, encode Encoder, allowedOrigins []string, logger *zap.Logger) *WebSocketServer {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return &WebSocketServer{
		broadcaster: broadcaster,
		encode:      encode,
		logger:      logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || allowed[origin] {
					return true
				}
				u, err := url.Parse(origin)
				if err != nil {
					return false
				}
				if u.Host == r.Host {
					return true
				}
				host := u.Hostname()
				return host == "localhost" || host == "127.0.0.1" || host == "::1"
			},
		},
	}
}
