package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Cross-origin is already policed by the CORS layer for the API; the
	// event stream carries no per-user data, only invalidated view paths.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type invalidationEvent struct {
	Path string `json:"path"`
}

// streamInvalidations upgrades the connection to a websocket and forwards
// view-invalidation signals until either side goes away. Delivery is best
// effort, matching the broker's fire-and-forget contract.
func (s *Server) streamInvalidations(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Warn(c.Request.Context(), "websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	sub := s.broker.Subscribe()
	defer s.broker.Unsubscribe(sub)

	// Drain the read side so close frames and pings are processed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(30 * time.Second)
	defer ping.Stop()

	for {
		select {
		case path, ok := <-sub.C:
			if !ok {
				return
			}
			if err := conn.WriteJSON(invalidationEvent{Path: path}); err != nil {
				return
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
				return
			}
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}
