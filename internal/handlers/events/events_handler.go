// internal/handlers/events/events_handler.go
package events

import (
	"net/http"

	"rainerio-service/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Catalog events are public; the site connects from any origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type EventsHandler struct {
	hub    *ws.Hub
	logger *zap.Logger
}

func NewEventsHandler(hub *ws.Hub, logger *zap.Logger) *EventsHandler {
	return &EventsHandler{hub: hub, logger: logger}
}

// HandleConnection upgrades the request and subscribes it to catalog events.
func (h *EventsHandler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	ws.NewClient(h.hub, conn).Start()
}

// GetStats reports how many clients are listening.
func (h *EventsHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"clients": h.hub.ClientCount()})
}
