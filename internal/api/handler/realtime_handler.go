package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/talentia/contracts-system/internal/infrastructure/push"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// RealtimeHandler upgrades the connection and streams the authenticated
// user's live notifications over WebSocket.
type RealtimeHandler struct {
	hub *push.Hub
}

func NewRealtimeHandler(hub *push.Hub) *RealtimeHandler {
	return &RealtimeHandler{hub: hub}
}

// Stream handles GET /v1/ws/notifications.
func (h *RealtimeHandler) Stream(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	h.hub.Serve(c.Request().Context(), claims.UserID, ws)
	return nil
}
