// Package push bridges Redis pub/sub to live WebSocket connections. The
// notification pipeline publishes to a per-user channel; for every connected
// client the hub subscribes that channel and forwards payloads until the
// socket closes.
package push

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/talentia/contracts-system/internal/infrastructure/db/redis"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 45 * time.Second
)

// Hub fans notification payloads out to WebSocket clients.
type Hub struct {
	rdb *goredis.Client
	log zerolog.Logger
}

func NewHub(rdb *goredis.Client, log zerolog.Logger) *Hub {
	return &Hub{rdb: rdb, log: log}
}

// Serve pumps the user's notification channel into the WebSocket until the
// client disconnects or ctx is cancelled. It blocks; callers run it once per
// accepted connection.
func (h *Hub) Serve(ctx context.Context, userID string, conn *websocket.Conn) {
	defer conn.Close()

	sub := h.rdb.Subscribe(ctx, redis.UserChannel(userID))
	defer sub.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Reader: the client sends nothing meaningful, but reading is required
	// to process control frames and observe the close handshake.
	go func() {
		defer cancel()
		conn.SetReadLimit(512)
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if closeErr, ok := err.(*websocket.CloseError); ok {
					if closeErr.Code != websocket.CloseNormalClosure && closeErr.Code != websocket.CloseGoingAway {
						h.log.Debug().Err(err).Str("user_id", userID).Msg("websocket closed")
					}
				}
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				h.log.Debug().Err(err).Str("user_id", userID).Msg("websocket write failed")
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
