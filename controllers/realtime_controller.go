package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The browser client connects cross-origin from the SPA host.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// UpdatesWS upgrades the connection and registers it with the hub. The server
// only pushes; incoming frames are drained to detect disconnects.
func UpdatesWS(hub *services.RealtimeHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID")

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "websocket upgrade failed"})
			return
		}

		client := &services.WSClient{UserID: userID, Conn: conn}
		hub.Register(client)

		go func() {
			defer hub.Unregister(client)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}
}
