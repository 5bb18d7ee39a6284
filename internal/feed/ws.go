package feed

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // OK for demo; restrict in production
	},
}

// WSHandler upgrades the request and parks the connection on the hub until
// the client goes away. The feed is broadcast-only: incoming messages are
// drained and ignored.
func WSHandler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}

		hub.Add(ws)
		log.Println("[ws] feed client connected")

		_ = ws.WriteMessage(
			websocket.TextMessage,
			[]byte(`{"type":"welcome","feed":"progress"}`),
		)

		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				break
			}
		}

		hub.Remove(ws)
		log.Println("[ws] feed client disconnected")
	}
}
