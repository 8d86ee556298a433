package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser origins are already filtered by the CORS layer.
	CheckOrigin: func(*http.Request) bool { return true },
}

// cartEventsHandler streams cart-changed notifications for the authenticated
// user over a websocket. Events carry no payload; clients re-fetch the cart.
func cartEventsHandler(logger *log.Logger, events eventSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "sign in to use the cart"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Printf("cart events: upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		ch, cancel := events.Subscribe()
		defer cancel()

		// Drain the connection so client closes are noticed.
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case changed, ok := <-ch:
				if !ok {
					return
				}
				if changed != userID {
					continue
				}
				if err := conn.WriteJSON(gin.H{"event": "cartChanged"}); err != nil {
					return
				}
			case <-closed:
				return
			case <-c.Request.Context().Done():
				return
			}
		}
	}
}
