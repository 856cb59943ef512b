package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/contfrac/reals/internal/expr"
	"github.com/contfrac/reals/pkg/real"
)

// maxStreamDigits caps one websocket connection. A new connection parses
// the expression again and restarts from the integer part.
const maxStreamDigits = 100000

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // same stance as a local dashboard
	},
}

type digitMessage struct {
	Position int    `json:"position"` // 0 is the integer part
	Value    string `json:"value"`
	Last     bool   `json:"last,omitempty"`
}

// handleStream pushes the decimal expansion of ?expr= one value per
// message: first the integer part, then single digits, until the value is
// exhausted, the cap is reached, or the client goes away.
func handleStream(c *gin.Context) {
	text := c.Query("expr")
	x, err := expr.Parse(text)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("stream: websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	// Read loop purely to notice disconnects.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	id := uuid.NewString()
	log.Printf("stream %s: %q", id, text)

	digits := real.NewDigits(x)
	for pos := 0; pos < maxStreamDigits; pos++ {
		select {
		case <-gone:
			return
		default:
		}

		v, ok := digits.Next()
		msg := digitMessage{Position: pos}
		if !ok {
			msg.Last = true
		} else {
			msg.Value = v.String()
			msg.Last = digits.Exact()
		}

		_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("stream %s: write error: %v", id, err)
			return
		}
		if msg.Last {
			return
		}
	}
}
