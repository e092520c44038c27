package network

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 25 * time.Second
	readLimit  = 1 << 16
)

// wsConn serializes writes: the room and the ping loop share one socket
type wsConn struct {
	ws *websocket.Conn
	mu sync.Mutex
}

func (c *wsConn) Send(b []byte, binary bool) error {
	typ := websocket.TextMessage
	if binary {
		typ = websocket.BinaryMessage
	}
	return c.write(typ, b)
}

func (c *wsConn) Close() error {
	return c.ws.Close()
}

func (c *wsConn) ping() error {
	return c.write(websocket.PingMessage, nil)
}

func (c *wsConn) write(typ int, b []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteMessage(typ, b)
}
