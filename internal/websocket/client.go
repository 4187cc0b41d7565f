package websocket

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/wb-go/wbf/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 64 * 1024
)

// Client is one connected socket. Frames queued on send are written by
// WritePump; closing send ends the connection.
type Client struct {
	send   chan []byte
	logger logger.Logger
}

func NewClient(log logger.Logger) *Client {
	return &Client{
		send:   make(chan []byte, sendBuffer),
		logger: log,
	}
}

// Push queues msg for a client owned by the caller rather than by a Hub. It
// reports false when the buffer is full.
func (c *Client) Push(msg Message) bool {
	data, err := msg.JSON()
	if err != nil {
		c.logger.Error("failed to encode websocket message",
			logger.String("type", string(msg.Type)),
			logger.String("error", err.Error()),
		)
		return false
	}
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// Close ends a caller-owned client. It must not be used on a client registered
// with a Hub and must be called after the last Push.
func (c *Client) Close() {
	close(c.send)
}

// WritePump writes queued frames and keepalive pings to conn until send is
// closed or a write fails.
func (c *Client) WritePump(conn *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
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

// ReadPump consumes frames until the peer goes away, then calls onClose.
// Inbound frames carry no commands and are discarded.
func (c *Client) ReadPump(conn *websocket.Conn, onClose func()) {
	defer func() {
		onClose()
		_ = conn.Close()
	}()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn("websocket read error", logger.String("error", err.Error()))
			}
			return
		}
	}
}
