// Package gateway is the websocket transport in front of the engine.
// It owns frame encoding, per-connection pumps, and the handshake.
package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"chaoshub/contract"
	"chaoshub/domain"
	"chaoshub/domain/event"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var _ contract.EventSink = (*Client)(nil)

// Client is one websocket connection. Its buffered send channel
// decouples fan-out from the peer's read speed: when the buffer is
// full past the delivery timeout, the event is dropped and the fan-out
// caller moves on.
type Client struct {
	log             *slog.Logger
	conn            *websocket.Conn
	send            chan []byte
	done            chan struct{}
	deliveryTimeout time.Duration
	connID          domain.ConnectionID
}

func newClient(log *slog.Logger, conn *websocket.Conn, bufferSize int, deliveryTimeout time.Duration) *Client {
	return &Client{
		log:             log,
		conn:            conn,
		send:            make(chan []byte, bufferSize),
		done:            make(chan struct{}),
		deliveryTimeout: deliveryTimeout,
	}
}

// Consume queues an event for the write pump. Never blocks longer than
// the delivery timeout; a consistently full buffer means the client is
// too slow and loses events rather than stalling the sender.
func (c *Client) Consume(_ context.Context, e event.Event) error {
	data, err := encodeEvent(e)
	if err != nil {
		return err
	}

	select {
	case c.send <- data:
		return nil
	case <-c.done:
		return fmt.Errorf("connection %s closed", c.connID)
	case <-time.After(c.deliveryTimeout):
		return fmt.Errorf("delivery timeout on connection %s, dropping %s", c.connID, e.EventName())
	}
}

// readPump decodes inbound frames and hands them to dispatch. Runs in
// the connection's own goroutine; returning triggers teardown.
func (c *Client) readPump(ctx context.Context, dispatch func(context.Context, domain.ConnectionID, domain.Command)) {
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.log.Warn("Unexpected close", "connection_id", c.connID, "error", err)
			}
			return
		}

		cmd, err := decodeCommand(raw)
		if err != nil {
			c.pushError(ctx, err)
			continue
		}
		// Commands from one connection are handled synchronously here,
		// which is what keeps same-sender sends in order.
		dispatch(ctx, c.connID, cmd)
	}
}

func (c *Client) pushError(ctx context.Context, err error) {
	_ = c.Consume(ctx, event.Error{
		Code:    "ValidationFailure",
		Message: "invalid frame",
		Details: err.Error(),
	})
}

// writePump drains the send channel onto the socket and keeps the
// connection alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case data := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				c.log.Debug("Write failed", "connection_id", c.connID, "error", err)
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) close() {
	select {
	case <-c.done:
	default:
		close(c.done)
	}
}
