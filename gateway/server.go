package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"chaoshub/errors"
	"chaoshub/runtime"
)

type Server struct {
	log             *slog.Logger
	engine          *runtime.Engine
	upgrader        websocket.Upgrader
	bufferSize      int
	deliveryTimeout time.Duration
}

func NewServer(log *slog.Logger, engine *runtime.Engine, bufferSize int, deliveryTimeout time.Duration) *Server {
	return &Server{
		log:    log,
		engine: engine,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		bufferSize:      bufferSize,
		deliveryTimeout: deliveryTimeout,
	}
}

// Handler returns the websocket endpoint. The handshake is mandatory
// and synchronous: the credential is verified before the connection is
// registered, and a rejected transport is closed immediately after the
// reject frame.
func (s *Server) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			s.log.Warn("Upgrade failed", "remote", r.RemoteAddr, "error", err)
			return
		}

		client := newClient(s.log, conn, s.bufferSize, s.deliveryTimeout)
		ctx := context.Background()

		identity, connID, err := s.engine.Connect(ctx, bearerToken(r), client)
		if err != nil {
			s.reject(conn, err)
			return
		}
		client.connID = connID

		// Connect acks with the resolved identity before any event.
		_ = client.Consume(ctx, connectAck{Identity: string(identity.ID)})

		go client.writePump()
		client.readPump(ctx, s.engine.Dispatch)

		// Read loop ended: transport is gone. One teardown sequence,
		// then release the write pump.
		s.engine.Disconnect(ctx, connID)
		client.close()
	})
}

func (s *Server) reject(conn *websocket.Conn, err error) {
	frame, marshalErr := json.Marshal(Frame{
		Type:    "reject",
		Payload: mustJSON(map[string]string{"reason": errors.HandshakeReason(err)}),
	})
	if marshalErr == nil {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		_ = conn.WriteMessage(websocket.TextMessage, frame)
	}
	_ = conn.Close()
}

// bearerToken extracts the credential from the Authorization header,
// falling back to the token query parameter for browser clients that
// cannot set headers on websocket upgrades.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return r.URL.Query().Get("token")
}

type connectAck struct {
	Identity string `json:"identityId"`
}

func (connectAck) EventName() string { return "connected" }

func mustJSON(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}
