package e2e

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"

	"chaoshub/auth"
	"chaoshub/call"
	"chaoshub/gateway"
	"chaoshub/presence"
	"chaoshub/registry"
	"chaoshub/repositories"
	"chaoshub/rooms"
	"chaoshub/router"
	"chaoshub/runtime"
	"chaoshub/runtime/workers"
	"chaoshub/typing"
)

const jwtSecret = "e2e-secret"

// frame mirrors the wire envelope on both directions.
type frame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// BaseWebsocketSuite boots a full hub over a real websocket transport.
// By default everything runs in-process against a throwaway store;
// HUB_ADDR redirects the same scenarios at a deployed instance.
type BaseWebsocketSuite struct {
	suite.Suite
	Config   Config
	verifier *auth.JWTVerifier

	server *httptest.Server
	db     *badger.DB
}

// SetupSuite loads the environment configuration and, absent an
// external address, assembles and starts the in-process hub.
func (s *BaseWebsocketSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	s.verifier = auth.NewJWTVerifier([]byte(jwtSecret))

	if s.Config.HubAddr != "" {
		return
	}

	log := slog.Default()
	s.db, err = badger.Open(badger.DefaultOptions(s.T().TempDir()).
		WithLoggingLevel(badger.ERROR))
	s.Require().NoError(err)

	connRegistry := registry.NewConnectionRegistry(log)
	roomManager := rooms.NewManager(log)
	typingTracker := typing.NewTracker(log, connRegistry, roomManager, 6*time.Second)
	engine := runtime.NewEngine(
		log,
		auth.NewGate(log, s.verifier),
		connRegistry,
		roomManager,
		router.NewRouter(log, connRegistry, roomManager,
			repositories.NewMessageRepository(s.db, log),
			repositories.NewBlocklistOracle(),
			typingTracker),
		presence.NewBroadcaster(log, connRegistry, presence.NewInterestTable()),
		typingTracker,
		call.NewRelay(log, connRegistry),
		workers.NewSupervisor(log, 100*time.Millisecond),
	)

	mux := http.NewServeMux()
	mux.Handle("/ws", gateway.NewServer(log, engine, 64, 2*time.Second).Handler())
	s.server = httptest.NewServer(mux)
}

func (s *BaseWebsocketSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.db != nil {
		_ = s.db.Close()
	}
}

// IssueToken signs a credential accepted by the suite's hub.
func (s *BaseWebsocketSuite) IssueToken(userID, name string) string {
	token, err := s.verifier.IssueToken(userID, name, time.Hour)
	s.Require().NoError(err)
	return token
}

// Dial opens a websocket connection with logging, colors, and frame
// debugging, and consumes the mandatory connected frame.
func (s *BaseWebsocketSuite) Dial(t *testing.T, name, token string) *websocket.Conn {
	// 1. Print a colorized header for the connection step in logs
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)

	// 2. Dial the hub, authenticating via the token query parameter
	endpoint := url.URL{
		Scheme:   "ws",
		Host:     s.hubHost(),
		Path:     "/ws",
		RawQuery: url.Values{"token": {token}}.Encode(),
	}
	conn, _, err := websocket.DefaultDialer.Dial(endpoint.String(), nil)
	s.Require().NoError(err)
	t.Cleanup(func() { _ = conn.Close() })

	// 3. The hub acks the handshake before any other event
	connected := s.ReadFrame(t, conn, "connected")
	s.Require().Equal("connected", connected.Type)
	return conn
}

// DialExpectReject opens a connection with a bad credential and returns
// the reject reason the hub answered with.
func (s *BaseWebsocketSuite) DialExpectReject(t *testing.T, token string) string {
	endpoint := url.URL{
		Scheme:   "ws",
		Host:     s.hubHost(),
		Path:     "/ws",
		RawQuery: url.Values{"token": {token}}.Encode(),
	}
	conn, _, err := websocket.DefaultDialer.Dial(endpoint.String(), nil)
	s.Require().NoError(err)
	t.Cleanup(func() { _ = conn.Close() })

	rejected := s.ReadFrame(t, conn, "reject")
	var body struct {
		Reason string `json:"reason"`
	}
	s.Require().NoError(json.Unmarshal(rejected.Payload, &body))
	return body.Reason
}

// SendFrame writes one operation frame.
func (s *BaseWebsocketSuite) SendFrame(t *testing.T, conn *websocket.Conn, frameType, payload string) {
	out := frame{Type: frameType, Payload: json.RawMessage(payload)}
	s.debug(t, "-->", out)
	s.Require().NoError(conn.WriteJSON(out))
}

// ReadFrame reads frames until one of the wanted type arrives, failing
// after a short deadline. Interleaved frames of other types are logged
// and skipped so scenarios stay robust against incidental events.
func (s *BaseWebsocketSuite) ReadFrame(t *testing.T, conn *websocket.Conn, frameType string) frame {
	deadline := time.Now().Add(3 * time.Second)
	s.Require().NoError(conn.SetReadDeadline(deadline))
	for {
		var incoming frame
		err := conn.ReadJSON(&incoming)
		s.Require().NoError(err, "waiting for %q", frameType)
		s.debug(t, "<--", incoming)
		if incoming.Type == frameType {
			return incoming
		}
	}
}

func (s *BaseWebsocketSuite) hubHost() string {
	if s.Config.HubAddr != "" {
		return s.Config.HubAddr
	}
	return strings.TrimPrefix(s.server.URL, "http://")
}

func (s *BaseWebsocketSuite) debug(t *testing.T, direction string, f frame) {
	if !s.Config.DebugFrames {
		return
	}
	line := fmt.Sprintf("%s %s %s", direction, f.Type, string(f.Payload))
	if s.Config.Colours {
		line = color.New(color.FgCyan).Render(line)
	}
	t.Log(line)
}
