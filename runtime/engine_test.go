package runtime

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"chaoshub/auth"
	"chaoshub/call"
	"chaoshub/domain"
	"chaoshub/domain/event"
	"chaoshub/presence"
	"chaoshub/registry"
	"chaoshub/repositories"
	"chaoshub/rooms"
	"chaoshub/router"
	"chaoshub/runtime/workers"
	"chaoshub/typing"
)

type recordingSink struct {
	mu     sync.Mutex
	events []event.Event
}

func (s *recordingSink) Consume(_ context.Context, e event.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *recordingSink) received() []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]event.Event(nil), s.events...)
}

type fixture struct {
	engine   *Engine
	verifier *auth.JWTVerifier
	rooms    *rooms.Manager
	calls    *call.Relay
}

// newFixture assembles a full engine on top of a throwaway store, the
// same wiring as main minus the transport and background workers.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := slog.Default()

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	verifier := auth.NewJWTVerifier([]byte("test-secret"))
	connRegistry := registry.NewConnectionRegistry(log)
	roomManager := rooms.NewManager(log)
	store := repositories.NewMessageRepository(db, log)
	typingTracker := typing.NewTracker(log, connRegistry, roomManager, 6*time.Second)
	messageRouter := router.NewRouter(log, connRegistry, roomManager, store, repositories.NewBlocklistOracle(), typingTracker)
	callRelay := call.NewRelay(log, connRegistry)

	engine := NewEngine(
		log,
		auth.NewGate(log, verifier),
		connRegistry,
		roomManager,
		messageRouter,
		presence.NewBroadcaster(log, connRegistry, presence.NewInterestTable()),
		typingTracker,
		callRelay,
		workers.NewSupervisor(log, 50*time.Millisecond),
	)
	return &fixture{engine: engine, verifier: verifier, rooms: roomManager, calls: callRelay}
}

// connect authenticates with a freshly issued credential and returns
// the connection id plus the sink collecting that connection's events.
func (f *fixture) connect(t *testing.T, userID, name string) (domain.ConnectionID, *recordingSink) {
	t.Helper()
	req := require.New(t)
	token, err := f.verifier.IssueToken(userID, name, time.Hour)
	req.NoError(err)

	sink := &recordingSink{}
	identity, connID, err := f.engine.Connect(context.Background(), token, sink)
	req.NoError(err)
	req.Equal(domain.IdentityID(userID), identity.ID)
	return connID, sink
}

func TestEngine_SendMessage_RoomDelivery(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	aliceConn, aliceSink := f.connect(t, "alice", "Alice")
	bobConn, bobSink := f.connect(t, "bob", "Bob")

	// Given both users joined the same group room
	f.engine.Dispatch(ctx, aliceConn, domain.JoinRoomCommand{Room: "g1"})
	f.engine.Dispatch(ctx, bobConn, domain.JoinRoomCommand{Room: "g1"})

	// When alice sends a message
	f.engine.Dispatch(ctx, aliceConn, domain.SendMessageCommand{
		Destination: domain.Destination{Room: "g1"},
		Content:     "hello",
	})

	// Then bob received exactly one messageCreated
	bobEvents := f.received(bobSink, "messageCreated")
	req.Len(bobEvents, 1)
	created := bobEvents[0].(event.MessageCreated)
	req.Equal("hello", created.Content)
	req.Equal(domain.IdentityID("alice"), created.Sender)

	// And alice received an ack referencing the same message id, with
	// no copy of her own message
	acks := f.received(aliceSink, "ack")
	req.Len(acks, 2) // the joinRoom ack and the send ack
	sendAck := acks[1].(event.Ack)
	req.Equal("sendMessage", sendAck.Op)
	req.Equal(created.ID, sendAck.MessageID)
	req.Empty(f.received(aliceSink, "messageCreated"))
}

func TestEngine_SendMessage_NonMemberGetsErrorOnly(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	aliceConn, aliceSink := f.connect(t, "alice", "Alice")
	bobConn, bobSink := f.connect(t, "bob", "Bob")
	f.engine.Dispatch(ctx, bobConn, domain.JoinRoomCommand{Room: "g1"})

	// When alice sends without having joined
	f.engine.Dispatch(ctx, aliceConn, domain.SendMessageCommand{
		Destination: domain.Destination{Room: "g1"},
		Content:     "hello?",
	})

	// Then she gets an error on her own connection and bob saw nothing
	failures := f.received(aliceSink, "error")
	req.Len(failures, 1)
	req.Equal("AuthorizationDenied", failures[0].(event.Error).Code)
	req.Empty(f.received(bobSink, "messageCreated"))
}

func TestEngine_Typing_FireAndForget(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	aliceConn, aliceSink := f.connect(t, "alice", "Alice")
	bobConn, bobSink := f.connect(t, "bob", "Bob")
	f.engine.Dispatch(ctx, aliceConn, domain.JoinRoomCommand{Room: "g1"})
	f.engine.Dispatch(ctx, bobConn, domain.JoinRoomCommand{Room: "g1"})

	f.engine.Dispatch(ctx, aliceConn, domain.TypingCommand{Room: "g1", IsTyping: true})

	req.Len(f.received(bobSink, "userTyping"), 1)
	// No ack for typing, and the typist never hears her own indicator
	req.Len(f.received(aliceSink, "ack"), 1) // the joinRoom ack only
	req.Empty(f.received(aliceSink, "userTyping"))
}

func TestEngine_Dispatch_RejectsMalformedCommands(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	aliceConn, aliceSink := f.connect(t, "alice", "Alice")
	_, bobSink := f.connect(t, "bob", "Bob")

	longStatus := strings.Repeat("z", 10_000)
	malformed := []domain.Command{
		domain.JoinRoomCommand{Room: ""},
		domain.SetStatusCommand{State: domain.StateAway, CustomMessage: longStatus},
		domain.InitiateCallCommand{Target: "bob", Kind: "banana"},
		domain.TypingCommand{Room: ""},
		domain.AcceptCallCommand{Call: ""},
	}

	for _, cmd := range malformed {
		f.engine.Dispatch(ctx, aliceConn, cmd)
	}

	// Every command was rejected before touching a component: one error
	// per dispatch, no acks, no phantom room, no ringing
	failures := f.received(aliceSink, "error")
	req.Len(failures, len(malformed))
	for _, failure := range failures {
		req.Equal("ValidationFailure", failure.(event.Error).Code)
	}
	req.Empty(f.received(aliceSink, "ack"))
	req.Empty(f.rooms.Members(""))
	req.Empty(f.received(bobSink, "incomingCall"))
	req.Empty(f.received(bobSink, "userStatusChanged"))
}

func TestEngine_Typing_NonMemberRejected(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	bobConn, bobSink := f.connect(t, "bob", "Bob")
	f.engine.Dispatch(ctx, bobConn, domain.JoinRoomCommand{Room: "g1"})

	// mallory is authenticated but never joined g1
	malloryConn, mallorySink := f.connect(t, "mallory", "Mallory")
	f.engine.Dispatch(ctx, malloryConn, domain.TypingCommand{Room: "g1", IsTyping: true})

	// She alone gets the error and no indicator leaks into the room
	failures := f.received(mallorySink, "error")
	req.Len(failures, 1)
	req.Equal("AuthorizationDenied", failures[0].(event.Error).Code)
	req.Empty(f.received(bobSink, "userTyping"))
}

func TestEngine_SetStatus_InvalidStateRejected(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	aliceConn, aliceSink := f.connect(t, "alice", "Alice")

	f.engine.Dispatch(context.Background(), aliceConn, domain.SetStatusCommand{State: "offline"})

	failures := f.received(aliceSink, "error")
	req.Len(failures, 1)
	req.Equal("ValidationFailure", failures[0].(event.Error).Code)
}

func TestEngine_InitiateCall_OfflineCallee(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	aliceConn, aliceSink := f.connect(t, "alice", "Alice")

	f.engine.Dispatch(context.Background(), aliceConn, domain.InitiateCallCommand{
		Target: "bob",
		Kind:   domain.VideoCall,
	})

	failures := f.received(aliceSink, "error")
	req.Len(failures, 1)
	req.Equal("DestinationUnavailable", failures[0].(event.Error).Code)
}

func TestEngine_Connect_RejectsBadCredential(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	_, _, err := f.engine.Connect(context.Background(), "garbage", &recordingSink{})

	req.Error(err)
}

func TestEngine_Disconnect_TearsEverythingDown(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	aliceConn, _ := f.connect(t, "alice", "Alice")
	bobConn, bobSink := f.connect(t, "bob", "Bob")
	f.engine.Dispatch(ctx, aliceConn, domain.JoinRoomCommand{Room: "g1"})
	f.engine.Dispatch(ctx, bobConn, domain.JoinRoomCommand{Room: "g1"})
	f.engine.Dispatch(ctx, aliceConn, domain.TypingCommand{Room: "g1", IsTyping: true})

	// When alice's only connection drops
	f.engine.Disconnect(ctx, aliceConn)

	// Then her typing indicator was cleared, her membership pruned, and
	// a repeated disconnect is a no-op
	req.Len(f.received(bobSink, "userStoppedTyping"), 1)
	req.Equal([]domain.ConnectionID{bobConn}, f.rooms.Members("g1"))
	f.engine.Disconnect(ctx, aliceConn)
	req.Equal([]domain.ConnectionID{bobConn}, f.rooms.Members("g1"))
}

func TestEngine_Disconnect_SecondDeviceKeepsCallsAlive(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	aliceConn, _ := f.connect(t, "alice", "Alice")
	aliceConn2, _ := f.connect(t, "alice", "Alice")
	_, bobSink := f.connect(t, "bob", "Bob")

	f.engine.Dispatch(ctx, aliceConn, domain.InitiateCallCommand{Target: "bob", Kind: domain.AudioCall})
	req.Len(f.received(bobSink, "incomingCall"), 1)
	callID := f.received(bobSink, "incomingCall")[0].(event.IncomingCall).Call

	// Dropping one of alice's two devices leaves the session alone
	f.engine.Disconnect(ctx, aliceConn2)
	_, ok := f.calls.Session(callID)
	req.True(ok)

	// Dropping the last one tears it down
	f.engine.Disconnect(ctx, aliceConn)
	_, ok = f.calls.Session(callID)
	req.False(ok)
	req.Len(f.received(bobSink, "callEnded"), 1)
}

// received filters a sink's events by their wire name.
func (f *fixture) received(sink *recordingSink, name string) []event.Event {
	var out []event.Event
	for _, e := range sink.received() {
		if e.EventName() == name {
			out = append(out, e)
		}
	}
	return out
}
