package call

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"chaoshub/domain"
	"chaoshub/domain/event"
	"chaoshub/errors"
	"chaoshub/registry"
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
	relay     *Relay
	registry  *registry.ConnectionRegistry
	aliceSink *recordingSink
	bobSink   *recordingSink
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	connRegistry := registry.NewConnectionRegistry(slog.Default())
	f := fixture{
		registry:  connRegistry,
		relay:     NewRelay(slog.Default(), connRegistry),
		aliceSink: &recordingSink{},
		bobSink:   &recordingSink{},
	}
	connRegistry.Register(domain.Identity{ID: "alice", DisplayName: "Alice"}, "ca", f.aliceSink)
	connRegistry.Register(domain.Identity{ID: "bob", DisplayName: "Bob"}, "cb", f.bobSink)
	return f
}

func TestRelay_InitiateCall_OfflineTarget(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	// When alice calls an identity with no live connection
	callID, err := f.relay.InitiateCall(context.Background(), "ca", "carol", domain.VideoCall)

	// Then the call fails fast and no session was created
	req.ErrorIs(err, errors.ErrDestinationUnavailable)
	req.Empty(callID)
	req.Empty(f.relay.sessions)
}

func TestRelay_InitiateCall_RingsEveryTargetDevice(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	secondDevice := &recordingSink{}
	f.registry.Register(domain.Identity{ID: "bob", DisplayName: "Bob"}, "cb2", secondDevice)

	callID, err := f.relay.InitiateCall(context.Background(), "ca", "bob", domain.AudioCall)

	req.NoError(err)
	req.NotEmpty(callID)

	session, ok := f.relay.Session(callID)
	req.True(ok)
	req.True(session.HasParticipant("alice"))
	req.True(session.HasParticipant("bob"))

	want := event.IncomingCall{Call: callID, From: "alice", FromName: "Alice", Kind: domain.AudioCall}
	req.Equal([]event.Event{want}, f.bobSink.received())
	req.Equal([]event.Event{want}, secondDevice.received())
	req.Empty(f.aliceSink.received())
}

func TestRelay_AcceptCall_NotifiesCaller(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	callID, err := f.relay.InitiateCall(ctx, "ca", "bob", domain.VideoCall)
	req.NoError(err)

	req.NoError(f.relay.AcceptCall(ctx, "cb", callID))

	req.Equal([]event.Event{event.CallAccepted{Call: callID, By: "bob"}}, f.aliceSink.received())
	// The session survives an accept
	_, ok := f.relay.Session(callID)
	req.True(ok)
}

func TestRelay_RejectCall_TearsDownSession(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	callID, err := f.relay.InitiateCall(ctx, "ca", "bob", domain.VideoCall)
	req.NoError(err)

	req.NoError(f.relay.RejectCall(ctx, "cb", callID))

	req.Equal([]event.Event{event.CallRejected{Call: callID, By: "bob"}}, f.aliceSink.received())
	_, ok := f.relay.Session(callID)
	req.False(ok)
}

func TestRelay_RelaySignal_OpaquePassThrough(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	callID, err := f.relay.InitiateCall(ctx, "ca", "bob", domain.VideoCall)
	req.NoError(err)

	payload := json.RawMessage(`{"sdp":"v=0 whatever"}`)
	req.NoError(f.relay.RelaySignal(ctx, "ca", callID, "bob", domain.SignalOffer, payload))

	events := f.bobSink.received()
	req.Len(events, 2) // incomingCall then the offer
	signal, ok := events[1].(event.Signal)
	req.True(ok)
	req.Equal("signalOffer", signal.EventName())
	req.Equal(payload, signal.Payload)
	req.Equal(domain.IdentityID("alice"), signal.From)
}

func TestRelay_RelaySignal_RejectsOutsiders(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	carolSink := &recordingSink{}
	f.registry.Register(domain.Identity{ID: "carol"}, "cc", carolSink)

	callID, err := f.relay.InitiateCall(ctx, "ca", "bob", domain.VideoCall)
	req.NoError(err)

	// An outsider may not inject signals
	err = f.relay.RelaySignal(ctx, "cc", callID, "bob", domain.SignalAnswer, json.RawMessage(`{}`))
	req.ErrorIs(err, errors.ErrNotParticipant)

	// A participant may not signal toward an outsider
	err = f.relay.RelaySignal(ctx, "ca", callID, "carol", domain.SignalAnswer, json.RawMessage(`{}`))
	req.ErrorIs(err, errors.ErrNotParticipant)
}

func TestRelay_RelaySignal_UnknownCall(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	err := f.relay.RelaySignal(context.Background(), "ca", "nope", "bob", domain.SignalOffer, json.RawMessage(`{}`))

	req.ErrorIs(err, errors.ErrUnknownCall)
}

func TestRelay_EndCall_NotifiesAndRemoves(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	callID, err := f.relay.InitiateCall(ctx, "ca", "bob", domain.VideoCall)
	req.NoError(err)

	req.NoError(f.relay.EndCall(ctx, "ca", callID))

	events := f.bobSink.received()
	req.Equal(event.CallEnded{Call: callID, By: "alice"}, events[len(events)-1])
	_, ok := f.relay.Session(callID)
	req.False(ok)

	// Ending again fails: the session is gone
	req.ErrorIs(f.relay.EndCall(ctx, "ca", callID), errors.ErrUnknownCall)
}

func TestRelay_HandleDisconnect_TearsDownCalls(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	ctx := context.Background()
	callID, err := f.relay.InitiateCall(ctx, "ca", "bob", domain.VideoCall)
	req.NoError(err)

	// When bob's last connection drops
	f.relay.HandleDisconnect(ctx, "bob")

	// Then alice is told the call ended and the session is gone
	req.Equal([]event.Event{event.CallEnded{Call: callID, By: "bob"}}, f.aliceSink.received())
	_, ok := f.relay.Session(callID)
	req.False(ok)
}
