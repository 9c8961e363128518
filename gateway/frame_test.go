package gateway

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chaoshub/domain"
	"chaoshub/domain/event"
	"chaoshub/errors"
)

func TestDecodeCommand_SendMessage(t *testing.T) {
	req := require.New(t)

	cmd, err := decodeCommand([]byte(`{
		"type": "sendMessage",
		"payload": {"destination": {"roomId": "g1"}, "content": "hello"}
	}`))

	req.NoError(err)
	send, ok := cmd.(domain.SendMessageCommand)
	req.True(ok)
	req.Equal(domain.RoomID("g1"), send.Destination.Room)
	req.Equal("hello", send.Content)
	req.Equal("sendMessage", send.Op())
}

func TestDecodeCommand_RelaySignalKeepsPayloadOpaque(t *testing.T) {
	req := require.New(t)

	cmd, err := decodeCommand([]byte(`{
		"type": "relaySignal",
		"payload": {
			"callId": "c1",
			"targetId": "bob",
			"kind": "offer",
			"payload": {"sdp": "v=0", "nested": {"deep": true}}
		}
	}`))

	req.NoError(err)
	relay, ok := cmd.(domain.RelaySignalCommand)
	req.True(ok)
	req.Equal(domain.CallID("c1"), relay.Call)
	req.Equal(domain.SignalOffer, relay.Kind)
	req.JSONEq(`{"sdp": "v=0", "nested": {"deep": true}}`, string(relay.Payload))
}

func TestDecodeCommand_EveryOpRoundTrips(t *testing.T) {
	req := require.New(t)

	frames := map[string]string{
		"joinRoom":       `{"roomId": "g1"}`,
		"leaveRoom":      `{"roomId": "g1"}`,
		"editMessage":    `{"roomId": "g1", "messageId": "m1", "content": "fixed"}`,
		"deleteMessage":  `{"roomId": "g1", "messageId": "m1"}`,
		"reactToMessage": `{"roomId": "g1", "messageId": "m1", "emoji": "fire"}`,
		"typing":         `{"roomId": "g1", "isTyping": true}`,
		"setStatus":      `{"state": "away"}`,
		"initiateCall":   `{"targetId": "bob", "kind": "video"}`,
		"acceptCall":     `{"callId": "c1"}`,
		"rejectCall":     `{"callId": "c1"}`,
		"endCall":        `{"callId": "c1"}`,
	}

	for frameType, payload := range frames {
		cmd, err := decodeCommand([]byte(`{"type": "` + frameType + `", "payload": ` + payload + `}`))
		req.NoError(err, frameType)
		req.Equal(frameType, cmd.Op())
	}
}

func TestDecodeCommand_UnknownType(t *testing.T) {
	req := require.New(t)

	_, err := decodeCommand([]byte(`{"type": "selfDestruct", "payload": {}}`))

	req.ErrorIs(err, errors.ErrValidation)
}

func TestDecodeCommand_MalformedFrame(t *testing.T) {
	req := require.New(t)

	_, err := decodeCommand([]byte(`{not json`))

	req.ErrorIs(err, errors.ErrValidation)
}

func TestDecodeCommand_MissingPayload(t *testing.T) {
	req := require.New(t)

	_, err := decodeCommand([]byte(`{"type": "sendMessage"}`))

	req.ErrorIs(err, errors.ErrValidation)
}

func TestDecodeCommand_MalformedPayload(t *testing.T) {
	req := require.New(t)

	_, err := decodeCommand([]byte(`{"type": "typing", "payload": {"isTyping": "maybe"}}`))

	req.ErrorIs(err, errors.ErrValidation)
}

func TestEncodeEvent_WrapsInFrame(t *testing.T) {
	req := require.New(t)
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	raw, err := encodeEvent(event.MessageCreated{
		ID:      "m1",
		Room:    "g1",
		Sender:  "alice",
		Content: "hello",
		At:      at,
	})

	req.NoError(err)
	var frame Frame
	req.NoError(json.Unmarshal(raw, &frame))
	req.Equal("messageCreated", frame.Type)

	var body map[string]any
	req.NoError(json.Unmarshal(frame.Payload, &body))
	req.Equal("m1", body["messageId"])
	req.Equal("hello", body["content"])
}

func TestEncodeEvent_SignalNameFollowsKind(t *testing.T) {
	req := require.New(t)

	raw, err := encodeEvent(event.Signal{
		Call:    "c1",
		From:    "alice",
		Kind:    domain.SignalICECandidate,
		Payload: json.RawMessage(`{"candidate": "udp"}`),
	})

	req.NoError(err)
	var frame Frame
	req.NoError(json.Unmarshal(raw, &frame))
	req.Equal("signalIceCandidate", frame.Type)
}
