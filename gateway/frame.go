package gateway

import (
	"encoding/json"
	"fmt"

	"chaoshub/domain"
	"chaoshub/domain/event"
	"chaoshub/errors"
)

// Frame is the wire envelope in both directions: the type names the
// operation or event, the payload carries its body.
type Frame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// decodeCommand turns an inbound frame into its command. Unknown types
// and malformed payloads are validation failures for the sender alone.
func decodeCommand(raw []byte) (domain.Command, error) {
	var frame Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return nil, fmt.Errorf("%w: malformed frame: %v", errors.ErrValidation, err)
	}

	var (
		cmd domain.Command
		err error
	)
	switch frame.Type {
	case "joinRoom":
		cmd, err = unmarshalCommand[domain.JoinRoomCommand](frame.Payload)
	case "leaveRoom":
		cmd, err = unmarshalCommand[domain.LeaveRoomCommand](frame.Payload)
	case "sendMessage":
		cmd, err = unmarshalCommand[domain.SendMessageCommand](frame.Payload)
	case "editMessage":
		cmd, err = unmarshalCommand[domain.EditMessageCommand](frame.Payload)
	case "deleteMessage":
		cmd, err = unmarshalCommand[domain.DeleteMessageCommand](frame.Payload)
	case "reactToMessage":
		cmd, err = unmarshalCommand[domain.ReactCommand](frame.Payload)
	case "typing":
		cmd, err = unmarshalCommand[domain.TypingCommand](frame.Payload)
	case "setStatus":
		cmd, err = unmarshalCommand[domain.SetStatusCommand](frame.Payload)
	case "initiateCall":
		cmd, err = unmarshalCommand[domain.InitiateCallCommand](frame.Payload)
	case "acceptCall":
		cmd, err = unmarshalCommand[domain.AcceptCallCommand](frame.Payload)
	case "rejectCall":
		cmd, err = unmarshalCommand[domain.RejectCallCommand](frame.Payload)
	case "endCall":
		cmd, err = unmarshalCommand[domain.EndCallCommand](frame.Payload)
	case "relaySignal":
		cmd, err = unmarshalCommand[domain.RelaySignalCommand](frame.Payload)
	default:
		return nil, fmt.Errorf("%w: unknown frame type %q", errors.ErrValidation, frame.Type)
	}
	if err != nil {
		return nil, err
	}
	return cmd, nil
}

func unmarshalCommand[T domain.Command](payload []byte) (domain.Command, error) {
	var cmd T
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: missing payload", errors.ErrValidation)
	}
	if err := json.Unmarshal(payload, &cmd); err != nil {
		return nil, fmt.Errorf("%w: malformed payload: %v", errors.ErrValidation, err)
	}
	return cmd, nil
}

// encodeEvent wraps an outbound event in its frame.
func encodeEvent(e event.Event) ([]byte, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Frame{Type: e.EventName(), Payload: payload})
}
