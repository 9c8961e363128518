package domain

import "encoding/json"

// Commands are the decoded client intents dispatched by the session
// engine. Validation tags are enforced at dispatch time before any
// component or collaborator is touched.

type Command interface {
	Op() string
}

type JoinRoomCommand struct {
	Room RoomID   `json:"roomId" validate:"required"`
	Kind RoomKind `json:"kind" validate:"omitempty,oneof=direct group channel"`
}

func (JoinRoomCommand) Op() string { return "joinRoom" }

type LeaveRoomCommand struct {
	Room RoomID `json:"roomId" validate:"required"`
}

func (LeaveRoomCommand) Op() string { return "leaveRoom" }

type SendMessageCommand struct {
	Destination Destination `json:"destination"`
	Content     string      `json:"content" validate:"required,max=4000"`
	ReplyTo     *string     `json:"replyTo,omitempty"`
	Attachments []string    `json:"attachments,omitempty" validate:"max=10"`
}

func (SendMessageCommand) Op() string { return "sendMessage" }

type EditMessageCommand struct {
	Room      RoomID `json:"roomId" validate:"required"`
	MessageID string `json:"messageId" validate:"required"`
	Content   string `json:"content" validate:"required,max=4000"`
}

func (EditMessageCommand) Op() string { return "editMessage" }

type DeleteMessageCommand struct {
	Room      RoomID `json:"roomId" validate:"required"`
	MessageID string `json:"messageId" validate:"required"`
}

func (DeleteMessageCommand) Op() string { return "deleteMessage" }

type ReactCommand struct {
	Room      RoomID `json:"roomId" validate:"required"`
	MessageID string `json:"messageId" validate:"required"`
	Emoji     string `json:"emoji" validate:"required,max=32"`
}

func (ReactCommand) Op() string { return "reactToMessage" }

type TypingCommand struct {
	Room     RoomID `json:"roomId" validate:"required"`
	IsTyping bool   `json:"isTyping"`
}

func (TypingCommand) Op() string { return "typing" }

type SetStatusCommand struct {
	State         PresenceState `json:"state" validate:"required"`
	CustomMessage string        `json:"customMessage,omitempty" validate:"max=128"`
}

func (SetStatusCommand) Op() string { return "setStatus" }

type InitiateCallCommand struct {
	Target IdentityID `json:"targetId" validate:"required"`
	Kind   CallKind   `json:"kind" validate:"required,oneof=audio video"`
}

func (InitiateCallCommand) Op() string { return "initiateCall" }

type AcceptCallCommand struct {
	Call CallID `json:"callId" validate:"required"`
}

func (AcceptCallCommand) Op() string { return "acceptCall" }

type RejectCallCommand struct {
	Call CallID `json:"callId" validate:"required"`
}

func (RejectCallCommand) Op() string { return "rejectCall" }

type EndCallCommand struct {
	Call CallID `json:"callId" validate:"required"`
}

func (EndCallCommand) Op() string { return "endCall" }

type RelaySignalCommand struct {
	Call    CallID          `json:"callId" validate:"required"`
	Target  IdentityID      `json:"targetId" validate:"required"`
	Kind    SignalKind      `json:"kind" validate:"required"`
	Payload json.RawMessage `json:"payload" validate:"required"`
}

func (RelaySignalCommand) Op() string { return "relaySignal" }
