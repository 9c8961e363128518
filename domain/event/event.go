// Package event defines the canonical outbound event contract pushed to
// connected clients. Event names double as wire frame types.
package event

import (
	"encoding/json"
	"time"

	"chaoshub/domain"
)

type Event interface {
	EventName() string
}

type MessageCreated struct {
	ID          string            `json:"messageId"`
	Room        domain.RoomID     `json:"roomId"`
	Sender      domain.IdentityID `json:"senderId"`
	SenderName  string            `json:"senderName"`
	Content     string            `json:"content"`
	ReplyTo     *string           `json:"replyTo,omitempty"`
	Attachments []string          `json:"attachments,omitempty"`
	At          time.Time         `json:"createdAt"`
}

func (MessageCreated) EventName() string { return "messageCreated" }

type MessageUpdated struct {
	ID      string            `json:"messageId"`
	Room    domain.RoomID     `json:"roomId"`
	Sender  domain.IdentityID `json:"senderId"`
	Content string            `json:"content"`
	At      time.Time         `json:"editedAt"`
}

func (MessageUpdated) EventName() string { return "messageUpdated" }

// MessageDeleted instructs clients to remove the message by id; the
// content is never echoed back.
type MessageDeleted struct {
	ID   string            `json:"messageId"`
	Room domain.RoomID     `json:"roomId"`
	By   domain.IdentityID `json:"deletedBy"`
}

func (MessageDeleted) EventName() string { return "messageDeleted" }

type MessageReaction struct {
	MessageID string            `json:"messageId"`
	Room      domain.RoomID     `json:"roomId"`
	Identity  domain.IdentityID `json:"userId"`
	Emoji     string            `json:"emoji"`
	Added     bool              `json:"added"`
}

func (MessageReaction) EventName() string { return "messageReaction" }

type UserOnline struct {
	Identity    domain.IdentityID `json:"userId"`
	DisplayName string            `json:"displayName"`
	At          time.Time         `json:"at"`
}

func (UserOnline) EventName() string { return "userOnline" }

type UserOffline struct {
	Identity   domain.IdentityID `json:"userId"`
	LastSeenAt time.Time         `json:"lastSeenAt"`
}

func (UserOffline) EventName() string { return "userOffline" }

type UserStatusChanged struct {
	Identity      domain.IdentityID    `json:"userId"`
	State         domain.PresenceState `json:"state"`
	CustomMessage string               `json:"customMessage,omitempty"`
}

func (UserStatusChanged) EventName() string { return "userStatusChanged" }

type UserTyping struct {
	Room     domain.RoomID     `json:"roomId"`
	Identity domain.IdentityID `json:"userId"`
}

func (UserTyping) EventName() string { return "userTyping" }

type UserStoppedTyping struct {
	Room     domain.RoomID     `json:"roomId"`
	Identity domain.IdentityID `json:"userId"`
}

func (UserStoppedTyping) EventName() string { return "userStoppedTyping" }

type IncomingCall struct {
	Call     domain.CallID     `json:"callId"`
	From     domain.IdentityID `json:"fromId"`
	FromName string            `json:"fromName"`
	Kind     domain.CallKind   `json:"kind"`
}

func (IncomingCall) EventName() string { return "incomingCall" }

type CallAccepted struct {
	Call domain.CallID     `json:"callId"`
	By   domain.IdentityID `json:"byId"`
}

func (CallAccepted) EventName() string { return "callAccepted" }

type CallRejected struct {
	Call domain.CallID     `json:"callId"`
	By   domain.IdentityID `json:"byId"`
}

func (CallRejected) EventName() string { return "callRejected" }

type CallEnded struct {
	Call domain.CallID     `json:"callId"`
	By   domain.IdentityID `json:"byId,omitempty"`
}

func (CallEnded) EventName() string { return "callEnded" }

// Signal carries an opaque negotiation payload between call peers.
// The relay never inspects Payload.
type Signal struct {
	Call    domain.CallID     `json:"callId"`
	From    domain.IdentityID `json:"fromId"`
	Kind    domain.SignalKind `json:"-"`
	Payload json.RawMessage   `json:"payload"`
}

func (s Signal) EventName() string {
	switch s.Kind {
	case domain.SignalAnswer:
		return "signalAnswer"
	case domain.SignalICECandidate:
		return "signalIceCandidate"
	case domain.SignalScreenShare:
		return "signalScreenShare"
	default:
		return "signalOffer"
	}
}

// Ack confirms a client operation. Message acks carry the persisted id
// and timestamp; call acks carry the call id.
type Ack struct {
	Op        string        `json:"op"`
	MessageID string        `json:"messageId,omitempty"`
	Timestamp *time.Time    `json:"timestamp,omitempty"`
	Call      domain.CallID `json:"callId,omitempty"`
}

func (Ack) EventName() string { return "ack" }

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (Error) EventName() string { return "error" }
