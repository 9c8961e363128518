package domain

import "time"

// Message is a chat event as the store sees it. ID and At are assigned
// by the persistence layer at write time; a message without them has
// not been durably accepted yet.
type Message struct {
	ID          string
	Room        RoomID
	Sender      IdentityID
	Content     string
	ReplyTo     *string
	Attachments []string
	Reactions   map[string][]IdentityID
	At          time.Time
	EditedAt    *time.Time
}

// Destination addresses an outgoing message: either a room the sender
// has joined, or another identity for a direct message.
type Destination struct {
	Room   RoomID     `json:"roomId,omitempty"`
	Direct IdentityID `json:"targetId,omitempty"`
}

func (d Destination) IsDirect() bool {
	return d.Direct != ""
}
