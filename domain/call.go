package domain

import "time"

type CallID string

type CallKind string

const (
	AudioCall CallKind = "audio"
	VideoCall CallKind = "video"
)

// SignalKind names the negotiation payloads the relay forwards.
// Payload contents are opaque to the core.
type SignalKind string

const (
	SignalOffer        SignalKind = "offer"
	SignalAnswer       SignalKind = "answer"
	SignalICECandidate SignalKind = "ice-candidate"
	SignalScreenShare  SignalKind = "screen-share"
)

func ValidSignalKind(k SignalKind) bool {
	switch k {
	case SignalOffer, SignalAnswer, SignalICECandidate, SignalScreenShare:
		return true
	}
	return false
}

// CallSession tracks an active call between identities so it can be
// torn down when a participant leaves or drops its last connection.
type CallSession struct {
	ID           CallID
	Participants map[IdentityID]struct{}
	Kind         CallKind
	StartedAt    time.Time
}

func (s *CallSession) HasParticipant(id IdentityID) bool {
	_, ok := s.Participants[id]
	return ok
}
