package domain

import "time"

type PresenceState string

const (
	StateOnline  PresenceState = "online"
	StateAway    PresenceState = "away"
	StateBusy    PresenceState = "busy"
	StateOffline PresenceState = "offline"
	StateCustom  PresenceState = "custom"
)

// ValidPresenceState reports whether a client supplied state is one a
// user may explicitly set. Offline is excluded: it is derived from the
// connection count, never requested.
func ValidPresenceState(s PresenceState) bool {
	switch s {
	case StateOnline, StateAway, StateBusy, StateCustom:
		return true
	}
	return false
}

// PresenceRecord holds an identity's visible state. There is exactly one
// record per identity regardless of how many connections it has.
type PresenceRecord struct {
	Identity      IdentityID
	State         PresenceState
	CustomMessage string
	LastSeenAt    time.Time
}
