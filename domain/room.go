package domain

type RoomID string

type RoomKind string

const (
	DirectPair    RoomKind = "direct"
	Group         RoomKind = "group"
	ServerChannel RoomKind = "channel"
)

// DirectRoomID derives the room id shared by a pair of identities.
// The two ids are ordered before concatenation so that both sides
// compute the same room id without any lookup.
func DirectRoomID(a, b IdentityID) RoomID {
	lo, hi := a, b
	if hi < lo {
		lo, hi = hi, lo
	}
	return RoomID("dm:" + string(lo) + ":" + string(hi))
}
