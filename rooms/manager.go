// Package rooms tracks which connections joined which fan-out groups.
// Rooms are created lazily on first join and deleted once empty.
package rooms

import (
	"log/slog"
	"sync"

	"chaoshub/domain"
)

type room struct {
	kind    domain.RoomKind
	members map[domain.ConnectionID]struct{}
}

type Manager struct {
	mu     sync.Mutex
	log    *slog.Logger
	rooms  map[domain.RoomID]*room
	joined map[domain.ConnectionID]map[domain.RoomID]struct{}
}

func NewManager(log *slog.Logger) *Manager {
	return &Manager{
		log:    log,
		rooms:  make(map[domain.RoomID]*room),
		joined: make(map[domain.ConnectionID]map[domain.RoomID]struct{}),
	}
}

// Join is idempotent: joining a room twice leaves a single membership.
func (m *Manager) Join(conn domain.ConnectionID, roomID domain.RoomID, kind domain.RoomKind) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.rooms[roomID]
	if !ok {
		r = &room{kind: kind, members: make(map[domain.ConnectionID]struct{})}
		m.rooms[roomID] = r
	}
	r.members[conn] = struct{}{}

	set, ok := m.joined[conn]
	if !ok {
		set = make(map[domain.RoomID]struct{})
		m.joined[conn] = set
	}
	set[roomID] = struct{}{}
}

func (m *Manager) Leave(conn domain.ConnectionID, roomID domain.RoomID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leaveLocked(conn, roomID)
}

// LeaveAll removes the connection from every room in its own joined
// snapshot. It never scans the full room table, so disconnect cost is
// proportional to the connection's memberships. Returns the rooms left.
func (m *Manager) LeaveAll(conn domain.ConnectionID) []domain.RoomID {
	m.mu.Lock()
	defer m.mu.Unlock()

	set, ok := m.joined[conn]
	if !ok {
		return nil
	}
	left := make([]domain.RoomID, 0, len(set))
	for roomID := range set {
		left = append(left, roomID)
	}
	for _, roomID := range left {
		m.leaveLocked(conn, roomID)
	}
	return left
}

func (m *Manager) leaveLocked(conn domain.ConnectionID, roomID domain.RoomID) {
	if r, ok := m.rooms[roomID]; ok {
		delete(r.members, conn)
		if len(r.members) == 0 {
			delete(m.rooms, roomID)
		}
	}
	if set, ok := m.joined[conn]; ok {
		delete(set, roomID)
		if len(set) == 0 {
			delete(m.joined, conn)
		}
	}
}

func (m *Manager) Members(roomID domain.RoomID) []domain.ConnectionID {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.rooms[roomID]
	if !ok {
		return nil
	}
	members := make([]domain.ConnectionID, 0, len(r.members))
	for conn := range r.members {
		members = append(members, conn)
	}
	return members
}

func (m *Manager) Rooms(conn domain.ConnectionID) []domain.RoomID {
	m.mu.Lock()
	defer m.mu.Unlock()

	set, ok := m.joined[conn]
	if !ok {
		return nil
	}
	roomIDs := make([]domain.RoomID, 0, len(set))
	for roomID := range set {
		roomIDs = append(roomIDs, roomID)
	}
	return roomIDs
}

func (m *Manager) IsMember(conn domain.ConnectionID, roomID domain.RoomID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.rooms[roomID]
	if !ok {
		return false
	}
	_, ok = r.members[conn]
	return ok
}
