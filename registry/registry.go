// Package registry owns the identity to connection mapping. It is the
// most contended table in the system: every operation is a short
// in-memory mutation behind a single mutex, and event delivery always
// happens outside the lock.
package registry

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"chaoshub/contract"
	"chaoshub/domain"
	"chaoshub/domain/event"
)

type connEntry struct {
	identity    domain.Identity
	sink        contract.EventSink
	connectedAt time.Time
}

type ConnectionRegistry struct {
	mu          sync.RWMutex
	log         *slog.Logger
	byIdentity  map[domain.IdentityID]map[domain.ConnectionID]struct{}
	connections map[domain.ConnectionID]connEntry
}

func NewConnectionRegistry(log *slog.Logger) *ConnectionRegistry {
	return &ConnectionRegistry{
		log:         log,
		byIdentity:  make(map[domain.IdentityID]map[domain.ConnectionID]struct{}),
		connections: make(map[domain.ConnectionID]connEntry),
	}
}

// Register attaches a live connection to its identity and reports
// whether it is the identity's first one.
func (r *ConnectionRegistry) Register(identity domain.Identity, conn domain.ConnectionID, sink contract.EventSink) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.connections[conn] = connEntry{
		identity:    identity,
		sink:        sink,
		connectedAt: time.Now().UTC(),
	}

	set, ok := r.byIdentity[identity.ID]
	if !ok {
		set = make(map[domain.ConnectionID]struct{})
		r.byIdentity[identity.ID] = set
	}
	set[conn] = struct{}{}
	return len(set) == 1
}

// Deregister removes a connection and reports whether its identity has
// no live connections left.
func (r *ConnectionRegistry) Deregister(conn domain.ConnectionID) (domain.IdentityID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.connections[conn]
	if !ok {
		return "", false
	}
	delete(r.connections, conn)

	id := entry.identity.ID
	if set, ok := r.byIdentity[id]; ok {
		delete(set, conn)
		if len(set) == 0 {
			delete(r.byIdentity, id)
			return id, true
		}
	}
	return id, false
}

func (r *ConnectionRegistry) ResolveConnections(id domain.IdentityID) []domain.ConnectionID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set, ok := r.byIdentity[id]
	if !ok {
		return nil
	}
	conns := make([]domain.ConnectionID, 0, len(set))
	for conn := range set {
		conns = append(conns, conn)
	}
	return conns
}

func (r *ConnectionRegistry) IsOnline(id domain.IdentityID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byIdentity[id]) > 0
}

func (r *ConnectionRegistry) IdentityOf(conn domain.ConnectionID) (domain.Identity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.connections[conn]
	return entry.identity, ok
}

// Broadcast delivers an event to the given connections. Sinks are
// snapshotted under the read lock and consumed after it is released so
// a slow client never stalls the registry.
func (r *ConnectionRegistry) Broadcast(ctx context.Context, conns []domain.ConnectionID, e event.Event) {
	r.mu.RLock()
	sinks := make([]contract.EventSink, 0, len(conns))
	for _, conn := range conns {
		if entry, ok := r.connections[conn]; ok {
			sinks = append(sinks, entry.sink)
		}
	}
	r.mu.RUnlock()

	for _, sink := range sinks {
		if err := sink.Consume(ctx, e); err != nil {
			r.log.Warn("Sink refused event", "event", e.EventName(), "error", err)
		}
	}
}

// BroadcastIdentity fans an event out to every live connection of one
// identity.
func (r *ConnectionRegistry) BroadcastIdentity(ctx context.Context, id domain.IdentityID, e event.Event) {
	r.Broadcast(ctx, r.ResolveConnections(id), e)
}

// Push delivers an event to a single connection, dropping it silently
// if the connection is already gone.
func (r *ConnectionRegistry) Push(ctx context.Context, conn domain.ConnectionID, e event.Event) {
	r.Broadcast(ctx, []domain.ConnectionID{conn}, e)
}
