// Package typing tracks short-lived typing indicators. State is
// memory-only and expires on a TTL; nothing here is ever persisted.
package typing

import (
	"container/heap"
	"context"
	"log/slog"
	"sync"
	"time"

	"chaoshub/contract"
	"chaoshub/domain"
	"chaoshub/domain/event"
)

type key struct {
	room     domain.RoomID
	identity domain.IdentityID
}

type state struct {
	expiresAt time.Time
	gen       uint64
}

// Tracker upserts typing state and broadcasts the start/stop pair to the
// room, excluding the typist's own connections. Expiry is driven by a
// single min-heap swept periodically, not one timer per keystroke, so
// resource use stays bounded under load.
type Tracker struct {
	mu       sync.Mutex
	log      *slog.Logger
	ttl      time.Duration
	states   map[key]state
	expiries expiryHeap
	rooms    contract.IRoomManager
	registry contract.IConnectionRegistry
}

func NewTracker(log *slog.Logger, registry contract.IConnectionRegistry, rooms contract.IRoomManager, ttl time.Duration) *Tracker {
	return &Tracker{
		log:      log,
		ttl:      ttl,
		states:   make(map[key]state),
		rooms:    rooms,
		registry: registry,
	}
}

// StartTyping refreshes the TTL when the identity is already typing in
// the room instead of duplicating state.
func (t *Tracker) StartTyping(ctx context.Context, room domain.RoomID, id domain.IdentityID) {
	k := key{room: room, identity: id}

	t.mu.Lock()
	previous, existed := t.states[k]
	next := state{expiresAt: time.Now().UTC().Add(t.ttl), gen: previous.gen + 1}
	t.states[k] = next
	heap.Push(&t.expiries, expiryItem{at: next.expiresAt, key: k, gen: next.gen})
	t.mu.Unlock()

	// A refresh only extends the deadline; peers already saw the start.
	if existed {
		return
	}
	t.broadcast(ctx, room, id, event.UserTyping{Room: room, Identity: id})
}

// StopTyping clears the state and notifies the room. Quietly does
// nothing when the identity was not typing, so the automatic call after
// a successful send is idempotent.
func (t *Tracker) StopTyping(ctx context.Context, room domain.RoomID, id domain.IdentityID) {
	k := key{room: room, identity: id}

	t.mu.Lock()
	_, existed := t.states[k]
	delete(t.states, k)
	t.mu.Unlock()

	if !existed {
		return
	}
	t.broadcast(ctx, room, id, event.UserStoppedTyping{Room: room, Identity: id})
}

// StopAll clears every typing state the identity holds in the given
// rooms; used by the disconnect teardown.
func (t *Tracker) StopAll(ctx context.Context, id domain.IdentityID, roomIDs []domain.RoomID) {
	for _, room := range roomIDs {
		t.StopTyping(ctx, room, id)
	}
}

// expire pops every deadline that has passed. Heap items outlived by a
// refresh carry a stale generation and are skipped.
func (t *Tracker) expire(ctx context.Context, now time.Time) {
	var expired []key

	t.mu.Lock()
	for t.expiries.Len() > 0 {
		item := t.expiries[0]
		if item.at.After(now) {
			break
		}
		heap.Pop(&t.expiries)

		current, ok := t.states[item.key]
		if !ok || current.gen != item.gen || current.expiresAt.After(now) {
			continue
		}
		delete(t.states, item.key)
		expired = append(expired, item.key)
	}
	t.mu.Unlock()

	for _, k := range expired {
		t.broadcast(ctx, k.room, k.identity, event.UserStoppedTyping{Room: k.room, Identity: k.identity})
	}
}

func (t *Tracker) broadcast(ctx context.Context, room domain.RoomID, typist domain.IdentityID, e event.Event) {
	members := t.rooms.Members(room)
	recipients := members[:0:0]
	for _, conn := range members {
		identity, ok := t.registry.IdentityOf(conn)
		if !ok || identity.ID == typist {
			continue
		}
		recipients = append(recipients, conn)
	}
	t.registry.Broadcast(ctx, recipients, e)
}

type expiryItem struct {
	at  time.Time
	key key
	gen uint64
}

type expiryHeap []expiryItem

func (h expiryHeap) Len() int            { return len(h) }
func (h expiryHeap) Less(i, j int) bool  { return h[i].at.Before(h[j].at) }
func (h expiryHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *expiryHeap) Push(x any)         { *h = append(*h, x.(expiryItem)) }
func (h *expiryHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
