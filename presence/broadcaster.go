// Package presence maintains the per-identity presence table and pushes
// transitions to the identities that care about them.
package presence

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"chaoshub/contract"
	"chaoshub/domain"
	"chaoshub/domain/event"
	"chaoshub/errors"
)

// Broadcaster is the only writer of presence state. The three entry
// points below are the complete set of mutations: connection count
// transitions and explicit user actions.
type Broadcaster struct {
	mu        sync.Mutex
	log       *slog.Logger
	records   map[domain.IdentityID]domain.PresenceRecord
	registry  contract.IConnectionRegistry
	interests contract.InterestResolver
}

func NewBroadcaster(log *slog.Logger, registry contract.IConnectionRegistry, interests contract.InterestResolver) *Broadcaster {
	return &Broadcaster{
		log:       log,
		records:   make(map[domain.IdentityID]domain.PresenceRecord),
		registry:  registry,
		interests: interests,
	}
}

// OnFirstConnection marks the identity Online. Multiple connections for
// one identity collapse to a single Online record, so this fires only on
// the zero-to-one transition.
func (b *Broadcaster) OnFirstConnection(ctx context.Context, identity domain.Identity) {
	b.mu.Lock()
	record := domain.PresenceRecord{
		Identity:   identity.ID,
		State:      domain.StateOnline,
		LastSeenAt: time.Now().UTC(),
	}
	b.records[identity.ID] = record
	b.mu.Unlock()

	b.broadcast(ctx, identity.ID, event.UserOnline{
		Identity:    identity.ID,
		DisplayName: identity.DisplayName,
		At:          record.LastSeenAt,
	})
}

// OnLastDisconnection marks the identity Offline once its final
// connection is gone.
func (b *Broadcaster) OnLastDisconnection(ctx context.Context, id domain.IdentityID) {
	now := time.Now().UTC()

	b.mu.Lock()
	b.records[id] = domain.PresenceRecord{
		Identity:   id,
		State:      domain.StateOffline,
		LastSeenAt: now,
	}
	b.mu.Unlock()

	b.broadcast(ctx, id, event.UserOffline{Identity: id, LastSeenAt: now})
}

// SetStatus is an explicit user action and always broadcasts, even when
// the state does not change or the identity has several connections.
func (b *Broadcaster) SetStatus(ctx context.Context, id domain.IdentityID, state domain.PresenceState, customMessage string) error {
	if !domain.ValidPresenceState(state) {
		return errors.ErrValidation
	}

	b.mu.Lock()
	b.records[id] = domain.PresenceRecord{
		Identity:      id,
		State:         state,
		CustomMessage: customMessage,
		LastSeenAt:    time.Now().UTC(),
	}
	b.mu.Unlock()

	b.broadcast(ctx, id, event.UserStatusChanged{
		Identity:      id,
		State:         state,
		CustomMessage: customMessage,
	})
	return nil
}

// Snapshot returns the current record, defaulting to Offline for an
// identity never seen.
func (b *Broadcaster) Snapshot(id domain.IdentityID) domain.PresenceRecord {
	b.mu.Lock()
	defer b.mu.Unlock()

	record, ok := b.records[id]
	if !ok {
		return domain.PresenceRecord{Identity: id, State: domain.StateOffline}
	}
	return record
}

// broadcast pushes the event to every live connection of every
// interested identity. The interested set is precomputed by the
// resolver; nothing here blocks on I/O.
func (b *Broadcaster) broadcast(ctx context.Context, subject domain.IdentityID, e event.Event) {
	for _, watcher := range b.interests.InterestedIn(subject) {
		if watcher == subject {
			continue
		}
		b.registry.BroadcastIdentity(ctx, watcher, e)
	}
}
