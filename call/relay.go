// Package call relays negotiation payloads between peers and tracks
// active sessions so they can be torn down on hangup or disconnect.
// Payloads are opaque: the relay never couples itself to a specific
// media-negotiation protocol version.
package call

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"chaoshub/contract"
	"chaoshub/domain"
	"chaoshub/domain/event"
	"chaoshub/errors"
)

type Relay struct {
	mu         sync.Mutex
	log        *slog.Logger
	registry   contract.IConnectionRegistry
	sessions   map[domain.CallID]*domain.CallSession
	byIdentity map[domain.IdentityID]map[domain.CallID]struct{}
}

func NewRelay(log *slog.Logger, registry contract.IConnectionRegistry) *Relay {
	return &Relay{
		log:        log,
		registry:   registry,
		sessions:   make(map[domain.CallID]*domain.CallSession),
		byIdentity: make(map[domain.IdentityID]map[domain.CallID]struct{}),
	}
}

// InitiateCall creates a session and rings every connection of the
// target. An offline target fails fast with no session left behind.
func (r *Relay) InitiateCall(ctx context.Context, callerConn domain.ConnectionID, target domain.IdentityID, kind domain.CallKind) (domain.CallID, error) {
	caller, ok := r.registry.IdentityOf(callerConn)
	if !ok {
		return "", errors.ErrUnknownConnection
	}
	if !r.registry.IsOnline(target) {
		return "", errors.ErrDestinationUnavailable
	}

	session := &domain.CallSession{
		ID: domain.CallID(uuid.NewString()),
		Participants: map[domain.IdentityID]struct{}{
			caller.ID: {},
			target:    {},
		},
		Kind:      kind,
		StartedAt: time.Now().UTC(),
	}

	r.mu.Lock()
	r.sessions[session.ID] = session
	r.indexLocked(caller.ID, session.ID)
	r.indexLocked(target, session.ID)
	r.mu.Unlock()

	r.registry.BroadcastIdentity(ctx, target, event.IncomingCall{
		Call:     session.ID,
		From:     caller.ID,
		FromName: caller.DisplayName,
		Kind:     kind,
	})
	return session.ID, nil
}

func (r *Relay) AcceptCall(ctx context.Context, conn domain.ConnectionID, callID domain.CallID) error {
	actor, others, err := r.resolveParticipants(conn, callID)
	if err != nil {
		return err
	}
	r.notify(ctx, others, event.CallAccepted{Call: callID, By: actor})
	return nil
}

// RejectCall notifies the peers and tears the session down: a rejected
// two-party session has nothing left to negotiate.
func (r *Relay) RejectCall(ctx context.Context, conn domain.ConnectionID, callID domain.CallID) error {
	actor, others, err := r.resolveParticipants(conn, callID)
	if err != nil {
		return err
	}
	r.remove(callID)
	r.notify(ctx, others, event.CallRejected{Call: callID, By: actor})
	return nil
}

// RelaySignal forwards the payload untouched to every connection of the
// target peer. Both ends must belong to the session.
func (r *Relay) RelaySignal(ctx context.Context, conn domain.ConnectionID, callID domain.CallID, target domain.IdentityID, kind domain.SignalKind, payload json.RawMessage) error {
	if !domain.ValidSignalKind(kind) {
		return errors.ErrValidation
	}
	actor, _, err := r.resolveParticipants(conn, callID)
	if err != nil {
		return err
	}

	r.mu.Lock()
	session, ok := r.sessions[callID]
	isParticipant := ok && session.HasParticipant(target)
	r.mu.Unlock()
	if !isParticipant {
		return errors.ErrNotParticipant
	}

	r.registry.BroadcastIdentity(ctx, target, event.Signal{
		Call:    callID,
		From:    actor,
		Kind:    kind,
		Payload: payload,
	})
	return nil
}

func (r *Relay) EndCall(ctx context.Context, conn domain.ConnectionID, callID domain.CallID) error {
	actor, others, err := r.resolveParticipants(conn, callID)
	if err != nil {
		return err
	}
	r.remove(callID)
	r.notify(ctx, others, event.CallEnded{Call: callID, By: actor})
	return nil
}

// HandleDisconnect tears down every session the identity participates
// in once its last connection is gone. A session left with fewer than
// two participants cannot continue and is removed.
func (r *Relay) HandleDisconnect(ctx context.Context, id domain.IdentityID) {
	r.mu.Lock()
	var affected []*domain.CallSession
	for callID := range r.byIdentity[id] {
		if session, ok := r.sessions[callID]; ok {
			affected = append(affected, session)
		}
	}
	for _, session := range affected {
		delete(session.Participants, id)
		if len(session.Participants) < 2 {
			r.removeLocked(session.ID)
		}
	}
	delete(r.byIdentity, id)
	r.mu.Unlock()

	for _, session := range affected {
		var remaining []domain.IdentityID
		for participant := range session.Participants {
			remaining = append(remaining, participant)
		}
		r.notify(ctx, remaining, event.CallEnded{Call: session.ID, By: id})
	}
}

// Session returns a copy of the tracked session, mainly for tests and
// introspection.
func (r *Relay) Session(callID domain.CallID) (domain.CallSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[callID]
	if !ok {
		return domain.CallSession{}, false
	}
	copied := *session
	copied.Participants = make(map[domain.IdentityID]struct{}, len(session.Participants))
	for id := range session.Participants {
		copied.Participants[id] = struct{}{}
	}
	return copied, true
}

// resolveParticipants checks that the connection's identity belongs to
// the call and returns it along with the other participants.
func (r *Relay) resolveParticipants(conn domain.ConnectionID, callID domain.CallID) (domain.IdentityID, []domain.IdentityID, error) {
	actor, ok := r.registry.IdentityOf(conn)
	if !ok {
		return "", nil, errors.ErrUnknownConnection
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[callID]
	if !ok {
		return "", nil, errors.ErrUnknownCall
	}
	if !session.HasParticipant(actor.ID) {
		return "", nil, errors.ErrNotParticipant
	}

	var others []domain.IdentityID
	for participant := range session.Participants {
		if participant != actor.ID {
			others = append(others, participant)
		}
	}
	return actor.ID, others, nil
}

func (r *Relay) notify(ctx context.Context, participants []domain.IdentityID, e event.Event) {
	for _, id := range participants {
		r.registry.BroadcastIdentity(ctx, id, e)
	}
}

func (r *Relay) remove(callID domain.CallID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removeLocked(callID)
}

func (r *Relay) removeLocked(callID domain.CallID) {
	session, ok := r.sessions[callID]
	if !ok {
		return
	}
	delete(r.sessions, callID)
	for participant := range session.Participants {
		if set, ok := r.byIdentity[participant]; ok {
			delete(set, callID)
			if len(set) == 0 {
				delete(r.byIdentity, participant)
			}
		}
	}
}

func (r *Relay) indexLocked(id domain.IdentityID, callID domain.CallID) {
	set, ok := r.byIdentity[id]
	if !ok {
		set = make(map[domain.CallID]struct{})
		r.byIdentity[id] = set
	}
	set[callID] = struct{}{}
}
