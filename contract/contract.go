//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"time"

	"chaoshub/domain"
	"chaoshub/domain/event"
)

// EventSink is one client connection's outbound half. Implementations
// must be safe for concurrent use and must not block indefinitely:
// a slow client is the sink's problem, never the caller's.
type EventSink interface {
	Consume(ctx context.Context, e event.Event) error
}

// CredentialVerifier checks a bearer credential at handshake time.
// External collaborator; expected to be the only potentially slow call
// on the connect path.
type CredentialVerifier interface {
	Verify(ctx context.Context, token string) (domain.Identity, error)
}

// Receipt is the durable id and timestamp assigned by the store.
type Receipt struct {
	MessageID string
	Timestamp time.Time
}

// MessageStore is the external persistence collaborator. UpdateReactions
// must apply an atomic set-union (add) or set-difference (remove) so
// concurrent reactions to the same message are never lost.
type MessageStore interface {
	Persist(ctx context.Context, m domain.Message) (Receipt, error)
	UpdateContent(ctx context.Context, room domain.RoomID, messageID string, actor domain.IdentityID, content string) (time.Time, error)
	Delete(ctx context.Context, room domain.RoomID, messageID string, actor domain.IdentityID) error
	UpdateReactions(ctx context.Context, room domain.RoomID, messageID, emoji string, id domain.IdentityID, add bool) error
	HasReaction(ctx context.Context, room domain.RoomID, messageID, emoji string, id domain.IdentityID) (bool, error)
}

// AuthorizationOracle answers whether a sender may open a direct
// conversation with a target (friendship, blocks, server policy).
type AuthorizationOracle interface {
	CanMessage(ctx context.Context, sender, target domain.IdentityID) (bool, error)
}

// InterestResolver returns the precomputed set of identities that care
// about a subject's presence transitions. Must never block on I/O.
type InterestResolver interface {
	InterestedIn(id domain.IdentityID) []domain.IdentityID
}

type IConnectionRegistry interface {
	Register(identity domain.Identity, conn domain.ConnectionID, sink EventSink) (firstForIdentity bool)
	Deregister(conn domain.ConnectionID) (identity domain.IdentityID, lastForIdentity bool)
	ResolveConnections(id domain.IdentityID) []domain.ConnectionID
	IsOnline(id domain.IdentityID) bool
	IdentityOf(conn domain.ConnectionID) (domain.Identity, bool)
	Broadcast(ctx context.Context, conns []domain.ConnectionID, e event.Event)
	BroadcastIdentity(ctx context.Context, id domain.IdentityID, e event.Event)
	Push(ctx context.Context, conn domain.ConnectionID, e event.Event)
}

type IRoomManager interface {
	Join(conn domain.ConnectionID, room domain.RoomID, kind domain.RoomKind)
	Leave(conn domain.ConnectionID, room domain.RoomID)
	LeaveAll(conn domain.ConnectionID) []domain.RoomID
	Members(room domain.RoomID) []domain.ConnectionID
	Rooms(conn domain.ConnectionID) []domain.RoomID
	IsMember(conn domain.ConnectionID, room domain.RoomID) bool
}

type WorkerName string

// Worker is a long-running background task supervised for panics.
type Worker interface {
	Run(ctx context.Context) error
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// GetWorkerName uses reflection to retrieve the type name of the worker,
// used for logging and supervision during lifecycle events.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
