// Package runtime wires the realtime components together and owns the
// lifecycle of a connection: authenticated connect, event dispatch, and
// the coordinated teardown at transport close. It orchestrates without
// containing domain rules of its own.
package runtime

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"chaoshub/auth"
	"chaoshub/call"
	"chaoshub/contract"
	"chaoshub/domain"
	"chaoshub/domain/event"
	"chaoshub/errors"
	"chaoshub/presence"
	"chaoshub/router"
	"chaoshub/typing"
)

type Engine struct {
	log        *slog.Logger
	gate       *auth.Gate
	registry   contract.IConnectionRegistry
	rooms      contract.IRoomManager
	router     *router.Router
	presence   *presence.Broadcaster
	typing     *typing.Tracker
	calls      *call.Relay
	supervisor contract.ISupervisor
	workers    []contract.Worker
	validate   *validator.Validate
}

func NewEngine(
	log *slog.Logger,
	gate *auth.Gate,
	registry contract.IConnectionRegistry,
	rooms contract.IRoomManager,
	messageRouter *router.Router,
	presenceBroadcaster *presence.Broadcaster,
	typingTracker *typing.Tracker,
	callRelay *call.Relay,
	supervisor contract.ISupervisor,
	workers ...contract.Worker,
) *Engine {
	return &Engine{
		log:        log,
		gate:       gate,
		registry:   registry,
		rooms:      rooms,
		router:     messageRouter,
		presence:   presenceBroadcaster,
		typing:     typingTracker,
		calls:      callRelay,
		supervisor: supervisor,
		workers:    workers,
		validate:   validator.New(),
	}
}

// Start hands the background workers to the supervisor and blocks until
// the context is canceled.
func (e *Engine) Start(ctx context.Context) {
	e.log.Info("Starting engine and all supervised workers")
	e.supervisor.Add(e.workers...)
	e.supervisor.Run(ctx)
}

func (e *Engine) Stop() {
	e.log.Info("Requesting engine shutdown")
	e.supervisor.Stop()
}

// Connect runs the mandatory handshake sequence: verify the credential,
// register the connection, announce presence on the identity's first
// connection. Nothing else is reachable for the transport until this
// returns.
func (e *Engine) Connect(ctx context.Context, token string, sink contract.EventSink) (domain.Identity, domain.ConnectionID, error) {
	identity, err := e.gate.Authenticate(ctx, token)
	if err != nil {
		return domain.Identity{}, "", err
	}

	connID := domain.ConnectionID(uuid.NewString())
	first := e.registry.Register(identity, connID, sink)
	if first {
		e.presence.OnFirstConnection(ctx, identity)
	}

	e.log.Info("Connection registered",
		"user_id", identity.ID,
		"connection_id", connID,
		"first_for_identity", first)
	return identity, connID, nil
}

// Disconnect is the system's only cancellation signal. The steps run as
// one sequence per connection: typing cleanup, leave every joined room,
// deregister, and on the identity's last connection tear down its calls
// and broadcast offline. No handler observes a half-torn-down
// connection because the transport stops reading before calling this.
func (e *Engine) Disconnect(ctx context.Context, connID domain.ConnectionID) {
	identity, ok := e.registry.IdentityOf(connID)
	if !ok {
		return
	}

	joined := e.rooms.Rooms(connID)
	e.typing.StopAll(ctx, identity.ID, joined)
	e.rooms.LeaveAll(connID)

	_, last := e.registry.Deregister(connID)
	if last {
		e.calls.HandleDisconnect(ctx, identity.ID)
		e.presence.OnLastDisconnection(ctx, identity.ID)
	}

	e.log.Info("Connection torn down",
		"user_id", identity.ID,
		"connection_id", connID,
		"last_for_identity", last)
}

// Dispatch routes one decoded client command to its owning component.
// Each call is its own failure domain: an unexpected error or panic is
// answered with a generic error to the originating connection only, and
// shared registries stay in their last consistent state.
func (e *Engine) Dispatch(ctx context.Context, connID domain.ConnectionID, cmd domain.Command) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("Handler panic recovered", "op", cmd.Op(), "panic", r)
			e.registry.Push(ctx, connID, event.Error{
				Code:    "InternalError",
				Message: "internal error",
			})
		}
	}()

	ack, err := e.handle(ctx, connID, cmd)
	if err != nil {
		e.log.Warn("Command failed", "op", cmd.Op(), "error", err)
		e.registry.Push(ctx, connID, event.Error{
			Code:    errors.CodeOf(err),
			Message: cmd.Op() + " failed",
			Details: err.Error(),
		})
		return
	}
	if ack != nil {
		e.registry.Push(ctx, connID, *ack)
	}
}

// handle returns the ack to emit, or nil for fire-and-forget commands.
// Every command passes the validator before its component is touched.
func (e *Engine) handle(ctx context.Context, connID domain.ConnectionID, cmd domain.Command) (*event.Ack, error) {
	identity, ok := e.registry.IdentityOf(connID)
	if !ok {
		return nil, errors.ErrUnknownConnection
	}
	if err := e.validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}

	switch c := cmd.(type) {
	case domain.JoinRoomCommand:
		kind := c.Kind
		if kind == "" {
			kind = domain.Group
		}
		e.rooms.Join(connID, c.Room, kind)
		return &event.Ack{Op: c.Op()}, nil

	case domain.LeaveRoomCommand:
		e.rooms.Leave(connID, c.Room)
		return &event.Ack{Op: c.Op()}, nil

	case domain.SendMessageCommand:
		receipt, err := e.router.SendMessage(ctx, connID, c)
		if err != nil {
			return nil, err
		}
		return &event.Ack{Op: c.Op(), MessageID: receipt.MessageID, Timestamp: &receipt.Timestamp}, nil

	case domain.EditMessageCommand:
		receipt, err := e.router.EditMessage(ctx, connID, c)
		if err != nil {
			return nil, err
		}
		return &event.Ack{Op: c.Op(), MessageID: receipt.MessageID, Timestamp: &receipt.Timestamp}, nil

	case domain.DeleteMessageCommand:
		if err := e.router.DeleteMessage(ctx, connID, c); err != nil {
			return nil, err
		}
		return &event.Ack{Op: c.Op(), MessageID: c.MessageID}, nil

	case domain.ReactCommand:
		if err := e.router.ToggleReaction(ctx, connID, c); err != nil {
			return nil, err
		}
		return &event.Ack{Op: c.Op(), MessageID: c.MessageID}, nil

	case domain.TypingCommand:
		// Fire-and-forget: no ack either way. Membership is checked the
		// same way as on the send path, so a non-member cannot leak
		// indicators into a room it never joined.
		if !e.rooms.IsMember(connID, c.Room) {
			return nil, errors.ErrNotRoomMember
		}
		if c.IsTyping {
			e.typing.StartTyping(ctx, c.Room, identity.ID)
		} else {
			e.typing.StopTyping(ctx, c.Room, identity.ID)
		}
		return nil, nil

	case domain.SetStatusCommand:
		if err := e.presence.SetStatus(ctx, identity.ID, c.State, c.CustomMessage); err != nil {
			return nil, err
		}
		return &event.Ack{Op: c.Op()}, nil

	case domain.InitiateCallCommand:
		callID, err := e.calls.InitiateCall(ctx, connID, c.Target, c.Kind)
		if err != nil {
			return nil, err
		}
		return &event.Ack{Op: c.Op(), Call: callID}, nil

	case domain.AcceptCallCommand:
		if err := e.calls.AcceptCall(ctx, connID, c.Call); err != nil {
			return nil, err
		}
		return &event.Ack{Op: c.Op(), Call: c.Call}, nil

	case domain.RejectCallCommand:
		if err := e.calls.RejectCall(ctx, connID, c.Call); err != nil {
			return nil, err
		}
		return &event.Ack{Op: c.Op(), Call: c.Call}, nil

	case domain.EndCallCommand:
		if err := e.calls.EndCall(ctx, connID, c.Call); err != nil {
			return nil, err
		}
		return &event.Ack{Op: c.Op(), Call: c.Call}, nil

	case domain.RelaySignalCommand:
		// Fire-and-forget; only failures surface.
		if err := e.calls.RelaySignal(ctx, connID, c.Call, c.Target, c.Kind, c.Payload); err != nil {
			return nil, err
		}
		return nil, nil

	default:
		return nil, fmt.Errorf("%w: unsupported op %q", errors.ErrValidation, cmd.Op())
	}
}
