// Package router resolves message destinations, persists through the
// external store, and fans events out to the interested connections.
// The shape of every operation is the same: resolve, authorize,
// persist, fan out, acknowledge.
package router

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"chaoshub/contract"
	"chaoshub/domain"
	"chaoshub/domain/event"
	"chaoshub/errors"
)

// TypingNotifier is the slice of the typing tracker the router needs:
// a successful send implies the sender stopped typing.
type TypingNotifier interface {
	StopTyping(ctx context.Context, room domain.RoomID, id domain.IdentityID)
}

type Router struct {
	log      *slog.Logger
	registry contract.IConnectionRegistry
	rooms    contract.IRoomManager
	store    contract.MessageStore
	oracle   contract.AuthorizationOracle
	typing   TypingNotifier
	validate *validator.Validate
}

func NewRouter(
	log *slog.Logger,
	registry contract.IConnectionRegistry,
	rooms contract.IRoomManager,
	store contract.MessageStore,
	oracle contract.AuthorizationOracle,
	typing TypingNotifier,
) *Router {
	return &Router{
		log:      log,
		registry: registry,
		rooms:    rooms,
		store:    store,
		oracle:   oracle,
		typing:   typing,
		validate: validator.New(),
	}
}

// target is a resolved destination: the room the message belongs to and
// the connections that must receive the fan-out.
type target struct {
	room       domain.RoomID
	recipients []domain.ConnectionID
}

// SendMessage persists first and fans out only after the store accepted
// the message: recipients must never see content the sender cannot
// later retrieve. The receipt is returned after fan-out so the sender's
// ack always trails the deliveries.
func (r *Router) SendMessage(ctx context.Context, senderConn domain.ConnectionID, cmd domain.SendMessageCommand) (contract.Receipt, error) {
	sender, ok := r.registry.IdentityOf(senderConn)
	if !ok {
		return contract.Receipt{}, errors.ErrUnknownConnection
	}
	if err := r.validate.Struct(cmd); err != nil {
		return contract.Receipt{}, fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}

	tgt, err := r.resolveTarget(ctx, senderConn, sender.ID, cmd.Destination)
	if err != nil {
		return contract.Receipt{}, err
	}

	receipt, err := r.store.Persist(ctx, domain.Message{
		Room:        tgt.room,
		Sender:      sender.ID,
		Content:     cmd.Content,
		ReplyTo:     cmd.ReplyTo,
		Attachments: cmd.Attachments,
	})
	if err != nil {
		return contract.Receipt{}, fmt.Errorf("%w: %v", errors.ErrPersistenceFailure, err)
	}

	r.registry.Broadcast(ctx, tgt.recipients, event.MessageCreated{
		ID:          receipt.MessageID,
		Room:        tgt.room,
		Sender:      sender.ID,
		SenderName:  sender.DisplayName,
		Content:     cmd.Content,
		ReplyTo:     cmd.ReplyTo,
		Attachments: cmd.Attachments,
		At:          receipt.Timestamp,
	})

	r.typing.StopTyping(ctx, tgt.room, sender.ID)
	return receipt, nil
}

// EditMessage rewrites the content in place. The store enforces that
// only the original author may edit.
func (r *Router) EditMessage(ctx context.Context, senderConn domain.ConnectionID, cmd domain.EditMessageCommand) (contract.Receipt, error) {
	if err := r.validate.Struct(cmd); err != nil {
		return contract.Receipt{}, fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}
	sender, tgt, err := r.resolveMember(senderConn, cmd.Room)
	if err != nil {
		return contract.Receipt{}, err
	}

	editedAt, err := r.store.UpdateContent(ctx, cmd.Room, cmd.MessageID, sender.ID, cmd.Content)
	if err != nil {
		return contract.Receipt{}, wrapStoreError(err)
	}

	r.registry.Broadcast(ctx, tgt.recipients, event.MessageUpdated{
		ID:      cmd.MessageID,
		Room:    cmd.Room,
		Sender:  sender.ID,
		Content: cmd.Content,
		At:      editedAt,
	})
	return contract.Receipt{MessageID: cmd.MessageID, Timestamp: editedAt}, nil
}

// DeleteMessage fans out a remove-by-id instruction, never the content.
func (r *Router) DeleteMessage(ctx context.Context, senderConn domain.ConnectionID, cmd domain.DeleteMessageCommand) error {
	if err := r.validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}
	sender, tgt, err := r.resolveMember(senderConn, cmd.Room)
	if err != nil {
		return err
	}

	if err := r.store.Delete(ctx, cmd.Room, cmd.MessageID, sender.ID); err != nil {
		return wrapStoreError(err)
	}

	r.registry.Broadcast(ctx, tgt.recipients, event.MessageDeleted{
		ID:   cmd.MessageID,
		Room: cmd.Room,
		By:   sender.ID,
	})
	return nil
}

// ToggleReaction adds the emoji when absent for this user and removes
// it otherwise. The store applies the update as an atomic set
// union/difference; identical toggles racing from two devices settle as
// last-write-wins per (message, emoji, user).
func (r *Router) ToggleReaction(ctx context.Context, senderConn domain.ConnectionID, cmd domain.ReactCommand) error {
	if err := r.validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}
	sender, tgt, err := r.resolveMember(senderConn, cmd.Room)
	if err != nil {
		return err
	}

	present, err := r.store.HasReaction(ctx, cmd.Room, cmd.MessageID, cmd.Emoji, sender.ID)
	if err != nil {
		return wrapStoreError(err)
	}
	add := !present
	if err := r.store.UpdateReactions(ctx, cmd.Room, cmd.MessageID, cmd.Emoji, sender.ID, add); err != nil {
		return wrapStoreError(err)
	}

	r.registry.Broadcast(ctx, tgt.recipients, event.MessageReaction{
		MessageID: cmd.MessageID,
		Room:      cmd.Room,
		Identity:  sender.ID,
		Emoji:     cmd.Emoji,
		Added:     add,
	})
	return nil
}

// resolveTarget authorizes the sender for the destination and computes
// the fan-out set, excluding the sending connection itself. Direct
// messages are authorized by the external oracle and reach the
// recipient's connections plus the sender's other devices.
func (r *Router) resolveTarget(ctx context.Context, senderConn domain.ConnectionID, sender domain.IdentityID, dest domain.Destination) (target, error) {
	if dest.IsDirect() {
		allowed, err := r.oracle.CanMessage(ctx, sender, dest.Direct)
		if err != nil {
			return target{}, fmt.Errorf("authorization check: %w", err)
		}
		if !allowed {
			return target{}, errors.ErrAuthorizationDenied
		}

		room := domain.DirectRoomID(sender, dest.Direct)
		recipients := r.registry.ResolveConnections(dest.Direct)
		for _, conn := range r.registry.ResolveConnections(sender) {
			if conn != senderConn {
				recipients = append(recipients, conn)
			}
		}
		return target{room: room, recipients: recipients}, nil
	}

	if dest.Room == "" {
		return target{}, errors.ErrValidation
	}
	if !r.rooms.IsMember(senderConn, dest.Room) {
		return target{}, errors.ErrNotRoomMember
	}
	members := r.rooms.Members(dest.Room)
	recipients := lo.Filter(members, func(conn domain.ConnectionID, _ int) bool {
		return conn != senderConn
	})
	return target{room: dest.Room, recipients: recipients}, nil
}

// resolveMember is the room-only variant used by edit, delete, and
// react, which always address an existing room.
func (r *Router) resolveMember(senderConn domain.ConnectionID, room domain.RoomID) (domain.Identity, target, error) {
	sender, ok := r.registry.IdentityOf(senderConn)
	if !ok {
		return domain.Identity{}, target{}, errors.ErrUnknownConnection
	}
	if !r.rooms.IsMember(senderConn, room) {
		return domain.Identity{}, target{}, errors.ErrNotRoomMember
	}
	members := r.rooms.Members(room)
	recipients := lo.Filter(members, func(conn domain.ConnectionID, _ int) bool {
		return conn != senderConn
	})
	return sender, target{room: room, recipients: recipients}, nil
}

// wrapStoreError keeps domain sentinels intact and folds anything else
// into the persistence taxon.
func wrapStoreError(err error) error {
	switch {
	case stderrors.Is(err, errors.ErrUnknownMessage),
		stderrors.Is(err, errors.ErrAuthorizationDenied):
		return err
	default:
		return fmt.Errorf("%w: %v", errors.ErrPersistenceFailure, err)
	}
}
