// Package repositories holds the BadgerDB implementation of the
// external message store collaborator.
package repositories

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"chaoshub/contract"
	"chaoshub/domain"
	"chaoshub/errors"
)

// retries on transaction conflicts; reaction toggles on a hot message
// can collide under badger's SSI.
const maxTxnRetries = 3

var _ contract.MessageStore = MessageRepository{}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) MessageRepository {
	return MessageRepository{db: db, log: log}
}

// diskMessage is the stored representation. Reactions map emoji to the
// set of identity ids that applied it.
type diskMessage struct {
	ID          string              `json:"id"`
	Room        string              `json:"room"`
	Sender      string              `json:"sender"`
	Content     string              `json:"content"`
	ReplyTo     *string             `json:"reply_to,omitempty"`
	Attachments []string            `json:"attachments,omitempty"`
	Reactions   map[string][]string `json:"reactions,omitempty"`
	At          int64               `json:"at"`
	EditedAt    *int64              `json:"edited_at,omitempty"`
}

// Persist stores a message and assigns its durable id and timestamp.
// The primary key is "msg:{room}:{timestamp_padded}:{uuid}":
//  1. the 19-digit zero padding keeps messages chronologically sorted
//     under lexicographic iteration;
//  2. the uuid disambiguates two messages landing on the same
//     nanosecond.
//
// A secondary "idx:{room}:{uuid}" key points back at the primary key so
// edits and reactions can address a message by id alone.
func (m MessageRepository) Persist(_ context.Context, msg domain.Message) (contract.Receipt, error) {
	receipt := contract.Receipt{
		MessageID: uuid.NewString(),
		Timestamp: time.Now().UTC(),
	}
	stored := diskMessage{
		ID:          receipt.MessageID,
		Room:        string(msg.Room),
		Sender:      string(msg.Sender),
		Content:     msg.Content,
		ReplyTo:     msg.ReplyTo,
		Attachments: msg.Attachments,
		At:          receipt.Timestamp.UnixNano(),
	}
	bytes, err := json.Marshal(stored)
	if err != nil {
		return contract.Receipt{}, err
	}

	primary := primaryKey(msg.Room, receipt.Timestamp, receipt.MessageID)
	err = m.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(primary, bytes); err != nil {
			return err
		}
		return txn.Set(indexKey(msg.Room, receipt.MessageID), primary)
	})
	if err != nil {
		return contract.Receipt{}, err
	}
	return receipt, nil
}

// UpdateContent rewrites a message's content, enforcing that the actor
// is its author.
func (m MessageRepository) UpdateContent(_ context.Context, room domain.RoomID, messageID string, actor domain.IdentityID, content string) (time.Time, error) {
	editedAt := time.Now().UTC()
	err := m.mutate(room, messageID, func(stored *diskMessage) error {
		if stored.Sender != string(actor) {
			return errors.ErrAuthorizationDenied
		}
		stored.Content = content
		stored.EditedAt = lo.ToPtr(editedAt.UnixNano())
		return nil
	})
	if err != nil {
		return time.Time{}, err
	}
	return editedAt, nil
}

// Delete removes both the message and its id index. Author-only.
func (m MessageRepository) Delete(_ context.Context, room domain.RoomID, messageID string, actor domain.IdentityID) error {
	return m.withRetry(func() error {
		return m.db.Update(func(txn *badger.Txn) error {
			primary, stored, err := load(txn, room, messageID)
			if err != nil {
				return err
			}
			if stored.Sender != string(actor) {
				return errors.ErrAuthorizationDenied
			}
			if err := txn.Delete(primary); err != nil {
				return err
			}
			return txn.Delete(indexKey(room, messageID))
		})
	})
}

// UpdateReactions applies a set-union (add) or set-difference (remove)
// on the message's reaction set for one (emoji, identity) pair. The
// read-modify-write runs inside a single transaction, so concurrent
// reactions are never lost; identical toggles racing from two devices
// settle as last-write-wins.
func (m MessageRepository) UpdateReactions(_ context.Context, room domain.RoomID, messageID, emoji string, id domain.IdentityID, add bool) error {
	return m.mutate(room, messageID, func(stored *diskMessage) error {
		if stored.Reactions == nil {
			stored.Reactions = make(map[string][]string)
		}
		set := stored.Reactions[emoji]
		if add {
			if !lo.Contains(set, string(id)) {
				stored.Reactions[emoji] = append(set, string(id))
			}
			return nil
		}
		set = lo.Without(set, string(id))
		if len(set) == 0 {
			delete(stored.Reactions, emoji)
		} else {
			stored.Reactions[emoji] = set
		}
		return nil
	})
}

func (m MessageRepository) HasReaction(_ context.Context, room domain.RoomID, messageID, emoji string, id domain.IdentityID) (bool, error) {
	var present bool
	err := m.db.View(func(txn *badger.Txn) error {
		_, stored, err := load(txn, room, messageID)
		if err != nil {
			return err
		}
		present = lo.Contains(stored.Reactions[emoji], string(id))
		return nil
	})
	return present, err
}

// GetMessage fetches a single message by id, mainly for tests and the
// history API served elsewhere.
func (m MessageRepository) GetMessage(_ context.Context, room domain.RoomID, messageID string) (domain.Message, error) {
	var msg domain.Message
	err := m.db.View(func(txn *badger.Txn) error {
		_, stored, err := load(txn, room, messageID)
		if err != nil {
			return err
		}
		msg = toDomain(stored)
		return nil
	})
	return msg, err
}

// mutate loads, edits, and rewrites one message atomically.
func (m MessageRepository) mutate(room domain.RoomID, messageID string, fn func(*diskMessage) error) error {
	return m.withRetry(func() error {
		return m.db.Update(func(txn *badger.Txn) error {
			primary, stored, err := load(txn, room, messageID)
			if err != nil {
				return err
			}
			if err := fn(&stored); err != nil {
				return err
			}
			bytes, err := json.Marshal(stored)
			if err != nil {
				return err
			}
			return txn.Set(primary, bytes)
		})
	})
}

func (m MessageRepository) withRetry(fn func() error) error {
	var err error
	for attempt := 0; attempt < maxTxnRetries; attempt++ {
		err = fn()
		if !stderrors.Is(err, badger.ErrConflict) {
			return err
		}
		m.log.Debug("Retrying conflicting transaction", "attempt", attempt+1)
	}
	return err
}

func load(txn *badger.Txn, room domain.RoomID, messageID string) ([]byte, diskMessage, error) {
	item, err := txn.Get(indexKey(room, messageID))
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return nil, diskMessage{}, errors.ErrUnknownMessage
	}
	if err != nil {
		return nil, diskMessage{}, err
	}
	primary, err := item.ValueCopy(nil)
	if err != nil {
		return nil, diskMessage{}, err
	}

	item, err = txn.Get(primary)
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return nil, diskMessage{}, errors.ErrUnknownMessage
	}
	if err != nil {
		return nil, diskMessage{}, err
	}

	var stored diskMessage
	err = item.Value(func(value []byte) error {
		return json.Unmarshal(value, &stored)
	})
	return primary, stored, err
}

func primaryKey(room domain.RoomID, at time.Time, messageID string) []byte {
	return []byte(fmt.Sprintf("msg:%s:%019d:%s", room, at.UnixNano(), messageID))
}

func indexKey(room domain.RoomID, messageID string) []byte {
	return []byte(fmt.Sprintf("idx:%s:%s", room, messageID))
}

func toDomain(stored diskMessage) domain.Message {
	msg := domain.Message{
		ID:          stored.ID,
		Room:        domain.RoomID(stored.Room),
		Sender:      domain.IdentityID(stored.Sender),
		Content:     stored.Content,
		ReplyTo:     stored.ReplyTo,
		Attachments: stored.Attachments,
		At:          time.Unix(0, stored.At).UTC(),
	}
	if len(stored.Reactions) > 0 {
		msg.Reactions = make(map[string][]domain.IdentityID, len(stored.Reactions))
		for emoji, ids := range stored.Reactions {
			msg.Reactions[emoji] = lo.Map(ids, func(id string, _ int) domain.IdentityID {
				return domain.IdentityID(id)
			})
		}
	}
	if stored.EditedAt != nil {
		msg.EditedAt = lo.ToPtr(time.Unix(0, *stored.EditedAt).UTC())
	}
	return msg
}
