package repositories

import (
	"context"
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"chaoshub/domain"
	"chaoshub/errors"
)

func newRepository(t *testing.T) MessageRepository {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewMessageRepository(db, slog.Default())
}

func TestMessageRepository_Persist_And_Get(t *testing.T) {
	req := require.New(t)
	repo := newRepository(t)
	ctx := context.Background()

	receipt, err := repo.Persist(ctx, domain.Message{
		Room:        "g1",
		Sender:      "alice",
		Content:     "hello",
		ReplyTo:     lo.ToPtr("m0"),
		Attachments: []string{"cdn://pic.png"},
	})

	req.NoError(err)
	req.NotEmpty(receipt.MessageID)
	req.False(receipt.Timestamp.IsZero())

	stored, err := repo.GetMessage(ctx, "g1", receipt.MessageID)
	req.NoError(err)
	req.Equal(receipt.MessageID, stored.ID)
	req.Equal(domain.RoomID("g1"), stored.Room)
	req.Equal(domain.IdentityID("alice"), stored.Sender)
	req.Equal("hello", stored.Content)
	req.Equal(lo.ToPtr("m0"), stored.ReplyTo)
	req.Equal([]string{"cdn://pic.png"}, stored.Attachments)
	req.Equal(receipt.Timestamp.UnixNano(), stored.At.UnixNano())
	req.Nil(stored.EditedAt)
}

func TestMessageRepository_Get_UnknownMessage(t *testing.T) {
	req := require.New(t)
	repo := newRepository(t)

	_, err := repo.GetMessage(context.Background(), "g1", "nope")

	req.ErrorIs(err, errors.ErrUnknownMessage)
}

func TestMessageRepository_UpdateContent(t *testing.T) {
	req := require.New(t)
	repo := newRepository(t)
	ctx := context.Background()
	receipt, err := repo.Persist(ctx, domain.Message{Room: "g1", Sender: "alice", Content: "helo"})
	req.NoError(err)

	editedAt, err := repo.UpdateContent(ctx, "g1", receipt.MessageID, "alice", "hello")

	req.NoError(err)
	stored, err := repo.GetMessage(ctx, "g1", receipt.MessageID)
	req.NoError(err)
	req.Equal("hello", stored.Content)
	req.NotNil(stored.EditedAt)
	req.Equal(editedAt.UnixNano(), stored.EditedAt.UnixNano())
}

func TestMessageRepository_UpdateContent_AuthorOnly(t *testing.T) {
	req := require.New(t)
	repo := newRepository(t)
	ctx := context.Background()
	receipt, err := repo.Persist(ctx, domain.Message{Room: "g1", Sender: "alice", Content: "mine"})
	req.NoError(err)

	_, err = repo.UpdateContent(ctx, "g1", receipt.MessageID, "bob", "stolen")

	req.ErrorIs(err, errors.ErrAuthorizationDenied)
	stored, err := repo.GetMessage(ctx, "g1", receipt.MessageID)
	req.NoError(err)
	req.Equal("mine", stored.Content)
}

func TestMessageRepository_Delete(t *testing.T) {
	req := require.New(t)
	repo := newRepository(t)
	ctx := context.Background()
	receipt, err := repo.Persist(ctx, domain.Message{Room: "g1", Sender: "alice", Content: "oops"})
	req.NoError(err)

	// A foreign actor cannot delete
	req.ErrorIs(repo.Delete(ctx, "g1", receipt.MessageID, "bob"), errors.ErrAuthorizationDenied)

	// The author can, and both the record and its index are gone
	req.NoError(repo.Delete(ctx, "g1", receipt.MessageID, "alice"))
	_, err = repo.GetMessage(ctx, "g1", receipt.MessageID)
	req.ErrorIs(err, errors.ErrUnknownMessage)
	req.ErrorIs(repo.Delete(ctx, "g1", receipt.MessageID, "alice"), errors.ErrUnknownMessage)
}

func TestMessageRepository_Reactions_ToggleCycle(t *testing.T) {
	req := require.New(t)
	repo := newRepository(t)
	ctx := context.Background()
	receipt, err := repo.Persist(ctx, domain.Message{Room: "g1", Sender: "alice", Content: "nice"})
	req.NoError(err)

	present, err := repo.HasReaction(ctx, "g1", receipt.MessageID, "fire", "bob")
	req.NoError(err)
	req.False(present)

	// Add is idempotent: applying it twice leaves a single entry
	req.NoError(repo.UpdateReactions(ctx, "g1", receipt.MessageID, "fire", "bob", true))
	req.NoError(repo.UpdateReactions(ctx, "g1", receipt.MessageID, "fire", "bob", true))

	present, err = repo.HasReaction(ctx, "g1", receipt.MessageID, "fire", "bob")
	req.NoError(err)
	req.True(present)
	stored, err := repo.GetMessage(ctx, "g1", receipt.MessageID)
	req.NoError(err)
	req.Equal([]domain.IdentityID{"bob"}, stored.Reactions["fire"])

	// Remove clears the entry and prunes the empty emoji set
	req.NoError(repo.UpdateReactions(ctx, "g1", receipt.MessageID, "fire", "bob", false))
	stored, err = repo.GetMessage(ctx, "g1", receipt.MessageID)
	req.NoError(err)
	req.Empty(stored.Reactions)
}

func TestMessageRepository_Reactions_DistinctUsersAccumulate(t *testing.T) {
	req := require.New(t)
	repo := newRepository(t)
	ctx := context.Background()
	receipt, err := repo.Persist(ctx, domain.Message{Room: "g1", Sender: "alice", Content: "nice"})
	req.NoError(err)

	req.NoError(repo.UpdateReactions(ctx, "g1", receipt.MessageID, "fire", "bob", true))
	req.NoError(repo.UpdateReactions(ctx, "g1", receipt.MessageID, "fire", "carol", true))
	req.NoError(repo.UpdateReactions(ctx, "g1", receipt.MessageID, "fire", "bob", false))

	stored, err := repo.GetMessage(ctx, "g1", receipt.MessageID)
	req.NoError(err)
	req.Equal([]domain.IdentityID{"carol"}, stored.Reactions["fire"])
}
