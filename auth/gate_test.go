package auth

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chaoshub/domain"
	"chaoshub/errors"
)

func newGate(t *testing.T) (*Gate, *JWTVerifier) {
	t.Helper()
	verifier := NewJWTVerifier([]byte("test-secret"))
	return NewGate(slog.Default(), verifier), verifier
}

func TestGate_Authenticate_MissingCredential(t *testing.T) {
	req := require.New(t)
	gate, _ := newGate(t)

	_, err := gate.Authenticate(context.Background(), "")

	req.ErrorIs(err, errors.ErrCredentialMissing)
	req.Equal("CredentialMissing", errors.HandshakeReason(err))
}

func TestGate_Authenticate_MalformedCredential(t *testing.T) {
	req := require.New(t)
	gate, _ := newGate(t)

	_, err := gate.Authenticate(context.Background(), "not.a.jwt")

	req.ErrorIs(err, errors.ErrInvalidCredential)
	req.Equal("InvalidCredential", errors.HandshakeReason(err))
}

func TestGate_Authenticate_WrongSignature(t *testing.T) {
	req := require.New(t)
	gate, _ := newGate(t)
	forger := NewJWTVerifier([]byte("someone-elses-secret"))
	token, err := forger.IssueToken("alice", "Alice", time.Hour)
	req.NoError(err)

	_, err = gate.Authenticate(context.Background(), token)

	req.ErrorIs(err, errors.ErrInvalidCredential)
}

func TestGate_Authenticate_ExpiredCredential(t *testing.T) {
	req := require.New(t)
	gate, verifier := newGate(t)
	token, err := verifier.IssueToken("alice", "Alice", -time.Minute)
	req.NoError(err)

	_, err = gate.Authenticate(context.Background(), token)

	// Expiry is reported distinctly so clients know to refresh rather
	// than re-login
	req.ErrorIs(err, errors.ErrExpiredCredential)
	req.Equal("ExpiredCredential", errors.HandshakeReason(err))
}

func TestGate_Authenticate_ValidCredential(t *testing.T) {
	req := require.New(t)
	gate, verifier := newGate(t)
	token, err := verifier.IssueToken("alice", "Alice", time.Hour)
	req.NoError(err)

	identity, err := gate.Authenticate(context.Background(), token)

	req.NoError(err)
	req.Equal(domain.Identity{ID: "alice", DisplayName: "Alice"}, identity)
}

func TestJWTVerifier_Verify_RejectsEmptySubject(t *testing.T) {
	req := require.New(t)
	verifier := NewJWTVerifier([]byte("test-secret"))
	token, err := verifier.IssueToken("", "Nobody", time.Hour)
	req.NoError(err)

	_, err = verifier.Verify(context.Background(), token)

	req.ErrorIs(err, errors.ErrInvalidCredential)
}
