// Package auth guards the handshake: no other event handler runs until
// the credential has been verified and the identity resolved.
package auth

import (
	"context"
	"log/slog"

	"chaoshub/contract"
	"chaoshub/domain"
	"chaoshub/errors"
)

type Gate struct {
	log      *slog.Logger
	verifier contract.CredentialVerifier
}

func NewGate(log *slog.Logger, verifier contract.CredentialVerifier) *Gate {
	return &Gate{log: log, verifier: verifier}
}

// Authenticate resolves the identity behind a bearer credential.
// Failure is terminal for this attempt: the caller rejects and closes
// the transport, there is no retry at this layer.
func (g *Gate) Authenticate(ctx context.Context, token string) (domain.Identity, error) {
	if token == "" {
		return domain.Identity{}, errors.ErrCredentialMissing
	}

	identity, err := g.verifier.Verify(ctx, token)
	if err != nil {
		g.log.Warn("Handshake rejected", "reason", errors.HandshakeReason(err))
		return domain.Identity{}, err
	}
	return identity, nil
}
