package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrCredentialMissing = fmt.Errorf("credential missing")
	ErrInvalidCredential = fmt.Errorf("invalid credential")
	ErrExpiredCredential = fmt.Errorf("expired credential")

	ErrAuthorizationDenied    = fmt.Errorf("authorization denied")
	ErrNotRoomMember          = fmt.Errorf("not a member of the room")
	ErrDestinationUnavailable = fmt.Errorf("destination unavailable")
	ErrPersistenceFailure     = fmt.Errorf("persistence failure")
	ErrValidation             = fmt.Errorf("validation failure")

	ErrUnknownConnection = fmt.Errorf("unknown connection")
	ErrUnknownMessage    = fmt.Errorf("unknown message")
	ErrUnknownCall       = fmt.Errorf("unknown call")
	ErrNotParticipant    = fmt.Errorf("not a call participant")

	ErrWorkerPanic = fmt.Errorf("worker panic")
)

// HandshakeReason names the reject reason sent before closing a
// transport that failed authentication.
func HandshakeReason(err error) string {
	switch {
	case stderrors.Is(err, ErrExpiredCredential):
		return "ExpiredCredential"
	case stderrors.Is(err, ErrCredentialMissing):
		return "CredentialMissing"
	default:
		return "InvalidCredential"
	}
}

// CodeOf maps an error chain to the wire-level error code sent back to
// the originating connection. Unrecognized errors collapse to a generic
// code so internals never leak to clients.
func CodeOf(err error) string {
	switch {
	case stderrors.Is(err, ErrCredentialMissing),
		stderrors.Is(err, ErrInvalidCredential),
		stderrors.Is(err, ErrExpiredCredential):
		return "HandshakeRejected"
	case stderrors.Is(err, ErrAuthorizationDenied),
		stderrors.Is(err, ErrNotRoomMember):
		return "AuthorizationDenied"
	case stderrors.Is(err, ErrDestinationUnavailable):
		return "DestinationUnavailable"
	case stderrors.Is(err, ErrPersistenceFailure):
		return "PersistenceFailure"
	case stderrors.Is(err, ErrValidation),
		stderrors.Is(err, ErrUnknownMessage),
		stderrors.Is(err, ErrUnknownCall),
		stderrors.Is(err, ErrNotParticipant),
		stderrors.Is(err, ErrUnknownConnection):
		return "ValidationFailure"
	default:
		return "InternalError"
	}
}
