// Package domain contains core concepts of the realtime hub.
// No runtime, network, or storage logic should be added here.
package domain

type IdentityID string

// Identity is the authenticated principal behind one or more connections.
// Only the fields needed for fan-out are cached in the core; the full
// profile lives in the external account store.
type Identity struct {
	ID          IdentityID
	DisplayName string
}

// ConnectionID names one live transport session from a single client
// instance, assigned at a successful handshake and retired at transport
// close.
type ConnectionID string
