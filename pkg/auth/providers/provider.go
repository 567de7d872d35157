package providers

import (
	"context"
	"errors"
)

// ErrInvalidCredential is returned when a credential does not identify a player.
var ErrInvalidCredential = errors.New("invalid credential")

// AuthProvider turns a credential supplied by a player into a stable identity.
type AuthProvider interface {
	Authenticate(ctx context.Context, credential string) (*Identity, error)
}

// Identity is an authenticated player. Name is what sessions, saves and the
// leaderboard record; ID is the provider's own identifier.
type Identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
