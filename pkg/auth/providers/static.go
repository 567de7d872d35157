package providers

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"
)

const MaxNameLength = 32

var _ AuthProvider = &StaticAuthProvider{}

// StaticAuthProvider trusts the credential as the player's display name.
// It is meant for local hot-seat play.
type StaticAuthProvider struct{}

func NewStaticAuthProvider() *StaticAuthProvider {
	return &StaticAuthProvider{}
}

func (p *StaticAuthProvider) Authenticate(ctx context.Context, credential string) (*Identity, error) {
	name := strings.TrimSpace(credential)
	if name == "" {
		return nil, fmt.Errorf("%w: name is empty", ErrInvalidCredential)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return nil, fmt.Errorf("%w: name is longer than %d characters", ErrInvalidCredential, MaxNameLength)
	}
	for _, r := range name {
		if r < ' ' || r == 0x7f {
			return nil, fmt.Errorf("%w: name contains control characters", ErrInvalidCredential)
		}
	}

	return &Identity{
		ID:   name,
		Name: name,
	}, nil
}
