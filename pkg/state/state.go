package state

import (
	"context"
	"errors"

	"github.com/cbodonnell/quoridor/pkg/game/types"
)

// ErrEmpty is returned by Get before any game state has been set.
var ErrEmpty = errors.New("no game state set")

// StateManager provides shared access to the latest snapshot of the running session.
// Implementations must be thread-safe.
type StateManager interface {
	// Get returns a copy of the current game state.
	Get(ctx context.Context) (*types.GameState, error)
	// Set sets the current game state.
	Set(ctx context.Context, gameState *types.GameState) error
	// Version increases on every Set. It is 0 before the first one.
	Version() uint64
}
