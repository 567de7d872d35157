package state

import (
	"context"
	"fmt"
	"sync"

	"github.com/cbodonnell/quoridor/pkg/game/types"
)

type InMemoryStateManager struct {
	lock      sync.RWMutex
	gameState *types.GameState
	version   uint64
}

func NewInMemoryStateManager() *InMemoryStateManager {
	return &InMemoryStateManager{}
}

func (m *InMemoryStateManager) Get(ctx context.Context) (*types.GameState, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	if m.gameState == nil {
		return nil, ErrEmpty
	}
	return m.gameState.Copy(), nil
}

func (m *InMemoryStateManager) Set(ctx context.Context, gameState *types.GameState) error {
	if gameState == nil {
		return fmt.Errorf("game state is nil")
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	m.gameState = gameState.Copy()
	m.version++
	return nil
}

func (m *InMemoryStateManager) Version() uint64 {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.version
}
