package state

import (
	"context"
	"sync"
	"testing"

	"github.com/cbodonnell/quoridor/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStateManager(t *testing.T) {
	ctx := context.Background()
	m := NewInMemoryStateManager()

	_, err := m.Get(ctx)
	assert.ErrorIs(t, err, ErrEmpty)
	assert.Equal(t, uint64(0), m.Version())
	assert.Error(t, m.Set(ctx, nil))

	gameState := &types.GameState{ID: "game-1", WallsH: []types.Cell{{Row: 1, Col: 1}}}
	require.NoError(t, m.Set(ctx, gameState))
	assert.Equal(t, uint64(1), m.Version())

	// neither the caller's value nor returned copies alias the stored state
	gameState.WallsH[0] = types.Cell{Row: 7, Col: 7}
	got, err := m.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.Cell{Row: 1, Col: 1}, got.WallsH[0])

	got.WallsH[0] = types.Cell{Row: 5, Col: 5}
	again, err := m.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.Cell{Row: 1, Col: 1}, again.WallsH[0])
}

func TestInMemoryStateManager_Concurrent(t *testing.T) {
	ctx := context.Background()
	m := NewInMemoryStateManager()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, m.Set(ctx, &types.GameState{ID: "game-1", Moves: i}))
		}(i)
		go func() {
			defer wg.Done()
			m.Get(ctx)
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(10), m.Version())
}
