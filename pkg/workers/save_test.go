package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	mocks "github.com/cbodonnell/quoridor/mocks/github.com/cbodonnell/quoridor/pkg/repositories"
	"github.com/cbodonnell/quoridor/pkg/game/types"
	"github.com/cbodonnell/quoridor/pkg/state"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out")
	}
}

func TestSaveGameWorker_RecordsResults(t *testing.T) {
	repo := mocks.NewRepository(t)
	resultChan := make(chan types.GameResult, 2)

	recorded := make(chan struct{})
	repo.EXPECT().RecordResult(mock.Anything, "alice", "bob").Run(func(ctx context.Context, winner string, loser string) {
		close(recorded)
	}).Return(nil).Once()
	repo.EXPECT().RecordResult(mock.Anything, "carol", "dave").Return(errors.New("database is locked")).Once()

	w := NewSaveGameWorker(NewSaveGameWorkerOptions{
		Repository: repo,
		ResultChan: resultChan,
	})
	ctx, cancel := context.WithCancel(context.Background())
	go w.Start(ctx)

	resultChan <- types.GameResult{GameID: "game-1", Winner: "alice", Loser: "bob", Moves: 30}
	waitFor(t, recorded)

	resultChan <- types.GameResult{GameID: "game-2", Winner: "carol", Loser: "dave", Moves: 12}
	cancel()
	waitFor(t, w.Done())
}

func TestSaveGameWorker_DrainsOnShutdown(t *testing.T) {
	repo := mocks.NewRepository(t)
	resultChan := make(chan types.GameResult, 1)
	resultChan <- types.GameResult{GameID: "game-1", Winner: "alice", Loser: "bob"}

	repo.EXPECT().RecordResult(mock.Anything, "alice", "bob").Return(nil).Once()

	w := NewSaveGameWorker(NewSaveGameWorkerOptions{
		Repository: repo,
		ResultChan: resultChan,
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w.Start(ctx)
}

func TestSaveGameWorker_Autosave(t *testing.T) {
	repo := mocks.NewRepository(t)
	stateManager := state.NewInMemoryStateManager()
	ctx := context.Background()
	require.NoError(t, stateManager.Set(ctx, &types.GameState{ID: "game-1", Moves: 3}))

	saved := make(chan struct{})
	isGame := mock.MatchedBy(func(g *types.GameState) bool { return g.ID == "game-1" && g.Moves == 3 })
	repo.EXPECT().SaveGame(mock.Anything, isGame).Return(errors.New("disk full")).Once()
	repo.EXPECT().SaveGame(mock.Anything, isGame).Run(func(ctx context.Context, gameState *types.GameState) {
		close(saved)
	}).Return(nil).Once()

	w := NewSaveGameWorker(NewSaveGameWorkerOptions{
		Repository:   repo,
		StateManager: stateManager,
		Interval:     time.Millisecond,
	})
	workerCtx, cancel := context.WithCancel(ctx)
	go w.Start(workerCtx)

	// the failed save is retried, then nothing changes so nothing else is saved
	waitFor(t, saved)
	time.Sleep(10 * time.Millisecond)
	cancel()
	waitFor(t, w.Done())
}

func TestSaveGameWorker_FinalSave(t *testing.T) {
	repo := mocks.NewRepository(t)
	stateManager := state.NewInMemoryStateManager()
	ctx := context.Background()
	require.NoError(t, stateManager.Set(ctx, &types.GameState{ID: "game-1", Winner: types.Player2}))

	repo.EXPECT().SaveGame(mock.Anything, mock.MatchedBy(func(g *types.GameState) bool {
		return g.Winner == types.Player2
	})).Return(nil).Once()

	w := NewSaveGameWorker(NewSaveGameWorkerOptions{
		Repository:   repo,
		StateManager: stateManager,
		Interval:     time.Hour,
	})
	workerCtx, cancel := context.WithCancel(ctx)
	cancel()
	w.Start(workerCtx)
}
