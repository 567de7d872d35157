package workers

import (
	"context"
	"time"

	"github.com/cbodonnell/quoridor/pkg/game/types"
	"github.com/cbodonnell/quoridor/pkg/log"
	"github.com/cbodonnell/quoridor/pkg/repositories"
	"github.com/cbodonnell/quoridor/pkg/state"
)

type SaveGameWorker struct {
	repository   repositories.Repository
	resultChan   <-chan types.GameResult
	stateManager state.StateManager
	interval     time.Duration
	savedVersion uint64
	done         chan struct{}
}

type NewSaveGameWorkerOptions struct {
	Repository repositories.Repository
	ResultChan <-chan types.GameResult
	// StateManager is the source of autosaves. Autosave is off when it is nil
	// or Interval is not positive.
	StateManager state.StateManager
	Interval     time.Duration
}

// NewSaveGameWorker creates a new SaveGameWorker.
// The worker records finished games on the leaderboard and
// periodically saves the latest published snapshot to the repository.
func NewSaveGameWorker(opts NewSaveGameWorkerOptions) *SaveGameWorker {
	return &SaveGameWorker{
		repository:   opts.Repository,
		resultChan:   opts.ResultChan,
		stateManager: opts.StateManager,
		interval:     opts.Interval,
		done:         make(chan struct{}),
	}
}

// Start runs until ctx is done. Pending results and an unsaved snapshot are
// flushed before it returns.
func (w *SaveGameWorker) Start(ctx context.Context) {
	defer close(w.done)

	var tick <-chan time.Time
	if w.stateManager != nil && w.interval > 0 {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	resultChan := w.resultChan
	for {
		select {
		case <-ctx.Done():
			w.flush(context.WithoutCancel(ctx), resultChan)
			return
		case result, ok := <-resultChan:
			if !ok {
				resultChan = nil
				continue
			}
			w.recordResult(ctx, result)
		case <-tick:
			w.autosave(ctx)
		}
	}
}

// Done is closed once Start has returned.
func (w *SaveGameWorker) Done() <-chan struct{} {
	return w.done
}

func (w *SaveGameWorker) flush(ctx context.Context, resultChan <-chan types.GameResult) {
	for resultChan != nil {
		select {
		case result, ok := <-resultChan:
			if !ok {
				resultChan = nil
				continue
			}
			w.recordResult(ctx, result)
		default:
			resultChan = nil
		}
	}
	if w.stateManager != nil {
		w.autosave(ctx)
	}
}

func (w *SaveGameWorker) recordResult(ctx context.Context, result types.GameResult) {
	if err := w.repository.RecordResult(ctx, result.Winner, result.Loser); err != nil {
		log.Error("Failed to record result of game %s: %v", result.GameID, err)
		return
	}
	log.Info("Recorded win for %s over %s in game %s", result.Winner, result.Loser, result.GameID)
}

func (w *SaveGameWorker) autosave(ctx context.Context) {
	version := w.stateManager.Version()
	if version == 0 || version == w.savedVersion {
		return
	}

	gameState, err := w.stateManager.Get(ctx)
	if err != nil {
		log.Error("Failed to get current game state: %v", err)
		return
	}
	if err := w.repository.SaveGame(ctx, gameState); err != nil {
		log.Error("Failed to save game state: %v", err)
		return
	}
	w.savedVersion = version
	log.Debug("Autosaved game %s at move %d", gameState.ID, gameState.Moves)
}
