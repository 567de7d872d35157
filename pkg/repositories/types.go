package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/cbodonnell/quoridor/pkg/game/types"
	"github.com/cbodonnell/quoridor/pkg/repositories/models"
)

type ErrNotFound struct {
	ID string
}

func (e *ErrNotFound) Error() string {
	if e.ID == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.ID)
}

func IsNotFound(err error) bool {
	var notFound *ErrNotFound
	return errors.As(err, &notFound)
}

func validateGameState(gameState *types.GameState) error {
	if gameState == nil {
		return fmt.Errorf("game state is nil")
	}
	if gameState.ID == "" {
		return fmt.Errorf("game state has no id")
	}
	return nil
}

func validateResult(winner string, loser string) error {
	if winner == "" || loser == "" {
		return fmt.Errorf("winner and loser must not be empty")
	}
	if winner == loser {
		return fmt.Errorf("winner and loser must differ: %s", winner)
	}
	return nil
}

func savedGameFromState(gameState *types.GameState) *models.SavedGame {
	return &models.SavedGame{
		ID:            gameState.ID,
		Player1:       gameState.Players.Player1,
		Player2:       gameState.Players.Player2,
		CurrentPlayer: gameState.CurrentPlayer.String(),
		Winner:        gameState.Winner.String(),
		Moves:         gameState.Moves,
		Timestamp:     gameState.Timestamp,
		Duration:      gameState.Duration,
	}
}

func unixNano(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func fromUnixNano(n int64) time.Time {
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n).UTC()
}
