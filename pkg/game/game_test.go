package game

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/cbodonnell/quoridor/pkg/game/types"
	"github.com/cbodonnell/quoridor/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return testTime
}

type memoryPersistence struct {
	games map[string]*types.GameState
	err   error
}

func (m *memoryPersistence) SaveGame(ctx context.Context, gameState *types.GameState) error {
	if m.err != nil {
		return m.err
	}
	m.games[gameState.ID] = gameState.Copy()
	return nil
}

func (m *memoryPersistence) LoadGame(ctx context.Context, id string) (*types.GameState, error) {
	gameState, ok := m.games[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return gameState.Copy(), nil
}

func newTestSession(t *testing.T) *Session {
	s, err := NewSession(NewSessionOptions{
		ID:      "game-1",
		Player1: "alice",
		Player2: "bob",
		Clock:   fixedClock,
	})
	require.NoError(t, err)
	return s
}

func restoreTestSession(t *testing.T, gameState *types.GameState, resultChan chan<- types.GameResult) *Session {
	s, err := RestoreSession(gameState, NewSessionOptions{Clock: fixedClock, ResultChan: resultChan})
	require.NoError(t, err)
	return s
}

// requireReachable checks independently of the validator that both players
// still have a path to their goal rows.
func requireReachable(t *testing.T, s *Session) {
	t.Helper()
	for _, p := range types.Players {
		require.True(t, CanReach(s.walls, s.PositionOf(p), p.GoalRow()), "%s has no path to row %d", p, p.GoalRow())
	}
}

func TestNewSession(t *testing.T) {
	s := newTestSession(t)

	assert.Equal(t, "game-1", s.ID())
	assert.Equal(t, types.Cell{Row: 0, Col: 4}, s.PositionOf(types.Player1))
	assert.Equal(t, types.Cell{Row: 8, Col: 4}, s.PositionOf(types.Player2))
	assert.Equal(t, 10, s.WallsLeft(types.Player1))
	assert.Equal(t, 10, s.WallsLeft(types.Player2))
	assert.Equal(t, types.Player1, s.Turn())
	assert.Equal(t, SessionStateInProgress, s.State())
	assert.Equal(t, 0, s.Moves())
	assert.Equal(t, "bob", s.PlayerName(types.Player2))

	generated, err := NewSession(NewSessionOptions{Player1: "alice", Player2: "bob"})
	require.NoError(t, err)
	assert.NotEmpty(t, generated.ID())

	_, err = NewSession(NewSessionOptions{Player1: "alice", Player2: "alice"})
	assert.ErrorIs(t, err, ErrDuplicatePlayer)

	_, err = NewSession(NewSessionOptions{Player1: "alice"})
	assert.Error(t, err)
}

func TestSession_Turns(t *testing.T) {
	s := newTestSession(t)

	err := s.Move(types.Player2, types.Move{Direction: types.DirectionUp})
	assert.ErrorIs(t, err, ErrNotYourTurn)

	require.NoError(t, s.Move(types.Player1, types.Move{Direction: types.DirectionDown}))
	assert.Equal(t, types.Cell{Row: 1, Col: 4}, s.PositionOf(types.Player1))
	assert.Equal(t, types.Player2, s.Turn())

	require.NoError(t, s.PlaceWall(types.Player2, horizontal(1, 3)))
	requireReachable(t, s)
	assert.Equal(t, 9, s.WallsLeft(types.Player2))
	assert.Equal(t, 10, s.WallsLeft(types.Player1))
	assert.Equal(t, types.Player1, s.Turn())
	assert.Equal(t, 2, s.Moves())

	err = s.Move(types.Player1, types.Move{Direction: types.DirectionDown})
	assert.ErrorIs(t, err, ErrBlockedByWall)
	assert.Equal(t, types.Player1, s.Turn())
	assert.Equal(t, 2, s.Moves())
}

func TestSession_Jump(t *testing.T) {
	s := restoreTestSession(t, &types.GameState{
		ID:            "game-1",
		Players:       types.PlayerNames{Player1: "alice", Player2: "bob"},
		Positions:     types.Positions{Player1: types.Cell{Row: 3, Col: 4}, Player2: types.Cell{Row: 4, Col: 4}},
		WallsLeft:     types.WallBudgets{Player1: 10, Player2: 10},
		CurrentPlayer: types.Player1,
	}, nil)

	require.NoError(t, s.Move(types.Player1, types.Move{Direction: types.DirectionDown}))
	assert.Equal(t, types.Cell{Row: 5, Col: 4}, s.PositionOf(types.Player1))
	assert.Equal(t, types.Cell{Row: 4, Col: 4}, s.PositionOf(types.Player2))
}

func TestSession_RejectedActionsAreTransactional(t *testing.T) {
	s := newTestSession(t)
	for i, segment := range barrier {
		player := types.Players[i%2]
		require.NoError(t, s.PlaceWall(player, segment), segment.String())
		requireReachable(t, s)
	}
	require.Equal(t, types.Player2, s.Turn())
	before := s.GameState()

	rejected := []struct {
		name    string
		action  func() error
		wantErr error
	}{
		{
			name:    "isolating wall",
			action:  func() error { return s.PlaceWall(types.Player2, horizontal(2, 7)) },
			wantErr: ErrWouldIsolatePlayer,
		},
		{
			name:    "overlapping wall",
			action:  func() error { return s.PlaceWall(types.Player2, horizontal(4, 5)) },
			wantErr: ErrWallOverlap,
		},
		{
			name:    "crossing wall",
			action:  func() error { return s.PlaceWall(types.Player2, horizontal(3, 7)) },
			wantErr: ErrWallOverlap,
		},
		{
			name:    "off the board",
			action:  func() error { return s.Move(types.Player2, types.Move{Direction: types.DirectionDown}) },
			wantErr: ErrOutOfBounds,
		},
		{
			name:    "wrong player",
			action:  func() error { return s.PlaceWall(types.Player1, horizontal(0, 0)) },
			wantErr: ErrNotYourTurn,
		},
	}
	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.action(), tt.wantErr)
			assert.Equal(t, before, s.GameState())
			requireReachable(t, s)
		})
	}
}

func TestSession_EnclosingWallRejected(t *testing.T) {
	s := restoreTestSession(t, &types.GameState{
		ID:            "game-1",
		Players:       types.PlayerNames{Player1: "alice", Player2: "bob"},
		Positions:     types.Positions{Player1: types.Cell{Row: 4, Col: 4}, Player2: types.Cell{Row: 8, Col: 4}},
		WallsLeft:     types.WallBudgets{Player1: 10, Player2: 10},
		CurrentPlayer: types.Player1,
	}, nil)

	// wall in alice's token above, below and to the left
	enclosure := []types.WallSegment{horizontal(3, 3), horizontal(4, 4), vertical(4, 3)}
	for i, segment := range enclosure {
		require.NoError(t, s.PlaceWall(types.Players[i%2], segment), segment.String())
		requireReachable(t, s)
	}
	require.Equal(t, types.Player2, s.Turn())
	before := s.GameState()

	err := s.PlaceWall(types.Player2, vertical(3, 4))
	assert.ErrorIs(t, err, ErrWouldIsolatePlayer)
	assert.Equal(t, before, s.GameState())
	assert.Equal(t, 9, s.WallsLeft(types.Player2))
	requireReachable(t, s)
}

func TestSession_WallBudget(t *testing.T) {
	s := restoreTestSession(t, &types.GameState{
		ID:            "game-1",
		Players:       types.PlayerNames{Player1: "alice", Player2: "bob"},
		Positions:     types.Positions{Player1: types.Cell{Row: 0, Col: 4}, Player2: types.Cell{Row: 8, Col: 4}},
		WallsLeft:     types.WallBudgets{Player1: 1, Player2: 0},
		CurrentPlayer: types.Player1,
	}, nil)

	require.NoError(t, s.PlaceWall(types.Player1, vertical(0, 0)))
	requireReachable(t, s)
	assert.Equal(t, 0, s.WallsLeft(types.Player1))

	err := s.PlaceWall(types.Player2, vertical(5, 5))
	assert.ErrorIs(t, err, ErrNoWallsLeft)
	assert.Equal(t, types.Player2, s.Turn())

	require.NoError(t, s.Move(types.Player2, types.Move{Direction: types.DirectionUp}))
	err = s.PlaceWall(types.Player1, vertical(5, 5))
	assert.ErrorIs(t, err, ErrNoWallsLeft)
}

func TestSession_Win(t *testing.T) {
	resultChan := make(chan types.GameResult, 1)
	s := restoreTestSession(t, &types.GameState{
		ID:            "game-1",
		Players:       types.PlayerNames{Player1: "alice", Player2: "bob"},
		Positions:     types.Positions{Player1: types.Cell{Row: 7, Col: 0}, Player2: types.Cell{Row: 8, Col: 4}},
		WallsLeft:     types.WallBudgets{Player1: 3, Player2: 2},
		CurrentPlayer: types.Player1,
		Moves:         40,
	}, resultChan)

	require.NoError(t, s.Move(types.Player1, types.Move{Direction: types.DirectionDown}))

	winner, ok := s.Winner()
	assert.True(t, ok)
	assert.Equal(t, types.Player1, winner)
	assert.Equal(t, SessionStateWon, s.State())
	assert.Equal(t, types.Player1, s.GameState().Winner)

	select {
	case result := <-resultChan:
		assert.Equal(t, types.GameResult{
			GameID:    "game-1",
			Winner:    "alice",
			Loser:     "bob",
			Moves:     41,
			Timestamp: testTime,
		}, result)
	default:
		t.Fatal("expected a game result")
	}

	assert.ErrorIs(t, s.Move(types.Player2, types.Move{Direction: types.DirectionUp}), ErrGameOver)
	assert.ErrorIs(t, s.PlaceWall(types.Player1, horizontal(0, 0)), ErrGameOver)
}

func TestSession_Player2Wins(t *testing.T) {
	s := restoreTestSession(t, &types.GameState{
		ID:            "game-1",
		Players:       types.PlayerNames{Player1: "alice", Player2: "bob"},
		Positions:     types.Positions{Player1: types.Cell{Row: 0, Col: 4}, Player2: types.Cell{Row: 1, Col: 4}},
		WallsLeft:     types.WallBudgets{Player1: 10, Player2: 10},
		CurrentPlayer: types.Player2,
	}, nil)

	err := s.Move(types.Player2, types.Move{Direction: types.DirectionUp})
	var sideStepErr *SideStepError
	require.ErrorAs(t, err, &sideStepErr)
	assert.Equal(t, []types.Direction{types.DirectionLeft, types.DirectionRight}, sideStepErr.Options)

	require.NoError(t, s.Move(types.Player2, types.Move{Direction: types.DirectionUp, SideStep: types.DirectionLeft}))
	assert.Equal(t, types.Cell{Row: 0, Col: 3}, s.PositionOf(types.Player2))
	winner, ok := s.Winner()
	assert.True(t, ok)
	assert.Equal(t, types.Player2, winner)
}

func TestSession_SnapshotRoundTrip(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Move(types.Player1, types.Move{Direction: types.DirectionDown}))
	require.NoError(t, s.PlaceWall(types.Player2, horizontal(3, 3)))
	requireReachable(t, s)
	require.NoError(t, s.PlaceWall(types.Player1, vertical(6, 0)))
	requireReachable(t, s)

	gameState := s.GameState()
	restored := restoreTestSession(t, gameState, nil)

	assert.Equal(t, gameState, restored.GameState())
	assert.Equal(t, types.Player2, restored.Turn())
	assert.Equal(t, 3, restored.Moves())

	// the restored session keeps enforcing walls
	err := restored.PlaceWall(types.Player2, vertical(3, 3))
	assert.ErrorIs(t, err, ErrWallOverlap)
}

func TestRestoreSession_Invalid(t *testing.T) {
	valid := func() *types.GameState {
		return &types.GameState{
			ID:            "game-1",
			Players:       types.PlayerNames{Player1: "alice", Player2: "bob"},
			Positions:     types.Positions{Player1: types.Cell{Row: 0, Col: 4}, Player2: types.Cell{Row: 8, Col: 4}},
			WallsLeft:     types.WallBudgets{Player1: 10, Player2: 10},
			CurrentPlayer: types.Player1,
		}
	}

	tests := []struct {
		name   string
		mutate func(g *types.GameState)
	}{
		{name: "missing id", mutate: func(g *types.GameState) { g.ID = "" }},
		{name: "same player twice", mutate: func(g *types.GameState) { g.Players.Player2 = "alice" }},
		{name: "stacked tokens", mutate: func(g *types.GameState) { g.Positions.Player2 = g.Positions.Player1 }},
		{name: "token off the board", mutate: func(g *types.GameState) { g.Positions.Player1 = types.Cell{Row: 9, Col: 0} }},
		{name: "too many walls", mutate: func(g *types.GameState) { g.WallsLeft.Player1 = 11 }},
		{name: "no current player", mutate: func(g *types.GameState) { g.CurrentPlayer = types.PlayerNone }},
		{name: "wall off the board", mutate: func(g *types.GameState) { g.WallsV = []types.Cell{{Row: 8, Col: 0}} }},
		{name: "overlapping walls", mutate: func(g *types.GameState) { g.WallsH = []types.Cell{{Row: 3, Col: 3}, {Row: 3, Col: 4}} }},
		{name: "crossing walls", mutate: func(g *types.GameState) {
			g.WallsH = []types.Cell{{Row: 3, Col: 3}}
			g.WallsV = []types.Cell{{Row: 3, Col: 3}}
		}},
		{name: "isolated player", mutate: func(g *types.GameState) {
			g.WallsH = []types.Cell{{Row: 4, Col: 0}, {Row: 4, Col: 2}, {Row: 4, Col: 4}, {Row: 4, Col: 6}, {Row: 2, Col: 7}}
			g.WallsV = []types.Cell{{Row: 3, Col: 7}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := valid()
			tt.mutate(g)
			_, err := RestoreSession(g, NewSessionOptions{})
			assert.ErrorIs(t, err, ErrInvalidGameState)
		})
	}

	_, err := RestoreSession(nil, NewSessionOptions{})
	assert.ErrorIs(t, err, ErrInvalidGameState)
}

func TestRestoreSession_DuplicateAnchors(t *testing.T) {
	s := restoreTestSession(t, &types.GameState{
		ID:            "game-1",
		Players:       types.PlayerNames{Player1: "alice", Player2: "bob"},
		Positions:     types.Positions{Player1: types.Cell{Row: 0, Col: 4}, Player2: types.Cell{Row: 8, Col: 4}},
		WallsLeft:     types.WallBudgets{Player1: 9, Player2: 10},
		WallsH:        []types.Cell{{Row: 3, Col: 3}, {Row: 3, Col: 3}},
		CurrentPlayer: types.Player2,
	}, nil)

	assert.Equal(t, []types.Cell{{Row: 3, Col: 3}}, s.GameState().WallsH)
}

func TestSession_SaveAndResume(t *testing.T) {
	persistence := &memoryPersistence{games: map[string]*types.GameState{}}
	s, err := NewSession(NewSessionOptions{
		ID:          "game-1",
		Player1:     "alice",
		Player2:     "bob",
		Persistence: persistence,
		Clock:       fixedClock,
	})
	require.NoError(t, err)
	require.NoError(t, s.Move(types.Player1, types.Move{Direction: types.DirectionDown}))

	id, err := s.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "game-1", id)

	resumed, err := ResumeSession(context.Background(), id, NewSessionOptions{Persistence: persistence, Clock: fixedClock})
	require.NoError(t, err)
	assert.Equal(t, s.GameState(), resumed.GameState())

	_, err = ResumeSession(context.Background(), "missing", NewSessionOptions{Persistence: persistence})
	assert.Error(t, err)

	persistence.err = errors.New("disk full")
	_, err = s.Save(context.Background())
	assert.Error(t, err)
	assert.False(t, IsRuleError(err))

	noPersistence := newTestSession(t)
	_, err = noPersistence.Save(context.Background())
	assert.Error(t, err)
}

func TestSession_LogsGameID(t *testing.T) {
	buf := &bytes.Buffer{}
	log.SetDefaultLogger(log.New(buf, log.LogLevelDebug))
	defer log.SetDefaultLogger(log.New(os.Stdout, log.LogLevelDebug))

	s := newTestSession(t)
	require.NoError(t, s.Move(types.Player1, types.Move{Direction: types.DirectionDown}))
	require.NoError(t, s.PlaceWall(types.Player2, horizontal(1, 3)))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		entry := map[string]interface{}{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		assert.Equal(t, "game-1", entry["game"], line)
	}
}
