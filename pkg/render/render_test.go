package render

import (
	"strings"
	"testing"
	"time"

	"github.com/cbodonnell/quoridor/pkg/game/types"
	"github.com/cbodonnell/quoridor/pkg/repositories/models"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard(t *testing.T) {
	gameState := &types.GameState{
		ID:            "game-1",
		Players:       types.PlayerNames{Player1: "alice", Player2: "bob"},
		Positions:     types.Positions{Player1: types.Cell{Row: 0, Col: 4}, Player2: types.Cell{Row: 8, Col: 4}},
		WallsLeft:     types.WallBudgets{Player1: 9, Player2: 9},
		WallsH:        []types.Cell{{Row: 0, Col: 0}},
		WallsV:        []types.Cell{{Row: 3, Col: 2}},
		CurrentPlayer: types.Player1,
		Moves:         2,
	}

	lines := strings.Split(strings.TrimRight(Board(gameState), "\n"), "\n")
	// header, top border, 9 rows, 8 separators, bottom border
	require.Len(t, lines, 20)

	width := runewidth.StringWidth(lines[1])
	for i, line := range lines[1:] {
		assert.Equal(t, width, runewidth.StringWidth(line), "line %d", i+1)
	}

	assert.Contains(t, lines[2], Player1Marker)
	assert.Contains(t, lines[18], Player2Marker)
	assert.NotContains(t, lines[2], Player2Marker)

	// both unit-edges of each wall are drawn
	assert.Equal(t, 2, strings.Count(lines[3], "═══"))
	assert.True(t, strings.HasPrefix(lines[3], "   ├═══┼═══┼───"))
	assert.Equal(t, 1, strings.Count(lines[8], "┃"))
	assert.Equal(t, 1, strings.Count(lines[10], "┃"))
	assert.Equal(t, 0, strings.Count(lines[12], "┃"))
}

func TestSummary(t *testing.T) {
	gameState := &types.GameState{
		Players:       types.PlayerNames{Player1: "alice", Player2: "bob"},
		Positions:     types.Positions{Player1: types.Cell{Row: 0, Col: 4}, Player2: types.Cell{Row: 1, Col: 0}},
		WallsLeft:     types.WallBudgets{Player1: 10, Player2: 7},
		CurrentPlayer: types.Player2,
		Moves:         5,
	}
	summary := Summary(gameState)
	assert.Contains(t, summary, "alice: 10 walls left, 8 steps to goal")
	assert.Contains(t, summary, "bob: 7 walls left, 1 step to goal")
	assert.Contains(t, summary, "Move 6, bob to play")

	// a wall under alice's token forces one step sideways
	gameState.WallsH = []types.Cell{{Row: 0, Col: 3}}
	assert.Contains(t, Summary(gameState), "alice: 10 walls left, 9 steps to goal")

	gameState.Winner = types.Player1
	assert.Contains(t, Summary(gameState), "alice wins after 5 moves")
}

func TestLeaderboard(t *testing.T) {
	out := Leaderboard([]*models.LeaderboardEntry{
		{Player: "alice", Wins: 12, Losses: 3},
		{Player: "日本", Wins: 1, Losses: 0},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "Leaderboard", lines[0])

	width := runewidth.StringWidth(lines[1])
	for _, line := range lines[1:] {
		assert.Equal(t, width, runewidth.StringWidth(line))
	}
	assert.Contains(t, lines[4], "alice")
	assert.Contains(t, lines[4], "12")
}

func TestSavedGames(t *testing.T) {
	out := SavedGames([]*models.SavedGame{
		{ID: "game-1", Player1: "alice", Player2: "bob", Moves: 4, Timestamp: time.Now(), Duration: 90 * time.Second},
		{ID: "game-2", Player1: "alice", Player2: "carol", Winner: "P2", Timestamp: time.Now()},
	})

	assert.Contains(t, out, "Saved Games")
	assert.Contains(t, out, "0:01:30")
	assert.Contains(t, out, "in progress")
	assert.Contains(t, out, "carol won")
}

func TestDuration(t *testing.T) {
	assert.Equal(t, "0:00:00", Duration(0))
	assert.Equal(t, "1:02:03", Duration(time.Hour+2*time.Minute+3*time.Second+400*time.Millisecond))
}
