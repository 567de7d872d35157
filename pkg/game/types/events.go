package types

import "time"

// GameResult is emitted once when a session is won.
type GameResult struct {
	GameID    string
	Winner    string
	Loser     string
	Moves     int
	Timestamp time.Time
}
