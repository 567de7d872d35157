package models

import "time"

// SavedGame describes a stored snapshot without its board.
type SavedGame struct {
	ID            string        `json:"id"`
	Player1       string        `json:"player1"`
	Player2       string        `json:"player2"`
	CurrentPlayer string        `json:"current_player"`
	Winner        string        `json:"winner,omitempty"`
	Moves         int           `json:"moves"`
	Timestamp     time.Time     `json:"timestamp"`
	Duration      time.Duration `json:"duration"`
}

func (g *SavedGame) Finished() bool {
	return g.Winner != ""
}

type LeaderboardEntry struct {
	Player string `json:"player"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}
