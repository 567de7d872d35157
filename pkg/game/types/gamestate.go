package types

import "time"

// GameState is a serializable snapshot of a session.
type GameState struct {
	// ID is the unique session id
	ID string `json:"id"`
	// Players maps each seat to the identifier of the person playing it
	Players PlayerNames `json:"players"`
	// Positions holds the token position of each seat
	Positions Positions `json:"board"`
	// WallsLeft holds the remaining wall budget of each seat
	WallsLeft WallBudgets `json:"walls"`
	// WallsH lists the anchors of horizontal segments
	WallsH []Cell `json:"walls_h"`
	// WallsV lists the anchors of vertical segments
	WallsV []Cell `json:"walls_v"`
	// CurrentPlayer is the seat whose turn it is
	CurrentPlayer Player `json:"current_player"`
	// Winner is set once the session is over
	Winner Player `json:"winner,omitempty"`
	// Moves counts accepted actions
	Moves int `json:"moves"`
	// Timestamp is the time at which the snapshot was taken
	Timestamp time.Time `json:"timestamp"`
	// Duration is the total time played
	Duration time.Duration `json:"duration"`
}

type PlayerNames struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
}

func (n PlayerNames) Of(player Player) string {
	if player == Player2 {
		return n.Player2
	}
	return n.Player1
}

type Positions struct {
	Player1 Cell `json:"P1"`
	Player2 Cell `json:"P2"`
}

func (p Positions) Of(player Player) Cell {
	if player == Player2 {
		return p.Player2
	}
	return p.Player1
}

type WallBudgets struct {
	Player1 int `json:"P1"`
	Player2 int `json:"P2"`
}

func (w WallBudgets) Of(player Player) int {
	if player == Player2 {
		return w.Player2
	}
	return w.Player1
}

// Board rebuilds the token positions of the snapshot.
func (g *GameState) Board() *Board {
	return NewBoardAt(g.Positions.Player1, g.Positions.Player2)
}

// Copy returns a deep copy of the game state.
func (g *GameState) Copy() *GameState {
	c := *g
	c.WallsH = append([]Cell(nil), g.WallsH...)
	c.WallsV = append([]Cell(nil), g.WallsV...)
	return &c
}

// Walls rebuilds the wall set of the snapshot without validating it.
// Out of bounds anchors are skipped.
func (g *GameState) Walls() *WallSet {
	walls := NewWallSet(0)
	walls.SetRemaining(Player1, g.WallsLeft.Player1)
	walls.SetRemaining(Player2, g.WallsLeft.Player2)
	for _, anchor := range g.WallsH {
		segment := WallSegment{Anchor: anchor, Orientation: Horizontal}
		if segment.InBounds() {
			walls.Place(segment)
		}
	}
	for _, anchor := range g.WallsV {
		segment := WallSegment{Anchor: anchor, Orientation: Vertical}
		if segment.InBounds() {
			walls.Place(segment)
		}
	}
	return walls
}
