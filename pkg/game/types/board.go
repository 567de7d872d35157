package types

// Board tracks the two token positions.
type Board struct {
	positions [2]Cell
}

// NewBoard returns a board with both tokens on their start cells.
func NewBoard() *Board {
	return NewBoardAt(Player1.StartCell(), Player2.StartCell())
}

// NewBoardAt returns a board with the tokens on the given cells.
// The caller is responsible for passing distinct, in-bounds cells.
func NewBoardAt(player1 Cell, player2 Cell) *Board {
	return &Board{
		positions: [2]Cell{player1, player2},
	}
}

func (b *Board) PositionOf(player Player) Cell {
	return b.positions[player.index()]
}

// MoveToken relocates the player's token. Legality is checked by the caller.
func (b *Board) MoveToken(player Player, destination Cell) {
	b.positions[player.index()] = destination
}

// OccupantAt returns the player whose token is on the cell, if any.
func (b *Board) OccupantAt(cell Cell) (Player, bool) {
	for _, player := range Players {
		if b.PositionOf(player) == cell {
			return player, true
		}
	}
	return PlayerNone, false
}

func (b *Board) Copy() *Board {
	return &Board{
		positions: b.positions,
	}
}
