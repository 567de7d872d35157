package constants

const (
	// BoardSize is the number of rows and columns on the board
	BoardSize int = 9
	// WallSpan is the number of unit-edges covered by a single wall segment
	WallSpan int = 2
	// MaxWallAnchor is the largest row or column a wall segment may be anchored at
	MaxWallAnchor int = BoardSize - WallSpan

	// WallsPerPlayer is the wall budget each player starts with
	WallsPerPlayer int = 10

	// StartColumn is the column both tokens start in
	StartColumn int = BoardSize / 2
	// Player1StartRow is Player 1's start edge and Player 2's goal edge
	Player1StartRow int = 0
	// Player2StartRow is Player 2's start edge and Player 1's goal edge
	Player2StartRow int = BoardSize - 1
)
