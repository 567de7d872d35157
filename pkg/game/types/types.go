package types

import (
	"encoding/json"
	"fmt"

	"github.com/cbodonnell/quoridor/pkg/game/constants"
)

// Player identifies one of the two seats at the board.
type Player uint8

const (
	PlayerNone Player = iota
	Player1
	Player2
)

// Players lists both seats in turn order.
var Players = [2]Player{Player1, Player2}

func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}

// Opponent returns the other seat.
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return PlayerNone
	}
}

// GoalRow returns the row the player must reach to win.
func (p Player) GoalRow() int {
	if p == Player1 {
		return constants.Player2StartRow
	}
	return constants.Player1StartRow
}

// StartCell returns the cell the player's token occupies at the start of a match.
func (p Player) StartCell() Cell {
	if p == Player1 {
		return Cell{Row: constants.Player1StartRow, Col: constants.StartColumn}
	}
	return Cell{Row: constants.Player2StartRow, Col: constants.StartColumn}
}

func (p Player) index() int {
	return int(p) - 1
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return ""
	}
}

func (p Player) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Player) UnmarshalText(text []byte) error {
	switch string(text) {
	case "P1":
		*p = Player1
	case "P2":
		*p = Player2
	case "":
		*p = PlayerNone
	default:
		return fmt.Errorf("unknown player: %q", string(text))
	}
	return nil
}

// Cell is a board coordinate. Row 0 is Player 1's start edge.
type Cell struct {
	Row int
	Col int
}

func (c Cell) InBounds() bool {
	return c.Row >= 0 && c.Row < constants.BoardSize && c.Col >= 0 && c.Col < constants.BoardSize
}

// Index returns the row-major position of the cell, for use with fixed size arrays.
func (c Cell) Index() int {
	return c.Row*constants.BoardSize + c.Col
}

// Step returns the neighbouring cell in the given direction. The result may be out of bounds.
func (c Cell) Step(d Direction) Cell {
	dr, dc := d.Delta()
	return Cell{Row: c.Row + dr, Col: c.Col + dc}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// MarshalJSON encodes the cell as a [row, col] pair.
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.Row, c.Col})
}

// UnmarshalJSON accepts either a [row, col] pair or a {"row": r, "col": c} object.
func (c *Cell) UnmarshalJSON(b []byte) error {
	var pair []int
	if err := json.Unmarshal(b, &pair); err == nil {
		if len(pair) != 2 {
			return fmt.Errorf("cell must have exactly 2 coordinates, got %d", len(pair))
		}
		c.Row, c.Col = pair[0], pair[1]
		return nil
	}

	var obj struct {
		Row *int `json:"row"`
		Col *int `json:"col"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return fmt.Errorf("failed to decode cell: %v", err)
	}
	if obj.Row == nil || obj.Col == nil {
		return fmt.Errorf("cell object must have row and col")
	}
	c.Row, c.Col = *obj.Row, *obj.Col
	return nil
}

// Direction is an absolute board direction. Up decreases the row.
type Direction uint8

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

// Directions lists the four orthogonal directions.
var Directions = [4]Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}

func (d Direction) Valid() bool {
	return d >= DirectionUp && d <= DirectionRight
}

// Delta returns the row and column offsets of a single step.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirectionUp:
		return -1, 0
	case DirectionDown:
		return 1, 0
	case DirectionLeft:
		return 0, -1
	case DirectionRight:
		return 0, 1
	default:
		return 0, 0
	}
}

// Perpendicular returns the two directions orthogonal to d.
func (d Direction) Perpendicular() [2]Direction {
	switch d {
	case DirectionUp, DirectionDown:
		return [2]Direction{DirectionLeft, DirectionRight}
	case DirectionLeft, DirectionRight:
		return [2]Direction{DirectionUp, DirectionDown}
	default:
		return [2]Direction{}
	}
}

// IsPerpendicular reports whether other lies on the axis orthogonal to d.
func (d Direction) IsPerpendicular(other Direction) bool {
	p := d.Perpendicular()
	return other.Valid() && (other == p[0] || other == p[1])
}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// Orientation of a wall segment.
type Orientation uint8

const (
	OrientationNone Orientation = iota
	Horizontal
	Vertical
)

func (o Orientation) Valid() bool {
	return o == Horizontal || o == Vertical
}

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "h"
	case Vertical:
		return "v"
	default:
		return "none"
	}
}

// Move is a token move request. SideStep is only set when the mover
// chooses a diagonal side-step around a blocked jump.
type Move struct {
	Direction Direction
	SideStep  Direction
}
