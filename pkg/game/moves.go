package game

import (
	"fmt"

	"github.com/cbodonnell/quoridor/pkg/game/types"
)

// ResolveMove computes where the player's token lands for the requested move.
// It reads the board and the wall set and never mutates either.
func ResolveMove(board *types.Board, walls *types.WallSet, player types.Player, move types.Move) (types.Cell, error) {
	direction := move.Direction
	if !direction.Valid() {
		return types.Cell{}, fmt.Errorf("%w: %s", ErrInvalidDirection, direction)
	}
	if move.SideStep != types.DirectionNone && !direction.IsPerpendicular(move.SideStep) {
		return types.Cell{}, fmt.Errorf("%w: cannot side-step %s while moving %s", ErrInvalidDirection, move.SideStep, direction)
	}

	from := board.PositionOf(player)
	step := from.Step(direction)
	if !step.InBounds() {
		return types.Cell{}, fmt.Errorf("%w: cannot move %s from %s", ErrOutOfBounds, direction, from)
	}
	if walls.Blocked(from, step) {
		return types.Cell{}, fmt.Errorf("%w: cannot move %s from %s", ErrBlockedByWall, direction, from)
	}

	if _, occupied := board.OccupantAt(step); !occupied {
		if move.SideStep != types.DirectionNone {
			return types.Cell{}, fmt.Errorf("%w: no opponent to side-step around", ErrInvalidDirection)
		}
		return step, nil
	}

	// the opponent is adjacent: try to jump straight over
	opponent := step
	landing := opponent.Step(direction)
	if landing.InBounds() && !walls.Blocked(opponent, landing) {
		if move.SideStep != types.DirectionNone {
			return types.Cell{}, fmt.Errorf("%w: straight jump is open, side-step not allowed", ErrInvalidDirection)
		}
		return landing, nil
	}

	return resolveSideStep(walls, opponent, move)
}

// SideStepOptions returns the sides the mover may step to around an opponent
// at the given cell when the jump in direction is blocked.
func SideStepOptions(walls *types.WallSet, opponent types.Cell, direction types.Direction) []types.Direction {
	options := make([]types.Direction, 0, 2)
	for _, side := range direction.Perpendicular() {
		target := opponent.Step(side)
		if target.InBounds() && !walls.Blocked(opponent, target) {
			options = append(options, side)
		}
	}
	return options
}

func resolveSideStep(walls *types.WallSet, opponent types.Cell, move types.Move) (types.Cell, error) {
	options := SideStepOptions(walls, opponent, move.Direction)
	if len(options) == 0 {
		return types.Cell{}, fmt.Errorf("%w: no side of %s is open", ErrBlockedDiagonal, opponent)
	}
	if move.SideStep == types.DirectionNone {
		return types.Cell{}, &SideStepError{Options: options}
	}
	for _, side := range options {
		if side == move.SideStep {
			return opponent.Step(side), nil
		}
	}
	return types.Cell{}, fmt.Errorf("%w: cannot step %s of %s", ErrBlockedDiagonal, move.SideStep, opponent)
}
