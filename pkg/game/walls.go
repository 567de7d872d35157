package game

import (
	"fmt"

	"github.com/cbodonnell/quoridor/pkg/game/types"
)

// ValidateWall checks whether the player may place the segment. It runs the
// structural checks first and the reachability check last, against a
// hypothetical copy of the wall set. Nothing is mutated.
func ValidateWall(board *types.Board, walls *types.WallSet, player types.Player, segment types.WallSegment) error {
	if !segment.Orientation.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidOrientation, segment.Orientation)
	}
	if walls.Remaining(player) <= 0 {
		return fmt.Errorf("%w: %s has placed all of their walls", ErrNoWallsLeft, player)
	}
	if !segment.InBounds() {
		return fmt.Errorf("%w: wall anchor %s", ErrOutOfBounds, segment.Anchor)
	}
	if walls.Overlaps(segment) {
		return fmt.Errorf("%w: %s", ErrWallOverlap, segment)
	}

	hypothetical := walls.Clone()
	hypothetical.Place(segment)
	for _, p := range types.Players {
		if !CanReach(hypothetical, board.PositionOf(p), p.GoalRow()) {
			return fmt.Errorf("%w: %s would have no path to row %d", ErrWouldIsolatePlayer, p, p.GoalRow())
		}
	}

	return nil
}
