package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cbodonnell/quoridor/pkg/game/types"
)

// Rule errors. All of them are recoverable: the acting player keeps the
// turn and may retry with a corrected action.
var (
	ErrOutOfBounds        = errors.New("out of bounds")
	ErrBlockedByWall      = errors.New("blocked by wall")
	ErrBlockedDiagonal    = errors.New("diagonal side-step blocked")
	ErrSideStepRequired   = errors.New("jump blocked, side-step required")
	ErrInvalidDirection   = errors.New("invalid direction")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrNoWallsLeft        = errors.New("no walls left")
	ErrWallOverlap        = errors.New("wall overlaps an existing wall")
	ErrWouldIsolatePlayer = errors.New("wall would block every path for a player")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrGameOver           = errors.New("game is over")
	ErrDuplicatePlayer    = errors.New("players must be distinct")
	ErrInvalidGameState   = errors.New("invalid game state")
)

// SideStepError is returned when the straight jump over the opponent is
// blocked and the mover did not pick a side. Options lists the viable sides.
type SideStepError struct {
	Options []types.Direction
}

func (e *SideStepError) Error() string {
	options := make([]string, 0, len(e.Options))
	for _, o := range e.Options {
		options = append(options, o.String())
	}
	return fmt.Sprintf("%v: choose %s", ErrSideStepRequired, strings.Join(options, " or "))
}

func (e *SideStepError) Is(target error) bool {
	return target == ErrSideStepRequired
}

// IsRuleError reports whether err was produced by a rejected action,
// as opposed to an infrastructure failure.
func IsRuleError(err error) bool {
	for _, target := range []error{
		ErrOutOfBounds, ErrBlockedByWall, ErrBlockedDiagonal, ErrSideStepRequired,
		ErrInvalidDirection, ErrInvalidOrientation, ErrNoWallsLeft, ErrWallOverlap,
		ErrWouldIsolatePlayer, ErrNotYourTurn, ErrGameOver,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
