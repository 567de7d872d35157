package game

import (
	"fmt"
	"strings"

	"github.com/cbodonnell/quoridor/pkg/game/types"
)

// ParseDirection parses one of up, down, left or right.
func ParseDirection(s string) (types.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return types.DirectionUp, nil
	case "down", "d":
		return types.DirectionDown, nil
	case "left", "l":
		return types.DirectionLeft, nil
	case "right", "r":
		return types.DirectionRight, nil
	default:
		return types.DirectionNone, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// ParseOrientation parses h or v.
func ParseOrientation(s string) (types.Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "horizontal":
		return types.Horizontal, nil
	case "v", "vertical":
		return types.Vertical, nil
	default:
		return types.OrientationNone, fmt.Errorf("%w: %q", ErrInvalidOrientation, s)
	}
}
