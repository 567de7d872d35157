// Package input turns lines typed at the prompt into commands.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cbodonnell/quoridor/pkg/game"
	"github.com/cbodonnell/quoridor/pkg/game/types"
)

var (
	ErrEmpty          = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrSyntax         = errors.New("invalid syntax")
)

type CommandType uint8

const (
	CommandMove CommandType = iota + 1
	CommandWall
	CommandSave
	CommandBoard
	CommandHelp
	CommandQuit
)

type Command struct {
	Type CommandType
	// Move is set for CommandMove
	Move types.Move
	// Wall is set for CommandWall, with a 0-based anchor
	Wall types.WallSegment
}

const Help = `Commands:
  move <up|down|left|right> [side]   move your token; name a side to step
                                     around a blocked jump, e.g. "move down left"
  wall <row>,<col>,<h|v>             place a wall anchored at row and column (1-8)
  board                              show the board again
  save                               save the game and return to the menu
  help                               show this help
  quit                               leave without saving`

// Parse reads one command. Coordinates are not range checked; the session
// rejects anchors that fall off the board.
func Parse(line string) (*Command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return nil, ErrEmpty
	}

	args := fields[1:]
	switch fields[0] {
	case "move", "m":
		return parseMove(args)
	case "wall", "w":
		return parseWall(args)
	case "save", "s":
		return simple(CommandSave, fields[0], args)
	case "board", "b":
		return simple(CommandBoard, fields[0], args)
	case "help", "h", "?":
		return &Command{Type: CommandHelp}, nil
	case "quit", "exit", "q":
		return simple(CommandQuit, fields[0], args)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}
}

func simple(commandType CommandType, name string, args []string) (*Command, error) {
	if len(args) > 0 {
		return nil, fmt.Errorf("%w: %s takes no arguments", ErrSyntax, name)
	}
	return &Command{Type: commandType}, nil
}

func parseMove(args []string) (*Command, error) {
	if len(args) == 0 || len(args) > 2 {
		return nil, fmt.Errorf("%w: usage: move <direction> [side]", ErrSyntax)
	}

	direction, err := game.ParseDirection(args[0])
	if err != nil {
		return nil, err
	}
	move := types.Move{Direction: direction}
	if len(args) == 2 {
		side, err := game.ParseDirection(args[1])
		if err != nil {
			return nil, err
		}
		move.SideStep = side
	}

	return &Command{Type: CommandMove, Move: move}, nil
}

func parseWall(args []string) (*Command, error) {
	parts := strings.FieldsFunc(strings.Join(args, " "), func(r rune) bool {
		return r == ',' || r == ' '
	})
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: usage: wall <row>,<col>,<h|v>", ErrSyntax)
	}

	row, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: row %q is not a number", ErrSyntax, parts[0])
	}
	col, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: column %q is not a number", ErrSyntax, parts[1])
	}
	orientation, err := game.ParseOrientation(parts[2])
	if err != nil {
		return nil, err
	}

	return &Command{
		Type: CommandWall,
		Wall: types.WallSegment{
			Anchor:      types.Cell{Row: row - 1, Col: col - 1},
			Orientation: orientation,
		},
	}, nil
}
