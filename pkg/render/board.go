// Package render draws snapshots and listings as plain text for terminals.
package render

import (
	"fmt"
	"strings"

	"github.com/cbodonnell/quoridor/pkg/game"
	"github.com/cbodonnell/quoridor/pkg/game/constants"
	"github.com/cbodonnell/quoridor/pkg/game/types"
	"github.com/mattn/go-runewidth"
)

const (
	Player1Marker = "⚫"
	Player2Marker = "⚪"

	cellWidth = 3
	margin    = "   "
)

// Marker returns the token drawn for the player.
func Marker(player types.Player) string {
	switch player {
	case types.Player1:
		return Player1Marker
	case types.Player2:
		return Player2Marker
	default:
		return ""
	}
}

// Board draws the grid with both tokens and every wall edge. Rows and
// columns are labelled from 1, the way wall anchors are entered.
func Board(gameState *types.GameState) string {
	board := gameState.Board()
	walls := gameState.Walls()

	sb := &strings.Builder{}

	sb.WriteString(margin + " ")
	for col := 0; col < constants.BoardSize; col++ {
		fmt.Fprintf(sb, " %d  ", col+1)
	}
	sb.WriteString("\n")

	sb.WriteString(margin)
	sb.WriteString(border("┌", "┬", "┐"))

	for row := 0; row < constants.BoardSize; row++ {
		sb.WriteString(runewidth.FillLeft(fmt.Sprint(row+1), len(margin)-1))
		sb.WriteString(" │")
		for col := 0; col < constants.BoardSize; col++ {
			cell := types.Cell{Row: row, Col: col}
			content := ""
			if player, ok := board.OccupantAt(cell); ok {
				content = Marker(player)
			}
			sb.WriteString(runewidth.FillRight(content, cellWidth))
			if col < constants.BoardSize-1 && walls.ContainsVertical(cell) {
				sb.WriteString("┃")
			} else {
				sb.WriteString("│")
			}
		}
		sb.WriteString("\n")

		if row == constants.BoardSize-1 {
			break
		}
		sb.WriteString(margin)
		sb.WriteString("├")
		for col := 0; col < constants.BoardSize; col++ {
			if walls.ContainsHorizontal(types.Cell{Row: row, Col: col}) {
				sb.WriteString("═══")
			} else {
				sb.WriteString("───")
			}
			if col < constants.BoardSize-1 {
				sb.WriteString("┼")
			} else {
				sb.WriteString("┤")
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString(margin)
	sb.WriteString(border("└", "┴", "┘"))

	return sb.String()
}

func border(left, middle, right string) string {
	segment := strings.Repeat("─", cellWidth)
	return left + strings.Repeat(segment+middle, constants.BoardSize-1) + segment + right + "\n"
}

// Summary describes both seats, their shortest distance to the goal row and
// whose turn it is, or who won.
func Summary(gameState *types.GameState) string {
	walls := gameState.Walls()
	sb := &strings.Builder{}
	for _, player := range types.Players {
		fmt.Fprintf(sb, "%s %s %s: %d walls left, %s\n",
			Marker(player), player, gameState.Players.Of(player), gameState.WallsLeft.Of(player),
			distance(game.PathLength(walls, gameState.Positions.Of(player), player.GoalRow())))
	}
	if gameState.Winner.Valid() {
		fmt.Fprintf(sb, "%s wins after %d moves\n", gameState.Players.Of(gameState.Winner), gameState.Moves)
	} else {
		fmt.Fprintf(sb, "Move %d, %s to play\n", gameState.Moves+1, gameState.Players.Of(gameState.CurrentPlayer))
	}
	return sb.String()
}

func distance(steps int) string {
	switch steps {
	case -1:
		return "no path to goal"
	case 1:
		return "1 step to goal"
	default:
		return fmt.Sprintf("%d steps to goal", steps)
	}
}
