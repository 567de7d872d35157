package game

import (
	"github.com/cbodonnell/quoridor/pkg/game/constants"
	"github.com/cbodonnell/quoridor/pkg/game/types"
)

// CanReach reports whether a path of open unit-edges leads from start to any
// cell on goalRow. The wall set is only read.
func CanReach(walls *types.WallSet, start types.Cell, goalRow int) bool {
	return PathLength(walls, start, goalRow) >= 0
}

// PathLength returns the number of steps on the shortest path from start to
// goalRow, or -1 when the goal row cannot be reached.
func PathLength(walls *types.WallSet, start types.Cell, goalRow int) int {
	if !start.InBounds() {
		return -1
	}

	var visited [constants.BoardSize * constants.BoardSize]bool
	var distance [constants.BoardSize * constants.BoardSize]int
	var queue [constants.BoardSize * constants.BoardSize]types.Cell
	head, tail := 0, 0

	visited[start.Index()] = true
	queue[tail] = start
	tail++

	for head < tail {
		cell := queue[head]
		head++
		if cell.Row == goalRow {
			return distance[cell.Index()]
		}
		for _, direction := range types.Directions {
			next := cell.Step(direction)
			if !next.InBounds() || visited[next.Index()] || walls.Blocked(cell, next) {
				continue
			}
			visited[next.Index()] = true
			distance[next.Index()] = distance[cell.Index()] + 1
			queue[tail] = next
			tail++
		}
	}

	return -1
}
