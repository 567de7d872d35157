package types

import (
	"github.com/cbodonnell/quoridor/pkg/game/constants"
)

// WallSegment is one wall placement. A horizontal segment at (r,c) blocks
// movement between rows r and r+1 in columns c and c+1. A vertical segment
// at (r,c) blocks movement between columns c and c+1 in rows r and r+1.
type WallSegment struct {
	Anchor      Cell
	Orientation Orientation
}

// InBounds reports whether both unit-edges of the segment lie on the board.
func (s WallSegment) InBounds() bool {
	return s.Anchor.Row >= 0 && s.Anchor.Row <= constants.MaxWallAnchor &&
		s.Anchor.Col >= 0 && s.Anchor.Col <= constants.MaxWallAnchor
}

// Edges returns the two unit-edges covered by the segment, each identified
// by the cell on its top or left side.
func (s WallSegment) Edges() [2]Cell {
	if s.Orientation == Vertical {
		return [2]Cell{s.Anchor, {Row: s.Anchor.Row + 1, Col: s.Anchor.Col}}
	}
	return [2]Cell{s.Anchor, {Row: s.Anchor.Row, Col: s.Anchor.Col + 1}}
}

func (s WallSegment) String() string {
	return s.Anchor.String() + s.Orientation.String()
}

// WallSet holds placed wall segments and the remaining wall budget of each player.
// All state lives in fixed size arrays so a value copy is a full, independent copy.
type WallSet struct {
	// horizontal[r][c] blocks movement between (r,c) and (r+1,c)
	horizontal [constants.BoardSize - 1][constants.BoardSize]bool
	// vertical[r][c] blocks movement between (r,c) and (r,c+1)
	vertical [constants.BoardSize][constants.BoardSize - 1]bool
	// anchors of placed segments, used to detect crossing walls
	horizontalAnchors [constants.MaxWallAnchor + 1][constants.MaxWallAnchor + 1]bool
	verticalAnchors   [constants.MaxWallAnchor + 1][constants.MaxWallAnchor + 1]bool

	remaining [2]int
}

// NewWallSet returns an empty wall set where each player has the given budget.
func NewWallSet(budget int) *WallSet {
	return &WallSet{
		remaining: [2]int{budget, budget},
	}
}

// Clone returns an independent copy, suitable as a hypothetical wall set.
func (w *WallSet) Clone() *WallSet {
	c := *w
	return &c
}

// ContainsHorizontal reports whether the unit-edge below the cell is walled.
func (w *WallSet) ContainsHorizontal(cell Cell) bool {
	if cell.Row < 0 || cell.Row >= constants.BoardSize-1 || cell.Col < 0 || cell.Col >= constants.BoardSize {
		return false
	}
	return w.horizontal[cell.Row][cell.Col]
}

// ContainsVertical reports whether the unit-edge right of the cell is walled.
func (w *WallSet) ContainsVertical(cell Cell) bool {
	if cell.Row < 0 || cell.Row >= constants.BoardSize || cell.Col < 0 || cell.Col >= constants.BoardSize-1 {
		return false
	}
	return w.vertical[cell.Row][cell.Col]
}

// HasSegment reports whether exactly this segment has been placed.
func (w *WallSet) HasSegment(s WallSegment) bool {
	if !s.InBounds() {
		return false
	}
	switch s.Orientation {
	case Horizontal:
		return w.horizontalAnchors[s.Anchor.Row][s.Anchor.Col]
	case Vertical:
		return w.verticalAnchors[s.Anchor.Row][s.Anchor.Col]
	default:
		return false
	}
}

// Overlaps reports whether the segment shares a unit-edge with a placed
// segment of the same orientation, or crosses a perpendicular segment
// centered on the same point.
func (w *WallSet) Overlaps(s WallSegment) bool {
	edges := s.Edges()
	switch s.Orientation {
	case Horizontal:
		return w.ContainsHorizontal(edges[0]) || w.ContainsHorizontal(edges[1]) ||
			w.HasSegment(WallSegment{Anchor: s.Anchor, Orientation: Vertical})
	case Vertical:
		return w.ContainsVertical(edges[0]) || w.ContainsVertical(edges[1]) ||
			w.HasSegment(WallSegment{Anchor: s.Anchor, Orientation: Horizontal})
	default:
		return false
	}
}

// Blocked reports whether a wall sits on the unit-edge between two
// orthogonally adjacent cells.
func (w *WallSet) Blocked(from Cell, to Cell) bool {
	switch {
	case from.Col == to.Col && to.Row == from.Row+1:
		return w.ContainsHorizontal(from)
	case from.Col == to.Col && to.Row == from.Row-1:
		return w.ContainsHorizontal(to)
	case from.Row == to.Row && to.Col == from.Col+1:
		return w.ContainsVertical(from)
	case from.Row == to.Row && to.Col == from.Col-1:
		return w.ContainsVertical(to)
	default:
		return false
	}
}

// Place adds both unit-edges of the segment. The caller must have validated it.
func (w *WallSet) Place(s WallSegment) {
	edges := s.Edges()
	switch s.Orientation {
	case Horizontal:
		w.horizontal[edges[0].Row][edges[0].Col] = true
		w.horizontal[edges[1].Row][edges[1].Col] = true
		w.horizontalAnchors[s.Anchor.Row][s.Anchor.Col] = true
	case Vertical:
		w.vertical[edges[0].Row][edges[0].Col] = true
		w.vertical[edges[1].Row][edges[1].Col] = true
		w.verticalAnchors[s.Anchor.Row][s.Anchor.Col] = true
	}
}

// Segments returns the anchors of placed segments with the given orientation in row-major order.
func (w *WallSet) Segments(o Orientation) []Cell {
	var anchors *[constants.MaxWallAnchor + 1][constants.MaxWallAnchor + 1]bool
	switch o {
	case Horizontal:
		anchors = &w.horizontalAnchors
	case Vertical:
		anchors = &w.verticalAnchors
	default:
		return nil
	}

	cells := make([]Cell, 0)
	for r := range anchors {
		for c := range anchors[r] {
			if anchors[r][c] {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// Remaining returns the player's remaining wall budget.
func (w *WallSet) Remaining(player Player) int {
	return w.remaining[player.index()]
}

// SetRemaining overrides the player's remaining wall budget.
func (w *WallSet) SetRemaining(player Player, n int) {
	w.remaining[player.index()] = n
}

// Decrement spends one wall from the player's budget. It never goes below zero.
func (w *WallSet) Decrement(player Player) {
	if w.remaining[player.index()] > 0 {
		w.remaining[player.index()]--
	}
}
