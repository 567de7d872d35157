package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWallSet_Blocked(t *testing.T) {
	walls := NewWallSet(10)
	walls.Place(WallSegment{Anchor: Cell{Row: 3, Col: 3}, Orientation: Horizontal})
	walls.Place(WallSegment{Anchor: Cell{Row: 5, Col: 1}, Orientation: Vertical})

	tests := []struct {
		name string
		from Cell
		to   Cell
		want bool
	}{
		{name: "horizontal first edge", from: Cell{3, 3}, to: Cell{4, 3}, want: true},
		{name: "horizontal second edge", from: Cell{3, 4}, to: Cell{4, 4}, want: true},
		{name: "horizontal reversed", from: Cell{4, 4}, to: Cell{3, 4}, want: true},
		{name: "beside horizontal", from: Cell{3, 5}, to: Cell{4, 5}, want: false},
		{name: "along horizontal", from: Cell{3, 3}, to: Cell{3, 4}, want: false},
		{name: "vertical first edge", from: Cell{5, 1}, to: Cell{5, 2}, want: true},
		{name: "vertical second edge", from: Cell{6, 2}, to: Cell{6, 1}, want: true},
		{name: "below vertical", from: Cell{7, 1}, to: Cell{7, 2}, want: false},
		{name: "not adjacent", from: Cell{0, 0}, to: Cell{2, 0}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, walls.Blocked(tt.from, tt.to))
		})
	}
}

func TestWallSet_Overlaps(t *testing.T) {
	walls := NewWallSet(10)
	walls.Place(WallSegment{Anchor: Cell{Row: 3, Col: 3}, Orientation: Horizontal})

	tests := []struct {
		name    string
		segment WallSegment
		want    bool
	}{
		{name: "same segment", segment: WallSegment{Anchor: Cell{3, 3}, Orientation: Horizontal}, want: true},
		{name: "shares right edge", segment: WallSegment{Anchor: Cell{3, 4}, Orientation: Horizontal}, want: true},
		{name: "shares left edge", segment: WallSegment{Anchor: Cell{3, 2}, Orientation: Horizontal}, want: true},
		{name: "end to end", segment: WallSegment{Anchor: Cell{3, 5}, Orientation: Horizontal}, want: false},
		{name: "parallel row", segment: WallSegment{Anchor: Cell{4, 3}, Orientation: Horizontal}, want: false},
		{name: "crossing", segment: WallSegment{Anchor: Cell{3, 3}, Orientation: Vertical}, want: true},
		{name: "vertical touching end", segment: WallSegment{Anchor: Cell{3, 4}, Orientation: Vertical}, want: false},
		{name: "vertical above", segment: WallSegment{Anchor: Cell{2, 3}, Orientation: Vertical}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, walls.Overlaps(tt.segment))
		})
	}
}

func TestWallSegment_InBounds(t *testing.T) {
	assert.True(t, WallSegment{Anchor: Cell{0, 0}, Orientation: Horizontal}.InBounds())
	assert.True(t, WallSegment{Anchor: Cell{7, 7}, Orientation: Vertical}.InBounds())
	assert.False(t, WallSegment{Anchor: Cell{8, 0}, Orientation: Horizontal}.InBounds())
	assert.False(t, WallSegment{Anchor: Cell{0, 8}, Orientation: Vertical}.InBounds())
	assert.False(t, WallSegment{Anchor: Cell{-1, 2}, Orientation: Vertical}.InBounds())
}

func TestWallSet_CloneIsIndependent(t *testing.T) {
	walls := NewWallSet(10)
	clone := walls.Clone()

	clone.Place(WallSegment{Anchor: Cell{Row: 1, Col: 1}, Orientation: Vertical})
	clone.Decrement(Player1)

	assert.False(t, walls.ContainsVertical(Cell{Row: 1, Col: 1}))
	assert.Empty(t, walls.Segments(Vertical))
	assert.Equal(t, 10, walls.Remaining(Player1))
	assert.Equal(t, 9, clone.Remaining(Player1))
}

func TestWallSet_Segments(t *testing.T) {
	walls := NewWallSet(10)
	walls.Place(WallSegment{Anchor: Cell{Row: 6, Col: 0}, Orientation: Horizontal})
	walls.Place(WallSegment{Anchor: Cell{Row: 1, Col: 5}, Orientation: Horizontal})
	walls.Place(WallSegment{Anchor: Cell{Row: 2, Col: 2}, Orientation: Vertical})

	assert.Equal(t, []Cell{{1, 5}, {6, 0}}, walls.Segments(Horizontal))
	assert.Equal(t, []Cell{{2, 2}}, walls.Segments(Vertical))
	assert.Nil(t, walls.Segments(OrientationNone))
}

func TestWallSet_Decrement(t *testing.T) {
	walls := NewWallSet(1)
	walls.Decrement(Player2)
	walls.Decrement(Player2)

	assert.Equal(t, 0, walls.Remaining(Player2))
	assert.Equal(t, 1, walls.Remaining(Player1))
}
