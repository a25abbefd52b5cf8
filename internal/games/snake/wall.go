package snake

import (
	"slices"

	"github.com/vovakirdan/wallsnake/internal/core"
)

// Wall is a random-walk cluster of cells destroyed as one unit.
// It is immutable after creation.
type Wall struct {
	cells []core.Point
}

// NewWall builds a cluster of size cells. The first cell is origin; every
// next cell is the previous one stepped (with wrap-around) in the direction
// returned by nextDir. Cells may overlap, nothing is deduplicated.
// A size below 1 still yields the origin cell.
func NewWall(grid core.Grid, origin core.Point, size int, nextDir func() core.Direction) *Wall {
	cells := make([]core.Point, 1, max(size, 1))
	cells[0] = origin

	cur := origin
	for i := 1; i < size; i++ {
		cur = grid.Step(cur, nextDir())
		cells = append(cells, cur)
	}
	return &Wall{cells: cells}
}

// NewWallFromCells builds a wall with an explicit cell list.
func NewWallFromCells(cells ...core.Point) *Wall {
	return &Wall{cells: slices.Clone(cells)}
}

// Contains reports whether p is one of the wall's cells.
func (w *Wall) Contains(p core.Point) bool {
	return slices.Contains(w.cells, p)
}

// Cells returns a copy of the wall's cells in walk order.
func (w *Wall) Cells() []core.Point {
	return slices.Clone(w.cells)
}

// Len returns the number of cells, counting revisits.
func (w *Wall) Len() int {
	return len(w.cells)
}

// AnyWallContains reports whether any wall contains p.
func AnyWallContains(p core.Point, walls []*Wall) bool {
	for _, w := range walls {
		if w.Contains(p) {
			return true
		}
	}
	return false
}

// AnyPositionInAnyWall reports whether any of positions lies in any wall.
func AnyPositionInAnyWall(positions []core.Point, walls []*Wall) bool {
	for _, p := range positions {
		if AnyWallContains(p, walls) {
			return true
		}
	}
	return false
}
