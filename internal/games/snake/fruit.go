package snake

import "github.com/vovakirdan/wallsnake/internal/core"

// Fruit is the single cell the snake eats to grow.
type Fruit struct {
	pos core.Point
}

// NewFruit places a fruit at p.
func NewFruit(p core.Point) Fruit {
	return Fruit{pos: p}
}

// Pos returns the fruit cell.
func (f Fruit) Pos() core.Point {
	return f.pos
}

// Regenerate moves the fruit to a uniformly random cell. It ignores walls.
func (f *Fruit) Regenerate(grid core.Grid, r Rand) {
	f.pos = randomCell(grid, r)
}

// RegenerateOutsideWalls resamples until the fruit lies outside every wall.
//
// Sampling gives up after a budget proportional to the grid area and then
// picks uniformly among the enumerated free cells, so the call always
// terminates. It returns false only when walls cover every cell, in which
// case the fruit keeps its last sampled position.
func (f *Fruit) RegenerateOutsideWalls(grid core.Grid, r Rand, walls []*Wall) bool {
	budget := 4 * grid.Area()
	for range budget {
		f.Regenerate(grid, r)
		if !AnyWallContains(f.pos, walls) {
			return true
		}
	}

	var free []core.Point
	for _, p := range grid.Cells() {
		if !AnyWallContains(p, walls) {
			free = append(free, p)
		}
	}
	if len(free) == 0 {
		return false
	}
	f.pos = free[r.Intn(len(free))]
	return true
}
