// Package core provides fundamental types for the wallsnake engine.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Point is a cell coordinate on the grid.
// X increases to the right, Y increases downward (screen coordinates).
type Point struct {
	X, Y int
}

// P is a convenience constructor for Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid is the fixed-size toroidal field the snake, fruit and walls live on.
type Grid struct {
	Width  int
	Height int
}

// NewGrid creates a grid with the given dimensions.
func NewGrid(width, height int) Grid {
	return Grid{Width: width, Height: height}
}

// Area returns the number of cells in the grid.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Contains returns true if p lies inside [0, Width) x [0, Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Step moves p one cell in direction d and wraps each axis independently.
// A coordinate that drops below 0 becomes size-1 and one that passes size-1
// becomes 0. All movement on the grid goes through here.
func (g Grid) Step(p Point, d Direction) Point {
	dx, dy := d.Delta()
	return Point{
		X: wrapAxis(p.X+dx, g.Width),
		Y: wrapAxis(p.Y+dy, g.Height),
	}
}

func wrapAxis(v, size int) int {
	if v < 0 {
		return size - 1
	}
	if v > size-1 {
		return 0
	}
	return v
}

// Cells returns every coordinate in the grid, row by row.
func (g Grid) Cells() []Point {
	cells := make([]Point, 0, g.Area())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			cells = append(cells, P(x, y))
		}
	}
	return cells
}
