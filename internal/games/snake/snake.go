package snake

import (
	"slices"

	"github.com/vovakirdan/wallsnake/internal/core"
)

// SnakeAction is the outcome of the snake's most recent move.
type SnakeAction int

const (
	ActionNone SnakeAction = iota
	ActionAteFruit
	ActionSelfCollision
	ActionWallCollision
)

func (a SnakeAction) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionAteFruit:
		return "ate_fruit"
	case ActionSelfCollision:
		return "self_collision"
	case ActionWallCollision:
		return "wall_collision"
	default:
		return "unknown"
	}
}

// Snake is the player's segmented body.
type Snake struct {
	head      core.Point
	body      []core.Point // Most recently vacated cell first
	direction core.Direction
	action    SnakeAction
	empowered bool
}

// NewSnake creates a body-less snake at head moving in dir.
func NewSnake(head core.Point, dir core.Direction) *Snake {
	return &Snake{
		head:      head,
		direction: dir,
	}
}

// Update moves the head one cell and classifies the move.
//
// The old head is always pushed onto the body first. Then, in order: landing
// on the fruit keeps the tail (growth); hitting the body is a self collision;
// a head or any body cell inside a wall is a wall collision; only a plain move
// drops the tail so the length holds.
func (s *Snake) Update(grid core.Grid, fruit core.Point, walls []*Wall) SnakeAction {
	newHead := grid.Step(s.head, s.direction)
	s.body = slices.Insert(s.body, 0, s.head)
	s.head = newHead

	switch {
	case s.head == fruit:
		s.action = ActionAteFruit
	case slices.Contains(s.body, s.head):
		s.action = ActionSelfCollision
	case AnyWallContains(s.head, walls) || AnyPositionInAnyWall(s.body, walls):
		s.action = ActionWallCollision
	default:
		s.body = s.body[:len(s.body)-1]
		s.action = ActionNone
	}
	return s.action
}

// CanTurn reports whether d is an allowed heading change (not a reversal).
func (s *Snake) CanTurn(d core.Direction) bool {
	return !s.direction.IsOpposite(d)
}

// SetDirection changes the heading unconditionally. Callers check CanTurn.
func (s *Snake) SetDirection(d core.Direction) {
	s.direction = d
}

// Direction returns the current heading.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// Empower grants the wall-destroying power.
func (s *Snake) Empower() {
	s.empowered = true
}

// RemovePower clears the wall-destroying power.
func (s *Snake) RemovePower() {
	s.empowered = false
}

// Empowered reports whether the snake can destroy walls.
func (s *Snake) Empowered() bool {
	return s.empowered
}

// Reset clears the body and power. Head and direction are left as they are.
func (s *Snake) Reset() {
	s.body = nil
	s.empowered = false
}

// Respawn moves the head to p with heading dir.
func (s *Snake) Respawn(p core.Point, dir core.Direction) {
	s.head = p
	s.direction = dir
}

// Head returns the head cell.
func (s *Snake) Head() core.Point {
	return s.head
}

// Body returns a copy of the body cells, nearest to the head first.
func (s *Snake) Body() []core.Point {
	return slices.Clone(s.body)
}

// Len returns head plus body length.
func (s *Snake) Len() int {
	return 1 + len(s.body)
}

// LastAction returns the outcome of the most recent Update.
func (s *Snake) LastAction() SnakeAction {
	return s.action
}
