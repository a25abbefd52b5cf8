// Package snake implements the wallsnake engine: a snake on a toroidal grid
// that eats fruit, grows, and either dies on or (when empowered) destroys the
// random-walk wall clusters each fruit spawns.
package snake

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/vovakirdan/wallsnake/internal/config"
	"github.com/vovakirdan/wallsnake/internal/core"
)

// Game owns the whole simulation state. All mutation happens in Tick.
type Game struct {
	cfg    config.SnakeConfig
	grid   core.Grid
	rng    Rand
	sample DirectionSampler

	snake          *Snake
	fruit          Fruit
	walls          []*Wall
	score          int
	destroyedWalls int

	tick       uint64
	pending    core.Direction
	hasPending bool
	paused     bool
}

// New creates a game from a validated config, drawing randomness from rng.
func New(cfg config.SnakeConfig, rng Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sample, err := SamplerFor(cfg.Walls.DirectionSampling)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:    cfg,
		grid:   cfg.GridSize(),
		rng:    rng,
		sample: sample,
		snake:  NewSnake(core.P(cfg.Snake.StartX, cfg.Snake.StartY), cfg.StartDirection()),
		fruit:  NewFruit(core.P(cfg.Fruit.StartX, cfg.Fruit.StartY)),
	}

	// First wall at the fixed origin, any further ones at random cells
	for i := range cfg.Walls.Initial {
		origin := core.P(cfg.Walls.InitialX, cfg.Walls.InitialY)
		if i > 0 {
			origin = randomCell(g.grid, g.rng)
		}
		g.walls = append(g.walls, NewWall(g.grid, origin, cfg.Walls.Size, g.nextDirection))
	}
	return g, nil
}

// NewSeeded creates a game backed by math/rand seeded with seed.
func NewSeeded(cfg config.SnakeConfig, seed int64) (*Game, error) {
	return New(cfg, rand.New(rand.NewSource(seed))) //#nosec G404 -- gameplay randomness
}

func (g *Game) nextDirection() core.Direction {
	return g.sample(g.rng)
}

// SetDirection requests a heading for the next tick. A reversal of the
// current heading is rejected and false is returned.
func (g *Game) SetDirection(d core.Direction) bool {
	if !g.snake.CanTurn(d) {
		return false
	}
	g.pending = d
	g.hasPending = true
	return true
}

// Tick advances the simulation by one step and returns the snake's outcome.
func (g *Game) Tick() SnakeAction {
	g.tick++

	if g.hasPending {
		if g.snake.CanTurn(g.pending) {
			g.snake.SetDirection(g.pending)
		}
		g.hasPending = false
	}

	action := g.snake.Update(g.grid, g.fruit.Pos(), g.walls)
	switch action {
	case ActionAteFruit:
		g.eatFruit()
	case ActionSelfCollision:
		g.endRun()
	case ActionWallCollision:
		if g.snake.Empowered() {
			g.destroyWalls()
		} else {
			g.endRun()
		}
	}
	return action
}

func (g *Game) eatFruit() {
	g.score++
	g.spawnWall()
	g.fruit.RegenerateOutsideWalls(g.grid, g.rng, g.walls)

	if g.score%g.cfg.Power.ApplesPerPower == 0 {
		g.snake.Empower()
	} else {
		g.snake.RemovePower()
	}
}

// spawnWall adds a cluster at a random cell unless the wall cap is reached.
func (g *Game) spawnWall() {
	if len(g.walls) >= g.cfg.Walls.MaxWalls {
		return
	}
	origin := randomCell(g.grid, g.rng)
	g.walls = append(g.walls, NewWall(g.grid, origin, g.cfg.Walls.Size, g.nextDirection))
}

// destroyWalls removes every wall under the head and spends one charge.
func (g *Game) destroyWalls() {
	head := g.snake.Head()
	g.walls = slices.DeleteFunc(g.walls, func(w *Wall) bool {
		return w.Contains(head)
	})

	g.destroyedWalls++
	if g.destroyedWalls >= g.cfg.Power.MaxWallsDestroyable {
		g.snake.RemovePower()
		g.destroyedWalls = 0
	}
}

// endRun zeroes the score, clears the body and every wall.
func (g *Game) endRun() {
	g.score = 0
	g.snake.Reset()
	g.walls = nil
	if g.cfg.Gameplay.RespawnAtStart {
		g.snake.Respawn(core.P(g.cfg.Snake.StartX, g.cfg.Snake.StartY), g.cfg.StartDirection())
	}
}

// Step is the platform entry point: it applies one frame of input and ticks
// unless paused.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if d, ok := in.Direction(); ok && !g.paused {
		g.SetDirection(d)
	}
	if !g.paused {
		g.Tick()
	}
	return core.StepResult{State: g.State()}
}

// State returns the platform summary.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		Empowered: g.snake.Empowered(),
		Paused:    g.paused,
	}
}

// Grid returns the field dimensions.
func (g *Game) Grid() core.Grid { return g.grid }

// Head returns the snake's head cell.
func (g *Game) Head() core.Point { return g.snake.Head() }

// Body returns the snake's body cells, nearest to the head first.
func (g *Game) Body() []core.Point { return g.snake.Body() }

// Direction returns the snake's current heading.
func (g *Game) Direction() core.Direction { return g.snake.Direction() }

// Fruit returns the fruit cell.
func (g *Game) Fruit() core.Point { return g.fruit.Pos() }

// Walls returns a copy of the wall list. Walls themselves are immutable.
func (g *Game) Walls() []*Wall { return slices.Clone(g.walls) }

// WallCells returns every wall cell flattened, in wall order.
func (g *Game) WallCells() []core.Point {
	var cells []core.Point
	for _, w := range g.walls {
		cells = append(cells, w.cells...)
	}
	return cells
}

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Empowered reports whether the snake can currently destroy walls.
func (g *Game) Empowered() bool { return g.snake.Empowered() }

// DestroyedWalls returns walls destroyed with the current power charge.
func (g *Game) DestroyedWalls() int { return g.destroyedWalls }

// WallsLeftToDestroy returns remaining destroy charges while empowered.
func (g *Game) WallsLeftToDestroy() int {
	return g.cfg.Power.MaxWallsDestroyable - g.destroyedWalls
}

// ApplesUntilPower returns how many more fruit grant the power.
func (g *Game) ApplesUntilPower() int {
	n := g.cfg.Power.ApplesPerPower
	return n - g.score%n
}

// LastAction returns the outcome of the most recent tick.
func (g *Game) LastAction() SnakeAction { return g.snake.LastAction() }

// TickCount returns the number of ticks simulated.
func (g *Game) TickCount() uint64 { return g.tick }

// Paused reports whether Step is currently skipping ticks.
func (g *Game) Paused() bool { return g.paused }

// DebugState returns a one-line description of the game state.
func (g *Game) DebugState() string {
	return fmt.Sprintf("tick=%d score=%d head=%v dir=%s len=%d fruit=%v walls=%d empowered=%v destroyed=%d",
		g.tick, g.score, g.snake.Head(), g.snake.Direction(), g.snake.Len(),
		g.fruit.Pos(), len(g.walls), g.snake.Empowered(), g.destroyedWalls)
}
