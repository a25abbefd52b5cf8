package snake

import (
	"testing"

	"github.com/vovakirdan/wallsnake/internal/config"
	"github.com/vovakirdan/wallsnake/internal/core"
)

func TestNewDefaultGame(t *testing.T) {
	g := newTestGame(t, config.DefaultSnakeConfig(), 1)

	if g.Head() != core.P(5, 5) || g.Direction() != core.DirRight {
		t.Errorf("snake at %v facing %v, expected (5,5) right", g.Head(), g.Direction())
	}
	if g.Fruit() != core.P(15, 15) {
		t.Errorf("fruit at %v, expected (15,15)", g.Fruit())
	}
	walls := g.Walls()
	if len(walls) != 1 {
		t.Fatalf("expected 1 initial wall, got %d", len(walls))
	}
	if walls[0].Len() != 8 || walls[0].Cells()[0] != core.P(10, 10) {
		t.Errorf("initial wall = %v, expected 8 cells from (10,10)", walls[0].Cells())
	}
	if g.Score() != 0 || g.Empowered() || g.DestroyedWalls() != 0 {
		t.Errorf("unexpected initial state: %s", g.DebugState())
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Walls.Size = 0
	if _, err := NewSeeded(cfg, 1); err == nil {
		t.Error("NewSeeded should reject an invalid config")
	}
}

func TestTickEatsFruit(t *testing.T) {
	g := newTestGame(t, scenarioConfig(), 1)

	if got := g.Tick(); got != ActionAteFruit {
		t.Fatalf("Tick() = %v, expected %v", got, ActionAteFruit)
	}
	if g.Score() != 1 {
		t.Errorf("score = %d, expected 1", g.Score())
	}
	walls := g.Walls()
	if len(walls) != 1 || walls[0].Len() != 8 {
		t.Fatalf("expected one new wall of 8 cells, got %d walls", len(walls))
	}
	if AnyWallContains(g.Fruit(), walls) {
		t.Errorf("fruit regenerated onto a wall cell %v", g.Fruit())
	}
	if g.Empowered() {
		t.Error("one apple should not empower the snake")
	}
	if len(g.Body()) != 1 {
		t.Errorf("body length = %d, expected 1", len(g.Body()))
	}
}

func TestTickWallCollisionEndsRun(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Fruit.StartX, cfg.Fruit.StartY = 2, 2
	g := newTestGame(t, cfg, 1)
	g.walls = []*Wall{NewWallFromCells(core.P(15, 15))}
	g.score = 3

	if got := g.Tick(); got != ActionWallCollision {
		t.Fatalf("Tick() = %v, expected %v", got, ActionWallCollision)
	}
	if g.Score() != 0 {
		t.Errorf("score = %d, expected 0", g.Score())
	}
	if len(g.Body()) != 0 {
		t.Errorf("body not cleared: %v", g.Body())
	}
	if len(g.Walls()) != 0 {
		t.Errorf("walls not cleared: %d left", len(g.Walls()))
	}
	// Head stays where the collision happened
	if g.Head() != core.P(15, 15) {
		t.Errorf("head at %v, expected (15,15)", g.Head())
	}
}

func TestTickWallCollisionRespawn(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Fruit.StartX, cfg.Fruit.StartY = 2, 2
	cfg.Gameplay.RespawnAtStart = true
	g := newTestGame(t, cfg, 1)
	g.walls = []*Wall{NewWallFromCells(core.P(15, 15))}
	g.snake.SetDirection(core.DirRight)

	g.Tick()

	if g.Head() != core.P(14, 15) || g.Direction() != core.DirRight {
		t.Errorf("respawned at %v facing %v, expected (14,15) right", g.Head(), g.Direction())
	}
}

func TestTickEmpoweredDestroysWall(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Fruit.StartX, cfg.Fruit.StartY = 2, 2
	g := newTestGame(t, cfg, 1)
	other := NewWallFromCells(core.P(3, 3))
	g.walls = []*Wall{NewWallFromCells(core.P(15, 15)), other}
	g.score = 5
	g.snake.Empower()

	if got := g.Tick(); got != ActionWallCollision {
		t.Fatalf("Tick() = %v, expected %v", got, ActionWallCollision)
	}
	walls := g.Walls()
	if len(walls) != 1 || walls[0] != other {
		t.Errorf("expected only the untouched wall to remain, got %d walls", len(walls))
	}
	if g.DestroyedWalls() != 1 {
		t.Errorf("destroyed = %d, expected 1", g.DestroyedWalls())
	}
	if !g.Empowered() {
		t.Error("power should last until the charge is spent")
	}
	if g.Score() != 5 {
		t.Errorf("score = %d, expected 5", g.Score())
	}
	if g.WallsLeftToDestroy() != 2 {
		t.Errorf("WallsLeftToDestroy() = %d, expected 2", g.WallsLeftToDestroy())
	}
}

func TestTickEmpoweredRemovesOverlappingWalls(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Fruit.StartX, cfg.Fruit.StartY = 2, 2
	g := newTestGame(t, cfg, 1)
	g.walls = []*Wall{
		NewWallFromCells(core.P(15, 15), core.P(16, 15)),
		NewWallFromCells(core.P(15, 16), core.P(15, 15)),
	}
	g.snake.Empower()

	g.Tick()

	if len(g.Walls()) != 0 {
		t.Errorf("both walls under the head should go, %d left", len(g.Walls()))
	}
	if g.DestroyedWalls() != 1 {
		t.Errorf("one collision spends one charge, destroyed = %d", g.DestroyedWalls())
	}
}

func TestTickPowerSpentAtMax(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Fruit.StartX, cfg.Fruit.StartY = 2, 2
	g := newTestGame(t, cfg, 1)
	g.walls = []*Wall{NewWallFromCells(core.P(15, 15))}
	g.snake.Empower()
	g.destroyedWalls = 2

	g.Tick()

	if g.Empowered() {
		t.Error("power should be removed after the third destroyed wall")
	}
	if g.DestroyedWalls() != 0 {
		t.Errorf("destroyed = %d, expected reset to 0", g.DestroyedWalls())
	}
}

func TestTickSelfCollisionEndsRun(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Snake.StartX, cfg.Snake.StartY = 5, 5
	g := newTestGame(t, cfg, 1)
	g.snake.body = []core.Point{core.P(5, 6), core.P(6, 6), core.P(6, 5), core.P(6, 4)}
	g.walls = []*Wall{NewWallFromCells(core.P(0, 0))}
	g.score = 7

	if got := g.Tick(); got != ActionSelfCollision {
		t.Fatalf("Tick() = %v, expected %v", got, ActionSelfCollision)
	}
	if g.Score() != 0 || len(g.Body()) != 0 || len(g.Walls()) != 0 {
		t.Errorf("run not reset: %s", g.DebugState())
	}
}

func TestTickPowerCycle(t *testing.T) {
	g := newTestGame(t, scenarioConfig(), 1)
	g.score = 4

	g.Tick()
	if g.Score() != 5 || !g.Empowered() {
		t.Fatalf("fifth apple should empower: %s", g.DebugState())
	}
	if g.ApplesUntilPower() != 5 {
		t.Errorf("ApplesUntilPower() = %d, expected 5", g.ApplesUntilPower())
	}

	// Next apple drops the power again
	g.fruit = NewFruit(core.P((g.Head().X+1)%20, g.Head().Y))
	g.walls = nil
	g.snake.SetDirection(core.DirRight)
	g.Tick()
	if g.Score() != 6 || g.Empowered() {
		t.Errorf("sixth apple should remove the power: %s", g.DebugState())
	}
}

func TestTickWallCap(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Walls.MaxWalls = 1
	cfg.Walls.Initial = 1
	cfg.Walls.InitialX, cfg.Walls.InitialY = 0, 0
	cfg.Walls.Size = 1
	g := newTestGame(t, cfg, 1)

	g.Tick()

	if g.Score() != 1 {
		t.Fatalf("score = %d, expected 1", g.Score())
	}
	if len(g.Walls()) != 1 {
		t.Errorf("wall cap exceeded: %d walls", len(g.Walls()))
	}
}

func TestSetDirectionRejectsReversal(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Fruit.StartX, cfg.Fruit.StartY = 2, 2
	g := newTestGame(t, cfg, 1)

	if g.SetDirection(core.DirLeft) {
		t.Error("SetDirection(Left) while heading right should be rejected")
	}
	if !g.SetDirection(core.DirUp) {
		t.Error("SetDirection(Up) while heading right should be accepted")
	}
	if !g.SetDirection(core.DirDown) {
		t.Error("SetDirection(Down) while heading right should be accepted")
	}

	g.Tick()

	// Last accepted request wins
	if g.Direction() != core.DirDown || g.Head() != core.P(14, 16) {
		t.Errorf("snake at %v facing %v, expected (14,16) down", g.Head(), g.Direction())
	}
}

func TestStepPause(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Fruit.StartX, cfg.Fruit.StartY = 2, 2
	g := newTestGame(t, cfg, 1)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	res := g.Step(in)
	if !res.State.Paused || g.TickCount() != 0 {
		t.Fatalf("pause should stop ticking: paused=%v ticks=%d", res.State.Paused, g.TickCount())
	}

	// Movement is ignored while paused
	in = core.NewInputFrame()
	in.Set(core.ActionUp)
	g.Step(in)
	if g.TickCount() != 0 || g.Head() != core.P(14, 15) {
		t.Errorf("paused game moved: %s", g.DebugState())
	}

	in = core.NewInputFrame()
	in.Set(core.ActionPause)
	in.Set(core.ActionDown)
	res = g.Step(in)
	if res.State.Paused || g.TickCount() != 1 {
		t.Fatalf("unpause should tick: paused=%v ticks=%d", res.State.Paused, g.TickCount())
	}
	if g.Head() != core.P(14, 16) {
		t.Errorf("head at %v, expected (14,16)", g.Head())
	}
}

func TestDeterminism(t *testing.T) {
	turns := []core.Direction{core.DirUp, core.DirLeft, core.DirDown, core.DirRight}

	run := func() []uint64 {
		g := newTestGame(t, config.DefaultSnakeConfig(), 12345)
		var hashes []uint64
		for i := range 500 {
			if i%7 == 0 {
				g.SetDirection(turns[(i/7)%len(turns)])
			}
			g.Tick()
			snap := g.Snapshot()
			hashes = append(hashes, snap.Hash())
		}
		return hashes
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("determinism broken at tick %d: %d != %d", i+1, a[i], b[i])
		}
	}
}

func TestInvariantsHoldOverLongRun(t *testing.T) {
	for _, mode := range []string{config.SamplingUniform, config.SamplingLegacy} {
		cfg := config.DefaultSnakeConfig()
		cfg.Walls.DirectionSampling = mode
		g := newTestGame(t, cfg, 99)
		grid := g.Grid()

		for i := range 2000 {
			g.SetDirection(core.Directions[(i*13/5)%4])
			action := g.Tick()

			if !grid.Contains(g.Head()) {
				t.Fatalf("%s: head %v left the grid", mode, g.Head())
			}
			for _, p := range g.WallCells() {
				if !grid.Contains(p) {
					t.Fatalf("%s: wall cell %v outside grid", mode, p)
				}
			}
			if action == ActionAteFruit && AnyWallContains(g.Fruit(), g.Walls()) {
				t.Fatalf("%s: fruit %v regenerated inside a wall", mode, g.Fruit())
			}
			if len(g.Walls()) > cfg.Walls.MaxWalls {
				t.Fatalf("%s: %d walls exceed the cap", mode, len(g.Walls()))
			}
			if g.DestroyedWalls() >= cfg.Power.MaxWallsDestroyable {
				t.Fatalf("%s: destroyed counter %d reached the max", mode, g.DestroyedWalls())
			}
		}
	}
}

func TestDebugState(t *testing.T) {
	g := newTestGame(t, config.DefaultSnakeConfig(), 1)
	want := "tick=0 score=0 head=(5,5) dir=right len=1 fruit=(15,15) walls=1 empowered=false destroyed=0"
	if got := g.DebugState(); got != want {
		t.Errorf("DebugState() = %q, expected %q", got, want)
	}
}
