package snake

import "github.com/vovakirdan/wallsnake/internal/core"

// Snapshot captures the complete game state for the renderer and for
// determinism testing.
type Snapshot struct {
	Tick           uint64
	Score          int
	DestroyedWalls int
	Empowered      bool
	Paused         bool
	LastAction     SnakeAction
	Dir            core.Direction
	Head           core.Point
	Body           []core.Point
	Fruit          core.Point
	Walls          [][]core.Point
}

// Snapshot returns a deep copy of the current state.
func (g *Game) Snapshot() Snapshot {
	walls := make([][]core.Point, len(g.walls))
	for i, w := range g.walls {
		walls[i] = w.Cells()
	}

	return Snapshot{
		Tick:           g.tick,
		Score:          g.score,
		DestroyedWalls: g.destroyedWalls,
		Empowered:      g.snake.Empowered(),
		Paused:         g.paused,
		LastAction:     g.snake.LastAction(),
		Dir:            g.snake.Direction(),
		Head:           g.snake.Head(),
		Body:           g.snake.Body(),
		Fruit:          g.fruit.Pos(),
		Walls:          walls,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DestroyedWalls) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LastAction)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Dir)            //#nosec G115 -- hash computation
	if snap.Empowered {
		h = h*31 + 1
	}

	h = hashPoint(h, snap.Head)
	h = hashPoint(h, snap.Fruit)
	for _, p := range snap.Body {
		h = hashPoint(h, p)
	}
	for _, wall := range snap.Walls {
		h = h*31 + uint64(len(wall)) //#nosec G115 -- hash computation
		for _, p := range wall {
			h = hashPoint(h, p)
		}
	}
	return h
}

func hashPoint(h uint64, p core.Point) uint64 {
	h = h*31 + uint64(p.X) //#nosec G115 -- hash computation
	h = h*31 + uint64(p.Y) //#nosec G115 -- hash computation
	return h
}
