package snake

import (
	"testing"

	"github.com/vovakirdan/wallsnake/internal/config"
	"github.com/vovakirdan/wallsnake/internal/core"
)

// scriptedRand returns its values in order (mod n), then zeros.
type scriptedRand struct {
	vals []int
	i    int
}

func (r *scriptedRand) Intn(n int) int {
	if r.i >= len(r.vals) {
		return 0
	}
	v := r.vals[r.i] % n
	r.i++
	return v
}

// dirSeq returns a nextDir func that yields dirs in order, then Right.
func dirSeq(dirs ...core.Direction) func() core.Direction {
	i := 0
	return func() core.Direction {
		if i >= len(dirs) {
			return core.DirRight
		}
		d := dirs[i]
		i++
		return d
	}
}

// scenarioConfig is the 20x20 default with the snake at (14,15) facing right,
// the fruit at (15,15) and no initial walls.
func scenarioConfig() config.SnakeConfig {
	cfg := config.DefaultSnakeConfig()
	cfg.Snake.StartX, cfg.Snake.StartY = 14, 15
	cfg.Snake.Direction = "right"
	cfg.Fruit.StartX, cfg.Fruit.StartY = 15, 15
	cfg.Walls.Initial = 0
	return cfg
}

func newTestGame(t *testing.T, cfg config.SnakeConfig, seed int64) *Game {
	t.Helper()
	g, err := NewSeeded(cfg, seed)
	if err != nil {
		t.Fatalf("NewSeeded failed: %v", err)
	}
	return g
}
