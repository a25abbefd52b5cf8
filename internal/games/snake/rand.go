package snake

import (
	"fmt"

	"github.com/vovakirdan/wallsnake/internal/config"
	"github.com/vovakirdan/wallsnake/internal/core"
)

// Rand is the random source the engine draws from.
// *math/rand.Rand satisfies it; tests inject scripted sources.
type Rand interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// DirectionSampler picks one random-walk step for a wall cluster.
type DirectionSampler func(r Rand) core.Direction

// UniformDirection draws each of the four directions with equal probability.
func UniformDirection(r Rand) core.Direction {
	return core.Directions[r.Intn(len(core.Directions))]
}

// LegacyDirection reproduces the classic five-bucket draw: 0 and 1 map to
// Left, 2 to Right, 3 to Down and 4 to Up, so Left comes up twice as often.
func LegacyDirection(r Rand) core.Direction {
	switch n := r.Intn(5); {
	case n <= 1:
		return core.DirLeft
	case n == 2:
		return core.DirRight
	case n == 3:
		return core.DirDown
	default:
		return core.DirUp
	}
}

// SamplerFor returns the sampler for a walls.direction_sampling value.
func SamplerFor(mode string) (DirectionSampler, error) {
	switch mode {
	case "", config.SamplingUniform:
		return UniformDirection, nil
	case config.SamplingLegacy:
		return LegacyDirection, nil
	}
	return nil, fmt.Errorf("snake: unknown direction sampling %q", mode)
}

func randomCell(grid core.Grid, r Rand) core.Point {
	return core.P(r.Intn(grid.Width), r.Intn(grid.Height))
}
