// Package config provides YAML-based configuration loading and validation
// for the wallsnake engine.
package config

// SnakeConfig contains all configuration for a wallsnake session.
type SnakeConfig struct {
	Grid     GridConfig     `yaml:"grid"`
	Snake    SnakeStart     `yaml:"snake"`
	Fruit    FruitStart     `yaml:"fruit"`
	Walls    WallsConfig    `yaml:"walls"`
	Power    PowerConfig    `yaml:"power"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// GridConfig defines the toroidal field size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeStart defines where the snake spawns.
type SnakeStart struct {
	StartX    int    `yaml:"start_x"`
	StartY    int    `yaml:"start_y"`
	Direction string `yaml:"direction"` // "up", "down", "left" or "right"
}

// FruitStart defines the initial fruit cell.
type FruitStart struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
}

// WallsConfig defines wall cluster shape and spawning.
type WallsConfig struct {
	Size     int `yaml:"size"`      // Cells per cluster
	Initial  int `yaml:"initial"`   // Clusters present at start
	InitialX int `yaml:"initial_x"` // Origin of the first cluster
	InitialY int `yaml:"initial_y"`
	MaxWalls int `yaml:"max_walls"` // Fruit stops spawning clusters past this count

	// DirectionSampling picks the random-walk step distribution:
	// "uniform" (default) or "legacy".
	DirectionSampling string `yaml:"direction_sampling"`
}

// PowerConfig defines the empowerment mechanic.
type PowerConfig struct {
	ApplesPerPower      int `yaml:"apples_per_power"`
	MaxWallsDestroyable int `yaml:"max_walls_destroyable"`
}

// GameplayConfig defines pacing and reset behavior.
type GameplayConfig struct {
	TickRate int `yaml:"tick_rate"` // Snake moves per second

	// RespawnAtStart moves the head back to the start cell after a run ends.
	// When false the snake continues from the collision point.
	RespawnAtStart bool `yaml:"respawn_at_start"`
}

// Direction sampling modes.
const (
	SamplingUniform = "uniform"
	SamplingLegacy  = "legacy"
)
