package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  20,
			Height: 20,
		},
		Snake: SnakeStart{
			StartX:    5,
			StartY:    5,
			Direction: "right",
		},
		Fruit: FruitStart{
			StartX: 15,
			StartY: 15,
		},
		Walls: WallsConfig{
			Size:              8,
			Initial:           1,
			InitialX:          10,
			InitialY:          10,
			MaxWalls:          40, // 320 of 400 cells at most
			DirectionSampling: SamplingUniform,
		},
		Power: PowerConfig{
			ApplesPerPower:      5,
			MaxWallsDestroyable: 3,
		},
		Gameplay: GameplayConfig{
			TickRate:       8,
			RespawnAtStart: false,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
