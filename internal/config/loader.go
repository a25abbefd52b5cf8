package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/wallsnake/internal/core"
)

// LoadSnake loads the game configuration.
// Search order: customPath -> ~/.wallsnake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
//
// Files are overlaid onto the defaults, so a file may set only the keys it
// cares about. A custom path that cannot be read, parsed or validated is an
// error; broken files on the implicit paths are skipped.
func LoadSnake(customPath string) (SnakeConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "snake.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse overlays YAML data onto the defaults and validates the result.
func Parse(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// Encode renders the configuration as YAML.
func Encode(cfg SnakeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wallsnake", "configs", filename)
}

// ErrWallCoverage is returned when walls could cover the whole grid, which
// would leave no cell for the fruit.
var ErrWallCoverage = errors.New("config: walls.max_walls * walls.size must be smaller than the grid area")

// Validate checks the configuration for values the engine cannot run with.
func (c SnakeConfig) Validate() error {
	grid := c.GridSize()
	if c.Grid.Width < 2 || c.Grid.Height < 2 {
		return fmt.Errorf("config: grid must be at least 2x2, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if !grid.Contains(core.P(c.Snake.StartX, c.Snake.StartY)) {
		return fmt.Errorf("config: snake start (%d,%d) outside grid", c.Snake.StartX, c.Snake.StartY)
	}
	if _, err := core.ParseDirection(c.Snake.Direction); err != nil {
		return fmt.Errorf("config: snake.direction: %w", err)
	}
	if !grid.Contains(core.P(c.Fruit.StartX, c.Fruit.StartY)) {
		return fmt.Errorf("config: fruit start (%d,%d) outside grid", c.Fruit.StartX, c.Fruit.StartY)
	}

	if c.Walls.Size < 1 {
		return fmt.Errorf("config: walls.size must be positive, got %d", c.Walls.Size)
	}
	if c.Walls.Initial < 0 || c.Walls.Initial > c.Walls.MaxWalls {
		return fmt.Errorf("config: walls.initial must be in [0, max_walls], got %d", c.Walls.Initial)
	}
	if c.Walls.Initial > 0 && !grid.Contains(core.P(c.Walls.InitialX, c.Walls.InitialY)) {
		return fmt.Errorf("config: first wall (%d,%d) outside grid", c.Walls.InitialX, c.Walls.InitialY)
	}
	if c.Walls.MaxWalls*c.Walls.Size >= grid.Area() {
		return ErrWallCoverage
	}
	switch c.Walls.DirectionSampling {
	case "", SamplingUniform, SamplingLegacy:
	default:
		return fmt.Errorf("config: unknown walls.direction_sampling %q", c.Walls.DirectionSampling)
	}

	if c.Power.ApplesPerPower < 1 {
		return fmt.Errorf("config: power.apples_per_power must be positive, got %d", c.Power.ApplesPerPower)
	}
	if c.Power.MaxWallsDestroyable < 1 {
		return fmt.Errorf("config: power.max_walls_destroyable must be positive, got %d", c.Power.MaxWallsDestroyable)
	}
	if c.Gameplay.TickRate < 1 {
		return fmt.Errorf("config: gameplay.tick_rate must be positive, got %d", c.Gameplay.TickRate)
	}
	return nil
}

// GridSize returns the configured grid.
func (c SnakeConfig) GridSize() core.Grid {
	return core.NewGrid(c.Grid.Width, c.Grid.Height)
}

// StartDirection returns the parsed initial heading, Right if unparseable.
func (c SnakeConfig) StartDirection() core.Direction {
	d, err := core.ParseDirection(c.Snake.Direction)
	if err != nil {
		return core.DirRight
	}
	return d
}
