// wallsnake is a terminal snake game where every fruit raises a new wall.
//
// Usage:
//
//	wallsnake play              - Play in this terminal
//	wallsnake serve             - Start SSH server for remote play
//	wallsnake config print      - Show the effective game config
//	wallsnake config validate   - Check a config file
//
// Global flags:
//
//	--fps <rate>        - Override the config tick rate
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Use a custom snake.yaml
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Append logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wallsnake",
	Short: "Wallsnake - snake on a wrapping grid full of walls",
	Long: `Wallsnake is a terminal snake game on a wrap-around grid.

Every fruit you eat grows the snake and drops a new wall somewhere on the
field. Every fifth fruit grants a power that lets you break through up to
three walls. Hitting yourself, or a wall without the power, ends the run.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print or validate the game config

Examples:
  wallsnake play
  wallsnake play --seed 42 --fps 12
  wallsnake serve --ssh :2222
  wallsnake config print --config ./snake.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use gameplay.tick_rate from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
