package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wallsnake/internal/config"
	"github.com/vovakirdan/wallsnake/internal/core"
	"github.com/vovakirdan/wallsnake/internal/games/snake"
	"github.com/vovakirdan/wallsnake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play wallsnake in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD/hjkl - Turn
  P/Esc            - Pause
  ?                - Toggle full help
  Q/Ctrl+C         - Quit

Logs go only to --log-file while the game owns the terminal.

Examples:
  wallsnake play
  wallsnake play --seed 7
  wallsnake play --config ./snake.yaml --log-file /tmp/wallsnake.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(io.Discard, "wallsnake")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	tickRate := cfg.Gameplay.TickRate
	if flagFPS > 0 {
		tickRate = flagFPS
	}

	game, err := snake.NewSeeded(cfg, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	logger.Info("starting game", "seed", seed, "tick_rate", tickRate, "grid", cfg.GridSize())

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     seed,
	}
	runErr := tui.Run(game, rc, logger)

	// Close log before potential exit
	//nolint:errcheck // Best-effort close
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	fmt.Printf("Final score: %d\n", game.Score())
}
