package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/game"
)

var (
	flagDifficulty string
	flagWalls      bool
	flagObstacles  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game immediately, skipping the menu",
	Long: `Start playing right away with the configured rules.

Controls:
  Arrows/WASD  - Steer
  P            - Pause
  +/-          - Speed up / slow down
  R            - Restart (after game over)
  ?            - Help
  Esc          - Pause, then back to menu
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - One segment per food
  normal - One segment per food
  hard   - Two segments per food

Examples:
  snake play
  snake play --difficulty hard
  snake play --walls=false
  snake play --obstacles --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagWalls, "walls", true, "End the game on wall hits; disable for wrap-around")
	playCmd.Flags().BoolVar(&flagObstacles, "obstacles", false, "Scatter static obstacles on the board")
}

func runPlay(cmd *cobra.Command, _ []string) {
	logger := newLogger()
	cfg := loadConfig(logger)
	settings := settingsFromConfig(cfg, logger)

	// Flags override the config only when given explicitly
	if flagDifficulty != "" {
		difficulty, err := game.ParseDifficulty(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		settings.Difficulty = difficulty
	}
	if cmd.Flags().Changed("walls") {
		settings.Walls = flagWalls
	}
	if cmd.Flags().Changed("obstacles") {
		settings.Obstacles = flagObstacles
	}

	launch(logger, settings, cfg.Player.Name, true)
}
