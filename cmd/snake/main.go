// snake is the classic snake game for the terminal.
//
// Usage:
//
//	snake                - Open the main menu
//	snake play           - Start a game immediately, skipping the menu
//	snake scores         - Show stored high scores
//	snake config         - Print the active configuration as YAML
//
// Global flags:
//
//	--fps <rate>     - Tick rate (default: 30)
//	--seed <value>   - RNG seed for reproducible sessions (0 = random)
//	--db <path>      - Scores database path (default: ~/.snaketerm/scores.db)
//	--config <path>  - Custom config YAML path
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Classic snake in your terminal",
	Long: `Snake is a terminal remake of the classic: steer the snake to the
food, grow, and dodge the walls, the obstacles, and your own tail.

Running 'snake' with no arguments opens the main menu.

Available commands:
  play     - Start a game immediately, skipping the menu
  scores   - Show stored high scores
  config   - Print the active configuration as YAML

Examples:
  snake
  snake play --difficulty hard --obstacles
  snake scores
  snake config > ~/.snaketerm/config.yaml`,
	Run: runRoot,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snaketerm/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

func runRoot(_ *cobra.Command, _ []string) {
	logger := newLogger()
	cfg := loadConfig(logger)
	settings := settingsFromConfig(cfg, logger)

	launch(logger, settings, cfg.Player.Name, false)
}

// newLogger builds the CLI logger. It is used around the TUI program, never
// inside it, since stderr writes would corrupt the alternate screen.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
}

// loadConfig resolves the active config. Load already falls back to the
// defaults on failure, so a warning is all a broken file costs.
func loadConfig(logger *log.Logger) config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("could not load config, using defaults", "error", err)
	}
	return cfg
}

// settingsFromConfig translates the YAML config into engine settings. The
// engine receives everything through this struct; it never reads files or
// flags itself.
func settingsFromConfig(cfg config.Config, logger *log.Logger) game.Settings {
	difficulty, err := game.ParseDifficulty(cfg.Rules.Difficulty)
	if err != nil {
		logger.Warn("unknown difficulty in config, using normal", "value", cfg.Rules.Difficulty)
	}

	return game.Settings{
		Walls:      cfg.Rules.Walls,
		Obstacles:  cfg.Rules.Obstacles,
		Difficulty: difficulty,

		BoardMinW: cfg.Board.MinWidth,
		BoardMinH: cfg.Board.MinHeight,

		InitialMs: cfg.Speed.InitialMs,
		MinMs:     cfg.Speed.MinMs,
		MaxMs:     cfg.Speed.MaxMs,
		StepMs:    cfg.Speed.StepMs,
		AdjustMs:  cfg.Speed.AdjustMs,

		FoodPoints: cfg.Scoring.FoodPoints,

		ObstacleCellDivisor:    cfg.Obstacles.CellDivisor,
		ObstacleMaxCount:       cfg.Obstacles.MaxCount,
		ObstacleMaxAttemptsPer: cfg.Obstacles.MaxAttemptsPer,
		ObstacleStartClearance: cfg.Obstacles.StartClearance,
	}
}

// runtimeConfig probes the terminal size and folds in the global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// launch opens the store and runs the TUI session until the player exits.
func launch(logger *log.Logger, settings game.Settings, player string, startPlaying bool) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(store, runtimeConfig(), settings, player, startPlaying)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
