package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the hardcoded default configuration. Used as the base for
// every load so partial config files fall back field by field.
func Default() Config {
	return Config{
		Board: BoardConfig{
			MinWidth:  20,
			MinHeight: 8,
		},
		Speed: SpeedConfig{
			InitialMs: 150,
			MinMs:     50,
			MaxMs:     300,
			StepMs:    5,
			AdjustMs:  10,
		},
		Scoring: ScoringConfig{
			FoodPoints: 10,
		},
		Obstacles: ObstaclesConfig{
			CellDivisor:    20,
			MaxCount:       15,
			MaxAttemptsPer: 10,
			StartClearance: 2,
		},
		Rules: RulesConfig{
			Walls:      true,
			Obstacles:  false,
			Difficulty: "normal",
		},
		Player: PlayerConfig{
			Name: "player",
		},
	}
}

// DefaultYAML returns the embedded default YAML, suitable for seeding a user
// config file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
