// Package config provides YAML-based tuning for the snake game: board
// minimums, speed ladder, scoring, obstacle generation, and default rules.
package config

// Config contains all tunable parameters for a snake session.
type Config struct {
	Board     BoardConfig     `yaml:"board"`
	Speed     SpeedConfig     `yaml:"speed"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Obstacles ObstaclesConfig `yaml:"obstacles"`
	Rules     RulesConfig     `yaml:"rules"`
	Player    PlayerConfig    `yaml:"player"`
}

// BoardConfig defines the minimum playable interior size. Terminals whose
// derived board falls below these bounds get a resize prompt instead of a
// session.
type BoardConfig struct {
	MinWidth  int `yaml:"min_width"`
	MinHeight int `yaml:"min_height"`
}

// SpeedConfig defines the move interval ladder, in milliseconds per cell.
// Lower is faster.
type SpeedConfig struct {
	InitialMs int `yaml:"initial_ms"` // interval at session start
	MinMs     int `yaml:"min_ms"`     // floor the interval never drops below
	MaxMs     int `yaml:"max_ms"`     // ceiling for manual slow-down
	StepMs    int `yaml:"step_ms"`    // speed-up per food eaten
	AdjustMs  int `yaml:"adjust_ms"`  // manual +/- adjustment size
}

// ScoringConfig defines score rewards.
type ScoringConfig struct {
	FoodPoints int `yaml:"food_points"`
}

// ObstaclesConfig defines obstacle generation bounds.
type ObstaclesConfig struct {
	CellDivisor    int `yaml:"cell_divisor"`     // target = interior cells / divisor
	MaxCount       int `yaml:"max_count"`        // hard cap on the target
	MaxAttemptsPer int `yaml:"max_attempts_per"` // placement attempts per target obstacle
	StartClearance int `yaml:"start_clearance"`  // keep-out radius around the starting head
}

// RulesConfig defines the default session rules shown in the menu.
type RulesConfig struct {
	Walls      bool   `yaml:"walls"`
	Obstacles  bool   `yaml:"obstacles"`
	Difficulty string `yaml:"difficulty"` // easy, normal, hard
}

// PlayerConfig identifies the high-score record owner.
type PlayerConfig struct {
	Name string `yaml:"name"`
}
