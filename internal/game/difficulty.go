package game

import "fmt"

// Difficulty selects how many segments the snake gains per food.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
)

// Growth returns the segments added per food eaten.
func (d Difficulty) Growth() int {
	if d == DifficultyHard {
		return 2
	}
	return 1
}

// String returns the display label.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyHard:
		return "Hard"
	default:
		return "Normal"
	}
}

// Next cycles forward through the difficulties.
func (d Difficulty) Next() Difficulty {
	switch d {
	case DifficultyEasy:
		return DifficultyNormal
	case DifficultyNormal:
		return DifficultyHard
	default:
		return DifficultyEasy
	}
}

// Prev cycles backward through the difficulties.
func (d Difficulty) Prev() Difficulty {
	switch d {
	case DifficultyEasy:
		return DifficultyHard
	case DifficultyHard:
		return DifficultyNormal
	default:
		return DifficultyEasy
	}
}

// ParseDifficulty maps a config or flag value to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy", "Easy":
		return DifficultyEasy, nil
	case "normal", "Normal", "":
		return DifficultyNormal, nil
	case "hard", "Hard":
		return DifficultyHard, nil
	default:
		return DifficultyNormal, fmt.Errorf("unknown difficulty %q", s)
	}
}
