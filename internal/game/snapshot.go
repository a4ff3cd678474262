package game

import "github.com/vovakirdan/tui-snake/internal/core"

// GameStateType labels the session state in snapshots.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
	StateTooSmall GameStateType = "too_small"
)

// Snapshot captures the observable session state for determinism testing
// and replay.
type Snapshot struct {
	Tick      uint64
	Score     int
	HighScore int
	SnakeLen  int
	HeadX     int
	HeadY     int
	Dir       core.Direction
	FoodX     int
	FoodY     int
	SpeedMs   int
	Obstacles int
	State     GameStateType
}

// Snapshot returns the current session snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StateTooSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		HighScore: g.highScore,
		SpeedMs:   g.speedMs,
		State:     state,
		FoodX:     -1,
		FoodY:     -1,
	}

	if g.snake != nil {
		head := g.snake.Head()
		snap.SnakeLen = g.snake.Len()
		snap.HeadX = head.X
		snap.HeadY = head.Y
		snap.Dir = g.snake.Direction()
	}
	if g.board != nil {
		snap.FoodX = g.board.Food().X
		snap.FoodY = g.board.Food().Y
		snap.Obstacles = g.board.ObstacleCount()
	}

	return snap
}
