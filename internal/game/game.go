// Package game implements the snake engine: the board and body model, the
// timed simulation step, and the screen rendering. It stays free of Bubble
// Tea and every other third-party package so the whole simulation can be
// driven and verified headlessly.
package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// hudRows is the screen space above the board frame: one HUD text line plus
// a separator line.
const hudRows = 2

// defaultTickRate is used when the runtime config leaves TickRate unset.
const defaultTickRate = 30

// Settings are the session rules and tuning knobs. The platform layer builds
// them from the YAML config and menu choices; the engine never reads files
// or flags itself.
type Settings struct {
	Walls      bool // colliding with the frame ends the game; off means wrap-around
	Obstacles  bool
	Difficulty Difficulty

	BoardMinW int // minimum playable interior, below it the session won't start
	BoardMinH int

	InitialMs int // move interval at session start
	MinMs     int // interval floor
	MaxMs     int // interval ceiling for manual slow-down
	StepMs    int // interval reduction per food
	AdjustMs  int // manual +/- adjustment size

	FoodPoints int

	ObstacleCellDivisor    int
	ObstacleMaxCount       int
	ObstacleMaxAttemptsPer int
	ObstacleStartClearance int
}

// DefaultSettings returns the engine defaults, matching the shipped YAML.
func DefaultSettings() Settings {
	return Settings{
		Walls:      true,
		Obstacles:  false,
		Difficulty: DifficultyNormal,

		BoardMinW: 20,
		BoardMinH: 8,

		InitialMs: 150,
		MinMs:     50,
		MaxMs:     300,
		StepMs:    5,
		AdjustMs:  10,

		FoodPoints: 10,

		ObstacleCellDivisor:    20,
		ObstacleMaxCount:       15,
		ObstacleMaxAttemptsPer: 10,
		ObstacleStartClearance: 2,
	}
}

// Game owns one snake session: board, snake, score, speed, and the flags
// that gate simulation. All state lives here; there are no package globals.
type Game struct {
	settings Settings
	rng      *rand.Rand
	tick     uint64

	snake *Snake
	board *Board

	score     int
	highScore int // best across resets, seeded from the store at startup

	speedMs   int // current move interval
	elapsedMs int // time accumulated toward the next move
	frameMs   int // wall-clock per frame tick

	// Screen dimensions
	screenW  int
	screenH  int
	tickRate int

	// Game state flags
	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a game with the given settings. Call Reset before stepping.
func New(settings Settings) *Game {
	return &Game{settings: settings}
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Settings returns the active session rules.
func (g *Game) Settings() Settings {
	return g.settings
}

// SetHighScore raises the in-memory high score to at least n. Used to seed
// the session from the persisted value; lower values are ignored.
func (g *Game) SetHighScore(n int) {
	if n > g.highScore {
		g.highScore = n
	}
}

// Reset initializes/restarts the session: fresh board, snake, food,
// obstacles, score, and speed. The high score is deliberately kept.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.elapsedMs = 0
	g.speedMs = core.Clamp(g.settings.InitialMs, g.settings.MinMs, g.settings.MaxMs)

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = defaultTickRate
	}
	g.frameMs = 1000 / g.tickRate

	// The board is the screen minus the HUD rows and the frame border.
	interiorW := g.screenW - 2
	interiorH := g.screenH - hudRows - 2
	if interiorW < g.settings.BoardMinW || interiorH < g.settings.BoardMinH {
		g.tooSmall = true
		g.board = nil
		g.snake = nil
		return
	}
	g.tooSmall = false

	g.board = NewBoard(interiorW, interiorH)
	g.snake = NewSnake(core.Point{X: interiorW / 2, Y: interiorH / 2}, core.DirRight)
	g.board.SpawnFood(g.rng, g.snake)
	if g.settings.Obstacles {
		g.board.GenerateObstacles(g.rng, g.snake, g.settings)
	}
}

// Step advances the session by one frame tick. Input is absorbed every
// frame; the snake moves only when the current speed interval has elapsed.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Restart is honored only from game over
	if input.Has(core.ActionRestart) && g.gameOver {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.gameOver && !g.tooSmall {
		g.paused = !g.paused
	}

	// Paused keeps body, food, score, and speed frozen until unpaused
	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)

	g.elapsedMs += g.frameMs
	if g.elapsedMs >= g.speedMs {
		g.elapsedMs -= g.speedMs
		if g.elapsedMs > g.speedMs {
			g.elapsedMs = g.speedMs
		}
		g.advance()
	}

	return core.StepResult{State: g.State()}
}

// processInput buffers direction changes and applies manual speed tweaks.
func (g *Game) processInput(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.snake.ChangeDirection(core.DirUp)
	case input.Has(core.ActionDown):
		g.snake.ChangeDirection(core.DirDown)
	case input.Has(core.ActionLeft):
		g.snake.ChangeDirection(core.DirLeft)
	case input.Has(core.ActionRight):
		g.snake.ChangeDirection(core.DirRight)
	}

	if input.Has(core.ActionSpeedUp) {
		g.speedMs = core.Clamp(g.speedMs-g.settings.AdjustMs, g.settings.MinMs, g.settings.MaxMs)
	}
	if input.Has(core.ActionSpeedDown) {
		g.speedMs = core.Clamp(g.speedMs+g.settings.AdjustMs, g.settings.MinMs, g.settings.MaxMs)
	}
}

// advance runs one simulation move: move, collide, eat, grow, accelerate.
func (g *Game) advance() {
	next := g.snake.NextHead()
	if !g.settings.Walls {
		next = g.board.Wrap(next)
	}

	// Growing before the move keeps the tail on the eating move itself, so
	// the body is longer on the very tick the food is taken.
	ate := next == g.board.Food()
	if ate {
		g.snake.Grow(g.settings.Difficulty.Growth())
	}

	g.snake.MoveTo(next)

	if g.settings.Walls && !g.board.InBounds(next) {
		g.endGame()
		return
	}
	if g.board.HasObstacle(next) {
		g.endGame()
		return
	}
	if g.snake.SelfCollision() {
		g.endGame()
		return
	}

	if ate {
		g.score += g.settings.FoodPoints
		g.board.SpawnFood(g.rng, g.snake)
		g.speedMs = core.Max(g.settings.MinMs, g.speedMs-g.settings.StepMs)
	}
}

// endGame marks the session over and folds the score into the high score.
func (g *Game) endGame() {
	g.gameOver = true
	if g.score > g.highScore {
		g.highScore = g.score
	}
}

// restart reinitializes with the same settings and screen, chaining the RNG
// so a replayed seed still drives the whole run deterministically.
func (g *Game) restart() {
	g.Reset(core.RuntimeConfig{
		Seed:     g.rng.Int63(),
		ScreenW:  g.screenW,
		ScreenH:  g.screenH,
		TickRate: g.tickRate,
	})
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		GameOver:  g.gameOver,
		Paused:    g.paused,
	}
}
