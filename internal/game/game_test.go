package game

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// testSettings makes the interval shorter than one frame so every Step
// advances the simulation exactly once.
func testSettings() Settings {
	s := DefaultSettings()
	s.InitialMs = 10
	s.MinMs = 10
	return s
}

// newTestGame builds a game over an interior of exactly boardW x boardH.
func newTestGame(t *testing.T, s Settings, boardW, boardH int, seed int64) *Game {
	t.Helper()
	g := New(s)
	g.Reset(core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  boardW + 2,
		ScreenH:  boardH + hudRows + 2,
		TickRate: 30,
	})
	if g.tooSmall {
		t.Fatalf("board %dx%d unexpectedly too small", boardW, boardH)
	}
	return g
}

func stepWith(g *Game, actions ...core.Action) core.StepResult {
	input := core.NewInputFrame()
	for _, a := range actions {
		input.Set(a)
	}
	return g.Step(input)
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs should produce identical snapshots
	s := testSettings()
	s.Obstacles = true

	g1 := newTestGame(t, s, 30, 20, 12345)
	g2 := newTestGame(t, s, 30, 20, 12345)

	for i := 0; i < 100; i++ {
		input := core.NewInputFrame()
		if i == 5 {
			input.Set(core.ActionDown)
		}
		if i == 12 {
			input.Set(core.ActionLeft)
		}
		if i == 20 {
			input.Set(core.ActionUp)
		}

		g1.Step(input)
		g2.Step(input)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshot mismatch:\n%+v\nvs\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestInitialSession(t *testing.T) {
	g := newTestGame(t, testSettings(), 30, 20, 42)

	if g.snake.Len() != 1 {
		t.Errorf("starting length = %d, expected 1", g.snake.Len())
	}
	if g.snake.Head() != (core.Point{X: 15, Y: 10}) {
		t.Errorf("starting head = %+v, expected board center (15,10)", g.snake.Head())
	}
	if g.snake.Direction() != core.DirRight {
		t.Errorf("starting direction = %v, expected Right", g.snake.Direction())
	}
	if !g.board.HasFood() {
		t.Error("session should start with food on the board")
	}
	if g.board.ObstacleCount() != 0 {
		t.Errorf("obstacles disabled but %d placed", g.board.ObstacleCount())
	}
	if g.score != 0 {
		t.Errorf("starting score = %d, expected 0", g.score)
	}
}

func TestNoReversalScenario(t *testing.T) {
	// 30x20 board, walls on, obstacles off, Normal difficulty, snake starts
	// length 1 heading Right at center. Down then Up must not reverse.
	g := newTestGame(t, testSettings(), 30, 20, 42)

	stepWith(g, core.ActionDown)
	if g.snake.Direction() != core.DirDown {
		t.Fatalf("direction = %v, expected Down after first tick", g.snake.Direction())
	}
	headAfterDown := g.snake.Head()

	stepWith(g, core.ActionUp) // illegal reversal, must be discarded
	if g.snake.Direction() != core.DirDown {
		t.Errorf("direction = %v, expected to stay Down", g.snake.Direction())
	}
	want := headAfterDown.Add(core.DirDown.Delta())
	if g.snake.Head() != want {
		t.Errorf("head = %+v, expected %+v (continuing Down)", g.snake.Head(), want)
	}
}

func TestEatingGrowsSameTick(t *testing.T) {
	g := newTestGame(t, testSettings(), 30, 20, 77)

	// Bring the snake to length 3 first, keeping food out of the path
	g.board.food = core.Point{X: 0, Y: 0}
	g.snake.Grow(2)
	stepWith(g)
	stepWith(g)
	if g.snake.Len() != 3 {
		t.Fatalf("setup length = %d, expected 3", g.snake.Len())
	}

	// Put the food directly in the snake's path and step once
	g.board.food = g.snake.NextHead()
	stepWith(g)

	if g.snake.Len() != 4 {
		t.Errorf("length on the eating tick = %d, expected 4", g.snake.Len())
	}
	if g.score != 10 {
		t.Errorf("score = %d, expected 10", g.score)
	}
	if !g.board.HasFood() {
		t.Error("new food should appear after eating")
	}
	food := g.board.Food()
	if !g.board.InBounds(food) || g.snake.Occupies(food) {
		t.Errorf("respawned food invalid at %+v", food)
	}
}

func TestHardDifficultyGrowsByTwo(t *testing.T) {
	s := testSettings()
	s.Difficulty = DifficultyHard
	g := newTestGame(t, s, 30, 20, 77)

	g.board.food = g.snake.NextHead()
	stepWith(g)

	// One segment is realized on the eating tick, the second on the next move
	if g.snake.Len() != 2 {
		t.Errorf("length on eating tick = %d, expected 2", g.snake.Len())
	}
	if g.snake.GrowthPending() != 1 {
		t.Errorf("growthPending = %d, expected 1 still queued", g.snake.GrowthPending())
	}

	stepWith(g)
	if g.snake.Len() != 3 {
		t.Errorf("length one tick later = %d, expected 3 (total +2 per food)", g.snake.Len())
	}
}

func TestScoreAndSpeedLadder(t *testing.T) {
	s := DefaultSettings()
	s.InitialMs = 60
	s.MinMs = 50
	s.StepMs = 5
	g := newTestGame(t, s, 30, 20, 5)

	// Feed the snake repeatedly; score rises by 10 each time and the move
	// interval walks down to the floor and stays there.
	for i := 1; i <= 5; i++ {
		g.board.food = g.snake.NextHead()
		g.advance()
		if g.score != i*10 {
			t.Fatalf("score after %d foods = %d, expected %d", i, g.score, i*10)
		}
	}

	if g.speedMs != 50 {
		t.Errorf("speed = %dms, expected clamp at the 50ms floor", g.speedMs)
	}
}

func TestManualSpeedAdjustClamped(t *testing.T) {
	s := DefaultSettings()
	g := newTestGame(t, s, 30, 20, 5)

	input := core.NewInputFrame()
	input.Set(core.ActionSpeedUp)
	for i := 0; i < 50; i++ {
		g.processInput(input)
	}
	if g.speedMs != s.MinMs {
		t.Errorf("speed = %dms, expected floor %dms", g.speedMs, s.MinMs)
	}

	input.Clear()
	input.Set(core.ActionSpeedDown)
	for i := 0; i < 50; i++ {
		g.processInput(input)
	}
	if g.speedMs != s.MaxMs {
		t.Errorf("speed = %dms, expected ceiling %dms", g.speedMs, s.MaxMs)
	}
}

func TestWallCollisionEndsGame(t *testing.T) {
	g := newTestGame(t, testSettings(), 30, 20, 9)
	g.snake = NewSnake(core.Point{X: 29, Y: 10}, core.DirRight)
	g.score = 30
	g.highScore = 50

	g.advance()

	if !g.gameOver {
		t.Fatal("moving past the wall should end the game")
	}
	if g.highScore != 50 {
		t.Errorf("high score = %d, expected previous best 50 kept", g.highScore)
	}

	// A better run replaces the stored best
	g2 := newTestGame(t, testSettings(), 30, 20, 9)
	g2.snake = NewSnake(core.Point{X: 0, Y: 10}, core.DirLeft)
	g2.score = 80
	g2.highScore = 50
	g2.advance()
	if g2.highScore != 80 {
		t.Errorf("high score = %d, expected 80", g2.highScore)
	}
}

func TestObstacleCollisionEndsGame(t *testing.T) {
	g := newTestGame(t, testSettings(), 30, 20, 9)

	ahead := g.snake.NextHead()
	g.board.obstacles[ahead] = struct{}{}

	g.advance()

	if !g.gameOver {
		t.Error("moving onto an obstacle should end the game")
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g := newTestGame(t, testSettings(), 30, 20, 9)
	g.snake = &Snake{
		body: []core.Point{
			{X: 5, Y: 5}, // Head
			{X: 5, Y: 6},
			{X: 6, Y: 6},
			{X: 6, Y: 5},
			{X: 6, Y: 4},
		},
		dir: core.DirRight,
	}
	g.score = 70

	g.advance()

	if !g.gameOver {
		t.Fatal("moving into the body should end the game")
	}
	if g.highScore != 70 {
		t.Errorf("high score = %d, expected 70", g.highScore)
	}
}

func TestWrapAroundWhenWallsDisabled(t *testing.T) {
	s := testSettings()
	s.Walls = false
	g := newTestGame(t, s, 30, 20, 13)

	g.snake = NewSnake(core.Point{X: 29, Y: 10}, core.DirRight)
	g.advance()

	if g.gameOver {
		t.Fatal("crossing the edge with walls off must not end the game")
	}
	if g.snake.Head() != (core.Point{X: 0, Y: 10}) {
		t.Errorf("head = %+v, expected wrap to (0,10)", g.snake.Head())
	}

	// Vertical wrap too
	g.snake = NewSnake(core.Point{X: 4, Y: 0}, core.DirUp)
	g.advance()
	if g.snake.Head() != (core.Point{X: 4, Y: 19}) {
		t.Errorf("head = %+v, expected wrap to (4,19)", g.snake.Head())
	}
}

func TestPauseFreezesEverything(t *testing.T) {
	g := newTestGame(t, testSettings(), 30, 20, 21)
	stepWith(g) // get one move in

	stepWith(g, core.ActionPause)
	if !g.paused {
		t.Fatal("pause action should pause the game")
	}

	head := g.snake.Head()
	bodyLen := g.snake.Len()
	food := g.board.Food()
	score := g.score
	speed := g.speedMs

	// Nothing moves or changes while paused, whatever is pressed
	for i := 0; i < 10; i++ {
		stepWith(g, core.ActionDown, core.ActionSpeedUp)
	}

	if g.snake.Head() != head || g.snake.Len() != bodyLen {
		t.Error("snake changed while paused")
	}
	if g.board.Food() != food {
		t.Error("food changed while paused")
	}
	if g.score != score || g.speedMs != speed {
		t.Error("score or speed changed while paused")
	}

	// Unpause resumes simulation
	stepWith(g, core.ActionPause)
	stepWith(g)
	if g.snake.Head() == head {
		t.Error("snake should move again after unpausing")
	}
}

func TestRestartOnlyFromGameOver(t *testing.T) {
	g := newTestGame(t, testSettings(), 30, 20, 33)
	g.score = 40
	g.board.food = core.Point{X: 0, Y: 0} // keep the step below from eating

	// Restart mid-session is ignored
	stepWith(g, core.ActionRestart)
	if g.score != 40 {
		t.Errorf("score = %d, restart should be ignored while playing", g.score)
	}

	// Kill the session, then restart
	g.snake = NewSnake(core.Point{X: 29, Y: 10}, core.DirRight)
	g.advance()
	if !g.gameOver {
		t.Fatal("setup: expected game over")
	}

	stepWith(g, core.ActionRestart)

	if g.gameOver {
		t.Error("restart should clear game over")
	}
	if g.score != 0 {
		t.Errorf("score = %d, expected fresh 0", g.score)
	}
	if g.snake.Len() != 1 || g.snake.Head() != (core.Point{X: 15, Y: 10}) {
		t.Errorf("snake not reinitialized: len=%d head=%+v", g.snake.Len(), g.snake.Head())
	}
	if g.highScore != 40 {
		t.Errorf("high score = %d, expected 40 to survive restart", g.highScore)
	}
}

func TestObstaclesStaticDuringSession(t *testing.T) {
	s := testSettings()
	s.Obstacles = true
	g := newTestGame(t, s, 30, 20, 4242)

	before := make(map[core.Point]struct{}, len(g.board.obstacles))
	for p := range g.board.obstacles {
		before[p] = struct{}{}
	}
	if len(before) == 0 {
		t.Fatal("setup: expected obstacles on a 30x20 board")
	}

	for i := 0; i < 40; i++ {
		action := core.ActionNone
		switch i {
		case 8:
			action = core.ActionDown
		case 16:
			action = core.ActionLeft
		case 24:
			action = core.ActionUp
		}
		stepWith(g, action)
	}

	if len(g.board.obstacles) != len(before) {
		t.Fatalf("obstacle count changed mid-session: %d vs %d", len(g.board.obstacles), len(before))
	}
	for p := range before {
		if !g.board.HasObstacle(p) {
			t.Errorf("obstacle at %+v disappeared mid-session", p)
		}
	}
}

func TestFoodValidThroughoutPlay(t *testing.T) {
	s := testSettings()
	s.Obstacles = true
	g := newTestGame(t, s, 30, 20, 314)

	for i := 0; i < 200 && !g.gameOver; i++ {
		action := core.ActionNone
		switch i % 28 {
		case 0:
			action = core.ActionDown
		case 7:
			action = core.ActionLeft
		case 14:
			action = core.ActionUp
		case 21:
			action = core.ActionRight
		}
		stepWith(g, action)

		if !g.board.HasFood() {
			continue
		}
		food := g.board.Food()
		if g.snake.Occupies(food) {
			t.Fatalf("tick %d: food inside the snake at %+v", i, food)
		}
		if g.board.HasObstacle(food) {
			t.Fatalf("tick %d: food on an obstacle at %+v", i, food)
		}
		if !g.board.InBounds(food) {
			t.Fatalf("tick %d: food out of bounds at %+v", i, food)
		}
	}
}

func TestTooSmallTerminal(t *testing.T) {
	g := New(testSettings())
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 12, ScreenH: 6, TickRate: 30})

	if !g.tooSmall {
		t.Fatal("a 12x6 terminal should be rejected as too small")
	}
	if g.Snapshot().State != StateTooSmall {
		t.Errorf("snapshot state = %s, expected %s", g.Snapshot().State, StateTooSmall)
	}

	// Simulation must not run
	before := g.Snapshot()
	stepWith(g, core.ActionDown)
	after := g.Snapshot()
	if before.SnakeLen != after.SnakeLen || after.SnakeLen != 0 {
		t.Error("simulation advanced on a too-small terminal")
	}

	// A resize to a playable size starts the session
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 40, ScreenH: 20, TickRate: 30})
	if g.tooSmall {
		t.Error("40x20 should be playable")
	}
	if g.snake == nil || g.snake.Len() != 1 {
		t.Error("session should initialize after resize")
	}
}

func TestHighScoreSeeding(t *testing.T) {
	g := newTestGame(t, testSettings(), 30, 20, 2)

	g.SetHighScore(100)
	if g.State().HighScore != 100 {
		t.Errorf("HighScore = %d, expected 100", g.State().HighScore)
	}

	// Lower values never regress the best
	g.SetHighScore(50)
	if g.State().HighScore != 100 {
		t.Errorf("HighScore = %d, expected to stay 100", g.State().HighScore)
	}
}

func TestSpeedIntervalPacing(t *testing.T) {
	// With a 60ms interval at ~33ms frames the snake should move on every
	// second frame, not every frame.
	s := DefaultSettings()
	s.InitialMs = 60
	g := newTestGame(t, s, 30, 20, 8)

	start := g.snake.Head()
	stepWith(g)
	if g.snake.Head() != start {
		t.Fatal("first frame should only accumulate time, not move")
	}
	stepWith(g)
	if g.snake.Head() == start {
		t.Fatal("second frame should cross the interval and move")
	}
}
