package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// noFood parks the food off-board when no free cell exists.
var noFood = core.Point{X: -1, Y: -1}

// Board is the playable interior grid plus the static hazards and the food
// on it. Coordinates are board-local: (0,0) is the top-left interior cell.
type Board struct {
	W, H      int
	obstacles map[core.Point]struct{}
	food      core.Point
}

// NewBoard creates an empty board with the given interior dimensions.
func NewBoard(w, h int) *Board {
	return &Board{
		W:         w,
		H:         h,
		obstacles: make(map[core.Point]struct{}),
		food:      noFood,
	}
}

// InBounds returns true if p lies on the interior grid.
func (b *Board) InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < b.W && p.Y >= 0 && p.Y < b.H
}

// Wrap normalizes p onto the board torus. Used when walls are disabled so a
// head crossing one edge re-enters from the opposite one.
func (b *Board) Wrap(p core.Point) core.Point {
	p.X = ((p.X % b.W) + b.W) % b.W
	p.Y = ((p.Y % b.H) + b.H) % b.H
	return p
}

// Food returns the current food cell, or the off-board marker when the board
// has no free cell left.
func (b *Board) Food() core.Point {
	return b.food
}

// HasFood returns true if food is currently on the board.
func (b *Board) HasFood() bool {
	return b.food != noFood
}

// HasObstacle returns true if p holds an obstacle.
func (b *Board) HasObstacle(p core.Point) bool {
	_, ok := b.obstacles[p]
	return ok
}

// ObstacleCount returns the number of placed obstacles.
func (b *Board) ObstacleCount() int {
	return len(b.obstacles)
}

// Obstacles returns the obstacle cells in unspecified order.
func (b *Board) Obstacles() []core.Point {
	out := make([]core.Point, 0, len(b.obstacles))
	for p := range b.obstacles {
		out = append(out, p)
	}
	return out
}

// SpawnFood places food uniformly on a free cell (not snake, not obstacle).
// With no free cell left the food parks off-board and play continues.
func (b *Board) SpawnFood(rng *rand.Rand, snake *Snake) {
	// Collect all free cells
	var freeCells []core.Point
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			p := core.Point{X: x, Y: y}
			if b.HasObstacle(p) || snake.Occupies(p) {
				continue
			}
			freeCells = append(freeCells, p)
		}
	}

	if len(freeCells) == 0 {
		b.food = noFood
		return
	}

	b.food = freeCells[rng.Intn(len(freeCells))]
}

// GenerateObstacles fills the board with up to its target count of static
// obstacles. Candidates are drawn uniformly from the interior and rejected
// if they land on the snake, the food, an existing obstacle, or within the
// start clearance around the snake's head. Attempts are capped so a
// saturated board stops early instead of looping.
func (b *Board) GenerateObstacles(rng *rand.Rand, snake *Snake, s Settings) {
	if s.ObstacleCellDivisor <= 0 {
		return
	}
	target := core.Min(b.W*b.H/s.ObstacleCellDivisor, s.ObstacleMaxCount)
	if target <= 0 {
		return
	}

	maxAttempts := target * core.Max(1, s.ObstacleMaxAttemptsPer)
	head := snake.Head()

	for attempts := 0; attempts < maxAttempts && len(b.obstacles) < target; attempts++ {
		p := core.Point{X: rng.Intn(b.W), Y: rng.Intn(b.H)}

		if b.HasObstacle(p) || snake.Occupies(p) || p == b.food {
			continue
		}
		// Leave the snake room to get moving
		if core.Abs(p.X-head.X)+core.Abs(p.Y-head.Y) <= s.ObstacleStartClearance {
			continue
		}

		b.obstacles[p] = struct{}{}
	}
}
