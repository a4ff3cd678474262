package game

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snake is the player body: an ordered sequence of grid cells, head first.
// The body is never empty. Length only changes through MoveTo while growth
// is pending; a session reset replaces the snake wholesale.
type Snake struct {
	body          []core.Point // Head at index 0
	dir           core.Direction
	pendingDir    core.Direction // Buffered heading for the next move
	hasPending    bool
	growthPending int // Moves for which the tail is retained
}

// NewSnake creates a length-1 snake at the given cell with the given heading.
func NewSnake(start core.Point, dir core.Direction) *Snake {
	return &Snake{
		body: []core.Point{start},
		dir:  dir,
	}
}

// Head returns the current head cell.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Len returns the body length in cells.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the active heading.
func (s *Snake) Direction() core.Direction {
	return s.dir
}

// GrowthPending returns how many upcoming moves will retain the tail.
func (s *Snake) GrowthPending() int {
	return s.growthPending
}

// Body returns a copy of the body cells, head first.
func (s *Snake) Body() []core.Point {
	out := make([]core.Point, len(s.body))
	copy(out, s.body)
	return out
}

// ChangeDirection queues a new heading for the next move. A heading opposite
// to the active one is silently ignored so the snake can never reverse into
// itself mid-frame.
func (s *Snake) ChangeDirection(d core.Direction) {
	if d == s.dir.Opposite() {
		return
	}
	s.pendingDir = d
	s.hasPending = true
}

// NextHead returns the cell the head will enter on the next move, with any
// queued heading applied. It does not mutate the snake.
func (s *Snake) NextHead() core.Point {
	dir := s.dir
	if s.hasPending {
		dir = s.pendingDir
	}
	return s.body[0].Add(dir.Delta())
}

// Move advances the snake one cell in its (possibly queued) heading.
func (s *Snake) Move() {
	s.MoveTo(s.NextHead())
}

// MoveTo promotes the queued heading, prepends next as the new head, and
// drops the tail unless growth is pending. The caller is responsible for
// passing either NextHead() or its wrapped equivalent; this is the only
// mutator of body length and position.
func (s *Snake) MoveTo(next core.Point) {
	if s.hasPending {
		s.dir = s.pendingDir
		s.hasPending = false
	}

	s.body = append([]core.Point{next}, s.body...)

	if s.growthPending > 0 {
		s.growthPending--
		return
	}
	s.body = s.body[:len(s.body)-1]
}

// Grow schedules n additional segments; each is realized by one upcoming
// move retaining the tail. Values below 1 are ignored.
func (s *Snake) Grow(n int) {
	if n < 1 {
		return
	}
	s.growthPending += n
}

// Occupies returns true if any body segment sits on p.
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// SelfCollision returns true if the head coincides with any other segment.
// Meaningful only after a move; the vacated tail cell is already gone by then.
func (s *Snake) SelfCollision() bool {
	head := s.body[0]
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}
