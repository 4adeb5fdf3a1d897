// Package snake implements the Snake rule set: a single snake encoded in the
// value layer of a core.Grid, advanced by a small finite-state machine.
package snake

import (
	"ca-engine/pkg/core"
)

// InitialLength is the number of segments placed by Place on a tall enough grid.
const InitialLength = 3

// Point is a 1-based grid coordinate.
type Point struct {
	X, Y int
}

// Snake holds the process state of the rule: where the head and food are, how
// long the body is and which way it is going.
type Snake struct {
	head    Point
	food    Point
	hasFood bool
	length  int
	action  Action
	heading Heading
}

// New returns a snake with no cells on any grid. Call Place to put it down.
func New() *Snake {
	return &Snake{heading: Heading{Past: Up, Future: Up}}
}

// Head returns the head position.
func (s *Snake) Head() Point { return s.head }

// Food returns the current food position and whether one is on the grid.
func (s *Snake) Food() (Point, bool) { return s.food, s.hasFood }

// Length returns the number of segments including the head.
func (s *Snake) Length() int { return s.length }

// Action returns the state computed by the last CalculateAction.
func (s *Snake) Action() Action { return s.action }

// Heading returns the past and future movement directions.
func (s *Snake) Heading() Heading { return s.heading }

// Dead reports whether the snake reached the terminal state.
func (s *Snake) Dead() bool { return s.action.Terminal() }

// Steer requests a new direction for the next move. Reversals are refused.
func (s *Snake) Steer(d Direction) bool {
	h, ok := s.heading.Turn(d)
	s.heading = h
	return ok
}

// Restore overwrites the process state, for callers that rebuild a snake
// already drawn on a grid.
func (s *Snake) Restore(head Point, length int, h Heading) {
	s.head = head
	s.length = length
	s.heading = h
	s.action = Move
}

// Place draws a fresh snake on g: head at (Nx/2, 2·Ny/3), body trailing
// downwards. Segments that would land on the border ring are dropped.
func (s *Snake) Place(g *core.Grid) {
	x := max(g.Nx()/2, 1)
	y := max(2*g.Ny()/3, 1)

	s.length = 0
	for k := 0; k < InitialLength && y+k <= g.Ny(); k++ {
		g.SetValue(x, y+k, Segment(k).Encode())
		s.length++
	}
	s.head = Point{X: x, Y: y}
	s.heading = Heading{Past: Up, Future: Up}
	s.action = Move
}

// PlaceFood puts food on a uniformly random empty interior cell by rejection
// sampling. It returns false when the grid has no empty cell left.
func (s *Snake) PlaceFood(g *core.Grid, rng *core.RNG) bool {
	s.hasFood = false
	if g.CountValue(core.Empty) == 0 {
		return false
	}
	for {
		x, y := rng.Cell(g)
		if g.Value(x, y) != core.Empty {
			continue
		}
		g.SetValue(x, y, FoodValue)
		s.food = Point{X: x, Y: y}
		s.hasFood = true
		return true
	}
}

// FindFood records the first food cell on g in row-major order, for snakes
// rebuilt with Restore.
func (s *Snake) FindFood(g *core.Grid) bool {
	s.hasFood = false
	g.EachInterior(func(x, y int) {
		if !s.hasFood && g.Value(x, y) == FoodValue {
			s.food = Point{X: x, Y: y}
			s.hasFood = true
		}
	})
	return s.hasFood
}

// Ahead returns the cell the head will enter on the next move.
func (s *Snake) Ahead() Point {
	x, y := Convert(s.head.X, s.head.Y, s.heading.Future)
	return Point{X: x, Y: y}
}

// CalculateAction senses the cell ahead of the head and advances the state
// machine. A snake that was never placed keeps its current action.
func (s *Snake) CalculateAction(g *core.Grid) Action {
	if s.length == 0 {
		return s.action
	}
	ahead := s.Ahead()
	s.action = Transition(s.action, Sense(g.Value(ahead.X, ahead.Y)))
	return s.action
}

// age returns the next state of a snake segment under the given action.
func (s *Snake) age(c Cell, action Action) Cell {
	tail := s.length - 1
	switch {
	case c.Segment < tail:
		return Segment(c.Segment + 1)
	case c.Segment == tail && action == MoveAndFeed:
		return Segment(c.Segment + 1)
	case c.Segment == tail:
		return Cell{Kind: KindEmpty}
	}
	return c
}

// Evolve advances the snake by one generation on g and reports whether the
// grid is unchanged, which after a death is always the case.
func (s *Snake) Evolve(g *core.Grid, rng *core.RNG) bool {
	if s.length == 0 {
		return true
	}
	action := s.CalculateAction(g)
	if action == MoveAndDie {
		return true
	}

	g.EachInterior(func(x, y int) {
		v := g.Value(x, y)
		if c := Decode(v); c.Kind == KindHead || c.Kind == KindBody {
			v = s.age(c, action).Encode()
		}
		g.SetNextValue(x, y, v)
	})
	ahead := s.Ahead()
	g.SetNextValue(ahead.X, ahead.Y, HeadValue)
	changed := g.Commit()

	s.head = ahead
	s.heading.Past = s.heading.Future
	if action == MoveAndFeed {
		s.length++
		s.PlaceFood(g, rng)
	}
	return !changed
}
