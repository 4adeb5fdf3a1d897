package snake

import "fmt"

// Direction is one of the four cardinal headings. Up decreases y.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// ParseDirection resolves the names produced by Direction.String.
func ParseDirection(s string) (Direction, error) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		if d.String() == s {
			return d, nil
		}
	}
	return Up, fmt.Errorf("unknown direction %q", s)
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Convert returns the coordinates one step from (x, y) in direction d. There is
// no wraparound: stepping off the interior lands on the border ring.
func Convert(x, y int, d Direction) (int, int) {
	switch d {
	case Up:
		return x, y - 1
	case Down:
		return x, y + 1
	case Left:
		return x - 1, y
	case Right:
		return x + 1, y
	}
	return x, y
}

// Heading pairs the direction used by the last move with the one the next
// move will take.
type Heading struct {
	Past   Direction
	Future Direction
}

// Turn returns h with Future set to d, unless d would reverse the snake onto
// its own neck.
func (h Heading) Turn(d Direction) (Heading, bool) {
	if d == h.Past.Opposite() {
		return h, false
	}
	h.Future = d
	return h, true
}

// Action is the state of the snake automaton.
type Action uint8

const (
	Move        Action = 0
	MoveAndFeed Action = 1
	MoveAndDie  Action = 2
)

func (a Action) String() string {
	switch a {
	case Move:
		return "move"
	case MoveAndFeed:
		return "move-and-feed"
	case MoveAndDie:
		return "move-and-die"
	default:
		return fmt.Sprintf("action(%d)", uint8(a))
	}
}

// Terminal reports whether the automaton can no longer leave a.
func (a Action) Terminal() bool { return a == MoveAndDie }

// Sensed classifies the cell in front of the head.
type Sensed uint8

const (
	SensedEmpty Sensed = iota
	SensedFood
	SensedWall
	SensedBody
)

func (s Sensed) String() string {
	switch s {
	case SensedEmpty:
		return "empty"
	case SensedFood:
		return "food"
	case SensedWall:
		return "wall"
	case SensedBody:
		return "body"
	default:
		return fmt.Sprintf("sensed(%d)", uint8(s))
	}
}

// Sense classifies a raw grid value.
func Sense(v int) Sensed {
	switch c := Decode(v); c.Kind {
	case KindFood:
		return SensedFood
	case KindBorder:
		return SensedWall
	case KindHead, KindBody:
		return SensedBody
	}
	return SensedEmpty
}

// Transition is the pure state function of the automaton. MoveAndDie absorbs.
func Transition(current Action, s Sensed) Action {
	if current.Terminal() {
		return current
	}
	switch s {
	case SensedFood:
		return MoveAndFeed
	case SensedWall, SensedBody:
		return MoveAndDie
	}
	return Move
}
