// Package engine ties a core.Grid to the Life and Snake rule sets and exposes
// the synchronous surface front ends drive: resize, step, per-cell access and
// the unchanged flag.
package engine

import (
	"fmt"
	"strconv"

	"ca-engine/pkg/core"
	"ca-engine/pkg/sims/life"
	"ca-engine/pkg/sims/snake"
)

// Display codes returned by Cells.
const (
	DisplayEmpty uint8 = iota
	DisplayAlive
	DisplayFood
	DisplayHead
	DisplayBody
	DisplayOther
)

// Engine advances one grid under the active rule set. It is not safe for
// concurrent use; Resize, Clear and SetMode must only be called between steps.
type Engine struct {
	cfg   Config
	grid  *core.Grid
	snake *snake.Snake
	rng   *core.RNG

	unchanged  bool
	generation int
	display    []uint8
}

// New builds an engine with an empty grid of the configured size.
func New(cfg Config) (*Engine, error) {
	g, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	return &Engine{
		cfg:     cfg,
		grid:    g,
		snake:   snake.New(),
		rng:     core.NewRNG(cfg.Seed),
		display: make([]uint8, cfg.Width*cfg.Height),
	}, nil
}

// Name returns the active rule set.
func (e *Engine) Name() string { return e.cfg.Mode.String() }

// Size returns the interior dimensions.
func (e *Engine) Size() core.Size { return e.grid.Size() }

// Grid exposes the underlying grid for collaborators such as the dump codec.
func (e *Engine) Grid() *core.Grid { return e.grid }

// Mode returns the active rule set.
func (e *Engine) Mode() Mode { return e.cfg.Mode }

// Config returns the configuration the engine currently runs with.
func (e *Engine) Config() Config { return e.cfg }

// Generation returns the number of steps taken since the last reset.
func (e *Engine) Generation() int { return e.generation }

// IsUnchanged reports whether the last step was a fixed point (Life) or a
// death (Snake). Callers should stop stepping once it is true.
func (e *Engine) IsUnchanged() bool { return e.unchanged }

// Unchanged satisfies core.Sim.
func (e *Engine) Unchanged() bool { return e.unchanged }

// Resize reallocates the grid and resets all snake state. On error the engine
// keeps its previous grid.
func (e *Engine) Resize(nx, ny int) error {
	if err := e.grid.Resize(nx, ny); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	e.cfg.Width, e.cfg.Height = nx, ny
	e.display = make([]uint8, nx*ny)
	e.restart()
	return nil
}

// Clear empties every layer and resets snake state.
func (e *Engine) Clear() {
	e.grid.Clear()
	e.restart()
}

func (e *Engine) restart() {
	e.snake = snake.New()
	e.unchanged = false
	e.generation = 0
}

// SetMode switches the rule set and clears the grid.
func (e *Engine) SetMode(m Mode) {
	e.cfg.Mode = m
	e.Clear()
}

// Reset clears the grid, reseeds the RNG and starts the active rule set: a
// random Life soup or a freshly placed snake with food.
func (e *Engine) Reset(seed int64) {
	e.cfg.Seed = seed
	e.rng = core.NewRNG(seed)
	e.Clear()
	switch e.cfg.Mode {
	case ModeLife:
		life.Randomize(e.grid, e.rng, e.cfg.Density)
	case ModeSnake:
		e.StartSnake()
	}
}

// StartSnake places the snake and its first food on the grid.
func (e *Engine) StartSnake() {
	e.snake = snake.New()
	e.snake.Place(e.grid)
	e.snake.PlaceFood(e.grid, e.rng)
	e.unchanged = false
}

// Step advances one generation under the active rule set.
func (e *Engine) Step() {
	switch e.cfg.Mode {
	case ModeSnake:
		e.StepSnake()
	default:
		e.StepLife()
	}
}

// StepLife advances one generation under the Life rules.
func (e *Engine) StepLife() {
	e.unchanged = life.Evolve(e.grid)
	e.generation++
}

// StepSnake advances one generation under the Snake rules. A snake that has
// not been placed since the last reset is placed first.
func (e *Engine) StepSnake() {
	if e.snake.Length() == 0 {
		e.StartSnake()
	}
	e.unchanged = e.snake.Evolve(e.grid, e.rng)
	e.generation++
}

// Value reads the current state of (x, y).
func (e *Engine) Value(x, y int) int { return e.grid.Value(x, y) }

// SetValue writes the current state of (x, y).
func (e *Engine) SetValue(x, y, v int) { e.grid.SetValue(x, y, v) }

// Color reads the display attribute of (x, y).
func (e *Engine) Color(x, y int) int { return e.grid.Color(x, y) }

// SetColor writes the display attribute of (x, y).
func (e *Engine) SetColor(x, y, c int) { e.grid.SetColor(x, y, c) }

// Lifetime reads the lifetime counter of (x, y).
func (e *Engine) Lifetime(x, y int) int { return e.grid.Lifetime(x, y) }

// SetLifetime writes the lifetime counter of (x, y).
func (e *Engine) SetLifetime(x, y, l int) { e.grid.SetLifetime(x, y, l) }

// Head returns the snake head position.
func (e *Engine) Head() snake.Point { return e.snake.Head() }

// Food returns the food position and whether food is on the grid.
func (e *Engine) Food() (snake.Point, bool) { return e.snake.Food() }

// Length returns the snake length.
func (e *Engine) Length() int { return e.snake.Length() }

// Action returns the snake automaton state.
func (e *Engine) Action() snake.Action { return e.snake.Action() }

// CalculateAction senses ahead of the snake head and updates its state. Before
// the snake is placed it returns the current action unchanged.
func (e *Engine) CalculateAction() snake.Action { return e.snake.CalculateAction(e.grid) }

// Heading returns the snake's past and future directions.
func (e *Engine) Heading() snake.Heading { return e.snake.Heading() }

// Steer sets the snake's next direction; reversals are refused.
func (e *Engine) Steer(d snake.Direction) bool { return e.snake.Steer(d) }

// RestoreSnake adopts a snake already drawn on the grid with SetValue, so the
// next StepSnake moves it instead of placing a fresh one. head must hold the
// head value; food, if any, is found by scanning the grid.
func (e *Engine) RestoreSnake(head snake.Point, length int, h snake.Heading) error {
	if length < 1 || !e.grid.Interior(head.X, head.Y) || e.grid.Value(head.X, head.Y) != snake.HeadValue {
		return fmt.Errorf("%w: head %s length %d", ErrInvalidSnake, point(head), length)
	}
	e.snake = snake.New()
	e.snake.Restore(head, length, h)
	e.snake.FindFood(e.grid)
	e.unchanged = false
	return nil
}

// Cells projects the interior onto display codes, row-major.
func (e *Engine) Cells() []uint8 {
	i := 0
	e.grid.EachInterior(func(x, y int) {
		e.display[i] = e.displayCode(e.grid.Value(x, y))
		i++
	})
	return e.display
}

func (e *Engine) displayCode(v int) uint8 {
	if e.cfg.Mode == ModeLife {
		if v == core.Alive {
			return DisplayAlive
		}
		if v == core.Empty {
			return DisplayEmpty
		}
		return DisplayOther
	}
	switch snake.Decode(v).Kind {
	case snake.KindFood:
		return DisplayFood
	case snake.KindHead:
		return DisplayHead
	case snake.KindBody:
		return DisplayBody
	}
	if v == core.Alive {
		return DisplayAlive
	}
	return DisplayEmpty
}

// Parameters publishes the engine state for status panels.
func (e *Engine) Parameters() core.ParameterSnapshot {
	size := e.grid.Size()
	groups := []core.ParameterGroup{{
		Name: "World",
		Params: []core.Parameter{
			core.TextParam("mode", "Mode", e.cfg.Mode.String()),
			core.IntParam("w", "Width", size.W),
			core.IntParam("h", "Height", size.H),
			core.Int64Param("seed", "Seed", e.cfg.Seed),
			core.IntParam("generation", "Generation", e.generation),
			core.BoolParam("unchanged", "Unchanged", e.unchanged),
		},
	}}
	switch e.cfg.Mode {
	case ModeLife:
		groups[0].Params = append(groups[0].Params,
			core.FloatParam("density", "Density", e.cfg.Density),
			core.IntParam("alive", "Alive", e.grid.CountValue(core.Alive)))
	case ModeSnake:
		head := e.snake.Head()
		heading := e.snake.Heading()
		food := "none"
		if p, ok := e.snake.Food(); ok {
			food = point(p)
		}
		groups = append(groups, core.ParameterGroup{
			Name: "Snake",
			Params: []core.Parameter{
				core.IntParam("length", "Length", e.snake.Length()),
				core.TextParam("action", "Action", e.snake.Action().String()),
				core.TextParam("direction", "Direction", heading.Future.String()),
				core.TextParam("head", "Head", point(head)),
				core.TextParam("food", "Food", food),
			},
		})
	}
	return core.ParameterSnapshot{Groups: groups}
}

func point(p snake.Point) string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

func init() {
	for _, m := range []Mode{ModeLife, ModeSnake} {
		mode := m
		core.Register(mode.String(), func(cfg map[string]string) (core.Sim, error) {
			c := FromMap(cfg)
			c.Mode = mode
			e, err := New(c)
			if err != nil {
				return nil, err
			}
			return e, nil
		})
	}
}
