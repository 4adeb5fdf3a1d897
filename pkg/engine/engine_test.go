package engine

import (
	"errors"
	"slices"
	"testing"

	"ca-engine/pkg/core"
	"ca-engine/pkg/sims/snake"
)

func newEngine(t *testing.T, mode Mode, w, h int) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Mode = mode
	cfg.Width = w
	cfg.Height = h
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestNewRejectsInvalidSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	if _, err := New(cfg); !errors.Is(err, core.ErrInvalidSize) {
		t.Fatalf("New err = %v, want ErrInvalidSize", err)
	}
}

func TestStepLifeBlockIsStable(t *testing.T) {
	e := newEngine(t, ModeLife, 6, 6)
	for _, c := range [][2]int{{3, 3}, {4, 3}, {3, 4}, {4, 4}} {
		e.SetValue(c[0], c[1], core.Alive)
	}
	before := slices.Clone(e.Cells())

	e.StepLife()
	if !e.IsUnchanged() {
		t.Fatal("block should leave the engine unchanged")
	}
	if !slices.Equal(before, e.Cells()) {
		t.Fatal("block changed after one generation")
	}
	if e.Generation() != 1 {
		t.Fatalf("generation %d, want 1", e.Generation())
	}
}

func TestStepOnEmptyLifeGrid(t *testing.T) {
	e := newEngine(t, ModeLife, 8, 5)
	e.Step()
	if !e.IsUnchanged() {
		t.Fatal("all-dead grid should be unchanged")
	}
	for _, c := range e.Cells() {
		if c != DisplayEmpty {
			t.Fatal("all-dead grid grew a live cell")
		}
	}
}

func TestStepSnakeMove(t *testing.T) {
	e := newEngine(t, ModeSnake, 10, 8)
	e.StartSnake()
	if food, ok := e.Food(); ok {
		e.SetValue(food.X, food.Y, core.Empty)
	}
	e.SetValue(1, 1, snake.FoodValue)

	e.StepSnake()
	if e.IsUnchanged() {
		t.Fatal("moving snake reported unchanged")
	}
	want := map[[2]int]int{{5, 4}: 10, {5, 5}: 11, {5, 6}: 12, {5, 7}: 0}
	for c, v := range want {
		if got := e.Value(c[0], c[1]); got != v {
			t.Errorf("value at %v = %d, want %d", c, got, v)
		}
	}
	if e.Head() != (snake.Point{X: 5, Y: 4}) || e.Length() != 3 || e.Action() != snake.Move {
		t.Fatalf("head %+v length %d action %s", e.Head(), e.Length(), e.Action())
	}
}

func TestStepSnakeDiesAtBorder(t *testing.T) {
	e := newEngine(t, ModeSnake, 3, 3)
	e.StartSnake()
	if e.Head() != (snake.Point{X: 1, Y: 2}) {
		t.Fatalf("head %+v, want (1,2)", e.Head())
	}
	if !e.Steer(snake.Left) {
		t.Fatal("steer left refused")
	}
	if got := e.CalculateAction(); got != snake.MoveAndDie {
		t.Fatalf("CalculateAction = %s, want move-and-die", got)
	}

	before := slices.Clone(e.Cells())
	e.StepSnake()
	if !e.IsUnchanged() {
		t.Fatal("death should leave the engine unchanged")
	}
	if !slices.Equal(before, e.Cells()) {
		t.Fatal("grid changed on death")
	}
}

func TestStepSnakePlacesUnstartedSnake(t *testing.T) {
	e := newEngine(t, ModeSnake, 10, 8)
	e.Step()
	if e.Length() != 3 {
		t.Fatalf("length %d after first step, want 3", e.Length())
	}
	if e.Value(e.Head().X, e.Head().Y) != snake.HeadValue {
		t.Fatal("head position does not hold the head value")
	}
}

func TestResizeResetsState(t *testing.T) {
	e := newEngine(t, ModeSnake, 10, 8)
	e.Reset(3)
	e.Step()
	e.SetColor(2, 2, 9)
	e.SetLifetime(2, 2, 50)

	if err := e.Resize(4, 6); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if e.Size() != (core.Size{W: 4, H: 6}) || len(e.Cells()) != 24 {
		t.Fatalf("size %+v cells %d after resize", e.Size(), len(e.Cells()))
	}
	if e.Length() != 0 || e.Generation() != 0 || e.IsUnchanged() {
		t.Fatal("resize kept snake or generation state")
	}
	if _, ok := e.Food(); ok {
		t.Fatal("resize kept the food")
	}
	for y := 0; y <= 7; y++ {
		for x := 0; x <= 5; x++ {
			want := core.Empty
			if x == 0 || y == 0 || x == 5 || y == 7 {
				want = core.Border
			}
			if e.Value(x, y) != want || e.Color(x, y) != want || e.Lifetime(x, y) != want {
				t.Fatalf("cell (%d,%d) not reset", x, y)
			}
		}
	}
}

func TestResizeFailureKeepsGrid(t *testing.T) {
	e := newEngine(t, ModeLife, 5, 5)
	e.SetValue(3, 3, core.Alive)
	if err := e.Resize(-1, 4); !errors.Is(err, core.ErrInvalidSize) {
		t.Fatalf("Resize err = %v, want ErrInvalidSize", err)
	}
	if e.Size() != (core.Size{W: 5, H: 5}) || e.Value(3, 3) != core.Alive {
		t.Fatal("failed resize altered the grid")
	}
}

func TestResetDeterministic(t *testing.T) {
	for _, mode := range []Mode{ModeLife, ModeSnake} {
		e := newEngine(t, mode, 20, 15)
		e.Reset(77)
		first := slices.Clone(e.Cells())
		e.Step()
		e.Reset(77)
		if !slices.Equal(first, e.Cells()) {
			t.Fatalf("%s: Reset with the same seed is not deterministic", mode)
		}
		e.Reset(78)
		if mode == ModeLife && slices.Equal(first, e.Cells()) {
			t.Fatal("different seeds should produce different soups")
		}
	}
}

func TestSetModeClears(t *testing.T) {
	e := newEngine(t, ModeLife, 10, 10)
	e.Reset(1)
	e.SetMode(ModeSnake)
	if e.Name() != "snake" || e.Grid().CountValue(core.Empty) != 100 {
		t.Fatal("SetMode should switch rules and clear the grid")
	}
}

func TestCellsDisplayCodes(t *testing.T) {
	e := newEngine(t, ModeSnake, 10, 8)
	e.StartSnake()
	cells := e.Cells()
	count := func(code uint8) int {
		n := 0
		for _, c := range cells {
			if c == code {
				n++
			}
		}
		return n
	}
	if count(DisplayHead) != 1 || count(DisplayBody) != 2 || count(DisplayFood) != 1 {
		t.Fatalf("head=%d body=%d food=%d", count(DisplayHead), count(DisplayBody), count(DisplayFood))
	}
	if cells[(5-1)*10+(5-1)] != DisplayHead {
		t.Fatal("head not at row-major index of (5,5)")
	}
}

func TestParametersSnapshot(t *testing.T) {
	e := newEngine(t, ModeSnake, 10, 8)
	e.StartSnake()
	params := e.Parameters()
	checks := map[string]string{"mode": "snake", "w": "10", "h": "8", "length": "3", "head": "5,5", "direction": "up"}
	for key, want := range checks {
		if got, ok := params.Lookup(key); !ok || got != want {
			t.Errorf("parameter %q = %q, want %q", key, got, want)
		}
	}
}

func TestRegistryBuildsBothModes(t *testing.T) {
	for _, name := range []string{"life", "snake"} {
		factory, ok := core.Sims()[name]
		if !ok {
			t.Fatalf("sim %q not registered", name)
		}
		sim, err := factory(map[string]string{"w": "12", "h": "9"})
		if err != nil {
			t.Fatalf("factory(%q): %v", name, err)
		}
		if sim.Name() != name || sim.Size() != (core.Size{W: 12, H: 9}) {
			t.Fatalf("factory(%q) built %s %+v", name, sim.Name(), sim.Size())
		}
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "30", "h": "-2", "mode": "snake", "seed": "9", "density": "1.5"})
	if c.Width != 30 || c.Height != DefaultConfig().Height || c.Mode != ModeSnake || c.Seed != 9 {
		t.Fatalf("unexpected config %+v", c)
	}
	if c.Density != DefaultConfig().Density {
		t.Fatalf("out-of-range density accepted: %f", c.Density)
	}
	if _, err := ParseMode("maze"); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("ParseMode err = %v, want ErrUnknownMode", err)
	}
}

func TestCalculateActionBeforePlacement(t *testing.T) {
	e := newEngine(t, ModeSnake, 10, 8)
	if got := e.CalculateAction(); got != snake.Move {
		t.Fatalf("CalculateAction on a new engine = %s, want move", got)
	}

	e.Reset(1)
	if err := e.Resize(12, 12); err != nil {
		t.Fatal(err)
	}
	if got := e.CalculateAction(); got != snake.Move {
		t.Fatalf("CalculateAction after resize = %s, want move", got)
	}
	e.Clear()
	e.CalculateAction()
	e.SetMode(ModeSnake)
	e.CalculateAction()
	if e.Length() != 0 || e.Grid().CountValue(core.Empty) != 144 {
		t.Fatal("CalculateAction on an unplaced snake touched the grid")
	}
}

func TestRestoreSnake(t *testing.T) {
	e := newEngine(t, ModeSnake, 6, 6)
	body := []snake.Point{{X: 2, Y: 3}, {X: 3, Y: 3}, {X: 4, Y: 3}}
	for k, p := range body {
		e.SetValue(p.X, p.Y, snake.Segment(k).Encode())
	}
	e.SetValue(1, 3, snake.FoodValue)

	if err := e.RestoreSnake(body[0], len(body), snake.Heading{Past: snake.Left, Future: snake.Left}); err != nil {
		t.Fatalf("RestoreSnake: %v", err)
	}
	if food, ok := e.Food(); !ok || food != (snake.Point{X: 1, Y: 3}) {
		t.Fatalf("food %+v %v, want (1,3)", food, ok)
	}

	e.StepSnake()
	if e.Length() != 4 || e.Head() != (snake.Point{X: 1, Y: 3}) {
		t.Fatalf("head %+v length %d after eating", e.Head(), e.Length())
	}
	if n := e.Grid().CountValue(snake.HeadValue); n != 1 {
		t.Fatalf("%d heads on the grid, want 1", n)
	}
	if e.Grid().CountValue(snake.FoodValue) != 1 {
		t.Fatal("food was not replaced after eating")
	}
}

func TestRestoreSnakeRejectsMismatch(t *testing.T) {
	e := newEngine(t, ModeSnake, 6, 6)
	cases := []struct {
		head   snake.Point
		length int
	}{
		{snake.Point{X: 3, Y: 3}, 3},
		{snake.Point{X: 0, Y: 3}, 1},
		{snake.Point{X: 3, Y: 3}, 0},
	}
	e.SetValue(3, 3, core.Alive)
	for _, c := range cases {
		if err := e.RestoreSnake(c.head, c.length, snake.Heading{Past: snake.Up, Future: snake.Up}); !errors.Is(err, ErrInvalidSnake) {
			t.Fatalf("RestoreSnake(%+v, %d) err = %v, want ErrInvalidSnake", c.head, c.length, err)
		}
	}
}

func TestModeOther(t *testing.T) {
	if ModeLife.Other() != ModeSnake || ModeSnake.Other() != ModeLife {
		t.Fatal("Other does not toggle between life and snake")
	}
}
