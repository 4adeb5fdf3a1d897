package core

import (
	"errors"
	"testing"
)

var allLayers = []Layer{LayerValue, LayerColor, LayerLifetime}

func assertFresh(t *testing.T, g *Grid) {
	t.Helper()
	nx, ny := g.Nx(), g.Ny()
	for y := 0; y <= ny+1; y++ {
		for x := 0; x <= nx+1; x++ {
			want := Empty
			if x == 0 || y == 0 || x == nx+1 || y == ny+1 {
				want = Border
			}
			for _, l := range allLayers {
				if got := g.Get(l, x, y); got != want {
					t.Fatalf("%s current (%d,%d) = %d, want %d", l, x, y, got, want)
				}
				if got := g.Next(l, x, y); got != want {
					t.Fatalf("%s next (%d,%d) = %d, want %d", l, x, y, got, want)
				}
			}
		}
	}
}

func TestResizeInitializesBorderAndInterior(t *testing.T) {
	sizes := []Size{{1, 1}, {1, 7}, {6, 6}, {13, 4}}
	g, err := NewGrid(3, 3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	for _, s := range sizes {
		g.SetValue(1, 1, 42)
		g.SetNextColor(1, 1, 7)
		if err := g.Resize(s.W, s.H); err != nil {
			t.Fatalf("Resize(%d,%d): %v", s.W, s.H, err)
		}
		if got := g.Size(); got != s {
			t.Fatalf("Size() = %+v, want %+v", got, s)
		}
		assertFresh(t, g)
	}
}

func TestResizeRejectsInvalidSize(t *testing.T) {
	g, err := NewGrid(4, 5)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	g.SetValue(2, 2, Alive)

	for _, s := range []Size{{0, 3}, {3, 0}, {-1, 5}} {
		if err := g.Resize(s.W, s.H); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("Resize(%d,%d) err = %v, want ErrInvalidSize", s.W, s.H, err)
		}
	}
	if err := g.Resize(MaxCells, MaxCells); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("oversized Resize err = %v, want ErrTooLarge", err)
	}

	if got := g.Size(); got != (Size{W: 4, H: 5}) {
		t.Fatalf("failed resize changed size to %+v", got)
	}
	if g.Value(2, 2) != Alive {
		t.Fatal("failed resize discarded existing cells")
	}
	if _, err := NewGrid(0, 0); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("NewGrid(0,0) err = %v, want ErrInvalidSize", err)
	}
}

func TestBorderWritesIgnored(t *testing.T) {
	g, _ := NewGrid(3, 2)
	for _, l := range allLayers {
		g.Set(l, 0, 1, 9)
		g.Set(l, 4, 2, 9)
		g.SetNext(l, 2, 0, 9)
		g.SetNext(l, 2, 3, 9)
	}
	assertFresh(t, g)
}

func TestCommitReportsChanges(t *testing.T) {
	g, _ := NewGrid(3, 3)
	g.SetValue(2, 2, Alive)
	g.EachInterior(func(x, y int) { g.SetNextValue(x, y, g.Value(x, y)) })
	if g.Commit() {
		t.Fatal("commit of identical buffers reported a change")
	}

	g.SetNextValue(2, 2, Empty)
	g.SetNextValue(3, 1, Alive)
	if !g.Commit() {
		t.Fatal("commit did not report a change")
	}
	if g.Value(2, 2) != Empty || g.Value(3, 1) != Alive {
		t.Fatalf("commit did not copy next buffer: (2,2)=%d (3,1)=%d", g.Value(2, 2), g.Value(3, 1))
	}
	if g.Value(0, 0) != Border || g.Value(4, 4) != Border {
		t.Fatal("commit touched the border ring")
	}
}

func TestCommitLayerKeepsLayersIndependent(t *testing.T) {
	g, _ := NewGrid(2, 2)
	g.SetColor(1, 1, 3)
	g.SetNextLifetime(2, 2, 50)

	if g.Commit() {
		t.Fatal("value commit reported a change with no value writes")
	}
	if g.Color(1, 1) != 3 {
		t.Fatal("value commit overwrote the color layer")
	}
	if !g.CommitLayer(LayerLifetime) {
		t.Fatal("lifetime commit did not report a change")
	}
	if g.Lifetime(2, 2) != 50 {
		t.Fatalf("lifetime = %d, want 50", g.Lifetime(2, 2))
	}
}

func TestClearResetsInterior(t *testing.T) {
	g, _ := NewGrid(5, 4)
	g.EachInterior(func(x, y int) {
		for _, l := range allLayers {
			g.Set(l, x, y, x*y)
			g.SetNext(l, x, y, x+y)
		}
	})
	g.Clear()
	assertFresh(t, g)
}

func TestEachInteriorRowMajor(t *testing.T) {
	g, _ := NewGrid(3, 2)
	var order [][2]int
	g.EachInterior(func(x, y int) { order = append(order, [2]int{x, y}) })
	want := [][2]int{{1, 1}, {2, 1}, {3, 1}, {1, 2}, {2, 2}, {3, 2}}
	if len(order) != len(want) {
		t.Fatalf("visited %d cells, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("visit %d = %v, want %v", i, order[i], want[i])
		}
	}
}

func TestInteriorAndBorderPredicates(t *testing.T) {
	g, _ := NewGrid(4, 3)
	cases := []struct {
		x, y             int
		interior, border bool
	}{
		{1, 1, true, false},
		{4, 3, true, false},
		{0, 2, false, true},
		{5, 3, false, true},
		{2, 4, false, true},
		{6, 6, false, false},
	}
	for _, c := range cases {
		if got := g.Interior(c.x, c.y); got != c.interior {
			t.Errorf("Interior(%d,%d) = %v, want %v", c.x, c.y, got, c.interior)
		}
		if got := g.Border(c.x, c.y); got != c.border {
			t.Errorf("Border(%d,%d) = %v, want %v", c.x, c.y, got, c.border)
		}
	}
}

func TestCountValue(t *testing.T) {
	g, _ := NewGrid(4, 4)
	g.SetValue(1, 1, Alive)
	g.SetValue(4, 4, Alive)
	if got := g.CountValue(Alive); got != 2 {
		t.Fatalf("CountValue(Alive) = %d, want 2", got)
	}
	if got := g.CountValue(Empty); got != 14 {
		t.Fatalf("CountValue(Empty) = %d, want 14", got)
	}
}
