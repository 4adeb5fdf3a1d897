package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 32; i++ {
		if x, y := a.IntN(100), b.IntN(100); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestRNGCellStaysInterior(t *testing.T) {
	g, _ := NewGrid(3, 5)
	r := NewRNG(1)
	for i := 0; i < 200; i++ {
		x, y := r.Cell(g)
		if !g.Interior(x, y) {
			t.Fatalf("Cell returned (%d,%d) outside the interior", x, y)
		}
	}
	if r.IntN(0) != 0 || r.IntN(-3) != 0 {
		t.Fatal("IntN of a non-positive bound should be 0")
	}
}
