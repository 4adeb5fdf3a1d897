// Package life implements Conway's Game of Life over a bordered core.Grid with
// toroidal neighbor lookup.
package life

import (
	"ca-engine/pkg/core"
)

// Next is the Conway transition: a live cell survives with two or three live
// neighbors, a dead cell is born with exactly three.
func Next(alive bool, neighbors int) bool {
	return (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3)
}

// wrap maps a coordinate one step outside [1, n] to the opposite edge.
func wrap(v, n int) int {
	switch {
	case v < 1:
		return n
	case v > n:
		return 1
	}
	return v
}

// Neighbors counts live cells among the eight toroidal neighbors of (x, y).
// Lookups wrap across the interior, never through the border ring.
func Neighbors(g *core.Grid, x, y int) int {
	nx, ny := g.Nx(), g.Ny()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Value(wrap(x+dx, nx), wrap(y+dy, ny)) == core.Alive {
				n++
			}
		}
	}
	return n
}

// Evolve advances g by one generation and reports whether no cell changed.
func Evolve(g *core.Grid) bool {
	g.EachInterior(func(x, y int) {
		next := core.Empty
		if Next(g.Value(x, y) == core.Alive, Neighbors(g, x, y)) {
			next = core.Alive
		}
		g.SetNextValue(x, y, next)
	})
	return !g.Commit()
}

// Randomize clears the value layer and marks each interior cell alive with
// probability density.
func Randomize(g *core.Grid, rng *core.RNG, density float64) {
	g.EachInterior(func(x, y int) {
		v := core.Empty
		if rng.Float64() < density {
			v = core.Alive
		}
		g.SetValue(x, y, v)
	})
}
