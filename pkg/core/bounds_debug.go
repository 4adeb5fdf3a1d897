//go:build debug

package core

import "fmt"

func checkBounds(g *Grid, x, y int) {
	if x < 0 || x > g.nx+1 || y < 0 || y > g.ny+1 {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", x, y, g.nx, g.ny))
	}
}
