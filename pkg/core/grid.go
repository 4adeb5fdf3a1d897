package core

import (
	"errors"
	"fmt"
)

// Cell values with a fixed meaning in every rule set.
const (
	Border = -1
	Empty  = 0
	Alive  = 1
)

// MaxCells bounds the number of cells (border ring included) a single layer
// buffer may hold.
const MaxCells = 1 << 26

var (
	// ErrInvalidSize reports non-positive grid dimensions.
	ErrInvalidSize = errors.New("invalid grid size")
	// ErrTooLarge reports dimensions whose buffers cannot be allocated.
	ErrTooLarge = errors.New("grid too large")
)

// Layer selects one of the parallel per-cell layers.
type Layer int

const (
	LayerValue Layer = iota
	LayerColor
	LayerLifetime
	layerCount
)

func (l Layer) String() string {
	switch l {
	case LayerValue:
		return "value"
	case LayerColor:
		return "color"
	case LayerLifetime:
		return "lifetime"
	default:
		return fmt.Sprintf("layer(%d)", int(l))
	}
}

// Grid stores the value, color and lifetime layers of an Nx×Ny world
// surrounded by a one-cell border ring. Every layer has a current and a next
// buffer; all six live in one arena that is replaced as a whole on Resize.
type Grid struct {
	nx, ny int
	stride int

	arena []int
	cur   [layerCount][]int
	nxt   [layerCount][]int
}

// NewGrid allocates a grid with nx×ny interior cells.
func NewGrid(nx, ny int) (*Grid, error) {
	g := &Grid{}
	if err := g.Resize(nx, ny); err != nil {
		return nil, err
	}
	return g, nil
}

// Resize replaces all buffers with fresh ones of the new dimensions: border
// cells read Border and interior cells read Empty in every layer. On error the
// grid keeps its previous storage.
func (g *Grid) Resize(nx, ny int) error {
	if nx < 1 || ny < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, nx, ny)
	}
	if nx > MaxCells || ny > MaxCells || (nx+2) > MaxCells/(ny+2) {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrTooLarge, nx, ny, MaxCells)
	}
	stride := nx + 2
	cells := stride * (ny + 2)

	arena := make([]int, 2*int(layerCount)*cells)
	var cur, nxt [layerCount][]int
	for l := Layer(0); l < layerCount; l++ {
		off := 2 * int(l) * cells
		cur[l] = arena[off : off+cells : off+cells]
		nxt[l] = arena[off+cells : off+2*cells : off+2*cells]
	}

	g.nx, g.ny, g.stride = nx, ny, stride
	g.arena, g.cur, g.nxt = arena, cur, nxt
	g.fillBorder()
	return nil
}

func (g *Grid) fillBorder() {
	for l := Layer(0); l < layerCount; l++ {
		for _, buf := range [2][]int{g.cur[l], g.nxt[l]} {
			for x := 0; x <= g.nx+1; x++ {
				buf[x] = Border
				buf[(g.ny+1)*g.stride+x] = Border
			}
			for y := 1; y <= g.ny; y++ {
				buf[y*g.stride] = Border
				buf[y*g.stride+g.nx+1] = Border
			}
		}
	}
}

// Size returns the interior dimensions.
func (g *Grid) Size() Size { return Size{W: g.nx, H: g.ny} }

// Nx returns the interior width.
func (g *Grid) Nx() int { return g.nx }

// Ny returns the interior height.
func (g *Grid) Ny() int { return g.ny }

// Interior reports whether (x, y) lies in [1,Nx]×[1,Ny].
func (g *Grid) Interior(x, y int) bool {
	return x >= 1 && x <= g.nx && y >= 1 && y <= g.ny
}

// Border reports whether (x, y) lies on the sentinel ring.
func (g *Grid) Border(x, y int) bool {
	return (x == 0 || x == g.nx+1 || y == 0 || y == g.ny+1) &&
		x >= 0 && x <= g.nx+1 && y >= 0 && y <= g.ny+1
}

func (g *Grid) index(x, y int) int {
	checkBounds(g, x, y)
	return y*g.stride + x
}

// Get reads layer l of the current buffer.
func (g *Grid) Get(l Layer, x, y int) int { return g.cur[l][g.index(x, y)] }

// Next reads layer l of the next buffer.
func (g *Grid) Next(l Layer, x, y int) int { return g.nxt[l][g.index(x, y)] }

// Set writes layer l of the current buffer. Writes to the border ring are
// ignored.
func (g *Grid) Set(l Layer, x, y, v int) {
	i := g.index(x, y)
	if g.Border(x, y) {
		return
	}
	g.cur[l][i] = v
}

// SetNext writes layer l of the next buffer. Writes to the border ring are
// ignored.
func (g *Grid) SetNext(l Layer, x, y, v int) {
	i := g.index(x, y)
	if g.Border(x, y) {
		return
	}
	g.nxt[l][i] = v
}

// Value reads the current cell state.
func (g *Grid) Value(x, y int) int { return g.Get(LayerValue, x, y) }

// NextValue reads the pending cell state.
func (g *Grid) NextValue(x, y int) int { return g.Next(LayerValue, x, y) }

// SetValue writes the current cell state.
func (g *Grid) SetValue(x, y, v int) { g.Set(LayerValue, x, y, v) }

// SetNextValue writes the pending cell state.
func (g *Grid) SetNextValue(x, y, v int) { g.SetNext(LayerValue, x, y, v) }

// Color reads the current display attribute.
func (g *Grid) Color(x, y int) int { return g.Get(LayerColor, x, y) }

// SetColor writes the current display attribute.
func (g *Grid) SetColor(x, y, c int) { g.Set(LayerColor, x, y, c) }

// SetNextColor writes the pending display attribute.
func (g *Grid) SetNextColor(x, y, c int) { g.SetNext(LayerColor, x, y, c) }

// Lifetime reads the current lifetime counter.
func (g *Grid) Lifetime(x, y int) int { return g.Get(LayerLifetime, x, y) }

// SetLifetime writes the current lifetime counter.
func (g *Grid) SetLifetime(x, y, l int) { g.Set(LayerLifetime, x, y, l) }

// SetNextLifetime writes the pending lifetime counter.
func (g *Grid) SetNextLifetime(x, y, l int) { g.SetNext(LayerLifetime, x, y, l) }

// Commit copies the next value buffer into the current one for every interior
// cell and reports whether any cell changed.
func (g *Grid) Commit() bool { return g.CommitLayer(LayerValue) }

// CommitLayer is Commit for an arbitrary layer.
func (g *Grid) CommitLayer(l Layer) bool {
	cur, nxt := g.cur[l], g.nxt[l]
	changed := false
	for y := 1; y <= g.ny; y++ {
		row := y * g.stride
		for x := 1; x <= g.nx; x++ {
			i := row + x
			if cur[i] != nxt[i] {
				changed = true
				cur[i] = nxt[i]
			}
		}
	}
	return changed
}

// Clear resets the interior of every layer, in both buffers, to Empty.
func (g *Grid) Clear() {
	for l := Layer(0); l < layerCount; l++ {
		for _, buf := range [2][]int{g.cur[l], g.nxt[l]} {
			for y := 1; y <= g.ny; y++ {
				row := buf[y*g.stride+1 : y*g.stride+g.nx+1]
				for i := range row {
					row[i] = Empty
				}
			}
		}
	}
}

// EachInterior calls fn for every interior cell in row-major, 1-based order.
func (g *Grid) EachInterior(fn func(x, y int)) {
	for y := 1; y <= g.ny; y++ {
		for x := 1; x <= g.nx; x++ {
			fn(x, y)
		}
	}
}

// CountValue returns how many interior cells hold v.
func (g *Grid) CountValue(v int) int {
	n := 0
	cur := g.cur[LayerValue]
	for y := 1; y <= g.ny; y++ {
		for x := 1; x <= g.nx; x++ {
			if cur[y*g.stride+x] == v {
				n++
			}
		}
	}
	return n
}
