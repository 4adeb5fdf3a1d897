// Package dump reads and writes the flat textual form of a grid's value layer:
// one line per row, '*' for a live cell and 'o' for anything else.
package dump

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"ca-engine/pkg/core"
)

const (
	Alive = '*'
	Dead  = 'o'
)

// ErrMalformed reports dump text that does not describe a rectangular grid.
var ErrMalformed = errors.New("malformed dump")

// Encode renders the value layer of g. Colors and lifetimes are not part of
// the dump.
func Encode(g *core.Grid) string {
	var b strings.Builder
	size := g.Size()
	b.Grow((size.W + 1) * size.H)
	for y := 1; y <= size.H; y++ {
		for x := 1; x <= size.W; x++ {
			if g.Value(x, y) == core.Alive {
				b.WriteByte(Alive)
			} else {
				b.WriteByte(Dead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Write streams Encode(g) to w.
func Write(w io.Writer, g *core.Grid) error {
	if _, err := io.WriteString(w, Encode(g)); err != nil {
		return fmt.Errorf("dump: write: %w", err)
	}
	return nil
}

// Decode builds a new grid from dump text, taking its size from the number
// and width of the rows. Blank trailing lines are ignored.
func Decode(r io.Reader) (*core.Grid, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformed)
	}
	g, err := core.NewGrid(len(rows[0]), len(rows))
	if err != nil {
		return nil, fmt.Errorf("dump: %w", err)
	}
	if err := fill(g, rows); err != nil {
		return nil, err
	}
	return g, nil
}

// Reconstruct replaces the value layer of g with the dump in text. The dump
// must have exactly the grid's dimensions; on error g is left untouched.
func Reconstruct(g *core.Grid, text string) error {
	rows, err := readRows(strings.NewReader(text))
	if err != nil {
		return err
	}
	size := g.Size()
	if len(rows) != size.H || (len(rows) > 0 && len(rows[0]) != size.W) {
		got := 0
		if len(rows) > 0 {
			got = len(rows[0])
		}
		return fmt.Errorf("%w: %dx%d dump for %dx%d grid", ErrMalformed, got, len(rows), size.W, size.H)
	}
	return fill(g, rows)
}

func readRows(r io.Reader) ([]string, error) {
	var rows []string
	blank := 0
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), core.MaxCells)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			blank++
			continue
		}
		if blank > 0 {
			return nil, fmt.Errorf("%w: blank line inside dump", ErrMalformed)
		}
		if len(rows) > 0 && len(line) != len(rows[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformed, len(rows)+1, len(line), len(rows[0]))
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dump: read: %w", err)
	}
	return rows, nil
}

func validate(rows []string) error {
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if row[x] != Alive && row[x] != Dead {
				return fmt.Errorf("%w: unexpected %q at (%d,%d)", ErrMalformed, row[x], x+1, y+1)
			}
		}
	}
	return nil
}

func fill(g *core.Grid, rows []string) error {
	if err := validate(rows); err != nil {
		return err
	}
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			v := core.Empty
			if row[x] == Alive {
				v = core.Alive
			}
			g.SetValue(x+1, y+1, v)
		}
	}
	return nil
}
