package app

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"ca-engine/pkg/core"
	"ca-engine/pkg/dump"
)

// ErrNoGrid reports a simulation that does not expose a grid to load into.
var ErrNoGrid = errors.New("simulation has no loadable grid")

type gridHolder interface {
	Grid() *core.Grid
	Resize(nx, ny int) error
}

// LoadDump resizes sim to the dump stored at path and copies its live cells
// in.
func LoadDump(sim core.Sim, path string) error {
	h, ok := sim.(gridHolder)
	if !ok {
		return fmt.Errorf("load %s: %w", path, ErrNoGrid)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	g, err := dump.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	if err := h.Resize(g.Nx(), g.Ny()); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	if err := dump.Reconstruct(h.Grid(), string(data)); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// SaveDump writes the live cells of sim to path.
func SaveDump(sim core.Sim, path string) error {
	h, ok := sim.(gridHolder)
	if !ok {
		return fmt.Errorf("save %s: %w", path, ErrNoGrid)
	}
	if err := os.WriteFile(path, []byte(dump.Encode(h.Grid())), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
