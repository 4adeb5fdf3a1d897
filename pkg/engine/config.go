package engine

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrUnknownMode reports a rule-set name that is not registered.
var ErrUnknownMode = errors.New("unknown mode")

// ErrInvalidSnake reports snake state that does not match the grid.
var ErrInvalidSnake = errors.New("invalid snake")

// Mode selects the rule set applied by Step.
type Mode uint8

const (
	ModeLife Mode = iota
	ModeSnake
)

func (m Mode) String() string {
	switch m {
	case ModeLife:
		return "life"
	case ModeSnake:
		return "snake"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// Other returns the rule set a mode toggle switches to.
func (m Mode) Other() Mode {
	if m == ModeSnake {
		return ModeLife
	}
	return ModeSnake
}

// ParseMode resolves a rule-set name.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "life":
		return ModeLife, nil
	case "snake":
		return ModeSnake, nil
	}
	return ModeLife, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Config holds the parameters used to build an Engine.
type Config struct {
	Width  int
	Height int
	Mode   Mode
	Seed   int64
	// Density is the share of cells seeded alive when a Life world is reset.
	Density float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 50, Height: 50, Mode: ModeLife, Seed: 42, Density: 0.25}
}

// FromMap populates a Config from a string map. Unparseable entries keep
// their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["mode"]; ok {
		if parsed, err := ParseMode(v); err == nil {
			c.Mode = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	return c
}
