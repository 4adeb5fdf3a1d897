package app

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"ca-engine/internal/clock"
	"ca-engine/internal/render"
	"ca-engine/pkg/core"
)

// ErrBadColor reports a -color value that is not a color.
var ErrBadColor = errors.New("bad color")

// Config represents the command-line parameters shared by the front ends.
type Config struct {
	Sim      string
	Width    int
	Height   int
	Scale    int
	TPS      int
	Seed     int64
	Density  float64
	Interval time.Duration
	// Generations stops the run after that many steps; zero runs until the
	// world stops changing.
	Generations int
	Dump        string
	Load        string
	// Color overrides the live-cell color: "#rrggbb", "r,g,b" or "random".
	Color string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "life",
		Width:    50,
		Height:   50,
		Scale:    10,
		TPS:      60,
		Seed:     42,
		Density:  0.25,
		Interval: clock.DefaultInterval,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "rule set to run (life or snake)")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.Float64Var(&c.Density, "density", c.Density, "share of cells alive in a random Life start")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "delay between generations")
	fs.IntVar(&c.Generations, "generations", c.Generations, "stop after this many generations (0 = until unchanged)")
	fs.StringVar(&c.Dump, "dump", c.Dump, "write the final grid dump to this file")
	fs.StringVar(&c.Load, "load", c.Load, "start from the grid dump in this file")
	fs.StringVar(&c.Color, "color", c.Color, "live cell color: #rrggbb, r,g,b or random")
}

// SimConfig renders the configuration as the string map sim factories take.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"mode":    c.Sim,
		"seed":    strconv.FormatInt(c.Seed, 10),
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
	}
}

// Palette returns the display palette with the configured live-cell color.
// "random" derives the color from the seed.
func (c *Config) Palette() (render.Palette, error) {
	p := render.DefaultPalette()
	if c.Color == "" {
		return p, nil
	}
	col, err := parseColor(c.Color, c.Seed)
	if err != nil {
		return nil, err
	}
	return p.WithAlive(col), nil
}

func parseColor(s string, seed int64) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "random":
		rng := core.NewRNG(seed)
		// Keep the color off the black background.
		return color.RGBA{
			R: uint8(64 + rng.IntN(192)),
			G: uint8(64 + rng.IntN(192)),
			B: uint8(64 + rng.IntN(192)),
			A: 255,
		}, nil
	case strings.HasPrefix(s, "#") && len(s) == 7:
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	var rgb [3]uint8
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
		rgb[i] = uint8(v)
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}, nil
}
