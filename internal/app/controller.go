package app

import (
	"log"
	"time"

	"ca-engine/internal/clock"
	"ca-engine/pkg/core"
	"ca-engine/pkg/engine"
	"ca-engine/pkg/sims/snake"
)

type clearer interface {
	Clear()
}

type steerer interface {
	Steer(d snake.Direction) bool
}

type modeSwitcher interface {
	Mode() engine.Mode
	SetMode(m engine.Mode)
}

type generationCounter interface {
	Generation() int
}

// Controller owns the run state every front end shares: pause, single
// stepping, pacing, the generation limit and the halt on a fixed point.
type Controller struct {
	sim   core.Sim
	pacer *clock.Pacer
	log   *log.Logger

	seed     int64
	limit    int
	steps    int
	tickOnce bool
	halted   bool
}

// NewController wires sim to the pacing settings in cfg.
func NewController(sim core.Sim, cfg *Config, logger *log.Logger) *Controller {
	return &Controller{
		sim:   sim,
		pacer: clock.NewPacer(cfg.Interval),
		log:   logger,
		seed:  cfg.Seed,
		limit: cfg.Generations,
	}
}

// Sim returns the controlled simulation.
func (c *Controller) Sim() core.Sim { return c.sim }

// Seed returns the seed used by the last reset.
func (c *Controller) Seed() int64 { return c.seed }

// Steps returns the number of generations run since the last reset.
func (c *Controller) Steps() int { return c.steps }

// Paused reports whether automatic stepping is suspended.
func (c *Controller) Paused() bool { return c.pacer.Paused() }

// Halted reports whether the run stopped on its own.
func (c *Controller) Halted() bool { return c.halted }

// Interval returns the delay between generations.
func (c *Controller) Interval() time.Duration { return c.pacer.Interval() }

// TogglePause suspends or resumes automatic stepping.
func (c *Controller) TogglePause() {
	c.pacer.SetPaused(!c.pacer.Paused())
}

// StepOnce requests a single generation on the next tick, paused or not.
func (c *Controller) StepOnce() { c.tickOnce = true }

// Faster halves the delay between generations.
func (c *Controller) Faster() {
	c.pacer.SetInterval(max(c.pacer.Interval()/2, time.Millisecond))
}

// Slower doubles the delay between generations.
func (c *Controller) Slower() {
	c.pacer.SetInterval(min(c.pacer.Interval()*2, 10*time.Second))
}

// Reset restarts the simulation with seed and resumes a halted run.
func (c *Controller) Reset(seed int64) {
	c.seed = seed
	c.sim.Reset(seed)
	c.steps = 0
	c.tickOnce = false
	c.resume()
}

// Reseed resets with a seed taken from the clock.
func (c *Controller) Reseed() { c.Reset(time.Now().UnixNano()) }

// Clear empties the world when the simulation supports it.
func (c *Controller) Clear() bool {
	cl, ok := c.sim.(clearer)
	if !ok {
		return false
	}
	cl.Clear()
	c.steps = 0
	c.resume()
	return true
}

// ToggleMode switches between Life and Snake and restarts the world with the
// current seed.
func (c *Controller) ToggleMode() bool {
	ms, ok := c.sim.(modeSwitcher)
	if !ok {
		return false
	}
	ms.SetMode(ms.Mode().Other())
	c.Reset(c.seed)
	return true
}

// Steer forwards a direction to simulations with a steerable actor.
func (c *Controller) Steer(d snake.Direction) bool {
	s, ok := c.sim.(steerer)
	if !ok {
		return false
	}
	return s.Steer(d)
}

// Tick runs one generation when one is due and reports whether it did.
func (c *Controller) Tick() bool {
	if c.tickOnce {
		return c.tick(true)
	}
	return c.tick(c.pacer.Due())
}

func (c *Controller) tick(due bool) bool {
	if !due && !c.tickOnce {
		return false
	}
	c.tickOnce = false
	c.sim.Step()
	c.steps++

	if c.sim.Unchanged() {
		c.halt("%s unchanged after generation %d", c.sim.Name(), c.generation())
	} else if c.limit > 0 && c.steps >= c.limit {
		c.halt("%s reached the generation limit %d", c.sim.Name(), c.limit)
	}
	return true
}

func (c *Controller) generation() int {
	if g, ok := c.sim.(generationCounter); ok {
		return g.Generation()
	}
	return c.steps
}

func (c *Controller) halt(format string, args ...any) {
	if !c.halted && c.log != nil {
		c.log.Printf(format, args...)
	}
	c.halted = true
	if !c.pacer.Paused() {
		c.pacer.SetPaused(true)
	}
}

func (c *Controller) resume() {
	if !c.halted {
		return
	}
	c.halted = false
	c.pacer.SetPaused(false)
}
