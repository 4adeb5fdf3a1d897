//go:build ebiten

package app

import (
	"log"

	"ca-engine/internal/render"
	"ca-engine/internal/ui"
	"ca-engine/pkg/core"
	"ca-engine/pkg/sims/snake"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const statusWidth = 200

var steerKeys = map[ebiten.Key]snake.Direction{
	ebiten.KeyArrowUp:    snake.Up,
	ebiten.KeyArrowDown:  snake.Down,
	ebiten.KeyArrowLeft:  snake.Left,
	ebiten.KeyArrowRight: snake.Right,
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	ctl     *Controller
	painter *render.GridPainter
	status  *ui.Status
	palette render.Palette
	scale   int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config, palette render.Palette, logger *log.Logger) *Game {
	size := sim.Size()
	return &Game{
		ctl:     NewController(sim, cfg, logger),
		painter: render.NewGridPainter(size.W, size.H),
		status:  ui.NewStatus(sim, statusWidth),
		palette: palette,
		scale:   max(cfg.Scale, 1),
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) { g.ctl.Reset(seed) }

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctl.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctl.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctl.Reset(g.ctl.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.ctl.Reseed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctl.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.ctl.ToggleMode()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.ctl.Faster()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.ctl.Slower()
	}
	for key, dir := range steerKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.ctl.Steer(dir)
		}
	}

	g.ctl.Tick()
	g.status.Update(g.ctl.Paused())
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	sim := g.ctl.Sim()
	size := sim.Size()
	g.painter.Resize(size.W, size.H)
	g.painter.Blit(screen, sim.Cells(), g.palette, g.scale)
	g.status.Draw(screen, size.W*g.scale, size.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.ctl.Sim().Size()
	return s.W*g.scale + g.status.Width(), s.H * g.scale
}
