//go:build ebiten

package ui

import (
	"image/color"

	"ca-engine/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Status renders the parameter panel to the right of the simulation view.
type Status struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      []string
}

// NewStatus constructs a panel of the given width for sim.
func NewStatus(sim core.Sim, width int) *Status {
	return &Status{sim: sim, width: max(width, 0)}
}

// Width returns the panel width in pixels.
func (s *Status) Width() int {
	if s == nil {
		return 0
	}
	return s.width
}

// Update refreshes the cached rows from the simulation.
func (s *Status) Update(paused bool) {
	if s == nil {
		return
	}
	provider, ok := s.sim.(core.ParameterProvider)
	if !ok {
		s.lines = []string{s.sim.Name()}
		return
	}
	title := s.sim.Name()
	if paused {
		title += " (paused)"
	}
	s.lines = Lines(title, provider.Parameters())
}

// Draw paints the panel at offsetX, as tall as the scaled grid.
func (s *Status) Draw(screen *ebiten.Image, offsetX, height int) {
	if s == nil || s.width <= 0 || height <= 0 {
		return
	}
	if s.panel == nil || s.lastHeight != height {
		if s.panel != nil {
			s.panel.Dispose()
		}
		s.panel = ebiten.NewImage(s.width, height)
		s.lastHeight = height
	}
	s.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	for i, line := range s.lines {
		c := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i == 0 {
			c = color.RGBA{R: 200, G: 200, B: 210, A: 255}
		}
		text.Draw(s.panel, line, face, panelPadding, y, c)
		y += lineHeight
	}
	y += lineHeight
	for _, line := range Hint {
		text.Draw(s.panel, line, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(s.panel, op)
}

const (
	panelPadding = 12
	lineHeight   = 16
)
