// Package term draws a simulation into a terminal with tcell and drives it
// from the keyboard.
package term

import (
	"context"
	"time"

	"ca-engine/internal/app"
	"ca-engine/internal/render"
	"ca-engine/internal/ui"
	"ca-engine/pkg/core"
	"ca-engine/pkg/engine"
	"ca-engine/pkg/sims/snake"

	"github.com/gdamore/tcell/v2"
)

var glyphs = [...]rune{
	engine.DisplayEmpty: ' ',
	engine.DisplayAlive: '█',
	engine.DisplayFood:  '*',
	engine.DisplayHead:  '@',
	engine.DisplayBody:  'o',
	engine.DisplayOther: '?',
}

var steerKeys = map[tcell.Key]snake.Direction{
	tcell.KeyUp:    snake.Up,
	tcell.KeyDown:  snake.Down,
	tcell.KeyLeft:  snake.Left,
	tcell.KeyRight: snake.Right,
}

var steerRunes = map[rune]snake.Direction{
	'k': snake.Up,
	'j': snake.Down,
	'h': snake.Left,
	'l': snake.Right,
}

type lengthReporter interface {
	Length() int
}

// View renders one simulation to a tcell screen: the grid framed by a box on
// the left, the status rows on the right.
type View struct {
	screen tcell.Screen
	ctl    *app.Controller
	sound  *Sound
	styles []tcell.Style
	frame  time.Duration

	lastLength int
	wasHalted  bool
}

// NewView binds ctl to screen. sound may be nil.
func NewView(screen tcell.Screen, ctl *app.Controller, palette render.Palette, sound *Sound, fps int) *View {
	if fps <= 0 {
		fps = 60
	}
	if len(palette) == 0 {
		palette = render.DefaultPalette()
	}
	styles := make([]tcell.Style, len(palette))
	for i, c := range palette {
		fg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
		styles[i] = tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack)
	}
	return &View{
		screen: screen,
		ctl:    ctl,
		sound:  sound,
		styles: styles,
		frame:  time.Second / time.Duration(fps),
	}
}

// Draw paints the current state and shows the screen.
func (v *View) Draw() {
	v.screen.Clear()
	sim := v.ctl.Sim()
	size := sim.Size()
	cells := sim.Cells()

	frame := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := 0; x <= size.W+1; x++ {
		v.screen.SetContent(x, 0, '─', nil, frame)
		v.screen.SetContent(x, size.H+1, '─', nil, frame)
	}
	for y := 0; y <= size.H+1; y++ {
		v.screen.SetContent(0, y, '│', nil, frame)
		v.screen.SetContent(size.W+1, y, '│', nil, frame)
	}
	v.screen.SetContent(0, 0, '┌', nil, frame)
	v.screen.SetContent(size.W+1, 0, '┐', nil, frame)
	v.screen.SetContent(0, size.H+1, '└', nil, frame)
	v.screen.SetContent(size.W+1, size.H+1, '┘', nil, frame)

	for i, code := range cells {
		x, y := i%size.W+1, i/size.W+1
		v.screen.SetContent(x, y, glyph(code), nil, v.style(code))
	}

	title := sim.Name()
	if v.ctl.Paused() {
		title += " (paused)"
	}
	var lines []string
	if p, ok := sim.(core.ParameterProvider); ok {
		lines = ui.Lines(title, p.Parameters())
	} else {
		lines = []string{title}
	}
	lines = append(append(lines, ""), ui.Hint...)
	text := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for row, line := range lines {
		v.drawText(size.W+3, row, line, text)
	}
	v.screen.Show()
}

func (v *View) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func glyph(code uint8) rune {
	if int(code) < len(glyphs) {
		return glyphs[code]
	}
	return glyphs[engine.DisplayOther]
}

func (v *View) style(code uint8) tcell.Style {
	if int(code) < len(v.styles) {
		return v.styles[code]
	}
	return v.styles[len(v.styles)-1]
}

// HandleKey applies a key press and reports whether the view should keep
// running.
func (v *View) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'q':
			return false
		case ' ':
			v.ctl.TogglePause()
		case 'n':
			v.ctl.StepOnce()
		case 'r':
			v.ctl.Reset(v.ctl.Seed())
			v.sync()
		case 's':
			v.ctl.Reseed()
			v.sync()
		case 'c':
			v.ctl.Clear()
			v.sync()
		case 'm':
			v.ctl.ToggleMode()
			v.sync()
		case '+', '=':
			v.ctl.Faster()
		case '-':
			v.ctl.Slower()
		default:
			if d, ok := steerRunes[r]; ok {
				v.ctl.Steer(d)
			}
		}
	default:
		if d, ok := steerKeys[ev.Key()]; ok {
			v.ctl.Steer(d)
		}
	}
	return true
}

// Tick runs a due generation and plays the matching cues.
func (v *View) Tick() bool {
	if !v.ctl.Tick() {
		return false
	}
	if lr, ok := v.ctl.Sim().(lengthReporter); ok {
		if n := lr.Length(); n > v.lastLength && v.lastLength > 0 {
			v.sound.Feed()
		}
	}
	if v.ctl.Halted() && !v.wasHalted {
		v.sound.Death()
	}
	v.sync()
	return true
}

func (v *View) sync() {
	if lr, ok := v.ctl.Sim().(lengthReporter); ok {
		v.lastLength = lr.Length()
	}
	v.wasHalted = v.ctl.Halted()
}

// Run draws at the frame rate and handles input until the user quits or ctx
// is cancelled.
func (v *View) Run(ctx context.Context) error {
	ticker := time.NewTicker(v.frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		defer close(events)
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	v.sync()
	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return ctx.Err()
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !v.HandleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}
			v.Draw()
		case <-ticker.C:
			if v.Tick() {
				v.Draw()
			}
		}
	}
}
