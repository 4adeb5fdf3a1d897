package render

import (
	"image/color"

	"ca-engine/pkg/engine"
)

// Palette maps engine display codes to colors, indexed by code.
type Palette []color.RGBA

// DefaultPalette colors every display code engine.Cells can return.
func DefaultPalette() Palette {
	p := make(Palette, engine.DisplayOther+1)
	p[engine.DisplayEmpty] = color.RGBA{A: 255}
	p[engine.DisplayAlive] = color.RGBA{R: 235, G: 235, B: 225, A: 255}
	p[engine.DisplayFood] = color.RGBA{R: 220, G: 60, B: 50, A: 255}
	p[engine.DisplayHead] = color.RGBA{R: 120, G: 230, B: 90, A: 255}
	p[engine.DisplayBody] = color.RGBA{R: 40, G: 150, B: 60, A: 255}
	p[engine.DisplayOther] = color.RGBA{R: 110, G: 110, B: 120, A: 255}
	return p
}

// WithAlive returns a copy of p with the live-cell color replaced.
func (p Palette) WithAlive(c color.Color) Palette {
	out := append(Palette(nil), p...)
	if int(engine.DisplayAlive) < len(out) {
		out[engine.DisplayAlive] = color.RGBAModel.Convert(c).(color.RGBA)
	}
	return out
}

// At returns the color for a display code, clamping unknown codes to the
// last entry.
func (p Palette) At(code uint8) color.RGBA {
	if len(p) == 0 {
		return color.RGBA{}
	}
	idx := int(code)
	if idx >= len(p) {
		idx = len(p) - 1
	}
	return p[idx]
}

// fillPaletteRGBA converts display codes into RGBA pixels. An empty palette
// clears the buffer to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette Palette) {
	for i, c := range cells {
		col := palette.At(c)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
