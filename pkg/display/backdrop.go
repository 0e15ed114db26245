package display

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Backdrop paints a full-screen background. The production units carry
// bitmap artwork flashed alongside the firmware; the built-in backdrops
// below are procedural stand-ins with the same contract.
type Backdrop interface {
	Draw(d drivers.Displayer, tint color.RGBA)
}

// Solid fills the whole screen with the tint.
type Solid struct{}

func (Solid) Draw(d drivers.Displayer, tint color.RGBA) {
	fillScreen(d, tint)
}

// CrossBars is the closed-siding screen: two diagonal bars over the tint.
type CrossBars struct{}

func (CrossBars) Draw(d drivers.Displayer, tint color.RGBA) {
	fillScreen(d, tint)
	w, h := d.Size()
	if w <= 1 || h <= 1 {
		return
	}
	bar := color.RGBA{255, 255, 255, 255}
	for x := int16(0); x < w; x++ {
		y := x * (h - 1) / (w - 1)
		for dy := int16(-2); dy <= 2; dy++ {
			if y+dy >= 0 && y+dy < h {
				d.SetPixel(x, y+dy, bar)
			}
			if y2 := h - 1 - y + dy; y2 >= 0 && y2 < h {
				d.SetPixel(x, y2, bar)
			}
		}
	}
}

// filler is the fast fill path most hardware drivers offer.
type filler interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

func fillScreen(d drivers.Displayer, c color.RGBA) {
	w, h := d.Size()
	if f, ok := d.(filler); ok {
		if err := f.FillRectangle(0, 0, w, h, c); err == nil {
			return
		}
	}
	for y := int16(0); y < h; y++ {
		for x := int16(0); x < w; x++ {
			d.SetPixel(x, y, c)
		}
	}
}
