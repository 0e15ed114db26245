// Package display renders the signal screen. It draws to anything that
// satisfies the tinygo drivers Displayer interface, so the same renderer
// runs against the real OLED and against a recording fake in tests.
package display

import (
	"image/color"
	"strconv"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"

	"github.com/madnordski/SidingSignal/pkg/device"
	"github.com/madnordski/SidingSignal/pkg/signal"
)

// Canvas dimensions of the signal screen.
const (
	Width  = 96
	Height = 64
)

var black = color.RGBA{0, 0, 0, 255}

// aspectStyle is the fixed artwork tint, text color and text cursor for one
// signal aspect. The cursor positions differ per aspect to line the readout
// up with each background.
type aspectStyle struct {
	tint color.RGBA
	text color.RGBA
	x, y int16
}

var styles = map[signal.State]aspectStyle{
	signal.Green:  {tint: color.RGBA{0, 155, 0, 255}, text: color.RGBA{255, 255, 255, 255}, x: 30, y: 44},
	signal.Yellow: {tint: color.RGBA{255, 190, 0, 255}, text: black, x: 32, y: 46},
	signal.Red:    {tint: color.RGBA{200, 0, 0, 255}, text: color.RGBA{255, 255, 255, 255}, x: 28, y: 48},
}

// Renderer owns the screen contents. It remembers what was last drawn and
// refuses to repeat a physical redraw for an unchanged aspect: every real
// draw is a full clear-and-blit with a visible cost.
type Renderer struct {
	d    drivers.Displayer
	unit device.Unit
	font tinyfont.Fonter

	// Artwork paints the full-screen background for signal aspects;
	// BlockedArt paints the distinct closed-siding screen. Both default
	// to the built-in procedural backdrops and may be replaced before
	// the first draw.
	Artwork    Backdrop
	BlockedArt Backdrop

	lastState signal.State
	lastFeet  int
	valid     bool
}

var _ signal.Screen = (*Renderer)(nil)

// New creates a renderer for the selected unit on the given display.
func New(d drivers.Displayer, unit device.Unit) *Renderer {
	return &Renderer{
		d:          d,
		unit:       unit,
		font:       &freemono.Bold12pt7b,
		Artwork:    Solid{},
		BlockedArt: CrossBars{},
	}
}

// ShowSignal draws the screen for the given aspect and distance, reporting
// whether a physical redraw happened. A repeated aspect is suppressed; the
// readout keeps the value captured when the aspect last changed.
func (r *Renderer) ShowSignal(st signal.State, feet int) bool {
	if st == signal.Unavailable {
		// Measurement failures never touch the screen; the last good
		// picture stays up while the indicator lamp reports the fault.
		return false
	}
	if r.valid && st == r.lastState {
		return false
	}
	r.lastState = st
	r.lastFeet = feet
	r.valid = true

	if st == signal.Blank {
		fillScreen(r.d, black)
		_ = r.d.Display()
		return true
	}

	style := styles[st]
	r.Artwork.Draw(r.d, style.tint)
	if feet >= 0 && feet <= r.unit.BeginZone {
		tinyfont.WriteLine(r.d, r.font, style.x, style.y, padFeet(feet), style.text)
	}
	_ = r.d.Display()
	return true
}

// ShowBlocked draws the closed-siding screen and forgets the last aspect,
// so the first draw after the siding reopens starts from scratch.
func (r *Renderer) ShowBlocked() {
	r.valid = false
	r.BlockedArt.Draw(r.d, black)
	_ = r.d.Display()
}

// Clear blanks the screen and invalidates the remembered aspect.
func (r *Renderer) Clear() {
	r.valid = false
	fillScreen(r.d, black)
	_ = r.d.Display()
}

// LastDrawn reports the remembered aspect and readout value, and whether
// anything is remembered at all.
func (r *Renderer) LastDrawn() (signal.State, int, bool) {
	return r.lastState, r.lastFeet, r.valid
}

// padFeet formats the readout. Single digits get one leading space so the
// digits stay in a fixed-width column.
func padFeet(feet int) string {
	s := strconv.Itoa(feet)
	if feet < 10 {
		s = " " + s
	}
	return s
}
