// Package indicator drives the tri-color diagnostic lamp. The lamp is
// advisory only: it confirms startup device selection and flags sampling
// failures, and nothing reads it back.
package indicator

import "github.com/madnordski/SidingSignal/pkg/device"

// Channel is one intensity output of the lamp, 0..255. On hardware each
// channel is a PWM output.
type Channel interface {
	Set(level uint8)
}

// Light drives the three channels together.
type Light struct {
	r, g, b Channel
}

// New creates a light from its three channels.
func New(r, g, b Channel) *Light {
	return &Light{r: r, g: g, b: b}
}

// SetColor sets the three intensities directly.
func (l *Light) SetColor(r, g, b uint8) {
	l.r.Set(r)
	l.g.Set(g)
	l.b.Set(b)
}

// Searching shows magenta while startup probes for a sensor.
func (l *Light) Searching() {
	l.SetColor(255, 0, 255)
}

// Selected confirms which unit answered the startup probe: green for
// unit 1, yellow for unit 2.
func (l *Light) Selected(unit device.Unit) {
	if unit.ID == 1 {
		l.SetColor(0, 255, 0)
	} else {
		l.SetColor(255, 255, 0)
	}
}

// SampleFailure flags a failed distance measurement with a per-unit color:
// magenta for unit 1, orange for unit 2.
func (l *Light) SampleFailure(unit device.Unit) {
	if unit.ID == 1 {
		l.SetColor(255, 0, 255)
	} else {
		l.SetColor(255, 80, 0)
	}
}

// Off darkens the lamp for steady operation.
func (l *Light) Off() {
	l.SetColor(0, 0, 0)
}
