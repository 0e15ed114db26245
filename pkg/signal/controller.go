package signal

import (
	"time"

	"github.com/madnordski/SidingSignal/pkg/device"
)

const (
	// DefaultInterval paces healthy control cycles.
	DefaultInterval = 250 * time.Millisecond

	// DefaultRetryDelay is the backoff after a failed measurement. The
	// sensor is physically present and always expected, so the policy is
	// simply to retry forever at this fixed pace.
	DefaultRetryDelay = time.Second
)

// DistanceSampler produces one smoothed distance per cycle.
type DistanceSampler interface {
	ScaleFeet() (int, error)
}

// SidingMonitor reports whether the siding is closed to traffic.
type SidingMonitor interface {
	Closed() bool
}

// Screen is the display surface the controller drives. Implementations own
// what is currently drawn and must suppress redundant physical redraws.
type Screen interface {
	// ShowSignal draws the screen for a signal aspect and distance.
	// It reports whether a physical redraw happened.
	ShowSignal(st State, feet int) bool
	// ShowBlocked draws the distinct closed-siding screen.
	ShowBlocked()
	// Clear blanks the screen and forgets what was drawn, so the next
	// ShowSignal is forced to draw.
	Clear()
}

// Lamp is the advisory status light.
type Lamp interface {
	Off()
	SampleFailure(unit device.Unit)
}

// Controller runs the per-cycle decision loop. It owns all remembered
// state: the previously seen siding status and, through the Screen, the
// previously drawn aspect. Nothing else may write to the screen or lamp.
type Controller struct {
	unit device.Unit
	samp DistanceSampler
	sw   SidingMonitor
	scr  Screen
	lamp Lamp

	lastClosed bool
	started    bool
}

// NewController wires a controller for the selected unit.
func NewController(unit device.Unit, samp DistanceSampler, sw SidingMonitor, scr Screen, lamp Lamp) *Controller {
	return &Controller{unit: unit, samp: samp, sw: sw, scr: scr, lamp: lamp}
}

// Cycle performs one control cycle: sample the distance, then the siding
// switch, decide, and update the outputs. Both inputs are captured at the
// start of the cycle; the decision never mixes stale and fresh values.
//
// On a measurement failure the screen is left exactly as it was, the lamp
// shows the unit's failure color, and the cycle ends early; the caller
// retries on the next cycle. The returned state is what the decision core
// produced (Unavailable on failure), alongside the siding status.
func (c *Controller) Cycle() (State, bool, error) {
	feet, err := c.samp.ScaleFeet()
	closed := c.sw.Closed()

	st := Decide(feet, c.unit)
	if err != nil {
		c.lamp.SampleFailure(c.unit)
		return st, closed, err
	}
	c.lamp.Off()

	if !c.started || closed != c.lastClosed {
		// A siding transition outranks aspect drawing. Closing shows
		// the blocked screen; reopening clears it and forces the next
		// aspect draw to start fresh.
		if closed {
			c.scr.ShowBlocked()
		} else {
			c.scr.Clear()
		}
		c.lastClosed = closed
		c.started = true
	}

	if closed {
		// Closed siding suppresses all distance-based aspects.
		return st, closed, nil
	}

	c.scr.ShowSignal(st, feet)
	return st, closed, nil
}

// Run loops Cycle forever, pacing healthy cycles with interval and failed
// ones with retryDelay. Durations <= 0 fall back to the defaults. It never
// returns; the device has no shutdown path short of power loss.
func (c *Controller) Run(interval, retryDelay time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if retryDelay <= 0 {
		retryDelay = DefaultRetryDelay
	}
	for {
		if _, _, err := c.Cycle(); err != nil {
			time.Sleep(retryDelay)
		} else {
			time.Sleep(interval)
		}
	}
}
